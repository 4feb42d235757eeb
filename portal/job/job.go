package job

import (
	"time"

	"github.com/TechnologicalJerry/job-portal-website/pkg/kernel"
)

// JobType classifies the employment arrangement of a posting.
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeFreelance  JobType = "freelance"
)

// ExperienceLevel classifies the seniority a posting targets.
type ExperienceLevel string

const (
	ExperienceEntryLevel ExperienceLevel = "entry-level"
	ExperienceMidLevel   ExperienceLevel = "mid-level"
	ExperienceSenior     ExperienceLevel = "senior"
	ExperienceExecutive  ExperienceLevel = "executive"
)

type JobPosting struct {
	ID                  kernel.JobID    `db:"id" json:"id"`
	Title               string          `db:"title" json:"title"`
	Company             string          `db:"company" json:"company"`
	Location            string          `db:"location" json:"location"`
	Description         string          `db:"description" json:"description"`
	Requirements        []string        `db:"requirements" json:"requirements"`
	Skills              []string        `db:"skills" json:"skills"`
	Categories          []string        `db:"categories" json:"categories"`
	Benefits            []string        `db:"benefits" json:"benefits"`
	JobType             JobType         `db:"job_type" json:"jobType"`
	ExperienceLevel     ExperienceLevel `db:"experience_level" json:"experienceLevel"`
	SalaryMin           float64         `db:"salary_min" json:"salaryMin"`
	SalaryMax           float64         `db:"salary_max" json:"salaryMax"`
	SalaryCurrency      string          `db:"salary_currency" json:"salaryCurrency,omitempty"`
	ApplicationDeadline *time.Time      `db:"application_deadline" json:"applicationDeadline,omitempty"`
	IsActive            bool            `db:"is_active" json:"isActive"`
	Remote              *bool           `db:"remote" json:"remote,omitempty"`
	PostedBy            kernel.UserID   `db:"posted_by" json:"postedBy"`
	Views               int64           `db:"views" json:"views"`
	ApplicationsCount   int64           `db:"applications_count" json:"applicationsCount"`
	CreatedAt           time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt           time.Time       `db:"updated_at" json:"updatedAt"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsOwnedBy checks whether the given caller is the posting's owner. The
// comparison works on normalized string forms of the identifiers.
func (j *JobPosting) IsOwnedBy(userID kernel.UserID) bool {
	return j.PostedBy.Equals(userID)
}

// CanAcceptApplications checks whether the posting takes new applications.
func (j *JobPosting) CanAcceptApplications() bool {
	return j.IsActive
}

// ValidateSalaryRange enforces salaryMax >= salaryMin. It must hold after
// creation and after any update touching either bound; the request layer
// checks it too, but the entity never leaves this package violating it.
func (j *JobPosting) ValidateSalaryRange() error {
	if j.SalaryMax < j.SalaryMin {
		return ErrInvalidSalaryRange().
			WithDetail("salary_min", j.SalaryMin).
			WithDetail("salary_max", j.SalaryMax)
	}
	return nil
}
