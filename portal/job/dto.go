package job

import (
	"time"

	"github.com/TechnologicalJerry/job-portal-website/pkg/kernel"
)

// CreateJobRequest - DTO for creating a new job posting. PostedBy is stamped
// from the authenticated caller, never taken from the body.
type CreateJobRequest struct {
	Title               string          `json:"title" validate:"required"`
	Company             string          `json:"company" validate:"required"`
	Location            string          `json:"location" validate:"required"`
	Description         string          `json:"description" validate:"required,min=10"`
	Requirements        []string        `json:"requirements,omitempty"`
	Skills              []string        `json:"skills,omitempty"`
	JobType             JobType         `json:"jobType" validate:"required"`
	ExperienceLevel     ExperienceLevel `json:"experienceLevel" validate:"required"`
	SalaryMin           float64         `json:"salaryMin" validate:"required,gt=0"`
	SalaryMax           float64         `json:"salaryMax" validate:"required,gt=0"`
	SalaryCurrency      string          `json:"salaryCurrency,omitempty"`
	ApplicationDeadline *time.Time      `json:"applicationDeadline,omitempty"`
	Categories          []string        `json:"categories,omitempty"`
	Remote              *bool           `json:"remote,omitempty"`
	Benefits            []string        `json:"benefits,omitempty"`
}

// UpdateJobRequest - DTO for partially updating a posting. Absent fields are
// left untouched. The owner reference, identifier and counters are not
// part of the patch surface.
type UpdateJobRequest struct {
	Title               *string          `json:"title,omitempty"`
	Company             *string          `json:"company,omitempty"`
	Location            *string          `json:"location,omitempty"`
	Description         *string          `json:"description,omitempty"`
	Requirements        *[]string        `json:"requirements,omitempty"`
	Skills              *[]string        `json:"skills,omitempty"`
	JobType             *JobType         `json:"jobType,omitempty"`
	ExperienceLevel     *ExperienceLevel `json:"experienceLevel,omitempty"`
	SalaryMin           *float64         `json:"salaryMin,omitempty"`
	SalaryMax           *float64         `json:"salaryMax,omitempty"`
	SalaryCurrency      *string          `json:"salaryCurrency,omitempty"`
	ApplicationDeadline *time.Time       `json:"applicationDeadline,omitempty"`
	Categories          *[]string        `json:"categories,omitempty"`
	IsActive            *bool            `json:"isActive,omitempty"`
	Remote              *bool            `json:"remote,omitempty"`
	Benefits            *[]string        `json:"benefits,omitempty"`
}

// SearchJobsRequest - normalized filter set compiled from the listing query
// string. Nil pointer fields add no predicate; all present predicates are
// combined with AND.
type SearchJobsRequest struct {
	Search          string                   `json:"search,omitempty"`
	JobType         string                   `json:"jobType,omitempty"`
	ExperienceLevel string                   `json:"experienceLevel,omitempty"`
	Location        string                   `json:"location,omitempty"`
	MinSalary       *float64                 `json:"minSalary,omitempty"`
	MaxSalary       *float64                 `json:"maxSalary,omitempty"`
	Remote          *bool                    `json:"remote,omitempty"`
	IsActive        *bool                    `json:"isActive,omitempty"`
	Pagination      kernel.PaginationOptions `json:"pagination"`
}

// PostedByUser - display shape of the posting owner. Resolved at read time
// from the owner reference; carries no sensitive fields.
type PostedByUser struct {
	ID        kernel.UserID `json:"id"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Email     string        `json:"email"`
}

// JobResponse - DTO for returning a posting with its owner resolved.
type JobResponse struct {
	JobPosting
	PostedByUser *PostedByUser `json:"postedByUser,omitempty"`
}

// PaginationMeta - outward pagination metadata for listing queries.
type PaginationMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// JobListResponse - DTO for a listing query result.
type JobListResponse struct {
	Jobs       []JobResponse  `json:"jobs"`
	Pagination PaginationMeta `json:"pagination"`
}
