package jobinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/TechnologicalJerry/job-portal-website/pkg/kernel"
	"github.com/TechnologicalJerry/job-portal-website/portal/job"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresJobRepository implements job.Repository using PostgreSQL
type PostgresJobRepository struct {
	db *sqlx.DB
}

// NewPostgresJobRepository creates a new PostgreSQL job repository
func NewPostgresJobRepository(db *sqlx.DB) *PostgresJobRepository {
	return &PostgresJobRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type jobModel struct {
	ID                  string          `db:"id"`
	Title               string          `db:"title"`
	Company             string          `db:"company"`
	Location            string          `db:"location"`
	Description         string          `db:"description"`
	Requirements        json.RawMessage `db:"requirements"`
	Skills              json.RawMessage `db:"skills"`
	Categories          json.RawMessage `db:"categories"`
	Benefits            json.RawMessage `db:"benefits"`
	JobType             string          `db:"job_type"`
	ExperienceLevel     string          `db:"experience_level"`
	SalaryMin           float64         `db:"salary_min"`
	SalaryMax           float64         `db:"salary_max"`
	SalaryCurrency      sql.NullString  `db:"salary_currency"`
	ApplicationDeadline *time.Time      `db:"application_deadline"`
	IsActive            bool            `db:"is_active"`
	Remote              *bool           `db:"remote"`
	PostedBy            string          `db:"posted_by"`
	Views               int64           `db:"views"`
	ApplicationsCount   int64           `db:"applications_count"`
	CreatedAt           time.Time       `db:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at"`
}

func unmarshalStrings(raw json.RawMessage, field string) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", field, err)
	}
	return values, nil
}

func marshalStrings(values []string, field string) (json.RawMessage, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", field, err)
	}
	return data, nil
}

// toEntity converts database model to domain entity
func (m *jobModel) toEntity() (*job.JobPosting, error) {
	requirements, err := unmarshalStrings(m.Requirements, "requirements")
	if err != nil {
		return nil, err
	}
	skills, err := unmarshalStrings(m.Skills, "skills")
	if err != nil {
		return nil, err
	}
	categories, err := unmarshalStrings(m.Categories, "categories")
	if err != nil {
		return nil, err
	}
	benefits, err := unmarshalStrings(m.Benefits, "benefits")
	if err != nil {
		return nil, err
	}

	return &job.JobPosting{
		ID:                  kernel.JobID(m.ID),
		Title:               m.Title,
		Company:             m.Company,
		Location:            m.Location,
		Description:         m.Description,
		Requirements:        requirements,
		Skills:              skills,
		Categories:          categories,
		Benefits:            benefits,
		JobType:             job.JobType(m.JobType),
		ExperienceLevel:     job.ExperienceLevel(m.ExperienceLevel),
		SalaryMin:           m.SalaryMin,
		SalaryMax:           m.SalaryMax,
		SalaryCurrency:      m.SalaryCurrency.String,
		ApplicationDeadline: m.ApplicationDeadline,
		IsActive:            m.IsActive,
		Remote:              m.Remote,
		PostedBy:            kernel.UserID(m.PostedBy),
		Views:               m.Views,
		ApplicationsCount:   m.ApplicationsCount,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}, nil
}

// fromEntity converts domain entity to database model
func fromEntity(p *job.JobPosting) (*jobModel, error) {
	requirements, err := marshalStrings(p.Requirements, "requirements")
	if err != nil {
		return nil, err
	}
	skills, err := marshalStrings(p.Skills, "skills")
	if err != nil {
		return nil, err
	}
	categories, err := marshalStrings(p.Categories, "categories")
	if err != nil {
		return nil, err
	}
	benefits, err := marshalStrings(p.Benefits, "benefits")
	if err != nil {
		return nil, err
	}

	return &jobModel{
		ID:                  string(p.ID),
		Title:               p.Title,
		Company:             p.Company,
		Location:            p.Location,
		Description:         p.Description,
		Requirements:        requirements,
		Skills:              skills,
		Categories:          categories,
		Benefits:            benefits,
		JobType:             string(p.JobType),
		ExperienceLevel:     string(p.ExperienceLevel),
		SalaryMin:           p.SalaryMin,
		SalaryMax:           p.SalaryMax,
		SalaryCurrency:      sql.NullString{String: p.SalaryCurrency, Valid: p.SalaryCurrency != ""},
		ApplicationDeadline: p.ApplicationDeadline,
		IsActive:            p.IsActive,
		Remote:              p.Remote,
		PostedBy:            string(p.PostedBy),
		Views:               p.Views,
		ApplicationsCount:   p.ApplicationsCount,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}, nil
}

const jobColumns = `
	id, title, company, location, description,
	requirements, skills, categories, benefits,
	job_type, experience_level, salary_min, salary_max, salary_currency,
	application_deadline, is_active, remote, posted_by,
	views, applications_count, created_at, updated_at
`

// ============================================================================
// Repository Implementation
// ============================================================================

// Create persists a new posting
func (r *PostgresJobRepository) Create(ctx context.Context, posting *job.JobPosting) error {
	model, err := fromEntity(posting)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO jobs (
			id, title, company, location, description,
			requirements, skills, categories, benefits,
			job_type, experience_level, salary_min, salary_max, salary_currency,
			application_deadline, is_active, remote, posted_by,
			views, applications_count, created_at, updated_at
		) VALUES (
			:id, :title, :company, :location, :description,
			:requirements, :skills, :categories, :benefits,
			:job_type, :experience_level, :salary_min, :salary_max, :salary_currency,
			:application_deadline, :is_active, :remote, :posted_by,
			:views, :applications_count, :created_at, :updated_at
		)
	`

	_, err = r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23503" { // foreign_key_violation
				return fmt.Errorf("invalid posted_by user_id: %w", err)
			}
		}
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

// GetByID retrieves a posting by ID
func (r *PostgresJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.JobPosting, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE id = $1`, jobColumns)

	var model jobModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, job.ErrJobNotFound()
		}
		return nil, fmt.Errorf("failed to get job by id: %w", err)
	}

	return model.toEntity()
}

// Update persists changed fields of an existing posting. posted_by, views
// and applications_count are deliberately absent from the SET list.
func (r *PostgresJobRepository) Update(ctx context.Context, id kernel.JobID, posting *job.JobPosting) error {
	model, err := fromEntity(posting)
	if err != nil {
		return err
	}
	model.ID = string(id)

	query := `
		UPDATE jobs SET
			title = :title,
			company = :company,
			location = :location,
			description = :description,
			requirements = :requirements,
			skills = :skills,
			categories = :categories,
			benefits = :benefits,
			job_type = :job_type,
			experience_level = :experience_level,
			salary_min = :salary_min,
			salary_max = :salary_max,
			salary_currency = :salary_currency,
			application_deadline = :application_deadline,
			is_active = :is_active,
			remote = :remote,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return job.ErrJobNotFound()
	}

	return nil
}

// Delete permanently removes a posting by ID
func (r *PostgresJobRepository) Delete(ctx context.Context, id kernel.JobID) error {
	query := `DELETE FROM jobs WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return job.ErrJobNotFound()
	}

	return nil
}

// Search runs a filtered, sorted, paginated scan. Count and page share one
// predicate so totals stay accurate regardless of the requested window.
func (r *PostgresJobRepository) Search(ctx context.Context, req job.SearchJobsRequest) (*kernel.Paginated[job.JobPosting], error) {
	whereClause, args := buildSearchWhere(req)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM jobs %s", whereClause)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to count search results: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, jobColumns, whereClause, len(args)+1, len(args)+2)

	args = append(args, req.Pagination.PageSize, req.Pagination.Offset())

	var models []jobModel
	err := r.db.SelectContext(ctx, &models, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search jobs: %w", err)
	}

	entities := make([]job.JobPosting, 0, len(models))
	for _, model := range models {
		entity, err := model.toEntity()
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}

	return &kernel.Paginated[job.JobPosting]{
		Items: entities,
		Page: kernel.Page{
			Number: req.Pagination.Page,
			Size:   req.Pagination.PageSize,
			Total:  total,
			Pages:  kernel.TotalPages(total, req.Pagination.PageSize),
		},
		Empty: len(entities) == 0,
	}, nil
}

// ListByUserID retrieves all postings of one owner, newest first
func (r *PostgresJobRepository) ListByUserID(ctx context.Context, userID kernel.UserID) ([]*job.JobPosting, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs
		WHERE posted_by = $1
		ORDER BY created_at DESC
	`, jobColumns)

	var models []jobModel
	err := r.db.SelectContext(ctx, &models, query, string(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to list user jobs: %w", err)
	}

	entities := make([]*job.JobPosting, 0, len(models))
	for _, model := range models {
		entity, err := model.toEntity()
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}

	return entities, nil
}

// IncrementViews atomically adds 1 to the views counter. A single UPDATE
// keeps concurrent increments from losing writes; never read-modify-write.
func (r *PostgresJobRepository) IncrementViews(ctx context.Context, id kernel.JobID) error {
	return r.incrementCounter(ctx, id, "views")
}

// IncrementApplications atomically adds 1 to the applications counter.
func (r *PostgresJobRepository) IncrementApplications(ctx context.Context, id kernel.JobID) error {
	return r.incrementCounter(ctx, id, "applications_count")
}

func (r *PostgresJobRepository) incrementCounter(ctx context.Context, id kernel.JobID, column string) error {
	query := fmt.Sprintf(`UPDATE jobs SET %s = %s + 1 WHERE id = $1`, column, column)

	result, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return fmt.Errorf("failed to increment %s: %w", column, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return job.ErrJobNotFound()
	}

	return nil
}

// Exists checks if a posting exists by ID
func (r *PostgresJobRepository) Exists(ctx context.Context, id kernel.JobID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, string(id))
	if err != nil {
		return false, fmt.Errorf("failed to check job existence: %w", err)
	}

	return exists, nil
}
