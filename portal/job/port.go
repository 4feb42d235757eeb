package job

import (
	"context"

	"github.com/TechnologicalJerry/job-portal-website/pkg/kernel"
)

// Repository is the listing store contract the job domain depends on.
type Repository interface {
	// Create persists a new posting
	Create(ctx context.Context, posting *JobPosting) error

	// GetByID retrieves a posting by ID
	GetByID(ctx context.Context, id kernel.JobID) (*JobPosting, error)

	// Update persists changed fields of an existing posting. Counters and
	// the owner reference are never written by this operation.
	Update(ctx context.Context, id kernel.JobID, posting *JobPosting) error

	// Delete permanently removes a posting by ID
	Delete(ctx context.Context, id kernel.JobID) error

	// Search runs a filtered, sorted, paginated scan. The total count in the
	// result reflects the same predicate independently of the page window.
	Search(ctx context.Context, req SearchJobsRequest) (*kernel.Paginated[JobPosting], error)

	// ListByUserID retrieves all postings of one owner, newest first
	ListByUserID(ctx context.Context, userID kernel.UserID) ([]*JobPosting, error)

	// IncrementViews atomically adds 1 to the views counter
	IncrementViews(ctx context.Context, id kernel.JobID) error

	// IncrementApplications atomically adds 1 to the applications counter
	IncrementApplications(ctx context.Context, id kernel.JobID) error

	// Exists checks if a posting exists by ID
	Exists(ctx context.Context, id kernel.JobID) (bool, error)
}
