package jobsrv

import (
	"context"
	"time"

	"github.com/TechnologicalJerry/job-portal-website/pkg/errx"
	"github.com/TechnologicalJerry/job-portal-website/pkg/kernel"
	"github.com/TechnologicalJerry/job-portal-website/pkg/logx"
	"github.com/TechnologicalJerry/job-portal-website/portal/job"
	"github.com/TechnologicalJerry/job-portal-website/portal/user"
	"github.com/google/uuid"
)

// JobService provides business operations for job postings
type JobService struct {
	jobRepo  job.Repository
	userRepo user.Repository
}

// NewJobService creates a new instance of the job service
func NewJobService(
	jobRepo job.Repository,
	userRepo user.Repository,
) *JobService {
	return &JobService{
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

// CreateJob creates a new posting owned by posterID. The salary invariant is
// re-asserted here even though the request layer validates it.
func (s *JobService) CreateJob(ctx context.Context, req job.CreateJobRequest, posterID kernel.UserID) (*job.JobResponse, error) {
	now := time.Now()
	posting := &job.JobPosting{
		ID:                  kernel.NewJobID(uuid.NewString()),
		Title:               req.Title,
		Company:             req.Company,
		Location:            req.Location,
		Description:         req.Description,
		Requirements:        emptyIfNil(req.Requirements),
		Skills:              emptyIfNil(req.Skills),
		Categories:          emptyIfNil(req.Categories),
		Benefits:            emptyIfNil(req.Benefits),
		JobType:             req.JobType,
		ExperienceLevel:     req.ExperienceLevel,
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		SalaryCurrency:      req.SalaryCurrency,
		ApplicationDeadline: req.ApplicationDeadline,
		IsActive:            true,
		Remote:              req.Remote,
		PostedBy:            posterID,
		Views:               0,
		ApplicationsCount:   0,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := posting.ValidateSalaryRange(); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Create(ctx, posting); err != nil {
		return nil, errx.Wrap(err, "failed to create job", errx.TypeInternal)
	}

	return s.toJobResponse(ctx, posting), nil
}

// GetJob retrieves a posting through the public read path. Every successful
// read counts as a view, so the stored counter moves even though the data
// returned to this caller does not.
func (s *JobService) GetJob(ctx context.Context, jobID kernel.JobID) (*job.JobResponse, error) {
	posting, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if err := s.jobRepo.IncrementViews(ctx, jobID); err != nil {
		return nil, errx.Wrap(err, "failed to record job view", errx.TypeInternal)
	}

	return s.toJobResponse(ctx, posting), nil
}

// UpdateJob applies a partial patch after the existence-then-ownership
// checks. Fields absent from the patch keep their stored values; the owner
// reference, identifier and counters are never touched.
func (s *JobService) UpdateJob(ctx context.Context, jobID kernel.JobID, req job.UpdateJobRequest, callerID kernel.UserID) (*job.JobResponse, error) {
	posting, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if !posting.IsOwnedBy(callerID) {
		return nil, job.ErrNotJobOwner().
			WithDetail("job_id", jobID.String()).
			WithDetail("user_id", callerID.String())
	}

	applyPatch(posting, req)

	if err := posting.ValidateSalaryRange(); err != nil {
		return nil, err
	}

	posting.UpdatedAt = time.Now()

	if err := s.jobRepo.Update(ctx, jobID, posting); err != nil {
		return nil, errx.Wrap(err, "failed to update job", errx.TypeInternal)
	}

	return s.toJobResponse(ctx, posting), nil
}

// DeleteJob permanently removes a posting after the existence-then-ownership
// checks. Soft deactivation goes through UpdateJob with isActive=false.
func (s *JobService) DeleteJob(ctx context.Context, jobID kernel.JobID, callerID kernel.UserID) error {
	posting, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}

	if !posting.IsOwnedBy(callerID) {
		return job.ErrNotJobOwner().
			WithDetail("job_id", jobID.String()).
			WithDetail("user_id", callerID.String())
	}

	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		return errx.Wrap(err, "failed to delete job", errx.TypeInternal)
	}

	return nil
}

// ListJobs runs a filtered, paginated listing query.
func (s *JobService) ListJobs(ctx context.Context, req job.SearchJobsRequest) (*job.JobListResponse, error) {
	result, err := s.jobRepo.Search(ctx, req)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list jobs", errx.TypeInternal)
	}

	responses := make([]job.JobResponse, 0, len(result.Items))
	for i := range result.Items {
		responses = append(responses, *s.toJobResponse(ctx, &result.Items[i]))
	}

	return &job.JobListResponse{
		Jobs: responses,
		Pagination: job.PaginationMeta{
			Total:      result.Page.Total,
			Page:       result.Page.Number,
			Limit:      result.Page.Size,
			TotalPages: result.Page.Pages,
		},
	}, nil
}

// GetMyJobs retrieves all postings owned by the caller, newest first.
func (s *JobService) GetMyJobs(ctx context.Context, userID kernel.UserID) ([]job.JobResponse, error) {
	postings, err := s.jobRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list user jobs", errx.TypeInternal)
	}

	responses := make([]job.JobResponse, 0, len(postings))
	for _, posting := range postings {
		responses = append(responses, *s.toJobResponse(ctx, posting))
	}

	return responses, nil
}

// ApplyToJob records an application against an open posting. Deactivated
// postings reject applications; this is the one place isActive gates a
// non-owner action.
func (s *JobService) ApplyToJob(ctx context.Context, jobID kernel.JobID) error {
	posting, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}

	if !posting.CanAcceptApplications() {
		return job.ErrJobClosed().WithDetail("job_id", jobID.String())
	}

	if err := s.jobRepo.IncrementApplications(ctx, jobID); err != nil {
		return errx.Wrap(err, "failed to record application", errx.TypeInternal)
	}

	return nil
}

// ============================================================================
// Helper Methods
// ============================================================================

// applyPatch copies the fields present in the patch onto the entity. Pointer
// fields distinguish "absent" from "set to zero value".
func applyPatch(posting *job.JobPosting, req job.UpdateJobRequest) {
	if req.Title != nil {
		posting.Title = *req.Title
	}
	if req.Company != nil {
		posting.Company = *req.Company
	}
	if req.Location != nil {
		posting.Location = *req.Location
	}
	if req.Description != nil {
		posting.Description = *req.Description
	}
	if req.Requirements != nil {
		posting.Requirements = *req.Requirements
	}
	if req.Skills != nil {
		posting.Skills = *req.Skills
	}
	if req.JobType != nil {
		posting.JobType = *req.JobType
	}
	if req.ExperienceLevel != nil {
		posting.ExperienceLevel = *req.ExperienceLevel
	}
	if req.SalaryMin != nil {
		posting.SalaryMin = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		posting.SalaryMax = *req.SalaryMax
	}
	if req.SalaryCurrency != nil {
		posting.SalaryCurrency = *req.SalaryCurrency
	}
	if req.ApplicationDeadline != nil {
		posting.ApplicationDeadline = req.ApplicationDeadline
	}
	if req.Categories != nil {
		posting.Categories = *req.Categories
	}
	if req.IsActive != nil {
		posting.IsActive = *req.IsActive
	}
	if req.Remote != nil {
		posting.Remote = req.Remote
	}
	if req.Benefits != nil {
		posting.Benefits = *req.Benefits
	}
}

// toJobResponse shapes a posting for callers, resolving the owner reference
// into its display form. A missing owner leaves the field unset, matching
// the lookup-only nature of the reference.
func (s *JobService) toJobResponse(ctx context.Context, posting *job.JobPosting) *job.JobResponse {
	resp := &job.JobResponse{JobPosting: *posting}

	owner, err := s.userRepo.GetByID(ctx, posting.PostedBy)
	if err != nil {
		logx.Debugf("could not resolve owner %s for job %s: %v", posting.PostedBy, posting.ID, err)
		return resp
	}

	resp.PostedByUser = &job.PostedByUser{
		ID:        owner.ID,
		FirstName: owner.FirstName,
		LastName:  owner.LastName,
		Email:     owner.Email,
	}
	return resp
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
