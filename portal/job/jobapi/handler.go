package jobapi

import (
	"github.com/TechnologicalJerry/job-portal-website/pkg/iam/auth"
	"github.com/TechnologicalJerry/job-portal-website/pkg/kernel"
	"github.com/TechnologicalJerry/job-portal-website/portal/job"
	"github.com/TechnologicalJerry/job-portal-website/portal/job/jobsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for job operations
type Handlers struct {
	service *jobsrv.JobService
}

// NewHandlers creates a new job handlers instance
func NewHandlers(service *jobsrv.JobService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreateJob creates a new job posting
// POST /api/jobs
func (h *Handlers) CreateJob(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req job.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	created, err := h.service.CreateJob(c.Context(), req, authContext.UserID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Job created successfully",
		"data":    created,
	})
}

// GetJob retrieves a job posting and counts the view
// GET /api/jobs/:jobId
func (h *Handlers) GetJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("jobId"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	resp, err := h.service.GetJob(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    resp,
	})
}

// ListJobs runs the filtered, paginated listing query
// GET /api/jobs
func (h *Handlers) ListJobs(c *fiber.Ctx) error {
	req := parseSearchRequest(c.Queries())

	result, err := h.service.ListJobs(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}

// UpdateJob partially updates a posting owned by the caller
// PUT /api/jobs/:jobId
func (h *Handlers) UpdateJob(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	jobID := kernel.JobID(c.Params("jobId"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	var req job.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	updated, err := h.service.UpdateJob(c.Context(), jobID, req, authContext.UserID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Job updated successfully",
		"data":    updated,
	})
}

// DeleteJob permanently removes a posting owned by the caller
// DELETE /api/jobs/:jobId
func (h *Handlers) DeleteJob(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	jobID := kernel.JobID(c.Params("jobId"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteJob(c.Context(), jobID, authContext.UserID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Job deleted successfully",
	})
}

// GetMyJobs lists the authenticated caller's postings
// GET /api/jobs/my/jobs
func (h *Handlers) GetMyJobs(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	jobs, err := h.service.GetMyJobs(c.Context(), authContext.UserID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    jobs,
	})
}

// ApplyToJob submits an application against an open posting
// POST /api/jobs/:jobId/apply
func (h *Handlers) ApplyToJob(c *fiber.Ctx) error {
	if _, ok := auth.GetAuthContext(c); !ok {
		return auth.ErrMissingToken()
	}

	jobID := kernel.JobID(c.Params("jobId"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.ApplyToJob(c.Context(), jobID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Application submitted successfully",
	})
}

// RegisterRoutes registers all job routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/jobs")

	// Public read routes
	api.Get("/", handlers.ListJobs)

	// Owner listing registers before the :jobId wildcard
	api.Get("/my/jobs",
		authMiddleware.Authenticate(),
		handlers.GetMyJobs,
	)

	api.Get("/:jobId", handlers.GetJob)

	// Write routes require an authenticated caller
	api.Post("/",
		authMiddleware.Authenticate(),
		handlers.CreateJob,
	)

	api.Put("/:jobId",
		authMiddleware.Authenticate(),
		handlers.UpdateJob,
	)

	api.Delete("/:jobId",
		authMiddleware.Authenticate(),
		handlers.DeleteJob,
	)

	api.Post("/:jobId/apply",
		authMiddleware.Authenticate(),
		handlers.ApplyToJob,
	)
}
