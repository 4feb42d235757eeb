package job

import (
	"net/http"

	"github.com/TechnologicalJerry/job-portal-website/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("JOB")

// Error codes
var (
	CodeJobNotFound        = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job not found")
	CodeNotJobOwner        = ErrRegistry.Register("NOT_OWNER", errx.TypeAuthorization, http.StatusForbidden, "You don't have permission to modify this job")
	CodeJobClosed          = ErrRegistry.Register("CLOSED", errx.TypeBusiness, http.StatusBadRequest, "This job is no longer accepting applications")
	CodeInvalidSalaryRange = ErrRegistry.Register("INVALID_SALARY_RANGE", errx.TypeValidation, http.StatusBadRequest, "Maximum salary must be greater than or equal to minimum salary")
)

// Helper functions
func ErrJobNotFound() *errx.Error {
	return ErrRegistry.New(CodeJobNotFound)
}

func ErrNotJobOwner() *errx.Error {
	return ErrRegistry.New(CodeNotJobOwner)
}

func ErrJobClosed() *errx.Error {
	return ErrRegistry.New(CodeJobClosed)
}

func ErrInvalidSalaryRange() *errx.Error {
	return ErrRegistry.New(CodeInvalidSalaryRange)
}
