package jobapi

import (
	"strconv"

	"github.com/TechnologicalJerry/job-portal-website/pkg/kernel"
	"github.com/TechnologicalJerry/job-portal-website/portal/job"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// parseSearchRequest compiles the raw listing query parameters into a
// normalized filter set plus pagination window. Every parameter is optional;
// page and limit fall back to their defaults on absence or parse failure
// rather than failing the request. No upper bound is enforced on limit.
func parseSearchRequest(params map[string]string) job.SearchJobsRequest {
	req := job.SearchJobsRequest{
		Search:          params["search"],
		JobType:         params["jobType"],
		ExperienceLevel: params["experienceLevel"],
		Location:        params["location"],
		Pagination: kernel.PaginationOptions{
			Page:     parsePositiveInt(params["page"], defaultPage),
			PageSize: parsePositiveInt(params["limit"], defaultLimit),
		},
	}

	if raw, ok := params["minSalary"]; ok && raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			req.MinSalary = &v
		}
	}
	if raw, ok := params["maxSalary"]; ok && raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			req.MaxSalary = &v
		}
	}

	// Boolean filters apply only when the key is present; the value matches
	// the literal "true", anything else means false. An absent isActive key
	// adds no predicate, so inactive postings stay visible by default.
	if raw, ok := params["remote"]; ok {
		v := raw == "true"
		req.Remote = &v
	}
	if raw, ok := params["isActive"]; ok {
		v := raw == "true"
		req.IsActive = &v
	}

	return req
}

func parsePositiveInt(raw string, fallback int) int {
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
