package jobinfra

import (
	"fmt"
	"strings"

	"github.com/TechnologicalJerry/job-portal-website/portal/job"
)

// buildSearchWhere translates a normalized filter set into a WHERE clause
// and its positional arguments. Predicates are combined with AND; a nil or
// empty filter contributes nothing, so an unfiltered request scans the whole
// table (inactive postings included).
func buildSearchWhere(req job.SearchJobsRequest) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argCount := 1

	if req.Search != "" {
		// Token-based full-text match over title and description,
		// mirroring a text index rather than a literal substring.
		conditions = append(conditions, fmt.Sprintf(
			"to_tsvector('english', title || ' ' || description) @@ plainto_tsquery('english', $%d)", argCount))
		args = append(args, req.Search)
		argCount++
	}

	if req.JobType != "" {
		conditions = append(conditions, fmt.Sprintf("job_type = $%d", argCount))
		args = append(args, req.JobType)
		argCount++
	}

	if req.ExperienceLevel != "" {
		conditions = append(conditions, fmt.Sprintf("experience_level = $%d", argCount))
		args = append(args, req.ExperienceLevel)
		argCount++
	}

	if req.Location != "" {
		conditions = append(conditions, fmt.Sprintf("location ILIKE $%d", argCount))
		args = append(args, "%"+req.Location+"%")
		argCount++
	}

	// Salary filters express range overlap: a posting qualifies when its
	// [salary_min, salary_max] interval intersects the requested bounds.
	if req.MinSalary != nil {
		conditions = append(conditions, fmt.Sprintf("salary_max >= $%d", argCount))
		args = append(args, *req.MinSalary)
		argCount++
	}

	if req.MaxSalary != nil {
		conditions = append(conditions, fmt.Sprintf("salary_min <= $%d", argCount))
		args = append(args, *req.MaxSalary)
		argCount++
	}

	if req.Remote != nil {
		conditions = append(conditions, fmt.Sprintf("remote = $%d", argCount))
		args = append(args, *req.Remote)
		argCount++
	}

	if req.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", argCount))
		args = append(args, *req.IsActive)
		argCount++
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
