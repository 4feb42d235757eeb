package jobinfra

import (
	"strings"
	"testing"

	"github.com/TechnologicalJerry/job-portal-website/portal/job"
)

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestBuildSearchWhereEmpty(t *testing.T) {
	where, args := buildSearchWhere(job.SearchJobsRequest{})
	if where != "" {
		t.Errorf("empty filter set should produce no WHERE clause, got %q", where)
	}
	if len(args) != 0 {
		t.Errorf("empty filter set should produce no args, got %v", args)
	}
}

func TestBuildSearchWhereSalaryOverlap(t *testing.T) {
	where, args := buildSearchWhere(job.SearchJobsRequest{
		MinSalary: floatPtr(50000),
		MaxSalary: floatPtr(80000),
	})

	// Range overlap: requested minimum bounds the posting's maximum and
	// vice versa.
	if !strings.Contains(where, "salary_max >= $1") {
		t.Errorf("minSalary should bound salary_max, got %q", where)
	}
	if !strings.Contains(where, "salary_min <= $2") {
		t.Errorf("maxSalary should bound salary_min, got %q", where)
	}
	if len(args) != 2 || args[0] != 50000.0 || args[1] != 80000.0 {
		t.Errorf("args = %v, want [50000 80000]", args)
	}
}

func TestBuildSearchWhereCombinesWithAnd(t *testing.T) {
	where, args := buildSearchWhere(job.SearchJobsRequest{
		Search:          "golang",
		JobType:         "full-time",
		ExperienceLevel: "senior",
		Location:        "berlin",
		Remote:          boolPtr(true),
		IsActive:        boolPtr(true),
	})

	if !strings.HasPrefix(where, "WHERE ") {
		t.Fatalf("clause should start with WHERE, got %q", where)
	}
	if got := strings.Count(where, " AND "); got != 5 {
		t.Errorf("6 predicates should join with 5 ANDs, got %d in %q", got, where)
	}
	if strings.Contains(where, " OR ") {
		t.Errorf("predicates must not join with OR: %q", where)
	}
	if len(args) != 6 {
		t.Errorf("args count = %d, want 6", len(args))
	}
}

func TestBuildSearchWhereTextSearch(t *testing.T) {
	where, args := buildSearchWhere(job.SearchJobsRequest{Search: "backend engineer"})

	if !strings.Contains(where, "plainto_tsquery") {
		t.Errorf("search should compile to a token-based text predicate, got %q", where)
	}
	if !strings.Contains(where, "title || ' ' || description") {
		t.Errorf("search should span title and description, got %q", where)
	}
	if len(args) != 1 || args[0] != "backend engineer" {
		t.Errorf("args = %v, want the raw search phrase", args)
	}
}

func TestBuildSearchWhereLocationPartialMatch(t *testing.T) {
	where, args := buildSearchWhere(job.SearchJobsRequest{Location: "York"})

	if !strings.Contains(where, "location ILIKE $1") {
		t.Errorf("location should compile to a case-insensitive partial match, got %q", where)
	}
	if len(args) != 1 || args[0] != "%York%" {
		t.Errorf("args = %v, want wildcard-wrapped location", args)
	}
}

func TestBuildSearchWhereBooleanFalse(t *testing.T) {
	where, args := buildSearchWhere(job.SearchJobsRequest{IsActive: boolPtr(false)})

	if !strings.Contains(where, "is_active = $1") {
		t.Errorf("explicit isActive=false should still add a predicate, got %q", where)
	}
	if len(args) != 1 || args[0] != false {
		t.Errorf("args = %v, want [false]", args)
	}
}

func TestBuildSearchWhereArgNumbering(t *testing.T) {
	where, _ := buildSearchWhere(job.SearchJobsRequest{
		JobType:   "contract",
		MinSalary: floatPtr(1000),
		IsActive:  boolPtr(true),
	})

	for _, placeholder := range []string{"$1", "$2", "$3"} {
		if !strings.Contains(where, placeholder) {
			t.Errorf("clause should number placeholders sequentially, missing %s in %q", placeholder, where)
		}
	}
	if strings.Contains(where, "$4") {
		t.Errorf("clause should not skip placeholder numbers: %q", where)
	}
}
