package jobapi

import (
	"testing"
)

func TestParseSearchRequestDefaults(t *testing.T) {
	req := parseSearchRequest(map[string]string{})

	if req.Pagination.Page != 1 {
		t.Errorf("page = %d, want default 1", req.Pagination.Page)
	}
	if req.Pagination.PageSize != 10 {
		t.Errorf("limit = %d, want default 10", req.Pagination.PageSize)
	}
	if req.Search != "" || req.JobType != "" || req.ExperienceLevel != "" || req.Location != "" {
		t.Error("absent text parameters should stay empty")
	}
	if req.MinSalary != nil || req.MaxSalary != nil {
		t.Error("absent salary parameters should stay nil")
	}
	if req.Remote != nil || req.IsActive != nil {
		t.Error("absent boolean parameters should add no predicate")
	}
}

func TestParseSearchRequestPagination(t *testing.T) {
	tests := []struct {
		name      string
		params    map[string]string
		wantPage  int
		wantLimit int
	}{
		{"explicit values", map[string]string{"page": "3", "limit": "25"}, 3, 25},
		{"malformed page falls back", map[string]string{"page": "abc", "limit": "5"}, 1, 5},
		{"malformed limit falls back", map[string]string{"page": "2", "limit": "x"}, 2, 10},
		{"zero page falls back", map[string]string{"page": "0"}, 1, 10},
		{"negative limit falls back", map[string]string{"limit": "-3"}, 1, 10},
		{"no clamp on large limit", map[string]string{"limit": "5000"}, 1, 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := parseSearchRequest(tt.params)
			if req.Pagination.Page != tt.wantPage {
				t.Errorf("page = %d, want %d", req.Pagination.Page, tt.wantPage)
			}
			if req.Pagination.PageSize != tt.wantLimit {
				t.Errorf("limit = %d, want %d", req.Pagination.PageSize, tt.wantLimit)
			}
		})
	}
}

func TestParseSearchRequestBooleans(t *testing.T) {
	req := parseSearchRequest(map[string]string{"remote": "true", "isActive": "false"})

	if req.Remote == nil || *req.Remote != true {
		t.Error("remote=true should compile to a true predicate")
	}
	// Only the literal "true" counts; any other value means false.
	if req.IsActive == nil || *req.IsActive != false {
		t.Error("isActive=false should compile to a false predicate")
	}

	req = parseSearchRequest(map[string]string{"remote": "yes"})
	if req.Remote == nil || *req.Remote != false {
		t.Error("non-literal remote value should compile to a false predicate")
	}

	req = parseSearchRequest(map[string]string{"isActive": ""})
	if req.IsActive == nil || *req.IsActive != false {
		t.Error("present-but-empty isActive should compile to a false predicate")
	}
}

func TestParseSearchRequestSalaries(t *testing.T) {
	req := parseSearchRequest(map[string]string{"minSalary": "50000", "maxSalary": "80000"})

	if req.MinSalary == nil || *req.MinSalary != 50000 {
		t.Errorf("minSalary = %v, want 50000", req.MinSalary)
	}
	if req.MaxSalary == nil || *req.MaxSalary != 80000 {
		t.Errorf("maxSalary = %v, want 80000", req.MaxSalary)
	}

	req = parseSearchRequest(map[string]string{"minSalary": "lots"})
	if req.MinSalary != nil {
		t.Error("malformed minSalary should add no predicate")
	}
}
