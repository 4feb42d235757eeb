package kernel

import "testing"

func TestOffset(t *testing.T) {
	tests := []struct {
		name string
		opts PaginationOptions
		want int
	}{
		{"first page", PaginationOptions{Page: 1, PageSize: 10}, 0},
		{"second page", PaginationOptions{Page: 2, PageSize: 10}, 10},
		{"third page small size", PaginationOptions{Page: 3, PageSize: 5}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.Offset(); got != tt.want {
				t.Errorf("Offset() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		pageSize int
		want     int
	}{
		{"exact division", 20, 10, 2},
		{"partial last page", 25, 10, 3},
		{"single item", 1, 10, 1},
		{"empty set", 0, 10, 0},
		{"zero page size", 25, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalPages(tt.total, tt.pageSize); got != tt.want {
				t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.pageSize, got, tt.want)
			}
		})
	}
}
