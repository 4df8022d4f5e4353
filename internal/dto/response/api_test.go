package response

import (
	"testing"
)

func TestNewSuccess(t *testing.T) {
	resp := NewSuccess("payload", "done")
	if !resp.Success {
		t.Error("Success = false")
	}
	if resp.Message != "done" {
		t.Errorf("Message = %v, want done", resp.Message)
	}
	if resp.Data != "payload" {
		t.Errorf("Data = %v, want payload", resp.Data)
	}
	if resp.Timestamp.IsZero() {
		t.Error("Timestamp not set")
	}
}

func TestNewError(t *testing.T) {
	resp := NewError[any]("it broke")
	if resp.Success {
		t.Error("Success = true")
	}
	if resp.Message != "it broke" {
		t.Errorf("Message = %v, want it broke", resp.Message)
	}
}

func TestNewErrorWithDetails(t *testing.T) {
	details := map[string]string{"email": "invalid format"}
	resp := NewErrorWithDetails[any]("validation failed", details)
	if resp.Errors == nil {
		t.Error("Errors not set")
	}
}

func TestNewPagedResponse(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		size       int
		total      int64
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"first of three", 1, 10, 25, 3, true, false},
		{"middle page", 2, 10, 25, 3, true, true},
		{"last page", 3, 10, 25, 3, false, true},
		{"exact fit", 1, 10, 20, 2, true, false},
		{"empty", 1, 10, 0, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewPagedResponse([]int{}, tt.page, tt.size, tt.total)
			info := resp.PageInfo
			if info.TotalPages != tt.totalPages {
				t.Errorf("TotalPages = %v, want %v", info.TotalPages, tt.totalPages)
			}
			if info.HasNext != tt.hasNext {
				t.Errorf("HasNext = %v, want %v", info.HasNext, tt.hasNext)
			}
			if info.HasPrev != tt.hasPrev {
				t.Errorf("HasPrev = %v, want %v", info.HasPrev, tt.hasPrev)
			}
		})
	}
}
