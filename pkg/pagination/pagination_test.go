package pagination_test

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/JaimeStill/loom/pkg/pagination"
	"github.com/JaimeStill/loom/pkg/query"
)

func defaultConfig() pagination.Config {
	return pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
}

func TestPageRequestFromQuery(t *testing.T) {
	tests := []struct {
		name         string
		rawQuery     string
		wantPage     int
		wantPageSize int
	}{
		{
			name:         "defaults on empty query",
			rawQuery:     "",
			wantPage:     1,
			wantPageSize: 20,
		},
		{
			name:         "explicit values",
			rawQuery:     "page=3&page_size=50",
			wantPage:     3,
			wantPageSize: 50,
		},
		{
			name:         "page size clamped to max",
			rawQuery:     "page=1&page_size=500",
			wantPage:     1,
			wantPageSize: 100,
		},
		{
			name:         "negative page normalized",
			rawQuery:     "page=-2",
			wantPage:     1,
			wantPageSize: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.rawQuery)
			if err != nil {
				t.Fatalf("parse query: %v", err)
			}

			req := pagination.PageRequestFromQuery(values, defaultConfig())
			if req.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", req.Page, tt.wantPage)
			}
			if req.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d, want %d", req.PageSize, tt.wantPageSize)
			}
		})
	}
}

func TestPageRequestFromQuerySortAndSearch(t *testing.T) {
	values, _ := url.ParseQuery("search=mrd&sort=Filename,-UploadedAt")
	req := pagination.PageRequestFromQuery(values, defaultConfig())

	if req.Search == nil || *req.Search != "mrd" {
		t.Fatalf("Search = %v, want mrd", req.Search)
	}

	want := pagination.SortFields{
		{Field: "Filename"},
		{Field: "UploadedAt", Descending: true},
	}
	if len(req.Sort) != len(want) {
		t.Fatalf("Sort = %v, want %v", req.Sort, want)
	}
	for i := range want {
		if req.Sort[i] != want[i] {
			t.Errorf("Sort[%d] = %v, want %v", i, req.Sort[i], want[i])
		}
	}
}

func TestSortFieldsUnmarshalString(t *testing.T) {
	var fields pagination.SortFields
	if err := json.Unmarshal([]byte(`"name,-created_at"`), &fields); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if len(fields) != 2 {
		t.Fatalf("fields = %v, want 2 entries", fields)
	}
	if fields[0] != (query.SortField{Field: "name"}) {
		t.Errorf("fields[0] = %v", fields[0])
	}
	if fields[1] != (query.SortField{Field: "created_at", Descending: true}) {
		t.Errorf("fields[1] = %v", fields[1])
	}
}

func TestSortFieldsUnmarshalArray(t *testing.T) {
	var fields pagination.SortFields
	data := `[{"Field":"name"},{"Field":"created_at","Descending":true}]`
	if err := json.Unmarshal([]byte(data), &fields); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if len(fields) != 2 || !fields[1].Descending {
		t.Errorf("fields = %v", fields)
	}
}

func TestOffset(t *testing.T) {
	req := pagination.PageRequest{Page: 4, PageSize: 25}
	if got := req.Offset(); got != 75 {
		t.Errorf("Offset() = %d, want 75", got)
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		pageSize       int
		wantTotalPages int
	}{
		{name: "exact division", total: 100, pageSize: 20, wantTotalPages: 5},
		{name: "remainder rounds up", total: 101, pageSize: 20, wantTotalPages: 6},
		{name: "empty still one page", total: 0, pageSize: 20, wantTotalPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pagination.NewPageResult([]string{}, tt.total, 1, tt.pageSize)
			if result.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", result.TotalPages, tt.wantTotalPages)
			}
		})
	}
}

func TestNewPageResultNilData(t *testing.T) {
	result := pagination.NewPageResult[string](nil, 0, 1, 20)
	if result.Data == nil {
		t.Error("Data should be an empty slice, not nil")
	}
}
