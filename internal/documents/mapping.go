package documents

import (
	"net/url"

	"github.com/JaimeStill/loom/pkg/query"
	"github.com/JaimeStill/loom/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "documents", "d").
	Project("id", "ID").
	Project("filename", "Filename").
	Project("content_type", "ContentType").
	Project("size_bytes", "SizeBytes").
	Project("page_count", "PageCount").
	Project("storage_key", "StorageKey").
	Project("document_type", "DocumentType").
	Project("mission", "Mission").
	Project("processing_status", "ProcessingStatus").
	Project("extraction_status", "ExtractionStatus").
	Project("requirements_extracted", "RequirementsExtracted").
	Project("error_message", "ErrorMessage").
	Project("uploaded_at", "UploadedAt").
	Project("processed_at", "ProcessedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "UploadedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for document queries.
// Nil fields are ignored. Status, type, and mission fields use exact
// matching; Filename uses case-insensitive contains matching.
type Filters struct {
	Filename         *string `json:"filename,omitempty"`
	ContentType      *string `json:"content_type,omitempty"`
	DocumentType     *string `json:"document_type,omitempty"`
	Mission          *string `json:"mission,omitempty"`
	ProcessingStatus *string `json:"processing_status,omitempty"`
	ExtractionStatus *string `json:"extraction_status,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereContains("Filename", f.Filename).
		WhereEquals("ContentType", f.ContentType).
		WhereEquals("DocumentType", f.DocumentType).
		WhereEquals("Mission", f.Mission).
		WhereEquals("ProcessingStatus", f.ProcessingStatus).
		WhereEquals("ExtractionStatus", f.ExtractionStatus)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if fn := values.Get("filename"); fn != "" {
		f.Filename = &fn
	}

	if ct := values.Get("content_type"); ct != "" {
		f.ContentType = &ct
	}

	if dt := values.Get("document_type"); dt != "" {
		f.DocumentType = &dt
	}

	if m := values.Get("mission"); m != "" {
		f.Mission = &m
	}

	if ps := values.Get("processing_status"); ps != "" {
		f.ProcessingStatus = &ps
	}

	if es := values.Get("extraction_status"); es != "" {
		f.ExtractionStatus = &es
	}

	return f
}

func scanDocument(s repository.Scanner) (Document, error) {
	var d Document
	err := s.Scan(
		&d.ID,
		&d.Filename,
		&d.ContentType,
		&d.SizeBytes,
		&d.PageCount,
		&d.StorageKey,
		&d.DocumentType,
		&d.Mission,
		&d.ProcessingStatus,
		&d.ExtractionStatus,
		&d.RequirementsExtracted,
		&d.ErrorMessage,
		&d.UploadedAt,
		&d.ProcessedAt,
		&d.UpdatedAt,
	)
	return d, err
}
