// Package documents implements the document domain for Loom.
// It provides types, data access, and business logic for document upload,
// blob storage integration, and requirement extraction orchestration.
package documents

import (
	"time"

	"github.com/google/uuid"
)

// Processing status values for the document lifecycle.
const (
	ProcessingPending    = "pending"
	ProcessingInProgress = "processing"
	ProcessingCompleted  = "completed"
	ProcessingFailed     = "failed"
)

// Extraction status values for the requirement extraction lifecycle.
const (
	ExtractionNotStarted = "not_started"
	ExtractionInProgress = "in_progress"
	ExtractionCompleted  = "completed"
	ExtractionFailed     = "failed"
)

// Result status values returned by Process.
const (
	ResultCompleted        = "completed"
	ResultFailed           = "failed"
	ResultAlreadyCompleted = "already_completed"
	ResultNoRequirements   = "no_requirements"
)

// Document represents an uploaded requirement document with its metadata and
// blob storage reference.
type Document struct {
	ID                    uuid.UUID  `json:"id"`
	Filename              string     `json:"filename"`
	ContentType           string     `json:"content_type"`
	SizeBytes             int64      `json:"size_bytes"`
	PageCount             *int       `json:"page_count"`
	StorageKey            string     `json:"storage_key"`
	DocumentType          string     `json:"document_type"`
	Mission               string     `json:"mission"`
	ProcessingStatus      string     `json:"processing_status"`
	ExtractionStatus      string     `json:"extraction_status"`
	RequirementsExtracted int        `json:"requirements_extracted"`
	ErrorMessage          *string    `json:"error_message"`
	UploadedAt            time.Time  `json:"uploaded_at"`
	ProcessedAt           *time.Time `json:"processed_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// CreateCommand carries the data needed to upload and register a new document.
// Data holds the raw file bytes. Empty DocumentType and Mission values are
// detected from the filename. PageCount is optional and extracted by the
// caller via pdfcpu for PDF uploads; nil values are stored as NULL.
type CreateCommand struct {
	Data         []byte
	Filename     string
	ContentType  string
	DocumentType string
	Mission      string
	PageCount    *int
}

// ProcessResult reports the outcome of a requirement extraction run.
type ProcessResult struct {
	Status                string `json:"status"`
	RequirementsExtracted int    `json:"requirements_extracted"`
	Error                 string `json:"error,omitempty"`
}
