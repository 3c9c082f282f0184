// Package requirements implements persistence and retrieval for requirements
// extracted from documents, including export and import of the extraction
// interchange format and back-references to generated demo artifacts.
package requirements

import (
	"time"

	"github.com/google/uuid"
)

// Requirement is a stored requirement row owned by a document.
type Requirement struct {
	ID                 uuid.UUID `json:"id"`
	DocumentID         uuid.UUID `json:"document_id"`
	RequirementID      string    `json:"requirement_id"`
	Title              string    `json:"title"`
	Text               string    `json:"text"`
	Category           string    `json:"category"`
	Priority           string    `json:"priority"`
	VerificationMethod string    `json:"verification_method"`
	SourcePage         int       `json:"source_page"`
	ParentSection      string    `json:"parent_section"`
	Tags               []string  `json:"tags"`
	GeneratedItemIDs   []string  `json:"generated_item_ids"`
	GeneratedIssueIDs  []string  `json:"generated_issue_ids"`
	ExtractedAt        time.Time `json:"extracted_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	SourceDocument     string    `json:"source_document"`
}

// ArtifactRefs carries generated artifact IDs to attach to a requirement row
// after a seeded generation run.
type ArtifactRefs struct {
	ItemIDs  []string `json:"item_ids"`
	IssueIDs []string `json:"issue_ids"`
}
