// Package extraction implements the heuristic requirements-extraction pipeline
// for mission requirement documents. Pages flow through normalization, section
// tracking, ordered pattern strategies, and keyword classification before
// deduplication produces the final requirement set.
package extraction

// Requirement is a structured requirement extracted from a document page.
type Requirement struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Text               string   `json:"text"`
	Category           string   `json:"category"`
	Priority           string   `json:"priority"`
	SourcePage         int      `json:"source_page"`
	SourceDocument     string   `json:"source_document"`
	VerificationMethod string   `json:"verification_method"`
	ParentSection      string   `json:"parent_section"`
	Tags               []string `json:"tags"`
}
