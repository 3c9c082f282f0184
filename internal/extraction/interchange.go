package extraction

import (
	"encoding/json"
	"io"
	"time"
)

// Version identifies the pipeline revision recorded in saved interchange
// documents.
const Version = "2.0"

// Document is the JSON interchange format for a completed extraction run.
type Document struct {
	ExtractionDate    time.Time     `json:"extraction_date"`
	TotalRequirements int           `json:"total_requirements"`
	ExtractorVersion  string        `json:"extractor_version"`
	Requirements      []Requirement `json:"requirements"`
}

// NewDocument wraps an extraction result in an interchange document stamped
// with the current time and pipeline version.
func NewDocument(reqs []Requirement) Document {
	if reqs == nil {
		reqs = []Requirement{}
	}
	return Document{
		ExtractionDate:    time.Now().UTC(),
		TotalRequirements: len(reqs),
		ExtractorVersion:  Version,
		Requirements:      reqs,
	}
}

// WriteDocument serializes the document as indented JSON.
func WriteDocument(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// ReadDocument deserializes an interchange document.
func ReadDocument(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}
