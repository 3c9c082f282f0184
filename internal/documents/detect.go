package documents

import "strings"

// detectDocumentType infers the document type from filename substrings.
// Matching is case-insensitive and ordered; unknown filenames fall back to
// the generic "Document" type.
func detectDocumentType(filename string) string {
	lower := strings.ToLower(filename)

	switch {
	case strings.Contains(lower, "mrd"):
		return "MRD"
	case strings.Contains(lower, "srd"):
		return "SRD"
	case strings.Contains(lower, "icd"):
		return "ICD"
	case strings.Contains(lower, "requirement"):
		return "Requirements"
	case strings.Contains(lower, "specification"):
		return "Specification"
	default:
		return "Document"
	}
}

// detectMission infers the mission from filename substrings. "goes" covers
// both goes-r and bare goes spellings.
func detectMission(filename string) string {
	lower := strings.ToLower(filename)

	switch {
	case strings.Contains(lower, "goes"):
		return "GOES-R"
	case strings.Contains(lower, "jwst"):
		return "JWST"
	case strings.Contains(lower, "artemis"):
		return "Artemis"
	case strings.Contains(lower, "orion"):
		return "Orion"
	default:
		return "Unknown"
	}
}
