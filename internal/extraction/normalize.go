package extraction

import (
	"regexp"
	"strings"
)

var (
	pageHeaderPattern = regexp.MustCompile(`(?i)Page \d+ of \d+`)
	docHeaderPattern  = regexp.MustCompile(`(?i)GOES-R.*?MRD.*?\d{4}`)
	pipeRunPattern    = regexp.MustCompile(`\|+`)
	spaceRunPattern   = regexp.MustCompile(`\s+`)

	leadingJunkPattern  = regexp.MustCompile(`^\W+`)
	trailingJunkPattern = regexp.MustCompile(`[^\w.)]+$`)
	doubledShallPattern = regexp.MustCompile(`(?i)\bshall\s+shall\b`)
	doubledThePattern   = regexp.MustCompile(`(?i)\bthe\s+the\b`)

	sectionOnlyPattern = regexp.MustCompile(`^\d+\.\d+\s*$`)
	allCapsPattern     = regexp.MustCompile(`^[A-Z\s]+$`)
)

var requirementIndicators = []string{"shall", "must", "will", "should"}

// normalizePageText strips running headers and table separators, then collapses
// whitespace within each line while preserving line breaks. Blank lines are
// dropped.
func normalizePageText(text string) string {
	text = pageHeaderPattern.ReplaceAllString(text, "")
	text = docHeaderPattern.ReplaceAllString(text, "")
	text = pipeRunPattern.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = spaceRunPattern.ReplaceAllString(strings.TrimSpace(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}

	return strings.Join(cleaned, "\n")
}

// cleanRequirementText collapses whitespace, trims edge punctuation artifacts,
// and fixes doubled words introduced by layout extraction.
func cleanRequirementText(text string) string {
	text = spaceRunPattern.ReplaceAllString(text, " ")
	text = leadingJunkPattern.ReplaceAllString(text, "")
	text = trailingJunkPattern.ReplaceAllString(text, "")
	text = doubledShallPattern.ReplaceAllString(text, "shall")
	text = doubledThePattern.ReplaceAllString(text, "the")
	return strings.TrimSpace(text)
}

// isValidRequirement reports whether text reads as a requirement clause: it
// must carry a requirement indicator, not be a bare section number or
// all-caps heading, and exceed minimal length.
func isValidRequirement(text string) bool {
	if len(text) <= 15 {
		return false
	}
	if sectionOnlyPattern.MatchString(text) || allCapsPattern.MatchString(text) {
		return false
	}

	lower := strings.ToLower(text)
	for _, indicator := range requirementIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}
