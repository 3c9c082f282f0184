package extraction

import (
	"regexp"
	"strings"
)

// keywordSet pairs a classification label with the keywords that vote for it.
// Table order is significant: scoring ties and first-match lookups resolve to
// the earlier entry.
type keywordSet struct {
	label    string
	keywords []string
}

var categoryTable = []keywordSet{
	{"standards", []string{"standard", "compliance", "ccsds", "cfr", "regulation"}},
	{"accuracy", []string{"accuracy", "precision", "error", "tolerance", "calibration"}},
	{"timing", []string{"time", "timing", "millisecond", "second", "latency", "delay"}},
	{"communication", []string{"electromagnetic", "interference", "emi", "rf", "emission"}},
	{"instrument", []string{"abi", "glm", "exis", "suvi", "mag", "instrument", "sensor"}},
	{"data", []string{"data", "image", "product", "measurement", "observation"}},
	{"system", []string{"system", "platform", "spacecraft", "subsystem"}},
	{"performance", []string{"performance", "capability", "requirement", "operation"}},
	{"environmental", []string{"environmental", "temperature", "radiation", "vibration"}},
}

var priorityTable = []keywordSet{
	{"critical", []string{"critical", "mandatory", "essential", "safety"}},
	{"high", []string{"high", "important", "primary", "key"}},
	{"medium", []string{"medium", "normal", "standard"}},
	{"low", []string{"low", "optional", "desired", "nice"}},
}

var verificationTable = []keywordSet{
	{"test", []string{"test", "testing", "verify"}},
	{"analysis", []string{"analysis", "calculation", "computation"}},
	{"inspection", []string{"inspection", "review", "examination"}},
	{"demonstration", []string{"demonstration", "demo", "show"}},
}

var tagTable = []keywordSet{
	{"compliance", []string{"compliant", "compliance", "conform"}},
	{"accuracy", []string{"accuracy", "accurate", "precision", "precise"}},
	{"timing", []string{"time", "timing", "latency", "delay"}},
	{"interface", []string{"interface", "interfacing", "connect"}},
	{"monitoring", []string{"monitor", "monitoring", "observe"}},
	{"automatic", []string{"automatic", "automated", "auto"}},
	{"real-time", []string{"real-time", "real time", "realtime"}},
}

var titleShallPattern = regexp.MustCompile(`(?i)(.+?)\s+shall\s+(.+?)(?:\.|\s|$)`)
var leadingThePattern = regexp.MustCompile(`(?i)^The\s+`)

const maxTitleLength = 80

// categorize assigns the category whose keywords score highest against the
// text. Ties resolve to the earlier table entry; no hits yield "general".
func categorize(text string) string {
	lower := strings.ToLower(text)

	best := "general"
	bestScore := 0
	for _, set := range categoryTable {
		score := 0
		for _, kw := range set.keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = set.label
			bestScore = score
		}
	}
	return best
}

// determinePriority returns the first priority whose keywords appear in the
// text, falling back on the requirement verb: shall reads as high, should as
// medium, anything else medium.
func determinePriority(text string) string {
	lower := strings.ToLower(text)

	for _, set := range priorityTable {
		for _, kw := range set.keywords {
			if strings.Contains(lower, kw) {
				return set.label
			}
		}
	}

	if strings.Contains(lower, "shall") {
		return "high"
	}
	return "medium"
}

// verificationMethod returns the first matching verification method, or
// "test" when nothing matches.
func verificationMethod(text string) string {
	lower := strings.ToLower(text)

	for _, set := range verificationTable {
		for _, kw := range set.keywords {
			if strings.Contains(lower, kw) {
				return set.label
			}
		}
	}
	return "test"
}

// extractTags collects every tag whose keywords appear in the text.
func extractTags(text string) []string {
	lower := strings.ToLower(text)

	tags := make([]string, 0)
	for _, set := range tagTable {
		for _, kw := range set.keywords {
			if strings.Contains(lower, kw) {
				tags = append(tags, set.label)
				break
			}
		}
	}
	return tags
}

// generateTitle builds a concise title from the clause. A "<subject> shall
// <action>" clause yields "subject - action"; otherwise the first sentence or
// a truncated prefix serves.
func generateTitle(text string) string {
	if match := titleShallPattern.FindStringSubmatch(text); match != nil {
		subject := leadingThePattern.ReplaceAllString(strings.TrimSpace(match[1]), "")
		action := strings.TrimSpace(match[2])

		title := subject + " - " + action
		if len(title) > maxTitleLength {
			title = title[:maxTitleLength-3] + "..."
		}
		return title
	}

	first, _, _ := strings.Cut(text, ".")
	first = strings.TrimSpace(first)
	if len(first) <= maxTitleLength {
		return first
	}
	return strings.TrimSpace(text[:maxTitleLength-3]) + "..."
}

// buildRequirement assembles a classified requirement from a cleaned clause.
func buildRequirement(id, text string, pageNum int, docName, section string) Requirement {
	return Requirement{
		ID:                 id,
		Title:              generateTitle(text),
		Text:               text,
		Category:           categorize(text),
		Priority:           determinePriority(text),
		SourcePage:         pageNum,
		SourceDocument:     docName,
		VerificationMethod: verificationMethod(text),
		ParentSection:      section,
		Tags:               extractTags(text),
	}
}
