package extraction

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	generatedIDPattern = regexp.MustCompile(`^REQ-\d{3}-[0-9A-F]{6}$`)
	trailingNumPattern = regexp.MustCompile(`(\d+)$`)
)

// postProcess deduplicates and orders the raw extraction output. Duplicate
// IDs keep the entry with strictly longer text; synthetic hash IDs also
// collapse on normalized text so the same clause found on multiple pages
// appears once. Results sort by numeric ID suffix when every ID has one,
// otherwise discovery order holds.
func postProcess(reqs []Requirement) []Requirement {
	byID := make(map[string]int, len(reqs))
	unique := make([]Requirement, 0, len(reqs))

	for _, req := range reqs {
		if idx, ok := byID[req.ID]; ok {
			if len(req.Text) > len(unique[idx].Text) {
				unique[idx] = req
			}
			continue
		}
		byID[req.ID] = len(unique)
		unique = append(unique, req)
	}

	seen := make(map[string]bool)
	result := make([]Requirement, 0, len(unique))
	for _, req := range unique {
		if generatedIDPattern.MatchString(req.ID) {
			key := normalizeForComparison(req.Text)
			if seen[key] {
				continue
			}
			seen[key] = true
		}
		result = append(result, req)
	}

	sortByNumericID(result)
	return result
}

func normalizeForComparison(text string) string {
	return strings.TrimSpace(spaceRunPattern.ReplaceAllString(strings.ToLower(text), " "))
}

func sortByNumericID(reqs []Requirement) {
	type keyed struct {
		num int
		req Requirement
	}

	entries := make([]keyed, len(reqs))
	for i, req := range reqs {
		match := trailingNumPattern.FindStringSubmatch(req.ID)
		if match == nil {
			return
		}
		n, err := strconv.Atoi(match[1])
		if err != nil {
			return
		}
		entries[i] = keyed{num: n, req: req}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].num < entries[j].num
	})

	for i, entry := range entries {
		reqs[i] = entry.req
	}
}
