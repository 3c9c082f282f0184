package extraction

import (
	"crypto/md5"
	"fmt"
	"regexp"
	"strings"
)

// candidate is a potential requirement produced by a pattern strategy before
// cleaning, validation, and classification. An empty id means no identifier
// was present in the source and one must be generated.
type candidate struct {
	id   string
	text string
}

var (
	tableIDPattern = regexp.MustCompile(`^[A-Z]{2,5}-?\d+(?:\.\d+)*$`)

	idBlockPattern  = regexp.MustCompile(`\n(MRD\d+)\s+`)
	nextIDPattern   = regexp.MustCompile(`\nMRD\d+`)
	idPrefixPattern = regexp.MustCompile(`(?m)^([A-Z]{2,5}-\d+(?:\.\d+)*):?[ \t]*`)
	numberedPattern = regexp.MustCompile(`(?m)^(\d+\.\d+(?:\.\d+)*)[:.]?[ \t]+`)

	shallLinePattern = regexp.MustCompile(`(?im)^(?:the\s+)?(?:system|satellite|instrument|subsystem|spacecraft|abi|glm|suvi|exis|mag)\s+shall\s+.+$`)

	inlineIDPattern = regexp.MustCompile(`[A-Z]{2,4}-\d+(?:\.\d+)*`)
)

// tableRows extracts candidates from structured table rows where the first
// column is a requirement identifier and the second holds the clause text.
func tableRows(page Page) []candidate {
	var cands []candidate
	for _, table := range page.Tables {
		for _, row := range table {
			if len(row) < 2 {
				continue
			}
			id := strings.TrimSpace(row[0])
			text := strings.TrimSpace(row[1])
			if id == "" || text == "" || !tableIDPattern.MatchString(id) {
				continue
			}
			cands = append(cands, candidate{id: id, text: text})
		}
	}
	return cands
}

// idBlocks splits text at MRD markers, pairing each marker with the block of
// text that follows it. A block is truncated at the next MRD marker in case
// the split captured trailing content.
func idBlocks(text string) []candidate {
	matches := idBlockPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	cands := make([]candidate, 0, len(matches))
	for i, m := range matches {
		id := text[m[2]:m[3]]

		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		body := text[m[1]:end]

		if loc := nextIDPattern.FindStringIndex(body); loc != nil {
			body = body[:loc[0]]
		}

		cands = append(cands, candidate{id: id, text: strings.TrimSpace(body)})
	}
	return cands
}

// idPrefixed extracts candidates from lines that open with a generic
// identifier such as REQ-101 or SYS-4.2, taking text up to the next
// identifier line.
func idPrefixed(text string) []candidate {
	return segment(text, idPrefixPattern)
}

// numberedClauses extracts candidates from NASA-style numbered clauses
// ("3.2.7 The system shall ...").
func numberedClauses(text string) []candidate {
	return segment(text, numberedPattern)
}

// shallSentences extracts standalone "<subject> shall ..." sentences for
// documents that carry no identifiers at all.
func shallSentences(text string) []candidate {
	matches := shallLinePattern.FindAllString(text, -1)
	cands := make([]candidate, 0, len(matches))
	for _, m := range matches {
		cands = append(cands, candidate{text: strings.TrimSpace(m)})
	}
	return cands
}

func segment(text string, marker *regexp.Regexp) []candidate {
	matches := marker.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	cands := make([]candidate, 0, len(matches))
	for i, m := range matches {
		id := text[m[2]:m[3]]

		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		body := strings.TrimSpace(text[m[1]:end])

		cands = append(cands, candidate{id: id, text: body})
	}
	return cands
}

// generateID derives an identifier for candidates extracted without one.
// An identifier embedded in the text wins; otherwise the page number and a
// content hash produce a stable synthetic ID.
func generateID(text string, pageNum int) string {
	if id := inlineIDPattern.FindString(text); id != "" {
		return id
	}

	sum := fmt.Sprintf("%x", md5.Sum([]byte(text)))
	return fmt.Sprintf("REQ-%03d-%s", pageNum, strings.ToUpper(sum[:6]))
}
