package extraction

import (
	"regexp"
	"strings"
)

var sectionPattern = regexp.MustCompile(`(\d+\.\d+(?:\.\d+)*)[ \t]+([A-Za-z \t\-]+)`)

// sectionTracker carries the most recent "N.N[.N] Title" heading across pages
// so requirements can record the section they appeared under.
type sectionTracker struct {
	current string
}

// observe scans normalized page text for a section heading and updates the
// tracked section when one is found.
func (t *sectionTracker) observe(text string) {
	match := sectionPattern.FindStringSubmatch(text)
	if match == nil {
		return
	}
	t.current = match[1] + " " + strings.TrimSpace(match[2])
}
