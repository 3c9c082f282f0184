package extraction

import (
	"errors"
	"strings"
)

// ErrPageOutOfRange indicates a page request outside the source's page range.
var ErrPageOutOfRange = errors.New("page out of range")

// Page is one unit of source text with optional structured table rows.
type Page struct {
	Number int
	Text   string
	Tables []Table
}

// Table holds rows of cell text extracted from a tabular region.
type Table [][]string

// Source yields document pages for extraction. Pages are 1-based.
type Source interface {
	Name() string
	PageCount() int
	Page(n int) (Page, error)
}

// TextSource serves plain text as a page source, splitting pages on
// form-feed characters.
type TextSource struct {
	name  string
	pages []string
}

// NewTextSource creates a TextSource from raw text. Text without form feeds
// is treated as a single page.
func NewTextSource(name, text string) *TextSource {
	return &TextSource{
		name:  name,
		pages: strings.Split(text, "\f"),
	}
}

func (s *TextSource) Name() string {
	return s.name
}

func (s *TextSource) PageCount() int {
	return len(s.pages)
}

func (s *TextSource) Page(n int) (Page, error) {
	if n < 1 || n > len(s.pages) {
		return Page{}, ErrPageOutOfRange
	}
	return Page{
		Number: n,
		Text:   s.pages[n-1],
	}, nil
}
