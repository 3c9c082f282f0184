package extraction

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFSource serves PDF pages as a page source. Page text is recovered from
// the consolidated content stream by decoding the text-show operators, which
// is a best-effort rendition: simple-font documents decode cleanly, while
// heavily subsetted fonts may yield partial text.
type PDFSource struct {
	name string
	ctx  *model.Context
}

// NewPDFSource parses PDF bytes and prepares per-page content extraction.
func NewPDFSource(name string, data []byte) (*PDFSource, error) {
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), nil)
	if err != nil {
		return nil, fmt.Errorf("parse pdf: %w", err)
	}

	return &PDFSource{
		name: name,
		ctx:  ctx,
	}, nil
}

func (s *PDFSource) Name() string {
	return s.name
}

func (s *PDFSource) PageCount() int {
	return s.ctx.PageCount
}

func (s *PDFSource) Page(n int) (Page, error) {
	if n < 1 || n > s.ctx.PageCount {
		return Page{}, ErrPageOutOfRange
	}

	reader, err := pdfcpu.ExtractPageContent(s.ctx, n)
	if err != nil {
		return Page{}, fmt.Errorf("extract page %d content: %w", n, err)
	}
	if reader == nil {
		return Page{Number: n}, nil
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return Page{}, fmt.Errorf("read page %d content: %w", n, err)
	}

	return Page{
		Number: n,
		Text:   decodeContentText(content),
	}, nil
}
