package extraction

import (
	"context"
	"log/slog"
)

// minClauseLength is the floor a cleaned clause must exceed before a
// strategy accepts it as a requirement.
const minClauseLength = 20

// Extractor runs the extraction pipeline over a page source.
type Extractor struct {
	logger *slog.Logger
}

// New creates an Extractor.
func New(logger *slog.Logger) *Extractor {
	return &Extractor{
		logger: logger.With("system", "extraction"),
	}
}

// Options control an extraction run.
type Options struct {
	// MaxPages caps the number of pages processed. Zero means all pages.
	MaxPages int
}

// Extract runs every page of the source through the pipeline and returns the
// deduplicated, ordered requirement set. Unreadable pages are skipped with a
// warning; extraction only fails when the context is canceled.
func (e *Extractor) Extract(ctx context.Context, src Source, opts Options) ([]Requirement, error) {
	total := src.PageCount()
	limit := total
	if opts.MaxPages > 0 && opts.MaxPages < total {
		limit = opts.MaxPages
	}

	e.logger.Info("starting extraction", "document", src.Name(), "pages", limit)

	tracker := &sectionTracker{}
	requirements := make([]Requirement, 0)

	for n := 1; n <= limit; n++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		page, err := src.Page(n)
		if err != nil {
			e.logger.Warn("skipping unreadable page", "page", n, "error", err)
			continue
		}

		pageReqs := e.extractPage(page, src.Name(), tracker)
		if len(pageReqs) > 0 {
			e.logger.Info("page extracted", "page", n, "count", len(pageReqs))
		}
		requirements = append(requirements, pageReqs...)
	}

	result := postProcess(requirements)
	e.logger.Info("extraction complete",
		"document", src.Name(),
		"extracted", len(requirements),
		"unique", len(result),
	)

	return result, nil
}

// extractPage applies the ordered strategies to a single page. Table rows are
// tried before any text strategy; among text strategies the first one that
// yields accepted requirements wins.
func (e *Extractor) extractPage(page Page, docName string, tracker *sectionTracker) []Requirement {
	if reqs := e.accept(tableRows(page), page.Number, docName, tracker.current); len(reqs) > 0 {
		return reqs
	}

	text := normalizePageText(page.Text)
	tracker.observe(text)

	strategies := []func(string) []candidate{
		idBlocks,
		idPrefixed,
		numberedClauses,
		shallSentences,
	}

	for _, strategy := range strategies {
		if reqs := e.accept(strategy(text), page.Number, docName, tracker.current); len(reqs) > 0 {
			return reqs
		}
	}

	return nil
}

// accept cleans and validates candidates, assigning generated IDs where the
// source carried none, and classifies the survivors.
func (e *Extractor) accept(cands []candidate, pageNum int, docName, section string) []Requirement {
	reqs := make([]Requirement, 0, len(cands))
	for _, cand := range cands {
		text := cleanRequirementText(cand.text)
		if len(text) <= minClauseLength || !isValidRequirement(text) {
			continue
		}

		id := cand.id
		if id == "" {
			id = generateID(text, pageNum)
		}

		reqs = append(reqs, buildRequirement(id, text, pageNum, docName, section))
	}
	return reqs
}
