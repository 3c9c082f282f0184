package fabrication

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/JaimeStill/loom/internal/requirements"
	"github.com/JaimeStill/loom/pkg/pagination"
)

// Generation result statuses.
const (
	GenerationCompleted      = "completed"
	GenerationNoRequirements = "no_requirements"
)

// System defines the public contract for the fabrication engine.
type System interface {
	Handler() *Handler

	// Start fabricates the initial unseeded data set so the read surface
	// is populated from process start.
	Start(ctx context.Context) error

	// Generate builds a complete replacement data set and swaps it in
	// atomically; readers never observe partial state.
	Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error)

	// Current returns the active data set, or nil before the first run.
	Current() *Generator
}

// GenerateOptions controls a generation run. A non-nil Seed makes the run
// reproducible. A non-nil DocumentID seeds the run from that document's
// stored requirements and writes artifact back-references onto the rows.
type GenerateOptions struct {
	Seed       *uint64    `json:"seed,omitempty"`
	DocumentID *uuid.UUID `json:"document_id,omitempty"`
}

// GenerateResult summarizes a generation run.
type GenerateResult struct {
	Status           string `json:"status"`
	Seed             uint64 `json:"seed,omitempty"`
	SeedRequirements int    `json:"seed_requirements,omitempty"`
	Items            int    `json:"items"`
	Relationships    int    `json:"relationships"`
	Issues           int    `json:"issues"`
	IssueLinks       int    `json:"issue_links"`
	Parts            int    `json:"parts"`
	BOMEntries       int    `json:"bom_entries"`
	ChangeNotices    int    `json:"change_notices"`
	Emails           int    `json:"emails"`
	Calendar         int    `json:"calendar"`
	PulseItems       int    `json:"pulse_items"`
}

type engine struct {
	requirements requirements.System
	config       Config
	logger       *slog.Logger
	pagination   pagination.Config
	current      atomic.Pointer[Generator]
}

// New creates the fabrication engine implementing the System interface.
// The config must be finalized.
func New(
	reqs requirements.System,
	cfg Config,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &engine{
		requirements: reqs,
		config:       cfg,
		logger:       logger.With("system", "fabrication"),
		pagination:   pagination,
	}
}

func (e *engine) Handler() *Handler {
	return NewHandler(e, e.logger, e.pagination, e.config.PulseLimit)
}

func (e *engine) Start(ctx context.Context) error {
	if e.config.SkipInitialRun || e.current.Load() != nil {
		return nil
	}

	_, err := e.Generate(ctx, GenerateOptions{})
	return err
}

func (e *engine) Current() *Generator {
	return e.current.Load()
}

func (e *engine) Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	var seeds []requirements.Requirement
	if opts.DocumentID != nil {
		rows, err := e.requirements.ListByDocument(ctx, *opts.DocumentID)
		if err != nil {
			return nil, err
		}

		if len(rows) == 0 {
			return &GenerateResult{Status: GenerationNoRequirements}, nil
		}
		seeds = rows
	}

	var seed uint64
	if opts.Seed != nil {
		seed = *opts.Seed
	}

	gen, err := build(ctx, buildConfig{seed: seed, seeds: seeds, config: e.config})
	if err != nil {
		return nil, err
	}

	e.current.Store(gen)

	for id, refs := range gen.artifactRefs {
		if err := e.requirements.SetGeneratedArtifacts(ctx, id, refs); err != nil {
			e.logger.Warn("record generated artifacts", "requirement", id, "error", err)
		}
	}

	e.logger.Info("fabricated data set",
		"seed", gen.Seed,
		"seeded", len(seeds) > 0,
		"items", len(gen.Items),
		"issues", len(gen.Issues),
		"parts", len(gen.Parts),
		"pulse", len(gen.Pulse),
	)

	return &GenerateResult{
		Status:           GenerationCompleted,
		Seed:             gen.Seed,
		SeedRequirements: len(seeds),
		Items:            len(gen.Items),
		Relationships:    len(gen.Relationships),
		Issues:           len(gen.Issues),
		IssueLinks:       len(gen.IssueLinks),
		Parts:            len(gen.Parts),
		BOMEntries:       len(gen.BOM),
		ChangeNotices:    len(gen.ChangeNotices),
		Emails:           len(gen.Emails),
		Calendar:         len(gen.Calendar),
		PulseItems:       len(gen.Pulse),
	}, nil
}
