package fabrication_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/JaimeStill/loom/internal/extraction"
	"github.com/JaimeStill/loom/internal/fabrication"
	"github.com/JaimeStill/loom/internal/requirements"
	"github.com/JaimeStill/loom/pkg/pagination"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPagination() pagination.Config {
	return pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
}

func testConfig(t *testing.T) fabrication.Config {
	t.Helper()

	var cfg fabrication.Config
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize config: %v", err)
	}
	return cfg
}

// fakeRequirements backs seeded generation runs with in-memory rows and
// records the artifact back-references the engine writes.
type fakeRequirements struct {
	documentID uuid.UUID
	rows       []requirements.Requirement
	refs       map[uuid.UUID]requirements.ArtifactRefs
}

func (f *fakeRequirements) Handler() *requirements.Handler { return nil }

func (f *fakeRequirements) List(
	_ context.Context,
	_ pagination.PageRequest,
	_ requirements.Filters,
) (*pagination.PageResult[requirements.Requirement], error) {
	return nil, nil
}

func (f *fakeRequirements) Find(_ context.Context, _ uuid.UUID) (*requirements.Requirement, error) {
	return nil, nil
}

func (f *fakeRequirements) ListByDocument(_ context.Context, documentID uuid.UUID) ([]requirements.Requirement, error) {
	if documentID != f.documentID {
		return nil, nil
	}
	return f.rows, nil
}

func (f *fakeRequirements) ReplaceForDocument(
	_ context.Context,
	_ uuid.UUID,
	_ []extraction.Requirement,
) (int, error) {
	return 0, nil
}

func (f *fakeRequirements) SetGeneratedArtifacts(_ context.Context, id uuid.UUID, refs requirements.ArtifactRefs) error {
	if f.refs == nil {
		f.refs = map[uuid.UUID]requirements.ArtifactRefs{}
	}
	f.refs[id] = refs
	return nil
}

func (f *fakeRequirements) Export(_ context.Context, _ uuid.UUID) (extraction.Document, error) {
	return extraction.Document{}, nil
}

func TestEngineStartPopulates(t *testing.T) {
	e := fabrication.New(nil, testConfig(t), testLogger(), testPagination())

	if e.Current() != nil {
		t.Fatal("expected nil generator before start")
	}

	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	gen := e.Current()
	if gen == nil {
		t.Fatal("expected generator after start")
	}

	first := gen
	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("second start: %v", err)
	}
	if e.Current() != first {
		t.Error("start regenerated an existing data set")
	}
}

func TestEngineGenerateSwapsAtomically(t *testing.T) {
	e := fabrication.New(nil, testConfig(t), testLogger(), testPagination())

	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	first := e.Current()

	seed := uint64(99)
	result, err := e.Generate(context.Background(), fabrication.GenerateOptions{Seed: &seed})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	second := e.Current()
	if second == first {
		t.Fatal("expected a new generator after generate")
	}

	if result.Status != fabrication.GenerationCompleted {
		t.Errorf("status = %q, expected %q", result.Status, fabrication.GenerationCompleted)
	}
	if result.Seed != seed {
		t.Errorf("seed = %d, expected %d", result.Seed, seed)
	}
	if result.Items != len(second.Items) {
		t.Errorf("result items = %d, generator has %d", result.Items, len(second.Items))
	}
	if result.PulseItems != len(second.Pulse) {
		t.Errorf("result pulse = %d, generator has %d", result.PulseItems, len(second.Pulse))
	}
}
