package requirements

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/loom/internal/extraction"
	"github.com/JaimeStill/loom/pkg/pagination"
)

// System defines the public contract for requirement domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Requirement], error)

	Find(ctx context.Context, id uuid.UUID) (*Requirement, error)
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]Requirement, error)

	// ReplaceForDocument atomically replaces the document's stored
	// requirements with a new extraction result and returns the stored count.
	ReplaceForDocument(ctx context.Context, documentID uuid.UUID, extracted []extraction.Requirement) (int, error)

	// SetGeneratedArtifacts records generated artifact back-references on a
	// requirement row.
	SetGeneratedArtifacts(ctx context.Context, id uuid.UUID, refs ArtifactRefs) error

	// Export builds the extraction interchange document from stored rows.
	Export(ctx context.Context, documentID uuid.UUID) (extraction.Document, error)
}
