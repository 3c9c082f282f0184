package documents

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/JaimeStill/loom/pkg/pagination"
)

// System defines the public contract for document domain operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Document], error)

	Find(ctx context.Context, id uuid.UUID) (*Document, error)
	Create(ctx context.Context, cmd CreateCommand) (*Document, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Download returns the stored blob stream along with the document
	// metadata. The caller must close the reader.
	Download(ctx context.Context, id uuid.UUID) (io.ReadCloser, *Document, error)

	// Process runs requirement extraction for the document. A completed
	// extraction short-circuits with the cached count unless force is set.
	Process(ctx context.Context, id uuid.UUID, force bool) (*ProcessResult, error)
}
