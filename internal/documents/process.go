package documents

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/JaimeStill/loom/internal/extraction"
	"github.com/JaimeStill/loom/pkg/repository"
)

// processStore is the slice of document behavior the extraction state
// machine drives: row lookup, status transitions, and the extraction run
// itself. Separated from *repo so the transition rules are testable without
// a database.
type processStore interface {
	Find(ctx context.Context, id uuid.UUID) (*Document, error)
	markProcessing(ctx context.Context, id uuid.UUID) error
	markCompleted(ctx context.Context, id uuid.UUID, count int) error
	markFailed(ctx context.Context, id uuid.UUID, message string) error
	extract(ctx context.Context, doc *Document) (int, error)
}

// Process runs requirement extraction for a document. Calls are serialized
// per document so concurrent triggers cannot interleave status transitions.
// A completed extraction short-circuits with the cached count unless force
// is set. Extraction failures are recorded on the document row and reported
// through the result rather than an error.
func (r *repo) Process(ctx context.Context, id uuid.UUID, force bool) (*ProcessResult, error) {
	lock := r.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	return runExtraction(ctx, r, r.logger, id, force)
}

func runExtraction(
	ctx context.Context,
	store processStore,
	logger *slog.Logger,
	id uuid.UUID,
	force bool,
) (*ProcessResult, error) {
	doc, err := store.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if doc.ExtractionStatus == ExtractionCompleted && !force {
		return &ProcessResult{
			Status:                ResultAlreadyCompleted,
			RequirementsExtracted: doc.RequirementsExtracted,
		}, nil
	}

	if err := store.markProcessing(ctx, id); err != nil {
		return nil, err
	}

	count, err := store.extract(ctx, doc)
	if err != nil {
		msg := err.Error()
		if markErr := store.markFailed(ctx, id, msg); markErr != nil {
			logger.Error("record failed extraction", "id", id, "error", markErr)
		}
		logger.Error("document processing failed", "id", id, "error", err)
		return &ProcessResult{Status: ResultFailed, Error: msg}, nil
	}

	if err := store.markCompleted(ctx, id, count); err != nil {
		return nil, err
	}

	status := ResultCompleted
	if count == 0 {
		status = ResultNoRequirements
	}

	logger.Info("document processed", "id", id, "requirements", count)
	return &ProcessResult{Status: status, RequirementsExtracted: count}, nil
}

func (r *repo) lockFor(id uuid.UUID) *sync.Mutex {
	lock, _ := r.processLocks.LoadOrStore(id, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

func (r *repo) extract(ctx context.Context, doc *Document) (int, error) {
	reader, err := r.storage.Download(ctx, doc.StorageKey)
	if err != nil {
		return 0, fmt.Errorf("download document blob: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return 0, fmt.Errorf("read document blob: %w", err)
	}

	src, err := buildSource(doc, data)
	if err != nil {
		return 0, err
	}

	extracted, err := r.extractor.Extract(ctx, src, extraction.Options{})
	if err != nil {
		return 0, err
	}

	count, err := r.requirements.ReplaceForDocument(ctx, doc.ID, extracted)
	if err != nil {
		return 0, fmt.Errorf("persist requirements: %w", err)
	}

	return count, nil
}

func buildSource(doc *Document, data []byte) (extraction.Source, error) {
	if doc.ContentType == "application/pdf" {
		src, err := extraction.NewPDFSource(doc.Filename, data)
		if err != nil {
			return nil, fmt.Errorf("open pdf source: %w", err)
		}
		return src, nil
	}
	return extraction.NewTextSource(doc.Filename, string(data)), nil
}

func (r *repo) markProcessing(ctx context.Context, id uuid.UUID) error {
	err := repository.ExecExpectOne(
		ctx, r.db,
		`UPDATE documents
		 SET processing_status = $2, extraction_status = $3, error_message = NULL, updated_at = now()
		 WHERE id = $1`,
		id, ProcessingInProgress, ExtractionInProgress,
	)
	return repository.MapError(err, ErrNotFound, ErrDuplicate)
}

func (r *repo) markCompleted(ctx context.Context, id uuid.UUID, count int) error {
	err := repository.ExecExpectOne(
		ctx, r.db,
		`UPDATE documents
		 SET processing_status = $2, extraction_status = $3, requirements_extracted = $4,
		     processed_at = now(), updated_at = now()
		 WHERE id = $1`,
		id, ProcessingCompleted, ExtractionCompleted, count,
	)
	return repository.MapError(err, ErrNotFound, ErrDuplicate)
}

func (r *repo) markFailed(ctx context.Context, id uuid.UUID, message string) error {
	err := repository.ExecExpectOne(
		ctx, r.db,
		`UPDATE documents
		 SET processing_status = $2, extraction_status = $3, error_message = $4, updated_at = now()
		 WHERE id = $1`,
		id, ProcessingFailed, ExtractionFailed, message,
	)
	return repository.MapError(err, ErrNotFound, ErrDuplicate)
}
