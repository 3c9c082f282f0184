package requirements

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/loom/internal/extraction"
	"github.com/JaimeStill/loom/pkg/pagination"
	"github.com/JaimeStill/loom/pkg/query"
	"github.com/JaimeStill/loom/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a requirement repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "requirements"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Requirement], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "RequirementID", "Title", "Text")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count requirements: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	reqs, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanRequirement)
	if err != nil {
		return nil, fmt.Errorf("query requirements: %w", err)
	}

	result := pagination.NewPageResult(reqs, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Requirement, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	req, err := repository.QueryOne(ctx, r.db, q, args, scanRequirement)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &req, nil
}

func (r *repo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]Requirement, error) {
	qb := query.NewBuilder(projection, defaultSort)
	qb.WhereEquals("DocumentID", documentID)

	q, args := qb.Build()
	reqs, err := repository.QueryMany(ctx, r.db, q, args, scanRequirement)
	if err != nil {
		return nil, fmt.Errorf("query document requirements: %w", err)
	}
	return reqs, nil
}

const insertRequirement = `
	INSERT INTO requirements(
		id, document_id, requirement_id, title, text, category, priority,
		verification_method, source_page, parent_section, tags,
		generated_item_ids, generated_issue_ids
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

func (r *repo) ReplaceForDocument(
	ctx context.Context,
	documentID uuid.UUID,
	extracted []extraction.Requirement,
) (int, error) {
	count, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (int, error) {
		if _, err := tx.ExecContext(
			ctx,
			"DELETE FROM requirements WHERE document_id = $1",
			documentID,
		); err != nil {
			return 0, fmt.Errorf("clear document requirements: %w", err)
		}

		for _, req := range extracted {
			tags, err := encodeStringList(req.Tags)
			if err != nil {
				return 0, fmt.Errorf("encode tags for %s: %w", req.ID, err)
			}

			empty, _ := encodeStringList(nil)

			if _, err := tx.ExecContext(ctx, insertRequirement,
				uuid.New(),
				documentID,
				req.ID,
				req.Title,
				req.Text,
				req.Category,
				req.Priority,
				req.VerificationMethod,
				req.SourcePage,
				req.ParentSection,
				tags,
				empty,
				empty,
			); err != nil {
				return 0, fmt.Errorf("insert requirement %s: %w", req.ID, err)
			}
		}

		return len(extracted), nil
	})

	if err != nil {
		return 0, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("requirements replaced", "document_id", documentID, "count", count)
	return count, nil
}

func (r *repo) SetGeneratedArtifacts(ctx context.Context, id uuid.UUID, refs ArtifactRefs) error {
	itemIDs, err := encodeStringList(refs.ItemIDs)
	if err != nil {
		return fmt.Errorf("encode item ids: %w", err)
	}

	issueIDs, err := encodeStringList(refs.IssueIDs)
	if err != nil {
		return fmt.Errorf("encode issue ids: %w", err)
	}

	err = repository.ExecExpectOne(
		ctx, r.db,
		`UPDATE requirements
		 SET generated_item_ids = $2, generated_issue_ids = $3, updated_at = now()
		 WHERE id = $1`,
		id, itemIDs, issueIDs,
	)
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	return nil
}

func (r *repo) Export(ctx context.Context, documentID uuid.UUID) (extraction.Document, error) {
	reqs, err := r.ListByDocument(ctx, documentID)
	if err != nil {
		return extraction.Document{}, err
	}

	extracted := make([]extraction.Requirement, 0, len(reqs))
	for _, req := range reqs {
		extracted = append(extracted, extraction.Requirement{
			ID:                 req.RequirementID,
			Title:              req.Title,
			Text:               req.Text,
			Category:           req.Category,
			Priority:           req.Priority,
			SourcePage:         req.SourcePage,
			SourceDocument:     req.SourceDocument,
			VerificationMethod: req.VerificationMethod,
			ParentSection:      req.ParentSection,
			Tags:               req.Tags,
		})
	}

	return extraction.NewDocument(extracted), nil
}
