package fabrication

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/loom/pkg/handlers"
	"github.com/JaimeStill/loom/pkg/pagination"
	"github.com/JaimeStill/loom/pkg/routes"
)

// Handler exposes the read-only mock tool surface and the generation
// trigger.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
	pulseLimit int
}

// NewHandler creates a Handler with the given system, logger, pagination
// config, and default pulse feed limit.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config, pulseLimit int) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "fabrication"),
		pagination: pagination,
		pulseLimit: pulseLimit,
	}
}

// Routes returns the route group definition for fabrication endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/fabrication",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/items", Handler: h.Items},
			{Method: "GET", Pattern: "/items/relationships", Handler: h.Relationships},
			{Method: "GET", Pattern: "/issues", Handler: h.Issues},
			{Method: "GET", Pattern: "/issues/links", Handler: h.IssueLinks},
			{Method: "GET", Pattern: "/parts", Handler: h.Parts},
			{Method: "GET", Pattern: "/parts/bom", Handler: h.BOM},
			{Method: "GET", Pattern: "/change-notices", Handler: h.ChangeNotices},
			{Method: "GET", Pattern: "/emails", Handler: h.Emails},
			{Method: "GET", Pattern: "/calendar", Handler: h.Calendar},
			{Method: "GET", Pattern: "/pulse", Handler: h.Pulse},
			{Method: "GET", Pattern: "/impact/{id}", Handler: h.Impact},
			{Method: "POST", Pattern: "/generate", Handler: h.Generate},
		},
	}
}

func (h *Handler) current(w http.ResponseWriter) (*Generator, bool) {
	gen := h.sys.Current()
	if gen == nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(ErrNotGenerated), ErrNotGenerated)
		return nil, false
	}
	return gen, true
}

// Items returns a page of fabricated items filtered by query and type.
func (h *Handler) Items(w http.ResponseWriter, r *http.Request) {
	gen, ok := h.current(w)
	if !ok {
		return
	}

	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	query := r.URL.Query().Get("query")
	itemType := r.URL.Query().Get("item_type")

	handlers.RespondJSON(w, http.StatusOK, gen.FilterItems(page.Page, page.PageSize, query, itemType))
}

// Relationships returns item relationships, optionally for one item.
func (h *Handler) Relationships(w http.ResponseWriter, r *http.Request) {
	gen, ok := h.current(w)
	if !ok {
		return
	}

	itemID, err := optionalUUID(r.URL.Query(), "item_id")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, gen.RelationshipsFor(itemID))
}

// Issues returns a page of fabricated issues filtered by query and status.
func (h *Handler) Issues(w http.ResponseWriter, r *http.Request) {
	gen, ok := h.current(w)
	if !ok {
		return
	}

	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	query := r.URL.Query().Get("query")
	status := r.URL.Query().Get("status")

	handlers.RespondJSON(w, http.StatusOK, gen.FilterIssues(page.Page, page.PageSize, query, status))
}

// IssueLinks returns issue links, optionally for one issue.
func (h *Handler) IssueLinks(w http.ResponseWriter, r *http.Request) {
	gen, ok := h.current(w)
	if !ok {
		return
	}

	issueID, err := optionalUUID(r.URL.Query(), "issue_id")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, gen.LinksFor(issueID))
}

// Parts returns a page of fabricated parts filtered by query.
func (h *Handler) Parts(w http.ResponseWriter, r *http.Request) {
	gen, ok := h.current(w)
	if !ok {
		return
	}

	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	query := r.URL.Query().Get("query")

	handlers.RespondJSON(w, http.StatusOK, gen.FilterParts(page.Page, page.PageSize, query))
}

// BOM returns bill of materials rows, optionally under one parent part.
func (h *Handler) BOM(w http.ResponseWriter, r *http.Request) {
	gen, ok := h.current(w)
	if !ok {
		return
	}

	handlers.RespondJSON(w, http.StatusOK, gen.BOMFor(r.URL.Query().Get("parent")))
}

// ChangeNotices returns change notices, optionally by status.
func (h *Handler) ChangeNotices(w http.ResponseWriter, r *http.Request) {
	gen, ok := h.current(w)
	if !ok {
		return
	}

	handlers.RespondJSON(w, http.StatusOK, gen.FilterChangeNotices(r.URL.Query().Get("status")))
}

// Emails returns fabricated emails, optionally since a timestamp.
func (h *Handler) Emails(w http.ResponseWriter, r *http.Request) {
	gen, ok := h.current(w)
	if !ok {
		return
	}

	since, err := optionalTime(r.URL.Query(), "since")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, gen.EmailsSince(since))
}

// Calendar returns fabricated calendar messages, optionally since a
// timestamp.
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	gen, ok := h.current(w)
	if !ok {
		return
	}

	since, err := optionalTime(r.URL.Query(), "since")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, gen.CalendarSince(since))
}

// Pulse returns the aggregated change feed with optional since, sources,
// types, and limit filters.
func (h *Handler) Pulse(w http.ResponseWriter, r *http.Request) {
	gen, ok := h.current(w)
	if !ok {
		return
	}

	since, err := optionalTime(r.URL.Query(), "since")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	limit := h.pulseLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
			return
		}
		limit = parsed
	}

	filters := PulseFilters{
		Since:   since,
		Sources: splitParam(r.URL.Query().Get("sources")),
		Types:   splitParam(r.URL.Query().Get("types")),
		Limit:   limit,
	}

	handlers.RespondJSON(w, http.StatusOK, gen.PulseFeed(filters))
}

// Impact fabricates an impact analysis for the artifact in the path.
func (h *Handler) Impact(w http.ResponseWriter, r *http.Request) {
	gen, ok := h.current(w)
	if !ok {
		return
	}

	depth := 2
	if raw := r.URL.Query().Get("depth"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
			return
		}
		depth = parsed
	}

	handlers.RespondJSON(w, http.StatusOK, gen.Impact(r.PathValue("id"), depth))
}

// Generate triggers a new generation run. The body is optional JSON with
// seed and document_id fields.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var opts GenerateOptions
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	result, err := h.sys.Generate(r.Context(), opts)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func optionalUUID(values url.Values, key string) (*uuid.UUID, error) {
	raw := values.Get(key)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func optionalTime(values url.Values, key string) (*time.Time, error) {
	raw := values.Get(key)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
