package inventory

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/draftforge/draftforge/pkg/formatting"
	"github.com/draftforge/draftforge/pkg/handlers"
	"github.com/draftforge/draftforge/pkg/pagination"
	"github.com/draftforge/draftforge/pkg/routes"
	"github.com/draftforge/draftforge/pkg/vault"
)

// Handler provides HTTP endpoints for inventory operations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "inventory"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for inventory endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/inventory",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/download/{path...}", Handler: h.Download},
			{Method: "DELETE", Pattern: "/files/{path...}", Handler: h.DeleteFile},
			{Method: "DELETE", Pattern: "/folders/{name}", Handler: h.DeleteFolder},
			{Method: "DELETE", Pattern: "", Handler: h.Purge},
		},
	}
}

// filtersFromQuery extracts filter values from URL query parameters.
func filtersFromQuery(values map[string][]string) Filters {
	get := func(key string) string {
		if vs, ok := values[key]; ok && len(vs) > 0 {
			return vs[0]
		}
		return ""
	}

	f := Filters{
		Type:   get("type"),
		Folder: get("folder"),
	}

	if s := get("amendments"); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			f.Amendments = &v
		}
	}
	if s := get("min_file_size"); s != "" {
		// Accepts a bare byte count or a unit suffix, e.g. "50KB".
		if v, err := formatting.ParseBytes(s); err == nil {
			f.MinFileSize = v
		}
	}

	return f
}

// List returns a paginated inventory listing with optional filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := filtersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Download streams a stored artifact as a PDF attachment.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	path := r.PathValue("path")
	if path == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, vault.ErrInvalidPath)
		return
	}

	f, err := h.sys.Open(r.Context(), path)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+info.Name()+`"`)
	w.Header().Set("Content-Length", strconv.FormatInt(info.Size(), 10))

	if _, err := io.Copy(w, f); err != nil {
		h.logger.Error("artifact download interrupted", "path", path, "error", err)
	}
}

// DeleteFile removes a single artifact.
func (h *Handler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	path := r.PathValue("path")
	if err := h.sys.Delete(r.Context(), path); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteFolder removes a folder and all artifacts inside it.
func (h *Handler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if err := h.sys.DeleteFolder(r.Context(), name); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Purge removes every artifact in the vault.
func (h *Handler) Purge(w http.ResponseWriter, r *http.Request) {
	if err := h.sys.Purge(r.Context()); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
