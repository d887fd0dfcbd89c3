package export

import (
	"log/slog"
	"net/http"

	"github.com/draftforge/draftforge/pkg/handlers"
	"github.com/draftforge/draftforge/pkg/routes"
)

// Handler provides HTTP endpoints for export operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "export"),
	}
}

// Routes returns the route group definition for export endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/export",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/{folder}", Handler: h.ExportFolder},
		},
	}
}

// ExportFolder mirrors a vault folder into the blob container.
func (h *Handler) ExportFolder(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.ExportFolder(r.Context(), r.PathValue("folder"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
