package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/irosadie/fifa-ranking/internal/app"
)

// renderFunc is the shared shape of the service's export operations.
type renderFunc func(ctx context.Context, req app.CompareRequest) (app.Export, error)

// ExportHandler serves CSV and JSON export downloads.
type ExportHandler struct {
	deps Dependencies
}

// NewExportHandler creates an export handler.
func NewExportHandler(deps Dependencies) *ExportHandler {
	return &ExportHandler{deps: deps}
}

// HandleExportCSV handles GET /api/v1/export/csv.
func (h *ExportHandler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, h.deps.ExportCSV)
}

// HandleExportJSON handles GET /api/v1/export/json.
func (h *ExportHandler) HandleExportJSON(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, h.deps.ExportJSON)
}

func (h *ExportHandler) handle(w http.ResponseWriter, r *http.Request, render renderFunc) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	req, err := compareRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	doc, err := render(r.Context(), req)
	if err != nil {
		if errors.Is(err, app.ErrNoSelection) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	w.Header().Set("Content-Type", doc.ContentType+"; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Content)
}
