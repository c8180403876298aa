package api

import (
	"net/http"
)

// CompareHandler serves cross-country comparison chart data.
type CompareHandler struct {
	deps Dependencies
}

// NewCompareHandler creates a compare handler.
func NewCompareHandler(deps Dependencies) *CompareHandler {
	return &CompareHandler{deps: deps}
}

// HandleGetCompare handles
// GET /api/v1/compare?codes=USA,BRA&gender=men&edition=football&range=last:5.
// An empty selection is a no-op answered with 204.
func (h *CompareHandler) HandleGetCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	req, err := compareRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if len(req.Codes) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Compare(r.Context(), req))
}
