// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/irosadie/fifa-ranking/internal/adapters/provider"
	"github.com/irosadie/fifa-ranking/internal/app"
	"github.com/irosadie/fifa-ranking/internal/domain/timerange"
)

// Dependencies bundles what the handlers need from the application
// layer, keeping this package loosely coupled to the service type.
type Dependencies interface {
	Compare(ctx context.Context, req app.CompareRequest) app.CompareResponse
	ExportCSV(ctx context.Context, req app.CompareRequest) (app.Export, error)
	ExportJSON(ctx context.Context, req app.CompareRequest) (app.Export, error)
	Countries(ctx context.Context) ([]provider.Country, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	compareHandler   *CompareHandler
	exportHandler    *ExportHandler
	countriesHandler *CountriesHandler
	statsHandler     *StatsHandler
	healthHandler    *HealthHandler
}

// NewServer creates an API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		compareHandler:   NewCompareHandler(deps),
		exportHandler:    NewExportHandler(deps),
		countriesHandler: NewCountriesHandler(deps),
		statsHandler:     NewStatsHandler(statsProvider),
		healthHandler:    NewHealthHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/v1/countries", MetricsMiddleware(s.countriesHandler.HandleGetCountries, "countries"))
	mux.HandleFunc("/api/v1/compare", MetricsMiddleware(s.compareHandler.HandleGetCompare, "compare"))
	mux.HandleFunc("/api/v1/export/csv", MetricsMiddleware(s.exportHandler.HandleExportCSV, "export_csv"))
	mux.HandleFunc("/api/v1/export/json", MetricsMiddleware(s.exportHandler.HandleExportJSON, "export_json"))
}

// compareRequest parses the shared query parameters of compare and
// export routes: codes, gender, edition, range.
func compareRequest(r *http.Request) (app.CompareRequest, error) {
	q := r.URL.Query()

	var codes []string
	for _, part := range strings.Split(q.Get("codes"), ",") {
		if code := strings.TrimSpace(part); code != "" {
			codes = append(codes, strings.ToUpper(code))
		}
	}

	spec, err := timerange.ParseSpec(q.Get("range"))
	if err != nil {
		return app.CompareRequest{}, err
	}

	return app.CompareRequest{
		Codes:   codes,
		Gender:  q.Get("gender"),
		Edition: q.Get("edition"),
		Range:   spec,
	}, nil
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
