package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/irosadie/fifa-ranking/internal/adapters/http/api"
	"github.com/irosadie/fifa-ranking/internal/adapters/provider"
	"github.com/irosadie/fifa-ranking/internal/app"
	"github.com/irosadie/fifa-ranking/internal/domain/chart"
	"github.com/irosadie/fifa-ranking/internal/domain/datekey"
	"github.com/irosadie/fifa-ranking/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	_ = logger.Init()
}

// mockDeps implements api.Dependencies and api.StatsProvider.
type mockDeps struct {
	lastCompare app.CompareRequest
	compareResp app.CompareResponse
	csvDoc      app.Export
	jsonDoc     app.Export
	exportErr   error
	countries   []provider.Country
	countryErr  error
}

func (m *mockDeps) Compare(ctx context.Context, req app.CompareRequest) app.CompareResponse {
	m.lastCompare = req
	return m.compareResp
}

func (m *mockDeps) ExportCSV(ctx context.Context, req app.CompareRequest) (app.Export, error) {
	if len(req.Codes) == 0 {
		return app.Export{}, app.ErrNoSelection
	}
	return m.csvDoc, m.exportErr
}

func (m *mockDeps) ExportJSON(ctx context.Context, req app.CompareRequest) (app.Export, error) {
	if len(req.Codes) == 0 {
		return app.Export{}, app.ErrNoSelection
	}
	return m.jsonDoc, m.exportErr
}

func (m *mockDeps) Countries(ctx context.Context) ([]provider.Country, error) {
	return m.countries, m.countryErr
}

func (m *mockDeps) GetStats() map[string]interface{} {
	return map[string]interface{}{"currentCycle": uint64(4)}
}

func newTestServer(deps *mockDeps) *httptest.Server {
	mux := http.NewServeMux()
	api.NewServer(deps, deps).Register(context.Background(), mux)
	return httptest.NewServer(mux)
}

func TestCompareRoute(t *testing.T) {
	Convey("Given the compare route", t, func() {
		deps := &mockDeps{
			compareResp: app.CompareResponse{
				Cycle: 7,
				Chart: chart.Data{Labels: []datekey.Key{"2024-01-01"}},
			},
		}
		srv := newTestServer(deps)
		defer srv.Close()

		Convey("A valid selection returns chart data", func() {
			resp, err := http.Get(srv.URL + "/api/v1/compare?codes=usa,bra&gender=men&edition=football&range=last:5")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var body app.CompareResponse
			So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
			So(body.Cycle, ShouldEqual, 7)

			Convey("Codes are upper-cased and ordered as given", func() {
				So(deps.lastCompare.Codes, ShouldResemble, []string{"USA", "BRA"})
				So(deps.lastCompare.Gender, ShouldEqual, "men")
			})
		})

		Convey("An empty selection answers 204 without a body", func() {
			resp, err := http.Get(srv.URL + "/api/v1/compare")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusNoContent)
		})

		Convey("A malformed range answers 400", func() {
			resp, err := http.Get(srv.URL + "/api/v1/compare?codes=USA&range=bogus")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("POST is not found", func() {
			resp, err := http.Post(srv.URL+"/api/v1/compare", "application/json", strings.NewReader("{}"))
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestExportRoutes(t *testing.T) {
	Convey("Given the export routes", t, func() {
		deps := &mockDeps{
			csvDoc: app.Export{
				Filename:    "ranking_history_2024-06-01.csv",
				ContentType: "text/csv",
				Content:     []byte("Date,USA Rank,USA Points\n"),
			},
			jsonDoc: app.Export{
				Filename:    "ranking_history_2024-06-01.json",
				ContentType: "application/json",
				Content:     []byte("[]"),
			},
		}
		srv := newTestServer(deps)
		defer srv.Close()

		Convey("CSV downloads carry type and filename", func() {
			resp, err := http.Get(srv.URL + "/api/v1/export/csv?codes=USA")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(resp.Header.Get("Content-Type"), ShouldStartWith, "text/csv")
			So(resp.Header.Get("Content-Disposition"), ShouldContainSubstring, "ranking_history_2024-06-01.csv")
		})

		Convey("JSON downloads carry type and filename", func() {
			resp, err := http.Get(srv.URL + "/api/v1/export/json?codes=USA")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(resp.Header.Get("Content-Type"), ShouldStartWith, "application/json")
			So(resp.Header.Get("Content-Disposition"), ShouldContainSubstring, ".json")
		})

		Convey("An empty selection is a silent 204", func() {
			resp, err := http.Get(srv.URL + "/api/v1/export/csv")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusNoContent)
		})

		Convey("Service failures answer 500", func() {
			deps.exportErr = errors.New("render failed")
			resp, err := http.Get(srv.URL + "/api/v1/export/csv?codes=USA")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusInternalServerError)
		})
	})
}

func TestCountriesRoute(t *testing.T) {
	Convey("Given the countries route", t, func() {
		deps := &mockDeps{countries: []provider.Country{{Code: "BRA", Name: "Brazil"}}}
		srv := newTestServer(deps)
		defer srv.Close()

		Convey("The catalog is served as JSON", func() {
			resp, err := http.Get(srv.URL + "/api/v1/countries")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var countries []provider.Country
			So(json.NewDecoder(resp.Body).Decode(&countries), ShouldBeNil)
			So(countries, ShouldHaveLength, 1)
		})

		Convey("Upstream failures map to 502", func() {
			deps.countryErr = errors.New("upstream down")
			resp, err := http.Get(srv.URL + "/api/v1/countries")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusBadGateway)
		})
	})
}

func TestStatsAndHealth(t *testing.T) {
	Convey("Given the observability routes", t, func() {
		deps := &mockDeps{}
		srv := newTestServer(deps)
		defer srv.Close()

		Convey("Stats serves the provider map", func() {
			resp, err := http.Get(srv.URL + "/stats")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var stats map[string]any
			So(json.NewDecoder(resp.Body).Decode(&stats), ShouldBeNil)
			So(stats["currentCycle"], ShouldEqual, 4)
		})

		Convey("Healthz serves Prometheus metrics", func() {
			resp, err := http.Get(srv.URL + "/healthz")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
		})
	})
}
