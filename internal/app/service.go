// Package app wires the fetch orchestration and the alignment engine
// behind the operations the HTTP API exposes.
package app

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/irosadie/fifa-ranking/internal/adapters/catalog"
	"github.com/irosadie/fifa-ranking/internal/adapters/fetch"
	"github.com/irosadie/fifa-ranking/internal/adapters/provider"
	"github.com/irosadie/fifa-ranking/internal/adapters/repository"
	"github.com/irosadie/fifa-ranking/internal/domain/align"
	"github.com/irosadie/fifa-ranking/internal/domain/chart"
	"github.com/irosadie/fifa-ranking/internal/domain/export"
	"github.com/irosadie/fifa-ranking/internal/domain/model"
	"github.com/irosadie/fifa-ranking/internal/domain/timerange"
	"github.com/irosadie/fifa-ranking/pkg/logger"
	"github.com/irosadie/fifa-ranking/pkg/metrics"
)

// Defaults applied when no option overrides them.
const (
	defaultGender  = "men"
	defaultEdition = "football"
)

// CompareRequest selects the countries and window of a comparison.
type CompareRequest struct {
	Codes   []string
	Gender  string
	Edition string
	Range   timerange.Spec
}

// CompareResponse is the payload of one comparison cycle.
type CompareResponse struct {
	Cycle     uint64           `json:"cycle"`
	Snapshots []model.Snapshot `json:"snapshots"`
	Chart     chart.Data       `json:"chart"`
}

// Export is a rendered export document ready for download.
type Export struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Service runs fetch cycles and recomputes chart and export artifacts
// from the resulting history map. All computations are synchronous; the
// only shared state is the cycle store.
type Service struct {
	pool    *fetch.Pool
	store   repository.Store
	catalog *catalog.Service

	workers int
	clock   func() time.Time

	cycleSeq atomic.Uint64

	log logger.Logger
}

// New builds a Service around the given provider client.
func New(client provider.Client, opts ...Option) *Service {
	s := &Service{
		workers: 0, // pool default
		clock:   time.Now,
		log:     logger.Named("app"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = repository.NewMemStore()
	}
	if s.catalog == nil {
		s.catalog = catalog.New(client)
	}
	if s.pool == nil {
		poolOpts := []fetch.Option{fetch.WithLogger(s.log.Named("fetch"))}
		if s.workers > 0 {
			poolOpts = append(poolOpts, fetch.WithWorkers(s.workers))
		}
		s.pool = fetch.NewPool(client, poolOpts...)
	}
	return s
}

// Refresh runs one fetch cycle for the selection and installs its
// results. installed is false when a newer cycle finished first; the
// returned snapshots and history are still this cycle's own view.
func (s *Service) Refresh(ctx context.Context, codes []string, gender, edition string) (cycle uint64, snapshots []model.Snapshot, history model.History, installed bool) {
	history = model.History{}
	if len(codes) == 0 {
		return 0, nil, history, false
	}
	if gender == "" {
		gender = defaultGender
	}
	if edition == "" {
		edition = defaultEdition
	}

	cycle = s.cycleSeq.Add(1)
	metrics.RecordFetchCycle()

	results := s.pool.FetchAll(ctx, codes, gender, edition)
	for _, res := range results {
		if res.Err != nil {
			// Already logged at the fetch boundary; the country is simply absent.
			continue
		}
		if len(res.Records) == 0 {
			metrics.RecordEmptyHistory()
			s.log.Warn(ctx, "country returned no records, excluding",
				logger.String("country", res.Code),
			)
			continue
		}
		snap, ok := model.NewSnapshot(res.Records)
		if !ok {
			continue
		}
		snapshots = append(snapshots, snap)
		history[res.Code] = res.Records
	}

	installed = s.store.ReplaceCycle(ctx, cycle, snapshots, history)
	if !installed {
		s.log.Warn(ctx, "fetch cycle superseded, results not installed",
			logger.Uint64("cycle", cycle),
		)
	}
	s.log.Info(ctx, "fetch cycle complete",
		logger.Uint64("cycle", cycle),
		logger.Int("requested", len(codes)),
		logger.Int("resolved", len(history)),
	)
	return cycle, snapshots, history, installed
}

// Compare runs a fetch cycle and builds the chart payload for it.
// An empty selection yields an empty response without touching the
// upstream.
func (s *Service) Compare(ctx context.Context, req CompareRequest) CompareResponse {
	cycle, snapshots, history, _ := s.Refresh(ctx, req.Codes, req.Gender, req.Edition)

	filtered := timerange.FilterHistory(history, req.Range, s.clock())
	axis := align.Align(filtered, align.Ascending)
	metrics.UpdateAxisLength(len(axis.Keys))

	names := map[string]string{}
	if len(req.Codes) > 0 {
		names = s.catalog.Names(ctx)
	}
	return CompareResponse{
		Cycle:     cycle,
		Snapshots: snapshots,
		Chart:     chart.Build(axis, req.Codes, names),
	}
}

// ExportCSV renders the selection as delimited text, newest dates first.
func (s *Service) ExportCSV(ctx context.Context, req CompareRequest) (Export, error) {
	if len(req.Codes) == 0 {
		return Export{}, ErrNoSelection
	}
	axis := s.exportAxis(ctx, req)
	content, err := export.CSV(axis, req.Codes)
	if err != nil {
		return Export{}, err
	}
	metrics.RecordExport("csv")
	return Export{
		Filename:    export.Filename("csv", s.clock()),
		ContentType: export.CSVContentType,
		Content:     []byte(content),
	}, nil
}

// ExportJSON renders the selection as a structured document, newest
// dates first.
func (s *Service) ExportJSON(ctx context.Context, req CompareRequest) (Export, error) {
	if len(req.Codes) == 0 {
		return Export{}, ErrNoSelection
	}
	axis := s.exportAxis(ctx, req)
	content, err := export.JSON(axis, req.Codes)
	if err != nil {
		return Export{}, err
	}
	metrics.RecordExport("json")
	return Export{
		Filename:    export.Filename("json", s.clock()),
		ContentType: export.JSONContentType,
		Content:     content,
	}, nil
}

func (s *Service) exportAxis(ctx context.Context, req CompareRequest) align.Axis {
	_, _, history, _ := s.Refresh(ctx, req.Codes, req.Gender, req.Edition)
	filtered := timerange.FilterHistory(history, req.Range, s.clock())
	return align.Align(filtered, align.Descending)
}

// Countries lists the selectable countries from the catalog.
func (s *Service) Countries(ctx context.Context) ([]provider.Country, error) {
	return s.catalog.Countries(ctx)
}

// GetStats reports service state for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	ctx := context.Background()
	return map[string]interface{}{
		"currentCycle":     s.store.CurrentCycle(ctx),
		"trackedCountries": s.store.Count(ctx),
		"snapshots":        len(s.store.Snapshots(ctx)),
	}
}
