// Package fetch runs the concurrent per-country history retrievals that
// feed the alignment engine.
package fetch

import (
	"context"
	"sync"
	"time"

	"github.com/irosadie/fifa-ranking/internal/adapters/provider"
	"github.com/irosadie/fifa-ranking/internal/domain/model"
	"github.com/irosadie/fifa-ranking/pkg/logger"
	"github.com/irosadie/fifa-ranking/pkg/metrics"
)

// defaultWorkers bounds upstream concurrency; selections are small, so a
// handful of in-flight requests is plenty.
const defaultWorkers = 8

// Result is the settled outcome for one country. Every requested code
// yields exactly one Result; Err and Records are mutually exclusive.
type Result struct {
	Code    string
	Records []model.Record
	Err     error
}

// Pool fans retrieval jobs out over a bounded set of workers. Each job
// settles independently: one country's failure never cancels siblings.
type Pool struct {
	client  provider.Client
	workers int
	log     logger.Logger
}

// NewPool builds a pool backed by client.
func NewPool(client provider.Client, opts ...Option) *Pool {
	p := &Pool{
		client:  client,
		workers: defaultWorkers,
		log:     logger.Named("fetch"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FetchAll retrieves every code's history concurrently and returns one
// settled result per code, in input order. A zero-length selection makes
// no upstream calls.
func (p *Pool) FetchAll(ctx context.Context, codes []string, gender, edition string) []Result {
	if len(codes) == 0 {
		return nil
	}

	jobs := make(chan int)
	results := make([]Result, len(codes))

	workers := p.workers
	if workers > len(codes) {
		workers = len(codes)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = p.fetchOne(ctx, codes[i], gender, edition)
			}
		}()
	}

	for i := range codes {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

func (p *Pool) fetchOne(ctx context.Context, code, gender, edition string) Result {
	start := time.Now()
	metrics.RecordFetch()

	records, err := p.client.History(ctx, code, gender, edition)
	metrics.RecordFetchLatency(float64(time.Since(start).Milliseconds()))

	if err != nil {
		metrics.RecordFetchError()
		p.log.Warn(ctx, "country retrieval failed",
			logger.String("country", code),
			logger.Error(err),
		)
		return Result{Code: code, Err: err}
	}
	return Result{Code: code, Records: records}
}
