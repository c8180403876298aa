package app

import (
	"time"

	"github.com/irosadie/fifa-ranking/internal/adapters/catalog"
	"github.com/irosadie/fifa-ranking/internal/adapters/fetch"
	"github.com/irosadie/fifa-ranking/internal/adapters/repository"
	"github.com/irosadie/fifa-ranking/pkg/logger"
)

// Option configures a Service.
type Option func(*Service)

// WithWorkers bounds concurrent upstream retrievals.
func WithWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithStore replaces the cycle store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithCatalog replaces the country catalog.
func WithCatalog(c *catalog.Service) Option {
	return func(s *Service) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithPool replaces the fetch pool entirely.
func WithPool(p *fetch.Pool) Option {
	return func(s *Service) {
		if p != nil {
			s.pool = p
		}
	}
}

// WithClock replaces the time source, for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLogger overrides the package logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}
