// Package catalog serves the selectable country list, memoized with a
// TTL cache since the catalog changes far less often than rankings.
package catalog

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/irosadie/fifa-ranking/internal/adapters/provider"
	"github.com/irosadie/fifa-ranking/pkg/logger"
)

const (
	cacheKey        = "countries"
	defaultTTL      = 1 * time.Hour
	cleanupInterval = 10 * time.Minute
)

// Service caches the provider's country catalog.
type Service struct {
	client provider.Client
	cache  *gocache.Cache
	log    logger.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithTTL overrides the cache TTL.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.cache = gocache.New(ttl, cleanupInterval)
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

// New builds a catalog service backed by client.
func New(client provider.Client, opts ...Option) *Service {
	s := &Service{
		client: client,
		cache:  gocache.New(defaultTTL, cleanupInterval),
		log:    logger.Named("catalog"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Countries returns the catalog, from cache when fresh.
func (s *Service) Countries(ctx context.Context) ([]provider.Country, error) {
	if cached, ok := s.cache.Get(cacheKey); ok {
		if countries, ok := cached.([]provider.Country); ok {
			return countries, nil
		}
	}

	countries, err := s.client.Countries(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	s.cache.Set(cacheKey, countries, gocache.DefaultExpiration)
	s.log.Debug(ctx, "catalog refreshed", logger.Int("countries", len(countries)))
	return countries, nil
}

// Names returns a code-to-name index of the catalog. A provider failure
// degrades to an empty index; series labels fall back to bare codes.
func (s *Service) Names(ctx context.Context) map[string]string {
	countries, err := s.Countries(ctx)
	if err != nil {
		s.log.Warn(ctx, "catalog unavailable, labels fall back to codes", logger.Error(err))
		return map[string]string{}
	}
	names := make(map[string]string, len(countries))
	for _, c := range countries {
		names[c.Code] = c.Name
	}
	return names
}
