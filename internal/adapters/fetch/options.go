package fetch

import "github.com/irosadie/fifa-ranking/pkg/logger"

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers bounds the number of concurrent retrievals.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithLogger overrides the package logger.
func WithLogger(l logger.Logger) Option {
	return func(p *Pool) {
		if l != nil {
			p.log = l
		}
	}
}
