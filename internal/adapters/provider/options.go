package provider

import (
	"time"

	"github.com/irosadie/fifa-ranking/pkg/logger"
)

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithBaseURL points the client at a different upstream.
func WithBaseURL(url string) Option {
	return func(c *HTTPClient) {
		if url != "" {
			c.rc.SetBaseURL(url)
		}
	}
}

// WithTimeout bounds each upstream request.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.rc.SetTimeout(d)
		}
	}
}

// WithRetryCount enables resty's transport-level retries.
func WithRetryCount(n int) Option {
	return func(c *HTTPClient) {
		if n > 0 {
			c.rc.SetRetryCount(n)
		}
	}
}

// WithLogger overrides the package logger.
func WithLogger(l logger.Logger) Option {
	return func(c *HTTPClient) {
		if l != nil {
			c.log = l
		}
	}
}
