package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/irosadie/fifa-ranking/internal/domain/model"
	"github.com/irosadie/fifa-ranking/pkg/logger"
	"github.com/irosadie/fifa-ranking/pkg/metrics"
)

// Default client configuration.
const (
	defaultBaseURL = "https://api.fifa-ranking.local"
	defaultTimeout = 10 * time.Second
)

// Wire date layouts accepted from the upstream, tried in order.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// historyResponse mirrors the upstream history payload.
type historyResponse struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	History []struct {
		Date   string  `json:"date"`
		Rank   int     `json:"rank"`
		Points float64 `json:"points"`
	} `json:"history"`
}

// HTTPClient implements Client against the upstream HTTP API.
type HTTPClient struct {
	rc  *resty.Client
	log logger.Logger
}

// NewHTTPClient builds a client with configuration options.
func NewHTTPClient(opts ...Option) *HTTPClient {
	c := &HTTPClient{
		rc: resty.New().
			SetBaseURL(defaultBaseURL).
			SetTimeout(defaultTimeout).
			SetHeader("Accept", "application/json"),
		log: logger.Named("provider"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// History fetches one country's full ranking history.
func (c *HTTPClient) History(ctx context.Context, code, gender, edition string) ([]model.Record, error) {
	var payload historyResponse
	start := time.Now()
	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString()).
		SetQueryParams(map[string]string{
			"gender":  gender,
			"edition": edition,
		}).
		SetResult(&payload).
		Get("/api/v1/rankings/" + code + "/history")
	metrics.RecordProviderRequestDuration(float64(time.Since(start).Milliseconds()))

	if err != nil {
		metrics.RecordProviderRequest("error")
		return nil, fmt.Errorf("%w: %s: %v", ErrRequestFailed, code, err)
	}
	if !resp.IsSuccess() {
		metrics.RecordProviderRequest("bad_status")
		return nil, fmt.Errorf("%w: %s: %s", ErrBadStatus, code, resp.Status())
	}
	metrics.RecordProviderRequest("ok")

	records := make([]model.Record, 0, len(payload.History))
	for _, h := range payload.History {
		ts, ok := parseDate(h.Date)
		if !ok {
			metrics.RecordMalformedTimestamp()
			c.log.Warn(ctx, "dropping record with malformed date",
				logger.String("country", code),
				logger.String("date", h.Date),
			)
			continue
		}
		records = append(records, model.Record{
			CountryCode: payload.Code,
			CountryName: payload.Name,
			Rank:        h.Rank,
			Points:      h.Points,
			PublishedAt: ts,
		})
	}
	return records, nil
}

// Countries fetches the selectable country catalog.
func (c *HTTPClient) Countries(ctx context.Context) ([]Country, error) {
	var countries []Country
	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString()).
		SetResult(&countries).
		Get("/api/v1/countries")
	if err != nil {
		metrics.RecordProviderRequest("error")
		return nil, fmt.Errorf("%w: countries: %v", ErrRequestFailed, err)
	}
	if !resp.IsSuccess() {
		metrics.RecordProviderRequest("bad_status")
		return nil, fmt.Errorf("%w: countries: %s", ErrBadStatus, resp.Status())
	}
	metrics.RecordProviderRequest("ok")
	return countries, nil
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
