// Package model contains domain models passed between layers.
package model

import (
	"sort"
	"time"
)

// Record is one dated ranking observation for a country.
type Record struct {
	CountryCode string    `json:"countryCode"`
	CountryName string    `json:"countryName,omitempty"`
	Rank        int       `json:"rank"`
	Points      float64   `json:"points"`
	PublishedAt time.Time `json:"publishedAt"`
}

// History maps a country code to its raw, unordered ranking records.
// Countries whose retrieval failed or returned nothing are absent.
type History map[string][]Record

// Codes returns the country codes present in the history, sorted.
func (h History) Codes() []string {
	codes := make([]string, 0, len(h))
	for code := range h {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Snapshot is a country's latest observation plus its immediate predecessor.
// Previous equals Current when no earlier record exists.
type Snapshot struct {
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName,omitempty"`
	Current     Record `json:"current"`
	Previous    Record `json:"previous"`
}

// Delta is the rank change from previous to current.
// Positive means the country climbed.
func (s Snapshot) Delta() int {
	return s.Previous.Rank - s.Current.Rank
}

// NewSnapshot derives a snapshot from a non-empty record list.
// ok is false when records is empty.
func NewSnapshot(records []Record) (Snapshot, bool) {
	if len(records) == 0 {
		return Snapshot{}, false
	}
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt.After(sorted[j].PublishedAt)
	})
	s := Snapshot{
		CountryCode: sorted[0].CountryCode,
		CountryName: sorted[0].CountryName,
		Current:     sorted[0],
		Previous:    sorted[0],
	}
	if len(sorted) > 1 {
		s.Previous = sorted[1]
	}
	return s, true
}
