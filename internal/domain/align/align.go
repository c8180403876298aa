// Package align merges several independently dated record series onto a
// single shared date axis.
package align

import (
	"sort"

	"github.com/irosadie/fifa-ranking/internal/domain/datekey"
	"github.com/irosadie/fifa-ranking/internal/domain/model"
)

// Order is the direction of the axis.
type Order int

const (
	// Ascending orders the axis oldest first (charting).
	Ascending Order = iota
	// Descending orders the axis newest first (tabular export).
	Descending
)

// Axis is the union of observation days across all countries, plus a
// per-country lookup from day to the record observed on it.
type Axis struct {
	Keys   []datekey.Key
	Lookup map[string]map[datekey.Key]model.Record
}

// Record returns the record for code on key, if any.
func (a Axis) Record(code string, key datekey.Key) (model.Record, bool) {
	byDay, ok := a.Lookup[code]
	if !ok {
		return model.Record{}, false
	}
	r, ok := byDay[key]
	return r, ok
}

// Align computes the shared axis for a (already filtered) history.
//
// Records with a zero timestamp are skipped: a malformed upstream date
// must not leak an unordered key into the axis. When a country has
// several records on one day, the chronologically latest wins.
func Align(history model.History, order Order) Axis {
	axis := Axis{
		Lookup: make(map[string]map[datekey.Key]model.Record, len(history)),
	}
	seen := make(map[datekey.Key]struct{})

	for code, records := range history {
		byDay := make(map[datekey.Key]model.Record, len(records))
		for _, r := range records {
			if r.PublishedAt.IsZero() {
				continue
			}
			key := datekey.FromTime(r.PublishedAt)
			if prev, ok := byDay[key]; ok && !r.PublishedAt.After(prev.PublishedAt) {
				continue
			}
			byDay[key] = r
			seen[key] = struct{}{}
		}
		if len(byDay) > 0 {
			axis.Lookup[code] = byDay
		}
	}

	axis.Keys = make([]datekey.Key, 0, len(seen))
	for key := range seen {
		axis.Keys = append(axis.Keys, key)
	}
	sort.Slice(axis.Keys, func(i, j int) bool {
		if order == Descending {
			return axis.Keys[j].Before(axis.Keys[i])
		}
		return axis.Keys[i].Before(axis.Keys[j])
	})
	return axis
}
