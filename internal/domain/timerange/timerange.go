// Package timerange selects which ranking records fall inside a
// requested time window.
package timerange

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/irosadie/fifa-ranking/internal/domain/model"
)

// Kind tags the supported window policies.
type Kind int

const (
	// KindAll keeps every record.
	KindAll Kind = iota
	// KindLastYears keeps records within the last N calendar years from now.
	KindLastYears
	// KindYearSpan keeps records whose UTC calendar year lies in [Start, End].
	KindYearSpan
)

// Spec is a tagged choice of time window.
type Spec struct {
	Kind      Kind
	Years     int
	StartYear int
	EndYear   int
}

// All keeps the full history.
func All() Spec { return Spec{Kind: KindAll} }

// LastYears keeps records within the last n calendar years.
func LastYears(n int) Spec { return Spec{Kind: KindLastYears, Years: n} }

// YearSpan keeps records published in the years [start, end] inclusive.
// No ordering between start and end is enforced; an empty result is valid.
func YearSpan(start, end int) Spec {
	return Spec{Kind: KindYearSpan, StartYear: start, EndYear: end}
}

// Filter returns the records inside the window. Pure; the input slice is
// never mutated. The relative-years boundary is inclusive.
func Filter(records []model.Record, spec Spec, now time.Time) []model.Record {
	if spec.Kind == KindAll {
		return records
	}
	out := make([]model.Record, 0, len(records))
	switch spec.Kind {
	case KindLastYears:
		cutoff := now.AddDate(-spec.Years, 0, 0)
		for _, r := range records {
			if !r.PublishedAt.Before(cutoff) {
				out = append(out, r)
			}
		}
	case KindYearSpan:
		for _, r := range records {
			year := r.PublishedAt.UTC().Year()
			if year >= spec.StartYear && year <= spec.EndYear {
				out = append(out, r)
			}
		}
	}
	return out
}

// FilterHistory applies Filter to every country and drops countries whose
// filtered history is empty.
func FilterHistory(history model.History, spec Spec, now time.Time) model.History {
	out := make(model.History, len(history))
	for code, records := range history {
		if kept := Filter(records, spec, now); len(kept) > 0 {
			out[code] = kept
		}
	}
	return out
}

// ParseSpec parses the wire form of a spec: "all", "last:N", or
// "years:A-B".
func ParseSpec(s string) (Spec, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case s == "" || s == "all":
		return All(), nil
	case strings.HasPrefix(s, "last:"):
		n, err := strconv.Atoi(strings.TrimPrefix(s, "last:"))
		if err != nil || n < 1 {
			return Spec{}, fmt.Errorf("%w: %q", ErrBadSpec, s)
		}
		return LastYears(n), nil
	case strings.HasPrefix(s, "years:"):
		parts := strings.SplitN(strings.TrimPrefix(s, "years:"), "-", 2)
		if len(parts) != 2 {
			return Spec{}, fmt.Errorf("%w: %q", ErrBadSpec, s)
		}
		start, err1 := strconv.Atoi(parts[0])
		end, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return Spec{}, fmt.Errorf("%w: %q", ErrBadSpec, s)
		}
		return YearSpan(start, end), nil
	default:
		return Spec{}, fmt.Errorf("%w: %q", ErrBadSpec, s)
	}
}
