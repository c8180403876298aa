// Package export renders an aligned axis as delimited text and as a
// structured JSON document.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/irosadie/fifa-ranking/internal/domain/align"
	"github.com/irosadie/fifa-ranking/internal/domain/datekey"
)

// MIME types and filename pattern of the produced documents.
const (
	CSVContentType  = "text/csv"
	JSONContentType = "application/json"

	filenamePrefix = "ranking_history_"
)

// pointsPrecision matches the two decimals FIFA publishes.
const pointsPrecision = 2

// CSV renders the axis as delimited text. The header is Date followed by
// a rank and a points column per country in selection order. Gaps are
// blank fields. encoding/csv applies RFC 4180 quoting, so display names
// and codes containing separators or quotes stay well-formed.
func CSV(axis align.Axis, codes []string) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	header := make([]string, 0, 1+2*len(codes))
	header = append(header, "Date")
	for _, code := range codes {
		header = append(header, code+" Rank", code+" Points")
	}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}

	row := make([]string, len(header))
	for _, key := range axis.Keys {
		row[0] = string(key)
		for i, code := range codes {
			rankCol, pointsCol := 1+2*i, 2+2*i
			if r, ok := axis.Record(code, key); ok {
				row[rankCol] = strconv.Itoa(r.Rank)
				row[pointsCol] = formatPoints(r.Points)
			} else {
				row[rankCol] = ""
				row[pointsCol] = ""
			}
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return sb.String(), nil
}

// entryCell is the per-country object inside a JSON export entry.
type entryCell struct {
	Rank        int     `json:"rank"`
	Points      float64 `json:"points"`
	CountryName string  `json:"countryName,omitempty"`
}

// JSON renders the axis as an array of per-date entries. A country's
// field is omitted entirely, not nulled, when it has no record on that
// date. Output is deterministic for identical inputs.
func JSON(axis align.Axis, codes []string) ([]byte, error) {
	entries := make([]map[string]any, 0, len(axis.Keys))
	for _, key := range axis.Keys {
		entry := map[string]any{"date": key}
		for _, code := range codes {
			if r, ok := axis.Record(code, key); ok {
				entry[code] = entryCell{
					Rank:        r.Rank,
					Points:      roundPoints(r.Points),
					CountryName: r.CountryName,
				}
			}
		}
		entries = append(entries, entry)
	}
	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return out, nil
}

// Filename builds the download name for an export produced at now,
// e.g. ranking_history_2024-06-01.csv. The date part uses the canonical
// day form and never depends on the viewer's locale.
func Filename(ext string, now time.Time) string {
	return filenamePrefix + string(datekey.FromTime(now)) + "." + ext
}

func formatPoints(p float64) string {
	return strconv.FormatFloat(p, 'f', pointsPrecision, 64)
}

func roundPoints(p float64) float64 {
	v, _ := strconv.ParseFloat(formatPoints(p), 64)
	return v
}
