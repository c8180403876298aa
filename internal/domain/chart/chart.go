// Package chart turns an aligned axis into plottable per-country series.
package chart

import (
	"fmt"

	"github.com/irosadie/fifa-ranking/internal/domain/align"
	"github.com/irosadie/fifa-ranking/internal/domain/datekey"
)

// Series is one country's line on the chart. A nil value is a gap: the
// country had no observation on that label, and the renderer must break
// the line rather than interpolate.
type Series struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	Color  string `json:"color"`
	Values []*int `json:"values"`
}

// Data is the chart payload handed to the rendering collaborator.
type Data struct {
	Labels []datekey.Key `json:"labels"`
	Series []Series      `json:"series"`
}

// Build produces gap-filled rank series for the selected codes, in
// selection order, over an ascending axis. names maps codes to display
// names and may be incomplete.
func Build(axis align.Axis, codes []string, names map[string]string) Data {
	data := Data{
		Labels: axis.Keys,
		Series: make([]Series, 0, len(codes)),
	}
	for i, code := range codes {
		values := make([]*int, len(axis.Keys))
		for j, key := range axis.Keys {
			if r, ok := axis.Record(code, key); ok {
				rank := r.Rank
				values[j] = &rank
			}
		}
		data.Series = append(data.Series, Series{
			Code:   code,
			Label:  seriesLabel(code, names[code]),
			Color:  ColorAt(i),
			Values: values,
		})
	}
	return data
}

func seriesLabel(code, name string) string {
	if name == "" {
		return code
	}
	return fmt.Sprintf("%s (%s)", name, code)
}
