// Package provider is the client for the upstream ranking data source.
package provider

import (
	"context"

	"github.com/irosadie/fifa-ranking/internal/domain/model"
)

// Country is one selectable entry of the upstream catalog.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Client retrieves ranking data for single countries from the upstream
// source. Implementations return records unordered; callers own sorting.
type Client interface {
	// History returns all ranking records for one country.
	History(ctx context.Context, code, gender, edition string) ([]model.Record, error)

	// Countries lists the selectable countries.
	Countries(ctx context.Context) ([]Country, error)
}
