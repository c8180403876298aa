// Package repository holds the current fetch cycle's results in memory.
package repository

import (
	"context"

	"github.com/irosadie/fifa-ranking/internal/domain/model"
)

// Store keeps the snapshots and history of the most recent fetch cycle.
// A cycle replaces, never merges with, its predecessor.
type Store interface {
	// ReplaceCycle installs a cycle's results. Returns false when a newer
	// cycle is already installed; the caller must discard its results.
	ReplaceCycle(ctx context.Context, cycle uint64, snapshots []model.Snapshot, history model.History) bool

	// CurrentCycle returns the installed cycle id, zero before any cycle.
	CurrentCycle(ctx context.Context) uint64

	// Snapshots returns the installed per-country snapshots in selection order.
	Snapshots(ctx context.Context) []model.Snapshot

	// History returns the installed history map.
	History(ctx context.Context) model.History

	// Count returns the number of countries in the installed history.
	Count(ctx context.Context) int
}
