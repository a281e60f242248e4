package ports

import (
	"context"

	"go.trai.ch/xcinfo/internal/core/domain"
)

// History is the audit log of past inspections.
//
//go:generate mockgen -source=history.go -destination=mocks/mock_history.go -package=mocks
type History interface {
	// Record appends an inspection to the log.
	Record(ctx context.Context, entry domain.HistoryEntry) error

	// List returns up to limit entries, newest first. A non-positive limit returns all entries.
	List(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// Close releases the underlying database.
	Close() error
}
