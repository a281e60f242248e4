package ports

import "go.trai.ch/xcinfo/internal/core/domain"

// ReportCache stores finished reports keyed by archive digest.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ReportCache interface {
	// Get retrieves the report for a digest.
	// Returns nil, nil if not found.
	Get(digest string) (*domain.Report, error)

	// Put stores the report under its archive digest.
	Put(report domain.Report) error
}
