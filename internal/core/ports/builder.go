package ports

import (
	"context"

	"go.trai.ch/xcinfo/internal/core/domain"
)

// ReportBuilder runs the extraction pipeline over one archive.
//
//go:generate mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type ReportBuilder interface {
	// Build inspects the archive at path.
	Build(ctx context.Context, path string) (*domain.Report, error)
}
