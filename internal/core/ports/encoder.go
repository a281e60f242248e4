package ports

import (
	"io"

	"go.trai.ch/xcinfo/internal/core/domain"
)

// ReportEncoder serializes framework reports.
//
//go:generate mockgen -source=encoder.go -destination=mocks/mock_encoder.go -package=mocks
type ReportEncoder interface {
	// Encode writes docs to w. A single document is written as an object,
	// several as a list in the given order.
	Encode(w io.Writer, docs []domain.AnnotatedInfo) error
}

// EncoderFactory returns the encoder for an output format.
type EncoderFactory interface {
	For(format domain.OutputFormat) (ReportEncoder, error)
}
