// Package encoder renders framework reports as JSON, YAML or text.
package encoder

import (
	"encoding/json"
	"io"

	"go.trai.ch/xcinfo/internal/core/domain"
	"go.trai.ch/xcinfo/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var (
	_ ports.EncoderFactory = (*Factory)(nil)
	_ ports.ReportEncoder  = JSONEncoder{}
	_ ports.ReportEncoder  = YAMLEncoder{}
	_ ports.ReportEncoder  = TextEncoder{}
)

// Factory implements ports.EncoderFactory.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// For returns the encoder for format.
func (f *Factory) For(format domain.OutputFormat) (ports.ReportEncoder, error) {
	switch format {
	case domain.FormatJSON:
		return JSONEncoder{}, nil
	case domain.FormatYAML:
		return YAMLEncoder{}, nil
	case domain.FormatText:
		return TextEncoder{}, nil
	default:
		return nil, zerr.With(zerr.New(domain.ErrUnsupportedFormat.Error()), "format", string(format))
	}
}

// payload returns the single document as an object, or all documents as a list.
func payload(docs []domain.AnnotatedInfo) any {
	if len(docs) == 1 {
		return docs[0]
	}
	if docs == nil {
		return []domain.AnnotatedInfo{}
	}
	return docs
}

// JSONEncoder writes reports as JSON indented with two spaces.
type JSONEncoder struct{}

// Encode implements ports.ReportEncoder.
func (JSONEncoder) Encode(w io.Writer, docs []domain.AnnotatedInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload(docs)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportEncodeFailed.Error()), "format", "json")
	}
	return nil
}

// YAMLEncoder writes reports as YAML.
type YAMLEncoder struct{}

// Encode implements ports.ReportEncoder.
func (YAMLEncoder) Encode(w io.Writer, docs []domain.AnnotatedInfo) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(payload(docs)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportEncodeFailed.Error()), "format", "yaml")
	}
	if err := enc.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportEncodeFailed.Error()), "format", "yaml")
	}
	return nil
}
