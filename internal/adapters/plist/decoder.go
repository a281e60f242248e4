// Package plist decodes Apple property lists with howett.net/plist.
package plist

import (
	"go.trai.ch/xcinfo/internal/core/domain"
	"go.trai.ch/xcinfo/internal/core/ports"
	"go.trai.ch/zerr"
	"howett.net/plist"
)

var _ ports.PropertyListDecoder = (*Decoder)(nil)

// Decoder implements ports.PropertyListDecoder.
// It accepts XML, binary, OpenStep and GNUStep encodings.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode parses data into generic values: dictionaries become map[string]any,
// arrays []any, and scalars their natural Go types.
func (d *Decoder) Decode(data []byte) (any, error) {
	var v any
	format, err := plist.Unmarshal(data, &v)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrPlistDecodeFailed.Error())
	}
	if v == nil {
		return nil, zerr.With(zerr.New(domain.ErrPlistDecodeFailed.Error()), "format", plist.FormatNames[format])
	}
	return v, nil
}
