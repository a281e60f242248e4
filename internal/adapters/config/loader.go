// Package config loads the optional xcinfo.yaml project configuration.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/xcinfo/internal/core/domain"
	"go.trai.ch/xcinfo/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger   ports.Logger
	Filename string
}

// NewLoader creates a new Loader reading domain.ConfigFileName.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{
		Logger:   log,
		Filename: domain.ConfigFileName,
	}
}

// Load reads the configuration from cwd. A missing file yields the defaults.
func (l *Loader) Load(cwd string) (domain.Config, error) {
	path := filepath.Join(cwd, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is the well-known config file in cwd
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}

	if l.Logger != nil {
		l.Logger.Debug("loaded configuration from " + path)
	}
	return cfg, nil
}

// Parse decodes an xcinfo.yaml document over the defaults and validates the result.
func Parse(data []byte) (domain.Config, error) {
	var file Xcfile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.Config{}, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	cfg := domain.DefaultConfig()

	if file.Output.Format != "" {
		format, err := domain.ParseOutputFormat(file.Output.Format)
		if err != nil {
			return domain.Config{}, zerr.With(
				zerr.Wrap(err, domain.ErrConfigInvalid.Error()),
				"output.format", file.Output.Format,
			)
		}
		cfg.Format = format
	}
	if file.Output.Diagnostics != nil {
		cfg.Diagnostics = *file.Output.Diagnostics
	}
	if file.Cache.Enabled != nil {
		cfg.CacheEnabled = *file.Cache.Enabled
	}
	if file.History.Enabled != nil {
		cfg.HistoryEnabled = *file.History.Enabled
	}
	if file.Inspect.Concurrency != nil {
		if *file.Inspect.Concurrency < 1 {
			return domain.Config{}, zerr.With(
				zerr.New(domain.ErrConfigInvalid.Error()),
				"inspect.concurrency", *file.Inspect.Concurrency,
			)
		}
		cfg.Concurrency = *file.Inspect.Concurrency
	}

	return cfg, nil
}
