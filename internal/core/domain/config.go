package domain

import "strings"

// OutputFormat selects the report serialization.
type OutputFormat string

const (
	// FormatJSON writes indented JSON.
	FormatJSON OutputFormat = "json"
	// FormatYAML writes YAML.
	FormatYAML OutputFormat = "yaml"
	// FormatText writes a human-readable summary.
	FormatText OutputFormat = "text"
)

// ParseOutputFormat normalizes a user supplied format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatText:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// Config holds the project settings read from xcinfo.yaml.
type Config struct {
	Format         OutputFormat
	Diagnostics    bool
	CacheEnabled   bool
	HistoryEnabled bool
	Concurrency    int
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Format:         FormatJSON,
		CacheEnabled:   true,
		HistoryEnabled: true,
		Concurrency:    4,
	}
}
