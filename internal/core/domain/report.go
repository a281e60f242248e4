package domain

import "time"

// ArchiveRef identifies the archive a report was built from.
type ArchiveRef struct {
	Path   string `json:"path" yaml:"path"`
	Digest string `json:"digest,omitempty" yaml:"digest,omitempty"`
}

// Diagnostic records a candidate that was skipped during lenient parsing.
type Diagnostic struct {
	Scope  string `json:"scope" yaml:"scope"`
	Reason string `json:"reason" yaml:"reason"`
}

// Report is the result of inspecting one archive.
type Report struct {
	Archive     ArchiveRef    `json:"archive"`
	Info        FrameworkInfo `json:"info"`
	Diagnostics []Diagnostic  `json:"diagnostics,omitempty"`
	InspectedAt time.Time     `json:"inspected_at,omitzero"`
}

// AnnotatedInfo is the output shape used when diagnostics are requested
// alongside the framework fields.
type AnnotatedInfo struct {
	FrameworkInfo `yaml:",inline"`
	Diagnostics   []Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// LibraryCount returns the number of libraries in the report, zero when absent.
func (r *Report) LibraryCount() int {
	return len(r.Info.AvailableLibraries)
}
