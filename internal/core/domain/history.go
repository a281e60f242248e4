package domain

import "time"

// HistoryEntry is one recorded inspection in the audit history.
type HistoryEntry struct {
	ID                   int64
	ArchivePath          string
	Digest               string
	FrameworkName        string
	FrameworkVersion     string
	LibraryCount         int
	BuiltForDistribution bool
	Diagnostics          int
	InspectedAt          time.Time
}

// NewHistoryEntry summarizes a report for the audit history.
func NewHistoryEntry(r *Report) HistoryEntry {
	entry := HistoryEntry{
		ArchivePath:          r.Archive.Path,
		Digest:               r.Archive.Digest,
		LibraryCount:         r.LibraryCount(),
		BuiltForDistribution: r.Info.BuiltForDistribution,
		Diagnostics:          len(r.Diagnostics),
		InspectedAt:          r.InspectedAt,
	}
	if r.Info.FrameworkName != nil {
		entry.FrameworkName = *r.Info.FrameworkName
	}
	if r.Info.FrameworkVersion != nil {
		entry.FrameworkVersion = *r.Info.FrameworkVersion
	}
	return entry
}
