// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/xcinfo/internal/core/domain"

// Entry is one file stored in an archive.
type Entry struct {
	// Name is the full path of the entry inside the archive.
	Name string
	// Size is the uncompressed length in bytes.
	Size uint64
}

// Archive is a read-only view over an opened container.
//
//go:generate mockgen -source=archive.go -destination=mocks/mock_archive.go -package=mocks
type Archive interface {
	// Path returns the filesystem path the archive was opened from.
	Path() string

	// Entries returns every file entry in container order.
	Entries() []Entry

	// FindFirst returns the first entry, in container order, matching the query.
	FindFirst(q domain.ResourceQuery) (Entry, bool)

	// FindAll returns every entry matching the query, in container order.
	FindAll(q domain.ResourceQuery) []Entry

	// Read returns the decompressed contents of an entry.
	Read(e Entry) ([]byte, error)

	// Close releases the underlying file.
	Close() error
}

// ArchiveOpener opens archives by path.
type ArchiveOpener interface {
	// Open reads the archive's entry index. It fails if the file is missing or not a valid container.
	Open(path string) (Archive, error)
}
