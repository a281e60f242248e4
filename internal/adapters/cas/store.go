// Package cas implements the content-addressed report cache.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/xcinfo/internal/core/domain"
	"go.trai.ch/xcinfo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ReportCache = (*Store)(nil)

// Store implements ports.ReportCache with one JSON file per archive digest.
// Keys also include the tool version so reports from older releases are not reused.
type Store struct {
	dir     string
	version string
}

// NewStore creates a Store rooted at dir for the given tool version.
func NewStore(dir, version string) *Store {
	return &Store{
		dir:     filepath.Clean(dir),
		version: version,
	}
}

// Get returns the cached report for digest, or nil when there is none.
func (s *Store) Get(digest string) (*domain.Report, error) {
	filename := s.filename(digest)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "digest", digest)
	}

	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheUnmarshalFailed.Error()), "digest", digest)
	}

	return &report, nil
}

// Put stores report under its archive digest.
func (s *Store) Put(report domain.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error())
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "dir", s.dir)
	}

	filename := s.filename(report.Archive.Digest)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", filename)
	}

	return nil
}

func (s *Store) filename(digest string) string {
	hash := sha256.Sum256([]byte(digest + "\x00" + s.version))
	return filepath.Join(s.dir, hex.EncodeToString(hash[:])+".json")
}
