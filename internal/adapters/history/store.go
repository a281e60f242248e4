// Package history keeps an audit trail of inspected archives in SQLite.
package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver
	"go.trai.ch/xcinfo/internal/core/domain"
	"go.trai.ch/xcinfo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.History = (*Store)(nil)

// timeLayout has a fixed width so rows sort chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS inspections (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		archive_path TEXT NOT NULL,
		digest TEXT NOT NULL,
		framework_name TEXT,
		framework_version TEXT,
		library_count INTEGER NOT NULL,
		built_for_distribution INTEGER NOT NULL,
		diagnostics INTEGER NOT NULL,
		inspected_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_inspections_digest ON inspections(digest)`,
	`CREATE INDEX IF NOT EXISTS idx_inspections_inspected_at ON inspections(inspected_at)`,
}

// Store implements ports.History on a SQLite database.
// The database file is created on first use, so commands that never touch
// history leave no trace on disk.
type Store struct {
	path string
	mu   sync.Mutex
	db   *sql.DB
}

// NewStore creates a Store for the database at path.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

func (s *Store) conn(ctx context.Context) (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrHistoryOpenFailed.Error()), "path", s.path)
	}

	db, err := sql.Open("sqlite3", s.path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrHistoryOpenFailed.Error()), "path", s.path)
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, zerr.With(zerr.Wrap(err, domain.ErrHistoryOpenFailed.Error()), "path", s.path)
		}
	}

	s.db = db
	return db, nil
}

// Record appends one inspection.
func (s *Store) Record(ctx context.Context, entry domain.HistoryEntry) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}

	inspectedAt := entry.InspectedAt
	if inspectedAt.IsZero() {
		inspectedAt = time.Now()
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO inspections (
			archive_path, digest, framework_name, framework_version,
			library_count, built_for_distribution, diagnostics, inspected_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ArchivePath,
		entry.Digest,
		entry.FrameworkName,
		entry.FrameworkVersion,
		entry.LibraryCount,
		entry.BuiltForDistribution,
		entry.Diagnostics,
		inspectedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrHistoryWriteFailed.Error()), "archive", entry.ArchivePath)
	}
	return nil
}

// List returns up to limit inspections, newest first. A non-positive limit returns all rows.
func (s *Store) List(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = -1
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, archive_path, digest, framework_name, framework_version,
			library_count, built_for_distribution, diagnostics, inspected_at
		FROM inspections
		ORDER BY inspected_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrHistoryReadFailed.Error())
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var (
			e           domain.HistoryEntry
			name        sql.NullString
			version     sql.NullString
			inspectedAt string
		)
		if err := rows.Scan(
			&e.ID, &e.ArchivePath, &e.Digest, &name, &version,
			&e.LibraryCount, &e.BuiltForDistribution, &e.Diagnostics, &inspectedAt,
		); err != nil {
			return nil, zerr.Wrap(err, domain.ErrHistoryReadFailed.Error())
		}

		e.FrameworkName = name.String
		e.FrameworkVersion = version.String
		e.InspectedAt, err = time.Parse(timeLayout, inspectedAt)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrHistoryReadFailed.Error()), "id", e.ID)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrHistoryReadFailed.Error())
	}
	return entries, nil
}

// Close releases the database connection if one was opened.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
