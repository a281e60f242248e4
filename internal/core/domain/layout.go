package domain

import "path/filepath"

const (
	// StateDirName is the name of the per-project state directory.
	StateDirName = ".xcinfo"

	// CacheDirName is the name of the report cache directory.
	CacheDirName = "cache"

	// HistoryFileName is the name of the inspection history database.
	HistoryFileName = "history.db"

	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "xcinfo.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default path for the report cache.
// It joins .xcinfo and cache.
func DefaultCachePath() string {
	return filepath.Join(StateDirName, CacheDirName)
}

// DefaultHistoryPath returns the default path for the history database.
// It joins .xcinfo and history.db.
func DefaultHistoryPath() string {
	return filepath.Join(StateDirName, HistoryFileName)
}
