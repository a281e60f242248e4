package domain

import "go.trai.ch/zerr"

var (
	// ErrArchiveOpenFailed is returned when the archive cannot be opened or its index read.
	ErrArchiveOpenFailed = zerr.New("failed to open archive")

	// ErrEntryReadFailed is returned when an archive entry cannot be decompressed.
	ErrEntryReadFailed = zerr.New("failed to read archive entry")

	// ErrRootManifestNotFound is returned when the archive has no Info.plist.
	ErrRootManifestNotFound = zerr.New("Info.plist not found in the archive")

	// ErrRootManifestInvalid is returned when the root Info.plist does not decode to a dictionary.
	ErrRootManifestInvalid = zerr.New("root Info.plist is not a dictionary")

	// ErrPrivacyManifestInvalid is returned when a PrivacyInfo.xcprivacy exists but is not a dictionary.
	ErrPrivacyManifestInvalid = zerr.New("PrivacyInfo.xcprivacy is not a dictionary")

	// ErrPlistDecodeFailed is returned when bytes cannot be decoded as a property list.
	ErrPlistDecodeFailed = zerr.New("failed to decode property list")

	// ErrNoArchivesSpecified is returned when inspect is called without any archive path.
	ErrNoArchivesSpecified = zerr.New("no archive specified")

	// ErrArchiveArgsConflict is returned when archives are given both with --file and as arguments.
	ErrArchiveArgsConflict = zerr.New("archives must be given either with --file or as arguments, not both")

	// ErrUnsupportedFormat is returned when an unknown output format is requested.
	ErrUnsupportedFormat = zerr.New("unsupported output format, expected json, yaml or text")

	// ErrOutputWriteFailed is returned when the report cannot be written to its destination.
	ErrOutputWriteFailed = zerr.New("failed to write report")

	// ErrReportEncodeFailed is returned when a report cannot be serialized.
	ErrReportEncodeFailed = zerr.New("failed to encode report")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file holds an invalid value.
	ErrConfigInvalid = zerr.New("invalid config value")

	// ErrDigestFailed is returned when the archive digest cannot be computed.
	ErrDigestFailed = zerr.New("failed to compute archive digest")

	// ErrCacheCreateFailed is returned when the report cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create report cache directory")

	// ErrCacheReadFailed is returned when a cached report cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cached report")

	// ErrCacheUnmarshalFailed is returned when a cached report cannot be unmarshaled.
	ErrCacheUnmarshalFailed = zerr.New("failed to unmarshal cached report")

	// ErrCacheMarshalFailed is returned when a report cannot be marshaled for the cache.
	ErrCacheMarshalFailed = zerr.New("failed to marshal report for cache")

	// ErrCacheWriteFailed is returned when a report cannot be written to the cache.
	ErrCacheWriteFailed = zerr.New("failed to write cached report")

	// ErrHistoryOpenFailed is returned when the history database cannot be opened.
	ErrHistoryOpenFailed = zerr.New("failed to open history database")

	// ErrHistoryWriteFailed is returned when an inspection cannot be recorded.
	ErrHistoryWriteFailed = zerr.New("failed to record inspection")

	// ErrHistoryReadFailed is returned when the history cannot be queried.
	ErrHistoryReadFailed = zerr.New("failed to read inspection history")
)
