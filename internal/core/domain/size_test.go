package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/xcinfo/internal/core/domain"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "0.00 KB"},
		{1, "0.00 KB"},
		{1_234, "1.23 KB"},
		{999_999, "1000.00 KB"},
		{1_000_000, "1.00 MB"},
		{12_345_678, "12.35 MB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.FormatSize(tt.n), "FormatSize(%d)", tt.n)
	}
}

func TestUniqueOrdered(t *testing.T) {
	assert.Equal(t,
		[]string{"Foundation", "UIKit", "Combine"},
		domain.UniqueOrdered([]string{"Foundation", "UIKit", "Foundation", "Combine", "Foundation"}),
	)
	assert.Nil(t, domain.UniqueOrdered[string](nil))
}

func TestOutcome(t *testing.T) {
	included := domain.Included("arm64")
	v, ok := included.Value()
	assert.True(t, ok)
	assert.Equal(t, "arm64", v)
	assert.Empty(t, included.Reason())

	skipped := domain.Skipped[string]("missing SupportedPlatform")
	v, ok = skipped.Value()
	assert.False(t, ok)
	assert.Empty(t, v)
	assert.Equal(t, "missing SupportedPlatform", skipped.Reason())
}

func TestParseOutputFormat(t *testing.T) {
	for in, want := range map[string]domain.OutputFormat{
		"json":   domain.FormatJSON,
		" YAML ": domain.FormatYAML,
		"yml":    domain.FormatYAML,
		"Text":   domain.FormatText,
	} {
		got, err := domain.ParseOutputFormat(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := domain.ParseOutputFormat("plist")
	assert.ErrorContains(t, err, domain.ErrUnsupportedFormat.Error())
}

func TestNewHistoryEntry(t *testing.T) {
	name, version := "Kit", "1.2.0"
	r := &domain.Report{
		Archive: domain.ArchiveRef{Path: "Kit.zip", Digest: "d1"},
		Info: domain.FrameworkInfo{
			FrameworkName:        &name,
			FrameworkVersion:     &version,
			BuiltForDistribution: true,
			AvailableLibraries:   domain.List[domain.LibraryInfo]{{}, {}},
		},
		Diagnostics: []domain.Diagnostic{{Scope: "ios-arm64", Reason: "x"}},
	}

	assert.Equal(t, domain.HistoryEntry{
		ArchivePath:          "Kit.zip",
		Digest:               "d1",
		FrameworkName:        "Kit",
		FrameworkVersion:     "1.2.0",
		LibraryCount:         2,
		BuiltForDistribution: true,
		Diagnostics:          1,
	}, domain.NewHistoryEntry(r))
}
