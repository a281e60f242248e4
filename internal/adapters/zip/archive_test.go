package zip_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xcinfo/internal/adapters/zip"
	"go.trai.ch/xcinfo/internal/adapters/zip/ziptest"
	"go.trai.ch/xcinfo/internal/core/domain"
	"go.trai.ch/xcinfo/internal/core/ports"
)

func fixture(t *testing.T) *zip.Index {
	t.Helper()

	data := ziptest.Build(t,
		ziptest.Dir("Kit.xcframework/"),
		ziptest.Text("Kit.xcframework/Info.plist", "root"),
		ziptest.Dir("Kit.xcframework/ios-arm64/"),
		ziptest.Text("Kit.xcframework/ios-arm64/Kit.framework/Info.plist", "device"),
		ziptest.Text("Kit.xcframework/ios-arm64/Kit.framework/Modules/Kit.swiftmodule/arm64.swiftinterface", "a"),
		ziptest.Text("Kit.xcframework/ios-arm64_x86_64-simulator/Kit.framework/Info.plist", "simulator"),
		ziptest.Text("Kit.xcframework/ios-arm64_x86_64-simulator/Kit.framework/Modules/Kit.swiftmodule/x86_64.swiftinterface", "b"),
		ziptest.Text("Kit.xcframework/ios-arm64_x86_64-simulator/Kit.framework/Modules/Kit.swiftmodule/arm64.swiftinterface", "c"),
		ziptest.Sized("Kit.xcframework/ios-arm64/Kit.framework/Kit", 1234),
	)

	idx, err := zip.NewIndex("Kit.xcframework.zip", data)
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })
	return idx
}

func TestIndex_Entries(t *testing.T) {
	idx := fixture(t)

	entries := idx.Entries()
	require.Len(t, entries, 7, "directory entries are not indexed")
	assert.Equal(t, "Kit.xcframework/Info.plist", entries[0].Name)
	assert.Equal(t, "Kit.xcframework/ios-arm64/Kit.framework/Kit", entries[6].Name)
	assert.Equal(t, uint64(1234), entries[6].Size)
	assert.Equal(t, "Kit.xcframework.zip", idx.Path())
}

func TestIndex_FindFirst(t *testing.T) {
	idx := fixture(t)

	tests := []struct {
		name    string
		query   domain.ResourceQuery
		want    string
		wantHit bool
	}{
		{
			name:    "suffix returns first in container order",
			query:   domain.ResourceQuery{Suffix: "/Info.plist"},
			want:    "Kit.xcframework/Info.plist",
			wantHit: true,
		},
		{
			name:    "extension suffix",
			query:   domain.ResourceQuery{Suffix: ".swiftinterface"},
			want:    "Kit.xcframework/ios-arm64/Kit.framework/Modules/Kit.swiftmodule/arm64.swiftinterface",
			wantHit: true,
		},
		{
			name:    "scope matches whole segments only",
			query:   domain.ResourceQuery{Scope: "ios-arm64/Kit.framework", Suffix: "/Info.plist"},
			want:    "Kit.xcframework/ios-arm64/Kit.framework/Info.plist",
			wantHit: true,
		},
		{
			name:    "scope is not a name prefix",
			query:   domain.ResourceQuery{Scope: "ios-arm64", Suffix: "/x86_64.swiftinterface"},
			wantHit: false,
		},
		{
			name:    "missing resource",
			query:   domain.ResourceQuery{Suffix: "/PrivacyInfo.xcprivacy"},
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := idx.FindFirst(tt.query)
			assert.Equal(t, tt.wantHit, ok)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestIndex_FindAll(t *testing.T) {
	idx := fixture(t)

	got := idx.FindAll(domain.ResourceQuery{
		Scope:  "ios-arm64_x86_64-simulator/Kit.framework/Modules",
		Suffix: ".swiftinterface",
	})

	names := make([]string, 0, len(got))
	for _, e := range got {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{
		"Kit.xcframework/ios-arm64_x86_64-simulator/Kit.framework/Modules/Kit.swiftmodule/x86_64.swiftinterface",
		"Kit.xcframework/ios-arm64_x86_64-simulator/Kit.framework/Modules/Kit.swiftmodule/arm64.swiftinterface",
	}, names)

	assert.Empty(t, idx.FindAll(domain.ResourceQuery{Suffix: ".xcprivacy"}))
}

func TestIndex_Read(t *testing.T) {
	idx := fixture(t)

	entry, ok := idx.FindFirst(domain.ResourceQuery{Scope: "ios-arm64_x86_64-simulator", Suffix: "/Info.plist"})
	require.True(t, ok)

	first, err := idx.Read(entry)
	require.NoError(t, err)
	assert.Equal(t, "simulator", string(first))

	second, err := idx.Read(entry)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = idx.Read(ports.Entry{Name: "Kit.xcframework/missing"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrEntryReadFailed.Error())
}

func TestOpener_Open(t *testing.T) {
	t.Run("reads archive from disk", func(t *testing.T) {
		path := ziptest.WriteFile(t, "Kit.xcframework.zip",
			ziptest.Text("Kit.xcframework/Info.plist", "root"),
		)

		archive, err := zip.NewOpener().Open(path)
		require.NoError(t, err)
		defer func() { _ = archive.Close() }()

		assert.Equal(t, path, archive.Path())
		require.Len(t, archive.Entries(), 1)

		data, err := archive.Read(archive.Entries()[0])
		require.NoError(t, err)
		assert.Equal(t, "root", string(data))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := zip.NewOpener().Open(filepath.Join(t.TempDir(), "missing.zip"))
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrArchiveOpenFailed.Error())
	})

	t.Run("not a zip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "plain.zip")
		require.NoError(t, os.WriteFile(path, []byte("definitely not a zip archive"), 0o600))

		_, err := zip.NewOpener().Open(path)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrArchiveOpenFailed.Error())
	})
}
