package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xcinfo/internal/adapters/fs"
	"go.trai.ch/xcinfo/internal/core/domain"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestHasher_ComputeFileDigest(t *testing.T) {
	dir := t.TempDir()
	h := fs.NewHasher()

	t.Run("empty file", func(t *testing.T) {
		got, err := h.ComputeFileDigest(writeFile(t, dir, "empty.zip", nil))
		require.NoError(t, err)
		assert.Equal(t, "ef46db3751d8e999", got)
	})

	t.Run("content addressed", func(t *testing.T) {
		a, err := h.ComputeFileDigest(writeFile(t, dir, "a.zip", []byte("PK\x03\x04 framework")))
		require.NoError(t, err)
		b, err := h.ComputeFileDigest(writeFile(t, dir, "b.zip", []byte("PK\x03\x04 framework")))
		require.NoError(t, err)
		c, err := h.ComputeFileDigest(writeFile(t, dir, "c.zip", []byte("PK\x03\x04 other")))
		require.NoError(t, err)

		assert.Equal(t, a, b, "same bytes under different names share a digest")
		assert.NotEqual(t, a, c)
		assert.Len(t, a, 16)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := h.ComputeFileDigest(filepath.Join(dir, "missing.zip"))
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrDigestFailed.Error())
	})
}
