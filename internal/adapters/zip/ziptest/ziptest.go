// Package ziptest builds framework bundle fixtures for tests.
package ziptest

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"howett.net/plist"
)

// File is one entry of a fixture archive. A Name ending in "/" is written as a directory.
type File struct {
	Name string
	Data []byte
}

// Dir returns a directory entry.
func Dir(name string) File {
	return File{Name: name}
}

// Text returns a file entry with string contents.
func Text(name, body string) File {
	return File{Name: name, Data: []byte(body)}
}

// Plist returns a file entry holding v encoded as an XML property list.
func Plist(t testing.TB, name string, v any) File {
	t.Helper()
	return File{Name: name, Data: EncodePlist(t, v)}
}

// Sized returns a file entry of n zero bytes.
func Sized(name string, n int) File {
	return File{Name: name, Data: make([]byte, n)}
}

// EncodePlist encodes v as an XML property list.
func EncodePlist(t testing.TB, v any) []byte {
	t.Helper()
	data, err := plist.MarshalIndent(v, plist.XMLFormat, "\t")
	require.NoError(t, err)
	return data
}

// Build writes files, in order, into a zip archive held in memory.
func Build(t testing.TB, files ...File) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, f := range files {
		fw, err := w.Create(f.Name)
		require.NoError(t, err)
		if len(f.Data) > 0 {
			_, err = fw.Write(f.Data)
			require.NoError(t, err)
		}
	}
	require.NoError(t, w.Close())

	return buf.Bytes()
}

// WriteFile builds an archive and stores it in a temporary directory, returning its path.
func WriteFile(t testing.TB, name string, files ...File) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, Build(t, files...), 0o600))
	return path
}
