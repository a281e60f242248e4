// Package zip indexes framework bundles distributed as zip archives.
package zip

import (
	"archive/zip"
	"bytes"
	"io"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/xcinfo/internal/core/domain"
	"go.trai.ch/xcinfo/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultCacheEntries bounds the number of decompressed entries kept per archive.
const DefaultCacheEntries = 64

var (
	_ ports.ArchiveOpener = (*Opener)(nil)
	_ ports.Archive       = (*Index)(nil)
)

// Opener implements ports.ArchiveOpener for zip files on disk.
type Opener struct {
	cacheEntries int
}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{cacheEntries: DefaultCacheEntries}
}

// Open reads the central directory of the zip at path and indexes it.
func (o *Opener) Open(path string) (ports.Archive, error) {
	//nolint:gosec // Path is supplied by the user on purpose
	f, err := os.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArchiveOpenFailed.Error()), "archive", path)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArchiveOpenFailed.Error()), "archive", path)
	}

	idx, err := newIndex(path, f, info.Size(), o.cacheEntries)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	idx.closer = f

	return idx, nil
}

// Index is the name index of one zip archive, built in a single pass when opened.
type Index struct {
	path    string
	closer  io.Closer
	entries []ports.Entry
	files   map[string]*zip.File
	cache   *lru.Cache[string, []byte]
}

// NewIndex indexes an in-memory zip archive. The path is only used for reporting.
func NewIndex(path string, data []byte) (*Index, error) {
	return newIndex(path, bytes.NewReader(data), int64(len(data)), DefaultCacheEntries)
}

func newIndex(path string, r io.ReaderAt, size int64, cacheEntries int) (*Index, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArchiveOpenFailed.Error()), "archive", path)
	}

	cache, err := lru.New[string, []byte](cacheEntries)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArchiveOpenFailed.Error()), "archive", path)
	}

	idx := &Index{
		path:    path,
		entries: make([]ports.Entry, 0, len(zr.File)),
		files:   make(map[string]*zip.File, len(zr.File)),
		cache:   cache,
	}

	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		// A zip may repeat a name. Lookups always resolve to the first occurrence.
		if _, seen := idx.files[f.Name]; seen {
			continue
		}
		idx.files[f.Name] = f
		idx.entries = append(idx.entries, ports.Entry{
			Name: f.Name,
			Size: f.UncompressedSize64,
		})
	}

	return idx, nil
}

// Path returns the path the archive was opened from.
func (i *Index) Path() string {
	return i.path
}

// Entries returns every file entry in container order.
func (i *Index) Entries() []ports.Entry {
	out := make([]ports.Entry, len(i.entries))
	copy(out, i.entries)
	return out
}

// FindFirst returns the first entry, in container order, matching q.
func (i *Index) FindFirst(q domain.ResourceQuery) (ports.Entry, bool) {
	for _, e := range i.entries {
		if q.Matches(e.Name) {
			return e, true
		}
	}
	return ports.Entry{}, false
}

// FindAll returns every entry matching q, in container order.
func (i *Index) FindAll(q domain.ResourceQuery) []ports.Entry {
	var out []ports.Entry
	for _, e := range i.entries {
		if q.Matches(e.Name) {
			out = append(out, e)
		}
	}
	return out
}

// Read returns the decompressed bytes of e. Results are cached per archive.
func (i *Index) Read(e ports.Entry) ([]byte, error) {
	if data, ok := i.cache.Get(e.Name); ok {
		return data, nil
	}

	f, ok := i.files[e.Name]
	if !ok {
		err := zerr.With(zerr.New(domain.ErrEntryReadFailed.Error()), "entry", e.Name)
		return nil, zerr.With(err, "archive", i.path)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, i.readError(err, e)
	}
	defer func() {
		_ = rc.Close()
	}()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, i.readError(err, e)
	}

	i.cache.Add(e.Name, data)
	return data, nil
}

func (i *Index) readError(err error, e ports.Entry) error {
	wrapped := zerr.Wrap(err, domain.ErrEntryReadFailed.Error())
	wrapped = zerr.With(wrapped, "entry", e.Name)
	return zerr.With(wrapped, "archive", i.path)
}

// Close releases the underlying file. In-memory indexes have nothing to release.
func (i *Index) Close() error {
	i.cache.Purge()
	if i.closer == nil {
		return nil
	}
	return i.closer.Close()
}
