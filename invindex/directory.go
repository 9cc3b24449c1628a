package invindex

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"sync"
)

// LockFileName is the single path the index's open-or-create routine
// touches even when the backing directory is logically read-only. A
// read-only Directory must accept writes to this path and discard them
// (spec.md §4.5, §9 "the lock-path write concession"). spec.md §4.5/§6
// names this literal ".tantivy-meta.lock"; it's renamed here to match
// invindex's own naming (see DESIGN.md) since nothing outside this
// package inspects the literal string, unlike the fixed wire-format
// literal IndexOffsetKey in the table package, which spec.md does pin.
const LockFileName = ".ftindex-meta.lock"

// FileHandle is a bounded, read-only view over one logical file's bytes.
type FileHandle interface {
	io.ReaderAt
	Len() int64
}

// Directory is the read-only contract the index asks of its backing
// store, modeled on the external search library's directory trait
// (spec.md §4.5): list logical files, open/read them, and tolerate the
// single lock-path write concession an open-or-create call makes even
// against read-only backing.
type Directory interface {
	// ManagedFiles returns the logical files the directory serves, in a
	// stable, build-order-preserving sequence.
	ManagedFiles() []string
	Exists(path string) bool
	GetFileHandle(path string) (FileHandle, error)
	AtomicRead(path string) ([]byte, error)
	OpenWrite(path string) (io.WriteCloser, error)
	Delete(path string) error
	Watch(cb func()) (io.Closer, error)
}

// byteHandle adapts a byte slice to FileHandle.
type byteHandle struct{ b []byte }

func (h byteHandle) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off > int64(len(h.b)) {
		return 0, fmt.Errorf("%w: offset %d out of [0,%d]", ErrInvalidRange, off, len(h.b))
	}
	n := copy(p, h.b[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (h byteHandle) Len() int64 { return int64(len(h.b)) }

// inertWatch is returned for Watch calls: no file-change notifications are
// possible over a sealed or purely in-memory buffer.
type inertWatch struct{}

func (inertWatch) Close() error { return nil }

// MemDirectory is a write-capable, in-memory Directory used by Builder
// while assembling a fresh index. Files are retained in first-write order,
// which ManagedFiles and ManagedFilesSorted rely on to produce a
// build-stable manifest order (spec.md §4.3 "Ordering").
type MemDirectory struct {
	mu    sync.RWMutex
	order []string
	files map[string]*bytes.Buffer
}

// NewMemDirectory returns an empty, write-capable directory.
func NewMemDirectory() *MemDirectory {
	return &MemDirectory{files: make(map[string]*bytes.Buffer)}
}

var _ Directory = (*MemDirectory)(nil)

func (d *MemDirectory) ManagedFiles() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

func (d *MemDirectory) Exists(path string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.files[path]
	return ok
}

func (d *MemDirectory) GetFileHandle(path string) (FileHandle, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	buf, ok := d.files[path]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFileNotFound, path)
	}
	return byteHandle{b: buf.Bytes()}, nil
}

func (d *MemDirectory) AtomicRead(path string) ([]byte, error) {
	h, err := d.GetFileHandle(path)
	if err != nil {
		return nil, err
	}
	b := make([]byte, h.Len())
	if _, err := h.ReadAt(b, 0); err != nil && err != io.EOF {
		return nil, err
	}
	return b, nil
}

type memWriter struct {
	dir  *MemDirectory
	path string
	buf  bytes.Buffer
}

func (w *memWriter) Write(p []byte) (int, error) { return w.buf.Write(p) }

func (w *memWriter) Close() error {
	w.dir.mu.Lock()
	defer w.dir.mu.Unlock()
	if _, exists := w.dir.files[w.path]; !exists {
		w.dir.order = append(w.dir.order, w.path)
	}
	w.dir.files[w.path] = &w.buf
	return nil
}

func (d *MemDirectory) OpenWrite(path string) (io.WriteCloser, error) {
	return &memWriter{dir: d, path: path}, nil
}

func (d *MemDirectory) Delete(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.files, path)
	for i, p := range d.order {
		if p == path {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return nil
}

func (d *MemDirectory) Watch(func()) (io.Closer, error) { return inertWatch{}, nil }

// ManagedFilesSorted returns d.ManagedFiles() with the meta descriptor
// moved first and every other entry left in the directory's own order
// after it. The container's manifest planner (see package manifest) walks
// files in this order so that meta.json is always the container's first
// logical file, matching the layout the external search library expects
// to find on open (spec.md §4.3).
func ManagedFilesSorted(d Directory) []string {
	files := d.ManagedFiles()
	sort.SliceStable(files, func(i, j int) bool {
		return files[i] == MetaFileName && files[j] != MetaFileName
	})
	return files
}
