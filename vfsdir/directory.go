// Package vfsdir implements a read-only, zero-copy directory over a
// decoded container.Container: the virtual directory the external search
// library opens an index through once its files have been embedded inside
// a table file rather than laid out on a real filesystem (spec.md §4.5).
package vfsdir

import (
	"fmt"
	"io"

	"github.com/rpcpool/ftep/container"
	"github.com/rpcpool/ftep/invindex"
)

// Directory serves every logical file described by a container.Header as
// a bounded sub-slice of a single shared byte buffer. No file's bytes are
// copied out of buf; every handle and AtomicRead result aliases it
// directly.
type Directory struct {
	buf     []byte
	entries map[string]container.FileMetadata
	order   []string
}

var _ invindex.Directory = (*Directory)(nil)

// New builds a Directory over c's data block. c is typically the result
// of container.Decode reading a table file's embedded index.
func New(c *container.Container) *Directory {
	entries := make(map[string]container.FileMetadata, len(c.Header.Entries))
	order := make([]string, 0, len(c.Header.Entries))
	for _, e := range c.Header.Entries {
		entries[e.Path] = e
		order = append(order, e.Path)
	}
	return &Directory{buf: c.DataBlock, entries: entries, order: order}
}

func (d *Directory) ManagedFiles() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

func (d *Directory) Exists(path string) bool {
	_, ok := d.entries[path]
	return ok
}

// sliceFor returns the full logical byte range the external search
// library should see for path: content followed by its reconstructed
// footer for every file except the meta descriptor, which carries no
// footer (spec.md §4.4).
func (d *Directory) sliceFor(path string) ([]byte, error) {
	e, ok := d.entries[path]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFileNotFound, path)
	}
	total := e.DataContentLen + uint64(e.DataFooterLen)
	start := e.DataOffset
	end := start + total
	if end > uint64(len(d.buf)) {
		return nil, fmt.Errorf("ftep/vfsdir: entry %q out of bounds: [%d,%d) over %d-byte data block", path, start, end, len(d.buf))
	}
	return d.buf[start:end], nil
}

func (d *Directory) GetFileHandle(path string) (invindex.FileHandle, error) {
	b, err := d.sliceFor(path)
	if err != nil {
		return nil, err
	}
	return &handle{b: b}, nil
}

func (d *Directory) AtomicRead(path string) ([]byte, error) {
	return d.sliceFor(path)
}

// OpenWrite accepts only the external search library's lock path, exactly
// as the copied-from teacher real archive directory does: any write
// against an embedded index's real files would silently corrupt a
// container this package never re-encodes (spec.md §4.10).
func (d *Directory) OpenWrite(path string) (io.WriteCloser, error) {
	if path != invindex.LockFileName {
		return nil, fmt.Errorf("%w: %q", ErrWriteRejected, path)
	}
	return discardWriteCloser{}, nil
}

// Delete is a no-op: nothing about this directory's backing storage can
// shrink without re-encoding the whole container, and the search library
// only ever deletes its own lock file, which was never persisted.
func (d *Directory) Delete(string) error { return nil }

// Sync and AtomicWrite are never called against a read-only directory in
// practice, so unlike Delete they fail loudly instead of quietly
// no-opping (spec.md §4.5).
func (d *Directory) Sync() error { return ErrUnsupported }

func (d *Directory) AtomicWrite(string, []byte) error { return ErrUnsupported }

// Watch reports that nothing will ever change: the container is sealed
// for the lifetime of this Directory.
func (d *Directory) Watch(func()) (io.Closer, error) { return inertWatch{}, nil }

type handle struct{ b []byte }

func (h *handle) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off > int64(len(h.b)) {
		return 0, fmt.Errorf("%w: offset %d out of [0,%d]", invindex.ErrInvalidRange, off, len(h.b))
	}
	n := copy(p, h.b[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (h *handle) Len() int64 { return int64(len(h.b)) }

type discardWriteCloser struct{}

func (discardWriteCloser) Write(p []byte) (int, error) { return len(p), nil }
func (discardWriteCloser) Close() error                { return nil }

type inertWatch struct{}

func (inertWatch) Close() error { return nil }
