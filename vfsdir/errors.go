package vfsdir

import "errors"

// ErrFileNotFound is returned when a requested path is not among the
// container's managed files.
var ErrFileNotFound = errors.New("ftep/vfsdir: file does not exist")

// ErrWriteRejected is the fatal error raised when something attempts to
// write a path other than the lock path against this read-only directory
// (spec.md §4.10: any other write path is a bug in the caller, not a
// recoverable I/O condition).
var ErrWriteRejected = errors.New("ftep/vfsdir: write rejected by read-only directory")

// ErrUnsupported is returned by operations the external search library
// only invokes when it intends to mutate a directory it owns outright,
// which a container-embedded index never is (spec.md §4.5: sync and
// atomic_write are never called against a read-only directory in
// practice, so they fail loudly rather than silently no-op).
var ErrUnsupported = errors.New("ftep/vfsdir: operation unsupported on read-only directory")
