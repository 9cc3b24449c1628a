package invindex

import "errors"

// ErrSchemaFieldMissing signals a configuration error: a requested field is
// not present in the schema (spec.md §7, kind SchemaError).
var ErrSchemaFieldMissing = errors.New("ftep/invindex: schema field missing")

// ErrIndexBuild signals that the writer failed to commit; no partial index
// is ever returned to the caller (spec.md §7, kind IndexBuildError).
var ErrIndexBuild = errors.New("ftep/invindex: index build failed")

// ErrFileNotFound is returned by a Directory when a managed path does not
// exist.
var ErrFileNotFound = errors.New("ftep/invindex: file does not exist")

// ErrInvalidRange is returned by a FileHandle read whose offset falls
// outside the handle's bounds. A read that starts in bounds but runs past
// the end returns the bytes available and io.EOF instead.
var ErrInvalidRange = errors.New("ftep/invindex: read out of range")

// ErrReadOnlyWrite names the fatal programming error of writing a path
// other than the lock path on a read-only directory (spec.md §4.10). No
// Directory in this module returns it: vfsdir.Directory reports that case
// with its own vfsdir.ErrWriteRejected.
var ErrReadOnlyWrite = errors.New("ftep/invindex: write rejected by read-only directory")
