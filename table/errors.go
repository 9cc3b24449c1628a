package table

import "errors"

// ErrMissingEmbed is returned when a table file carries no embedded index:
// the fixed IndexOffsetKey footer entry is absent, unparseable, or points
// past the end of the file (spec.md §7, kind MissingEmbedError).
var ErrMissingEmbed = errors.New("ftep/table: no embedded index in this file")

// ErrRowWrite wraps a failure writing a row through the underlying
// columnar writer.
var ErrRowWrite = errors.New("ftep/table: row write failed")
