// Package table writes and reads the table file: a columnar body produced
// by the external Parquet collaborator, immediately followed by the
// container this module embeds, with the container's starting offset
// recorded in the table's own key/value footer metadata (spec.md §4.8,
// §4.9).
package table

import (
	"fmt"
	"io"
	"strconv"

	logging "github.com/ipfs/go-log/v2"
	"github.com/parquet-go/parquet-go"

	"github.com/rpcpool/ftep/invindex"
	"github.com/rpcpool/ftep/manifest"
)

var log = logging.Logger("ftep/table")

// IndexOffsetKey is the fixed key/value footer entry Reader looks for to
// locate the embedded container (spec.md §4.8 step 4, §6 "Table footer
// key").
const IndexOffsetKey = "tantivy_index_offset"

// countingWriter tracks the number of bytes written so far so that Writer
// can record the embed offset and later append raw container bytes past
// whatever the columnar writer has already flushed.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// Writer accepts Row values, forwards them to the columnar writer, and
// mirrors every row into an invindex.Builder so that Close can seal and
// embed the resulting index without a second pass over the data.
type Writer struct {
	cw      *countingWriter
	pw      *parquet.GenericWriter[Row]
	builder *invindex.Builder
	closed  bool
}

// NewWriter wraps w, writing a Parquet file of Row values to it.
func NewWriter(w io.Writer) *Writer {
	cw := &countingWriter{w: w}
	pw := parquet.NewGenericWriter[Row](cw)
	return &Writer{cw: cw, pw: pw, builder: invindex.NewBuilder()}
}

// WriteRow appends r to the columnar body and stages it for indexing.
func (tw *Writer) WriteRow(r Row) error {
	if _, err := tw.pw.Write([]Row{r}); err != nil {
		return fmt.Errorf("%w: %v", ErrRowWrite, err)
	}
	return tw.builder.AddDocument(invindex.Document{ID: r.ID, Title: r.Title, Body: r.Body})
}

// Close flushes the buffered row group, records the current byte offset
// as the embed offset, builds and appends the container directly to the
// underlying writer (bypassing the columnar writer, which has already
// recorded its row groups' offsets and does not need to know about the
// bytes that follow), sets the fixed footer key to that offset, and
// finally closes the columnar writer so its footer — now trailing the
// embedded container — is the last thing written to the file.
func (tw *Writer) Close() error {
	if tw.closed {
		return nil
	}
	tw.closed = true

	if err := tw.pw.Flush(); err != nil {
		return fmt.Errorf("ftep/table: flushing row group: %w", err)
	}
	embedOffset := tw.cw.n

	dir, err := tw.builder.Commit()
	if err != nil {
		return fmt.Errorf("ftep/table: committing index: %w", err)
	}
	encoded, err := manifest.Encode(dir)
	if err != nil {
		return fmt.Errorf("ftep/table: encoding container: %w", err)
	}
	if _, err := tw.cw.Write(encoded); err != nil {
		return fmt.Errorf("ftep/table: appending container: %w", err)
	}

	tw.pw.SetKeyValueMetadata(IndexOffsetKey, strconv.FormatInt(embedOffset, 10))

	if err := tw.pw.Close(); err != nil {
		return fmt.Errorf("ftep/table: closing columnar writer: %w", err)
	}

	log.Infow("wrote table file", "embed_offset", embedOffset, "container_size", len(encoded))
	return nil
}
