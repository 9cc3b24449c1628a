package table

import (
	"fmt"
	"io"
	"strconv"

	"github.com/parquet-go/parquet-go"

	"github.com/rpcpool/ftep/container"
	"github.com/rpcpool/ftep/invindex"
	"github.com/rpcpool/ftep/vfsdir"
)

// Reader opens a table file written by Writer: the columnar body plus the
// embedded index resolved through the fixed footer key (spec.md §4.9). A
// file without an embedded index cannot be opened as a Reader; Open
// returns ErrMissingEmbed for it.
type Reader struct {
	pf    *parquet.File
	Index *invindex.Index
}

// embedOffset locates and parses the fixed key/value footer entry
// recording where the container begins. Its absence, or an unparseable or
// out-of-range value, is always ErrMissingEmbed (spec.md §4.9 step, §7).
func embedOffset(pf *parquet.File, fileSize int64) (int64, error) {
	for _, kv := range pf.Metadata().KeyValueMetadata {
		if kv.Key != IndexOffsetKey {
			continue
		}
		offset, err := strconv.ParseInt(kv.Value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s value %q is not a decimal integer", ErrMissingEmbed, IndexOffsetKey, kv.Value)
		}
		if offset < 0 || offset > fileSize {
			return 0, fmt.Errorf("%w: offset %d exceeds file size %d", ErrMissingEmbed, offset, fileSize)
		}
		return offset, nil
	}
	return 0, fmt.Errorf("%w: %s key absent", ErrMissingEmbed, IndexOffsetKey)
}

// Open reads r's Parquet footer, recovers the embed offset, decodes the
// container at that offset, and opens the resulting virtual directory as
// an invindex.Index under schema.
func Open(r io.ReaderAt, size int64, schema invindex.Schema) (*Reader, error) {
	pf, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, fmt.Errorf("ftep/table: opening columnar file: %w", err)
	}

	offset, err := embedOffset(pf, size)
	if err != nil {
		return nil, err
	}

	section := io.NewSectionReader(r, offset, size-offset)
	c, err := container.Decode(section)
	if err != nil {
		return nil, fmt.Errorf("ftep/table: decoding container at offset %d: %w", offset, err)
	}

	dir := vfsdir.New(c)
	ix, err := invindex.Open(dir, schema)
	if err != nil {
		return nil, fmt.Errorf("ftep/table: opening embedded index: %w", err)
	}

	return &Reader{pf: pf, Index: ix}, nil
}

// NumRows reports the columnar row count.
func (tr *Reader) NumRows() int64 { return tr.pf.NumRows() }

// Rows returns a fresh row iterator over the full columnar body, ignoring
// any pushdown predicate; querybridge.Provider uses this as the backing
// scan beneath its own predicate filtering.
func (tr *Reader) Rows() *parquet.GenericReader[Row] {
	return parquet.NewGenericReader[Row](tr.pf)
}
