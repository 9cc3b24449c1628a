package table

// Row is the fixed columnar schema this package writes and scans:
// {id: u64, title: text, body: text?} (spec.md §6). Body is a pointer so
// the columnar writer encodes it as an optional column, matching the
// inverted index's own optional "body" field.
type Row struct {
	ID    uint64  `parquet:"id"`
	Title string  `parquet:"title"`
	Body  *string `parquet:"body,optional"`
}
