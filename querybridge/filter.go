package querybridge

// FilterOp names a comparison a Filter applies to one column.
type FilterOp uint8

const (
	// OpLike matches a column against a SQL-style LIKE pattern.
	OpLike FilterOp = iota
)

// Filter is one predicate clause from a query plan's WHERE-equivalent,
// the minimal shape a caller translates its own filter representation
// into before calling Provider.Scan.
type Filter struct {
	Column  string
	Op      FilterOp
	Pattern string
	Negated bool
}
