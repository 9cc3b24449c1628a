package querybridge

import "errors"

// ErrUnsupportedPredicate is returned when Scan is given anything other
// than the one predicate shape this bridge understands: a single,
// non-negated LIKE filter on the title column whose pattern is a literal
// phrase wrapped in leading and trailing '%' wildcards (spec.md §5, kind
// PushdownError).
var ErrUnsupportedPredicate = errors.New("ftep/querybridge: unsupported predicate")
