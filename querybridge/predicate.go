package querybridge

import (
	"fmt"
	"strings"
)

// extractPhrase recognizes exactly the predicate shape this bridge
// pushes down: a single filter, on column, that is a non-negated LIKE
// whose pattern is "%<phrase>%" with a non-empty phrase between the
// sentinels. Anything else — more than one filter, a different column, a
// negated filter, a pattern missing either wildcard sentinel, or an empty
// phrase — is rejected with ErrUnsupportedPredicate (spec.md §5).
func extractPhrase(filters []Filter, column string) (string, error) {
	if len(filters) != 1 {
		return "", fmt.Errorf("%w: expected exactly one filter, got %d", ErrUnsupportedPredicate, len(filters))
	}
	f := filters[0]
	if f.Column != column {
		return "", fmt.Errorf("%w: filter is on column %q, not %q", ErrUnsupportedPredicate, f.Column, column)
	}
	if f.Op != OpLike {
		return "", fmt.Errorf("%w: filter is not a LIKE predicate", ErrUnsupportedPredicate)
	}
	if f.Negated {
		return "", fmt.Errorf("%w: negated filters are not supported", ErrUnsupportedPredicate)
	}
	if !strings.HasPrefix(f.Pattern, "%") || !strings.HasSuffix(f.Pattern, "%") || len(f.Pattern) < 3 {
		return "", fmt.Errorf("%w: pattern %q is not a %%phrase%% wildcard match", ErrUnsupportedPredicate, f.Pattern)
	}
	phrase := f.Pattern[1 : len(f.Pattern)-1]
	if strings.TrimSpace(phrase) == "" {
		return "", fmt.Errorf("%w: empty phrase", ErrUnsupportedPredicate)
	}
	return phrase, nil
}
