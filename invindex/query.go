package invindex

import (
	"sort"
)

// PhraseQuery requires every term in Terms to occur in Field, in order,
// at consecutive positions (spec.md §5's "tokenized phrase query: adjacency
// and order required").
type PhraseQuery struct {
	Field string
	Terms []string
}

// Search runs q against the index and returns the addresses of every
// matching document, ascending by ordinal. An empty Terms list matches
// nothing, mirroring the external search library's treatment of an empty
// phrase as unsatisfiable rather than a wildcard.
func (ix *Index) Search(q PhraseQuery) ([]DocAddress, error) {
	if len(q.Terms) == 0 {
		return nil, nil
	}
	if _, err := ix.schema.Field(q.Field); err != nil {
		return nil, err
	}

	lists := make([][]posting, len(q.Terms))
	for i, term := range q.Terms {
		postings, ok := ix.postings.lookup(q.Field, term)
		if !ok {
			return nil, nil // a missing term makes the whole phrase unsatisfiable
		}
		lists[i] = postings
	}

	matches := intersectAndCheckAdjacency(lists)
	sort.Slice(matches, func(i, j int) bool { return matches[i] < matches[j] })
	return matches, nil
}

// intersectAndCheckAdjacency walks the first term's posting list and, for
// each of its documents, confirms every later term also occurs in that
// document with positions advancing by exactly one per term.
func intersectAndCheckAdjacency(lists [][]posting) []DocAddress {
	byDoc := make([]map[uint32]posting, len(lists))
	for i, list := range lists {
		m := make(map[uint32]posting, len(list))
		for _, p := range list {
			m[p.docOrdinal] = p
		}
		byDoc[i] = m
	}

	var out []DocAddress
	for _, first := range lists[0] {
		doc := first.docOrdinal
		for _, start := range first.positions {
			if phraseStartsAt(byDoc, doc, start) {
				out = append(out, DocAddress(doc))
				break
			}
		}
	}
	return out
}

func phraseStartsAt(byDoc []map[uint32]posting, doc uint32, start uint32) bool {
	for i := 1; i < len(byDoc); i++ {
		p, ok := byDoc[i][doc]
		if !ok {
			return false
		}
		want := start + uint32(i)
		found := false
		for _, pos := range p.positions {
			if pos == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
