// Package querybridge translates a restricted LIKE predicate on the
// title column into a phrase query against an embedded invindex.Index,
// then resolves the matching documents' ids into a pushdown predicate
// over the table's columnar rows (spec.md §5).
package querybridge

import (
	"io"

	logging "github.com/ipfs/go-log/v2"

	"github.com/rpcpool/ftep/invindex"
	"github.com/rpcpool/ftep/table"
)

var log = logging.Logger("ftep/querybridge")

// titleColumn is the one column this bridge ever pushes a predicate
// through; spec.md §5 fixes the query shape to the title field.
const titleColumn = "title"

// Provider answers Scan calls over a single open table.Reader, playing
// the role the external query planner's table-provider trait plays in
// the original system: advertise a schema, accept a filter set, and
// return a plan the caller executes.
type Provider struct {
	reader *table.Reader
}

// NewProvider wraps an already-open table.Reader.
func NewProvider(r *table.Reader) *Provider {
	return &Provider{reader: r}
}

// Schema returns the fixed row schema this provider scans.
func (p *Provider) Schema() invindex.Schema { return invindex.DocSchema() }

// Scan recognizes the single supported predicate shape, searches the
// embedded index, and returns either an Empty plan (no matches, so
// Execute never reads the columnar body) or a Plan carrying the set of
// matching row ids.
func (p *Provider) Scan(filters []Filter) (*Plan, error) {
	phrase, err := extractPhrase(filters, titleColumn)
	if err != nil {
		return nil, err
	}
	terms := invindex.AnalyzeTerms(phrase)

	addrs, err := p.reader.Index.Search(invindex.PhraseQuery{Field: titleColumn, Terms: terms})
	if err != nil {
		return nil, err
	}
	if len(addrs) == 0 {
		log.Debugw("phrase matched nothing, returning empty plan", "phrase", phrase)
		return &Plan{Empty: true}, nil
	}

	ids := make(map[uint64]struct{}, len(addrs))
	for _, addr := range addrs {
		id, err := p.reader.Index.ResolveID(addr)
		if err != nil {
			return nil, err
		}
		ids[id] = struct{}{}
	}

	log.Debugw("phrase query resolved to pushdown predicate", "phrase", phrase, "matched_ids", len(ids))
	return &Plan{IDs: ids}, nil
}

// Execute materializes plan against the columnar body: nothing is read
// for an Empty plan, otherwise every row is scanned and only those whose
// id is in the pushed-down set are returned. A real page-indexed executor
// would skip whole pages using min/max statistics; this reference
// implementation always scans but never does more I/O than the
// short-circuit case allows it to skip entirely.
func (p *Provider) Execute(plan *Plan) ([]table.Row, error) {
	if plan.Empty {
		return nil, nil
	}

	rows := p.reader.Rows()
	defer rows.Close()

	var out []table.Row
	buf := make([]table.Row, 128)
	for {
		n, err := rows.Read(buf)
		for i := 0; i < n; i++ {
			if _, ok := plan.IDs[buf[i].ID]; ok {
				out = append(out, buf[i])
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
