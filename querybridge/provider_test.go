package querybridge

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rpcpool/ftep/invindex"
	"github.com/rpcpool/ftep/table"
)

func bodyPtr(s string) *string { return &s }

func openTestReader(t *testing.T) *table.Reader {
	t.Helper()
	var buf bytes.Buffer
	w := table.NewWriter(&buf)

	rows := []table.Row{
		{ID: 1, Title: "dairy cow nutrition basics", Body: bodyPtr("the dairy cow chewed grass all afternoon")},
		{ID: 2, Title: "urban farming trends", Body: bodyPtr("urban farming brings the cow closer to the city")},
		{ID: 3, Title: "general livestock care", Body: nil},
	}
	for _, r := range rows {
		require.NoError(t, w.WriteRow(r))
	}
	require.NoError(t, w.Close())

	data := buf.Bytes()
	r, err := table.Open(bytes.NewReader(data), int64(len(data)), invindex.DocSchema())
	require.NoError(t, err)
	return r
}

func TestScanReturnsMatchingRows(t *testing.T) {
	r := openTestReader(t)
	p := NewProvider(r)

	plan, err := p.Scan([]Filter{{Column: "title", Op: OpLike, Pattern: "%dairy cow%"}})
	require.NoError(t, err)
	require.False(t, plan.Empty)
	require.Contains(t, plan.IDs, uint64(1))

	rows, err := p.Execute(plan)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.EqualValues(t, 1, rows[0].ID)
}

func TestScanReturnsEmptyPlanForNoMatches(t *testing.T) {
	r := openTestReader(t)
	p := NewProvider(r)

	plan, err := p.Scan([]Filter{{Column: "title", Op: OpLike, Pattern: "%spaceship launch%"}})
	require.NoError(t, err)
	require.True(t, plan.Empty)

	rows, err := p.Execute(plan)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestScanRejectsUnsupportedPredicates(t *testing.T) {
	r := openTestReader(t)
	p := NewProvider(r)

	_, err := p.Scan([]Filter{
		{Column: "title", Op: OpLike, Pattern: "%dairy%"},
		{Column: "title", Op: OpLike, Pattern: "%cow%"},
	})
	require.ErrorIs(t, err, ErrUnsupportedPredicate)

	_, err = p.Scan([]Filter{{Column: "body", Op: OpLike, Pattern: "%dairy%"}})
	require.ErrorIs(t, err, ErrUnsupportedPredicate)

	_, err = p.Scan([]Filter{{Column: "title", Op: OpLike, Pattern: "%dairy%", Negated: true}})
	require.ErrorIs(t, err, ErrUnsupportedPredicate)

	_, err = p.Scan([]Filter{{Column: "title", Op: OpLike, Pattern: "dairy%"}})
	require.ErrorIs(t, err, ErrUnsupportedPredicate)
}
