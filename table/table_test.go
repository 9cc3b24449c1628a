package table

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rpcpool/ftep/invindex"
)

func bodyPtr(s string) *string { return &s }

func TestWriteThenOpenRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	rows := []Row{
		{ID: 1, Title: "dairy cow nutrition basics", Body: bodyPtr("the dairy cow chewed grass all afternoon")},
		{ID: 2, Title: "urban farming trends", Body: bodyPtr("urban farming brings the cow closer to the city")},
		{ID: 3, Title: "general livestock care", Body: nil},
	}
	for _, r := range rows {
		require.NoError(t, w.WriteRow(r))
	}
	require.NoError(t, w.Close())

	data := buf.Bytes()
	r, err := Open(bytes.NewReader(data), int64(len(data)), invindex.DocSchema())
	require.NoError(t, err)
	require.EqualValues(t, len(rows), r.NumRows())
	require.EqualValues(t, len(rows), r.Index.NumDocs())

	addrs, err := r.Index.Search(invindex.PhraseQuery{Field: "title", Terms: []string{"dairy", "cow"}})
	require.NoError(t, err)
	require.Len(t, addrs, 1)

	id, err := r.Index.ResolveID(addrs[0])
	require.NoError(t, err)
	require.EqualValues(t, 1, id)
}

func TestOpenRejectsMissingEmbed(t *testing.T) {
	var buf bytes.Buffer
	pw := NewWriter(&buf)
	// Bypass Writer.Close to produce a table file with no embedded index:
	// write the columnar body directly without appending a container or
	// setting the footer key.
	require.NoError(t, pw.WriteRow(Row{ID: 1, Title: "no index here"}))
	require.NoError(t, pw.pw.Flush())
	require.NoError(t, pw.pw.Close())

	data := buf.Bytes()
	_, err := Open(bytes.NewReader(data), int64(len(data)), invindex.DocSchema())
	require.ErrorIs(t, err, ErrMissingEmbed)
}
