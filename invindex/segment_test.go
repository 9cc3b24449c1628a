package invindex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPostingsEncodeDecodeRoundTrip(t *testing.T) {
	fields := []fieldPostings{
		{name: "title", terms: []termPostings{
			{term: "dairy", postings: []posting{{docOrdinal: 0, positions: []uint32{1}}}},
			{term: "cow", postings: []posting{
				{docOrdinal: 0, positions: []uint32{2}},
				{docOrdinal: 2, positions: []uint32{5, 9}},
			}},
		}},
	}
	for fi := range fields {
		for ti := range fields[fi].terms {
			fields[fi].terms[ti].hash = termHash(fields[fi].terms[ti].term)
		}
	}
	sortFieldPostings(fields)

	encoded, err := encodePostings(fields)
	require.NoError(t, err)

	decoded, err := decodePostings(encoded)
	require.NoError(t, err)

	postings, ok := decoded.lookup("title", "cow")
	require.True(t, ok)
	require.Len(t, postings, 2)
	require.Equal(t, uint32(0), postings[0].docOrdinal)
	require.Equal(t, []uint32{2}, postings[0].positions)
	require.Equal(t, uint32(2), postings[1].docOrdinal)
	require.Equal(t, []uint32{5, 9}, postings[1].positions)

	_, ok = decoded.lookup("title", "missing")
	require.False(t, ok)
	_, ok = decoded.lookup("body", "cow")
	require.False(t, ok)
}

func TestStoreEncodeDecodeRoundTrip(t *testing.T) {
	ids := []uint64{7, 42, 1009}
	encoded := encodeStore(ids)

	decoded, err := decodeStore(encoded)
	require.NoError(t, err)
	require.Equal(t, ids, decoded)
}
