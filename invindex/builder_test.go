package invindex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func seedDocs() []Document {
	body1 := "the dairy cow chewed grass all afternoon"
	body2 := "urban farming brings the cow closer to the city"
	return []Document{
		{ID: 1, Title: "dairy cow nutrition basics", Body: &body1},
		{ID: 2, Title: "urban farming trends", Body: &body2},
		{ID: 3, Title: "general livestock care", Body: nil},
	}
}

func buildTestIndex(t *testing.T) *Index {
	t.Helper()
	b := NewBuilder()
	for _, d := range seedDocs() {
		require.NoError(t, b.AddDocument(d))
	}
	dir, err := b.Commit()
	require.NoError(t, err)

	ix, err := Open(dir, DocSchema())
	require.NoError(t, err)
	return ix
}

func TestCommitAndOpenRoundTrip(t *testing.T) {
	ix := buildTestIndex(t)
	require.EqualValues(t, 3, ix.NumDocs())
}

func TestPhraseSearchMatchesAdjacentTerms(t *testing.T) {
	ix := buildTestIndex(t)

	addrs, err := ix.Search(PhraseQuery{Field: "title", Terms: []string{"dairy", "cow"}})
	require.NoError(t, err)
	require.Len(t, addrs, 1)

	id, err := ix.ResolveID(addrs[0])
	require.NoError(t, err)
	require.EqualValues(t, 1, id)
}

func TestPhraseSearchRequiresOrder(t *testing.T) {
	ix := buildTestIndex(t)

	addrs, err := ix.Search(PhraseQuery{Field: "title", Terms: []string{"cow", "dairy"}})
	require.NoError(t, err)
	require.Empty(t, addrs)
}

func TestPhraseSearchAcrossBodyField(t *testing.T) {
	ix := buildTestIndex(t)

	addrs, err := ix.Search(PhraseQuery{Field: "body", Terms: []string{"urban", "farming"}})
	require.NoError(t, err)
	require.Len(t, addrs, 1)

	id, err := ix.ResolveID(addrs[0])
	require.NoError(t, err)
	require.EqualValues(t, 2, id)
}

func TestPhraseSearchUnknownTermMatchesNothing(t *testing.T) {
	ix := buildTestIndex(t)

	addrs, err := ix.Search(PhraseQuery{Field: "title", Terms: []string{"spaceship"}})
	require.NoError(t, err)
	require.Empty(t, addrs)
}

func TestPhraseSearchRejectsUnknownField(t *testing.T) {
	ix := buildTestIndex(t)

	_, err := ix.Search(PhraseQuery{Field: "nope", Terms: []string{"dairy"}})
	require.ErrorIs(t, err, ErrSchemaFieldMissing)
}

func TestOpenRejectsMissingSegment(t *testing.T) {
	dir := NewMemDirectory()
	_, err := Open(dir, DocSchema())
	require.Error(t, err)
}
