package vfsdir

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rpcpool/ftep/container"
	"github.com/rpcpool/ftep/invindex"
	"github.com/rpcpool/ftep/manifest"
)

func buildTestContainer(t *testing.T) *container.Container {
	t.Helper()
	b := invindex.NewBuilder()
	body := "the dairy cow chewed grass"
	require.NoError(t, b.AddDocument(invindex.Document{ID: 1, Title: "dairy cow nutrition", Body: &body}))
	dir, err := b.Commit()
	require.NoError(t, err)

	encoded, err := manifest.Encode(dir)
	require.NoError(t, err)

	decoded, err := container.Decode(bytes.NewReader(encoded))
	require.NoError(t, err)
	return decoded
}

func TestVirtualDirectoryServesManagedFiles(t *testing.T) {
	c := buildTestContainer(t)
	d := New(c)

	require.True(t, d.Exists(invindex.MetaFileName))
	require.True(t, d.Exists("postings.bin"))
	require.True(t, d.Exists("store.bin"))
	require.False(t, d.Exists("nonexistent"))

	require.ElementsMatch(t, []string{invindex.MetaFileName, "postings.bin", "store.bin"}, d.ManagedFiles())
}

func TestVirtualDirectoryOpenIntoIndex(t *testing.T) {
	c := buildTestContainer(t)
	d := New(c)

	ix, err := invindex.Open(d, invindex.DocSchema())
	require.NoError(t, err)
	require.EqualValues(t, 1, ix.NumDocs())

	addrs, err := ix.Search(invindex.PhraseQuery{Field: "title", Terms: []string{"dairy", "cow"}})
	require.NoError(t, err)
	require.Len(t, addrs, 1)
}

func TestVirtualDirectoryAcceptsLockPathWriteOnly(t *testing.T) {
	c := buildTestContainer(t)
	d := New(c)

	w, err := d.OpenWrite(invindex.LockFileName)
	require.NoError(t, err)
	n, err := w.Write([]byte("lock"))
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.NoError(t, w.Close())

	_, err = d.OpenWrite("postings.bin")
	require.ErrorIs(t, err, ErrWriteRejected)
}

func TestVirtualDirectoryUnsupportedOps(t *testing.T) {
	c := buildTestContainer(t)
	d := New(c)

	require.ErrorIs(t, d.Sync(), ErrUnsupported)
	require.ErrorIs(t, d.AtomicWrite("x", nil), ErrUnsupported)
	require.NoError(t, d.Delete("postings.bin"))
}
