package manifest

import (
	"bytes"
	"encoding/json"
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rpcpool/ftep/container"
	"github.com/rpcpool/ftep/invindex"
)

func buildTestDirectory(t *testing.T) invindex.Directory {
	t.Helper()
	b := invindex.NewBuilder()
	body := "the dairy cow chewed grass"
	require.NoError(t, b.AddDocument(invindex.Document{ID: 1, Title: "dairy cow nutrition", Body: &body}))
	dir, err := b.Commit()
	require.NoError(t, err)
	return dir
}

func TestBuildOrdersMetaFirst(t *testing.T) {
	dir := buildTestDirectory(t)

	header, data, err := Build(dir)
	require.NoError(t, err)
	require.NotEmpty(t, header.Entries)
	require.Equal(t, invindex.MetaFileName, header.Entries[0].Path)
	require.Zero(t, header.Entries[0].DataFooterLen)
	require.NotEmpty(t, data)
}

func TestBuildSynthesizesFooterForNonMetaFiles(t *testing.T) {
	dir := buildTestDirectory(t)

	header, data, err := Build(dir)
	require.NoError(t, err)

	for _, entry := range header.Entries {
		if entry.Path == invindex.MetaFileName {
			continue
		}
		require.NotZero(t, entry.DataFooterLen, "entry %q should carry a reconstructed footer", entry.Path)

		content := data[entry.DataOffset : entry.DataOffset+entry.DataContentLen]
		footer := data[entry.DataOffset+entry.DataContentLen : entry.DataOffset+entry.DataContentLen+uint64(entry.DataFooterLen)]

		magic := le32(footer[len(footer)-4:])
		require.Equal(t, container.FooterMagic, magic)

		payloadLen := le32(footer[len(footer)-8 : len(footer)-4])
		var payload footerPayload
		require.NoError(t, json.Unmarshal(footer[:payloadLen], &payload))
		require.Equal(t, crc32.ChecksumIEEE(content), payload.CRC32)
		require.Equal(t, invindex.CurrentFormatVersion, payload.Version)
	}
}

func TestEncodeProducesDecodableContainer(t *testing.T) {
	dir := buildTestDirectory(t)

	encoded, err := Encode(dir)
	require.NoError(t, err)

	decoded, err := container.Decode(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Equal(t, uint32(len(decoded.Header.Entries)), decoded.Header.FileCount)
}

func TestBuildRejectsEmptyDirectory(t *testing.T) {
	_, _, err := Build(invindex.NewMemDirectory())
	require.ErrorIs(t, err, ErrEmptyDirectory)
}

func le32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
