package container

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	entries := []FileMetadata{
		{DataOffset: 0, DataContentLen: 11, DataFooterLen: 0, Path: MetaFileName},
		{DataOffset: 11, DataContentLen: 20, DataFooterLen: 5, Path: "postings.bin"},
		{DataOffset: 36, DataContentLen: 8, DataFooterLen: 5, Path: "store.bin"},
	}
	data := make([]byte, 11+20+5+8+5)
	for i := range data {
		data[i] = byte(i)
	}

	h := Header{Entries: entries}
	encoded, err := Encode(h, data)
	require.NoError(t, err)

	decoded, err := Decode(bytes.NewReader(encoded))
	require.NoError(t, err)

	require.Equal(t, Version, decoded.Header.Version)
	require.Equal(t, uint32(len(entries)), decoded.Header.FileCount)
	require.Equal(t, uint64(len(data)), decoded.Header.TotalDataBlockSize)
	require.Equal(t, entries, decoded.Header.Entries)
	require.Equal(t, data, decoded.DataBlock)
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	h := Header{Entries: []FileMetadata{{Path: MetaFileName}}}
	encoded, err := Encode(h, []byte("x"))
	require.NoError(t, err)

	encoded[0] = 'X'
	_, err = Decode(bytes.NewReader(encoded))
	require.ErrorIs(t, err, ErrInvalidMagic)
}

func TestDecodeRejectsUnsupportedVersion(t *testing.T) {
	h := Header{Entries: []FileMetadata{{Path: MetaFileName}}}
	encoded, err := Encode(h, []byte("x"))
	require.NoError(t, err)

	encoded[4] = 2
	_, err = Decode(bytes.NewReader(encoded))
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestDecodeRejectsCorruptMetadataTable(t *testing.T) {
	h := Header{Entries: []FileMetadata{
		{DataOffset: 0, DataContentLen: 1, Path: MetaFileName},
		{DataOffset: 1, DataContentLen: 1, DataFooterLen: 1, Path: "segment.bin"},
	}}
	encoded, err := Encode(h, []byte{0xAA, 0xBB, 0xCC})
	require.NoError(t, err)

	// Flip one byte inside the metadata table (two bytes past the fixed preamble).
	encoded[headerPreambleSize+2] ^= 0xFF

	_, err = Decode(bytes.NewReader(encoded))
	require.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestDecodeRejectsShortData(t *testing.T) {
	h := Header{Entries: []FileMetadata{{Path: MetaFileName, DataContentLen: 10}}}
	encoded, err := Encode(h, make([]byte, 10))
	require.NoError(t, err)

	truncated := encoded[:len(encoded)-3]
	_, err = Decode(bytes.NewReader(truncated))
	require.ErrorIs(t, err, ErrShortRead)
}

func TestMetadataEntryRejectsLongPath(t *testing.T) {
	longPath := bytes.Repeat([]byte{'a'}, 256)
	h := Header{Entries: []FileMetadata{{Path: string(longPath)}}}
	_, err := Encode(h, nil)
	require.ErrorIs(t, err, ErrPathTooLong)
}
