// Package container implements the self-describing binary container that
// holds an embedded full-text index: a checksummed metadata table
// describing a set of logical files, followed by the concatenated bytes of
// those files (the data block). See manifest.Build for how the metadata
// table and data block are assembled, and vfsdir for how they are served
// back to the search library as a read-only directory.
package container

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"

	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("ftep/container")

// Magic is the first four bytes of every container.
var Magic = [4]byte{'F', 'T', 'E', 'P'}

// Version is the only format version this build emits and accepts.
const Version = uint8(1)

// FooterMagic is the little-endian magic trailing the reconstructed footer
// synthesized for each non-meta logical file (see manifest.Build).
const FooterMagic = uint32(1337)

// Header is the fixed-layout preamble of a container: everything up to, but
// not including, the data block.
type Header struct {
	Version            uint8
	FileCount          uint32
	TotalDataBlockSize uint64
	MetadataTableSize  uint32
	MetadataTableCRC32 uint32
	Entries            []FileMetadata
}

// Container is a fully decoded container: the header plus the data block it
// describes.
type Container struct {
	Header    Header
	DataBlock []byte
}

// Encode serializes the header's fixed fields followed by the marshaled
// metadata table, then appends data. Only h.Entries is read from h: the
// version, file count, data block size, metadata table size and CRC32 are
// computed here from h.Entries and data. The returned bytes are exactly
// what gets appended to the table file (see table.Writer).
func Encode(h Header, data []byte) ([]byte, error) {
	if uint64(len(h.Entries)) > 0xFFFFFFFF {
		return nil, ErrTooManyFiles
	}

	var metaBuf bytes.Buffer
	for i := range h.Entries {
		b, err := h.Entries[i].marshal()
		if err != nil {
			return nil, fmt.Errorf("ftep/container: encoding entry %d: %w", i, err)
		}
		metaBuf.Write(b)
	}
	metaBytes := metaBuf.Bytes()
	crc := crc32.ChecksumIEEE(metaBytes)

	var out bytes.Buffer
	out.Grow(4 + 1 + 4 + 8 + 4 + 4 + len(metaBytes) + len(data))
	out.Write(Magic[:])
	out.WriteByte(Version)
	writeUint32(&out, uint32(len(h.Entries)))
	writeUint64(&out, uint64(len(data)))
	writeUint32(&out, uint32(len(metaBytes)))
	writeUint32(&out, crc)
	out.Write(metaBytes)
	out.Write(data)

	log.Debugw("encoded container",
		"files", len(h.Entries), "data_block_size", len(data), "metadata_size", len(metaBytes), "crc32", crc)

	return out.Bytes(), nil
}

func writeUint32(w *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.Write(b[:])
}

func writeUint64(w *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.Write(b[:])
}

// headerPreambleSize is the byte width of every fixed-size header field up
// to and including metadata_table_crc32, i.e. everything before the
// metadata table itself.
const headerPreambleSize = 4 + 1 + 4 + 8 + 4 + 4

// Decode reads a full container (header, metadata table, data block) from r.
// It validates the magic and version before any length-prefixed read, and
// the metadata table checksum before parsing entries or reading the data
// block.
func Decode(r io.Reader) (*Container, error) {
	var preamble [headerPreambleSize]byte
	if _, err := io.ReadFull(r, preamble[:]); err != nil {
		return nil, fmt.Errorf("%w: reading header preamble: %v", ErrShortRead, err)
	}

	if !bytes.Equal(preamble[0:4], Magic[:]) {
		return nil, ErrInvalidMagic
	}
	version := preamble[4]
	if version != Version {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrUnsupportedVersion, version, Version)
	}
	fileCount := binary.LittleEndian.Uint32(preamble[5:9])
	totalDataBlockSize := binary.LittleEndian.Uint64(preamble[9:17])
	metadataTableSize := binary.LittleEndian.Uint32(preamble[17:21])
	metadataCRC32 := binary.LittleEndian.Uint32(preamble[21:25])

	metaBytes := make([]byte, metadataTableSize)
	if _, err := io.ReadFull(r, metaBytes); err != nil {
		return nil, fmt.Errorf("%w: reading metadata table: %v", ErrShortRead, err)
	}

	if checksum := crc32.ChecksumIEEE(metaBytes); checksum != metadataCRC32 {
		return nil, fmt.Errorf("%w: got %08x, want %08x", ErrChecksumMismatch, checksum, metadataCRC32)
	}

	entries := make([]FileMetadata, 0, fileCount)
	metaReader := bytes.NewReader(metaBytes)
	for i := uint32(0); i < fileCount; i++ {
		entry, err := unmarshalEntry(metaReader)
		if err != nil {
			return nil, fmt.Errorf("ftep/container: decoding entry %d: %w", i, err)
		}
		entries = append(entries, entry)
	}

	data := make([]byte, totalDataBlockSize)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("%w: reading data block: %v", ErrShortRead, err)
	}

	log.Debugw("decoded container",
		"files", fileCount, "data_block_size", totalDataBlockSize, "crc32", metadataCRC32)

	return &Container{
		Header: Header{
			Version:            version,
			FileCount:          fileCount,
			TotalDataBlockSize: totalDataBlockSize,
			MetadataTableSize:  metadataTableSize,
			MetadataTableCRC32: metadataCRC32,
			Entries:            entries,
		},
		DataBlock: data,
	}, nil
}
