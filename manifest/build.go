// Package manifest plans the container's metadata table and data block
// from a sealed invindex.Directory. Building happens in two passes, the
// same draft-then-backfill shape the table file writer itself uses when
// it streams row groups before it knows their final offsets: first a
// draft pass records each logical file's path and content length, then a
// backfill pass walks the files in order, synthesizes a footer for every
// non-meta file, and fills in the offset and footer length the draft left
// blank.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"hash/crc32"

	"github.com/rpcpool/ftep/container"
	"github.com/rpcpool/ftep/invindex"
)

// draftEntry is the first pass's output: everything about a logical file
// that can be known before any bytes are placed in the data block.
type draftEntry struct {
	path    string
	content []byte
	isMeta  bool
}

// footerPayload is the JSON body of the reconstructed footer appended
// after every non-meta file's content, carrying the format version tuple
// plus a checksum over the content it trails. The external search library
// strips an identically shaped footer when it reports a logical file's
// size, so Build must reproduce it byte-for-byte for the round trip back
// through vfsdir to work.
type footerPayload struct {
	Version invindex.FormatVersion `json:"version"`
	CRC32   uint32                 `json:"crc32"`
}

// draft walks dir in meta-first order and reads every managed file fully
// into memory; sealed indexes built by invindex.Builder are small enough
// that streaming isn't worth the complexity.
func draft(dir invindex.Directory) ([]draftEntry, error) {
	paths := invindex.ManagedFilesSorted(dir)
	if len(paths) == 0 {
		return nil, ErrEmptyDirectory
	}

	entries := make([]draftEntry, 0, len(paths))
	for _, path := range paths {
		content, err := dir.AtomicRead(path)
		if err != nil {
			return nil, fmt.Errorf("ftep/manifest: reading %q: %w", path, err)
		}
		entries = append(entries, draftEntry{
			path:    path,
			content: content,
			isMeta:  path == invindex.MetaFileName,
		})
	}
	return entries, nil
}

// encodeFooter synthesizes the reconstructed footer for one file's
// content: a CRC32 of the content, the current format version, and the
// trailing length-prefixed magic the real footer format uses.
func encodeFooter(content []byte) ([]byte, error) {
	payload := footerPayload{
		Version: invindex.CurrentFormatVersion,
		CRC32:   crc32.ChecksumIEEE(content),
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("ftep/manifest: encoding footer payload: %w", err)
	}

	var out bytes.Buffer
	out.Write(payloadJSON)
	var lenBuf [4]byte
	putLE32(lenBuf[:], uint32(len(payloadJSON)))
	out.Write(lenBuf[:])
	var magicBuf [4]byte
	putLE32(magicBuf[:], container.FooterMagic)
	out.Write(magicBuf[:])
	return out.Bytes(), nil
}

func putLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

// Build plans and assembles a full container.Header and data block from
// dir: the draft pass above, followed by a backfill pass that places each
// file's content (plus, for non-meta files, its reconstructed footer) into
// the data block and records the resulting offset and footer length.
func Build(dir invindex.Directory) (container.Header, []byte, error) {
	drafts, err := draft(dir)
	if err != nil {
		return container.Header{}, nil, err
	}

	var data bytes.Buffer
	entries := make([]container.FileMetadata, 0, len(drafts))
	for _, d := range drafts {
		offset := uint64(data.Len())
		data.Write(d.content)

		var footerLen uint8
		if !d.isMeta {
			footer, err := encodeFooter(d.content)
			if err != nil {
				return container.Header{}, nil, err
			}
			if len(footer) > 255 {
				return container.Header{}, nil, fmt.Errorf("ftep/manifest: reconstructed footer for %q exceeds 255 bytes", d.path)
			}
			data.Write(footer)
			footerLen = uint8(len(footer))
		}

		entries = append(entries, container.FileMetadata{
			DataOffset:     offset,
			DataContentLen: uint64(len(d.content)),
			DataFooterLen:  footerLen,
			Path:           d.path,
		})
	}

	header := container.Header{Entries: entries}
	return header, data.Bytes(), nil
}

// Encode plans dir and serializes the result as the container's bytes,
// the single call table.Writer needs to embed an index.
func Encode(dir invindex.Directory) ([]byte, error) {
	header, data, err := Build(dir)
	if err != nil {
		return nil, err
	}
	return container.Encode(header, data)
}
