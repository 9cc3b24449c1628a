package container

import (
	"encoding/binary"
	"fmt"
	"io"
)

// MetaFileName is the fixed logical name of the meta descriptor. It is the
// only logical file whose data_footer_len is always zero.
const MetaFileName = "meta.json"

// FileMetadata is one entry in the container's metadata table, describing
// the byte range of a single logical file within the data block.
type FileMetadata struct {
	// DataOffset is the byte offset within the data block where this
	// file's contents begin.
	DataOffset uint64
	// DataContentLen is the logical content length, as reported by the
	// search library's directory listing (footer excluded).
	DataContentLen uint64
	// DataFooterLen is the length of the reconstructed footer appended
	// after the content in the data block. Zero for the meta descriptor.
	DataFooterLen uint8
	// Path is the logical file name relative to the index root.
	Path string
}

const entryFixedWidth = 8 + 8 + 1 + 1 // data_offset + data_content_len + data_footer_len + path_len

func (m *FileMetadata) marshal() ([]byte, error) {
	if len(m.Path) > 255 {
		return nil, fmt.Errorf("%w: %q is %d bytes", ErrPathTooLong, m.Path, len(m.Path))
	}
	buf := make([]byte, entryFixedWidth+len(m.Path))
	binary.LittleEndian.PutUint64(buf[0:8], m.DataOffset)
	binary.LittleEndian.PutUint64(buf[8:16], m.DataContentLen)
	buf[16] = m.DataFooterLen
	buf[17] = byte(len(m.Path))
	copy(buf[entryFixedWidth:], m.Path)
	return buf, nil
}

// unmarshalEntry reads one FileMetadata from r, consuming exactly its fixed
// fields and path bytes.
func unmarshalEntry(r io.Reader) (FileMetadata, error) {
	var fixed [entryFixedWidth]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		return FileMetadata{}, fmt.Errorf("%w: reading entry header: %v", ErrShortRead, err)
	}
	m := FileMetadata{
		DataOffset:     binary.LittleEndian.Uint64(fixed[0:8]),
		DataContentLen: binary.LittleEndian.Uint64(fixed[8:16]),
		DataFooterLen:  fixed[16],
	}
	pathLen := fixed[17]
	path := make([]byte, pathLen)
	if _, err := io.ReadFull(r, path); err != nil {
		return FileMetadata{}, fmt.Errorf("%w: reading entry path: %v", ErrShortRead, err)
	}
	m.Path = string(path)
	return m, nil
}

// IsMeta reports whether this entry describes the meta descriptor.
func (m *FileMetadata) IsMeta() bool {
	return m.Path == MetaFileName
}
