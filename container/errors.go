package container

import "errors"

// ErrInvalidMagic is returned when a byte stream does not begin with the
// container's magic sequence.
var ErrInvalidMagic = errors.New("ftep/container: invalid magic bytes")

// ErrUnsupportedVersion is returned when the container header declares a
// format version this build does not know how to decode.
var ErrUnsupportedVersion = errors.New("ftep/container: unsupported version")

// ErrChecksumMismatch is returned when the CRC32 recorded in the header does
// not match the checksum computed over the decoded metadata table.
var ErrChecksumMismatch = errors.New("ftep/container: metadata table crc32 mismatch")

// ErrShortRead is returned when a length field in the header promises more
// bytes than remain in the underlying stream.
var ErrShortRead = errors.New("ftep/container: short read")

// ErrPathTooLong is returned by the encoder when a logical file's path
// exceeds the 255-byte field width reserved for it in the metadata entry.
var ErrPathTooLong = errors.New("ftep/container: path exceeds 255 bytes")

// ErrTooManyFiles is returned by the encoder when a manifest has more
// entries than the 32-bit file_count field can represent.
var ErrTooManyFiles = errors.New("ftep/container: file count exceeds uint32 range")
