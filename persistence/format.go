package persistence

import "errors"

const (
	// MagicNumber identifies hypergraph snapshot files (ASCII: "HYP1").
	MagicNumber = 0x48595031
	// Version is the current file format version (v1.0.0).
	Version = 0x00010000

	// maxNameLen bounds the codec and compression names in the header.
	maxNameLen = 255
	// maxPayloadLen bounds the snapshot payload (1 GiB). A header claiming
	// more than this is corrupt.
	maxPayloadLen = 1 << 30
)

var (
	// ErrInvalidMagic is returned when a file does not start with the
	// snapshot magic number.
	ErrInvalidMagic = errors.New("invalid magic number")

	// ErrInvalidVersion is returned when a file uses an unsupported format
	// version.
	ErrInvalidVersion = errors.New("unsupported version")

	// ErrUnknownCodec is returned when the codec named in the header is not
	// registered.
	ErrUnknownCodec = errors.New("unknown codec")

	// ErrCorruptHeader is returned when header fields are out of range.
	ErrCorruptHeader = errors.New("corrupt snapshot header")
)

// FileHeader is the fixed-size part of the snapshot header. The
// variable-length codec and compression names follow it, then the payload
// length, the payload checksum and the payload itself.
type FileHeader struct {
	Magic   uint32
	Version uint32
}
