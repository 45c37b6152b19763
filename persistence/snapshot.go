package persistence

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hupe1980/hypergo/codec"
)

// byteOrder is the endianness of every fixed-size header field.
var byteOrder = binary.LittleEndian

// Save writes v as a snapshot to w: a header naming the codec and the
// compression, followed by the checksummed payload. A nil codec falls back
// to codec.Default; an empty compression falls back to CompressionNone.
func Save(w io.Writer, v any, c codec.Codec, comp Compression) error {
	if c == nil {
		c = codec.Default
	}

	if comp == "" {
		comp = CompressionNone
	}

	if !comp.Valid() {
		return fmt.Errorf("persistence: unsupported compression %q", comp)
	}

	raw, err := c.Marshal(v)
	if err != nil {
		return fmt.Errorf("persistence: marshal snapshot: %w", err)
	}

	payload, err := compress(comp, raw)
	if err != nil {
		return err
	}

	header := FileHeader{Magic: MagicNumber, Version: Version}
	if err := binary.Write(w, byteOrder, header); err != nil {
		return fmt.Errorf("persistence: write header: %w", err)
	}

	if err := writeName(w, c.Name()); err != nil {
		return err
	}

	if err := writeName(w, string(comp)); err != nil {
		return err
	}

	if err := binary.Write(w, byteOrder, uint64(len(payload))); err != nil {
		return fmt.Errorf("persistence: write payload length: %w", err)
	}

	if err := binary.Write(w, byteOrder, CalculateChecksum(payload)); err != nil {
		return fmt.Errorf("persistence: write checksum: %w", err)
	}

	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("persistence: write payload: %w", err)
	}

	return nil
}

// Load reads a snapshot from r into v. The codec and the compression are
// taken from the header; the payload checksum is verified before decoding.
func Load(r io.Reader, v any) error {
	var header FileHeader
	if err := binary.Read(r, byteOrder, &header); err != nil {
		return fmt.Errorf("persistence: read header: %w", err)
	}

	if header.Magic != MagicNumber {
		return ErrInvalidMagic
	}

	if header.Version != Version {
		return ErrInvalidVersion
	}

	codecName, err := readName(r)
	if err != nil {
		return err
	}

	compName, err := readName(r)
	if err != nil {
		return err
	}

	comp := Compression(compName)
	if !comp.Valid() {
		return fmt.Errorf("%w: unknown compression %q", ErrCorruptHeader, compName)
	}

	c, ok := codec.ByName(codecName)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCodec, codecName)
	}

	var payloadLen uint64
	if err := binary.Read(r, byteOrder, &payloadLen); err != nil {
		return fmt.Errorf("persistence: read payload length: %w", err)
	}

	if payloadLen > maxPayloadLen {
		return fmt.Errorf("%w: payload length %d", ErrCorruptHeader, payloadLen)
	}

	var expected uint32
	if err := binary.Read(r, byteOrder, &expected); err != nil {
		return fmt.Errorf("persistence: read checksum: %w", err)
	}

	payload := make([]byte, payloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return fmt.Errorf("persistence: read payload: %w", err)
	}

	if actual := CalculateChecksum(payload); actual != expected {
		return &ChecksumMismatchError{Expected: expected, Actual: actual}
	}

	raw, err := decompress(comp, payload)
	if err != nil {
		return err
	}

	if err := c.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("persistence: unmarshal snapshot: %w", err)
	}

	return nil
}

func writeName(w io.Writer, name string) error {
	if len(name) > maxNameLen {
		return fmt.Errorf("persistence: name %q too long", name)
	}

	if err := binary.Write(w, byteOrder, uint8(len(name))); err != nil {
		return fmt.Errorf("persistence: write name length: %w", err)
	}

	if _, err := io.WriteString(w, name); err != nil {
		return fmt.Errorf("persistence: write name: %w", err)
	}

	return nil
}

func readName(r io.Reader) (string, error) {
	var n uint8
	if err := binary.Read(r, byteOrder, &n); err != nil {
		return "", fmt.Errorf("persistence: read name length: %w", err)
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("persistence: read name: %w", err)
	}

	return string(buf), nil
}
