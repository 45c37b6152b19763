package persistence

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects how a snapshot payload is compressed. The name is
// stored in the snapshot header, so files remain readable regardless of the
// compression configured at write time.
type Compression string

// Constants representing the supported compressions.
const (
	CompressionNone Compression = "none"
	CompressionZstd Compression = "zstd"
	CompressionLZ4  Compression = "lz4"
)

// Valid reports whether the compression is one of the supported values.
func (c Compression) Valid() bool {
	switch c {
	case CompressionNone, CompressionZstd, CompressionLZ4:
		return true
	default:
		return false
	}
}

func compress(c Compression, data []byte) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil

	case CompressionZstd:
		var buf bytes.Buffer

		w, err := zstd.NewWriter(&buf)
		if err != nil {
			return nil, fmt.Errorf("persistence: zstd writer: %w", err)
		}

		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("persistence: zstd compress: %w", err)
		}

		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("persistence: zstd close: %w", err)
		}

		return buf.Bytes(), nil

	case CompressionLZ4:
		var buf bytes.Buffer

		w := lz4.NewWriter(&buf)

		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("persistence: lz4 compress: %w", err)
		}

		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("persistence: lz4 close: %w", err)
		}

		return buf.Bytes(), nil

	default:
		return nil, fmt.Errorf("persistence: unsupported compression %q", c)
	}
}

func decompress(c Compression, data []byte) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil

	case CompressionZstd:
		r, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("persistence: zstd reader: %w", err)
		}
		defer r.Close()

		out, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("persistence: zstd decompress: %w", err)
		}

		return out, nil

	case CompressionLZ4:
		out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, fmt.Errorf("persistence: lz4 decompress: %w", err)
		}

		return out, nil

	default:
		return nil, fmt.Errorf("persistence: unsupported compression %q", c)
	}
}
