package persistence

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hypergo/codec"
)

type snapshotPayload struct {
	NextID int      `json:"next_id"`
	Labels []string `json:"labels"`
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	in := snapshotPayload{NextID: 5, Labels: []string{"zero", "one", "two"}}

	for _, comp := range []Compression{CompressionNone, CompressionZstd, CompressionLZ4} {
		t.Run(string(comp), func(t *testing.T) {
			var buf bytes.Buffer

			require.NoError(t, Save(&buf, in, codec.Default, comp))

			var out snapshotPayload
			require.NoError(t, Load(&buf, &out))
			require.Equal(t, in, out)
		})
	}
}

func TestLoad_SelfDescribing(t *testing.T) {
	// Written with the stdlib codec, loaded without naming it.
	in := snapshotPayload{NextID: 1}

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, in, codec.JSON{}, CompressionZstd))

	var out snapshotPayload
	require.NoError(t, Load(&buf, &out))
	require.Equal(t, in, out)
}

func TestLoad_RejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, snapshotPayload{}, nil, CompressionNone))

	data := buf.Bytes()
	data[0] ^= 0xff

	var out snapshotPayload
	require.ErrorIs(t, Load(bytes.NewReader(data), &out), ErrInvalidMagic)
}

func TestLoad_DetectsCorruption(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, snapshotPayload{NextID: 9}, nil, CompressionNone))

	data := buf.Bytes()
	data[len(data)-1] ^= 0xff

	var out snapshotPayload
	err := Load(bytes.NewReader(data), &out)
	require.True(t, IsChecksumMismatch(err), "expected checksum mismatch, got %v", err)
}

func TestLoad_TruncatedPayload(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, snapshotPayload{NextID: 9}, nil, CompressionLZ4))

	data := buf.Bytes()

	var out snapshotPayload
	require.Error(t, Load(bytes.NewReader(data[:len(data)-4]), &out))
}

func TestSave_RejectsUnknownCompression(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, Save(&buf, snapshotPayload{}, nil, Compression("brotli")))
}
