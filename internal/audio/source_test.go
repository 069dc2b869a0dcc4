package audio

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestChunkBytes(t *testing.T) {
	require.Equal(t, 240_000, ChunkBytes(DefaultBitrate, DefaultChunkDuration))
	require.Equal(t, 4_000, ChunkBytes(32_000, time.Second))
	require.Equal(t, 16_000, ChunkBytes(64_000, 2*time.Second))
}

func TestReaderSourceChunking(t *testing.T) {
	data := make([]byte, 25)
	for i := range data {
		data[i] = byte(i)
	}
	source := NewReaderSource(io.NopCloser(bytes.NewReader(data)), 10)

	chunk, err := source.ReadChunk()
	require.NoError(t, err)
	require.Equal(t, data[:10], chunk)

	chunk, err = source.ReadChunk()
	require.NoError(t, err)
	require.Equal(t, data[10:20], chunk)

	// The stream ends mid-chunk. The tail is still delivered.
	chunk, err = source.ReadChunk()
	require.NoError(t, err)
	require.Equal(t, data[20:], chunk)

	_, err = source.ReadChunk()
	require.Error(t, err)
}

func TestReaderSourceEmptyStream(t *testing.T) {
	source := NewReaderSource(io.NopCloser(bytes.NewReader(nil)), 10)

	_, err := source.ReadChunk()
	require.Error(t, err)
}

type closeTrackingReader struct {
	io.Reader
	closed bool
}

func (r *closeTrackingReader) Close() error {
	r.closed = true
	return nil
}

func TestReaderSourceClose(t *testing.T) {
	reader := &closeTrackingReader{Reader: bytes.NewReader(nil)}
	source := NewReaderSource(reader, 10)

	require.NoError(t, source.Close())
	require.True(t, reader.closed)
}
