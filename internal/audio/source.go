package audio

import (
	"io"
	"os/exec"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// CaptureSource yields encoded audio one chunk at a time. ReadChunk
// blocks until a full chunk was captured; Close releases the microphone
// and makes any blocked ReadChunk return an error.
type CaptureSource interface {
	ReadChunk() ([]byte, error)
	Close() error
}

const (
	DefaultChunkDuration = 60 * time.Second
	DefaultBitrate       = 32_000 // bits per second, opus
)

// ChunkBytes converts the capture parameters into a chunk size.
func ChunkBytes(bitrate int, duration time.Duration) int {
	return bitrate * int(duration/time.Second) / 8
}

// ReaderSource chops a continuous encoded stream into fixed-size
// chunks. At a fixed bitrate a fixed byte count is a fixed duration.
type ReaderSource struct {
	reader     io.ReadCloser
	chunkBytes int
}

func NewReaderSource(reader io.ReadCloser, chunkBytes int) *ReaderSource {
	return &ReaderSource{
		reader:     reader,
		chunkBytes: chunkBytes,
	}
}

func (s *ReaderSource) ReadChunk() ([]byte, error) {
	chunk := make([]byte, s.chunkBytes)
	read, err := io.ReadFull(s.reader, chunk)
	if read > 0 {
		// A short final chunk is still worth uploading.
		return chunk[:read], nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "capture stream ended")
	}
	return chunk, nil
}

func (s *ReaderSource) Close() error {
	return s.reader.Close()
}

// NewMicrophoneSource captures the default microphone through ffmpeg,
// encoded as opus at the given bitrate. Failure to start is surfaced
// immediately: recording never starts without a microphone.
func NewMicrophoneSource(bitrate int, chunkDuration time.Duration) (*ReaderSource, error) {
	cmd := exec.Command("ffmpeg",
		"-hide_banner", "-loglevel", "error",
		"-f", "alsa", "-i", "default",
		"-c:a", "libopus", "-b:a", strconv.Itoa(bitrate),
		"-f", "ogg", "pipe:1",
	)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open capture pipe")
	}

	if err := cmd.Start(); err != nil {
		return nil, errors.Wrap(err, "failed to acquire microphone")
	}

	reader := &processReader{ReadCloser: stdout, cmd: cmd}
	return NewReaderSource(reader, ChunkBytes(bitrate, chunkDuration)), nil
}

type processReader struct {
	io.ReadCloser
	cmd *exec.Cmd
}

func (r *processReader) Close() error {
	err := r.ReadCloser.Close()
	if r.cmd.Process != nil {
		_ = r.cmd.Process.Kill()
	}
	_ = r.cmd.Wait()
	return err
}
