package audio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/quizdeck/quizdeck-cli/internal/testcommon"
)

// fakeSource yields a fixed number of chunks, then blocks until closed.
type fakeSource struct {
	chunks  int
	yielded int
	closed  chan struct{}
	once    sync.Once
}

func newFakeSource(chunks int) *fakeSource {
	return &fakeSource{
		chunks: chunks,
		closed: make(chan struct{}),
	}
}

func (s *fakeSource) ReadChunk() ([]byte, error) {
	if s.yielded < s.chunks {
		chunk := []byte("chunk-" + strconv.Itoa(s.yielded))
		s.yielded++
		return chunk, nil
	}
	<-s.closed
	return nil, context.Canceled
}

func (s *fakeSource) Close() error {
	s.once.Do(func() { close(s.closed) })
	return nil
}

func TestRecorderUploadsSequentialChunks(t *testing.T) {
	logger := testcommon.SetupConfigLogger(t)

	var mutex sync.Mutex
	indices := make(map[string]bool)
	done := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mutex.Lock()
		indices[r.URL.Query().Get("chunk_index")] = true
		received := len(indices)
		mutex.Unlock()

		w.WriteHeader(http.StatusOK)
		if received == 3 {
			close(done)
		}
	}))
	defer server.Close()

	uploader := NewUploader(logger, nil, server.URL, func() string { return "token" })
	source := newFakeSource(3)
	recorder := NewRecorder(context.Background(), logger, source, uploader, testSegmentID, nil)

	recorder.Start()
	defer recorder.Stop()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for uploads")
	}

	mutex.Lock()
	defer mutex.Unlock()
	require.Equal(t, map[string]bool{"0": true, "1": true, "2": true}, indices)
}

func TestRecorderStopReleasesSource(t *testing.T) {
	logger := testcommon.SetupConfigLogger(t)

	uploader := NewUploader(logger, nil, "http://127.0.0.1:0", func() string { return "token" })
	source := newFakeSource(0)
	recorder := NewRecorder(context.Background(), logger, source, uploader, testSegmentID, nil)

	recorder.Start()
	recorder.Stop()

	select {
	case <-source.closed:
	case <-time.After(time.Second):
		t.Fatal("source was not closed")
	}
}
