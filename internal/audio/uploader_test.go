package audio

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"

	"github.com/quizdeck/quizdeck-cli/internal/testcommon"
	"github.com/quizdeck/quizdeck-cli/pkg/protocol"
)

const testSegmentID = protocol.SegmentID("segment-1")

func TestUploader(t *testing.T) {
	suite.Run(t, new(UploaderSuite))
}

type UploaderSuite struct {
	testcommon.Suite
	clock clockwork.FakeClock
}

func (s *UploaderSuite) SetupTest() {
	s.clock = clockwork.NewFakeClock()
}

func (s *UploaderSuite) newUploader(serverURL string) *Uploader {
	return NewUploader(s.Logger, s.clock, serverURL, func() string {
		return "test-token"
	})
}

func (s *UploaderSuite) TestUploadSuccess() {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)

		s.Require().Equal(http.MethodPost, r.Method)
		s.Require().Equal("/api/segments/segment-1/audio-chunk", r.URL.Path)
		s.Require().Equal("7", r.URL.Query().Get("chunk_index"))
		s.Require().Equal("Bearer test-token", r.Header.Get("Authorization"))

		file, header, err := r.FormFile(formFieldName)
		s.Require().NoError(err)
		defer file.Close()

		s.Require().Equal("chunk-7.ogg", header.Filename)
		blob, err := io.ReadAll(file)
		s.Require().NoError(err)
		s.Require().Equal([]byte("opus data"), blob)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	uploader := s.newUploader(server.URL)

	results := make(chan ChunkResult, 1)
	uploader.UploadChunk(context.Background(), testSegmentID, 7, []byte("opus data"), func(result ChunkResult) {
		results <- result
	})

	result := <-results
	s.Require().True(result.Success)
	s.Require().Equal(7, result.ChunkIndex)
	s.Require().Empty(result.Error)
	s.Require().EqualValues(1, requests.Load())
	s.Require().Equal(1, uploader.ChunksUploaded())
}

func (s *UploaderSuite) TestRetrySucceedsEventually() {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	uploader := s.newUploader(server.URL)

	results := make(chan ChunkResult, 1)
	go uploader.UploadChunk(context.Background(), testSegmentID, 0, []byte("blob"), func(result ChunkResult) {
		results <- result
	})

	s.clock.BlockUntil(1)
	s.clock.Advance(retryDelayUnit)

	result := <-results
	s.Require().True(result.Success)
	s.Require().EqualValues(2, requests.Load())
	s.Require().Equal(1, uploader.ChunksUploaded())
}

func (s *UploaderSuite) TestChunkDroppedAfterRetries() {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	uploader := s.newUploader(server.URL)

	results := make(chan ChunkResult, 1)
	go uploader.UploadChunk(context.Background(), testSegmentID, 3, []byte("blob"), func(result ChunkResult) {
		results <- result
	})

	// Retry delays grow linearly: 2s, 4s, 6s.
	for attempt := 1; attempt <= maxRetries; attempt++ {
		s.clock.BlockUntil(1)
		s.clock.Advance(retryDelayUnit * time.Duration(attempt))
	}

	result := <-results
	s.Require().False(result.Success)
	s.Require().Equal(3, result.ChunkIndex)
	s.Require().Contains(result.Error, "unexpected status 502")

	// Initial attempt plus three retries, never a fourth.
	s.Require().EqualValues(maxRetries+1, requests.Load())
	s.Require().Equal(0, uploader.ChunksUploaded())
}

func (s *UploaderSuite) TestCancelledContextStopsRetries() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	uploader := s.newUploader(server.URL)

	ctx, cancel := context.WithCancel(context.Background())

	results := make(chan ChunkResult, 1)
	go uploader.UploadChunk(ctx, testSegmentID, 0, []byte("blob"), func(result ChunkResult) {
		results <- result
	})

	// Cancel while the uploader waits out the first retry delay.
	s.clock.BlockUntil(1)
	cancel()

	result := <-results
	s.Require().False(result.Success)
	s.Require().Contains(result.Error, context.Canceled.Error())
	s.Require().Equal(0, uploader.ChunksUploaded())
}
