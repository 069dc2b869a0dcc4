package audio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/quizdeck/quizdeck-cli/pkg/protocol"
)

const (
	maxRetries     = 3
	retryDelayUnit = 2 * time.Second
	formFieldName  = "audio_chunk"
)

// ChunkResult is reported once per chunk, after the upload succeeded or
// permanently failed.
type ChunkResult struct {
	ChunkIndex int
	Success    bool
	Error      string
}

type ResultCallback func(ChunkResult)

// Uploader pushes captured chunks over HTTP, each chunk independently.
// A chunk that exhausts its retries is dropped: missing chunks degrade
// question generation quality, blocking the presenter would be worse.
type Uploader struct {
	logger    *zap.Logger
	clock     clockwork.Clock
	client    *http.Client
	serverURL string
	authToken func() string

	chunksUploaded atomic.Int64
}

func NewUploader(logger *zap.Logger, clock clockwork.Clock, serverURL string, authToken func() string) *Uploader {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Uploader{
		logger:    logger.Named("uploader"),
		clock:     clock,
		client:    &http.Client{},
		serverURL: serverURL,
		authToken: authToken,
	}
}

func (u *Uploader) ChunksUploaded() int {
	return int(u.chunksUploaded.Load())
}

// UploadChunk sends one chunk, retrying up to maxRetries times with
// linear backoff. The retry loop is bounded and iterative.
func (u *Uploader) UploadChunk(ctx context.Context, segmentID protocol.SegmentID, chunkIndex int, blob []byte, callback ResultCallback) {
	logger := u.logger.With(
		zap.String("segmentID", segmentID.String()),
		zap.Int("chunkIndex", chunkIndex),
	)

	var lastErr error
retries:
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			delay := retryDelayUnit * time.Duration(attempt)
			logger.Debug("retrying chunk upload",
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay),
			)
			select {
			case <-u.clock.After(delay):
			case <-ctx.Done():
				lastErr = ctx.Err()
				break retries
			}
		}

		lastErr = u.send(ctx, segmentID, chunkIndex, blob)
		if lastErr == nil {
			u.chunksUploaded.Add(1)
			logger.Debug("chunk uploaded")
			if callback != nil {
				callback(ChunkResult{ChunkIndex: chunkIndex, Success: true})
			}
			return
		}

		logger.Warn("chunk upload failed", zap.Error(lastErr))
	}

	// Retries exhausted: the chunk is dropped, recording continues.
	logger.Error("chunk dropped after retries", zap.Error(lastErr))
	if callback != nil {
		callback(ChunkResult{
			ChunkIndex: chunkIndex,
			Success:    false,
			Error:      lastErr.Error(),
		})
	}
}

func (u *Uploader) send(ctx context.Context, segmentID protocol.SegmentID, chunkIndex int, blob []byte) error {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile(formFieldName, fmt.Sprintf("chunk-%d.ogg", chunkIndex))
	if err != nil {
		return err
	}
	if _, err = part.Write(blob); err != nil {
		return err
	}
	if err = writer.Close(); err != nil {
		return err
	}

	target := fmt.Sprintf("%s/api/segments/%s/audio-chunk?chunk_index=%d", u.serverURL, segmentID, chunkIndex)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, target, body)
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", writer.FormDataContentType())
	request.Header.Set("Authorization", "Bearer "+u.authToken())

	response, err := u.client.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	_, _ = io.Copy(io.Discard, response.Body)

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", response.StatusCode)
	}

	return nil
}
