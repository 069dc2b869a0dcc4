package audio

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/quizdeck/quizdeck-cli/pkg/protocol"
)

// Recorder pulls chunks off a capture source, assigns each a
// sequential index and hands it to the uploader without ever blocking
// capture on an upload.
type Recorder struct {
	logger    *zap.Logger
	ctx       context.Context
	source    CaptureSource
	uploader  *Uploader
	segmentID protocol.SegmentID
	onResult  ResultCallback

	stopOnce sync.Once
	stopped  chan struct{}
}

func NewRecorder(ctx context.Context, logger *zap.Logger, source CaptureSource, uploader *Uploader, segmentID protocol.SegmentID, onResult ResultCallback) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return &Recorder{
		logger:    logger.Named("recorder"),
		ctx:       ctx,
		source:    source,
		uploader:  uploader,
		segmentID: segmentID,
		onResult:  onResult,
		stopped:   make(chan struct{}),
	}
}

func (r *Recorder) Start() {
	go r.captureLoop()
}

// Stop halts capture and releases the microphone. It does not wait for
// in-flight uploads: UI responsiveness wins over upload completeness.
func (r *Recorder) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopped)
		if err := r.source.Close(); err != nil {
			r.logger.Warn("failed to close capture source", zap.Error(err))
		}
		r.logger.Info("recording stopped",
			zap.Int("chunksUploaded", r.uploader.ChunksUploaded()),
		)
	})
}

func (r *Recorder) captureLoop() {
	// Stop closes the source, which makes the pending ReadChunk fail
	// and ends the loop. The source is always released, no matter how
	// the loop exits.
	defer r.Stop()

	for chunkIndex := 0; ; chunkIndex++ {
		select {
		case <-r.stopped:
			return
		case <-r.ctx.Done():
			return
		default:
		}

		blob, err := r.source.ReadChunk()
		if err != nil {
			select {
			case <-r.stopped:
			default:
				r.logger.Error("capture failed", zap.Error(err))
			}
			return
		}

		r.logger.Debug("chunk captured",
			zap.Int("chunkIndex", chunkIndex),
			zap.Int("bytes", len(blob)),
		)

		// Upload in the background, capture continues immediately.
		go r.uploader.UploadChunk(r.ctx, r.segmentID, chunkIndex, blob, r.onResult)
	}
}
