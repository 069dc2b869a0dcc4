package messages

import (
	"time"

	"github.com/quizdeck/quizdeck-cli/internal/audio"
	"github.com/quizdeck/quizdeck-cli/internal/transport"
	"github.com/quizdeck/quizdeck-cli/internal/view/states"
	"github.com/quizdeck/quizdeck-cli/pkg/protocol"
	"github.com/quizdeck/quizdeck-cli/pkg/session"
)

type FatalErrorMessage struct {
	Err error
}

type AppStateFinishedMessage struct {
	State states.AppState
}

type AppStateMessage struct {
	State states.AppState
}

type SessionStateMessage struct {
	State *session.State
}

type ErrorMessage struct {
	Err error
}

func NewErrorMessage(err error) ErrorMessage {
	return ErrorMessage{Err: err}
}

type UserIDMessage struct {
	UserID protocol.UserID
}

type EventViewChange struct {
	EventView states.EventView
}

type ConnectionStatus struct {
	Status transport.ConnectionStatus
}

type ReconnectCountdown struct {
	TimeLeft time.Duration
}

type CommandModeChange struct {
	CommandMode bool
}

type EventJoin struct {
	EventID protocol.EventID
	IsHost  bool
}

type EventLeave struct{}

type RecordingChange struct {
	Recording bool
	SegmentID protocol.SegmentID
}

type ChunkUploadResult struct {
	Result audio.ChunkResult
}
