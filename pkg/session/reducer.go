package session

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/quizdeck/quizdeck-cli/pkg/protocol"
)

// Reducer maps (state, inbound message) to a new state. The input
// snapshot is never mutated, every application produces a fresh clone.
// Only the reducer is allowed to move the quiz phase; local timers are
// cosmetic and never authoritative.
type Reducer struct {
	logger *zap.Logger
}

func NewReducer(logger *zap.Logger) *Reducer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reducer{
		logger: logger.Named("reducer"),
	}
}

// Apply reduces one raw protocol message into the state. Malformed
// payloads are logged and dropped, the prior state is returned
// untouched.
func (r *Reducer) Apply(state *State, payload []byte) *State {
	envelope, err := protocol.UnmarshalMessage(payload)
	if err != nil {
		r.logger.Error("dropping malformed message", zap.Error(err))
		return state
	}

	logger := r.logger.With(zap.String("type", string(envelope.Type)))

	next := state.Clone()
	if next == nil {
		next = NewState()
	}

	var handleErr error
	switch envelope.Type {
	case protocol.MessageTypeConnected:
		handleErr = apply(payload, next, r.handleConnected)
	case protocol.MessageTypeParticipantJoined:
		handleErr = apply(payload, next, r.handleParticipantJoined)
	case protocol.MessageTypeParticipantLeft:
		handleErr = apply(payload, next, r.handleParticipantLeft)
	case protocol.MessageTypeParticipantNameChanged:
		handleErr = apply(payload, next, r.handleParticipantNameChanged)
	case protocol.MessageTypeJoinLockStatusChanged:
		handleErr = apply(payload, next, r.handleJoinLockStatusChanged)
	case protocol.MessageTypeGameStarted:
		handleErr = apply(payload, next, r.handleGameStarted)
	case protocol.MessageTypeQuestion:
		handleErr = apply(payload, next, r.handleQuestion)
	case protocol.MessageTypeTimeUpdate:
		handleErr = apply(payload, next, r.handleTimeUpdate)
	case protocol.MessageTypeAnswerReceived:
		handleErr = apply(payload, next, r.handleAnswerReceived)
	case protocol.MessageTypeReveal:
		handleErr = apply(payload, next, r.handleReveal)
	case protocol.MessageTypeScoresUpdate:
		handleErr = apply(payload, next, r.handleScoresUpdate)
	case protocol.MessageTypeLeaderboard:
		handleErr = apply(payload, next, r.handleLeaderboard)
	case protocol.MessageTypeGameEnded:
		handleErr = apply(payload, next, r.handleGameEnded)
	case protocol.MessageTypeError:
		handleErr = apply(payload, next, r.handleError)
	case protocol.MessageTypeProcessingStatus:
		handleErr = apply(payload, next, r.handleProcessingStatus)
	case protocol.MessageTypePhaseChanged:
		handleErr = apply(payload, next, r.handlePhaseChanged)
	case protocol.MessageTypeAllAnswered:
		handleErr = apply(payload, next, r.handleAllAnswered)
	case protocol.MessageTypePresenterChanged:
		handleErr = apply(payload, next, r.handlePresenterChanged)
	case protocol.MessageTypePresenterDisconnected:
		handleErr = apply(payload, next, r.handlePresenterDisconnected)
	case protocol.MessageTypePresenterPaused:
		handleErr = apply(payload, next, r.handlePresenterPaused)
	case protocol.MessageTypePresenterOverrideNeeded:
		handleErr = apply(payload, next, r.handlePresenterOverrideNeeded)
	case protocol.MessageTypeSegmentComplete:
		handleErr = apply(payload, next, r.handleSegmentComplete)
	case protocol.MessageTypeEventComplete:
		handleErr = apply(payload, next, r.handleEventComplete)
	case protocol.MessageTypeMegaQuizReady:
		handleErr = apply(payload, next, r.handleMegaQuizReady)
	case protocol.MessageTypeMegaQuizStarted:
		handleErr = apply(payload, next, r.handleMegaQuizStarted)
	case protocol.MessageTypeStateRestored:
		handleErr = apply(payload, next, r.handleStateRestored)
	case protocol.MessageTypePresenterSelected:
		handleErr = apply(payload, next, r.handlePresenterSelected)
	case protocol.MessageTypePresentationStarted:
		handleErr = apply(payload, next, r.handlePresentationStarted)
	case protocol.MessageTypeWaitingForPresenter:
		handleErr = apply(payload, next, r.handleWaitingForPresenter)
	default:
		logger.Warn("unsupported message type")
		return state
	}

	if handleErr != nil {
		logger.Error("dropping malformed message", zap.Error(handleErr))
		return state
	}

	return next
}

func apply[T any](payload []byte, state *State, handle func(*State, *T)) error {
	var message T
	if err := json.Unmarshal(payload, &message); err != nil {
		return err
	}
	handle(state, &message)
	return nil
}
