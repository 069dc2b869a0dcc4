package session

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/quizdeck/quizdeck-cli/pkg/protocol"
)

// Substrings the server embeds in free-text error messages. Not an
// official contract, matched best-effort for compatibility.
const (
	errTextLateJoin    = "next question"
	errTextPaused      = "paused"
	errTextTimeExpired = "time expired"
)

// advancePhase moves the quiz phase and clears the pause bookkeeping.
// The pause reason survives until the next phase-advancing message.
func advancePhase(state *State, phase protocol.Phase) {
	state.Phase = phase
	state.PhaseBeforePause = ""
	state.PauseReason = protocol.PauseReasonNone
}

func (r *Reducer) handleConnected(state *State, message *protocol.ConnectedMessage) {
	// The connected snapshot replaces the entire roster.
	state.Participants = make(Roster, len(message.Participants))
	for _, participant := range message.Participants {
		state.Participants[participant.ID] = participant
	}
	r.logger.Info("roster replaced", zap.Int("participants", len(state.Participants)))
}

func (r *Reducer) handleParticipantJoined(state *State, message *protocol.ParticipantJoinedMessage) {
	participant := message.User
	participant.Online = true
	state.Participants[participant.ID] = participant
}

func (r *Reducer) handleParticipantLeft(state *State, message *protocol.ParticipantLeftMessage) {
	participant, ok := state.Participants[message.UserID]
	if !ok {
		return
	}

	// Offline participants stay in the roster so scores and history
	// survive their reconnection.
	participant.Online = message.Online != nil && *message.Online
	state.Participants[message.UserID] = participant
}

func (r *Reducer) handleParticipantNameChanged(state *State, message *protocol.ParticipantNameChangedMessage) {
	participant, ok := state.Participants[message.UserID]
	if !ok {
		return
	}
	participant.Username = message.NewName
	state.Participants[message.UserID] = participant
}

func (r *Reducer) handleJoinLockStatusChanged(state *State, message *protocol.JoinLockStatusChangedMessage) {
	state.JoinLocked = message.Locked
}

func (r *Reducer) handleGameStarted(state *State, message *protocol.GameStartedMessage) {
	// A fresh game_started opens a new quiz flow, also after
	// event_complete when the same connection hosts a new event.
	advancePhase(state, protocol.PhaseBetweenQuestions)
	state.Question = nil
	state.HasAnswered = false
	state.MyAnswer = ""
	state.AnsweredQuestionID = ""
	state.AnswerLocked = false
	state.AnswerCount = 0
	state.CorrectAnswer = ""
	state.Distribution = nil
	state.FinalLeaderboard = nil
	state.Winner = nil
	state.SegmentWinners = nil
	state.MegaQuiz = nil
	state.Notice = Notice{}
}

func (r *Reducer) handleQuestion(state *State, message *protocol.QuestionMessage) {
	repeated := state.Question != nil && state.Question.ID == message.ID

	question := message.Question
	state.Question = &question
	state.RemainingSeconds = message.TimeLimit
	state.CorrectAnswer = ""
	state.Distribution = nil
	state.AnswerCount = 0
	state.WaitingForPresenter = false
	state.Notice = Notice{}
	advancePhase(state, protocol.PhaseShowingQuestion)

	if repeated {
		// Same question re-sent after a pause/resume cycle: keep the
		// answered flag so the user cannot answer twice.
		return
	}

	state.HasAnswered = false
	state.MyAnswer = ""
	state.AnsweredQuestionID = ""
	state.AnswerLocked = false
}

func (r *Reducer) handleTimeUpdate(state *State, message *protocol.TimeUpdateMessage) {
	state.RemainingSeconds = message.RemainingSeconds
}

func (r *Reducer) handleAnswerReceived(state *State, message *protocol.AnswerReceivedMessage) {
	state.AnswerCount++
}

func (r *Reducer) handleReveal(state *State, message *protocol.RevealMessage) {
	state.CorrectAnswer = message.CorrectAnswer
	state.Distribution = message.Distribution
	state.SegmentLeaderboard = message.SegmentLeaderboard
	state.EventLeaderboard = message.EventLeaderboard
	// Phase moves via the accompanying phase_changed message.
}

func (r *Reducer) handleScoresUpdate(state *State, message *protocol.ScoresUpdateMessage) {
	state.Scores = message.Scores
}

func (r *Reducer) handleLeaderboard(state *State, message *protocol.LeaderboardMessage) {
	state.EventLeaderboard = message.Rankings
}

func (r *Reducer) handleGameEnded(state *State, message *protocol.GameEndedMessage) {
	advancePhase(state, protocol.PhaseEventComplete)
}

func (r *Reducer) handleError(state *State, message *protocol.ErrorMessage) {
	text := strings.ToLower(message.Text)

	switch {
	case strings.Contains(text, errTextLateJoin):
		// Late joiner: gated from answering until the next question.
		state.AnswerLocked = true
		state.Notice = Notice{Kind: NoticeLateJoin, Text: message.Text}
	case strings.Contains(text, errTextPaused):
		state.Notice = Notice{Kind: NoticePaused, Text: message.Text}
	case strings.Contains(text, errTextTimeExpired):
		state.HasAnswered = false
		state.MyAnswer = ""
		state.Notice = Notice{Kind: NoticeTimeExpired, Text: message.Text}
	default:
		state.Notice = Notice{Kind: NoticeGeneric, Text: message.Text}
	}
}

func (r *Reducer) handleProcessingStatus(state *State, message *protocol.ProcessingStatusMessage) {
	state.Processing = &Processing{
		Step:     message.Step,
		Progress: message.Progress,
		Text:     message.Text,
	}
}

func (r *Reducer) handlePhaseChanged(state *State, message *protocol.PhaseChangedMessage) {
	advancePhase(state, message.Phase)
	if state.Question != nil && message.TotalQuestions > 0 {
		state.Question.TotalQuestions = message.TotalQuestions
	}
}

func (r *Reducer) handleAllAnswered(state *State, message *protocol.AllAnsweredMessage) {
	state.AnswerCount = message.AnswerCount
	state.TotalParticipants = message.TotalParticipants
}

func (r *Reducer) handlePresenterChanged(state *State, message *protocol.PresenterChangedMessage) {
	state.CurrentPresenter = &Presenter{
		ID:   message.NewPresenterID,
		Name: message.NewPresenterName,
	}
	state.SegmentID = message.SegmentID
}

func (r *Reducer) handlePresenterDisconnected(state *State, message *protocol.PresenterDisconnectedMessage) {
	state.Notice = Notice{
		Kind: NoticePresenterDisconnected,
		Text: fmt.Sprintf("Presenter %s disconnected", message.PresenterName),
	}
}

func (r *Reducer) handlePresenterPaused(state *State, message *protocol.PresenterPausedMessage) {
	r.pause(state, message.Reason)
	if message.SegmentID != "" {
		state.SegmentID = message.SegmentID
	}
}

func (r *Reducer) handlePresenterOverrideNeeded(state *State, message *protocol.PresenterOverrideNeededMessage) {
	r.pause(state, message.Reason)
	if message.SegmentID != "" {
		state.SegmentID = message.SegmentID
	}
}

func (r *Reducer) pause(state *State, reason protocol.PauseReason) {
	if !state.Paused() {
		state.PhaseBeforePause = state.Phase
	}
	state.Phase = protocol.PhasePresenterPaused
	state.PauseReason = reason
}

func (r *Reducer) handleSegmentComplete(state *State, message *protocol.SegmentCompleteMessage) {
	advancePhase(state, protocol.PhaseSegmentComplete)
	state.SegmentID = message.SegmentID
	state.SegmentTitle = message.SegmentTitle
	state.SegmentLeaderboard = message.SegmentLeaderboard
	state.EventLeaderboard = message.EventLeaderboard
	state.SegmentWinner = message.SegmentWinner
	state.EventLeader = message.EventLeader
	state.Question = nil
}

func (r *Reducer) handleEventComplete(state *State, message *protocol.EventCompleteMessage) {
	advancePhase(state, protocol.PhaseEventComplete)
	state.EventID = message.EventID
	state.FinalLeaderboard = message.FinalLeaderboard
	state.Winner = message.Winner
	state.SegmentWinners = message.SegmentWinners
	state.Question = nil
}

func (r *Reducer) handleMegaQuizReady(state *State, message *protocol.MegaQuizReadyMessage) {
	advancePhase(state, protocol.PhaseMegaQuizReady)
	state.EventLeaderboard = message.CurrentLeaderboard
	state.MegaQuiz = &MegaQuiz{
		AvailableQuestions: message.AvailableQuestions,
		SingleSegment:      message.IsSingleSegment || message.SingleSegmentMode,
	}
}

func (r *Reducer) handleMegaQuizStarted(state *State, message *protocol.MegaQuizStartedMessage) {
	advancePhase(state, protocol.PhaseMegaQuiz)
	if state.MegaQuiz == nil {
		state.MegaQuiz = &MegaQuiz{}
	}
	state.MegaQuiz.QuestionCount = message.QuestionCount
}

// handleStateRestored rebuilds the whole session from the server
// snapshot. Everything believed before the connection gap is discarded.
func (r *Reducer) handleStateRestored(state *State, message *protocol.StateRestoredMessage) {
	restored := NewState()
	restored.EventID = message.EventID
	restored.SegmentID = message.SegmentID
	restored.Phase = message.CurrentPhase
	restored.YourScore = message.YourScore

	restored.Participants = make(Roster, len(message.Participants))
	for _, participant := range message.Participants {
		restored.Participants[participant.ID] = participant
	}

	if message.CurrentQuestionID != "" {
		restored.Question = &protocol.Question{
			ID:        message.CurrentQuestionID,
			Text:      message.QuestionText,
			Answers:   message.Answers,
			TimeLimit: message.TimeLimit,
		}
		restored.RemainingSeconds = message.TimeLimit
	}

	if message.YourAnswer != "" {
		restored.HasAnswered = true
		restored.MyAnswer = message.YourAnswer
		restored.AnsweredQuestionID = message.CurrentQuestionID
	}

	*state = *restored
	r.logger.Info("state restored",
		zap.String("eventID", message.EventID.String()),
		zap.String("phase", string(message.CurrentPhase)),
	)
}

func (r *Reducer) handlePresenterSelected(state *State, message *protocol.PresenterSelectedMessage) {
	// Pending until presentation_started promotes it.
	state.PendingPresenter = &Presenter{
		ID:   message.PresenterID,
		Name: message.PresenterName,
	}
}

func (r *Reducer) handlePresentationStarted(state *State, message *protocol.PresentationStartedMessage) {
	state.CurrentPresenter = &Presenter{
		ID:   message.PresenterID,
		Name: message.PresenterName,
	}
	state.PendingPresenter = nil
	state.SegmentID = message.SegmentID
	state.WaitingForPresenter = false
}

func (r *Reducer) handleWaitingForPresenter(state *State, message *protocol.WaitingForPresenterMessage) {
	state.WaitingForPresenter = true
}
