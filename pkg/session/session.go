package session

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/quizdeck/quizdeck-cli/internal/transport"
	"github.com/quizdeck/quizdeck-cli/pkg/protocol"
)

type StateSubscription chan *State

// Session is the per-screen orchestration layer: it feeds inbound
// transport messages through the reducer and translates user intent
// into outbound protocol messages.
type Session struct {
	logger    *zap.Logger
	ctx       context.Context
	transport transport.Service
	clock     clockwork.Clock
	reducer   *Reducer

	me     protocol.UserID
	isHost bool

	mutex            sync.Mutex
	exitSession      chan struct{}
	state            *State
	stateSubscribers []StateSubscription
	questionAskedAt  time.Time
}

func NewSession(opts []Option) *Session {
	session := &Session{
		exitSession: nil,
		state:       NewState(),
	}

	for _, opt := range opts {
		opt(session)
	}

	if session.ctx == nil {
		session.ctx = context.Background()
	}

	if session.logger == nil {
		session.logger = zap.NewNop()
	}

	if session.transport == nil {
		session.logger.Error("transport is required")
		return nil
	}

	if session.clock == nil {
		session.clock = clockwork.NewRealClock()
	}

	session.reducer = NewReducer(session.logger)

	return session
}

// Start subscribes to the transport and begins reducing inbound
// messages into state snapshots.
func (s *Session) Start() {
	s.mutex.Lock()
	if s.exitSession != nil {
		s.mutex.Unlock()
		return
	}
	s.exitSession = make(chan struct{})
	s.mutex.Unlock()

	sub := s.transport.SubscribeToMessages()
	go s.processIncomingMessages(sub)
}

// Stop closes the subscriber channels under the same mutex that guards
// delivery, so an in-flight notifyChangedState can never send on a
// closed channel.
func (s *Session) Stop() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.exitSession != nil {
		close(s.exitSession)
		s.exitSession = nil
	}
	for _, subscriber := range s.stateSubscribers {
		close(subscriber)
	}
	s.stateSubscribers = nil
}

func (s *Session) SubscribeToStateChanges() StateSubscription {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	channel := make(StateSubscription, 10)
	s.stateSubscribers = append(s.stateSubscribers, channel)
	return channel
}

// CurrentState returns the latest snapshot. Consumers must treat it as
// read-only.
func (s *Session) CurrentState() *State {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.state
}

func (s *Session) Me() protocol.UserID {
	return s.me
}

func (s *Session) IsHost() bool {
	return s.isHost
}

// IsCurrentPresenter reports whether we are the active presenter.
func (s *Session) IsCurrentPresenter() bool {
	state := s.CurrentState()
	return state.CurrentPresenter != nil && state.CurrentPresenter.ID == s.me
}

// CanControlPresenter gates host-side quiz flow actions.
func (s *Session) CanControlPresenter() bool {
	return s.isHost || s.IsCurrentPresenter()
}

func (s *Session) processIncomingMessages(sub *transport.MessagesSubscription) {
	if sub.Unsubscribe != nil {
		defer sub.Unsubscribe()
	}

	s.mutex.Lock()
	exit := s.exitSession
	s.mutex.Unlock()

	for {
		select {
		case payload, more := <-sub.Ch:
			if !more {
				return
			}
			s.handleMessage(payload)
		case <-exit:
			return
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Session) handleMessage(payload []byte) {
	s.mutex.Lock()

	previousQuestionID := protocol.QuestionID("")
	if s.state.Question != nil {
		previousQuestionID = s.state.Question.ID
	}

	s.state = s.reducer.Apply(s.state, payload)

	if s.state.Question != nil && s.state.Question.ID != previousQuestionID {
		// Response time is measured from question receipt.
		s.questionAskedAt = s.clock.Now()
	}

	s.mutex.Unlock()
	s.notifyChangedState()
}

func (s *Session) notifyChangedState() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.logger.Debug("notifying state change",
		zap.Int("subscribers", len(s.stateSubscribers)),
		zap.String("phase", string(s.state.Phase)),
	)

	for _, subscriber := range s.stateSubscribers {
		select {
		case subscriber <- s.state:
		default:
			s.logger.Warn("state subscriber is full, skipping update")
		}
	}
}

// SubmitAnswer sends our answer for the current question and records it
// locally so the UI shows the selection immediately.
func (s *Session) SubmitAnswer(answer string) error {
	s.mutex.Lock()
	state := s.state

	if state.Question == nil || state.Phase != protocol.PhaseShowingQuestion {
		s.mutex.Unlock()
		return errors.New("no question to answer")
	}
	if state.HasAnswered {
		s.mutex.Unlock()
		return errors.New("already answered this question")
	}
	if state.AnswerLocked {
		s.mutex.Unlock()
		return errors.New("answering is locked until the next question")
	}
	if me := state.Participant(s.me); me != nil && !me.CanAnswer() {
		s.mutex.Unlock()
		return errors.New("not active in the current segment")
	}
	if !slices.Contains(protocol.AnswerLetters(len(state.Question.Answers)), answer) {
		s.mutex.Unlock()
		return errors.New("unknown answer option")
	}

	questionID := state.Question.ID
	responseTime := s.clock.Now().Sub(s.questionAskedAt)

	next := state.Clone()
	next.HasAnswered = true
	next.MyAnswer = answer
	next.AnsweredQuestionID = questionID
	s.state = next
	s.mutex.Unlock()

	err := s.transport.SendMessage(protocol.AnswerMessage{
		Message:        protocol.Message{Type: protocol.MessageTypeAnswer},
		QuestionID:     questionID,
		SelectedAnswer: answer,
		ResponseTimeMs: responseTime.Milliseconds(),
	})
	if err != nil {
		return err
	}

	s.notifyChangedState()
	return nil
}

func (s *Session) StartGame() error {
	if !s.isHost {
		return errors.New("only the host can start the game")
	}
	return s.transport.SendMessage(protocol.StartGameMessage{
		Message: protocol.Message{Type: protocol.MessageTypeStartGame},
	})
}

func (s *Session) NextQuestion() error {
	if err := s.requireQuizControl(); err != nil {
		return err
	}
	return s.transport.SendMessage(protocol.NextQuestionMessage{
		Message: protocol.Message{Type: protocol.MessageTypeNextQuestion},
	})
}

func (s *Session) RevealAnswer() error {
	if err := s.requireQuizControl(); err != nil {
		return err
	}
	return s.transport.SendMessage(protocol.RevealAnswerMessage{
		Message: protocol.Message{Type: protocol.MessageTypeRevealAnswer},
	})
}

func (s *Session) ShowLeaderboard() error {
	if err := s.requireQuizControl(); err != nil {
		return err
	}
	return s.transport.SendMessage(protocol.ShowLeaderboardMessage{
		Message: protocol.Message{Type: protocol.MessageTypeShowLeaderboard},
	})
}

func (s *Session) EndGame() error {
	if !s.isHost {
		return errors.New("only the host can end the game")
	}
	return s.transport.SendMessage(protocol.EndGameMessage{
		Message: protocol.Message{Type: protocol.MessageTypeEndGame},
	})
}

func (s *Session) PassPresenter(next protocol.UserID) error {
	if !s.CanControlPresenter() {
		return errors.New("only the host or the current presenter can pass the presenter role")
	}
	return s.transport.SendMessage(protocol.PassPresenterMessage{
		Message:             protocol.Message{Type: protocol.MessageTypePassPresenter},
		NextPresenterUserID: next,
	})
}

// AdminSelectPresenter is the override flow: it is the one
// phase-advancing action permitted while the quiz is paused.
func (s *Session) AdminSelectPresenter(presenter protocol.UserID, segmentID protocol.SegmentID) error {
	if !s.isHost {
		return errors.New("only the host can select a presenter")
	}
	return s.transport.SendMessage(protocol.AdminSelectPresenterMessage{
		Message:         protocol.Message{Type: protocol.MessageTypeAdminSelectPresenter},
		PresenterUserID: presenter,
		SegmentID:       segmentID,
	})
}

// ResumeSegment is part of the override flow and is allowed while
// paused.
func (s *Session) ResumeSegment() error {
	if !s.CanControlPresenter() {
		return errors.New("only the host or the current presenter can resume")
	}
	state := s.CurrentState()
	return s.transport.SendMessage(protocol.ResumeSegmentMessage{
		Message:   protocol.Message{Type: protocol.MessageTypeResumeSegment},
		SegmentID: state.SegmentID,
	})
}

func (s *Session) StartMegaQuiz(questionCount int) error {
	if !s.isHost {
		return errors.New("only the host can start the mega quiz")
	}
	if s.CurrentState().Phase != protocol.PhaseMegaQuizReady {
		return errors.New("mega quiz is not ready")
	}
	return s.transport.SendMessage(protocol.StartMegaQuizMessage{
		Message:       protocol.Message{Type: protocol.MessageTypeStartMegaQuiz},
		QuestionCount: questionCount,
	})
}

func (s *Session) SkipMegaQuiz() error {
	if !s.isHost {
		return errors.New("only the host can skip the mega quiz")
	}
	if s.CurrentState().Phase != protocol.PhaseMegaQuizReady {
		return errors.New("mega quiz is not ready")
	}
	return s.transport.SendMessage(protocol.SkipMegaQuizMessage{
		Message: protocol.Message{Type: protocol.MessageTypeSkipMegaQuiz},
	})
}

func (s *Session) StartPresentation() error {
	state := s.CurrentState()
	pending := state.PendingPresenter
	if pending == nil || pending.ID != s.me {
		return errors.New("not the pending presenter")
	}
	return s.transport.SendMessage(protocol.StartPresentationMessage{
		Message: protocol.Message{Type: protocol.MessageTypeStartPresentation},
	})
}

func (s *Session) SelectPresenter(presenter protocol.UserID) error {
	if !s.isHost {
		return errors.New("only the host can select a presenter")
	}
	return s.transport.SendMessage(protocol.SelectPresenterMessage{
		Message:         protocol.Message{Type: protocol.MessageTypeSelectPresenter},
		PresenterUserID: presenter,
	})
}

// requireQuizControl rejects phase-advancing actions from anyone but
// the controlling user, and from everyone while the quiz is paused.
func (s *Session) requireQuizControl() error {
	if !s.CanControlPresenter() {
		return errors.New("only the host or the current presenter can control the quiz")
	}
	if s.CurrentState().Paused() {
		return errors.New("quiz is paused, resume it first")
	}
	return nil
}
