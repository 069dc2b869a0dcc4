package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/quizdeck/quizdeck-cli/internal/testcommon"
	"github.com/quizdeck/quizdeck-cli/internal/testcommon/matchers"
	"github.com/quizdeck/quizdeck-cli/internal/transport"
	mocktransport "github.com/quizdeck/quizdeck-cli/internal/transport/mock"
	"github.com/quizdeck/quizdeck-cli/pkg/protocol"
)

const testUserID = protocol.UserID("user-me")

func TestSession(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

type SessionSuite struct {
	testcommon.Suite

	ctx       context.Context
	cancel    context.CancelFunc
	transport *mocktransport.MockService
	clock     clockwork.FakeClock
	inbound   chan []byte
}

func (s *SessionSuite) SetupTest() {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	ctrl := gomock.NewController(s.T())
	s.transport = mocktransport.NewMockService(ctrl)
	s.clock = clockwork.NewFakeClock()
	s.inbound = make(chan []byte)
}

func (s *SessionSuite) TearDownTest() {
	s.cancel()
}

func (s *SessionSuite) newSession(isHost bool) *Session {
	session := NewSession([]Option{
		WithContext(s.ctx),
		WithTransport(s.transport),
		WithClock(s.clock),
		WithLogger(s.Logger),
		WithUserID(testUserID),
		WithHost(isHost),
	})
	s.Require().NotNil(session)

	s.transport.EXPECT().SubscribeToMessages().
		Return(&transport.MessagesSubscription{
			Ch:          s.inbound,
			Unsubscribe: func() {},
		}).
		Times(1)

	session.Start()
	return session
}

// feed pushes a raw message and waits until the session has reduced it.
func (s *SessionSuite) feed(session *Session, states StateSubscription, payload string) *State {
	s.inbound <- []byte(payload)
	select {
	case state := <-states:
		return state
	case <-time.After(1 * time.Second):
		s.Require().Fail("timeout waiting for state change")
	}
	return nil
}

func (s *SessionSuite) TestSubmitAnswer() {
	session := s.newSession(false)
	defer session.Stop()
	states := session.SubscribeToStateChanges()

	s.feed(session, states, `{"type":"connected","participants":[{"id":"user-me","username":"me","join_status":"active_in_quiz"}]}`)
	s.feed(session, states, `{"type":"question","question_id":"q1","question_number":1,"total_questions":5,"text":"?","answers":["1","2"],"time_limit":20}`)

	s.clock.Advance(1500 * time.Millisecond)

	matcher := matchers.NewAnswerMatcher(s.T(), "q1", "A")
	s.transport.EXPECT().SendMessage(matcher).Return(nil).Times(1)

	err := session.SubmitAnswer("A")
	s.Require().NoError(err)

	answer := matcher.Wait()
	s.Require().Equal(int64(1500), answer.ResponseTimeMs)

	state := session.CurrentState()
	s.Require().True(state.HasAnswered)
	s.Require().Equal("A", state.MyAnswer)

	// Second submission for the same question is rejected locally.
	err = session.SubmitAnswer("B")
	s.Require().Error(err)
}

func (s *SessionSuite) TestSubmitAnswerRejectsUnknownOption() {
	session := s.newSession(false)
	defer session.Stop()
	states := session.SubscribeToStateChanges()

	s.feed(session, states, `{"type":"connected","participants":[{"id":"user-me","username":"me","join_status":"active_in_quiz"}]}`)
	s.feed(session, states, `{"type":"question","question_id":"q1","question_number":1,"total_questions":5,"text":"?","answers":["1","2"],"time_limit":20}`)

	// Only "A" and "B" exist for a two-option question.
	err := session.SubmitAnswer("C")
	s.Require().Error(err)

	state := session.CurrentState()
	s.Require().False(state.HasAnswered)
}

func (s *SessionSuite) TestSubmitAnswerRequiresQuestion() {
	session := s.newSession(false)
	defer session.Stop()

	err := session.SubmitAnswer("A")
	s.Require().Error(err)
}

func (s *SessionSuite) TestSubmitAnswerBlockedForLateJoiner() {
	session := s.newSession(false)
	defer session.Stop()
	states := session.SubscribeToStateChanges()

	s.feed(session, states, `{"type":"connected","participants":[{"id":"user-me","join_status":"waiting_for_segment"}]}`)
	s.feed(session, states, `{"type":"question","question_id":"q1","question_number":1,"total_questions":5,"text":"?","answers":["1","2"],"time_limit":20}`)
	state := s.feed(session, states, `{"type":"error","message":"You can start answering with the next question"}`)

	s.Require().True(state.AnswerLocked)

	err := session.SubmitAnswer("A")
	s.Require().Error(err)
}

func (s *SessionSuite) TestStartGameRequiresHost() {
	session := s.newSession(false)
	defer session.Stop()

	err := session.StartGame()
	s.Require().Error(err)
}

func (s *SessionSuite) TestHostControlsQuizFlow() {
	session := s.newSession(true)
	defer session.Stop()

	for _, messageType := range []protocol.MessageType{
		protocol.MessageTypeStartGame,
		protocol.MessageTypeNextQuestion,
		protocol.MessageTypeRevealAnswer,
		protocol.MessageTypeShowLeaderboard,
		protocol.MessageTypeEndGame,
	} {
		matcher := matchers.NewTypeMatcher(s.T(), messageType)
		s.transport.EXPECT().SendMessage(matcher).Return(nil).Times(1)
	}

	s.Require().NoError(session.StartGame())
	s.Require().NoError(session.NextQuestion())
	s.Require().NoError(session.RevealAnswer())
	s.Require().NoError(session.ShowLeaderboard())
	s.Require().NoError(session.EndGame())
}

func (s *SessionSuite) TestQuizControlBlockedWhilePaused() {
	session := s.newSession(true)
	defer session.Stop()
	states := session.SubscribeToStateChanges()

	s.feed(session, states, `{"type":"presenter_paused","presenter_id":"host","segment_id":"seg-1","reason":"all_disconnected"}`)

	s.Require().Error(session.NextQuestion())
	s.Require().Error(session.RevealAnswer())

	// The override flow stays available while paused.
	matcher := matchers.NewTypeMatcher(s.T(), protocol.MessageTypeResumeSegment)
	s.transport.EXPECT().SendMessage(matcher).Return(nil).Times(1)
	s.Require().NoError(session.ResumeSegment())
}

func (s *SessionSuite) TestStartPresentationRequiresPendingPresenter() {
	session := s.newSession(false)
	defer session.Stop()
	states := session.SubscribeToStateChanges()

	s.Require().Error(session.StartPresentation())

	s.feed(session, states, `{"type":"presenter_selected","presenter_id":"user-me","presenter_name":"me","is_first_presenter":true}`)

	matcher := matchers.NewTypeMatcher(s.T(), protocol.MessageTypeStartPresentation)
	s.transport.EXPECT().SendMessage(matcher).Return(nil).Times(1)
	s.Require().NoError(session.StartPresentation())
}

func (s *SessionSuite) TestMegaQuizRequiresReadyPhase() {
	session := s.newSession(true)
	defer session.Stop()
	states := session.SubscribeToStateChanges()

	s.Require().Error(session.StartMegaQuiz(5))
	s.Require().Error(session.SkipMegaQuiz())

	s.feed(session, states, `{"type":"mega_quiz_ready","event_id":"event-1","available_questions":12}`)

	matcher := matchers.NewTypeMatcher(s.T(), protocol.MessageTypeStartMegaQuiz)
	s.transport.EXPECT().SendMessage(matcher).Return(nil).Times(1)
	s.Require().NoError(session.StartMegaQuiz(5))
}

func (s *SessionSuite) TestPresenterControlsAfterHandoff() {
	session := s.newSession(false)
	defer session.Stop()
	states := session.SubscribeToStateChanges()

	s.Require().False(session.CanControlPresenter())

	s.feed(session, states, `{"type":"presentation_started","segment_id":"seg-1","presenter_id":"user-me","presenter_name":"me"}`)

	s.Require().True(session.IsCurrentPresenter())
	s.Require().True(session.CanControlPresenter())

	matcher := matchers.NewTypeMatcher(s.T(), protocol.MessageTypeNextQuestion)
	s.transport.EXPECT().SendMessage(matcher).Return(nil).Times(1)
	s.Require().NoError(session.NextQuestion())
}

func (s *SessionSuite) TestResponseTimeMeasuredFromQuestionReceipt() {
	session := s.newSession(false)
	defer session.Stop()
	states := session.SubscribeToStateChanges()

	s.feed(session, states, `{"type":"question","question_id":"q1","question_number":1,"total_questions":5,"text":"?","answers":["1","2"],"time_limit":20}`)
	s.clock.Advance(3 * time.Second)

	matcher := matchers.NewAnswerMatcher(s.T(), "q1", "B")
	s.transport.EXPECT().SendMessage(matcher).Return(nil).Times(1)

	s.Require().NoError(session.SubmitAnswer("B"))
	answer := matcher.Wait()
	s.Require().Equal(int64(3000), answer.ResponseTimeMs)
}

func (s *SessionSuite) TestStopWithUndrainedSubscribers() {
	session := s.newSession(false)
	states := session.SubscribeToStateChanges()

	// Never drain the subscription: once its buffer is full, further
	// snapshots are dropped instead of blocking the processing loop.
	for remaining := 1; remaining <= 15; remaining++ {
		s.inbound <- []byte(fmt.Sprintf(`{"type":"time_update","remaining_seconds":%d}`, remaining))
	}

	s.Require().Eventually(func() bool {
		return session.CurrentState().RemainingSeconds == 15
	}, time.Second, 10*time.Millisecond)

	// Stopping with a backlog still in the channel must not panic a
	// delivery in flight.
	session.Stop()

	received := 0
	for {
		_, more := <-states
		if !more {
			break
		}
		received++
	}
	s.Require().LessOrEqual(received, 10)
}
