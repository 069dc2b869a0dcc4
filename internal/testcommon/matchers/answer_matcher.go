package matchers

import (
	"encoding/json"
	"testing"

	"github.com/quizdeck/quizdeck-cli/pkg/protocol"
)

type AnswerMatcher struct {
	MessageMatcher
	questionID protocol.QuestionID
	answer     string
}

func NewAnswerMatcher(t *testing.T, questionID protocol.QuestionID, answer string) *AnswerMatcher {
	return &AnswerMatcher{
		MessageMatcher: *NewMessageMatcher(t),
		questionID:     questionID,
		answer:         answer,
	}
}

func (m *AnswerMatcher) Matches(x interface{}) bool {
	if !m.MessageMatcher.Matches(x) {
		return false
	}

	if m.message.Type != protocol.MessageTypeAnswer {
		return false
	}

	var answerMessage protocol.AnswerMessage
	if err := json.Unmarshal(m.payload, &answerMessage); err != nil {
		return false
	}

	if answerMessage.QuestionID != m.questionID {
		return false
	}
	if answerMessage.SelectedAnswer != m.answer {
		return false
	}
	if answerMessage.ResponseTimeMs < 0 {
		return false
	}

	m.triggered <- answerMessage
	return true
}

func (m *AnswerMatcher) String() string {
	return "is answer protocol message"
}

func (m *AnswerMatcher) Wait() protocol.AnswerMessage {
	return m.MessageMatcher.Wait().(protocol.AnswerMessage)
}
