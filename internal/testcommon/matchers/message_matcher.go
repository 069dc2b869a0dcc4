package matchers

import (
	"testing"

	"github.com/quizdeck/quizdeck-cli/pkg/protocol"
)

// MessageMatcher accepts any outbound message struct that carries a
// valid envelope once marshalled.
type MessageMatcher struct {
	Matcher
	payload []byte
	message *protocol.Message
}

func NewMessageMatcher(t *testing.T) *MessageMatcher {
	return &MessageMatcher{
		Matcher: *NewMatcher(t),
	}
}

func (m *MessageMatcher) Matches(x interface{}) bool {
	m.message = nil
	m.payload = nil

	payload, err := protocol.Marshal(x)
	if err != nil {
		return false
	}
	m.payload = payload

	message, err := protocol.UnmarshalMessage(payload)
	if err != nil {
		return false
	}

	m.message = message
	return true
}

func (m *MessageMatcher) String() string {
	return "is protocol message"
}
