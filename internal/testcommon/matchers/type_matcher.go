package matchers

import (
	"fmt"
	"testing"

	"github.com/quizdeck/quizdeck-cli/pkg/protocol"
)

// TypeMatcher accepts any outbound message of the given envelope type.
type TypeMatcher struct {
	MessageMatcher
	messageType protocol.MessageType
}

func NewTypeMatcher(t *testing.T, messageType protocol.MessageType) *TypeMatcher {
	return &TypeMatcher{
		MessageMatcher: *NewMessageMatcher(t),
		messageType:    messageType,
	}
}

func (m *TypeMatcher) Matches(x interface{}) bool {
	if !m.MessageMatcher.Matches(x) {
		return false
	}

	if m.message.Type != m.messageType {
		return false
	}

	m.triggered <- *m.message
	return true
}

func (m *TypeMatcher) String() string {
	return fmt.Sprintf("is %s protocol message", m.messageType)
}
