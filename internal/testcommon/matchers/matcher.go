package matchers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// waitTimeout bounds how long a test blocks on an expected outbound
// message before failing.
const waitTimeout = 2 * time.Second

// Matcher is the base for gomock matchers that need to hand the
// matched message back to the test goroutine.
type Matcher struct {
	t         *testing.T
	triggered chan any
}

func NewMatcher(t *testing.T) *Matcher {
	return &Matcher{
		t:         t,
		triggered: make(chan any, 16),
	}
}

// Wait blocks until a Matches call accepted a message and returns it.
func (m *Matcher) Wait() any {
	select {
	case <-time.After(waitTimeout):
		require.Fail(m.t, "timeout waiting for matched message")
		return nil
	case result := <-m.triggered:
		return result
	}
}
