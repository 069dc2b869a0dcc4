package connectionview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/quizdeck/quizdeck-cli/internal/transport"
	"github.com/quizdeck/quizdeck-cli/internal/view/messages"
)

func TestCountdownSeededFromStatus(t *testing.T) {
	m := New()

	m = m.Update(messages.ConnectionStatus{Status: transport.ConnectionStatus{
		State:         transport.StateReconnecting,
		Attempt:       2,
		NextAttemptIn: 3 * time.Second,
	}})

	// No countdown tick arrived yet, the scheduled delay is shown.
	require.Contains(t, m.View(), "attempt 2")
	require.Contains(t, m.View(), "retry in 3.0s")

	m = m.Update(messages.ReconnectCountdown{TimeLeft: 2600 * time.Millisecond})
	require.Contains(t, m.View(), "retry in 2.6s")

	m = m.Update(messages.ConnectionStatus{Status: transport.ConnectionStatus{
		State: transport.StateConnected,
	}})
	require.NotContains(t, m.View(), "retry in")
}
