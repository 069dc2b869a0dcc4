package connectionview

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quizdeck/quizdeck-cli/internal/transport"
	"github.com/quizdeck/quizdeck-cli/internal/view/messages"
)

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00E676"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEA00"))
	dangerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5722"))
)

type Model struct {
	status    transport.ConnectionStatus
	countdown time.Duration
}

func New() Model {
	return Model{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) Model {
	switch msg := msg.(type) {
	case messages.ConnectionStatus:
		m.status = msg.Status
		if m.status.State == transport.StateReconnecting {
			// Seed from the scheduled delay until the first tick lands.
			if m.countdown == 0 {
				m.countdown = m.status.NextAttemptIn
			}
		} else {
			m.countdown = 0
		}
	case messages.ReconnectCountdown:
		m.countdown = msg.TimeLeft
	}
	return m
}

func (m Model) View() string {
	marker := "●"
	switch m.status.State {
	case transport.StateConnected:
		marker = okStyle.Render(marker)
	case transport.StateConnecting, transport.StateReconnecting:
		marker = warnStyle.Render(marker)
	default:
		marker = dangerStyle.Render(marker)
	}

	text := fmt.Sprintf(" %s", m.status.State)
	if m.status.State == transport.StateReconnecting {
		text += fmt.Sprintf(" (attempt %d", m.status.Attempt)
		if m.countdown > 0 {
			text += fmt.Sprintf(", retry in %.1fs", m.countdown.Seconds())
		}
		text += ")"
	}

	return lipgloss.JoinHorizontal(lipgloss.Left, marker, text)
}
