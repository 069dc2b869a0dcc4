package noticeview

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quizdeck/quizdeck-cli/internal/view/messages"
	"github.com/quizdeck/quizdeck-cli/pkg/session"
)

var (
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#d78700"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEA00"))
)

// Model shows the last command error and the current session notice.
// The notice comes from reduced server state, the error from local
// command execution.
type Model struct {
	errorMessage string
	notice       session.Notice
}

func New() Model {
	return Model{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) Model {
	switch msg := msg.(type) {
	case messages.ErrorMessage:
		if msg.Err == nil {
			m.errorMessage = ""
		} else {
			m.errorMessage = msg.Err.Error()
		}
	case messages.SessionStateMessage:
		if msg.State != nil {
			m.notice = msg.State.Notice
		}
	}
	return m
}

func (m Model) View() string {
	lines := ""
	if m.notice.Kind != session.NoticeNone && m.notice.Text != "" {
		lines = noticeStyle.Render("  " + m.notice.Text)
	}
	if m.errorMessage != "" {
		if lines != "" {
			lines += "\n"
		}
		lines += errorStyle.Render("  " + m.errorMessage)
	}
	return lines
}
