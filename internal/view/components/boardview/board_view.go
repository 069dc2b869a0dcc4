package boardview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quizdeck/quizdeck-cli/internal/view/messages"
	"github.com/quizdeck/quizdeck-cli/pkg/protocol"
	"github.com/quizdeck/quizdeck-cli/pkg/session"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	topStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEA00"))
	winnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00E676")).Bold(true)
)

type Model struct {
	state *session.State
}

func New() Model {
	return Model{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) Model {
	switch msg := msg.(type) {
	case messages.SessionStateMessage:
		m.state = msg.State
	}
	return m
}

func (m Model) View() string {
	if m.state == nil {
		return ""
	}

	switch m.state.Phase {
	case protocol.PhaseLeaderboard, protocol.PhaseBetweenQuestions:
		return renderBoard("Leaderboard", m.state.SegmentLeaderboard, nil)
	case protocol.PhaseSegmentComplete:
		return renderBoard("Segment results", m.state.SegmentLeaderboard, m.state.SegmentWinner)
	case protocol.PhaseEventComplete:
		return renderBoard("Final results", m.state.FinalLeaderboard, m.state.Winner)
	}

	return ""
}

func renderBoard(title string, board protocol.Leaderboard, winner *protocol.LeaderboardEntry) string {
	if len(board) == 0 {
		return ""
	}

	var view strings.Builder
	view.WriteString("  " + titleStyle.Render(title) + "\n")

	if winner != nil {
		view.WriteString("  " + winnerStyle.Render(fmt.Sprintf("🏆 %s", winner.Username)) + "\n")
	}

	for _, entry := range board {
		line := fmt.Sprintf("  %2d. %-20s %d", entry.Rank, entry.Username, entry.Score)
		if entry.Rank <= 3 {
			line = topStyle.Render(line)
		}
		view.WriteString(line + "\n")
	}

	return view.String()
}
