package rosterview

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/exp/maps"

	"github.com/quizdeck/quizdeck-cli/internal/view/messages"
	"github.com/quizdeck/quizdeck-cli/pkg/protocol"
	"github.com/quizdeck/quizdeck-cli/pkg/session"
)

var (
	onlineStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00E676"))
	offlineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#757575"))
	presenterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))
)

type Model struct {
	roster    session.Roster
	presenter *session.Presenter
	myID      protocol.UserID
}

func New() Model {
	return Model{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) Model {
	switch msg := msg.(type) {
	case messages.UserIDMessage:
		m.myID = msg.UserID
	case messages.SessionStateMessage:
		if msg.State != nil {
			m.roster = msg.State.Participants
			m.presenter = msg.State.CurrentPresenter
		}
	}
	return m
}

func (m Model) View() string {
	if len(m.roster) == 0 {
		return "  No participants yet"
	}

	participants := maps.Values(m.roster)
	sort.Slice(participants, func(i, j int) bool {
		return participants[i].Username < participants[j].Username
	})

	var view strings.Builder
	view.WriteString(fmt.Sprintf("  Participants (%d online):\n", m.roster.OnlineCount()))

	for _, participant := range participants {
		marker := onlineStyle.Render("●")
		if !participant.Online {
			marker = offlineStyle.Render("○")
		}

		name := participant.Username
		if participant.ID == m.myID {
			name += " (you)"
		}
		if m.presenter != nil && participant.ID == m.presenter.ID {
			name += presenterStyle.Render(" (presenter)")
		}

		view.WriteString(fmt.Sprintf("  %s %s%s\n", marker, name, renderStatus(participant)))
	}

	return view.String()
}

func renderStatus(participant protocol.Participant) string {
	switch participant.JoinStatus {
	case protocol.JoinStatusWaitingSegment:
		return offlineStyle.Render("  waiting")
	case protocol.JoinStatusSegmentComplete:
		return offlineStyle.Render("  done")
	}
	return ""
}
