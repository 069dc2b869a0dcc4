package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quizdeck/quizdeck-cli/internal/config"
	"github.com/quizdeck/quizdeck-cli/internal/view/states"
	"github.com/quizdeck/quizdeck-cli/pkg/protocol"
)

var (
	foregroundShadeStyle = lipgloss.NewStyle().Foreground(config.ForegroundShadeColor)
	pauseStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEA00")).Bold(true)
	recordStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5722"))
)

func (m model) renderAppState() string {
	switch m.state {
	case states.Idle:
		return "nothing is happening. boring life."
	case states.Initializing:
		return m.spinner.View() + " Starting QuizDeck..."
	case states.InputDisplayName:
		return m.renderDisplayNameInput()
	case states.Lobby:
		return m.renderLobby()
	case states.Playing:
		return m.renderEvent()
	}

	return "unknown app state"
}

func (m model) renderDisplayNameInput() string {
	return lipgloss.JoinVertical(
		lipgloss.Top,
		m.input.View(),
		m.noticeView.View(),
	)
}

func (m model) renderLobby() string {
	return lipgloss.JoinVertical(lipgloss.Top,
		"  Join an event with its join code ...",
		"",
		m.input.View(),
		m.noticeView.View(),
	)
}

func (m model) renderEvent() string {
	return lipgloss.JoinVertical(lipgloss.Top,
		m.connectionView.View(),
		m.renderEventID(),
		"\n"+m.renderEventView(),
		m.renderRecording(),
		m.renderActionInput(),
		m.noticeView.View(),
	)
}

func (m model) renderEventID() string {
	var hostString string
	if m.app.Session != nil && m.app.Session.IsHost() {
		hostString = foregroundShadeStyle.Render(" (host)")
	}
	return "  Event: " + m.eventID.String() + hostString
}

func (m model) renderEventView() string {
	switch m.eventViewState {
	case states.QuizView:
		return m.renderQuizView()
	case states.RosterView:
		return m.rosterView.View()
	default:
		return fmt.Sprintf("unknown view: %d", m.eventViewState)
	}
}

func (m model) renderQuizView() string {
	if m.sessionState == nil {
		return fmt.Sprintf("\n%s Waiting for initial event state ...\n",
			m.spinner.View(),
		)
	}

	if m.sessionState.Paused() {
		return m.renderPause()
	}

	switch m.sessionState.Phase {
	case protocol.PhaseNotStarted:
		phaseLine := "  Waiting for the quiz to start ..."
		if m.sessionState.WaitingForPresenter {
			phaseLine = "  Waiting for a presenter ..."
		}
		return phaseLine
	case protocol.PhaseShowingQuestion, protocol.PhaseRevealingAnswer:
		return m.questionView.View()
	case protocol.PhaseMegaQuizReady:
		return m.renderMegaQuizReady()
	case protocol.PhaseMegaQuiz:
		return m.questionView.View()
	default:
		return m.boardView.View()
	}
}

func (m model) renderPause() string {
	reason := "The quiz is paused"
	switch m.sessionState.PauseReason {
	case protocol.PauseReasonAllDisconnected:
		reason = "All participants disconnected, quiz paused"
	case protocol.PauseReasonNoParticipants:
		reason = "No participants in the quiz, paused"
	case protocol.PauseReasonPresenterDisconnected:
		reason = "The presenter disconnected, quiz paused"
	}
	return pauseStyle.Render("  ⏸ " + reason)
}

func (m model) renderMegaQuizReady() string {
	megaQuiz := m.sessionState.MegaQuiz
	if megaQuiz == nil {
		return "  Mega quiz is ready"
	}
	return fmt.Sprintf("  Mega quiz is ready: %d of %d questions available",
		megaQuiz.QuestionCount,
		megaQuiz.AvailableQuestions,
	)
}

func (m model) renderRecording() string {
	if !m.recording {
		return ""
	}
	line := recordStyle.Render("  ⏺ recording")
	if m.lastChunk != nil {
		if m.lastChunk.Success {
			line += foregroundShadeStyle.Render(fmt.Sprintf("  chunk %d uploaded", m.lastChunk.ChunkIndex))
		} else {
			line += recordStyle.Render(fmt.Sprintf("  chunk %d failed", m.lastChunk.ChunkIndex))
		}
	}
	return line
}

func (m model) renderActionInput() string {
	if m.commandMode {
		return m.input.View()
	}
	return m.renderShortcuts()
}

func (m model) renderShortcuts() string {
	shortcuts := []string{"[1-4] answer"}
	if m.app.Session != nil && m.app.Session.CanControlPresenter() {
		shortcuts = append(shortcuts, "[N] next", "[R] reveal", "[L] leaderboard")
	}
	shortcuts = append(shortcuts, "[Q] leave", "[Shift+Tab] commands")
	return foregroundShadeStyle.Render("  " + strings.Join(shortcuts, "  "))
}

func renderLogPath() string {
	path := strings.Replace(config.LogFilePath, " ", "%20", -1)
	return fmt.Sprintf("Log: file:///%s", path)
}
