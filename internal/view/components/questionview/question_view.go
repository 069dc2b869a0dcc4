package questionview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quizdeck/quizdeck-cli/internal/view/messages"
	"github.com/quizdeck/quizdeck-cli/pkg/session"
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	correctStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00E676"))
	wrongStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5722"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#757575"))
	myStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))
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
	if m.state == nil || m.state.Question == nil {
		return ""
	}

	question := m.state.Question
	var view strings.Builder

	view.WriteString(fmt.Sprintf("  Question %d/%d: %s\n",
		question.Number,
		question.TotalQuestions,
		questionStyle.Render(question.Text),
	))

	for index, answer := range question.Answers {
		letter := answerLetter(index)
		view.WriteString("    " + m.renderAnswer(letter, answer) + "\n")
	}

	view.WriteString("\n" + m.renderProgress())
	return view.String()
}

func (m Model) renderAnswer(letter, answer string) string {
	line := fmt.Sprintf("%s) %s", letter, answer)

	revealed := m.state.CorrectAnswer != ""
	if revealed {
		if count, ok := m.state.Distribution[letter]; ok {
			line += mutedStyle.Render(fmt.Sprintf("  [%d]", count))
		}
		switch letter {
		case m.state.CorrectAnswer:
			return correctStyle.Render(line + " ✓")
		case m.state.MyAnswer:
			return wrongStyle.Render(line + " ✗")
		}
		return mutedStyle.Render(line)
	}

	if letter == m.state.MyAnswer {
		return myStyle.Render(line + " ←")
	}
	return line
}

func (m Model) renderProgress() string {
	if m.state.CorrectAnswer != "" {
		return fmt.Sprintf("  Your score: %d", m.state.YourScore)
	}

	var parts []string
	if m.state.RemainingSeconds > 0 {
		parts = append(parts, fmt.Sprintf("%d seconds left", m.state.RemainingSeconds))
	}
	parts = append(parts, fmt.Sprintf("%d/%d answered", m.state.AnswerCount, m.state.TotalParticipants))

	if m.state.HasAnswered {
		parts = append(parts, "answer submitted")
	} else if m.state.AnswerLocked {
		parts = append(parts, "answering locked")
	}

	return mutedStyle.Render("  " + strings.Join(parts, ", "))
}

func answerLetter(index int) string {
	return string(rune('A' + index))
}
