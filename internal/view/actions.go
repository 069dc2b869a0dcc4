package view

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/quizdeck/quizdeck-cli/internal/config"
	"github.com/quizdeck/quizdeck-cli/internal/view/commands"
	"github.com/quizdeck/quizdeck-cli/internal/view/messages"
	"github.com/quizdeck/quizdeck-cli/internal/view/states"
	"github.com/quizdeck/quizdeck-cli/pkg/protocol"
	"github.com/quizdeck/quizdeck-cli/pkg/session"
)

type Action string

const (
	Rename     Action = "rename"
	Join       Action = "join"
	Leave      Action = "leave"
	Answer     Action = "answer"
	Start      Action = "start"
	Next       Action = "next"
	Reveal     Action = "reveal"
	Board      Action = "board"
	End        Action = "end"
	Pass       Action = "pass"
	Pick       Action = "pick"
	Assign     Action = "assign"
	Present    Action = "present"
	Resume     Action = "resume"
	MegaQuiz   Action = "megaquiz"
	Skip       Action = "skip"
	Record     Action = "record"
	StopRecord Action = "stoprecord"
	Retry      Action = "retry"
	Exit       Action = "exit"
)

type actionFunc func(m *model, args []string) tea.Cmd

var actions = map[Action]actionFunc{
	Rename:     runRenameAction,
	Join:       runJoinAction,
	Leave:      runLeaveAction,
	Answer:     runAnswerAction,
	Start:      runStartAction,
	Next:       runNextAction,
	Reveal:     runRevealAction,
	Board:      runBoardAction,
	End:        runEndAction,
	Pass:       runPassAction,
	Pick:       runPickAction,
	Assign:     runAssignAction,
	Present:    runPresentAction,
	Resume:     runResumeAction,
	MegaQuiz:   runMegaQuizAction,
	Skip:       runSkipAction,
	Record:     runRecordAction,
	StopRecord: runStopRecordAction,
	Retry:      runRetryAction,
	Exit:       runExitAction,
}

func processDisplayNameInput(m *model, displayName string) tea.Cmd {
	return func() tea.Msg {
		err := m.app.RenameUser(displayName)
		if err != nil {
			return messages.NewErrorMessage(err)
		}
		return messages.AppStateFinishedMessage{
			State: states.InputDisplayName,
		}
	}
}

func runRenameAction(m *model, args []string) tea.Cmd {
	return func() tea.Msg {
		if len(args) == 0 {
			err := errors.New("empty user")
			return messages.NewErrorMessage(err)
		}
		err := m.app.RenameUser(args[0])
		return messages.NewErrorMessage(err)
	}
}

func runJoinAction(m *model, args []string) tea.Cmd {
	return func() tea.Msg {
		if len(args) == 0 {
			err := errors.New("no join code argument provided")
			return messages.NewErrorMessage(err)
		}
		return commands.JoinEvent(m.app, args[0], m.isHost())()
	}
}

func runLeaveAction(m *model, args []string) tea.Cmd {
	return commands.LeaveEvent(m.app)
}

func runAnswerAction(m *model, args []string) tea.Cmd {
	return func() tea.Msg {
		if m.app.Session == nil {
			return messages.NewErrorMessage(errors.New("not in an event"))
		}
		if len(args) == 0 {
			err := errors.New("empty answer")
			return messages.NewErrorMessage(err)
		}
		answer := strings.ToUpper(args[0])
		return commands.SubmitAnswer(m.app.Session, answer)()
	}
}

func runStartAction(m *model, args []string) tea.Cmd {
	return requireSession(m, commands.StartGame)
}

func runNextAction(m *model, args []string) tea.Cmd {
	return requireSession(m, commands.NextQuestion)
}

func runRevealAction(m *model, args []string) tea.Cmd {
	return requireSession(m, commands.RevealAnswer)
}

func runBoardAction(m *model, args []string) tea.Cmd {
	return requireSession(m, commands.ShowLeaderboard)
}

func runEndAction(m *model, args []string) tea.Cmd {
	return requireSession(m, commands.EndGame)
}

func runPassAction(m *model, args []string) tea.Cmd {
	return func() tea.Msg {
		if m.app.Session == nil {
			return messages.NewErrorMessage(errors.New("not in an event"))
		}
		if len(args) == 0 {
			err := errors.New("no user id argument provided")
			return messages.NewErrorMessage(err)
		}
		next := protocol.UserID(args[0])
		return commands.PassPresenter(m.app.Session, next)()
	}
}

func runPickAction(m *model, args []string) tea.Cmd {
	return func() tea.Msg {
		if m.app.Session == nil {
			return messages.NewErrorMessage(errors.New("not in an event"))
		}
		if len(args) == 0 {
			err := errors.New("no user id argument provided")
			return messages.NewErrorMessage(err)
		}
		presenter := protocol.UserID(args[0])
		return commands.SelectPresenter(m.app.Session, presenter)()
	}
}

func runAssignAction(m *model, args []string) tea.Cmd {
	return func() tea.Msg {
		if m.app.Session == nil {
			return messages.NewErrorMessage(errors.New("not in an event"))
		}
		if len(args) < 2 {
			err := errors.New("usage: assign <user id> <segment id>")
			return messages.NewErrorMessage(err)
		}
		presenter := protocol.UserID(args[0])
		segmentID := protocol.SegmentID(args[1])
		return commands.AdminSelectPresenter(m.app.Session, presenter, segmentID)()
	}
}

func runPresentAction(m *model, args []string) tea.Cmd {
	return requireSession(m, commands.StartPresentation)
}

func runResumeAction(m *model, args []string) tea.Cmd {
	return requireSession(m, commands.ResumeSegment)
}

func runMegaQuizAction(m *model, args []string) tea.Cmd {
	return func() tea.Msg {
		if m.app.Session == nil {
			return messages.NewErrorMessage(errors.New("not in an event"))
		}

		questionCount := 0
		if len(args) > 0 {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				err = errors.Wrapf(err, "invalid question count: %s", args[0])
				return messages.NewErrorMessage(err)
			}
			questionCount = count
		}

		return commands.StartMegaQuiz(m.app.Session, questionCount)()
	}
}

func runSkipAction(m *model, args []string) tea.Cmd {
	return requireSession(m, commands.SkipMegaQuiz)
}

func runRecordAction(m *model, args []string) tea.Cmd {
	return func() tea.Msg {
		segmentID := m.currentSegmentID()
		if len(args) > 0 {
			segmentID = protocol.SegmentID(args[0])
		}
		if segmentID == "" {
			err := errors.New("no segment to record")
			return messages.NewErrorMessage(err)
		}
		return commands.StartRecording(m.app, segmentID, m.chunkResults)()
	}
}

func runStopRecordAction(m *model, args []string) tea.Cmd {
	return commands.StopRecording(m.app)
}

func runRetryAction(m *model, args []string) tea.Cmd {
	return func() tea.Msg {
		if m.app.Transport == nil {
			return messages.NewErrorMessage(errors.New("not in an event"))
		}
		m.app.Transport.Reset()
		err := m.app.Transport.Connect()
		return messages.NewErrorMessage(err)
	}
}

func runExitAction(m *model, args []string) tea.Cmd {
	return commands.QuitApp(m.app)
}

func requireSession(m *model, command func(*session.Session) tea.Cmd) tea.Cmd {
	return func() tea.Msg {
		if m.app.Session == nil {
			return messages.NewErrorMessage(errors.New("not in an event"))
		}
		return command(m.app.Session)()
	}
}

func (m *model) isHost() bool {
	return config.Host()
}

func (m *model) currentSegmentID() protocol.SegmentID {
	if m.sessionState == nil {
		return ""
	}
	return m.sessionState.SegmentID
}
