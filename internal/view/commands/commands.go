package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/quizdeck/quizdeck-cli/internal/app"
	"github.com/quizdeck/quizdeck-cli/internal/audio"
	"github.com/quizdeck/quizdeck-cli/internal/view/messages"
	"github.com/quizdeck/quizdeck-cli/internal/view/states"
	"github.com/quizdeck/quizdeck-cli/pkg/protocol"
	"github.com/quizdeck/quizdeck-cli/pkg/session"
)

func InitializeApp(a *app.App) tea.Cmd {
	return func() tea.Msg {
		err := a.Initialize()
		if err != nil {
			return messages.FatalErrorMessage{
				Err: errors.Wrap(err, "failed to initialize app"),
			}
		}

		return messages.AppStateFinishedMessage{State: states.Initializing}
	}
}

func JoinEvent(a *app.App, code string, isHost bool) tea.Cmd {
	return func() tea.Msg {
		err := a.JoinEvent(code, isHost)
		if err != nil {
			return messages.NewErrorMessage(err)
		}
		return messages.EventJoin{
			EventID: a.Transport.EventID(),
			IsHost:  isHost,
		}
	}
}

func LeaveEvent(a *app.App) tea.Cmd {
	return func() tea.Msg {
		a.LeaveEvent()
		return messages.EventLeave{}
	}
}

func SubmitAnswer(quizSession *session.Session, answer string) tea.Cmd {
	return func() tea.Msg {
		err := quizSession.SubmitAnswer(answer)
		return messages.NewErrorMessage(err)
	}
}

func StartGame(quizSession *session.Session) tea.Cmd {
	return func() tea.Msg {
		err := quizSession.StartGame()
		return messages.NewErrorMessage(err)
	}
}

func NextQuestion(quizSession *session.Session) tea.Cmd {
	return func() tea.Msg {
		err := quizSession.NextQuestion()
		return messages.NewErrorMessage(err)
	}
}

func RevealAnswer(quizSession *session.Session) tea.Cmd {
	return func() tea.Msg {
		err := quizSession.RevealAnswer()
		return messages.NewErrorMessage(err)
	}
}

func ShowLeaderboard(quizSession *session.Session) tea.Cmd {
	return func() tea.Msg {
		err := quizSession.ShowLeaderboard()
		return messages.NewErrorMessage(err)
	}
}

func EndGame(quizSession *session.Session) tea.Cmd {
	return func() tea.Msg {
		err := quizSession.EndGame()
		return messages.NewErrorMessage(err)
	}
}

func PassPresenter(quizSession *session.Session, next protocol.UserID) tea.Cmd {
	return func() tea.Msg {
		err := quizSession.PassPresenter(next)
		return messages.NewErrorMessage(err)
	}
}

func SelectPresenter(quizSession *session.Session, presenter protocol.UserID) tea.Cmd {
	return func() tea.Msg {
		err := quizSession.SelectPresenter(presenter)
		return messages.NewErrorMessage(err)
	}
}

func AdminSelectPresenter(quizSession *session.Session, presenter protocol.UserID, segmentID protocol.SegmentID) tea.Cmd {
	return func() tea.Msg {
		err := quizSession.AdminSelectPresenter(presenter, segmentID)
		return messages.NewErrorMessage(err)
	}
}

func ResumeSegment(quizSession *session.Session) tea.Cmd {
	return func() tea.Msg {
		err := quizSession.ResumeSegment()
		return messages.NewErrorMessage(err)
	}
}

func StartPresentation(quizSession *session.Session) tea.Cmd {
	return func() tea.Msg {
		err := quizSession.StartPresentation()
		return messages.NewErrorMessage(err)
	}
}

func StartMegaQuiz(quizSession *session.Session, questionCount int) tea.Cmd {
	return func() tea.Msg {
		err := quizSession.StartMegaQuiz(questionCount)
		return messages.NewErrorMessage(err)
	}
}

func SkipMegaQuiz(quizSession *session.Session) tea.Cmd {
	return func() tea.Msg {
		err := quizSession.SkipMegaQuiz()
		return messages.NewErrorMessage(err)
	}
}

func StartRecording(a *app.App, segmentID protocol.SegmentID, results chan audio.ChunkResult) tea.Cmd {
	return func() tea.Msg {
		err := a.StartRecording(segmentID, func(result audio.ChunkResult) {
			select {
			case results <- result:
			default:
			}
		})
		if err != nil {
			return messages.NewErrorMessage(err)
		}
		return messages.RecordingChange{Recording: true, SegmentID: segmentID}
	}
}

func StopRecording(a *app.App) tea.Cmd {
	return func() tea.Msg {
		a.StopRecording()
		return messages.RecordingChange{Recording: false}
	}
}

func WaitForChunkResult(results chan audio.ChunkResult) tea.Cmd {
	return func() tea.Msg {
		result, more := <-results
		if !more {
			return nil
		}
		return messages.ChunkUploadResult{Result: result}
	}
}

func QuitApp(a *app.App) tea.Cmd {
	return func() tea.Msg {
		if a != nil {
			a.Stop()
		}
		return tea.Quit()
	}
}
