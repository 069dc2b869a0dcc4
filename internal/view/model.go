package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quizdeck/quizdeck-cli/internal/app"
	"github.com/quizdeck/quizdeck-cli/internal/audio"
	"github.com/quizdeck/quizdeck-cli/internal/config"
	"github.com/quizdeck/quizdeck-cli/internal/transport"
	"github.com/quizdeck/quizdeck-cli/internal/view/commands"
	"github.com/quizdeck/quizdeck-cli/internal/view/components/boardview"
	"github.com/quizdeck/quizdeck-cli/internal/view/components/connectionview"
	"github.com/quizdeck/quizdeck-cli/internal/view/components/eventhandler"
	"github.com/quizdeck/quizdeck-cli/internal/view/components/noticeview"
	"github.com/quizdeck/quizdeck-cli/internal/view/components/questionview"
	"github.com/quizdeck/quizdeck-cli/internal/view/components/rosterview"
	"github.com/quizdeck/quizdeck-cli/internal/view/components/userinput"
	"github.com/quizdeck/quizdeck-cli/internal/view/messages"
	"github.com/quizdeck/quizdeck-cli/internal/view/states"
	"github.com/quizdeck/quizdeck-cli/internal/view/update"
	"github.com/quizdeck/quizdeck-cli/pkg/protocol"
	"github.com/quizdeck/quizdeck-cli/pkg/session"
)

type model struct {
	app *app.App

	// Actual state that will be rendered in components.
	// This is filled from app during Update stage.
	state            states.AppState
	fatalError       error
	sessionState     *session.State
	eventID          protocol.EventID
	connectionStatus transport.ConnectionStatus

	// UI components state
	commandMode    bool
	eventViewState states.EventView
	recording      bool
	lastChunk      *audio.ChunkResult

	connectionView        connectionview.Model
	rosterView            rosterview.Model
	questionView          questionview.Model
	boardView             boardview.Model
	noticeView            noticeview.Model
	sessionEventHandler   eventhandler.Model[*session.State, messages.SessionStateMessage]
	transportEventHandler eventhandler.Model[transport.ConnectionStatus, messages.ConnectionStatus]
	countdownEventHandler eventhandler.Model[time.Duration, messages.ReconnectCountdown]

	chunkResults chan audio.ChunkResult

	// Components to be rendered
	input   userinput.Model
	spinner spinner.Model
}

func initialModel(a *app.App) model {
	return model{
		app: a,
		// Initial model values
		state:        states.Initializing,
		sessionState: nil,
		eventID:      "",
		// UI components state
		commandMode:    false,
		eventViewState: states.QuizView,
		// View components
		input:          userinput.New(false),
		spinner:        createSpinner(),
		connectionView: connectionview.New(),
		rosterView:     rosterview.New(),
		questionView:   questionview.New(),
		boardView:      boardview.New(),
		noticeView:     noticeview.New(),
		// Other
		chunkResults: make(chan audio.ChunkResult, 8),
	}
}

func createSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return s
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.input.Init(),
		m.spinner.Tick,
		m.connectionView.Init(),
		m.rosterView.Init(),
		m.questionView.Init(),
		m.boardView.Init(),
		m.noticeView.Init(),
		commands.InitializeApp(m.app),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := update.NewUpdateCommands()

	switchToState := func(state states.AppState) {
		m.state = state
		cmds.AppendMessage(messages.AppStateMessage{State: state})
	}

	switch msg := msg.(type) {
	case messages.FatalErrorMessage:
		m.fatalError = msg.Err

	case messages.AppStateFinishedMessage:
		switch msg.State {
		case states.Initializing:
			cmds.AppendMessage(messages.UserIDMessage{
				UserID: m.app.UserID(),
			})
			if m.app.DisplayName() == "" {
				switchToState(states.InputDisplayName)
			} else {
				switchToState(states.Lobby)
			}
		case states.InputDisplayName:
			switchToState(states.Lobby)
		default:
		}

	case messages.AppStateMessage:
		if msg.State == states.Lobby && config.InitialAction() != "" {
			m.input.SetValue(config.InitialAction())
			cmds.AppendCommand(ProcessInput(&m))
		}

	case messages.EventJoin:
		m.eventID = msg.EventID
		switchToState(states.Playing)

		convert := func(status transport.ConnectionStatus) messages.ConnectionStatus {
			return messages.ConnectionStatus{Status: status}
		}
		m.transportEventHandler = eventhandler.New[transport.ConnectionStatus, messages.ConnectionStatus](convert)
		cmds.AppendCommand(m.transportEventHandler.Init(
			m.app.Transport.SubscribeToConnectionStatus(),
			m.app.Transport.Status(),
		))

		convert2 := func(state *session.State) messages.SessionStateMessage {
			return messages.SessionStateMessage{State: state}
		}
		m.sessionEventHandler = eventhandler.New[*session.State, messages.SessionStateMessage](convert2)
		cmds.AppendCommand(m.sessionEventHandler.Init(
			m.app.Session.SubscribeToStateChanges(),
			m.app.Session.CurrentState(),
		))

		convert3 := func(timeLeft time.Duration) messages.ReconnectCountdown {
			return messages.ReconnectCountdown{TimeLeft: timeLeft}
		}
		m.countdownEventHandler = eventhandler.New[time.Duration, messages.ReconnectCountdown](convert3)
		cmds.AppendCommand(m.countdownEventHandler.Init(
			m.app.Transport.SubscribeToCountdown(),
			0,
		))

	case messages.EventLeave:
		m.eventID = ""
		m.sessionState = nil
		m.recording = false
		m.lastChunk = nil
		switchToState(states.Lobby)

	case messages.SessionStateMessage:
		m.sessionState = msg.State

	case messages.ConnectionStatus:
		m.connectionStatus = msg.Status

	case messages.CommandModeChange:
		m.commandMode = msg.CommandMode

	case messages.RecordingChange:
		m.recording = msg.Recording
		if msg.Recording {
			m.lastChunk = nil
			cmds.AppendCommand(commands.WaitForChunkResult(m.chunkResults))
		}

	case messages.ChunkUploadResult:
		result := msg.Result
		m.lastChunk = &result
		if m.recording {
			cmds.AppendCommand(commands.WaitForChunkResult(m.chunkResults))
		}

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			cmds.AppendCommand(commands.QuitApp(m.app))
		case tea.KeyEnter:
			if m.input.Focused() {
				cmds.AppendCommand(ProcessUserInput(&m))
			}
		case tea.KeyTab:
			if m.state == states.Playing {
				toggleEventView(&m)
			}
		case tea.KeyShiftTab:
			cmds.AppendMessage(messages.CommandModeChange{
				CommandMode: !m.commandMode,
			})
		default:
		}

		if m.input.Focused() {
			break
		}

		cmds.AppendCommand(m.handleShortcut(msg))
	}

	m.input, cmds.InputCommand = m.input.Update(msg)
	m.spinner, cmds.SpinnerCommand = m.spinner.Update(msg)
	m.connectionView = m.connectionView.Update(msg)
	m.rosterView = m.rosterView.Update(msg)
	m.questionView = m.questionView.Update(msg)
	m.boardView = m.boardView.Update(msg)
	m.noticeView = m.noticeView.Update(msg)
	m.sessionEventHandler, cmds.SessionEventHandlerCommand = m.sessionEventHandler.Update(msg)
	m.transportEventHandler, cmds.TransportEventHandlerCommand = m.transportEventHandler.Update(msg)
	m.countdownEventHandler, cmds.CountdownEventHandlerCommand = m.countdownEventHandler.Update(msg)

	return m, cmds.Batch()
}

func (m *model) handleShortcut(msg tea.KeyMsg) tea.Cmd {
	if m.state != states.Playing || m.app.Session == nil {
		return nil
	}

	switch {
	case key.Matches(msg, commands.DefaultKeyMap.LeaveEvent):
		return commands.LeaveEvent(m.app)
	case key.Matches(msg, commands.DefaultKeyMap.AnswerA):
		return commands.SubmitAnswer(m.app.Session, "A")
	case key.Matches(msg, commands.DefaultKeyMap.AnswerB):
		return commands.SubmitAnswer(m.app.Session, "B")
	case key.Matches(msg, commands.DefaultKeyMap.AnswerC):
		return commands.SubmitAnswer(m.app.Session, "C")
	case key.Matches(msg, commands.DefaultKeyMap.AnswerD):
		return commands.SubmitAnswer(m.app.Session, "D")
	case key.Matches(msg, commands.DefaultKeyMap.NextQuestion):
		return commands.NextQuestion(m.app.Session)
	case key.Matches(msg, commands.DefaultKeyMap.RevealAnswer):
		return commands.RevealAnswer(m.app.Session)
	case key.Matches(msg, commands.DefaultKeyMap.ShowLeaderboard):
		return commands.ShowLeaderboard(m.app.Session)
	}

	return nil
}

func (m model) View() string {
	if m.fatalError != nil {
		return fmt.Sprintf(" ☠️ fatal error: %s\n%s", m.fatalError, renderLogPath())
	}

	view := "\n"
	if config.Debug() {
		view += fmt.Sprintf("%s\n\n", renderLogPath())
	}
	view += m.renderAppState()

	return lipgloss.JoinHorizontal(lipgloss.Left, "  ", view)
}

func toggleEventView(m *model) {
	switch m.eventViewState {
	case states.QuizView:
		m.eventViewState = states.RosterView
	case states.RosterView:
		m.eventViewState = states.QuizView
	}
}

// Ensure that model fulfils the tea.Model interface at compile time.
var _ tea.Model = (*model)(nil)
