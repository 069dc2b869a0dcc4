package app

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/quizdeck/quizdeck-cli/internal/audio"
	"github.com/quizdeck/quizdeck-cli/internal/config"
	"github.com/quizdeck/quizdeck-cli/internal/transport"
	"github.com/quizdeck/quizdeck-cli/pkg/protocol"
	"github.com/quizdeck/quizdeck-cli/pkg/session"
	"github.com/quizdeck/quizdeck-cli/pkg/storage"
)

// App wires the identity store, the connection manager, the session and
// the audio uploader for one running client.
type App struct {
	Session   *session.Session
	Transport *transport.Manager

	storage     storage.Service
	identity    *identity
	displayName string
	recorder    *audio.Recorder

	ctx  context.Context
	quit context.CancelFunc
}

func NewApp() *App {
	ctx, quit := context.WithCancel(context.Background())

	return &App{
		ctx:  ctx,
		quit: quit,
	}
}

func (a *App) Initialize() error {
	if !config.Anonymous() {
		a.storage = storage.NewLocalStorage("")
	}

	user, err := a.loadIdentity()
	if err != nil {
		return err
	}
	a.identity = user

	a.displayName = config.DisplayName()
	if a.displayName == "" && a.storage != nil {
		a.displayName = a.storage.DisplayName()
	}
	if a.displayName == "" && config.Anonymous() {
		// Nothing persisted to pull a name from, skip the prompt.
		a.displayName = config.GenerateDisplayName()
	}

	config.Logger.Info("app initialized", zap.String("userID", user.UserID().String()))
	return nil
}

func (a *App) UserID() protocol.UserID {
	return a.identity.UserID()
}

func (a *App) DisplayName() string {
	return a.displayName
}

func (a *App) RenameUser(name string) error {
	if name == "" {
		return errors.New("empty user")
	}
	if a.storage != nil {
		if err := a.storage.SetDisplayName(name); err != nil {
			return errors.Wrap(err, "failed to save display name")
		}
	}
	a.displayName = name
	return nil
}

// JoinEvent parses the join code, opens the event connection and starts
// the session bound to it.
func (a *App) JoinEvent(code string, isHost bool) error {
	if a.Transport != nil {
		return errors.New("leave the current event to join another one")
	}

	ticket, err := protocol.ParseJoinCode(code)
	if err != nil {
		return errors.Wrap(err, "failed to parse join code")
	}
	if !ticket.VersionSupported() {
		return errors.Errorf("unsupported join code version %d", ticket.Version)
	}

	manager := transport.NewManager(
		transport.WithContext(a.ctx),
		transport.WithLogger(config.Logger),
		transport.WithIdentity(a.identity),
		transport.WithServerURL(config.ServerURL()),
		transport.WithEvent(ticket.EventID, ticket.SessionCode),
	)
	if manager == nil {
		return errors.New("failed to create connection manager")
	}

	quizSession := session.NewSession([]session.Option{
		session.WithContext(a.ctx),
		session.WithTransport(manager),
		session.WithLogger(config.Logger),
		session.WithUserID(a.identity.UserID()),
		session.WithHost(isHost),
	})
	if quizSession == nil {
		manager.Stop()
		return errors.New("failed to create session")
	}

	a.Transport = manager
	a.Session = quizSession

	quizSession.Start()

	if err := manager.Connect(); err != nil {
		a.LeaveEvent()
		return errors.Wrap(err, "failed to connect")
	}

	return nil
}

func (a *App) LeaveEvent() {
	a.StopRecording()
	if a.Session != nil {
		a.Session.Stop()
		a.Session = nil
	}
	if a.Transport != nil {
		a.Transport.Stop()
		a.Transport = nil
	}
}

// StartRecording captures the microphone for the given segment and
// streams chunks to the server.
func (a *App) StartRecording(segmentID protocol.SegmentID, onResult audio.ResultCallback) error {
	if a.recorder != nil {
		return errors.New("recording is already running")
	}

	source, err := audio.NewMicrophoneSource(audio.DefaultBitrate, config.ChunkDuration)
	if err != nil {
		return errors.Wrap(err, "failed to start recording")
	}

	uploader := audio.NewUploader(config.Logger, nil, httpBaseURL(config.ServerURL()), a.identity.AuthToken)
	a.recorder = audio.NewRecorder(a.ctx, config.Logger, source, uploader, segmentID, onResult)
	a.recorder.Start()
	return nil
}

func (a *App) StopRecording() {
	if a.recorder == nil {
		return
	}
	a.recorder.Stop()
	a.recorder = nil
}

func (a *App) Recording() bool {
	return a.recorder != nil
}

func (a *App) Stop() {
	a.LeaveEvent()
	a.quit()
}

func (a *App) SessionState() *session.State {
	if a.Session == nil {
		return session.NewState()
	}
	return a.Session.CurrentState()
}

func (a *App) loadIdentity() (*identity, error) {
	user := &identity{}

	if a.storage != nil {
		if err := a.storage.Initialize(); err != nil {
			return nil, errors.Wrap(err, "failed to initialize storage")
		}
		user.userID = a.storage.UserID()
		user.token = a.storage.AuthToken()
	}

	if user.userID == "" {
		generated, err := session.GenerateUserID()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate user ID")
		}
		user.userID = generated

		if a.storage != nil {
			if err := a.storage.SetUserID(generated); err != nil {
				return nil, errors.Wrap(err, "failed to save user ID")
			}
		}
	}

	return user, nil
}

// identity is the narrow read-only view handed to the transport.
type identity struct {
	userID protocol.UserID
	token  string
}

func (i *identity) UserID() protocol.UserID {
	return i.userID
}

func (i *identity) AuthToken() string {
	return i.token
}

// httpBaseURL converts the websocket base URL into the HTTP one used by
// the chunk upload endpoint.
func httpBaseURL(serverURL string) string {
	switch {
	case len(serverURL) > 6 && serverURL[:6] == "wss://":
		return "https://" + serverURL[6:]
	case len(serverURL) > 5 && serverURL[:5] == "ws://":
		return "http://" + serverURL[5:]
	}
	return serverURL
}
