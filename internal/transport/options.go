package transport

import (
	"context"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/quizdeck/quizdeck-cli/internal/backoff"
	"github.com/quizdeck/quizdeck-cli/pkg/protocol"
)

type Option func(*Manager)

func WithContext(ctx context.Context) Option {
	return func(m *Manager) {
		m.ctx = ctx
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

func WithClock(clock clockwork.Clock) Option {
	return func(m *Manager) {
		m.clock = clock
	}
}

func WithDialer(dialer *websocket.Dialer) Option {
	return func(m *Manager) {
		m.dialer = dialer
	}
}

func WithIdentity(identity Identity) Option {
	return func(m *Manager) {
		m.identity = identity
	}
}

func WithServerURL(serverURL string) Option {
	return func(m *Manager) {
		m.serverURL = serverURL
	}
}

func WithEvent(eventID protocol.EventID, sessionCode string) Option {
	return func(m *Manager) {
		m.eventID = eventID
		m.sessionCode = sessionCode
	}
}

func WithAutoReconnect(enabled bool) Option {
	return func(m *Manager) {
		m.autoReconnect = enabled
	}
}

func WithBackoffConfig(config backoff.Config) Option {
	return func(m *Manager) {
		m.backoffConfig = &config
	}
}
