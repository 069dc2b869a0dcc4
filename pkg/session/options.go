package session

import (
	"context"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/quizdeck/quizdeck-cli/internal/transport"
	"github.com/quizdeck/quizdeck-cli/pkg/protocol"
)

type Option func(*Session)

func WithContext(ctx context.Context) Option {
	return func(s *Session) {
		s.ctx = ctx
	}
}

func WithTransport(t transport.Service) Option {
	return func(s *Session) {
		s.transport = t
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

func WithClock(clock clockwork.Clock) Option {
	return func(s *Session) {
		s.clock = clock
	}
}

func WithUserID(id protocol.UserID) Option {
	return func(s *Session) {
		s.me = id
	}
}

func WithHost(isHost bool) Option {
	return func(s *Session) {
		s.isHost = isHost
	}
}
