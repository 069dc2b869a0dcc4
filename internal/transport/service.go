package transport

import (
	"time"

	"github.com/quizdeck/quizdeck-cli/pkg/protocol"
)

//go:generate mockgen -source=service.go -destination=mock/service.go

type Service interface {
	Connect() error
	Disconnect()

	// Reset clears the given-up state so that Connect can be called
	// again after reconnection attempts were exhausted.
	Reset()

	SendMessage(message any) error

	Status() ConnectionStatus
	SubscribeToMessages() *MessagesSubscription
	SubscribeToConnectionStatus() ConnectionStatusSubscription
	SubscribeToCountdown() CountdownSubscription
}

// Identity is the narrow read-only view of the identity store the
// connection manager needs to build the URL and the join message.
type Identity interface {
	UserID() protocol.UserID
	AuthToken() string
}

type State int

const (
	StateIdle State = iota
	StateConnecting
	StateConnected
	StateReconnecting
	StateGivenUp
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateReconnecting:
		return "reconnecting"
	case StateGivenUp:
		return "given up"
	}
	return "unknown"
}

type ConnectionStatus struct {
	State         State
	Attempt       int
	NextAttemptIn time.Duration
}

func (s ConnectionStatus) Connected() bool {
	return s.State == StateConnected
}

type MessagesSubscription struct {
	Ch          chan []byte
	Unsubscribe func()
}

type ConnectionStatusSubscription chan ConnectionStatus

type CountdownSubscription chan time.Duration
