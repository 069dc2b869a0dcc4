package transport

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/quizdeck/quizdeck-cli/internal/backoff"
	"github.com/quizdeck/quizdeck-cli/pkg/protocol"
)

var ErrGivenUp = errors.New("reconnection attempts exhausted")

// Manager owns exactly one live websocket connection per event session
// and its reconnection policy. All outbound traffic goes through
// SendMessage; nothing else may touch the socket.
type Manager struct {
	logger    *zap.Logger
	ctx       context.Context
	clock     clockwork.Clock
	dialer    *websocket.Dialer
	scheduler *backoff.Scheduler
	identity  Identity

	backoffConfig *backoff.Config

	serverURL     string
	eventID       protocol.EventID
	sessionCode   string
	autoReconnect bool

	mutex              sync.Mutex
	state              State
	attempt            int
	nextDelay          time.Duration
	conn               *websocket.Conn
	writeMutex         sync.Mutex
	messageSubscribers []*messageSubscriber
	statusSubscribers  []ConnectionStatusSubscription
}

// messageSubscriber is the manager-side half of a messages
// subscription. The read loop feeds it, a dedicated pump goroutine
// forwards into the public channel. The pump is the only sender on
// MessagesSubscription.Ch and therefore the only place allowed to
// close it; Unsubscribe just signals the pump to leave.
type messageSubscriber struct {
	feed      chan []byte
	leave     chan struct{}
	leaveOnce sync.Once
}

func (s *messageSubscriber) signalLeave() {
	s.leaveOnce.Do(func() {
		close(s.leave)
	})
}

func NewManager(opts ...Option) *Manager {
	manager := &Manager{
		state:         StateIdle,
		autoReconnect: true,
	}

	for _, opt := range opts {
		opt(manager)
	}

	if manager.ctx == nil {
		manager.ctx = context.Background()
	}

	if manager.logger == nil {
		manager.logger = zap.NewNop()
	}
	manager.logger = manager.logger.Named("transport")

	if manager.clock == nil {
		manager.clock = clockwork.NewRealClock()
	}

	if manager.dialer == nil {
		manager.dialer = websocket.DefaultDialer
	}

	if manager.backoffConfig == nil {
		config := backoff.DefaultConfig()
		manager.backoffConfig = &config
	}
	manager.scheduler = backoff.NewScheduler(manager.logger, manager.clock, *manager.backoffConfig)

	if manager.identity == nil {
		manager.logger.Error("identity is required")
		return nil
	}

	return manager
}

// Connect opens a new websocket connection. No-op when already connected
// or a connection attempt is in flight. Every call creates a fresh
// socket instance, the previous one is never reused.
func (m *Manager) Connect() error {
	m.mutex.Lock()
	if m.state == StateConnected || m.state == StateConnecting {
		m.mutex.Unlock()
		return nil
	}
	if m.state == StateGivenUp {
		m.mutex.Unlock()
		return ErrGivenUp
	}
	// A manual Connect while an attempt is scheduled supersedes it.
	m.scheduler.Stop()
	m.state = StateConnecting
	m.notifyStatusLocked()
	target := m.connectionURL()
	m.mutex.Unlock()

	m.logger.Debug("dialing", zap.String("url", target))
	conn, _, err := m.dialer.DialContext(m.ctx, target, nil)

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.state != StateConnecting {
		// Disconnected while dialing.
		if conn != nil {
			_ = conn.Close()
		}
		return nil
	}

	if err != nil {
		m.logger.Warn("failed to connect", zap.Error(err))
		m.scheduleReconnectLocked()
		return nil
	}

	m.conn = conn
	m.state = StateConnected
	m.attempt = 0
	m.nextDelay = 0
	m.scheduler.Stop()
	m.notifyStatusLocked()
	m.logger.Info("connected", zap.String("eventID", m.eventID.String()))

	// Exactly one join message per successful open.
	m.sendLocked(protocol.JoinMessage{
		Message:     protocol.Message{Type: protocol.MessageTypeJoin},
		UserID:      m.identity.UserID(),
		SessionCode: m.sessionCode,
	})

	go m.readLoop(conn)
	return nil
}

// Disconnect cancels any pending reconnection and closes the socket.
// Idempotent.
func (m *Manager) Disconnect() {
	m.mutex.Lock()
	m.scheduler.Stop()
	conn := m.conn
	m.conn = nil
	changed := m.state != StateIdle
	m.state = StateIdle
	m.attempt = 0
	m.nextDelay = 0
	if changed {
		m.notifyStatusLocked()
	}
	m.mutex.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
	m.logger.Info("disconnected")
}

// Reset clears the given-up state after reconnection was exhausted.
func (m *Manager) Reset() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.state != StateGivenUp {
		return
	}
	m.state = StateIdle
	m.attempt = 0
	m.nextDelay = 0
	m.notifyStatusLocked()
}

// SendMessage marshals and sends a message when connected. When
// disconnected the message is dropped with a warning: the contract is
// fire-and-forget, callers gate actions on connection status.
func (m *Manager) SendMessage(message any) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.state != StateConnected {
		m.logger.Warn("dropping message, not connected",
			zap.String("state", m.state.String()),
			zap.Any("message", message),
		)
		return nil
	}

	return m.sendLocked(message)
}

func (m *Manager) sendLocked(message any) error {
	payload, err := protocol.Marshal(message)
	if err != nil {
		return err
	}

	conn := m.conn
	m.writeMutex.Lock()
	err = conn.WriteMessage(websocket.TextMessage, payload)
	m.writeMutex.Unlock()

	if err != nil {
		// Write failures are treated like a close event, the read loop
		// observes the broken connection and triggers reconnection.
		m.logger.Warn("failed to write message", zap.Error(err))
	}
	return nil
}

func (m *Manager) Status() ConnectionStatus {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return ConnectionStatus{
		State:         m.state,
		Attempt:       m.attempt,
		NextAttemptIn: m.nextDelay,
	}
}

func (m *Manager) EventID() protocol.EventID {
	return m.eventID
}

func (m *Manager) SubscribeToMessages() *MessagesSubscription {
	subscriber := &messageSubscriber{
		feed:  make(chan []byte, 42),
		leave: make(chan struct{}),
	}
	subscription := &MessagesSubscription{
		Ch:          make(chan []byte, 42),
		Unsubscribe: subscriber.signalLeave,
	}

	m.mutex.Lock()
	m.messageSubscribers = append(m.messageSubscribers, subscriber)
	m.mutex.Unlock()

	go func() {
		defer func() {
			m.removeMessageSubscriber(subscriber)
			close(subscription.Ch)
			m.logger.Debug("subscription channel closed")
		}()

		for {
			select {
			case <-subscriber.leave:
				return
			case payload := <-subscriber.feed:
				select {
				case subscription.Ch <- payload:
				case <-subscriber.leave:
					return
				}
			}
		}
	}()

	return subscription
}

func (m *Manager) SubscribeToConnectionStatus() ConnectionStatusSubscription {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	channel := make(ConnectionStatusSubscription, 10)
	m.statusSubscribers = append(m.statusSubscribers, channel)
	return channel
}

func (m *Manager) SubscribeToCountdown() CountdownSubscription {
	return CountdownSubscription(m.scheduler.SubscribeToCountdown())
}

func (m *Manager) Stop() {
	m.Disconnect()

	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.scheduler.Close()
	for _, subscriber := range m.messageSubscribers {
		subscriber.signalLeave()
	}
	m.messageSubscribers = nil
	for _, subscriber := range m.statusSubscribers {
		close(subscriber)
	}
	m.statusSubscribers = nil
}

func (m *Manager) connectionURL() string {
	token := url.QueryEscape(m.identity.AuthToken())
	return fmt.Sprintf("%s/api/ws/event/%s?token=%s", m.serverURL, m.eventID, token)
}

func (m *Manager) readLoop(conn *websocket.Conn) {
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			m.logger.Warn("connection lost", zap.Error(err))
			m.onConnectionLost(conn)
			return
		}
		m.handleInbound(payload)
	}
}

func (m *Manager) handleInbound(payload []byte) {
	message, err := protocol.UnmarshalMessage(payload)
	if err != nil {
		// Malformed payloads never crash the session.
		m.logger.Error("dropping malformed message",
			zap.Error(err),
			zap.ByteString("payload", payload),
		)
		return
	}

	if message.Type == protocol.MessageTypePing {
		_ = m.SendMessage(protocol.PongMessage{
			Message: protocol.Message{Type: protocol.MessageTypePong},
		})
		return
	}

	m.mutex.Lock()
	subscribers := m.messageSubscribers
	m.mutex.Unlock()

	for _, subscriber := range subscribers {
		select {
		case subscriber.feed <- payload:
		case <-subscriber.leave:
			// Unsubscribed mid-delivery, drop the payload.
		}
	}
}

func (m *Manager) onConnectionLost(conn *websocket.Conn) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.conn != conn {
		// A stale read loop reporting a socket we already discarded.
		return
	}

	_ = conn.Close()
	m.conn = nil

	if m.state != StateConnected {
		return
	}

	m.scheduleReconnectLocked()
}

// scheduleReconnectLocked hands control to the backoff scheduler. We
// never reconnect immediately after a server-side close, that would
// invite a thundering herd of clients.
func (m *Manager) scheduleReconnectLocked() {
	if !m.autoReconnect {
		m.state = StateIdle
		m.nextDelay = 0
		m.notifyStatusLocked()
		return
	}

	if m.attempt >= m.scheduler.Config().MaxAttempts {
		m.logger.Warn("giving up", zap.Int("attempts", m.attempt))
		m.state = StateGivenUp
		m.nextDelay = 0
		m.notifyStatusLocked()
		return
	}

	m.state = StateReconnecting
	m.attempt++
	m.nextDelay = m.scheduler.Schedule(m.attempt-1, func() {
		_ = m.Connect()
	})
	delay := m.nextDelay

	m.logger.Info("reconnecting",
		zap.Int("attempt", m.attempt),
		zap.Duration("delay", delay),
	)
	m.notifyStatusLocked()
}

func (m *Manager) notifyStatusLocked() {
	status := ConnectionStatus{
		State:         m.state,
		Attempt:       m.attempt,
		NextAttemptIn: m.nextDelay,
	}
	for _, subscriber := range m.statusSubscribers {
		select {
		case subscriber <- status:
		default:
			m.logger.Warn("status subscriber is full, skipping update")
		}
	}
}

func (m *Manager) removeMessageSubscriber(subscriber *messageSubscriber) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	// Rebuild instead of splicing in place: handleInbound iterates over
	// a snapshot of this slice outside the mutex.
	filtered := make([]*messageSubscriber, 0, len(m.messageSubscribers))
	for _, existing := range m.messageSubscribers {
		if existing != subscriber {
			filtered = append(filtered, existing)
		}
	}
	m.messageSubscribers = filtered
}
