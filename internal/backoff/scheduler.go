package backoff

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

type CountdownSubscription chan time.Duration

// Scheduler owns at most one pending reconnection attempt at a time.
// Scheduling a new attempt always cancels the previous one first.
type Scheduler struct {
	logger *zap.Logger
	clock  clockwork.Clock
	config Config

	mutex                sync.Mutex
	cancel               chan struct{}
	countdownSubscribers []CountdownSubscription
}

func NewScheduler(logger *zap.Logger, clock clockwork.Clock, config Config) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		logger: logger.Named("backoff"),
		clock:  clock,
		config: config,
	}
}

func (s *Scheduler) Config() Config {
	return s.config
}

// Schedule arranges for fire to be called after the delay for the given
// attempt. Any previously pending attempt is cancelled. Returns the delay.
func (s *Scheduler) Schedule(attempt int, fire func()) time.Duration {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.stopLocked()

	delay := Delay(s.config, attempt)
	cancel := make(chan struct{})
	s.cancel = cancel

	s.logger.Debug("attempt scheduled",
		zap.Int("attempt", attempt),
		zap.Duration("delay", delay),
	)

	go s.countdown(delay, cancel, fire)
	return delay
}

// Stop cancels the pending attempt, if any. Idempotent.
func (s *Scheduler) Stop() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.stopLocked()
}

func (s *Scheduler) stopLocked() {
	if s.cancel != nil {
		close(s.cancel)
		s.cancel = nil
	}
}

func (s *Scheduler) Pending() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.cancel != nil
}

// SubscribeToCountdown returns a channel receiving the remaining time
// until the next attempt, updated every tick. Display only.
func (s *Scheduler) SubscribeToCountdown() CountdownSubscription {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	channel := make(CountdownSubscription, 10)
	s.countdownSubscribers = append(s.countdownSubscribers, channel)
	return channel
}

func (s *Scheduler) Close() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.stopLocked()
	for _, subscriber := range s.countdownSubscribers {
		close(subscriber)
	}
	s.countdownSubscribers = nil
}

func (s *Scheduler) countdown(delay time.Duration, cancel chan struct{}, fire func()) {
	remaining := delay
	s.notifyCountdown(remaining)

	ticker := s.clock.NewTicker(s.config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-cancel:
			return
		case <-ticker.Chan():
			remaining -= s.config.TickInterval
			if remaining > 0 {
				s.notifyCountdown(remaining)
				continue
			}
			s.notifyCountdown(0)
			s.clearPending(cancel)
			fire()
			return
		}
	}
}

func (s *Scheduler) clearPending(cancel chan struct{}) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.cancel == cancel {
		s.cancel = nil
	}
}

func (s *Scheduler) notifyCountdown(remaining time.Duration) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for _, subscriber := range s.countdownSubscribers {
		select {
		case subscriber <- remaining:
		default:
			// Slow subscriber, skip the tick rather than block the countdown.
		}
	}
}
