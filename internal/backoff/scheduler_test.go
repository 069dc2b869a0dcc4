package backoff

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"

	"github.com/quizdeck/quizdeck-cli/internal/testcommon"
)

func TestScheduler(t *testing.T) {
	suite.Run(t, new(SchedulerSuite))
}

type SchedulerSuite struct {
	testcommon.Suite
	clock clockwork.FakeClock
}

func (s *SchedulerSuite) SetupTest() {
	s.clock = clockwork.NewFakeClock()
}

func (s *SchedulerSuite) newScheduler(config Config) *Scheduler {
	scheduler := NewScheduler(s.Logger, s.clock, config)
	s.Require().NotNil(scheduler)
	return scheduler
}

func (s *SchedulerSuite) waitFired(fired chan struct{}) {
	select {
	case <-fired:
	case <-time.After(1 * time.Second):
		s.Require().Fail("timeout waiting for scheduled attempt")
	}
}

func (s *SchedulerSuite) TestFire() {
	config := Config{
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     1 * time.Second,
		Multiplier:   2,
		TickInterval: 100 * time.Millisecond,
	}
	scheduler := s.newScheduler(config)
	defer scheduler.Close()

	fired := make(chan struct{})
	delay := scheduler.Schedule(0, func() {
		close(fired)
	})
	s.Require().Equal(config.InitialDelay, delay)
	s.Require().True(scheduler.Pending())

	s.clock.BlockUntil(1)
	s.clock.Advance(config.TickInterval)

	s.waitFired(fired)
	s.Require().False(scheduler.Pending())
}

func (s *SchedulerSuite) TestStopCancelsPending() {
	config := Config{
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     1 * time.Second,
		Multiplier:   2,
		TickInterval: 100 * time.Millisecond,
	}
	scheduler := s.newScheduler(config)
	defer scheduler.Close()

	fired := make(chan struct{})
	scheduler.Schedule(0, func() {
		close(fired)
	})

	s.clock.BlockUntil(1)
	scheduler.Stop()
	s.Require().False(scheduler.Pending())

	s.clock.Advance(config.TickInterval)

	select {
	case <-fired:
		s.Require().Fail("cancelled attempt must not fire")
	case <-time.After(100 * time.Millisecond):
	}
}

func (s *SchedulerSuite) TestRescheduleSupersedes() {
	config := Config{
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     1 * time.Second,
		Multiplier:   2,
		TickInterval: 100 * time.Millisecond,
	}
	scheduler := s.newScheduler(config)
	defer scheduler.Close()

	firstFired := make(chan struct{})
	scheduler.Schedule(0, func() {
		close(firstFired)
	})
	s.clock.BlockUntil(1)

	secondFired := make(chan struct{})
	scheduler.Schedule(0, func() {
		close(secondFired)
	})

	// Both the cancelled and the fresh countdown may hold tickers until
	// the cancelled goroutine observes its cancel signal.
	s.clock.BlockUntil(2)
	s.clock.Advance(config.TickInterval)

	s.waitFired(secondFired)

	select {
	case <-firstFired:
		s.Require().Fail("superseded attempt must not fire")
	case <-time.After(100 * time.Millisecond):
	}
}

func (s *SchedulerSuite) TestCountdownNotifications() {
	config := Config{
		InitialDelay: 300 * time.Millisecond,
		MaxDelay:     1 * time.Second,
		Multiplier:   2,
		TickInterval: 100 * time.Millisecond,
	}
	scheduler := s.newScheduler(config)
	defer scheduler.Close()

	countdown := scheduler.SubscribeToCountdown()

	fired := make(chan struct{})
	scheduler.Schedule(0, func() {
		close(fired)
	})

	receive := func() time.Duration {
		select {
		case remaining := <-countdown:
			return remaining
		case <-time.After(1 * time.Second):
			s.Require().Fail("timeout waiting for countdown tick")
		}
		return 0
	}

	s.Require().Equal(300*time.Millisecond, receive())

	s.clock.BlockUntil(1)
	s.clock.Advance(config.TickInterval)
	s.Require().Equal(200*time.Millisecond, receive())

	s.clock.Advance(config.TickInterval)
	s.Require().Equal(100*time.Millisecond, receive())

	s.clock.Advance(config.TickInterval)
	s.Require().Equal(time.Duration(0), receive())

	s.waitFired(fired)
}
