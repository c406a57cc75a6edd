package service_test

import (
	"context"
	"errors"
	"kpair/internal/service"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func collectEventsUntilStopped(s *service.Service, nStopped int) <-chan []service.Event {
	result := make(chan []service.Event)
	ch, dispose := s.Events().Listen()
	go func() {
		var eventList []service.Event
		defer dispose()

		i := 0
		for event := range ch {
			eventList = append(eventList, event)
			if event.State == service.Stopped {
				i += 1
			}
			if i == nStopped {
				break
			}
		}
		result <- eventList
	}()
	return result
}

// blocker fails start with startErr, or blocks in run until canceled.
type blocker struct {
	startErr error
	block    bool
	ready    chan struct{}
	calls    atomic.Int32
	stops    atomic.Int32
}

func (b *blocker) OnServiceStart(ctx context.Context) error {
	b.calls.Add(1)
	return b.startErr
}

func (b *blocker) OnServiceRun(ctx context.Context) error {
	b.calls.Add(1)
	if !b.block {
		return nil
	}
	close(b.ready)
	<-ctx.Done()
	return ctx.Err()
}

func (b *blocker) OnServiceStop() { b.stops.Add(1) }

var Err1 = errors.New("Error1")

func TestService(t *testing.T) {
	cb := &blocker{}
	s := service.New(cb, nil)

	for i := 0; i < 2; i++ {
		events := collectEventsUntilStopped(s, 2)
		s.Start()
		require.Equal(t, []service.Event{
			{service.Stopped, nil},
			{service.Starting, nil},
			{service.Started, nil},
			{service.Stopped, nil},
		}, <-events)
	}
	require.EqualValues(t, 4, cb.calls.Load())
}

func TestServiceStartFails(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	s := service.New(&blocker{startErr: Err1}, log)

	events := collectEventsUntilStopped(s, 2)
	s.Start()
	require.Equal(t, []service.Event{
		{service.Stopped, nil},
		{service.Starting, nil},
		{service.Stopped, Err1},
	}, <-events)

	last := hook.LastEntry()
	require.NotNil(t, last)
	require.Equal(t, logrus.WarnLevel, last.Level)
	require.Equal(t, service.Stopped, last.Data["state"])
}

func TestServiceStopWhileRunning(t *testing.T) {
	cb := &blocker{block: true, ready: make(chan struct{})}
	s := service.New(cb, nil)

	events := collectEventsUntilStopped(s, 2)
	s.Start()
	<-cb.ready
	require.Equal(t, service.Started, s.State())
	s.Toggle()

	require.Equal(t, []service.Event{
		{service.Stopped, nil},
		{service.Starting, nil},
		{service.Started, nil},
		{service.Stopping, nil},
		{service.Stopped, context.Canceled},
	}, <-events)
	require.EqualValues(t, 1, cb.stops.Load())
}

func TestStateString(t *testing.T) {
	require.Equal(t, "Starting", service.Starting.String())
	require.Equal(t, "State(0)", service.State(0).String())
}
