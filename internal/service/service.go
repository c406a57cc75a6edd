// Package service runs a start/run/stop lifecycle in the background and
// publishes its state changes.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/hsfzxjy/pipe"
	"github.com/sirupsen/logrus"
)

const DefaultStopTimeout = 10 * time.Second

type IService interface {
	Start()
	Stop()
	Toggle()
	Events() pipe.ListenableCM[Event]
}

type Service struct {
	callbacks   ICallbacks
	events      *pipe.ControllerCM[Event]
	log         logrus.FieldLogger
	stopTimeout time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc

	state       int16
	towardStart bool
}

var _ IService = (*Service)(nil)

func New(callbacks ICallbacks, log logrus.FieldLogger) *Service {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Service{
		callbacks:   callbacks,
		log:         log,
		stopTimeout: DefaultStopTimeout,
		state:       int16(Stopped),
		events:      pipe.NewControllerCM(Event{Stopped, nil}, true),
	}
}

func (s *Service) Events() pipe.ListenableCM[Event] {
	return s.events
}

func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentState()
}

func (s *Service) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startLocked()
}

func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Service) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.currentState() {
	case Started:
		s.stopLocked()
	case Stopped:
		s.startLocked()
	case Stopping, Starting:
		s.towardStart = !s.towardStart
	}
}

func (s *Service) currentState() State {
	return State(s.state)
}

func (s *Service) sendEvent(ev Event) {
	s.state = int16(ev.State)
	entry := s.log.WithField("state", ev.State)
	if ev.Err != nil {
		entry.WithError(ev.Err).Warn("service state changed")
	} else {
		entry.Debug("service state changed")
	}
	s.events.Send(ev)
}

func (s *Service) startLocked() {
	switch s.currentState() {
	case Started:
	case Starting, Stopping:
		s.towardStart = true
	case Stopped:
		s.sendEvent(Event{Starting, nil})
		s.towardStart = true

		s.cancel = runWithCancelTimeout(
			s.callbacks.OnServiceStart,
			s.afterOnStartFinished,
			s.stopTimeout,
		)
	}
}

func (s *Service) afterOnStartFinished(wasCanceled bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancel = nil

	if s.towardStart && err == nil {
		s.sendEvent(Event{Started, nil})
		s.cancel = runWithCancelTimeout(
			s.callbacks.OnServiceRun,
			s.afterOnRunFinished,
			s.stopTimeout,
		)
		return
	}

	s.sendEvent(Event{Stopped, err})

	if s.towardStart && wasCanceled {
		s.startLocked()
	}
}

func (s *Service) afterOnRunFinished(wasCanceled bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancel = nil

	state := s.currentState()
	switch state {
	case Started:
		s.sendEvent(Event{Stopped, err})
	case Stopping:
		s.sendEvent(Event{Stopped, err})
		if s.towardStart {
			s.startLocked()
		}
	default:
		panic("bad state: " + state.String())
	}
}

func (s *Service) stopLocked() {
	s.towardStart = false
	switch s.currentState() {
	case Stopped, Stopping:
	case Started:
		s.sendEvent(Event{Stopping, nil})
		fallthrough
	case Starting:
		s.towardStart = false
		s.cancel()
		s.callbacks.OnServiceStop()
	}
}
