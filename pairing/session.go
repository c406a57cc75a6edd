package pairing

import (
	"context"
	"kpair/peer"
	"kpair/runner"
	"kpair/runner/core"
	sec "kpair/security"
	"net"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

/*
Initiator                       Responder
    |   -> Hello                    |
    |   <- Reply                    |
    |   -> init                     |
    |   <- init response            |
    |   -> client response          |
ConfirmCode                    ConfirmCode
    |   <-> Verdict                 |
SaveKey                         SaveKey

With Reply.Resume the verdicts are replaced by the reconnection proofs.
*/

type Result struct {
	RemoteID peer.ID
	Conn     *SecureConn
	Resumed  bool
}

type _Session struct {
	Conn      net.Conn
	Initiator bool
	Cfg       *Config
	HSOpt     HSOpt
	Model     IModel
	Rw        _RW
	Log       logrus.FieldLogger

	Version  uint8
	Stage    _Stage
	Secure   bool
	Resume   bool
	RemoteID peer.ID
	Runner   core.IRunner

	Result
}

var sessionPool = sync.Pool{
	New: func() any { return new(_Session) },
}

func Initiate(ctx context.Context, config *Config, hsopt HSOpt, model IModel, conn net.Conn) (Result, error) {
	s := sessionPool.Get().(*_Session)
	defer func() {
		*s = _Session{}
		sessionPool.Put(s)
	}()
	s.setup(config, model, conn, true)
	s.HSOpt = hsopt
	err := s.run(ctx)
	if err != nil {
		return Result{}, err
	}
	return s.Result, nil
}

func Respond(ctx context.Context, config *Config, model IModel, conn net.Conn) (Result, error) {
	s := sessionPool.Get().(*_Session)
	defer func() {
		*s = _Session{}
		sessionPool.Put(s)
	}()
	s.setup(config, model, conn, false)
	err := s.run(ctx)
	if err != nil {
		return Result{}, err
	}
	return s.Result, nil
}

func (s *_Session) setup(config *Config, model IModel, conn net.Conn, initiator bool) {
	cfg := config.WithDefaults()
	s.Cfg = &cfg
	s.Model = model
	s.Conn = conn
	s.Initiator = initiator
	s.Log = cfg.Log.WithFields(logrus.Fields{
		"role":  s.role(),
		"local": cfg.LocalID,
	})
}

func (s *_Session) role() string {
	if s.Initiator {
		return "initiator"
	}
	return "responder"
}

func (s *_Session) run(ctx context.Context) error {
	var (
		wg       sync.WaitGroup
		doneCh   = make(chan struct{}, 1)
		canceled = false
	)
	wg.Add(1)
	conn := s.Conn
	go func() {
		defer wg.Done()
		select {
		case <-doneCh:
		case <-ctx.Done():
			canceled = true
			// unblock pending I/O
			conn.SetDeadline(time.Unix(1, 0))
		}
	}()
	err := s.doRun(ctx)
	doneCh <- struct{}{}
	wg.Wait()
	if canceled {
		err = ctx.Err()
	} else if err != nil {
		err = Error{
			Initiator: s.Initiator,
			Stage:     s.Stage,
			Wrapped:   err,
		}
	}
	if err != nil {
		s.Log.WithError(err).Warn("pairing failed")
		conn.Close()
		return err
	}
	conn.SetDeadline(time.Time{})
	s.Log.WithField("resumed", s.Resumed).Info("paired")
	return nil
}

func (s *_Session) precheck() error {
	cfg := s.Cfg
	if s.Initiator {
		level, ok := cfg.Cap.Normalize(s.HSOpt.Level)
		if !ok {
			return ErrBadOption
		}
		s.HSOpt.Level = level
	}
	return nil
}

func (s *_Session) doRun(ctx context.Context) error {
	if err := s.precheck(); err != nil {
		return err
	}

	s.Conn.SetDeadline(time.Now().Add(s.Cfg.Timeout))
	s.Rw.Init(s.Conn)

	var hello _Hello
	var reply _Reply
	if s.Initiator {
		// Stage 0.0: Send Hello to Responder
		{
			s.Stage.Set(0, 0)

			hello.PackVersions()
			hello.DeviceID = s.Cfg.LocalID.Bytes()
			hello.Level = uint8(s.HSOpt.Level)
			hello.Resume = s.HSOpt.Resume
			if err := s.Rw.WriteMessage(&hello); err != nil {
				return err
			}
		}

		// Stage 0.1: Recv Reply from Responder
		{
			s.Stage.Set(0, 1)

			if err := s.Rw.ReadMessage(&reply); err != nil {
				return err
			}
			if err := hello.VerifyReply(&reply); err != nil {
				return err
			}
			if !s.HSOpt.Level.Accept(reply.Secure) || reply.Resume && !hello.Resume {
				return ErrBadOption
			}
			if err := s.setRemote(reply.DeviceID); err != nil {
				return err
			}
			s.Version = reply.Version
			s.Secure = reply.Secure
			s.Resume = reply.Resume
		}
	} else {
		// Stage 0.0: Recv Hello from Initiator
		{
			s.Stage.Set(0, 0)

			if err := s.Rw.ReadMessage(&hello); err != nil {
				return err
			}
			if err := s.setRemote(hello.DeviceID); err != nil {
				return err
			}
			version, ok := hello.ChooseVersion()
			if !ok {
				return ErrUnsupportedVersion
			}
			secure, ok := s.Cfg.Cap.Decide(sec.Level(hello.Level))
			if !ok {
				return ErrBadOption
			}
			s.Version = version
			s.Secure = secure
			if hello.Resume {
				_, found, err := s.Model.LoadKey(s.RemoteID)
				if err != nil {
					return err
				}
				s.Resume = found
			}
		}

		// Stage 0.1: Send Reply to Initiator
		{
			s.Stage.Set(0, 1)

			reply.Version = s.Version
			reply.DeviceID = s.Cfg.LocalID.Bytes()
			reply.Secure = s.Secure
			reply.Resume = s.Resume
			if err := s.Rw.WriteMessage(&reply); err != nil {
				return err
			}
		}
	}

	s.Log = s.Log.WithFields(logrus.Fields{
		"remote": s.RemoteID,
		"secure": s.Secure,
		"resume": s.Resume,
	})
	s.Runner = runner.New(core.Config{
		Kind:      sec.Kind(s.Secure),
		Reconnect: s.Resume,
		Log:       s.Log,
		Rand:      s.Cfg.Rand,
	})

	proto := protocols[s.Version]
	if s.Initiator {
		return proto.HandleInitiator(ctx, s)
	} else {
		return proto.HandleResponder(ctx, s)
	}
}

func (s *_Session) setRemote(b []byte) error {
	id, err := peer.IDFromBytes(b)
	if err != nil {
		return badFormat(err)
	}
	if id == s.Cfg.LocalID {
		return ErrBadOption
	}
	s.RemoteID = id
	return nil
}
