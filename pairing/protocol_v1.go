package pairing

import (
	"context"
	"fmt"
	kc "kpair/crypto"
	"kpair/runner/core"
)

type _ProtocolV1 struct{}

func (p _ProtocolV1) HandleInitiator(ctx context.Context, s *_Session) error {
	r := s.Runner
	var m core.HandshakeMessage

	// Stage 1.0: Send init
	{
		s.Stage.Set(1, 0)

		init, err := r.InitHandshake()
		if err != nil {
			return err
		}
		if err := s.Rw.WriteFrame(init.NextMessage()); err != nil {
			return err
		}
	}

	// Stage 1.1: Recv init response, send client response
	{
		s.Stage.Set(1, 1)

		resp, err := s.Rw.ReadFrame()
		if err != nil {
			return err
		}
		if m, err = r.ContinueHandshake(resp); err != nil {
			return err
		}
		if err := s.Rw.WriteFrame(m.NextMessage()); err != nil {
			return err
		}
	}

	if s.Resume {
		// Stage 2.0: Prove the previous key, check the responder's proof
		s.Stage.Set(2, 0)

		prev, err := p.previousKey(s)
		if err != nil {
			r.InvalidPin()
			return err
		}
		proof, err := r.InitReconnectAuthentication(prev)
		if err != nil {
			return err
		}
		if err := s.Rw.WriteFrame(proof.NextMessage()); err != nil {
			return err
		}
		msg, err := s.Rw.ReadFrame()
		if err != nil {
			return err
		}
		if m, err = r.AuthenticateReconnection(msg, prev); err != nil {
			return err
		}
	} else {
		// Stage 2.1: Compare codes
		s.Stage.Set(2, 1)

		var err error
		if m, err = p.verify(ctx, s, m); err != nil {
			return err
		}
	}

	return p.finish(s, m)
}

func (p _ProtocolV1) HandleResponder(ctx context.Context, s *_Session) error {
	r := s.Runner
	var m core.HandshakeMessage

	// Stage 1.0: Recv init, send init response
	{
		s.Stage.Set(1, 0)

		init, err := s.Rw.ReadFrame()
		if err != nil {
			return err
		}
		resp, err := r.RespondToInitRequest(init)
		if err != nil {
			return err
		}
		if err := s.Rw.WriteFrame(resp.NextMessage()); err != nil {
			return err
		}
	}

	// Stage 1.1: Recv client response
	{
		s.Stage.Set(1, 1)

		fin, err := s.Rw.ReadFrame()
		if err != nil {
			return err
		}
		if m, err = r.ContinueHandshake(fin); err != nil {
			return err
		}
	}

	if s.Resume {
		// Stage 2.0: Check the initiator's proof, send ours
		s.Stage.Set(2, 0)

		prev, err := p.previousKey(s)
		if err != nil {
			r.InvalidPin()
			return err
		}
		msg, err := s.Rw.ReadFrame()
		if err != nil {
			return err
		}
		if m, err = r.AuthenticateReconnection(msg, prev); err != nil {
			return err
		}
		if err := s.Rw.WriteFrame(m.NextMessage()); err != nil {
			return err
		}
	} else {
		// Stage 2.1: Compare codes
		s.Stage.Set(2, 1)

		var err error
		if m, err = p.verify(ctx, s, m); err != nil {
			return err
		}
	}

	return p.finish(s, m)
}

// verify asks the local operator and exchanges verdicts with the peer. Both
// have to accept for the runner to hand out a key.
func (_ProtocolV1) verify(ctx context.Context, s *_Session, m core.HandshakeMessage) (core.HandshakeMessage, error) {
	r := s.Runner
	if m.State() != core.StateVerificationNeeded {
		return core.HandshakeMessage{}, fmt.Errorf("%w: runner is %s", ErrBadFormat, m.State())
	}
	code := m.VerificationCode()
	s.Log.WithField("code", code).Debug("confirming verification code")

	accept, err := s.Model.ConfirmCode(ctx, s.RemoteID, code)
	if err != nil {
		r.InvalidPin()
		return core.HandshakeMessage{}, err
	}
	if err := s.Rw.WriteMessage(_Verdict{accept}); err != nil {
		r.InvalidPin()
		return core.HandshakeMessage{}, err
	}
	var peerVerdict _Verdict
	if err := s.Rw.ReadMessage(&peerVerdict); err != nil {
		r.InvalidPin()
		return core.HandshakeMessage{}, err
	}
	if !accept || !peerVerdict.Accept {
		r.InvalidPin()
		return core.HandshakeMessage{}, ErrPinRejected
	}
	return r.VerifyPin()
}

func (_ProtocolV1) previousKey(s *_Session) (kc.Key, error) {
	b, found, err := s.Model.LoadKey(s.RemoteID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoKey
	}
	return s.Runner.KeyOf(b)
}

// Stage 3: persist the key and wrap the connection
func (_ProtocolV1) finish(s *_Session, m core.HandshakeMessage) error {
	s.Stage.Set(3, 0)

	key := m.Key()
	b, err := key.AsBytes()
	if err != nil {
		return err
	}
	if err := s.Model.SaveKey(s.RemoteID, b); err != nil {
		return err
	}
	if fp, err := kc.Fingerprint(key); err == nil {
		s.Log = s.Log.WithField("key", fp)
	}

	s.Result = Result{
		RemoteID: s.RemoteID,
		Resumed:  s.Resume,
		Conn:     newSecureConn(s.Rw.RW, key, s.RemoteID),
	}
	return nil
}
