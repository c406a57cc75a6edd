// Package dummy is a runner which exchanges fixed messages and hands out a
// pass-through key. It exercises pairing code paths without cryptography
// and must never protect real traffic.
package dummy

import (
	"bytes"

	kc "kpair/crypto"
	"kpair/runner/core"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const Code = "123456"

var (
	msgInit           = []byte("init")
	msgInitResponse   = []byte("initResponse")
	msgClientResponse = []byte("clientResponse")
	msgProofClient    = []byte("reconnectClient")
	msgProofServer    = []byte("reconnectServer")

	unique = []byte("dummy session")
)

type Runner struct {
	core.Machine
	cfg core.Config
	log logrus.FieldLogger
}

var _ core.IRunner = (*Runner)(nil)

func New(cfg core.Config) *Runner {
	cfg = cfg.WithDefaults()
	return &Runner{
		cfg: cfg,
		log: cfg.Log.WithFields(logrus.Fields{
			"runner":  core.KindDummy,
			"session": uuid.NewString(),
		}),
	}
}

func (r *Runner) Kind() core.Kind { return core.KindDummy }

func (r *Runner) begin(op core.Op) error {
	err := r.Begin(op)
	if err != nil {
		r.log.WithError(err).Warn("handshake call rejected")
	}
	return err
}

func (r *Runner) expect(op core.Op, got, want []byte) error {
	if bytes.Equal(got, want) {
		return nil
	}
	err := r.Fail(op, core.ErrUnexpectedMessage)
	r.log.WithError(err).Warn("handshake failed")
	return err
}

func (r *Runner) exchanged(next []byte) core.HandshakeMessage {
	r.Advance(r.Exchanged(r.cfg.Reconnect))
	if r.cfg.Reconnect {
		return core.ResumingSession(next)
	}
	return core.VerificationNeeded(next, Code)
}

func (r *Runner) InitHandshake() (core.HandshakeMessage, error) {
	if err := r.begin(core.OpInitHandshake); err != nil {
		return core.HandshakeMessage{}, err
	}
	r.Advance(core.StageAwaitServerInit)
	return core.InProgress(msgInit), nil
}

func (r *Runner) RespondToInitRequest(init []byte) (core.HandshakeMessage, error) {
	const op = core.OpRespond
	if err := r.begin(op); err != nil {
		return core.HandshakeMessage{}, err
	}
	if err := r.expect(op, init, msgInit); err != nil {
		return core.HandshakeMessage{}, err
	}
	r.Advance(core.StageAwaitClientFinished)
	return core.InProgress(msgInitResponse), nil
}

func (r *Runner) ContinueHandshake(response []byte) (core.HandshakeMessage, error) {
	const op = core.OpContinue
	if err := r.begin(op); err != nil {
		return core.HandshakeMessage{}, err
	}
	if r.Role() == core.RoleClient {
		if err := r.expect(op, response, msgInitResponse); err != nil {
			return core.HandshakeMessage{}, err
		}
		return r.exchanged(msgClientResponse), nil
	}
	if err := r.expect(op, response, msgClientResponse); err != nil {
		return core.HandshakeMessage{}, err
	}
	return r.exchanged(nil), nil
}

func (r *Runner) VerifyPin() (core.HandshakeMessage, error) {
	if err := r.begin(core.OpVerifyPin); err != nil {
		return core.HandshakeMessage{}, err
	}
	return r.finish(nil), nil
}

func (r *Runner) InvalidPin() {
	r.Reject()
	r.log.WithField("stage", r.Stage()).Info("verification code rejected")
}

func (r *Runner) InitReconnectAuthentication(previous kc.Key) (core.HandshakeMessage, error) {
	const op = core.OpInitReconnect
	if err := r.begin(op); err != nil {
		return core.HandshakeMessage{}, err
	}
	if previous == nil {
		return core.HandshakeMessage{}, r.Fail(op, core.ErrNoPreviousKey)
	}
	r.Advance(core.StageAwaitServerProof)
	return core.ResumingSession(msgProofClient), nil
}

func (r *Runner) AuthenticateReconnection(message []byte, previous kc.Key) (core.HandshakeMessage, error) {
	const op = core.OpAuthReconnect
	if err := r.begin(op); err != nil {
		return core.HandshakeMessage{}, err
	}
	if previous == nil {
		return core.HandshakeMessage{}, r.Fail(op, core.ErrNoPreviousKey)
	}
	if r.Role() == core.RoleServer {
		if err := r.expect(op, message, msgProofClient); err != nil {
			return core.HandshakeMessage{}, err
		}
		return r.finish(msgProofServer), nil
	}
	if err := r.expect(op, message, msgProofServer); err != nil {
		return core.HandshakeMessage{}, err
	}
	return r.finish(nil), nil
}

func (r *Runner) KeyOf(serialized []byte) (kc.Key, error) {
	k, err := kc.UnmarshalKey(serialized)
	if err != nil {
		return nil, err
	}
	if k.Type() != kc.Type_Plain {
		return nil, kc.ErrBadKeyType
	}
	return k, nil
}

func (r *Runner) finish(next []byte) core.HandshakeMessage {
	r.Advance(core.StageFinished)
	r.log.WithField("stage", r.Stage()).Info("handshake finished")
	return core.Finished(kc.NewPlainKey(unique), next)
}
