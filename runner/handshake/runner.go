package handshake

import (
	"bytes"
	"crypto/hmac"
	"io"

	kc "kpair/crypto"
	"kpair/runner/core"

	"github.com/flynn/noise"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type _Secrets struct {
	auth   []byte
	key    []byte
	unique []byte
}

// Runner is the cryptographic implementation of core.IRunner.
type Runner struct {
	core.Machine

	cfg core.Config
	log logrus.FieldLogger

	version    _Version
	proto      _Protocol
	clientInit []byte
	commitment []byte

	seed  []byte
	ephem noise.DHKey
	hs    *noise.HandshakeState

	secrets _Secrets
}

var _ core.IRunner = (*Runner)(nil)

func New(cfg core.Config) *Runner {
	cfg = cfg.WithDefaults()
	return &Runner{
		cfg: cfg,
		log: cfg.Log.WithFields(logrus.Fields{
			"runner":  core.KindUKey2,
			"session": uuid.NewString(),
		}),
	}
}

func (r *Runner) Kind() core.Kind { return core.KindUKey2 }

func (r *Runner) begin(op core.Op) error {
	if err := r.Begin(op); err != nil {
		r.wipe()
		r.log.WithError(err).Warn("handshake call rejected")
		return err
	}
	return nil
}

func (r *Runner) fail(op core.Op, err error) (core.HandshakeMessage, error) {
	err = r.Fail(op, err)
	r.wipe()
	r.log.WithError(err).Warn("handshake failed")
	return core.HandshakeMessage{}, err
}

func (r *Runner) newEphemeral() (err error) {
	r.seed = make([]byte, dhLen)
	if _, err = io.ReadFull(r.cfg.Rand, r.seed); err != nil {
		return err
	}
	r.ephem, err = noise.DH25519.GenerateKeypair(bytes.NewReader(r.seed))
	return err
}

func (r *Runner) InitHandshake() (core.HandshakeMessage, error) {
	const op = core.OpInitHandshake
	if err := r.begin(op); err != nil {
		return core.HandshakeMessage{}, err
	}

	// Stage 1.0: commit to the ephemeral key
	if err := r.newEphemeral(); err != nil {
		return r.fail(op, err)
	}
	init := _ClientInit{
		Type:       msgClientInit,
		Versions:   supportedVersions,
		Random:     make([]byte, randomSize),
		Commitment: commit(r.ephem.Public),
	}
	if _, err := io.ReadFull(r.cfg.Rand, init.Random); err != nil {
		return r.fail(op, err)
	}
	b, err := encode(&init)
	if err != nil {
		return r.fail(op, err)
	}
	r.clientInit = b

	r.Advance(core.StageAwaitServerInit)
	r.log.WithField("stage", r.Stage()).Debug("sent client init")
	return core.InProgress(b), nil
}

func (r *Runner) RespondToInitRequest(init []byte) (core.HandshakeMessage, error) {
	const op = core.OpRespond
	if err := r.begin(op); err != nil {
		return core.HandshakeMessage{}, err
	}

	// Stage 1.0: validate client init and pick a version
	var msg _ClientInit
	if err := decode(init, &msg, msgClientInit); err != nil {
		return r.fail(op, err)
	}
	if len(msg.Random) != randomSize || len(msg.Commitment) != commitmentSize {
		return r.fail(op, core.ErrBadFormat)
	}
	version, ok := chooseVersion(msg.Versions)
	if !ok {
		return r.fail(op, core.ErrUnsupportedVersion)
	}
	r.version = version
	r.proto = protocols[version]
	r.clientInit = append([]byte(nil), init...)
	r.commitment = msg.Commitment

	// Stage 1.1: reply with the server share
	handshake, err := r.proto.Respond(r)
	if err != nil {
		return r.fail(op, err)
	}
	b, err := encode(&_ServerInit{Type: msgServerInit, Version: version, Handshake: handshake})
	if err != nil {
		return r.fail(op, err)
	}

	r.Advance(core.StageAwaitClientFinished)
	r.log.WithFields(logrus.Fields{"stage": r.Stage(), "version": version}).Debug("sent server init")
	return core.InProgress(b), nil
}

func (r *Runner) ContinueHandshake(response []byte) (core.HandshakeMessage, error) {
	const op = core.OpContinue
	if err := r.begin(op); err != nil {
		return core.HandshakeMessage{}, err
	}

	var next []byte
	if r.Role() == core.RoleClient {
		// Stage 2.0: consume server init, send client finished
		var msg _ServerInit
		if err := decode(response, &msg, msgServerInit); err != nil {
			return r.fail(op, err)
		}
		if !offersVersion(msg.Version) {
			return r.fail(op, core.ErrUnsupportedVersion)
		}
		r.version = msg.Version
		r.proto = protocols[msg.Version]

		handshake, err := r.proto.ClientFinish(r, msg.Handshake)
		if err != nil {
			return r.fail(op, err)
		}
		next, err = encode(&_ClientFinished{Type: msgClientFinished, Handshake: handshake})
		if err != nil {
			return r.fail(op, err)
		}
	} else {
		// Stage 2.1: consume client finished
		var msg _ClientFinished
		if err := decode(response, &msg, msgClientFinished); err != nil {
			return r.fail(op, err)
		}
		if err := r.proto.ServerFinish(r, msg.Handshake); err != nil {
			return r.fail(op, err)
		}
	}
	r.dropHandshake()

	r.Advance(r.Exchanged(r.cfg.Reconnect))
	r.log.WithField("stage", r.Stage()).Debug("key exchange complete")
	if r.cfg.Reconnect {
		return core.ResumingSession(next), nil
	}
	code, err := core.ReadableCode(r.secrets.auth)
	if err != nil {
		return r.fail(op, err)
	}
	return core.VerificationNeeded(next, code), nil
}

func (r *Runner) VerifyPin() (core.HandshakeMessage, error) {
	const op = core.OpVerifyPin
	if err := r.begin(op); err != nil {
		return core.HandshakeMessage{}, err
	}
	return r.finish(op, nil)
}

func (r *Runner) InvalidPin() {
	r.Reject()
	r.wipe()
	r.log.WithField("stage", r.Stage()).Info("verification code rejected")
}

func (r *Runner) InitReconnectAuthentication(previous kc.Key) (core.HandshakeMessage, error) {
	const op = core.OpInitReconnect
	if err := r.begin(op); err != nil {
		return core.HandshakeMessage{}, err
	}
	b, err := r.proof(previous, labelClient, msgClientProof)
	if err != nil {
		return r.fail(op, err)
	}
	r.Advance(core.StageAwaitServerProof)
	r.log.WithField("stage", r.Stage()).Debug("sent reconnection proof")
	return core.ResumingSession(b), nil
}

func (r *Runner) AuthenticateReconnection(message []byte, previous kc.Key) (core.HandshakeMessage, error) {
	const op = core.OpAuthReconnect
	if err := r.begin(op); err != nil {
		return core.HandshakeMessage{}, err
	}

	wantType, wantLabel := msgServerProof, labelServer
	if r.Role() == core.RoleServer {
		wantType, wantLabel = msgClientProof, labelClient
	}
	var msg _Proof
	if err := decode(message, &msg, wantType); err != nil {
		return r.fail(op, err)
	}
	expected, err := r.proto.Proof(r, previous, wantLabel)
	if err != nil {
		return r.fail(op, err)
	}
	if !hmac.Equal(expected, msg.MAC) {
		return r.fail(op, errProof)
	}

	var next []byte
	if r.Role() == core.RoleServer {
		if next, err = r.proof(previous, labelServer, msgServerProof); err != nil {
			return r.fail(op, err)
		}
	}
	return r.finish(op, next)
}

func (r *Runner) KeyOf(serialized []byte) (kc.Key, error) {
	k, err := kc.UnmarshalKey(serialized)
	if err != nil {
		return nil, err
	}
	if k.Type() != kc.Type_XChaCha20Poly1305 {
		return nil, kc.ErrBadKeyType
	}
	return k, nil
}

func (r *Runner) proof(previous kc.Key, label string, t _MsgType) ([]byte, error) {
	mac, err := r.proto.Proof(r, previous, label)
	if err != nil {
		return nil, err
	}
	return encode(&_Proof{Type: t, MAC: mac})
}

func (r *Runner) finish(op core.Op, next []byte) (core.HandshakeMessage, error) {
	key, err := kc.NewSessionKey(r.secrets.key, r.secrets.unique)
	if err != nil {
		return r.fail(op, err)
	}
	r.wipe()
	r.Advance(core.StageFinished)
	r.log.WithField("stage", r.Stage()).Info("handshake finished")
	return core.Finished(key, next), nil
}

func (r *Runner) dropHandshake() {
	r.hs = nil
	kc.Wipe(r.seed, r.ephem.Private)
	r.seed, r.ephem = nil, noise.DHKey{}
}

func (r *Runner) wipe() {
	r.dropHandshake()
	kc.Wipe(r.secrets.auth, r.secrets.key, r.secrets.unique)
	r.secrets = _Secrets{}
}
