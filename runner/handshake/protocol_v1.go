package handshake

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"io"

	kc "kpair/crypto"
	"kpair/runner/core"

	"github.com/flynn/noise"
	"golang.org/x/crypto/curve25519"
)

var cipherSuite = noise.NewCipherSuite(noise.DH25519, noise.CipherChaChaPoly, noise.HashSHA256)

const (
	dhLen  = 32
	tagLen = 16

	authSize   = 32
	uniqueSize = 32

	infoAuth    = "kpair v1 auth"
	infoKey     = "kpair v1 key"
	infoSession = "kpair v1 session"

	labelClient = "CLIENT"
	labelServer = "SERVER"
)

// _ProtocolV1 runs Noise NN with the server as the Noise initiator, so the
// client only reveals its ephemeral key after having committed to it in
// ClientInit. The prologue binds version and ClientInit into the transcript.
//
//	-> ClientInit{commit(e_c)}
//	<- ServerInit{e_s, random_s}
//	-> ClientFinished{e_c, ee}
type _ProtocolV1 struct{}

func (_ProtocolV1) handshakeState(r *Runner, initiator bool, seed []byte) (*noise.HandshakeState, error) {
	prologue := make([]byte, 1+len(r.clientInit))
	prologue[0] = r.version
	copy(prologue[1:], r.clientInit)

	return noise.NewHandshakeState(noise.Config{
		CipherSuite: cipherSuite,
		// the first 32 bytes become the ephemeral key, which is the one
		// already derived from seed
		Random:    io.MultiReader(bytes.NewReader(seed), r.cfg.Rand),
		Pattern:   noise.HandshakeNN,
		Initiator: initiator,
		Prologue:  prologue,
	})
}

func (p _ProtocolV1) Respond(r *Runner) ([]byte, error) {
	if err := r.newEphemeral(); err != nil {
		return nil, err
	}
	hs, err := p.handshakeState(r, true, r.seed)
	if err != nil {
		return nil, err
	}

	random := make([]byte, randomSize)
	if _, err := io.ReadFull(r.cfg.Rand, random); err != nil {
		return nil, err
	}
	msg, _, _, err := hs.WriteMessage(nil, random)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(msg[:dhLen], r.ephem.Public) {
		return nil, errEphemeral
	}
	r.hs = hs
	return msg, nil
}

func (p _ProtocolV1) ClientFinish(r *Runner, handshake []byte) ([]byte, error) {
	if len(handshake) != dhLen+randomSize {
		return nil, fmt.Errorf("%w: server handshake of %d bytes", core.ErrBadFormat, len(handshake))
	}
	hs, err := p.handshakeState(r, false, r.seed)
	if err != nil {
		return nil, err
	}
	if _, _, _, err := hs.ReadMessage(nil, handshake); err != nil {
		return nil, badFormat(err)
	}

	msg, cs1, cs2, err := hs.WriteMessage(nil, nil)
	if err != nil {
		return nil, err
	}
	if cs1 == nil || cs2 == nil {
		return nil, errIncomplete
	}
	if !bytes.Equal(msg[:dhLen], r.ephem.Public) {
		return nil, errEphemeral
	}
	r.hs = hs
	if err := p.derive(r, handshake[:dhLen]); err != nil {
		return nil, err
	}
	return msg, nil
}

func (p _ProtocolV1) ServerFinish(r *Runner, handshake []byte) error {
	if len(handshake) != dhLen+tagLen {
		return fmt.Errorf("%w: client handshake of %d bytes", core.ErrBadFormat, len(handshake))
	}
	peerEphemeral := handshake[:dhLen]
	if !commitmentMatches(r.commitment, peerEphemeral) {
		return errCommitment
	}

	_, cs1, cs2, err := r.hs.ReadMessage(nil, handshake)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrAuthFailed, err)
	}
	if cs1 == nil || cs2 == nil {
		return errIncomplete
	}
	return p.derive(r, peerEphemeral)
}

func (_ProtocolV1) derive(r *Runner, peerEphemeral []byte) (err error) {
	secret, err := curve25519.X25519(r.ephem.Private, peerEphemeral)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrAuthFailed, err)
	}
	defer kc.Wipe(secret)

	binding := r.hs.ChannelBinding()
	s := &r.secrets
	if s.auth, err = kc.DeriveKey(secret, binding, infoAuth, authSize); err != nil {
		return err
	}
	if s.key, err = kc.DeriveKey(secret, binding, infoKey, kc.KeySize); err != nil {
		return err
	}
	if s.unique, err = kc.DeriveKey(secret, binding, infoSession, uniqueSize); err != nil {
		return err
	}
	return nil
}

func (_ProtocolV1) Proof(r *Runner, previous kc.Key, label string) ([]byte, error) {
	if previous == nil {
		return nil, core.ErrNoPreviousKey
	}
	prev := previous.UniqueSession()
	if len(prev) == 0 {
		return nil, core.ErrNoPreviousKey
	}
	mac := hmac.New(sha256.New, prev)
	mac.Write([]byte(label))
	mac.Write(r.secrets.unique)
	return mac.Sum(nil), nil
}

var _ _Protocol = _ProtocolV1{}
