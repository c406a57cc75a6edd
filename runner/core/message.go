package core

import kc "kpair/crypto"

// HandshakeMessage is the outcome of one handshake step. The key is set only
// in StateFinished and the verification code only in
// StateVerificationNeeded; the constructors below are the only way to build
// a non-zero message.
type HandshakeMessage struct {
	state HandshakeState
	next  []byte
	key   kc.Key
	code  string
}

func InProgress(next []byte) HandshakeMessage {
	return HandshakeMessage{state: StateInProgress, next: clone(next)}
}

func VerificationNeeded(next []byte, code string) HandshakeMessage {
	return HandshakeMessage{state: StateVerificationNeeded, next: clone(next), code: code}
}

func ResumingSession(next []byte) HandshakeMessage {
	return HandshakeMessage{state: StateResumingSession, next: clone(next)}
}

func Finished(key kc.Key, next []byte) HandshakeMessage {
	if key == nil {
		panic("core: finished handshake without a key")
	}
	return HandshakeMessage{state: StateFinished, next: clone(next), key: key}
}

func (m HandshakeMessage) State() HandshakeState { return m.state }

// NextMessage returns the bytes to send to the peer, or nil if nothing has
// to be sent.
func (m HandshakeMessage) NextMessage() []byte { return clone(m.next) }

func (m HandshakeMessage) HasNextMessage() bool { return m.next != nil }

func (m HandshakeMessage) Key() kc.Key { return m.key }

func (m HandshakeMessage) VerificationCode() string { return m.code }

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append(make([]byte, 0, len(b)), b...)
}
