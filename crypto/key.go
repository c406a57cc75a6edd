package kc

import (
	"crypto/subtle"
	"errors"
)

type Type int

const (
	Type_XChaCha20Poly1305 Type = iota
	Type_Plain
)

func (t Type) String() string {
	switch t {
	case Type_XChaCha20Poly1305:
		return "xchacha20poly1305"
	case Type_Plain:
		return "plain"
	default:
		return "unknown"
	}
}

var (
	ErrDecrypt   = errors.New("decryption failed")
	ErrKeyLength = errors.New("invalid key length")
)

// Key is the symmetric secret produced by a finished handshake. It owns its
// key material exclusively.
type Key interface {
	// Equals checks whether two Keys hold the same material.
	Equals(Key) bool

	// Raw returns a copy of the raw key material.
	Raw() ([]byte, error)

	// Type returns the key type, used to pick an unmarshaller.
	Type() Type

	// EncryptData seals plaintext. Two calls with the same input never
	// produce the same output.
	EncryptData(plaintext []byte) ([]byte, error)

	// DecryptData opens data sealed by EncryptData of an equal key. It fails
	// with ErrDecrypt on malformed, tampered or foreign input.
	DecryptData(ciphertext []byte) ([]byte, error)

	// UniqueSession returns a value identifying the handshake the key came
	// from. It authenticates a later reconnection.
	UniqueSession() []byte

	// AsBytes serializes the key so that it can be persisted and restored
	// with UnmarshalKey.
	AsBytes() ([]byte, error)
}

// KeyEqual checks whether two Keys are equivalent (have identical byte representations).
func KeyEqual(k1, k2 Key) bool {
	if k1 == k2 {
		return true
	}
	if k1 == nil || k2 == nil {
		return false
	}

	return k1.Equals(k2)
}

func basicEquals(k1, k2 Key) bool {
	if k1.Type() != k2.Type() {
		return false
	}

	a, err := k1.Raw()
	if err != nil {
		return false
	}
	b, err := k2.Raw()
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1 &&
		subtle.ConstantTimeCompare(k1.UniqueSession(), k2.UniqueSession()) == 1
}
