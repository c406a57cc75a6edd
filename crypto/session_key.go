package kc

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

const (
	KeySize = chacha20poly1305.KeySize

	// Overhead is the number of bytes EncryptData adds to a plaintext.
	Overhead = chacha20poly1305.NonceSizeX + chacha20poly1305.Overhead
)

// SessionKey seals data with XChaCha20-Poly1305. Every ciphertext carries its
// own random 24-byte nonce, so the key can be used from both ends without
// coordinating counters.
type SessionKey struct {
	raw    [KeySize]byte
	unique []byte
	rand   io.Reader
}

var _ Key = (*SessionKey)(nil)

// NewSessionKey copies raw and unique into a new key.
func NewSessionKey(raw, unique []byte) (*SessionKey, error) {
	if len(raw) != KeySize {
		return nil, ErrKeyLength
	}
	k := &SessionKey{rand: rand.Reader}
	copy(k.raw[:], raw)
	k.unique = append([]byte(nil), unique...)
	return k, nil
}

// UnmarshalSessionKey is the unmarshaller registered for Type_XChaCha20Poly1305.
func UnmarshalSessionKey(data, unique []byte) (Key, error) {
	return NewSessionKey(data, unique)
}

func (k *SessionKey) Type() Type { return Type_XChaCha20Poly1305 }

func (k *SessionKey) Raw() ([]byte, error) {
	return append([]byte(nil), k.raw[:]...), nil
}

func (k *SessionKey) UniqueSession() []byte {
	return append([]byte(nil), k.unique...)
}

func (k *SessionKey) Equals(o Key) bool {
	return basicEquals(k, o)
}

func (k *SessionKey) AsBytes() ([]byte, error) {
	return MarshalKey(k)
}

func (k *SessionKey) EncryptData(plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(k.raw[:])
	if err != nil {
		return nil, err
	}
	out := make([]byte, chacha20poly1305.NonceSizeX, Overhead+len(plaintext))
	if _, err := io.ReadFull(k.rand, out); err != nil {
		return nil, err
	}
	return aead.Seal(out, out, plaintext, nil), nil
}

func (k *SessionKey) DecryptData(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < Overhead {
		return nil, ErrDecrypt
	}
	aead, err := chacha20poly1305.NewX(k.raw[:])
	if err != nil {
		return nil, err
	}
	nonce, sealed := ciphertext[:chacha20poly1305.NonceSizeX], ciphertext[chacha20poly1305.NonceSizeX:]
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrDecrypt
	}
	if plaintext == nil {
		plaintext = []byte{}
	}
	return plaintext, nil
}
