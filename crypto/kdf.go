package kc

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DeriveKey expands secret into size bytes with HKDF-SHA256.
func DeriveKey(secret, salt []byte, info string, size int) ([]byte, error) {
	r := hkdf.New(sha256.New, secret, salt, []byte(info))
	out := make([]byte, size)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, err
	}
	return out, nil
}

// zeroKeys fills all slices passed in with zeros.
func zeroKeys(keys ...[]byte) {
	for _, key := range keys {
		for i := range key {
			key[i] = 0
		}
	}
}

// Wipe zeroes the given secrets in place.
func Wipe(secrets ...[]byte) { zeroKeys(secrets...) }
