package kc

import (
	mh "github.com/multiformats/go-multihash"
)

// Fingerprint returns a short printable digest of the key material, safe to
// log or show to the operator.
func Fingerprint(k Key) (string, error) {
	raw, err := k.Raw()
	if err != nil {
		return "", err
	}
	defer zeroKeys(raw)
	sum, err := mh.Sum(append(raw, k.UniqueSession()...), mh.SHA2_256, -1)
	if err != nil {
		return "", err
	}
	return sum.B58String(), nil
}
