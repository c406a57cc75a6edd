// Package runner selects a handshake runner implementation.
package runner

import (
	kc "kpair/crypto"
	"kpair/runner/core"
	"kpair/runner/dummy"
	"kpair/runner/handshake"
)

func New(cfg core.Config) core.IRunner {
	switch cfg.Kind {
	case core.KindDummy:
		return dummy.New(cfg)
	default:
		return handshake.New(cfg)
	}
}

// KeyOf restores a serialized key of any runner kind.
func KeyOf(serialized []byte) (kc.Key, error) {
	return kc.UnmarshalKey(serialized)
}
