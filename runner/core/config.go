package core

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Kind selects the runner implementation.
type Kind uint8

const (
	// KindUKey2 is the real commit-then-exchange handshake.
	KindUKey2 Kind = iota
	// KindDummy passes fixed messages around and derives no secret. It only
	// exists to exercise pairing code without cryptography.
	KindDummy
)

func (k Kind) String() string {
	switch k {
	case KindUKey2:
		return "ukey2"
	case KindDummy:
		return "dummy"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "ukey2":
		return KindUKey2, nil
	case "dummy":
		return KindDummy, nil
	}
	return 0, fmt.Errorf("unknown runner kind %q", s)
}

type Config struct {
	Kind Kind

	// Reconnect replaces pin verification by a proof of a previously
	// shared key.
	Reconnect bool

	Log  logrus.FieldLogger
	Rand io.Reader
}

// WithDefaults returns a copy of c with a discarding logger and crypto/rand
// filled in where unset.
func (c Config) WithDefaults() Config {
	if c.Log == nil {
		c.Log = DiscardLogger()
	}
	if c.Rand == nil {
		c.Rand = rand.Reader
	}
	return c
}

func DiscardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
