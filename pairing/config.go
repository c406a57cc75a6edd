package pairing

import (
	"crypto/rand"
	"io"
	"kpair/peer"
	"kpair/runner/core"
	sec "kpair/security"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultTimeout bounds a whole pairing session. It includes the time the
// operator takes to compare the verification code.
const DefaultTimeout = 2 * time.Minute

type Config struct {
	LocalID peer.ID
	// Cap permits the pass-through runner on this endpoint.
	Cap     sec.Cap
	Timeout time.Duration

	Log  logrus.FieldLogger
	Rand io.Reader
}

func (c Config) WithDefaults() Config {
	if c.LocalID.IsEmpty() {
		c.LocalID = peer.New()
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Log == nil {
		c.Log = core.DiscardLogger()
	}
	if c.Rand == nil {
		c.Rand = rand.Reader
	}
	return c
}
