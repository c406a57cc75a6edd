package pairing

import sec "kpair/security"

// HSOpt holds the initiator's wishes for one session.
type HSOpt struct {
	Level sec.Level
	// Resume asks to authenticate with a previously saved key instead of a
	// verification code. The responder falls back to a fresh pairing when
	// it has no key for us.
	Resume bool
}
