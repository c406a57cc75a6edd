package sec

import "kpair/runner/core"

//go:generate stringer -type=Level
type Level byte

const (
	RequirePassthrough Level = 1 + iota
	Whatever
	RequireSecure
)

func (l Level) Valid() bool {
	return l >= RequirePassthrough && l <= RequireSecure
}

// Accept reports whether the initiator asking for l can live with the
// responder's decision.
func (l Level) Accept(secure bool) bool {
	if secure && l <= RequirePassthrough ||
		!secure && l >= RequireSecure {
		return false
	}
	return true
}

// Kind maps a decision onto the runner implementing it.
func Kind(secure bool) core.Kind {
	if secure {
		return core.KindUKey2
	}
	return core.KindDummy
}
