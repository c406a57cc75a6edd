package pairing

import (
	"errors"
	"fmt"
	"kpair/runner/core"
)

type _Stage [2]byte

func (s *_Stage) Set(a, b byte) {
	*s = _Stage{a, b}
}

type Error struct {
	Initiator bool
	Stage     _Stage
	Wrapped   error
}

func (e Error) Error() string {
	var role = "responder"
	if e.Initiator {
		role = "initiator"
	}
	return fmt.Sprintf("pairing: %s, stage=%d.%d, role=%s", e.Wrapped, e.Stage[0], e.Stage[1], role)
}

func (e Error) Unwrap() error { return e.Wrapped }

var (
	ErrUnsupportedVersion = errors.New("unsupported version")
	ErrBadFormat          = errors.New("bad format")
	ErrBadOption          = errors.New("bad option")
	ErrNoKey              = errors.New("no key saved for remote device")
	ErrPinRejected        = core.ErrPinRejected
)

func badFormat(err error) error {
	return fmt.Errorf("%w: %v", ErrBadFormat, err)
}
