package core

import (
	"errors"
	"fmt"
)

type Error struct {
	Op      Op
	Role    Role
	Stage   Stage
	Wrapped error
}

func (e Error) Error() string {
	return fmt.Sprintf("handshake: %s, op=%s, stage=%s, role=%s", e.Wrapped, e.Op, e.Stage, e.Role)
}

func (e Error) Unwrap() error { return e.Wrapped }

var (
	ErrInvalidState       = errors.New("call out of protocol order")
	ErrBadFormat          = errors.New("bad format")
	ErrUnexpectedMessage  = errors.New("unexpected message")
	ErrUnsupportedVersion = errors.New("unsupported version")
	ErrAuthFailed         = errors.New("authentication failed")
	ErrPinRejected        = errors.New("verification code was rejected")
	ErrNoPreviousKey      = errors.New("no previous key")
)
