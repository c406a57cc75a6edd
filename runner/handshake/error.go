package handshake

import (
	"errors"
	"fmt"
	"kpair/runner/core"
)

var (
	errCommitment = fmt.Errorf("%w: commitment does not match client key", core.ErrAuthFailed)
	errProof      = fmt.Errorf("%w: reconnection proof mismatch", core.ErrAuthFailed)
	errEphemeral  = errors.New("noise produced an ephemeral key other than the committed one")
	errIncomplete = errors.New("noise handshake did not complete")
)

func badFormat(err error) error {
	return fmt.Errorf("%w: %v", core.ErrBadFormat, err)
}
