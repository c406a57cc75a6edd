package core

// HandshakeState is the protocol state reported by every HandshakeMessage.
type HandshakeState uint8

const (
	StateUnknown HandshakeState = iota
	StateInProgress
	StateVerificationNeeded
	StateResumingSession
	StateFinished
	StateInvalid
)

func (s HandshakeState) String() string {
	switch s {
	case StateInProgress:
		return "IN_PROGRESS"
	case StateVerificationNeeded:
		return "VERIFICATION_NEEDED"
	case StateResumingSession:
		return "RESUMING_SESSION"
	case StateFinished:
		return "FINISHED"
	case StateInvalid:
		return "INVALID"
	default:
		return "UNKNOWN"
	}
}
