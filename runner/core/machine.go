package core

type Role uint8

const (
	RoleUnknown Role = iota
	RoleClient
	RoleServer
)

func (r Role) String() string {
	switch r {
	case RoleClient:
		return "client"
	case RoleServer:
		return "server"
	default:
		return "unknown"
	}
}

type Stage uint8

const (
	StageNew Stage = iota
	// client sent its init and waits for the server's reply
	StageAwaitServerInit
	// server replied and waits for the client's last message
	StageAwaitClientFinished
	StageVerify
	StageResume
	// client sent its reconnection proof
	StageAwaitServerProof
	StageFinished
	StageRejected
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageNew:
		return "new"
	case StageAwaitServerInit:
		return "await-server-init"
	case StageAwaitClientFinished:
		return "await-client-finished"
	case StageVerify:
		return "verify"
	case StageResume:
		return "resume"
	case StageAwaitServerProof:
		return "await-server-proof"
	case StageFinished:
		return "finished"
	case StageRejected:
		return "rejected"
	case StageFailed:
		return "failed"
	default:
		return "invalid"
	}
}

type Op string

const (
	OpInitHandshake Op = "InitHandshake"
	OpRespond       Op = "RespondToInitRequest"
	OpContinue      Op = "ContinueHandshake"
	OpVerifyPin     Op = "VerifyPin"
	OpInvalidPin    Op = "InvalidPin"
	OpInitReconnect Op = "InitReconnectAuthentication"
	OpAuthReconnect Op = "AuthenticateReconnection"
)

// Machine tracks role and stage for a runner. Any failed call poisons it:
// every later call fails too, so a half-done or rejected handshake never
// yields a key.
type Machine struct {
	role  Role
	stage Stage
}

func (m *Machine) Role() Role   { return m.role }
func (m *Machine) Stage() Stage { return m.stage }

// Begin checks that op is allowed in the current stage, fixing the role on
// the first call. The returned error is already wrapped.
func (m *Machine) Begin(op Op) error {
	switch m.stage {
	case StageRejected:
		return m.Fail(op, ErrPinRejected)
	case StageFailed, StageFinished:
		return m.Fail(op, ErrInvalidState)
	}

	ok := false
	switch op {
	case OpInitHandshake:
		if ok = m.stage == StageNew; ok {
			m.role = RoleClient
		}
	case OpRespond:
		if ok = m.stage == StageNew; ok {
			m.role = RoleServer
		}
	case OpContinue:
		ok = m.role == RoleClient && m.stage == StageAwaitServerInit ||
			m.role == RoleServer && m.stage == StageAwaitClientFinished
	case OpVerifyPin:
		ok = m.stage == StageVerify
	case OpInitReconnect:
		ok = m.role == RoleClient && m.stage == StageResume
	case OpAuthReconnect:
		ok = m.role == RoleServer && m.stage == StageResume ||
			m.role == RoleClient && m.stage == StageAwaitServerProof
	}
	if !ok {
		return m.Fail(op, ErrInvalidState)
	}
	return nil
}

// Advance moves to the next stage of a successful call.
func (m *Machine) Advance(s Stage) {
	if s < m.stage {
		panic("core: handshake stage moved backwards")
	}
	m.stage = s
}

// Exchanged is the stage reached once both sides hold the shared secret.
func (m *Machine) Exchanged(reconnect bool) Stage {
	if reconnect {
		return StageResume
	}
	return StageVerify
}

// Reject marks the pairing as refused by the operator. Finished runners are
// left alone since their key has already been handed out.
func (m *Machine) Reject() {
	if m.stage == StageFinished {
		return
	}
	m.stage = StageRejected
}

// Fail poisons the machine and wraps err with the failing op.
func (m *Machine) Fail(op Op, err error) error {
	e := Error{Op: op, Role: m.role, Stage: m.stage, Wrapped: err}
	if m.stage != StageRejected {
		m.stage = StageFailed
	}
	return e
}

func (m *Machine) Done() bool {
	return m.stage >= StageFinished
}
