package handshake

import (
	"kpair/runner/core"

	"github.com/tinylib/msgp/msgp"
)

type _Payload interface {
	msgp.Unmarshaler
	msgType() _MsgType
}

func (m *_ClientInit) msgType() _MsgType     { return m.Type }
func (m *_ServerInit) msgType() _MsgType     { return m.Type }
func (m *_ClientFinished) msgType() _MsgType { return m.Type }
func (m *_Proof) msgType() _MsgType          { return m.Type }

// decode parses b into p and checks that it carries the wanted type and
// nothing after it.
func decode(b []byte, p _Payload, want _MsgType) error {
	rest, err := p.UnmarshalMsg(b)
	if err != nil {
		return badFormat(err)
	}
	if len(rest) != 0 {
		return core.ErrBadFormat
	}
	if p.msgType() != want {
		return core.ErrUnexpectedMessage
	}
	return nil
}

func encode(m msgp.MarshalSizer) ([]byte, error) {
	return m.MarshalMsg(make([]byte, 0, m.Msgsize()))
}
