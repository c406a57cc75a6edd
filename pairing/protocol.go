package pairing

import "context"

type _Protocol interface {
	HandleInitiator(ctx context.Context, s *_Session) error
	HandleResponder(ctx context.Context, s *_Session) error
}

var protocols = map[byte]_Protocol{
	0x01: _ProtocolV1{},
}
