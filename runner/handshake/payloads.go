package handshake

//go:generate msgp -unexported -v -io=false

type _MsgType uint8

const (
	msgClientInit _MsgType = 1 + iota
	msgServerInit
	msgClientFinished
	msgClientProof
	msgServerProof
)

//msgp:tuple _ClientInit
type _ClientInit struct {
	Type       _MsgType
	Versions   [4]uint8
	Random     []byte
	Commitment []byte
}

//msgp:tuple _ServerInit
type _ServerInit struct {
	Type      _MsgType
	Version   uint8
	Handshake []byte
}

//msgp:tuple _ClientFinished
type _ClientFinished struct {
	Type      _MsgType
	Handshake []byte
}

//msgp:tuple _Proof
type _Proof struct {
	Type _MsgType
	MAC  []byte
}
