package pairing

import (
	"kpair/pairing/rw"

	pool "github.com/libp2p/go-buffer-pool"
	"github.com/tinylib/msgp/msgp"
)

type _RW struct {
	rw.RW
}

// ReadMessage reads one frame into um. Trailing bytes are a format error.
func (rw *_RW) ReadMessage(um msgp.Unmarshaler) error {
	n, err := rw.ReadNextInsecureMsgLen()
	if err != nil {
		return err
	}
	buf := pool.Get(n)
	defer pool.Put(buf)

	if err := rw.ReadNextMsgInsecure(buf[:n]); err != nil {
		return err
	}

	rest, err := um.UnmarshalMsg(buf[:n])
	if err != nil {
		return badFormat(err)
	}
	if len(rest) != 0 {
		return ErrBadFormat
	}
	return nil
}

func (rw *_RW) WriteMessage(m msgp.MarshalSizer) error {
	buf := pool.Get(m.Msgsize())
	defer pool.Put(buf)

	encoded, err := m.MarshalMsg(buf[:0])
	if err != nil {
		return err
	}
	return rw.WriteFrame(encoded)
}
