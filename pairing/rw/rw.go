// Package rw reads and writes the 2-byte length-prefixed frames every
// pairing connection is made of.
package rw

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"net"

	kc "kpair/crypto"

	pool "github.com/libp2p/go-buffer-pool"
)

const MaxTransportMsgLength = 0xffff
const MaxPlaintextLength = MaxTransportMsgLength - kc.Overhead
const LengthPrefixLength = 2

var ErrFrameTooLarge = errors.New("frame exceeds the maximum transport length")

type conn = net.Conn

type RW struct {
	conn
	insecureReader *bufio.Reader

	buflen [LengthPrefixLength]byte
}

func (rw *RW) Conn() net.Conn {
	return rw.conn
}

func (rw *RW) Init(conn net.Conn) {
	rw.conn = conn
	rw.insecureReader = bufio.NewReader(conn)
}

func (rw *RW) ReadNextInsecureMsgLen() (int, error) {
	buflen := rw.buflen[:]
	_, err := io.ReadFull(rw.insecureReader, buflen)
	if err != nil {
		return 0, err
	}

	return int(binary.BigEndian.Uint16(buflen)), err
}

func (rw *RW) ReadNextMsgInsecure(buf []byte) error {
	_, err := io.ReadFull(rw.insecureReader, buf)
	return err
}

func (rw *RW) WriteMsgInsecure(data []byte) error {
	_, err := rw.conn.Write(data)
	return err
}

// ReadFrame returns the payload of the next frame. The result is owned by
// the caller.
func (rw *RW) ReadFrame() ([]byte, error) {
	n, err := rw.ReadNextInsecureMsgLen()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if err := rw.ReadNextMsgInsecure(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// WriteFrame prefixes data with its length and writes it in one call.
func (rw *RW) WriteFrame(data []byte) error {
	if len(data) > MaxTransportMsgLength {
		return ErrFrameTooLarge
	}
	buf := pool.Get(len(data) + LengthPrefixLength)
	defer pool.Put(buf)

	binary.BigEndian.PutUint16(buf, uint16(len(data)))
	copy(buf[LengthPrefixLength:], data)
	return rw.WriteMsgInsecure(buf)
}
