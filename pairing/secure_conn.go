package pairing

import (
	kc "kpair/crypto"
	"kpair/pairing/rw"
	"kpair/peer"
	"sync"

	pool "github.com/libp2p/go-buffer-pool"
)

// SecureConn seals every frame with the session key. It is returned by a
// successful pairing and carries the connection from then on.
type SecureConn struct {
	rw.RW
	remoteID peer.ID
	key      kc.Key

	rLock, wLock sync.Mutex

	qseek int    // queued bytes seek value.
	qbuf  []byte // queued bytes buffer.
}

func newSecureConn(r rw.RW, key kc.Key, remoteID peer.ID) *SecureConn {
	c := new(SecureConn)
	c.RW = r
	c.key = key
	c.remoteID = remoteID
	return c
}

func (c *SecureConn) RemoteID() peer.ID { return c.remoteID }

func (c *SecureConn) Key() kc.Key { return c.key }

// IsSecure is false for connections paired by the pass-through runner.
func (c *SecureConn) IsSecure() bool {
	return c.key.Type() != kc.Type_Plain
}

func (c *SecureConn) Read(buf []byte) (int, error) {
	c.rLock.Lock()
	defer c.rLock.Unlock()

	if c.qbuf != nil {
		// we have queued bytes; copy as much as we can.
		copied := copy(buf, c.qbuf[c.qseek:])
		c.qseek += copied
		if c.qseek == len(c.qbuf) {
			c.qseek, c.qbuf = 0, nil
		}
		return copied, nil
	}

	// length of the next encrypted message.
	nextMsgLen, err := c.ReadNextInsecureMsgLen()
	if err != nil {
		return 0, err
	}

	cbuf := pool.Get(nextMsgLen)
	defer pool.Put(cbuf)
	if err := c.ReadNextMsgInsecure(cbuf); err != nil {
		return 0, err
	}

	plain, err := c.key.DecryptData(cbuf)
	if err != nil {
		return 0, err
	}

	// copy as many bytes as we can and queue the rest.
	copied := copy(buf, plain)
	if copied < len(plain) {
		c.qbuf, c.qseek = plain, copied
	}
	return copied, nil
}

func (c *SecureConn) Write(data []byte) (int, error) {
	c.wLock.Lock()
	defer c.wLock.Unlock()

	var (
		written int
		total   = len(data)
	)

	for written < total {
		end := written + rw.MaxPlaintextLength
		if end > total {
			end = total
		}

		sealed, err := c.key.EncryptData(data[written:end])
		if err != nil {
			return written, err
		}

		if err := c.WriteFrame(sealed); err != nil {
			return written, err
		}
		written = end
	}
	return written, nil
}
