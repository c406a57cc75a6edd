package service

import (
	"io"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v2"
)

// Closers holds the resources a service hands out during one run, so that
// stopping the service can release them. The zero value is not usable.
type Closers struct {
	m      *xsync.MapOf[uint64, io.Closer]
	next   atomic.Uint64
	closed atomic.Bool
}

func NewClosers() *Closers {
	return &Closers{m: xsync.NewIntegerMapOf[uint64, io.Closer]()}
}

// Add tracks c until the returned release func is called. Once CloseAll has
// run, c is closed immediately and ok is false.
func (cs *Closers) Add(c io.Closer) (release func(), ok bool) {
	id := cs.next.Add(1)
	cs.m.Store(id, c)
	if cs.closed.Load() {
		if c, loaded := cs.m.LoadAndDelete(id); loaded {
			c.Close()
		}
		return func() {}, false
	}
	return func() { cs.m.Delete(id) }, true
}

// CloseAll closes everything tracked so far and everything added later.
func (cs *Closers) CloseAll() {
	cs.closed.Store(true)
	cs.m.Range(func(id uint64, _ io.Closer) bool {
		if c, loaded := cs.m.LoadAndDelete(id); loaded {
			c.Close()
		}
		return true
	})
}

func (cs *Closers) Len() int { return cs.m.Size() }
