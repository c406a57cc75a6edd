package ktest

import (
	"net"
	"sync"
)

// Pair is a connected loopback TCP pair. A dialed, B accepted.
type Pair struct {
	A, B net.Conn
}

func (p *Pair) Close() {
	if p.A != nil {
		p.A.Close()
	}
	if p.B != nil {
		p.B.Close()
	}
}

func TcpPair() *Pair {
	p := new(Pair)
	l, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		panic(err)
	}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer l.Close()
		p.B, _ = l.Accept()
	}()
	p.A, err = net.Dial("tcp4", l.Addr().String())
	wg.Wait()
	if err != nil || p.B == nil {
		p.Close()
		panic("ktest: cannot set up tcp pair")
	}
	return p
}
