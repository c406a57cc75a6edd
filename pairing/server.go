package pairing

import (
	"context"
	"errors"
	"net"
	"sync"

	"kpair/internal/service"
)

// Handler takes over a paired connection. It owns the connection, but the
// server closes it when stopped so that Stop never waits on a handler
// blocked in I/O.
type Handler func(ctx context.Context, r Result)

// Server accepts pairing requests on a TCP address, as a head unit does.
// Start, Stop and Toggle come from the embedded service.
type Server struct {
	*service.Service

	addr    string
	pairer  IPairer
	cfg     Config
	handler Handler

	mu       sync.Mutex
	listener net.Listener
}

func NewServer(addr string, cfg Config, model IModel, handler Handler) *Server {
	cfg = cfg.WithDefaults()
	if handler == nil {
		handler = func(ctx context.Context, r Result) { r.Conn.Close() }
	}
	s := &Server{
		addr:    addr,
		pairer:  New(cfg, model),
		cfg:     cfg,
		handler: handler,
	}
	s.Service = service.New(s, cfg.Log.WithField("server", addr))
	return s
}

// Addr is the bound address while the server is started.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func (s *Server) OnServiceStart(ctx context.Context) error {
	var lc net.ListenConfig
	l, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		l.Close()
		return ctx.Err()
	}
	s.mu.Lock()
	s.listener = l
	s.mu.Unlock()
	s.cfg.Log.WithField("addr", l.Addr()).Info("waiting for devices")
	return nil
}

func (s *Server) OnServiceRun(ctx context.Context) error {
	s.mu.Lock()
	l := s.listener
	s.mu.Unlock()

	conns := service.NewClosers()
	stopClosing := context.AfterFunc(ctx, conns.CloseAll)
	defer stopClosing()

	var wg sync.WaitGroup
	defer wg.Wait()
	defer conns.CloseAll()
	defer s.closeListener()

	for {
		conn, err := l.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		release, ok := conns.Add(conn)
		if !ok {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer release()
			r, err := s.pairer.HandleInbound(ctx, conn)
			if err != nil {
				return
			}
			releasePaired, ok := conns.Add(r.Conn)
			if !ok {
				return
			}
			defer releasePaired()
			s.handler(ctx, r)
		}()
	}
}

func (s *Server) OnServiceStop() {
	s.closeListener()
}

func (s *Server) closeListener() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		s.listener.Close()
		s.listener = nil
	}
}
