// Package pairing runs the pairing handshake over a stream connection and
// hands back an encrypted connection to the paired device.
package pairing

import (
	"context"
	"net"
)

type IPairer interface {
	HandleInbound(ctx context.Context, conn net.Conn) (Result, error)
	HandleOutbound(ctx context.Context, conn net.Conn, hsopt HSOpt) (Result, error)
}

type _Pairer struct {
	cfg   Config
	model IModel
}

func New(cfg Config, model IModel) IPairer {
	return &_Pairer{
		cfg:   cfg.WithDefaults(),
		model: model,
	}
}

func (p *_Pairer) HandleInbound(ctx context.Context, conn net.Conn) (Result, error) {
	return Respond(ctx, &p.cfg, p.model, conn)
}

func (p *_Pairer) HandleOutbound(ctx context.Context, conn net.Conn, hsopt HSOpt) (Result, error) {
	return Initiate(ctx, &p.cfg, hsopt, p.model, conn)
}
