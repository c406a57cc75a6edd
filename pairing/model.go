package pairing

import (
	"context"
	"kpair/peer"
)

// IKeyStore persists serialized session keys by remote device.
type IKeyStore interface {
	LoadKey(remote peer.ID) (key []byte, found bool, err error)
	SaveKey(remote peer.ID, key []byte) error
}

// ConfirmFunc shows code to the operator and reports whether it matches
// the one on the remote device.
type ConfirmFunc func(ctx context.Context, remote peer.ID, code string) (bool, error)

type IModel interface {
	IKeyStore
	ConfirmCode(ctx context.Context, remote peer.ID, code string) (bool, error)
}

type _Model struct {
	IKeyStore
	confirm ConfirmFunc
}

func (m _Model) ConfirmCode(ctx context.Context, remote peer.ID, code string) (bool, error) {
	return m.confirm(ctx, remote, code)
}

func WithConfirm(keys IKeyStore, confirm ConfirmFunc) IModel {
	return _Model{keys, confirm}
}
