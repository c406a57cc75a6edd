// Package store keeps the session keys of paired devices.
package store

import (
	"hash/maphash"
	"kpair/peer"
	"sort"

	"github.com/puzpuzpuz/xsync/v2"
)

// Mem is an in-memory key store, safe for concurrent use.
type Mem struct {
	m *xsync.MapOf[peer.ID, []byte]
}

func NewMem() *Mem {
	return &Mem{
		xsync.NewTypedMapOf[peer.ID, []byte](func(s maphash.Seed, id peer.ID) uint64 {
			return maphash.String(s, string(id))
		}),
	}
}

func (s *Mem) LoadKey(remote peer.ID) ([]byte, bool, error) {
	key, ok := s.m.Load(remote)
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), key...), true, nil
}

func (s *Mem) SaveKey(remote peer.ID, key []byte) error {
	if err := remote.Validate(); err != nil {
		return err
	}
	s.m.Store(remote, append([]byte(nil), key...))
	return nil
}

func (s *Mem) Forget(remote peer.ID) error {
	s.m.Delete(remote)
	return nil
}

// Remotes lists the paired devices in a stable order.
func (s *Mem) Remotes() []peer.ID {
	ids := make([]peer.ID, 0, s.m.Size())
	s.m.Range(func(id peer.ID, _ []byte) bool {
		ids = append(ids, id)
		return true
	})
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
