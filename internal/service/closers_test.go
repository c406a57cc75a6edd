package service_test

import (
	"kpair/internal/service"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

type closer struct{ n atomic.Int32 }

func (c *closer) Close() error {
	c.n.Add(1)
	return nil
}

func TestClosers(t *testing.T) {
	cs := service.NewClosers()
	kept, released := new(closer), new(closer)

	_, ok := cs.Add(kept)
	require.True(t, ok)
	release, ok := cs.Add(released)
	require.True(t, ok)
	release()
	require.Equal(t, 1, cs.Len())

	cs.CloseAll()
	require.EqualValues(t, 1, kept.n.Load())
	require.EqualValues(t, 0, released.n.Load())
	require.Equal(t, 0, cs.Len())

	late := new(closer)
	_, ok = cs.Add(late)
	require.False(t, ok)
	require.EqualValues(t, 1, late.n.Load())
	require.Equal(t, 0, cs.Len())
}
