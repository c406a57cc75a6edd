package rw_test

import (
	"kpair/internal/ktest"
	kfake "kpair/internal/ktest/fake"
	"kpair/pairing/rw"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_RW_Frames(t *testing.T) {
	c := ktest.TcpPair()
	defer c.Close()

	var a, b rw.RW
	a.Init(c.A)
	b.Init(c.B)

	payloads := [][]byte{{}, kfake.Bytes(1), kfake.Bytes(1024), kfake.Bytes(rw.MaxTransportMsgLength)}

	scope := ktest.Scope()
	scope.Go(func() {
		for _, p := range payloads {
			require.NoError(t, a.WriteFrame(p))
		}
	})
	scope.Go(func() {
		for _, p := range payloads {
			got, err := b.ReadFrame()
			require.NoError(t, err)
			require.Equal(t, p, got)
		}
	})
	scope.Wait()

	require.ErrorIs(t, a.WriteFrame(kfake.Bytes(rw.MaxTransportMsgLength+1)), rw.ErrFrameTooLarge)
}
