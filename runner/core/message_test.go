package core_test

import (
	kc "kpair/crypto"
	"kpair/runner/core"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_HandshakeMessage_Invariants(t *testing.T) {
	m := core.InProgress([]byte("next"))
	require.Equal(t, core.StateInProgress, m.State())
	require.Nil(t, m.Key())
	require.Empty(t, m.VerificationCode())

	m = core.VerificationNeeded(nil, "123456")
	require.Equal(t, core.StateVerificationNeeded, m.State())
	require.False(t, m.HasNextMessage())
	require.Nil(t, m.Key())
	require.Equal(t, "123456", m.VerificationCode())

	key := kc.NewPlainKey(nil)
	m = core.Finished(key, nil)
	require.Equal(t, core.StateFinished, m.State())
	require.Same(t, key, m.Key())
	require.Empty(t, m.VerificationCode())

	require.Panics(t, func() { core.Finished(nil, nil) })
}

func Test_HandshakeMessage_Immutable(t *testing.T) {
	next := []byte("next")
	m := core.InProgress(next)
	next[0] = 'X'
	require.Equal(t, []byte("next"), m.NextMessage())

	out := m.NextMessage()
	out[0] = 'Y'
	require.Equal(t, []byte("next"), m.NextMessage())
}
