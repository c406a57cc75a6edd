package core_test

import (
	"kpair/runner/core"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Machine_ClientFlow(t *testing.T) {
	var m core.Machine
	require.NoError(t, m.Begin(core.OpInitHandshake))
	require.Equal(t, core.RoleClient, m.Role())
	m.Advance(core.StageAwaitServerInit)
	require.NoError(t, m.Begin(core.OpContinue))
	m.Advance(m.Exchanged(false))
	require.NoError(t, m.Begin(core.OpVerifyPin))
	m.Advance(core.StageFinished)
	require.True(t, m.Done())

	err := m.Begin(core.OpVerifyPin)
	require.ErrorIs(t, err, core.ErrInvalidState)
}

func Test_Machine_OutOfOrder(t *testing.T) {
	cases := []struct {
		name string
		ops  []core.Op
	}{
		{"init twice", []core.Op{core.OpInitHandshake, core.OpInitHandshake}},
		{"respond after init", []core.Op{core.OpInitHandshake, core.OpRespond}},
		{"verify first", []core.Op{core.OpVerifyPin}},
		{"continue first", []core.Op{core.OpContinue}},
		{"reconnect first", []core.Op{core.OpAuthReconnect}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var m core.Machine
			var err error
			for _, op := range c.ops {
				err = m.Begin(op)
				if err == nil && op == core.OpInitHandshake {
					m.Advance(core.StageAwaitServerInit)
				}
			}
			require.ErrorIs(t, err, core.ErrInvalidState)
			var herr core.Error
			require.ErrorAs(t, err, &herr)
			require.Equal(t, c.ops[len(c.ops)-1], herr.Op)
			require.Equal(t, core.StageFailed, m.Stage())
		})
	}
}

func Test_Machine_RejectIsSticky(t *testing.T) {
	var m core.Machine
	require.NoError(t, m.Begin(core.OpRespond))
	m.Advance(core.StageAwaitClientFinished)
	require.NoError(t, m.Begin(core.OpContinue))
	m.Advance(m.Exchanged(false))
	m.Reject()

	for i := 0; i < 2; i++ {
		err := m.Begin(core.OpVerifyPin)
		require.ErrorIs(t, err, core.ErrPinRejected)
		require.Equal(t, core.StageRejected, m.Stage())
	}
}
