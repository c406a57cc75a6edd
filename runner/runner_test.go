package runner_test

import (
	kc "kpair/crypto"
	"kpair/internal/ktest"
	"kpair/runner"
	"kpair/runner/core"
	"testing"

	"github.com/stretchr/testify/require"
)

var kinds = []core.Kind{core.KindUKey2, core.KindDummy}

type pair struct {
	client, server core.IRunner
	messages       int
}

func (p *pair) exchange(t *testing.T) (core.HandshakeMessage, core.HandshakeMessage) {
	cm, sm, n := ktest.Exchange(t, p.client, p.server)
	p.messages += n
	return cm, sm
}

func newPair(kind core.Kind, reconnect bool) *pair {
	cfg := core.Config{Kind: kind, Reconnect: reconnect}
	return &pair{client: runner.New(cfg), server: runner.New(cfg)}
}

func forEachKind(t *testing.T, f func(t *testing.T, kind core.Kind)) {
	for _, kind := range kinds {
		kind := kind
		t.Run(kind.String(), func(t *testing.T) { f(t, kind) })
	}
}

func Test_Runner_Kind(t *testing.T) {
	forEachKind(t, func(t *testing.T, kind core.Kind) {
		require.Equal(t, kind, runner.New(core.Config{Kind: kind}).Kind())
	})
}

func Test_Runner_Pairing(t *testing.T) {
	forEachKind(t, func(t *testing.T, kind core.Kind) {
		p := newPair(kind, false)
		cm, sm := p.exchange(t)
		require.Equal(t, 3, p.messages)
		require.Equal(t, core.StateVerificationNeeded, cm.State())
		require.Equal(t, cm.VerificationCode(), sm.VerificationCode())
		require.Nil(t, cm.Key())

		cf, err := p.client.VerifyPin()
		require.NoError(t, err)
		sf, err := p.server.VerifyPin()
		require.NoError(t, err)
		require.Equal(t, core.StateFinished, cf.State())
		require.Empty(t, cf.VerificationCode())

		for _, dir := range [][2]kc.Key{{cf.Key(), sf.Key()}, {sf.Key(), cf.Key()}} {
			ct, err := dir[0].EncryptData([]byte("test data"))
			require.NoError(t, err)
			pt, err := dir[1].DecryptData(ct)
			require.NoError(t, err)
			require.Equal(t, []byte("test data"), pt)
		}

		b, err := cf.Key().AsBytes()
		require.NoError(t, err)
		restored, err := runner.KeyOf(b)
		require.NoError(t, err)
		require.True(t, restored.Equals(sf.Key()))
	})
}

func Test_Runner_RejectedNeverFinishes(t *testing.T) {
	forEachKind(t, func(t *testing.T, kind core.Kind) {
		p := newPair(kind, false)
		p.exchange(t)
		p.client.InvalidPin()
		p.server.InvalidPin()
		for _, r := range []core.IRunner{p.client, p.server} {
			m, err := r.VerifyPin()
			require.ErrorIs(t, err, core.ErrPinRejected)
			require.Nil(t, m.Key())
		}
	})
}

func Test_Runner_VerifyTooEarly(t *testing.T) {
	forEachKind(t, func(t *testing.T, kind core.Kind) {
		r := runner.New(core.Config{Kind: kind})
		_, err := r.VerifyPin()
		require.ErrorIs(t, err, core.ErrInvalidState)

		r = runner.New(core.Config{Kind: kind})
		_, err = r.InitHandshake()
		require.NoError(t, err)
		_, err = r.InitHandshake()
		require.ErrorIs(t, err, core.ErrInvalidState)
	})
}

func Test_Runner_Reconnect(t *testing.T) {
	forEachKind(t, func(t *testing.T, kind core.Kind) {
		first := newPair(kind, false)
		first.exchange(t)
		cf, err := first.client.VerifyPin()
		require.NoError(t, err)
		sf, err := first.server.VerifyPin()
		require.NoError(t, err)

		p := newPair(kind, true)
		cm, sm := p.exchange(t)
		require.Equal(t, core.StateResumingSession, cm.State())
		require.Equal(t, core.StateResumingSession, sm.State())
		require.Empty(t, cm.VerificationCode())

		proof, err := p.client.InitReconnectAuthentication(cf.Key())
		require.NoError(t, err)
		sdone, err := p.server.AuthenticateReconnection(proof.NextMessage(), sf.Key())
		require.NoError(t, err)
		cdone, err := p.client.AuthenticateReconnection(sdone.NextMessage(), cf.Key())
		require.NoError(t, err)
		require.Equal(t, core.StateFinished, cdone.State())
		require.True(t, cdone.Key().Equals(sdone.Key()))
	})
}
