package pairing_test

import (
	"context"
	"io"
	"kpair/internal/ktest"
	kfake "kpair/internal/ktest/fake"
	"kpair/pairing"
	"kpair/peer"
	"kpair/runner/core"
	sec "kpair/security"
	"kpair/store"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type device struct {
	cfg     pairing.Config
	keys    *store.Mem
	accept  bool
	asked   atomic.Int32
	code    atomic.Value
	confirm pairing.ConfirmFunc
}

func newDevice(cap sec.Cap) *device {
	return &device{
		cfg:    pairing.Config{LocalID: peer.New(), Cap: cap, Timeout: 5 * time.Second},
		keys:   store.NewMem(),
		accept: true,
	}
}

func (d *device) model() pairing.IModel {
	confirm := d.confirm
	if confirm == nil {
		confirm = func(ctx context.Context, remote peer.ID, code string) (bool, error) {
			d.asked.Add(1)
			d.code.Store(code)
			return d.accept, nil
		}
	}
	return pairing.WithConfirm(d.keys, confirm)
}

type outcome struct {
	i, r       pairing.Result
	iErr, rErr error
}

func run(t *testing.T, ctx context.Context, phone, head *device, hsopt pairing.HSOpt) outcome {
	c := ktest.TcpPair()
	t.Cleanup(c.Close)

	var o outcome
	scope := ktest.Scope()
	scope.Go(func() {
		o.i, o.iErr = pairing.Initiate(ctx, &phone.cfg, hsopt, phone.model(), c.A)
	})
	scope.Go(func() {
		o.r, o.rErr = pairing.Respond(context.Background(), &head.cfg, head.model(), c.B)
	})
	scope.Wait()
	return o
}

func requireTalk(t *testing.T, o outcome) {
	testDataA, testDataB := kfake.Bytes(16), kfake.Bytes(100_000)
	scope := ktest.Scope()
	scope.Go(func() {
		ktest.RequireWriteSuccess(t, o.i.Conn, testDataA)
		ktest.RequireReadEqual(t, o.i.Conn, testDataB)
	})
	scope.Go(func() {
		ktest.RequireReadEqual(t, o.r.Conn, testDataA)
		ktest.RequireWriteSuccess(t, o.r.Conn, testDataB)
	})
	scope.Wait()
}

func Test_Pairing_FirstTime(t *testing.T) {
	phone, head := newDevice(false), newDevice(false)
	o := run(t, context.Background(), phone, head, pairing.HSOpt{Level: sec.Whatever})
	require.NoError(t, o.iErr)
	require.NoError(t, o.rErr)

	require.Equal(t, head.cfg.LocalID, o.i.RemoteID)
	require.Equal(t, phone.cfg.LocalID, o.r.RemoteID)
	require.True(t, o.i.Conn.IsSecure())
	require.False(t, o.i.Resumed)
	require.True(t, o.i.Conn.Key().Equals(o.r.Conn.Key()))

	require.EqualValues(t, 1, phone.asked.Load())
	require.EqualValues(t, 1, head.asked.Load())
	require.Equal(t, phone.code.Load(), head.code.Load())
	require.Len(t, phone.code.Load(), core.VerificationCodeLength)

	_, found, _ := phone.keys.LoadKey(head.cfg.LocalID)
	require.True(t, found)
	_, found, _ = head.keys.LoadKey(phone.cfg.LocalID)
	require.True(t, found)

	requireTalk(t, o)
}

func Test_Pairing_Passthrough(t *testing.T) {
	phone, head := newDevice(true), newDevice(true)
	o := run(t, context.Background(), phone, head, pairing.HSOpt{Level: sec.RequirePassthrough})
	require.NoError(t, o.iErr)
	require.NoError(t, o.rErr)
	require.False(t, o.i.Conn.IsSecure())
	require.Equal(t, "123456", phone.code.Load())
	requireTalk(t, o)
}

func Test_Pairing_BadOption(t *testing.T) {
	phone, head := newDevice(true), newDevice(false)
	o := run(t, context.Background(), phone, head, pairing.HSOpt{Level: sec.RequirePassthrough})
	require.ErrorIs(t, o.rErr, pairing.ErrBadOption)
	require.ErrorIs(t, o.iErr, io.EOF)

	phone = newDevice(false)
	o = run(t, context.Background(), phone, head, pairing.HSOpt{Level: sec.RequirePassthrough})
	require.ErrorIs(t, o.iErr, pairing.ErrBadOption)
}

func Test_Pairing_Rejected(t *testing.T) {
	for _, side := range []string{"phone", "head"} {
		t.Run(side, func(t *testing.T) {
			phone, head := newDevice(false), newDevice(false)
			if side == "phone" {
				phone.accept = false
			} else {
				head.accept = false
			}
			o := run(t, context.Background(), phone, head, pairing.HSOpt{Level: sec.Whatever})
			require.ErrorIs(t, o.iErr, pairing.ErrPinRejected)
			require.ErrorIs(t, o.rErr, pairing.ErrPinRejected)

			var perr pairing.Error
			require.ErrorAs(t, o.iErr, &perr)
			require.True(t, perr.Initiator)

			require.Empty(t, phone.keys.Remotes())
			require.Empty(t, head.keys.Remotes())
		})
	}
}

func Test_Pairing_Resume(t *testing.T) {
	phone, head := newDevice(false), newDevice(false)
	o := run(t, context.Background(), phone, head, pairing.HSOpt{Level: sec.Whatever})
	require.NoError(t, o.iErr)
	first := o.i.Conn.Key()

	o = run(t, context.Background(), phone, head, pairing.HSOpt{Level: sec.Whatever, Resume: true})
	require.NoError(t, o.iErr)
	require.NoError(t, o.rErr)
	require.True(t, o.i.Resumed)
	require.True(t, o.r.Resumed)
	require.False(t, first.Equals(o.i.Conn.Key()))
	// no code was shown the second time
	require.EqualValues(t, 1, phone.asked.Load())
	require.EqualValues(t, 1, head.asked.Load())
	requireTalk(t, o)
}

func Test_Pairing_ResumeWithoutKey(t *testing.T) {
	phone, head := newDevice(false), newDevice(false)
	o := run(t, context.Background(), phone, head, pairing.HSOpt{Level: sec.Whatever, Resume: true})
	require.NoError(t, o.iErr)
	require.NoError(t, o.rErr)
	require.False(t, o.i.Resumed)
	require.EqualValues(t, 1, phone.asked.Load())
}

func Test_Pairing_ResumeWrongKey(t *testing.T) {
	phone, head := newDevice(false), newDevice(false)
	o := run(t, context.Background(), phone, head, pairing.HSOpt{Level: sec.Whatever})
	require.NoError(t, o.iErr)

	// the head unit forgets and pairs with someone else under the same ID
	stranger := newDevice(false)
	stranger.cfg.LocalID = phone.cfg.LocalID
	other := newDevice(false)
	o = run(t, context.Background(), stranger, other, pairing.HSOpt{Level: sec.Whatever})
	require.NoError(t, o.iErr)
	b, _, _ := other.keys.LoadKey(stranger.cfg.LocalID)
	require.NoError(t, head.keys.SaveKey(phone.cfg.LocalID, b))

	o = run(t, context.Background(), phone, head, pairing.HSOpt{Level: sec.Whatever, Resume: true})
	require.ErrorIs(t, o.rErr, core.ErrAuthFailed)
	require.Error(t, o.iErr)
}

func Test_Pairing_Canceled(t *testing.T) {
	phone, head := newDevice(false), newDevice(false)
	phone.confirm = func(ctx context.Context, remote peer.ID, code string) (bool, error) {
		<-ctx.Done()
		return false, ctx.Err()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	o := run(t, ctx, phone, head, pairing.HSOpt{Level: sec.Whatever})
	require.ErrorIs(t, o.iErr, context.DeadlineExceeded)
	require.Error(t, o.rErr)
	require.Empty(t, head.keys.Remotes())
}

func Test_Pairing_Pairer(t *testing.T) {
	phone, head := newDevice(false), newDevice(false)
	c := ktest.TcpPair()
	defer c.Close()

	var o outcome
	scope := ktest.Scope()
	scope.Go(func() {
		o.i, o.iErr = pairing.New(phone.cfg, phone.model()).
			HandleOutbound(context.Background(), c.A, pairing.HSOpt{Level: sec.RequireSecure})
	})
	scope.Go(func() {
		o.r, o.rErr = pairing.New(head.cfg, head.model()).
			HandleInbound(context.Background(), c.B)
	})
	scope.Wait()
	require.NoError(t, o.iErr)
	require.NoError(t, o.rErr)
	requireTalk(t, o)
}
