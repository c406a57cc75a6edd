package kc_test

import (
	"crypto/rand"
	kc "kpair/crypto"
	"testing"

	"github.com/stretchr/testify/require"
)

func newKey(t *testing.T) *kc.SessionKey {
	raw := make([]byte, kc.KeySize)
	_, err := rand.Read(raw)
	require.NoError(t, err)
	k, err := kc.NewSessionKey(raw, []byte("unique"))
	require.NoError(t, err)
	return k
}

func Test_SessionKey_RoundTrip(t *testing.T) {
	k := newKey(t)
	for _, data := range [][]byte{{}, []byte("test data"), make([]byte, 4096)} {
		ct, err := k.EncryptData(data)
		require.NoError(t, err)
		require.Len(t, ct, len(data)+kc.Overhead)
		pt, err := k.DecryptData(ct)
		require.NoError(t, err)
		require.Equal(t, data, pt)
	}
}

func Test_SessionKey_NonceNeverRepeats(t *testing.T) {
	k := newKey(t)
	a, err := k.EncryptData([]byte("test data"))
	require.NoError(t, err)
	b, err := k.EncryptData([]byte("test data"))
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func Test_SessionKey_FailsClosed(t *testing.T) {
	k1, k2 := newKey(t), newKey(t)
	ct, err := k1.EncryptData([]byte("test data"))
	require.NoError(t, err)

	_, err = k2.DecryptData(ct)
	require.ErrorIs(t, err, kc.ErrDecrypt)

	tampered := append([]byte(nil), ct...)
	tampered[len(tampered)-1] ^= 0x01
	_, err = k1.DecryptData(tampered)
	require.ErrorIs(t, err, kc.ErrDecrypt)

	_, err = k1.DecryptData(ct[:kc.Overhead-1])
	require.ErrorIs(t, err, kc.ErrDecrypt)
}

func Test_SessionKey_BadLength(t *testing.T) {
	_, err := kc.NewSessionKey(make([]byte, 16), nil)
	require.ErrorIs(t, err, kc.ErrKeyLength)
}

func Test_Key_Serde(t *testing.T) {
	for _, k := range []kc.Key{newKey(t), kc.NewPlainKey([]byte("session"))} {
		b, err := k.AsBytes()
		require.NoError(t, err)
		restored, err := kc.UnmarshalKey(b)
		require.NoError(t, err)
		require.True(t, kc.KeyEqual(k, restored))
		require.Equal(t, k.Type(), restored.Type())
		require.Equal(t, k.UniqueSession(), restored.UniqueSession())

		ct, err := k.EncryptData([]byte("test data"))
		require.NoError(t, err)
		pt, err := restored.DecryptData(ct)
		require.NoError(t, err)
		require.Equal(t, []byte("test data"), pt)
	}
}

func Test_Key_UnmarshalBadType(t *testing.T) {
	msg := kc.KeyMsgp{Type: 42, Data: []byte{1}}
	b, err := msg.MarshalMsg(nil)
	require.NoError(t, err)
	_, err = kc.UnmarshalKey(b)
	require.ErrorIs(t, err, kc.ErrBadKeyType)

	_, err = kc.UnmarshalKey([]byte{0xc1})
	require.Error(t, err)
}

func Test_Key_UnmarshalTrailingData(t *testing.T) {
	b, err := newKey(t).AsBytes()
	require.NoError(t, err)
	_, err = kc.UnmarshalKey(append(b, 0x00))
	require.ErrorIs(t, err, kc.ErrTrailingKeyData)
}

func Test_Fingerprint(t *testing.T) {
	k := newKey(t)
	f1, err := kc.Fingerprint(k)
	require.NoError(t, err)
	b, err := k.AsBytes()
	require.NoError(t, err)
	restored, err := kc.UnmarshalKey(b)
	require.NoError(t, err)
	f2, err := kc.Fingerprint(restored)
	require.NoError(t, err)
	require.Equal(t, f1, f2)

	f3, err := kc.Fingerprint(newKey(t))
	require.NoError(t, err)
	require.NotEqual(t, f1, f3)
}

func Test_DeriveKey(t *testing.T) {
	a, err := kc.DeriveKey([]byte("secret"), []byte("salt"), "a", 32)
	require.NoError(t, err)
	b, err := kc.DeriveKey([]byte("secret"), []byte("salt"), "b", 32)
	require.NoError(t, err)
	again, err := kc.DeriveKey([]byte("secret"), []byte("salt"), "a", 32)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
	require.Equal(t, a, again)
}
