package kc

// PlainKey is the key handed out by the pass-through runner. It does not
// encrypt anything and must never protect real traffic.
type PlainKey struct {
	unique []byte
}

var _ Key = (*PlainKey)(nil)

var plainRaw = []byte("plain")

func NewPlainKey(unique []byte) *PlainKey {
	return &PlainKey{unique: append([]byte(nil), unique...)}
}

// UnmarshalPlainKey is the unmarshaller registered for Type_Plain.
func UnmarshalPlainKey(data, unique []byte) (Key, error) {
	if string(data) != string(plainRaw) {
		return nil, ErrBadKeyType
	}
	return NewPlainKey(unique), nil
}

func (k *PlainKey) Type() Type { return Type_Plain }

func (k *PlainKey) Raw() ([]byte, error) {
	return append([]byte(nil), plainRaw...), nil
}

func (k *PlainKey) UniqueSession() []byte {
	return append([]byte(nil), k.unique...)
}

func (k *PlainKey) Equals(o Key) bool {
	return basicEquals(k, o)
}

func (k *PlainKey) AsBytes() ([]byte, error) {
	return MarshalKey(k)
}

func (k *PlainKey) EncryptData(plaintext []byte) ([]byte, error) {
	return append([]byte{}, plaintext...), nil
}

func (k *PlainKey) DecryptData(ciphertext []byte) ([]byte, error) {
	return append([]byte{}, ciphertext...), nil
}
