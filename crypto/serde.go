package kc

import "errors"

//go:generate msgp

var (
	ErrBadKeyType      = errors.New("invalid or unsupported key type")
	ErrTrailingKeyData = errors.New("trailing bytes after serialized key")
)

//msgp:tuple KeyMsgp
type KeyMsgp struct {
	Type   Type
	Data   []byte
	Unique []byte
}

// KeyUnmarshaller is a func that creates a Key from its raw material and
// unique session value.
type KeyUnmarshaller func(data, unique []byte) (Key, error)

// KeyUnmarshallers is a map of unmarshallers by key type
var KeyUnmarshallers = map[Type]KeyUnmarshaller{
	Type_XChaCha20Poly1305: UnmarshalSessionKey,
	Type_Plain:             UnmarshalPlainKey,
}

// UnmarshalKey converts a serialized key into its representative object.
func UnmarshalKey(data []byte) (Key, error) {
	var msg KeyMsgp
	rest, err := msg.UnmarshalMsg(data)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, ErrTrailingKeyData
	}

	return KeyFromMsgp(msg)
}

// KeyFromMsgp converts an unserialized KeyMsgp into its representative
// object.
func KeyFromMsgp(msg KeyMsgp) (Key, error) {
	um, ok := KeyUnmarshallers[msg.Type]
	if !ok {
		return nil, ErrBadKeyType
	}

	return um(msg.Data, msg.Unique)
}

// MarshalKey converts a key object into its serialized form.
func MarshalKey(k Key) ([]byte, error) {
	msg, err := KeyToMsgp(k)
	if err != nil {
		return nil, err
	}

	return msg.MarshalMsg(nil)
}

// KeyToMsgp converts a key object into an unserialized KeyMsgp.
func KeyToMsgp(k Key) (KeyMsgp, error) {
	data, err := k.Raw()
	if err != nil {
		return KeyMsgp{}, err
	}
	return KeyMsgp{
		Type:   k.Type(),
		Data:   data,
		Unique: k.UniqueSession(),
	}, nil
}
