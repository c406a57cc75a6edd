package peer

import (
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

// ID identifies a paired device. It is a flag byte followed by the device's
// UUID, kept as a string so that it can key maps.
type ID string

const deviceFlag byte = 0xFF
const idLen = len(uuid.UUID{}) + 1

var (
	ErrBadLength = errors.New("device ID should have exactly " + strconv.Itoa(idLen) + " bytes")
	ErrBadFlag   = errors.New("device ID has an unknown flag")
)

// New returns a fresh random device ID.
func New() ID {
	return IDFromUUID(uuid.New())
}

// IDFromUUID returns the device ID corresponding to the given UUID.
func IDFromUUID(uid uuid.UUID) ID {
	b := make([]byte, idLen)
	b[0] = deviceFlag
	copy(b[1:], uid[:])
	return ID(b)
}

func IDFromBytes(b []byte) (ID, error) {
	id := ID(b)
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

// Decode parses the base58 form returned by ID.String.
func Decode(s string) (ID, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return "", err
	}
	return IDFromBytes(b)
}

func (id ID) Validate() error {
	if len(id) != idLen {
		return ErrBadLength
	}
	if id[0] != deviceFlag {
		return ErrBadFlag
	}
	return nil
}

func (id ID) IsEmpty() bool { return id == "" }

func (id ID) UUID() uuid.UUID {
	var uid uuid.UUID
	if id.Validate() == nil {
		copy(uid[:], id[1:])
	}
	return uid
}

func (id ID) Bytes() []byte { return []byte(id) }

func (id ID) String() string {
	if id.IsEmpty() {
		return "<empty>"
	}
	return base58.Encode([]byte(id))
}
