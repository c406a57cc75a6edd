package core

import (
	"errors"
	"strings"
)

// VerificationCodeLength is the number of digits shown to the operator.
const VerificationCodeLength = 6

var ErrShortAuth = errors.New("not enough auth bytes for a verification code")

// ReadableCode turns the first VerificationCodeLength bytes of auth into
// decimal digits, one per byte. Each byte is taken as 0..255 before the
// modulo, so {0, 7, 161, 194, 196, 255} gives "071465".
func ReadableCode(auth []byte) (string, error) {
	if len(auth) < VerificationCodeLength {
		return "", ErrShortAuth
	}
	var b strings.Builder
	b.Grow(VerificationCodeLength)
	for _, v := range auth[:VerificationCodeLength] {
		b.WriteByte('0' + byte(uint(v)%10))
	}
	return b.String(), nil
}
