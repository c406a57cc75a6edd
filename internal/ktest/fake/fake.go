package kfake

import "math/rand"

func Bytes(n int) []byte {
	var buf = make([]byte, n)
	rand.Read(buf)
	return buf
}

// Code returns a random verification code of the usual shape.
func Code() string {
	const digits = "0123456789"
	b := make([]byte, 6)
	for i := range b {
		b[i] = digits[rand.Intn(len(digits))]
	}
	return string(b)
}
