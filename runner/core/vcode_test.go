package core_test

import (
	"kpair/runner/core"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ReadableCode_UnsignedBytes(t *testing.T) {
	code, err := core.ReadableCode([]byte{0, 7, 161, 194, 196, 255})
	require.NoError(t, err)
	require.Equal(t, "071465", code)
}

func Test_ReadableCode_UsesLeadingBytes(t *testing.T) {
	code, err := core.ReadableCode([]byte{9, 10, 11, 128, 200, 99, 42, 42})
	require.NoError(t, err)
	require.Equal(t, "901809", code)
}

func Test_ReadableCode_Short(t *testing.T) {
	_, err := core.ReadableCode([]byte{1, 2, 3})
	require.ErrorIs(t, err, core.ErrShortAuth)
}
