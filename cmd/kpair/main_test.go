package main

import (
	"bytes"
	"context"
	"kpair/peer"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Prompt(t *testing.T) {
	var out bytes.Buffer
	p := newPrompt(strings.NewReader("y\nno\n"), &out)
	id := peer.New()

	ok, err := p.confirm(context.Background(), id, "071465")
	require.NoError(t, err)
	require.True(t, ok)
	require.Contains(t, out.String(), "071465")

	ok, err = p.confirm(context.Background(), id, "071465")
	require.NoError(t, err)
	require.False(t, ok)
}

func Test_Prompt_Canceled(t *testing.T) {
	var out bytes.Buffer
	p := newPrompt(blockingReader{}, &out)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.confirm(ctx, peer.New(), "123456")
	require.ErrorIs(t, err, context.Canceled)
}

type blockingReader struct{}

func (blockingReader) Read([]byte) (int, error) { select {} }
