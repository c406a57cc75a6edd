package ktest

import (
	"kpair/runner/core"
	"testing"

	"github.com/stretchr/testify/require"
)

// Exchange drives client and server through the three handshake messages
// and returns their last results. It reports the number of messages that
// crossed the wire.
func Exchange(t *testing.T, client, server core.IRunner) (cm, sm core.HandshakeMessage, messages int) {
	t.Helper()
	init, err := client.InitHandshake()
	require.NoError(t, err)
	require.Equal(t, core.StateInProgress, init.State())
	messages++

	resp, err := server.RespondToInitRequest(init.NextMessage())
	require.NoError(t, err)
	require.Equal(t, core.StateInProgress, resp.State())
	messages++

	cm, err = client.ContinueHandshake(resp.NextMessage())
	require.NoError(t, err)
	if cm.HasNextMessage() {
		messages++
	}

	sm, err = server.ContinueHandshake(cm.NextMessage())
	require.NoError(t, err)
	if sm.HasNextMessage() {
		messages++
	}
	return
}
