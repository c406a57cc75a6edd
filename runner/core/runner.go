package core

import kc "kpair/crypto"

// IRunner drives one side of a single pairing handshake. Calls must follow
// protocol order:
//
//	client                                 server
//	InitHandshake           -> init ->     RespondToInitRequest
//	ContinueHandshake       <- resp <-
//	                        -> fin  ->     ContinueHandshake
//	VerifyPin | InvalidPin                 VerifyPin | InvalidPin
//
// In reconnect mode the pin step is replaced by
//
//	InitReconnectAuthentication  -> proof ->  AuthenticateReconnection
//	AuthenticateReconnection     <- proof <-
//
// A runner is single use and not safe for concurrent calls. Once it failed
// or was rejected it never hands out a key.
type IRunner interface {
	InitHandshake() (HandshakeMessage, error)
	RespondToInitRequest(init []byte) (HandshakeMessage, error)
	ContinueHandshake(response []byte) (HandshakeMessage, error)
	VerifyPin() (HandshakeMessage, error)
	InvalidPin()

	InitReconnectAuthentication(previous kc.Key) (HandshakeMessage, error)
	AuthenticateReconnection(message []byte, previous kc.Key) (HandshakeMessage, error)

	// KeyOf restores a key serialized with Key.AsBytes.
	KeyOf(serialized []byte) (kc.Key, error)

	Role() Role
	Kind() Kind
}
