package handshake

import (
	"crypto/sha256"
	"crypto/subtle"

	kc "kpair/crypto"
)

type _Version = uint8

// _Protocol holds everything after version negotiation. ClientInit is
// version independent so that a server can pick the version from it.
type _Protocol interface {
	// Respond starts the exchange on the server and returns the handshake
	// bytes for ServerInit.
	Respond(r *Runner) ([]byte, error)
	// ClientFinish consumes the server's handshake bytes and returns the
	// bytes for ClientFinished. The secrets are derived afterwards.
	ClientFinish(r *Runner, handshake []byte) ([]byte, error)
	// ServerFinish consumes the client's last handshake bytes.
	ServerFinish(r *Runner, handshake []byte) error
	// Proof computes the reconnection proof of side label.
	Proof(r *Runner, previous kc.Key, label string) ([]byte, error)
}

var protocols = map[_Version]_Protocol{
	0x01: _ProtocolV1{},
}

var supportedVersions = [4]uint8{0x01}

const (
	randomSize     = 32
	commitmentSize = sha256.Size
	commitLabel    = "kpair commitment"
)

func chooseVersion(offered [4]uint8) (_Version, bool) {
	var best _Version
	for _, v := range offered {
		if _, ok := protocols[v]; ok && v > best {
			best = v
		}
	}
	return best, best != 0
}

func offersVersion(v _Version) bool {
	for _, o := range supportedVersions {
		if o != 0 && o == v {
			return true
		}
	}
	return false
}

func commit(ephemeralPub []byte) []byte {
	h := sha256.New()
	h.Write([]byte(commitLabel))
	h.Write(ephemeralPub)
	return h.Sum(nil)
}

func commitmentMatches(commitment, ephemeralPub []byte) bool {
	return subtle.ConstantTimeCompare(commitment, commit(ephemeralPub)) == 1
}
