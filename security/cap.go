package sec

// Cap tells whether an endpoint permits the pass-through runner.
type Cap bool

// Normalize is run by the initiator on the level it is about to request.
func (c Cap) Normalize(level Level) (normed Level, ok bool) {
	if !level.Valid() {
		return 0, false
	}
	if !c {
		if level <= RequirePassthrough {
			return 0, false
		}
		return RequireSecure, true
	}
	return level, true
}

// Decide is run by the responder on the level the initiator requested.
func (c Cap) Decide(peerLevel Level) (secure bool, ok bool) {
	if !peerLevel.Valid() {
		return false, false
	}
	if !c {
		if peerLevel <= RequirePassthrough {
			return false, false
		}
		return true, true
	}
	if peerLevel <= RequirePassthrough {
		return false, true
	}
	return true, true
}
