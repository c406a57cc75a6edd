package pairing

//go:generate msgp -unexported -v -io=false

//msgp:tuple _Hello
type _Hello struct {
	Versions [4]uint8
	DeviceID []byte
	Level    uint8
	Resume   bool
}

//msgp:tuple _Reply
type _Reply struct {
	Version  uint8
	DeviceID []byte
	Secure   bool
	Resume   bool
}

//msgp:tuple _Verdict
type _Verdict struct {
	Accept bool
}

var supportedVersions = [4]uint8{0x01}

func (h *_Hello) PackVersions() {
	h.Versions = supportedVersions
}

func (h *_Hello) ChooseVersion() (uint8, bool) {
	var best uint8
	for _, v := range h.Versions {
		for _, s := range supportedVersions {
			if v != 0 && v == s && v > best {
				best = v
			}
		}
	}
	return best, best != 0
}

func (h *_Hello) VerifyReply(r *_Reply) error {
	for _, v := range h.Versions {
		if v != 0 && v == r.Version {
			return nil
		}
	}
	return ErrUnsupportedVersion
}
