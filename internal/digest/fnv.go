package digest

import (
	"encoding/binary"
	"encoding/hex"
	"hash/fnv"
)

const (
	fnvSalt   = "pilearning/fallback/v1"
	fnvRounds = 1024
	fnvLanes  = 4
)

// FNVDigester is the fallback driver for deployments that distrust the
// strong primitive. It runs four independent FNV-1a lanes, each iterated a
// fixed number of rounds over the salted input, and concatenates the lane
// outputs into the same 64-hex-character shape the strong driver produces.
// It is deterministic and never fails, but it is not a password hash;
// records created under it stay on it permanently (the driver tag on the
// record pins verification to this path).
type FNVDigester struct{}

func (FNVDigester) Digest(plaintext string) (string, error) {
	out := make([]byte, fnvLanes*8)

	for lane := 0; lane < fnvLanes; lane++ {
		h := fnv.New64a()
		h.Write([]byte(fnvSalt))
		h.Write([]byte{byte(lane)})
		h.Write([]byte(plaintext))
		v := h.Sum64()

		var buf [8]byte
		for i := 1; i < fnvRounds; i++ {
			binary.BigEndian.PutUint64(buf[:], v)
			h.Reset()
			h.Write([]byte(fnvSalt))
			h.Write(buf[:])
			v = h.Sum64()
		}

		binary.BigEndian.PutUint64(out[lane*8:], v)
	}

	return hex.EncodeToString(out), nil
}

func (FNVDigester) Driver() DriverName { return DriverFNV }
