package digest

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

// The salt is fixed and application-specific rather than per-record:
// digests must be deterministic so stored credentials can be compared by
// recomputation alone.
const (
	pbkdf2Salt       = "pilearning/digest/v1"
	pbkdf2Iterations = 120_000
	pbkdf2KeyLen     = 32
)

// PBKDF2Digester is the strong driver: PBKDF2-SHA256 with a fixed
// application salt and iteration count, hex-encoded to 64 characters.
type PBKDF2Digester struct{}

func (PBKDF2Digester) Digest(plaintext string) (string, error) {
	key := pbkdf2.Key([]byte(plaintext), []byte(pbkdf2Salt), pbkdf2Iterations, pbkdf2KeyLen, sha256.New)
	return hex.EncodeToString(key), nil
}

func (PBKDF2Digester) Driver() DriverName { return DriverPBKDF2 }
