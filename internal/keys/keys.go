package keys

import (
	"crypto/sha256"

	"github.com/google/uuid"
)

// KeySize is the size of the derived symmetric key (AES-128).
const KeySize = 16

// Derive computes the content key for one (video, user, session)
// triple. Deterministic: same inputs always give the same key, but a
// new session id changes it, so every re-login invalidates previously
// derivable keys without any revocation bookkeeping.
func Derive(videoID, userID, sessionID uuid.UUID, secret []byte) []byte {
	h := sha256.New()
	h.Write([]byte(videoID.String()))
	h.Write([]byte(userID.String()))
	h.Write([]byte(sessionID.String()))
	h.Write(secret)

	return h.Sum(nil)[:KeySize]
}
