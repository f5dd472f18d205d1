package ledger

import "math/rand/v2"

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newID returns an opaque 9-character base-36 identifier. Uniqueness is
// probabilistic, which is acceptable at this scale and matches the ids
// already present in stored data.
func newID() string {
	b := make([]byte, 9)
	for i := range b {
		b[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return string(b)
}
