package crypto

import (
	"golang.org/x/crypto/sha3"
)

// HashSize is the width of all digests produced by this package.
const HashSize = 32

// Keccak256 returns the legacy (pre-standard) keccak-256 digest of the
// concatenation of all given chunks.
func Keccak256(chunks ...[]byte) [HashSize]byte {
	h := sha3.NewLegacyKeccak256()
	for _, c := range chunks {
		h.Write(c)
	}
	var out [HashSize]byte
	h.Sum(out[:0])
	return out
}
