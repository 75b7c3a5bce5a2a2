package weavetest

import (
	"crypto/rand"
	"testing"

	"github.com/iov-one/weft"
	"github.com/iov-one/weft/crypto"
)

// NewKey returns a random ed25519 signer.
func NewKey() crypto.Signer {
	k, err := crypto.GenEd25519()
	if err != nil {
		panic(err)
	}
	return k
}

// NewSecpKey returns a random secp256k1 signer.
func NewSecpKey() crypto.Signer {
	k, err := crypto.GenSecp256k1()
	if err != nil {
		panic(err)
	}
	return k
}

// NewCondition returns the condition of a random key.
func NewCondition() weft.Condition {
	return NewKey().PublicKey().Condition()
}

// RandomAddr returns a valid address that is not guaranteed to match any
// existing account.
func RandomAddr(t testing.TB) weft.Address {
	t.Helper()
	b := make([]byte, weft.AddressLength)
	if _, err := rand.Read(b); err != nil {
		t.Fatalf("cannot read random data: %s", err)
	}
	return b
}
