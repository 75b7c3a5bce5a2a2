package crypto

import (
	"crypto/ecdsa"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/iov-one/weft/errors"
	"golang.org/x/crypto/ed25519"
)

// Signer is the functionality we use from a private key.
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(digest []byte) ([]byte, error)
	PublicKey() PublicKey
}

// Secp256k1Signer signs digests with a secp256k1 private key.
type Secp256k1Signer struct {
	key *ecdsa.PrivateKey
}

var _ Signer = (*Secp256k1Signer)(nil)

// GenSecp256k1 returns a random new private key.
func GenSecp256k1() (*Secp256k1Signer, error) {
	key, err := ethcrypto.GenerateKey()
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "generate secp256k1 key: %s", err)
	}
	return &Secp256k1Signer{key: key}, nil
}

// Secp256k1FromSeed deterministically loads a private key from a 32 byte
// secret. Use for deterministic keys in test cases and tooling.
func Secp256k1FromSeed(seed []byte) (*Secp256k1Signer, error) {
	key, err := ethcrypto.ToECDSA(seed)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "secp256k1 seed: %s", err)
	}
	return &Secp256k1Signer{key: key}, nil
}

// Sign returns a 65 byte r ‖ s ‖ v signature with v in {27, 28}.
func (s *Secp256k1Signer) Sign(digest []byte) ([]byte, error) {
	sig, err := ethcrypto.Sign(digest, s.key)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "secp256k1 sign: %s", err)
	}
	sig[64] += 27
	return sig, nil
}

// PublicKey returns the compressed public key.
func (s *Secp256k1Signer) PublicKey() PublicKey {
	return NewSecp256k1PublicKey(ethcrypto.CompressPubkey(&s.key.PublicKey))
}

// Ed25519Signer signs digests with an ed25519 private key.
type Ed25519Signer struct {
	key ed25519.PrivateKey
}

var _ Signer = (*Ed25519Signer)(nil)

// GenEd25519 returns a random new private key.
func GenEd25519() (*Ed25519Signer, error) {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "generate ed25519 key: %s", err)
	}
	return &Ed25519Signer{key: priv}, nil
}

// Ed25519FromSeed will deterministically generate a private key from
// a given seed. Use if you have a strong source of external randomness,
// or for deterministic keys in test cases.
func Ed25519FromSeed(seed []byte) (*Ed25519Signer, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, errors.Wrapf(errors.ErrInput, "ed25519 seed must be %d bytes", ed25519.SeedSize)
	}
	return &Ed25519Signer{key: ed25519.NewKeyFromSeed(seed)}, nil
}

// Sign returns a 64 byte signature.
func (s *Ed25519Signer) Sign(digest []byte) ([]byte, error) {
	return ed25519.Sign(s.key, digest), nil
}

// PublicKey returns the corresponding PublicKey
func (s *Ed25519Signer) PublicKey() PublicKey {
	return NewEd25519PublicKey(s.key.Public().(ed25519.PublicKey))
}
