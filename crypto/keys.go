package crypto

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"math/big"
	"strings"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/iov-one/weft"
	"github.com/iov-one/weft/errors"
	"golang.org/x/crypto/ed25519"
)

// ExtensionName is used for the conditions we get from signatures
const ExtensionName = "sigs"

// KeyType declares the signature scheme of a public key.
type KeyType uint8

const (
	Secp256k1 KeyType = 1
	Ed25519   KeyType = 2
)

const (
	secp256k1KeySize = 33
	secp256k1SigSize = 65
)

func (t KeyType) String() string {
	switch t {
	case Secp256k1:
		return "secp256k1"
	case Ed25519:
		return "ed25519"
	default:
		return "unknown"
	}
}

func parseKeyType(s string) (KeyType, error) {
	switch s {
	case "secp256k1":
		return Secp256k1, nil
	case "ed25519":
		return Ed25519, nil
	default:
		return 0, errors.Wrapf(errors.ErrType, "unknown key type %q", s)
	}
}

// PublicKey is a typed verifier public key. Field order matters, the struct
// is part of the RLP encoded verifier set leaf.
type PublicKey struct {
	Type KeyType
	Key  []byte
}

// NewSecp256k1PublicKey returns a public key from its compressed form.
func NewSecp256k1PublicKey(compressed []byte) PublicKey {
	return PublicKey{Type: Secp256k1, Key: compressed}
}

// NewEd25519PublicKey returns an ed25519 public key.
func NewEd25519PublicKey(key []byte) PublicKey {
	return PublicKey{Type: Ed25519, Key: key}
}

// Validate returns an error if the key length does not match its type.
func (p PublicKey) Validate() error {
	switch p.Type {
	case Secp256k1:
		if len(p.Key) != secp256k1KeySize {
			return errors.Wrapf(errors.ErrInput, "secp256k1 key must be %d bytes, got %d", secp256k1KeySize, len(p.Key))
		}
		if _, err := ethcrypto.DecompressPubkey(p.Key); err != nil {
			return errors.Wrapf(errors.ErrInput, "secp256k1 key: %s", err)
		}
	case Ed25519:
		if len(p.Key) != ed25519.PublicKeySize {
			return errors.Wrapf(errors.ErrInput, "ed25519 key must be %d bytes, got %d", ed25519.PublicKeySize, len(p.Key))
		}
	default:
		return errors.Wrapf(errors.ErrType, "key type %d", p.Type)
	}
	return nil
}

// Equals returns true if both keys are of the same type and value.
func (p PublicKey) Equals(o PublicKey) bool {
	return p.Type == o.Type && bytes.Equal(p.Key, o.Key)
}

// Verify returns true if sig is a valid signature of digest created by the
// owner of this key.
func (p PublicKey) Verify(digest, sig []byte) bool {
	switch p.Type {
	case Secp256k1:
		return verifySecp256k1(p.Key, digest, sig)
	case Ed25519:
		if len(p.Key) != ed25519.PublicKeySize || len(sig) != ed25519.SignatureSize {
			return false
		}
		return ed25519.Verify(ed25519.PublicKey(p.Key), digest, sig)
	default:
		return false
	}
}

// verifySecp256k1 recovers the signer of a 65 byte r ‖ s ‖ v signature and
// compares it with the expected compressed key. Both the 0/1 and 27/28
// recovery id conventions are accepted.
func verifySecp256k1(compressed, digest, sig []byte) bool {
	if len(sig) != secp256k1SigSize || len(digest) != HashSize {
		return false
	}
	normalized := make([]byte, secp256k1SigSize)
	copy(normalized, sig)
	if normalized[64] >= 27 {
		normalized[64] -= 27
	}
	if normalized[64] > 1 {
		return false
	}
	// Reject malleable signatures with a high s value.
	if !ethcrypto.ValidateSignatureValues(normalized[64], new(big.Int).SetBytes(normalized[:32]), new(big.Int).SetBytes(normalized[32:64]), true) {
		return false
	}
	recovered, err := ethcrypto.SigToPub(digest, normalized)
	if err != nil {
		return false
	}
	return bytes.Equal(ethcrypto.CompressPubkey(recovered), compressed)
}

// Condition encodes the public key into a weft condition.
func (p PublicKey) Condition() weft.Condition {
	return weft.NewCondition(ExtensionName, p.Type.String(), p.Key)
}

// Address returns the address of the key condition.
func (p PublicKey) Address() weft.Address {
	return p.Condition().Address()
}

// String returns the "<type>:<hex key>" representation.
func (p PublicKey) String() string {
	return p.Type.String() + ":" + hex.EncodeToString(p.Key)
}

func (p PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PublicKey) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(err, "cannot decode json")
	}
	key, err := ParsePublicKey(s)
	if err != nil {
		return err
	}
	*p = key
	return nil
}

// ParsePublicKey decodes the "<type>:<hex key>" representation.
func ParsePublicKey(s string) (PublicKey, error) {
	chunks := strings.SplitN(s, ":", 2)
	if len(chunks) != 2 {
		return PublicKey{}, errors.Wrapf(errors.ErrInput, "public key %q: want <type>:<hex>", s)
	}
	typ, err := parseKeyType(chunks[0])
	if err != nil {
		return PublicKey{}, err
	}
	key, err := hex.DecodeString(chunks[1])
	if err != nil {
		return PublicKey{}, errors.Wrapf(errors.ErrInput, "public key hex: %s", err)
	}
	p := PublicKey{Type: typ, Key: key}
	if err := p.Validate(); err != nil {
		return PublicKey{}, err
	}
	return p, nil
}
