package merkle

import (
	"encoding/hex"
	"encoding/json"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/iov-one/weft/crypto"
	"github.com/iov-one/weft/errors"
)

// NodePrefix is prepended to the children of every internal node.
const NodePrefix byte = 0x01

// Hash is a 32 byte keccak-256 digest.
type Hash [crypto.HashSize]byte

// ZeroHash is the hash with all bytes set to zero. It never identifies a
// valid tree.
var ZeroHash Hash

// HashFromBytes copies a 32 byte slice into a Hash.
func HashFromBytes(b []byte) (Hash, error) {
	var h Hash
	if len(b) != len(h) {
		return h, errors.Wrapf(errors.ErrInput, "hash must be %d bytes, got %d", len(h), len(b))
	}
	copy(h[:], b)
	return h, nil
}

// IsZero returns true for the zero hash.
func (h Hash) IsZero() bool {
	return h == ZeroHash
}

// Bytes returns a copy of the hash as a slice.
func (h Hash) Bytes() []byte {
	out := make([]byte, len(h))
	copy(out, h[:])
	return out
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h *Hash) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(err, "cannot decode json")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "hash hex: %s", err)
	}
	v, err := HashFromBytes(b)
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// NodeHash combines two children into their parent. A nil right child
// duplicates the left one.
func NodeHash(left Hash, right *Hash) Hash {
	r := left
	if right != nil {
		r = *right
	}
	return Hash(crypto.Keccak256([]byte{NodePrefix}, left[:], r[:]))
}

// EncodeLeaf returns the tagged canonical encoding of a leaf content. The
// content must be encodable with RLP.
func EncodeLeaf(tag byte, content interface{}) ([]byte, error) {
	if tag == NodePrefix {
		return nil, errors.Wrapf(errors.ErrInput, "leaf tag %#x is reserved for nodes", tag)
	}
	raw, err := rlp.EncodeToBytes(content)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "rlp encode %T: %s", content, err)
	}
	return append([]byte{tag}, raw...), nil
}

// LeafHash returns the hash of the tagged leaf content.
func LeafHash(tag byte, content interface{}) (Hash, error) {
	enc, err := EncodeLeaf(tag, content)
	if err != nil {
		return ZeroHash, err
	}
	return Hash(crypto.Keccak256(enc)), nil
}
