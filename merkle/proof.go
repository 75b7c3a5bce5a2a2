package merkle

import (
	"github.com/iov-one/weft/errors"
)

// Side tells on which side of the current node the sibling lies.
type Side uint8

const (
	SiblingLeft  Side = 0
	SiblingRight Side = 1
)

// ProofStep is a single level of an inclusion proof.
type ProofStep struct {
	Side    Side
	Sibling Hash
}

const stepSize = 1 + len(Hash{})

// Proof is an inclusion proof, ordered from the leaf level up to the root.
// A valid proof has at least one step since a root is never a leaf.
type Proof []ProofStep

// Root folds the proof over the leaf and returns the implied root.
func (p Proof) Root(leaf Hash) Hash {
	cur := leaf
	for _, step := range p {
		sib := step.Sibling
		if step.Side == SiblingLeft {
			cur = NodeHash(sib, &cur)
		} else {
			cur = NodeHash(cur, &sib)
		}
	}
	return cur
}

// Verify returns true if leaf is included in the tree with given root.
func (p Proof) Verify(leaf, root Hash) bool {
	if len(p) == 0 {
		return false
	}
	return p.Root(leaf) == root
}

// Marshal serializes the proof as a sequence of (side ‖ sibling) records.
func (p Proof) Marshal() []byte {
	out := make([]byte, 0, len(p)*stepSize)
	for _, step := range p {
		out = append(out, byte(step.Side))
		out = append(out, step.Sibling[:]...)
	}
	return out
}

// UnmarshalProof decodes a proof serialized with Proof.Marshal.
func UnmarshalProof(raw []byte) (Proof, error) {
	if len(raw)%stepSize != 0 {
		return nil, errors.Wrapf(errors.ErrInput, "proof length %d is not a multiple of %d", len(raw), stepSize)
	}
	p := make(Proof, 0, len(raw)/stepSize)
	for i := 0; i < len(raw); i += stepSize {
		side := Side(raw[i])
		if side != SiblingLeft && side != SiblingRight {
			return nil, errors.Wrapf(errors.ErrInput, "proof step %d: invalid side %d", i/stepSize, side)
		}
		var sib Hash
		copy(sib[:], raw[i+1:i+stepSize])
		p = append(p, ProofStep{Side: side, Sibling: sib})
	}
	return p, nil
}
