package merkle

import (
	"github.com/iov-one/weft/errors"
)

// Tree keeps every level of a Merkle tree so that proofs can be produced
// for any leaf.
type Tree struct {
	// levels[0] holds the leaves, the last level holds the root.
	levels [][]Hash
}

// NewTree builds a tree over the given leaf hashes. At least one leaf is
// required. The root is always a node hash, a single leaf is combined with
// itself.
func NewTree(leaves []Hash) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, errors.Wrap(errors.ErrEmpty, "merkle tree leaves")
	}
	level := make([]Hash, len(leaves))
	copy(level, leaves)
	levels := [][]Hash{level}
	for len(levels) == 1 || len(level) > 1 {
		next := make([]Hash, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 < len(level) {
				next = append(next, NodeHash(level[i], &level[i+1]))
			} else {
				next = append(next, NodeHash(level[i], nil))
			}
		}
		levels = append(levels, next)
		level = next
	}
	return &Tree{levels: levels}, nil
}

// Root returns the root hash of the tree.
func (t *Tree) Root() Hash {
	return t.levels[len(t.levels)-1][0]
}

// Len returns the number of leaves.
func (t *Tree) Len() int {
	return len(t.levels[0])
}

// Leaf returns the hash of the leaf at given position.
func (t *Tree) Leaf(i int) (Hash, error) {
	if i < 0 || i >= t.Len() {
		return ZeroHash, errors.Wrapf(errors.ErrInput, "leaf %d out of %d", i, t.Len())
	}
	return t.levels[0][i], nil
}

// Proof returns the inclusion proof of the leaf at given position.
func (t *Tree) Proof(i int) (Proof, error) {
	if i < 0 || i >= t.Len() {
		return nil, errors.Wrapf(errors.ErrInput, "leaf %d out of %d", i, t.Len())
	}
	var p Proof
	idx := i
	for _, level := range t.levels[:len(t.levels)-1] {
		if idx%2 == 1 {
			p = append(p, ProofStep{Side: SiblingLeft, Sibling: level[idx-1]})
		} else if idx+1 < len(level) {
			p = append(p, ProofStep{Side: SiblingRight, Sibling: level[idx+1]})
		} else {
			// No right sibling, the node was combined with itself.
			p = append(p, ProofStep{Side: SiblingRight, Sibling: level[idx]})
		}
		idx /= 2
	}
	return p, nil
}

// Root computes the root hash of given leaves without keeping the tree.
func Root(leaves []Hash) (Hash, error) {
	t, err := NewTree(leaves)
	if err != nil {
		return ZeroHash, err
	}
	return t.Root(), nil
}
