package gateway

import (
	"github.com/holiman/uint256"
	"github.com/iov-one/weft"
	"github.com/iov-one/weft/crypto"
	"github.com/iov-one/weft/errors"
	"github.com/iov-one/weft/merkle"
)

// Leaf type tags. Each leaf kind is encoded with its own tag so that two
// leaves of different kinds never share an encoding. No tag equals
// merkle.NodePrefix.
const (
	verifierSetLeafTag byte = 0x00
	messageLeafTag     byte = 0x02
	rotationLeafTag    byte = 0x03
)

const (
	// MaxSetSize is the number of signature slots of a verification
	// session and so the largest supported verifier set.
	MaxSetSize = 256

	// DomainSeparatorSize is the length of the per deployment domain
	// separator.
	DomainSeparatorSize = 32

	weightSize = 32
)

// CommandType tells what the root of a verification session commits to.
type CommandType int32

const (
	ApproveMessages CommandType = 1
	RotateSigners   CommandType = 2
)

func (c CommandType) Validate() error {
	switch c {
	case ApproveMessages, RotateSigners:
		return nil
	default:
		return errors.Wrapf(ErrInvalidCommandType, "command type %d", c)
	}
}

func (c CommandType) String() string {
	switch c {
	case ApproveMessages:
		return "approve_messages"
	case RotateSigners:
		return "rotate_signers"
	default:
		return "unknown"
	}
}

// PublicKey returns the signer key of this leaf.
func (l *VerifierSetLeaf) PublicKey() crypto.PublicKey {
	return crypto.PublicKey{Type: crypto.KeyType(l.SignerKeyType), Key: l.SignerKey}
}

// Weight returns the signer weight.
func (l *VerifierSetLeaf) Weight() *uint256.Int {
	return new(uint256.Int).SetBytes(l.SignerWeight)
}

// QuorumWeight returns the quorum of the whole verifier set.
func (l *VerifierSetLeaf) QuorumWeight() *uint256.Int {
	return new(uint256.Int).SetBytes(l.Quorum)
}

func (l *VerifierSetLeaf) Validate() error {
	if l == nil {
		return errors.Wrap(errors.ErrEmpty, "verifier set leaf")
	}
	if len(l.Quorum) != weightSize {
		return errors.Wrapf(errors.ErrInput, "quorum must be %d bytes", weightSize)
	}
	if len(l.SignerWeight) != weightSize {
		return errors.Wrapf(errors.ErrInput, "signer weight must be %d bytes", weightSize)
	}
	if l.QuorumWeight().IsZero() {
		return errors.Wrap(errors.ErrInput, "zero quorum")
	}
	if err := l.PublicKey().Validate(); err != nil {
		return errors.Wrap(err, "signer key")
	}
	if l.SetSize == 0 {
		return errors.Wrap(errors.ErrInput, "zero set size")
	}
	if len(l.DomainSeparator) != DomainSeparatorSize {
		return errors.Wrapf(errors.ErrInput, "domain separator must be %d bytes", DomainSeparatorSize)
	}
	return nil
}

// Hash returns the merkle leaf hash of this verifier.
func (l *VerifierSetLeaf) Hash() (merkle.Hash, error) {
	return merkle.LeafHash(verifierSetLeafTag, l)
}

// CommandID derives the unique identifier of a message from its source
// chain and the source chain local message id.
func CommandID(sourceChain, messageID string) []byte {
	h := crypto.Keccak256([]byte(sourceChain), []byte("-"), []byte(messageID))
	return h[:]
}

// CommandID returns the unique identifier of this message.
func (m *Message) CommandID() []byte {
	return CommandID(m.SourceChain, m.MessageID)
}

func (m *Message) Validate() error {
	if m == nil {
		return errors.Wrap(errors.ErrEmpty, "message")
	}
	switch {
	case m.SourceChain == "":
		return errors.Wrap(errors.ErrEmpty, "source chain")
	case m.MessageID == "":
		return errors.Wrap(errors.ErrEmpty, "message id")
	case m.SourceAddress == "":
		return errors.Wrap(errors.ErrEmpty, "source address")
	case m.DestinationChain == "":
		return errors.Wrap(errors.ErrEmpty, "destination chain")
	case m.DestinationAddress == "":
		return errors.Wrap(errors.ErrEmpty, "destination address")
	}
	if len(m.PayloadHash) != crypto.HashSize {
		return errors.Wrapf(errors.ErrInput, "payload hash must be %d bytes", crypto.HashSize)
	}
	return nil
}

func (l *MessageLeaf) Validate() error {
	if l == nil {
		return errors.Wrap(errors.ErrEmpty, "message leaf")
	}
	if err := l.Message.Validate(); err != nil {
		return err
	}
	if l.SetSize == 0 || l.Position >= l.SetSize {
		return errors.Wrapf(errors.ErrInput, "position %d in set of %d", l.Position, l.SetSize)
	}
	if len(l.DomainSeparator) != DomainSeparatorSize {
		return errors.Wrapf(errors.ErrInput, "domain separator must be %d bytes", DomainSeparatorSize)
	}
	if len(l.SigningVerifierSet) != crypto.HashSize {
		return errors.Wrapf(errors.ErrInput, "signing verifier set must be %d bytes", crypto.HashSize)
	}
	return nil
}

// Hash returns the merkle leaf hash of this message.
func (l *MessageLeaf) Hash() (merkle.Hash, error) {
	return merkle.LeafHash(messageLeafTag, l)
}

// RotationLeaf is the single leaf of the payload signed to rotate from the
// signing verifier set to a new one.
type RotationLeaf struct {
	NewVerifierSetHash     []byte
	SigningVerifierSetHash []byte
	DomainSeparator        []byte
}

// RotationPayloadRoot returns the root a verifier set must sign to rotate
// to newSet.
func RotationPayloadRoot(newSet, signingSet merkle.Hash, domainSeparator []byte) (merkle.Hash, error) {
	leaf, err := merkle.LeafHash(rotationLeafTag, &RotationLeaf{
		NewVerifierSetHash:     newSet.Bytes(),
		SigningVerifierSetHash: signingSet.Bytes(),
		DomainSeparator:        domainSeparator,
	})
	if err != nil {
		return merkle.ZeroHash, err
	}
	return merkle.Root([]merkle.Hash{leaf})
}

// SigningDigest returns the digest verifiers sign to attest a payload root.
func SigningDigest(domainSeparator []byte, root merkle.Hash) []byte {
	h := crypto.Keccak256(domainSeparator, root[:])
	return h[:]
}

// CallerCondition returns the condition the destination component must
// present to execute the message with given command id.
func CallerCondition(commandID []byte, destination string) weft.Condition {
	data := make([]byte, 0, len(commandID)+len(destination))
	data = append(data, commandID...)
	data = append(data, destination...)
	return weft.NewCondition("gateway", "validate", data)
}

// WeightedSigner is a member of a verifier set.
type WeightedSigner struct {
	PubKey crypto.PublicKey `json:"pubkey"`
	Weight uint64           `json:"weight"`
}

// VerifierSet is the ordered list of signers authorized to attest payload
// roots, together with the weight required to reach a quorum. It is
// identified by the merkle root of its leaves.
type VerifierSet struct {
	Nonce   uint64           `json:"nonce"`
	Quorum  uint64           `json:"quorum"`
	Signers []WeightedSigner `json:"signers"`
}

func (vs *VerifierSet) Validate() error {
	if len(vs.Signers) == 0 {
		return errors.Wrap(errors.ErrEmpty, "signers")
	}
	if len(vs.Signers) > MaxSetSize {
		return errors.Wrapf(errors.ErrInput, "at most %d signers", MaxSetSize)
	}
	if vs.Quorum == 0 {
		return errors.Wrap(errors.ErrInput, "zero quorum")
	}
	total := new(uint256.Int)
	for i, s := range vs.Signers {
		if err := s.PubKey.Validate(); err != nil {
			return errors.Wrapf(err, "signer %d", i)
		}
		if s.Weight == 0 {
			return errors.Wrapf(errors.ErrInput, "signer %d: zero weight", i)
		}
		for _, prev := range vs.Signers[:i] {
			if prev.PubKey.Equals(s.PubKey) {
				return errors.Wrapf(errors.ErrDuplicate, "signer %d", i)
			}
		}
		total.Add(total, uint256.NewInt(s.Weight))
	}
	if total.Lt(uint256.NewInt(vs.Quorum)) {
		return errors.Wrap(errors.ErrInput, "quorum exceeds total weight")
	}
	return nil
}

// Leaves returns the merkle leaves of the set bound to given domain
// separator.
func (vs *VerifierSet) Leaves(domainSeparator []byte) ([]*VerifierSetLeaf, error) {
	if err := vs.Validate(); err != nil {
		return nil, err
	}
	quorum := uint256.NewInt(vs.Quorum).Bytes32()
	leaves := make([]*VerifierSetLeaf, len(vs.Signers))
	for i, s := range vs.Signers {
		weight := uint256.NewInt(s.Weight).Bytes32()
		leaves[i] = &VerifierSetLeaf{
			Nonce:           vs.Nonce,
			Quorum:          quorum[:],
			SignerKeyType:   uint32(s.PubKey.Type),
			SignerKey:       s.PubKey.Key,
			SignerWeight:    weight[:],
			Position:        uint32(i),
			SetSize:         uint32(len(vs.Signers)),
			DomainSeparator: domainSeparator,
		}
	}
	return leaves, nil
}

// Tree builds the merkle tree of the set. Leaf i of the tree belongs to
// signer i.
func (vs *VerifierSet) Tree(domainSeparator []byte) (*merkle.Tree, []*VerifierSetLeaf, error) {
	leaves, err := vs.Leaves(domainSeparator)
	if err != nil {
		return nil, nil, err
	}
	hashes := make([]merkle.Hash, len(leaves))
	for i, l := range leaves {
		if hashes[i], err = l.Hash(); err != nil {
			return nil, nil, err
		}
	}
	tree, err := merkle.NewTree(hashes)
	if err != nil {
		return nil, nil, err
	}
	return tree, leaves, nil
}

// Hash returns the verifier set hash under given domain separator.
func (vs *VerifierSet) Hash(domainSeparator []byte) (merkle.Hash, error) {
	tree, _, err := vs.Tree(domainSeparator)
	if err != nil {
		return merkle.ZeroHash, err
	}
	return tree.Root(), nil
}

// MessageBatch is a list of messages signed together as one root.
type MessageBatch struct {
	Messages []*Message
}

// Tree builds the merkle tree of the batch for given signing verifier set.
func (b *MessageBatch) Tree(domainSeparator []byte, signingSet merkle.Hash) (*merkle.Tree, []*MessageLeaf, error) {
	if len(b.Messages) == 0 {
		return nil, nil, errors.Wrap(errors.ErrEmpty, "messages")
	}
	leaves := make([]*MessageLeaf, len(b.Messages))
	hashes := make([]merkle.Hash, len(b.Messages))
	for i, m := range b.Messages {
		if err := m.Validate(); err != nil {
			return nil, nil, errors.Wrapf(err, "message %d", i)
		}
		leaves[i] = &MessageLeaf{
			Message:            m,
			Position:           uint32(i),
			SetSize:            uint32(len(b.Messages)),
			DomainSeparator:    domainSeparator,
			SigningVerifierSet: signingSet.Bytes(),
		}
		h, err := leaves[i].Hash()
		if err != nil {
			return nil, nil, err
		}
		hashes[i] = h
	}
	tree, err := merkle.NewTree(hashes)
	if err != nil {
		return nil, nil, err
	}
	return tree, leaves, nil
}
