package gateway

import (
	"encoding/binary"

	"github.com/holiman/uint256"
	"github.com/iov-one/weft"
	"github.com/iov-one/weft/crypto"
	"github.com/iov-one/weft/errors"
	"github.com/iov-one/weft/merkle"
	"github.com/iov-one/weft/orm"
)

// configPkg is the name the gateway configuration is stored under.
const configPkg = "gateway"

const slotsSize = MaxSetSize / 8

func (c *Config) Validate() error {
	if c.CurrentEpoch == 0 {
		return errors.Wrap(errors.ErrModel, "current epoch must start at 1")
	}
	if c.PreviousVerifierSetRetention == 0 {
		return errors.Wrap(errors.ErrModel, "retention must be positive")
	}
	if c.MinimumRotationDelay < 0 {
		return errors.Wrap(errors.ErrModel, "negative rotation delay")
	}
	if c.LastRotationTimestamp < 0 {
		return errors.Wrap(errors.ErrModel, "negative last rotation timestamp")
	}
	if len(c.DomainSeparator) != DomainSeparatorSize {
		return errors.Wrapf(errors.ErrModel, "domain separator must be %d bytes", DomainSeparatorSize)
	}
	if err := weft.Address(c.Operator).Validate(); err != nil {
		return errors.Wrap(err, "operator")
	}
	return nil
}

// OperatorAddress returns the address of the gateway operator.
func (c *Config) OperatorAddress() weft.Address {
	return weft.Address(c.Operator)
}

func (t *VerifierSetTracker) Validate() error {
	if t.Epoch == 0 {
		return errors.Wrap(errors.ErrModel, "zero epoch")
	}
	if len(t.VerifierSetHash) != crypto.HashSize {
		return errors.Wrapf(errors.ErrModel, "verifier set hash must be %d bytes", crypto.HashSize)
	}
	return nil
}

// NewVerifierSetTrackerBucket returns a bucket of VerifierSetTracker
// indexed by the verifier set hash.
func NewVerifierSetTrackerBucket() orm.ModelBucket {
	return orm.NewModelBucket("vsettrack", &VerifierSetTracker{})
}

var _ orm.VersionedModel = (*VerificationSession)(nil)

// newVerificationSession returns a session with no signatures.
func newVerificationSession(root merkle.Hash, ct CommandType, signingSet merkle.Hash) *VerificationSession {
	return &VerificationSession{
		PayloadMerkleRoot:      root.Bytes(),
		CommandType:            ct,
		SigningVerifierSetHash: signingSet.Bytes(),
		SignatureSlots:         make([]byte, slotsSize),
		AccumulatedWeight:      make([]byte, weightSize),
		Quorum:                 make([]byte, weightSize),
	}
}

func (s *VerificationSession) GetVersion() uint32 {
	return s.Version
}

func (s *VerificationSession) SetVersion(v uint32) {
	s.Version = v
}

func (s *VerificationSession) Validate() error {
	if len(s.PayloadMerkleRoot) != crypto.HashSize {
		return errors.Wrap(errors.ErrModel, "payload merkle root")
	}
	if err := s.CommandType.Validate(); err != nil {
		return err
	}
	if len(s.SigningVerifierSetHash) != crypto.HashSize {
		return errors.Wrap(errors.ErrModel, "signing verifier set hash")
	}
	if s.SetSize > MaxSetSize {
		return errors.Wrapf(errors.ErrModel, "set size %d", s.SetSize)
	}
	if len(s.SignatureSlots) != slotsSize {
		return errors.Wrapf(errors.ErrModel, "signature slots must be %d bytes", slotsSize)
	}
	if len(s.AccumulatedWeight) != weightSize || len(s.Quorum) != weightSize {
		return errors.Wrapf(errors.ErrModel, "weights must be %d bytes", weightSize)
	}
	return nil
}

// Root returns the payload merkle root the session collects signatures for.
func (s *VerificationSession) Root() merkle.Hash {
	var h merkle.Hash
	copy(h[:], s.PayloadMerkleRoot)
	return h
}

// SigningSet returns the hash of the verifier set expected to sign.
func (s *VerificationSession) SigningSet() merkle.Hash {
	var h merkle.Hash
	copy(h[:], s.SigningVerifierSetHash)
	return h
}

// Weight returns the accumulated signer weight.
func (s *VerificationSession) Weight() *uint256.Int {
	return new(uint256.Int).SetBytes(s.AccumulatedWeight)
}

// IsValid returns true once the accumulated weight reached the quorum of
// the signing verifier set.
func (s *VerificationSession) IsValid() bool {
	q := new(uint256.Int).SetBytes(s.Quorum)
	if q.IsZero() {
		return false
	}
	return !s.Weight().Lt(q)
}

// IsSigned returns true if the signer at given position already signed.
func (s *VerificationSession) IsSigned(pos uint32) bool {
	if pos >= MaxSetSize {
		return false
	}
	return s.SignatureSlots[pos/8]&(1<<(pos%8)) != 0
}

// SignedCount returns the number of signatures collected.
func (s *VerificationSession) SignedCount() int {
	var n int
	for pos := uint32(0); pos < MaxSetSize; pos++ {
		if s.IsSigned(pos) {
			n++
		}
	}
	return n
}

// markSigned sets the slot of the signer and adds its weight. The first
// leaf fixes the set size and the quorum, every following leaf must agree.
// VerifierSet.Tree gives every leaf of a set the same size and quorum, so
// only a malformed set can disagree, and then any leaf that differs from
// the first accepted one is refused.
func (s *VerificationSession) markSigned(leaf *VerifierSetLeaf) error {
	if s.SetSize == 0 {
		s.SetSize = leaf.SetSize
		s.Quorum = append([]byte(nil), leaf.Quorum...)
	} else if s.SetSize != leaf.SetSize || !leaf.QuorumWeight().Eq(new(uint256.Int).SetBytes(s.Quorum)) {
		return errors.Wrap(errors.ErrInput, "leaf does not match the verifier set of the session")
	}
	sum, overflow := new(uint256.Int).AddOverflow(s.Weight(), leaf.Weight())
	if overflow {
		return errors.Wrap(ErrArithmeticOverflow, "accumulated weight")
	}
	w := sum.Bytes32()
	s.AccumulatedWeight = w[:]
	s.SignatureSlots[leaf.Position/8] |= 1 << (leaf.Position % 8)
	return nil
}

// SessionKey returns the key of the session for given root and command
// type.
func SessionKey(root merkle.Hash, ct CommandType) []byte {
	key := make([]byte, len(root)+4)
	copy(key, root[:])
	binary.BigEndian.PutUint32(key[len(root):], uint32(ct))
	return key
}

// NewVerificationSessionBucket returns a bucket of VerificationSession
// indexed by SessionKey.
func NewVerificationSessionBucket() orm.ModelBucket {
	return orm.NewModelBucket("vsession", &VerificationSession{})
}

func (m *IncomingMessage) Validate() error {
	if len(m.CommandID) != crypto.HashSize {
		return errors.Wrap(errors.ErrModel, "command id")
	}
	if len(m.MessageHash) != crypto.HashSize {
		return errors.Wrap(errors.ErrModel, "message hash")
	}
	if len(m.PayloadHash) != crypto.HashSize {
		return errors.Wrap(errors.ErrModel, "payload hash")
	}
	switch m.Status {
	case MessageApproved, MessageExecuted:
	default:
		return errors.Wrapf(errors.ErrModel, "status %d", m.Status)
	}
	if m.DestinationAddress == "" {
		return errors.Wrap(errors.ErrModel, "destination address")
	}
	return nil
}

// NewIncomingMessageBucket returns a bucket of IncomingMessage indexed by
// the command id.
func NewIncomingMessageBucket() orm.ModelBucket {
	return orm.NewModelBucket("incmsg", &IncomingMessage{})
}
