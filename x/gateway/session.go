package gateway

import (
	"bytes"

	"github.com/iov-one/weft"
	"github.com/iov-one/weft/errors"
	"github.com/iov-one/weft/merkle"
)

// OpenSession creates an empty verification session for the payload root.
// The verifier set expected to sign must be known and still trusted.
// Only one session can exist for a root and command type.
func (c *Controller) OpenSession(db weft.KVStore, root merkle.Hash, ct CommandType, signingSet merkle.Hash) (*VerificationSession, error) {
	if err := ct.Validate(); err != nil {
		return nil, err
	}
	if root.IsZero() {
		return nil, errors.Wrap(errors.ErrEmpty, "payload merkle root")
	}
	conf, err := c.Config(db)
	if err != nil {
		return nil, err
	}
	epoch, err := c.Epoch(db, signingSet)
	if err != nil {
		return nil, err
	}
	if err := AssertEpochValid(conf, epoch); err != nil {
		return nil, err
	}

	session := newVerificationSession(root, ct, signingSet)
	switch err := c.sessions.Create(db, SessionKey(root, ct), session); {
	case err == nil:
		return session, nil
	case errors.ErrDuplicate.Is(err):
		return nil, errors.Wrapf(ErrSessionExists, "%s session for %s", ct, root)
	default:
		return nil, errors.Wrap(err, "create session")
	}
}

// Session loads the session of the root and command type.
func (c *Controller) Session(db weft.ReadOnlyKVStore, root merkle.Hash, ct CommandType) (*VerificationSession, error) {
	var s VerificationSession
	if err := c.sessions.One(db, SessionKey(root, ct), &s); err != nil {
		return nil, errors.Wrapf(err, "%s session for %s", ct, root)
	}
	return &s, nil
}

// sessionFor loads the session of the root that must be of the wanted
// command type. If only a session of another type exists,
// ErrInvalidCommandType is returned.
func (c *Controller) sessionFor(db weft.ReadOnlyKVStore, root merkle.Hash, want CommandType) (*VerificationSession, error) {
	s, err := c.Session(db, root, want)
	if err == nil || !errors.ErrNotFound.Is(err) {
		return s, err
	}
	for _, other := range []CommandType{ApproveMessages, RotateSigners} {
		if other == want {
			continue
		}
		if c.sessions.Has(db, SessionKey(root, other)) == nil {
			return nil, errors.Wrapf(ErrInvalidCommandType, "session for %s is %s, want %s", root, other, want)
		}
	}
	return nil, err
}

// SubmitSignature adds the signature of a single verifier to the session.
//
// The leaf must be part of the signing verifier set. A signer that already
// signed is a no-op and does not add weight. Signatures keep being accepted
// after the quorum was reached. The resulting state does not depend on the
// order in which signatures are submitted.
//
// The returned flag is false when the call was a no-op.
func (c *Controller) SubmitSignature(
	db weft.KVStore,
	root merkle.Hash,
	ct CommandType,
	leaf *VerifierSetLeaf,
	proof merkle.Proof,
	signature []byte,
) (*VerificationSession, bool, error) {
	if err := leaf.Validate(); err != nil {
		return nil, false, errors.Wrap(err, "leaf")
	}
	conf, err := c.Config(db)
	if err != nil {
		return nil, false, err
	}
	session, err := c.Session(db, root, ct)
	if err != nil {
		return nil, false, err
	}
	if !bytes.Equal(leaf.DomainSeparator, conf.DomainSeparator) {
		return nil, false, errors.Wrap(ErrInvalidDomainSeparator, "leaf")
	}
	epoch, err := c.Epoch(db, session.SigningSet())
	if err != nil {
		return nil, false, err
	}
	if err := AssertEpochValid(conf, epoch); err != nil {
		return nil, false, err
	}

	leafHash, err := leaf.Hash()
	if err != nil {
		return nil, false, err
	}
	if !proof.Verify(leafHash, session.SigningSet()) {
		return nil, false, errors.Wrap(ErrInvalidMerkleProof, "leaf not in signing verifier set")
	}
	if leaf.Position >= leaf.SetSize || leaf.Position >= MaxSetSize {
		return nil, false, errors.Wrapf(ErrSlotOutOfBounds, "position %d in set of %d", leaf.Position, leaf.SetSize)
	}

	if session.IsSigned(leaf.Position) {
		return session, false, nil
	}

	digest := SigningDigest(conf.DomainSeparator, root)
	if !leaf.PublicKey().Verify(digest, signature) {
		return nil, false, errors.Wrapf(ErrInvalidSignature, "signer %d", leaf.Position)
	}

	if err := session.markSigned(leaf); err != nil {
		return nil, false, err
	}
	// Never conflicts under a serializing host, guards hosts that do not.
	if err := c.sessions.Swap(db, SessionKey(root, ct), session); err != nil {
		return nil, false, errors.Wrap(err, "save session")
	}
	return session, true, nil
}
