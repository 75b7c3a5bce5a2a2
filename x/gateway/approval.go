package gateway

import (
	"bytes"
	"context"

	"github.com/iov-one/weft"
	"github.com/iov-one/weft/crypto"
	"github.com/iov-one/weft/errors"
	"github.com/iov-one/weft/merkle"
	"github.com/iov-one/weft/x"
)

// ApproveMessage approves a message proved to be part of a payload root
// signed by a quorum of verifiers. A message can be approved only once.
func (c *Controller) ApproveMessage(db weft.KVStore, root merkle.Hash, leaf *MessageLeaf, proof merkle.Proof) (*IncomingMessage, error) {
	if err := leaf.Validate(); err != nil {
		return nil, errors.Wrap(err, "leaf")
	}
	conf, err := c.Config(db)
	if err != nil {
		return nil, err
	}
	session, err := c.sessionFor(db, root, ApproveMessages)
	if err != nil {
		return nil, err
	}
	if !session.IsValid() {
		return nil, errors.Wrapf(ErrThresholdNotReached, "session for %s", root)
	}
	epoch, err := c.Epoch(db, session.SigningSet())
	if err != nil {
		return nil, err
	}
	if err := AssertEpochValid(conf, epoch); err != nil {
		return nil, err
	}
	if !bytes.Equal(leaf.DomainSeparator, conf.DomainSeparator) {
		return nil, errors.Wrap(ErrInvalidDomainSeparator, "leaf")
	}
	if !bytes.Equal(leaf.SigningVerifierSet, session.SigningVerifierSetHash) {
		return nil, errors.Wrap(ErrInvalidMerkleProof, "leaf signed by another verifier set")
	}
	leafHash, err := leaf.Hash()
	if err != nil {
		return nil, err
	}
	if !proof.Verify(leafHash, root) {
		return nil, errors.Wrap(ErrInvalidMerkleProof, "message not in payload")
	}

	m := leaf.Message
	msg := &IncomingMessage{
		CommandID:          m.CommandID(),
		MessageHash:        leafHash.Bytes(),
		PayloadHash:        m.PayloadHash,
		Status:             MessageApproved,
		SourceChain:        m.SourceChain,
		MessageID:          m.MessageID,
		SourceAddress:      m.SourceAddress,
		DestinationChain:   m.DestinationChain,
		DestinationAddress: m.DestinationAddress,
	}
	switch err := c.messages.Create(db, msg.CommandID, msg); {
	case err == nil:
		return msg, nil
	case errors.ErrDuplicate.Is(err):
		return nil, errors.Wrapf(ErrMessageAlreadyApproved, "%s-%s", m.SourceChain, m.MessageID)
	default:
		return nil, errors.Wrap(err, "save message")
	}
}

// Message loads the approval record of a message.
func (c *Controller) Message(db weft.ReadOnlyKVStore, commandID []byte) (*IncomingMessage, error) {
	var m IncomingMessage
	if err := c.messages.One(db, commandID, &m); err != nil {
		return nil, errors.Wrapf(err, "message %X", commandID)
	}
	return &m, nil
}

// ExecuteMessage marks an approved message as executed. The payload must
// match the approved payload hash and the caller must authenticate with
// the caller condition of the message destination.
func (c *Controller) ExecuteMessage(
	ctx context.Context,
	auth x.Authenticator,
	db weft.KVStore,
	commandID []byte,
	payload []byte,
) (*IncomingMessage, error) {
	msg, err := c.Message(db, commandID)
	switch {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrMessageNotApproved, "message %X", commandID)
	default:
		return nil, err
	}
	switch msg.Status {
	case MessageApproved:
	case MessageExecuted:
		return nil, errors.Wrapf(ErrAlreadyExecuted, "message %X", commandID)
	default:
		return nil, errors.Wrapf(ErrMessageNotApproved, "message %X in status %d", commandID, msg.Status)
	}
	payloadHash := crypto.Keccak256(payload)
	if !bytes.Equal(payloadHash[:], msg.PayloadHash) {
		return nil, errors.Wrapf(ErrInvalidPayloadHash, "message %X", commandID)
	}
	caller := CallerCondition(msg.CommandID, msg.DestinationAddress)
	if !auth.HasAddress(ctx, caller.Address()) {
		return nil, errors.Wrapf(ErrInvalidCallerIdentity, "message %X is destined to %s", commandID, msg.DestinationAddress)
	}

	msg.Status = MessageExecuted
	if err := c.messages.Put(db, commandID, msg); err != nil {
		return nil, errors.Wrap(err, "save message")
	}
	return msg, nil
}
