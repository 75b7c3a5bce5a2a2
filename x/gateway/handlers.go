package gateway

import (
	"context"
	"encoding/binary"

	"github.com/iov-one/weft"
	"github.com/iov-one/weft/crypto"
	"github.com/iov-one/weft/errors"
	"github.com/iov-one/weft/merkle"
	"github.com/iov-one/weft/x"
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r weft.Registry, auth x.Authenticator) {
	ctrl := NewController()
	r.Handle(&OpenSessionMsg{}, &OpenSessionHandler{ctrl: ctrl})
	r.Handle(&SubmitSignatureMsg{}, &SubmitSignatureHandler{ctrl: ctrl})
	r.Handle(&ApproveMessageMsg{}, &ApproveMessageHandler{ctrl: ctrl})
	r.Handle(&ExecuteMessageMsg{}, &ExecuteMessageHandler{auth: auth, ctrl: ctrl})
	r.Handle(&RotateSignersMsg{}, &RotateSignersHandler{auth: auth, ctrl: ctrl})
	r.Handle(&TransferOperatorshipMsg{}, &TransferOperatorshipHandler{auth: auth, ctrl: ctrl})
	r.Handle(&CallContractMsg{}, &CallContractHandler{auth: auth})
}

// OpenSessionHandler opens a verification session. Anyone can open a
// session, the signatures decide whether it is ever used.
type OpenSessionHandler struct {
	ctrl *Controller
}

var _ weft.Handler = (*OpenSessionHandler)(nil)

func (h *OpenSessionHandler) Check(ctx context.Context, info weft.BlockInfo, db weft.KVStore, tx weft.Tx) (*weft.CheckResult, error) {
	var msg OpenSessionMsg
	if err := weft.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &weft.CheckResult{}, nil
}

func (h *OpenSessionHandler) Deliver(ctx context.Context, info weft.BlockInfo, db weft.KVStore, tx weft.Tx) (*weft.DeliverResult, error) {
	var msg OpenSessionMsg
	if err := weft.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	root, signingSet := toHash(msg.PayloadMerkleRoot), toHash(msg.VerifierSetHash)
	if _, err := h.ctrl.OpenSession(db, root, msg.CommandType, signingSet); err != nil {
		return nil, err
	}
	ev := newEvent(KindSessionOpened, &SessionOpenedEvent{
		PayloadMerkleRoot: msg.PayloadMerkleRoot,
		CommandType:       msg.CommandType,
		VerifierSetHash:   msg.VerifierSetHash,
	})
	return &weft.DeliverResult{
		Data:   SessionKey(root, msg.CommandType),
		Events: []weft.Event{ev},
	}, nil
}

// SubmitSignatureHandler adds a single verifier signature to a session.
// Signatures are authenticated by their content so the submitter can be
// any relayer.
type SubmitSignatureHandler struct {
	ctrl *Controller
}

var _ weft.Handler = (*SubmitSignatureHandler)(nil)

func (h *SubmitSignatureHandler) Check(ctx context.Context, info weft.BlockInfo, db weft.KVStore, tx weft.Tx) (*weft.CheckResult, error) {
	if _, _, err := h.validate(tx); err != nil {
		return nil, err
	}
	return &weft.CheckResult{}, nil
}

// Deliver returns the marshalled SignatureVerifiedEvent as the result data.
// A signer that already signed does not emit an event.
func (h *SubmitSignatureHandler) Deliver(ctx context.Context, info weft.BlockInfo, db weft.KVStore, tx weft.Tx) (*weft.DeliverResult, error) {
	msg, proof, err := h.validate(tx)
	if err != nil {
		return nil, err
	}
	session, changed, err := h.ctrl.SubmitSignature(db, toHash(msg.PayloadMerkleRoot), msg.CommandType, msg.Leaf, proof, msg.Signature)
	if err != nil {
		return nil, err
	}
	payload := &SignatureVerifiedEvent{
		PayloadMerkleRoot: msg.PayloadMerkleRoot,
		CommandType:       msg.CommandType,
		Position:          msg.Leaf.Position,
		AccumulatedWeight: session.AccumulatedWeight,
		IsValid:           session.IsValid(),
	}
	data, err := payload.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "marshal result")
	}
	res := &weft.DeliverResult{Data: data}
	if changed {
		res.Events = []weft.Event{newEvent(KindSignatureVerified, payload)}
	} else {
		res.Log = "already signed"
	}
	return res, nil
}

func (h *SubmitSignatureHandler) validate(tx weft.Tx) (*SubmitSignatureMsg, merkle.Proof, error) {
	var msg SubmitSignatureMsg
	if err := weft.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	proof, err := merkle.UnmarshalProof(msg.Proof)
	if err != nil {
		return nil, nil, errors.Wrap(err, "proof")
	}
	return &msg, proof, nil
}

// ApproveMessageHandler approves a message proved against a valid session.
type ApproveMessageHandler struct {
	ctrl *Controller
}

var _ weft.Handler = (*ApproveMessageHandler)(nil)

func (h *ApproveMessageHandler) Check(ctx context.Context, info weft.BlockInfo, db weft.KVStore, tx weft.Tx) (*weft.CheckResult, error) {
	if _, _, err := h.validate(tx); err != nil {
		return nil, err
	}
	return &weft.CheckResult{}, nil
}

// Deliver returns the command id of the approved message.
func (h *ApproveMessageHandler) Deliver(ctx context.Context, info weft.BlockInfo, db weft.KVStore, tx weft.Tx) (*weft.DeliverResult, error) {
	msg, proof, err := h.validate(tx)
	if err != nil {
		return nil, err
	}
	approved, err := h.ctrl.ApproveMessage(db, toHash(msg.PayloadMerkleRoot), msg.Leaf, proof)
	if err != nil {
		return nil, err
	}
	return &weft.DeliverResult{
		Data:   approved.CommandID,
		Events: []weft.Event{messageApprovedEvent(approved)},
	}, nil
}

func (h *ApproveMessageHandler) validate(tx weft.Tx) (*ApproveMessageMsg, merkle.Proof, error) {
	var msg ApproveMessageMsg
	if err := weft.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	proof, err := merkle.UnmarshalProof(msg.Proof)
	if err != nil {
		return nil, nil, errors.Wrap(err, "proof")
	}
	return &msg, proof, nil
}

// ExecuteMessageHandler consumes an approved message. Only the destination
// component of the message is allowed to execute it.
type ExecuteMessageHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ weft.Handler = (*ExecuteMessageHandler)(nil)

func (h *ExecuteMessageHandler) Check(ctx context.Context, info weft.BlockInfo, db weft.KVStore, tx weft.Tx) (*weft.CheckResult, error) {
	var msg ExecuteMessageMsg
	if err := weft.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &weft.CheckResult{}, nil
}

func (h *ExecuteMessageHandler) Deliver(ctx context.Context, info weft.BlockInfo, db weft.KVStore, tx weft.Tx) (*weft.DeliverResult, error) {
	var msg ExecuteMessageMsg
	if err := weft.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	executed, err := h.ctrl.ExecuteMessage(ctx, h.auth, db, msg.CommandID, msg.Payload)
	if err != nil {
		return nil, err
	}
	return &weft.DeliverResult{
		Data:   executed.CommandID,
		Events: []weft.Event{messageExecutedEvent(executed)},
	}, nil
}

// RotateSignersHandler activates a new verifier set signed by a valid
// rotation session. When the operator co-signs the transaction the rotation
// delay and the latest set requirement are waived.
type RotateSignersHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ weft.Handler = (*RotateSignersHandler)(nil)

func (h *RotateSignersHandler) Check(ctx context.Context, info weft.BlockInfo, db weft.KVStore, tx weft.Tx) (*weft.CheckResult, error) {
	var msg RotateSignersMsg
	if err := weft.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &weft.CheckResult{}, nil
}

// Deliver returns the new epoch encoded as big endian uint64.
func (h *RotateSignersHandler) Deliver(ctx context.Context, info weft.BlockInfo, db weft.KVStore, tx weft.Tx) (*weft.DeliverResult, error) {
	var msg RotateSignersMsg
	if err := weft.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := h.ctrl.Config(db)
	if err != nil {
		return nil, err
	}
	operatorSigned := h.auth.HasAddress(ctx, conf.OperatorAddress())

	epoch, err := h.ctrl.RotateSigners(db, info.UnixTime(), toHash(msg.PayloadMerkleRoot), toHash(msg.NewVerifierSetHash), operatorSigned)
	if err != nil {
		return nil, err
	}
	info.Logger().Info("verifier set rotated",
		"epoch", epoch,
		"verifier_set", toHash(msg.NewVerifierSetHash).String(),
		"operator", operatorSigned)

	data := make([]byte, 8)
	binary.BigEndian.PutUint64(data, epoch)
	ev := newEvent(KindVerifierSetRotated, &VerifierSetRotatedEvent{
		VerifierSetHash: msg.NewVerifierSetHash,
		Epoch:           epoch,
	})
	return &weft.DeliverResult{Data: data, Events: []weft.Event{ev}}, nil
}

// TransferOperatorshipHandler hands the operator role over. It must be
// signed by the current operator.
type TransferOperatorshipHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ weft.Handler = (*TransferOperatorshipHandler)(nil)

func (h *TransferOperatorshipHandler) Check(ctx context.Context, info weft.BlockInfo, db weft.KVStore, tx weft.Tx) (*weft.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weft.CheckResult{}, nil
}

func (h *TransferOperatorshipHandler) Deliver(ctx context.Context, info weft.BlockInfo, db weft.KVStore, tx weft.Tx) (*weft.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.TransferOperatorship(db, weft.Address(msg.NewOperator)); err != nil {
		return nil, err
	}
	ev := newEvent(KindOperatorshipTransferred, &OperatorshipTransferredEvent{
		NewOperator: msg.NewOperator,
	})
	return &weft.DeliverResult{Events: []weft.Event{ev}}, nil
}

func (h *TransferOperatorshipHandler) validate(ctx context.Context, db weft.KVStore, tx weft.Tx) (*TransferOperatorshipMsg, error) {
	var msg TransferOperatorshipMsg
	if err := weft.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := h.ctrl.Config(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.OperatorAddress()) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "operator signature required")
	}
	return &msg, nil
}

// CallContractHandler records an outgoing contract call. The gateway does
// not keep state for outgoing calls, relayers pick them up from the event.
type CallContractHandler struct {
	auth x.Authenticator
}

var _ weft.Handler = (*CallContractHandler)(nil)

func (h *CallContractHandler) Check(ctx context.Context, info weft.BlockInfo, db weft.KVStore, tx weft.Tx) (*weft.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &weft.CheckResult{}, nil
}

// Deliver returns the keccak256 hash of the call payload.
func (h *CallContractHandler) Deliver(ctx context.Context, info weft.BlockInfo, db weft.KVStore, tx weft.Tx) (*weft.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	payloadHash := crypto.Keccak256(msg.Payload)
	ev := newEvent(KindContractCall, &ContractCallEvent{
		Sender:                     msg.Sender,
		DestinationChain:           msg.DestinationChain,
		DestinationContractAddress: msg.DestinationContractAddress,
		PayloadHash:                payloadHash[:],
		Payload:                    msg.Payload,
	})
	return &weft.DeliverResult{Data: payloadHash[:], Events: []weft.Event{ev}}, nil
}

func (h *CallContractHandler) validate(ctx context.Context, tx weft.Tx) (*CallContractMsg, error) {
	var msg CallContractMsg
	if err := weft.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, weft.Address(msg.Sender)) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "sender signature required")
	}
	return &msg, nil
}
