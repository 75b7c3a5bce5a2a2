package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/weft"
	"github.com/iov-one/weft/crypto"
	"github.com/iov-one/weft/errors"
	"github.com/iov-one/weft/x/sigs"
)

// Tx is the transaction processed by the Gateway host. It carries exactly
// one message and the signatures of its callers.
type Tx struct {
	Msg        weft.Msg
	Signatures []*sigs.StdSignature
}

var _ sigs.SignedTx = (*Tx)(nil)

// NewTx returns an unsigned transaction for msg.
func NewTx(msg weft.Msg) *Tx {
	return &Tx{Msg: msg}
}

// GetMsg returns the single message carried by this transaction.
func (tx *Tx) GetMsg() (weft.Msg, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "message")
	}
	return tx.Msg, nil
}

// GetSignatures returns the signatures attached so far.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the message path and the serialized message. The
// signatures are not part of the signed bytes.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	raw, err := msg.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "marshal message")
	}
	path := msg.Path()
	out := make([]byte, 0, len(path)+1+len(raw))
	out = append(out, path...)
	out = append(out, 0)
	return append(out, raw...), nil
}

// Sign appends the signature of signer, made with given sequence.
func (tx *Tx) Sign(signer crypto.Signer, chainID string, seq int64) error {
	sig, err := sigs.SignTx(signer, tx, chainID, seq)
	if err != nil {
		return err
	}
	tx.Signatures = append(tx.Signatures, sig)
	return nil
}

// MsgDecoder returns an empty message for the given route path.
type MsgDecoder func(path string) (weft.Msg, error)

// txWire is the binary form of Tx.
type txWire struct {
	Signatures []*sigs.StdSignature `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`
	Path       string               `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	Msg        []byte               `protobuf:"bytes,3,opt,name=msg,proto3" json:"msg,omitempty"`
}

func (m *txWire) Reset()         { *m = txWire{} }
func (m *txWire) String() string { return proto.CompactTextString(m) }
func (*txWire) ProtoMessage()    {}

// Marshal encodes the transaction with its signatures.
func (tx *Tx) Marshal() ([]byte, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	raw, err := msg.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "marshal message")
	}
	return proto.Marshal(&txWire{
		Signatures: tx.Signatures,
		Path:       msg.Path(),
		Msg:        raw,
	})
}

// DecodeTx decodes a transaction encoded with Tx.Marshal. The message type
// is resolved from its path by newMsg.
func DecodeTx(raw []byte, newMsg MsgDecoder) (*Tx, error) {
	var w txWire
	if err := proto.Unmarshal(raw, &w); err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "Tx: %s", err)
	}
	msg, err := newMsg(w.Path)
	if err != nil {
		return nil, err
	}
	if err := msg.Unmarshal(w.Msg); err != nil {
		return nil, errors.Wrapf(err, "message %q", w.Path)
	}
	return &Tx{Msg: msg, Signatures: w.Signatures}, nil
}
