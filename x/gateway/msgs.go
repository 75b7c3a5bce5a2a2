package gateway

import (
	"github.com/iov-one/weft"
	"github.com/iov-one/weft/crypto"
	"github.com/iov-one/weft/errors"
	"github.com/iov-one/weft/merkle"
)

var _ weft.Msg = (*OpenSessionMsg)(nil)

func (OpenSessionMsg) Path() string {
	return "gateway/open_session"
}

func (m *OpenSessionMsg) Validate() error {
	if err := validateHash("PayloadMerkleRoot", m.PayloadMerkleRoot); err != nil {
		return err
	}
	if err := m.CommandType.Validate(); err != nil {
		return err
	}
	return validateHash("VerifierSetHash", m.VerifierSetHash)
}

var _ weft.Msg = (*SubmitSignatureMsg)(nil)

func (SubmitSignatureMsg) Path() string {
	return "gateway/submit_signature"
}

func (m *SubmitSignatureMsg) Validate() error {
	if err := validateHash("PayloadMerkleRoot", m.PayloadMerkleRoot); err != nil {
		return err
	}
	if err := m.CommandType.Validate(); err != nil {
		return err
	}
	if err := m.Leaf.Validate(); err != nil {
		return errors.Wrap(err, "Leaf")
	}
	if _, err := merkle.UnmarshalProof(m.Proof); err != nil {
		return errors.Wrap(err, "Proof")
	}
	if len(m.Signature) == 0 {
		return errors.Wrap(errors.ErrEmpty, "Signature")
	}
	return nil
}

var _ weft.Msg = (*ApproveMessageMsg)(nil)

func (ApproveMessageMsg) Path() string {
	return "gateway/approve_message"
}

func (m *ApproveMessageMsg) Validate() error {
	if err := validateHash("PayloadMerkleRoot", m.PayloadMerkleRoot); err != nil {
		return err
	}
	if err := m.Leaf.Validate(); err != nil {
		return errors.Wrap(err, "Leaf")
	}
	if _, err := merkle.UnmarshalProof(m.Proof); err != nil {
		return errors.Wrap(err, "Proof")
	}
	return nil
}

var _ weft.Msg = (*ExecuteMessageMsg)(nil)

func (ExecuteMessageMsg) Path() string {
	return "gateway/execute_message"
}

func (m *ExecuteMessageMsg) Validate() error {
	return validateHash("CommandID", m.CommandID)
}

var _ weft.Msg = (*RotateSignersMsg)(nil)

func (RotateSignersMsg) Path() string {
	return "gateway/rotate_signers"
}

func (m *RotateSignersMsg) Validate() error {
	if err := validateHash("PayloadMerkleRoot", m.PayloadMerkleRoot); err != nil {
		return err
	}
	return validateHash("NewVerifierSetHash", m.NewVerifierSetHash)
}

var _ weft.Msg = (*TransferOperatorshipMsg)(nil)

func (TransferOperatorshipMsg) Path() string {
	return "gateway/transfer_operatorship"
}

func (m *TransferOperatorshipMsg) Validate() error {
	if err := weft.Address(m.NewOperator).Validate(); err != nil {
		return errors.Wrap(err, "NewOperator")
	}
	return nil
}

var _ weft.Msg = (*CallContractMsg)(nil)

func (CallContractMsg) Path() string {
	return "gateway/call_contract"
}

func (m *CallContractMsg) Validate() error {
	if err := weft.Address(m.Sender).Validate(); err != nil {
		return errors.Wrap(err, "Sender")
	}
	if m.DestinationChain == "" {
		return errors.Wrap(errors.ErrEmpty, "DestinationChain")
	}
	if m.DestinationContractAddress == "" {
		return errors.Wrap(errors.ErrEmpty, "DestinationContractAddress")
	}
	return nil
}

// NewMsg returns an empty message routed under path.
func NewMsg(path string) (weft.Msg, error) {
	switch path {
	case OpenSessionMsg{}.Path():
		return &OpenSessionMsg{}, nil
	case SubmitSignatureMsg{}.Path():
		return &SubmitSignatureMsg{}, nil
	case ApproveMessageMsg{}.Path():
		return &ApproveMessageMsg{}, nil
	case ExecuteMessageMsg{}.Path():
		return &ExecuteMessageMsg{}, nil
	case RotateSignersMsg{}.Path():
		return &RotateSignersMsg{}, nil
	case TransferOperatorshipMsg{}.Path():
		return &TransferOperatorshipMsg{}, nil
	case CallContractMsg{}.Path():
		return &CallContractMsg{}, nil
	default:
		return nil, errors.Wrapf(errors.ErrNotFound, "no message for path %q", path)
	}
}

func validateHash(field string, h []byte) error {
	if len(h) != crypto.HashSize {
		return errors.Wrapf(errors.ErrInput, "%s must be %d bytes", field, crypto.HashSize)
	}
	if toHash(h).IsZero() {
		return errors.Wrapf(errors.ErrEmpty, "%s", field)
	}
	return nil
}

// toHash copies a slice known to be of the hash size into a hash.
func toHash(b []byte) merkle.Hash {
	var h merkle.Hash
	copy(h[:], b)
	return h
}
