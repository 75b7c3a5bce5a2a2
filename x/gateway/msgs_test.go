package gateway

import (
	"bytes"
	"testing"

	"github.com/iov-one/weft"
	"github.com/iov-one/weft/errors"
	"github.com/iov-one/weft/weavetest"
	"github.com/iov-one/weft/weavetest/assert"
)

func TestMsgValidate(t *testing.T) {
	s := newSigningSet(t, 0, 1, 1)
	hash := bytes.Repeat([]byte{0x01}, 32)
	batch, _ := testBatch(1)
	_, msgLeaves, err := batch.Tree(testDomainSeparator, s.hash)
	assert.Nil(t, err)

	cases := map[string]struct {
		msg     weft.Msg
		wantErr *errors.Error
	}{
		"open session": {
			msg: &OpenSessionMsg{PayloadMerkleRoot: hash, CommandType: ApproveMessages, VerifierSetHash: hash},
		},
		"open session with a short root": {
			msg:     &OpenSessionMsg{PayloadMerkleRoot: hash[:31], CommandType: ApproveMessages, VerifierSetHash: hash},
			wantErr: errors.ErrInput,
		},
		"open session with a zero root": {
			msg:     &OpenSessionMsg{PayloadMerkleRoot: make([]byte, 32), CommandType: ApproveMessages, VerifierSetHash: hash},
			wantErr: errors.ErrEmpty,
		},
		"submit signature": {
			msg: &SubmitSignatureMsg{PayloadMerkleRoot: hash, CommandType: RotateSigners, Leaf: s.leaves[0], Signature: []byte{1}},
		},
		"submit signature without a leaf": {
			msg:     &SubmitSignatureMsg{PayloadMerkleRoot: hash, CommandType: RotateSigners, Signature: []byte{1}},
			wantErr: errors.ErrEmpty,
		},
		"submit signature without a signature": {
			msg:     &SubmitSignatureMsg{PayloadMerkleRoot: hash, CommandType: RotateSigners, Leaf: s.leaves[0]},
			wantErr: errors.ErrEmpty,
		},
		"approve message": {
			msg: &ApproveMessageMsg{PayloadMerkleRoot: hash, Leaf: msgLeaves[0]},
		},
		"approve message with a malformed proof": {
			msg:     &ApproveMessageMsg{PayloadMerkleRoot: hash, Leaf: msgLeaves[0], Proof: []byte{0}},
			wantErr: errors.ErrInput,
		},
		"execute message": {
			msg: &ExecuteMessageMsg{CommandID: hash},
		},
		"execute message without a command id": {
			msg:     &ExecuteMessageMsg{},
			wantErr: errors.ErrInput,
		},
		"rotate signers": {
			msg: &RotateSignersMsg{PayloadMerkleRoot: hash, NewVerifierSetHash: hash},
		},
		"transfer operatorship": {
			msg: &TransferOperatorshipMsg{NewOperator: weavetest.NewCondition().Address()},
		},
		"transfer operatorship to nobody": {
			msg:     &TransferOperatorshipMsg{},
			wantErr: errors.ErrInput,
		},
		"call contract": {
			msg: &CallContractMsg{Sender: weavetest.NewCondition().Address(), DestinationChain: "ethereum", DestinationContractAddress: "0x1"},
		},
		"call contract without destination": {
			msg:     &CallContractMsg{Sender: weavetest.NewCondition().Address(), DestinationChain: "ethereum"},
			wantErr: errors.ErrEmpty,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.IsErr(t, tc.wantErr, tc.msg.Validate())
		})
	}
}

func TestModelsRoundTrip(t *testing.T) {
	s := newSigningSet(t, 0, 1, 1)
	session := newVerificationSession(s.hash, RotateSigners, s.hash)
	assert.Nil(t, session.markSigned(s.leaves[0]))
	session.Version = 3

	raw, err := session.Marshal()
	assert.Nil(t, err)
	var got VerificationSession
	assert.Nil(t, got.Unmarshal(raw))
	assert.Equal(t, session, &got)

	submit := &SubmitSignatureMsg{
		PayloadMerkleRoot: s.hash.Bytes(),
		CommandType:       ApproveMessages,
		Leaf:              s.leaves[0],
		Signature:         []byte{1, 2},
	}
	raw, err = submit.Marshal()
	assert.Nil(t, err)
	var gotMsg SubmitSignatureMsg
	assert.Nil(t, gotMsg.Unmarshal(raw))
	assert.Equal(t, s.leaves[0].SignerKey, gotMsg.Leaf.SignerKey)
	assert.Equal(t, s.leaves[0].Position, gotMsg.Leaf.Position)

	assert.IsErr(t, errors.ErrModel, got.Unmarshal([]byte{0xff, 0xff}))
}

func TestNewMsg(t *testing.T) {
	msgs := []weft.Msg{
		&OpenSessionMsg{},
		&SubmitSignatureMsg{},
		&ApproveMessageMsg{},
		&ExecuteMessageMsg{},
		&RotateSignersMsg{},
		&TransferOperatorshipMsg{},
		&CallContractMsg{},
	}
	for _, want := range msgs {
		got, err := NewMsg(want.Path())
		assert.Nil(t, err)
		assert.Equal(t, want, got)
	}
	_, err := NewMsg("gateway/unknown")
	assert.IsErr(t, errors.ErrNotFound, err)
}
