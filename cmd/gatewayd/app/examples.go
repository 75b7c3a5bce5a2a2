package app

import (
	"bytes"
	"fmt"

	"github.com/iov-one/weft/commands"
	"github.com/iov-one/weft/crypto"
	"github.com/iov-one/weft/x/gateway"
)

// Examples returns deterministic sample encodings of the gateway models,
// messages and events.
func Examples() []commands.Example {
	ds := crypto.Keccak256([]byte("testgen"))

	var set gateway.VerifierSet
	set.Quorum = 2
	var signers []crypto.Signer
	for i := 0; i < 3; i++ {
		k, err := crypto.Ed25519FromSeed(bytes.Repeat([]byte{byte(i + 1)}, 32))
		if err != nil {
			panic(fmt.Sprintf("seed %d: %s", i, err))
		}
		signers = append(signers, k)
		set.Signers = append(set.Signers, gateway.WeightedSigner{PubKey: k.PublicKey(), Weight: 1})
	}
	tree, leaves, err := set.Tree(ds[:])
	if err != nil {
		panic(err)
	}
	setHash := tree.Root()

	payload := []byte("testgen payload")
	payloadHash := crypto.Keccak256(payload)
	msg := &gateway.Message{
		SourceChain:        "ethereum",
		MessageID:          "0xdeadbeef-1",
		SourceAddress:      "0x5a1e5a1e5a1e5a1e5a1e5a1e5a1e5a1e5a1e5a1e",
		DestinationChain:   "weft",
		DestinationAddress: "destination",
		PayloadHash:        payloadHash[:],
	}
	batch := &gateway.MessageBatch{Messages: []*gateway.Message{msg}}
	batchTree, msgLeaves, err := batch.Tree(ds[:], setHash)
	if err != nil {
		panic(err)
	}
	root := batchTree.Root()
	msgProof, err := batchTree.Proof(0)
	if err != nil {
		panic(err)
	}
	setProof, err := tree.Proof(0)
	if err != nil {
		panic(err)
	}
	sig, err := signers[0].Sign(gateway.SigningDigest(ds[:], root))
	if err != nil {
		panic(err)
	}
	operator := signers[0].PublicKey().Address()

	incoming := &gateway.IncomingMessage{
		CommandID:          msg.CommandID(),
		PayloadHash:        msg.PayloadHash,
		Status:             gateway.MessageApproved,
		SourceChain:        msg.SourceChain,
		MessageID:          msg.MessageID,
		SourceAddress:      msg.SourceAddress,
		DestinationChain:   msg.DestinationChain,
		DestinationAddress: msg.DestinationAddress,
	}

	return []commands.Example{
		{Filename: "config", Obj: &gateway.Config{
			CurrentEpoch:                 1,
			PreviousVerifierSetRetention: 2,
			MinimumRotationDelay:         86400,
			DomainSeparator:              ds[:],
			Operator:                     operator,
		}},
		{Filename: "verifier_set_tracker", Obj: &gateway.VerifierSetTracker{
			Epoch:           1,
			VerifierSetHash: setHash.Bytes(),
		}},
		{Filename: "verifier_set_leaf", Obj: leaves[0]},
		{Filename: "message_leaf", Obj: msgLeaves[0]},
		{Filename: "incoming_message", Obj: incoming},
		{Filename: "open_session_msg", Obj: &gateway.OpenSessionMsg{
			PayloadMerkleRoot: root.Bytes(),
			CommandType:       gateway.ApproveMessages,
			VerifierSetHash:   setHash.Bytes(),
		}},
		{Filename: "submit_signature_msg", Obj: &gateway.SubmitSignatureMsg{
			PayloadMerkleRoot: root.Bytes(),
			CommandType:       gateway.ApproveMessages,
			Leaf:              leaves[0],
			Proof:             setProof.Marshal(),
			Signature:         sig,
		}},
		{Filename: "approve_message_msg", Obj: &gateway.ApproveMessageMsg{
			PayloadMerkleRoot: root.Bytes(),
			Leaf:              msgLeaves[0],
			Proof:             msgProof.Marshal(),
		}},
		{Filename: "execute_message_msg", Obj: &gateway.ExecuteMessageMsg{
			CommandID: msg.CommandID(),
			Payload:   payload,
		}},
		{Filename: "rotate_signers_msg", Obj: &gateway.RotateSignersMsg{
			PayloadMerkleRoot:  root.Bytes(),
			NewVerifierSetHash: setHash.Bytes(),
		}},
		{Filename: "transfer_operatorship_msg", Obj: &gateway.TransferOperatorshipMsg{
			NewOperator: signers[1].PublicKey().Address(),
		}},
		{Filename: "call_contract_msg", Obj: &gateway.CallContractMsg{
			Sender:                     operator,
			DestinationChain:           "ethereum",
			DestinationContractAddress: "0x5a1e5a1e5a1e5a1e5a1e5a1e5a1e5a1e5a1e5a1e",
			Payload:                    payload,
		}},
		{Filename: "message_approved_event", Obj: &gateway.MessageApprovedEvent{
			CommandID:          incoming.CommandID,
			SourceChain:        incoming.SourceChain,
			MessageID:          incoming.MessageID,
			SourceAddress:      incoming.SourceAddress,
			DestinationChain:   incoming.DestinationChain,
			DestinationAddress: incoming.DestinationAddress,
			PayloadHash:        incoming.PayloadHash,
		}},
		{Filename: "verifier_set_rotated_event", Obj: &gateway.VerifierSetRotatedEvent{
			VerifierSetHash: setHash.Bytes(),
			Epoch:           2,
		}},
	}
}
