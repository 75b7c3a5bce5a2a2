package gateway

import (
	"github.com/iov-one/weft"
)

// Event kinds emitted by the gateway handlers.
const (
	KindSessionOpened           = "gateway/session_opened"
	KindSignatureVerified       = "gateway/signature_verified"
	KindMessageApproved         = "gateway/message_approved"
	KindMessageExecuted         = "gateway/message_executed"
	KindVerifierSetRotated      = "gateway/verifier_set_rotated"
	KindOperatorshipTransferred = "gateway/operatorship_transferred"
	KindContractCall            = "gateway/contract_call"
)

func newEvent(kind string, payload weft.Marshaller) weft.Event {
	return weft.Event{Kind: kind, Payload: payload}
}

func messageApprovedEvent(m *IncomingMessage) weft.Event {
	return newEvent(KindMessageApproved, &MessageApprovedEvent{
		CommandID:          m.CommandID,
		SourceChain:        m.SourceChain,
		MessageID:          m.MessageID,
		SourceAddress:      m.SourceAddress,
		DestinationChain:   m.DestinationChain,
		DestinationAddress: m.DestinationAddress,
		PayloadHash:        m.PayloadHash,
	})
}

func messageExecutedEvent(m *IncomingMessage) weft.Event {
	return newEvent(KindMessageExecuted, &MessageExecutedEvent{
		CommandID:          m.CommandID,
		SourceChain:        m.SourceChain,
		MessageID:          m.MessageID,
		SourceAddress:      m.SourceAddress,
		DestinationChain:   m.DestinationChain,
		DestinationAddress: m.DestinationAddress,
		PayloadHash:        m.PayloadHash,
	})
}
