package gateway

// Wire format of the gateway models, messages and events.
//
// Every type is encoded as protobuf. Each exported type has a wire twin with
// the same layout that implements proto.Message without a Marshal method,
// so the reflection based codec never calls back into Marshal.

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/weft/errors"
)

// MessageStatus is the lifecycle state of an approved message.
type MessageStatus int32

const (
	MessageApproved MessageStatus = 1
	MessageExecuted MessageStatus = 2
)

// Config is the gateway state. It is stored as a configuration singleton.
type Config struct {
	CurrentEpoch                 uint64 `protobuf:"varint,1,opt,name=current_epoch,json=currentEpoch,proto3" json:"current_epoch,omitempty"`
	PreviousVerifierSetRetention uint64 `protobuf:"varint,2,opt,name=previous_verifier_set_retention,json=previousVerifierSetRetention,proto3" json:"previous_verifier_set_retention,omitempty"`
	MinimumRotationDelay         int64  `protobuf:"varint,3,opt,name=minimum_rotation_delay,json=minimumRotationDelay,proto3" json:"minimum_rotation_delay,omitempty"`
	LastRotationTimestamp        int64  `protobuf:"varint,4,opt,name=last_rotation_timestamp,json=lastRotationTimestamp,proto3" json:"last_rotation_timestamp,omitempty"`
	DomainSeparator              []byte `protobuf:"bytes,5,opt,name=domain_separator,json=domainSeparator,proto3" json:"domain_separator,omitempty"`
	Operator                     []byte `protobuf:"bytes,6,opt,name=operator,proto3" json:"operator,omitempty"`
}

// VerifierSetTracker binds a verifier set hash to the epoch it was rotated in.
type VerifierSetTracker struct {
	Epoch           uint64 `protobuf:"varint,1,opt,name=epoch,proto3" json:"epoch,omitempty"`
	VerifierSetHash []byte `protobuf:"bytes,2,opt,name=verifier_set_hash,json=verifierSetHash,proto3" json:"verifier_set_hash,omitempty"`
}

// VerificationSession accumulates the signatures of one payload root.
type VerificationSession struct {
	Version                uint32      `protobuf:"varint,1,opt,name=version,proto3" json:"version,omitempty"`
	PayloadMerkleRoot      []byte      `protobuf:"bytes,2,opt,name=payload_merkle_root,json=payloadMerkleRoot,proto3" json:"payload_merkle_root,omitempty"`
	CommandType            CommandType `protobuf:"varint,3,opt,name=command_type,json=commandType,proto3" json:"command_type,omitempty"`
	SigningVerifierSetHash []byte      `protobuf:"bytes,4,opt,name=signing_verifier_set_hash,json=signingVerifierSetHash,proto3" json:"signing_verifier_set_hash,omitempty"`
	SetSize                uint32      `protobuf:"varint,5,opt,name=set_size,json=setSize,proto3" json:"set_size,omitempty"`
	SignatureSlots         []byte      `protobuf:"bytes,6,opt,name=signature_slots,json=signatureSlots,proto3" json:"signature_slots,omitempty"`
	AccumulatedWeight      []byte      `protobuf:"bytes,7,opt,name=accumulated_weight,json=accumulatedWeight,proto3" json:"accumulated_weight,omitempty"`
	Quorum                 []byte      `protobuf:"bytes,8,opt,name=quorum,proto3" json:"quorum,omitempty"`
}

// IncomingMessage is the approval record of a single message.
type IncomingMessage struct {
	CommandID          []byte        `protobuf:"bytes,1,opt,name=command_id,json=commandId,proto3" json:"command_id,omitempty"`
	MessageHash        []byte        `protobuf:"bytes,2,opt,name=message_hash,json=messageHash,proto3" json:"message_hash,omitempty"`
	PayloadHash        []byte        `protobuf:"bytes,3,opt,name=payload_hash,json=payloadHash,proto3" json:"payload_hash,omitempty"`
	Status             MessageStatus `protobuf:"varint,4,opt,name=status,proto3" json:"status,omitempty"`
	SourceChain        string        `protobuf:"bytes,5,opt,name=source_chain,json=sourceChain,proto3" json:"source_chain,omitempty"`
	MessageID          string        `protobuf:"bytes,6,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	SourceAddress      string        `protobuf:"bytes,7,opt,name=source_address,json=sourceAddress,proto3" json:"source_address,omitempty"`
	DestinationChain   string        `protobuf:"bytes,8,opt,name=destination_chain,json=destinationChain,proto3" json:"destination_chain,omitempty"`
	DestinationAddress string        `protobuf:"bytes,9,opt,name=destination_address,json=destinationAddress,proto3" json:"destination_address,omitempty"`
}

// VerifierSetLeaf is a single signer of a verifier set as committed to by the
// verifier set hash.
type VerifierSetLeaf struct {
	Nonce           uint64 `protobuf:"varint,1,opt,name=nonce,proto3" json:"nonce,omitempty"`
	Quorum          []byte `protobuf:"bytes,2,opt,name=quorum,proto3" json:"quorum,omitempty"`
	SignerKeyType   uint32 `protobuf:"varint,3,opt,name=signer_key_type,json=signerKeyType,proto3" json:"signer_key_type,omitempty"`
	SignerKey       []byte `protobuf:"bytes,4,opt,name=signer_key,json=signerKey,proto3" json:"signer_key,omitempty"`
	SignerWeight    []byte `protobuf:"bytes,5,opt,name=signer_weight,json=signerWeight,proto3" json:"signer_weight,omitempty"`
	Position        uint32 `protobuf:"varint,6,opt,name=position,proto3" json:"position,omitempty"`
	SetSize         uint32 `protobuf:"varint,7,opt,name=set_size,json=setSize,proto3" json:"set_size,omitempty"`
	DomainSeparator []byte `protobuf:"bytes,8,opt,name=domain_separator,json=domainSeparator,proto3" json:"domain_separator,omitempty"`
}

// Message is a cross-chain message as emitted by the source chain.
type Message struct {
	SourceChain        string `protobuf:"bytes,1,opt,name=source_chain,json=sourceChain,proto3" json:"source_chain,omitempty"`
	MessageID          string `protobuf:"bytes,2,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	SourceAddress      string `protobuf:"bytes,3,opt,name=source_address,json=sourceAddress,proto3" json:"source_address,omitempty"`
	DestinationChain   string `protobuf:"bytes,4,opt,name=destination_chain,json=destinationChain,proto3" json:"destination_chain,omitempty"`
	DestinationAddress string `protobuf:"bytes,5,opt,name=destination_address,json=destinationAddress,proto3" json:"destination_address,omitempty"`
	PayloadHash        []byte `protobuf:"bytes,6,opt,name=payload_hash,json=payloadHash,proto3" json:"payload_hash,omitempty"`
}

// MessageLeaf places a message in a signed batch.
type MessageLeaf struct {
	Message            *Message `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
	Position           uint32   `protobuf:"varint,2,opt,name=position,proto3" json:"position,omitempty"`
	SetSize            uint32   `protobuf:"varint,3,opt,name=set_size,json=setSize,proto3" json:"set_size,omitempty"`
	DomainSeparator    []byte   `protobuf:"bytes,4,opt,name=domain_separator,json=domainSeparator,proto3" json:"domain_separator,omitempty"`
	SigningVerifierSet []byte   `protobuf:"bytes,5,opt,name=signing_verifier_set,json=signingVerifierSet,proto3" json:"signing_verifier_set,omitempty"`
}

// OpenSessionMsg starts collecting signatures for a payload root.
type OpenSessionMsg struct {
	PayloadMerkleRoot []byte      `protobuf:"bytes,1,opt,name=payload_merkle_root,json=payloadMerkleRoot,proto3" json:"payload_merkle_root,omitempty"`
	CommandType       CommandType `protobuf:"varint,2,opt,name=command_type,json=commandType,proto3" json:"command_type,omitempty"`
	VerifierSetHash   []byte      `protobuf:"bytes,3,opt,name=verifier_set_hash,json=verifierSetHash,proto3" json:"verifier_set_hash,omitempty"`
}

// SubmitSignatureMsg adds the signature of one verifier to a session.
type SubmitSignatureMsg struct {
	PayloadMerkleRoot []byte           `protobuf:"bytes,1,opt,name=payload_merkle_root,json=payloadMerkleRoot,proto3" json:"payload_merkle_root,omitempty"`
	CommandType       CommandType      `protobuf:"varint,2,opt,name=command_type,json=commandType,proto3" json:"command_type,omitempty"`
	Leaf              *VerifierSetLeaf `protobuf:"bytes,3,opt,name=leaf,proto3" json:"leaf,omitempty"`
	Proof             []byte           `protobuf:"bytes,4,opt,name=proof,proto3" json:"proof,omitempty"`
	Signature         []byte           `protobuf:"bytes,5,opt,name=signature,proto3" json:"signature,omitempty"`
}

// ApproveMessageMsg approves a single message of a signed batch.
type ApproveMessageMsg struct {
	PayloadMerkleRoot []byte       `protobuf:"bytes,1,opt,name=payload_merkle_root,json=payloadMerkleRoot,proto3" json:"payload_merkle_root,omitempty"`
	Leaf              *MessageLeaf `protobuf:"bytes,2,opt,name=leaf,proto3" json:"leaf,omitempty"`
	Proof             []byte       `protobuf:"bytes,3,opt,name=proof,proto3" json:"proof,omitempty"`
}

// ExecuteMessageMsg marks an approved message as executed. It must be sent
// by the destination of the message.
type ExecuteMessageMsg struct {
	CommandID []byte `protobuf:"bytes,1,opt,name=command_id,json=commandId,proto3" json:"command_id,omitempty"`
	Payload   []byte `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
}

// RotateSignersMsg replaces the active verifier set.
type RotateSignersMsg struct {
	PayloadMerkleRoot  []byte `protobuf:"bytes,1,opt,name=payload_merkle_root,json=payloadMerkleRoot,proto3" json:"payload_merkle_root,omitempty"`
	NewVerifierSetHash []byte `protobuf:"bytes,2,opt,name=new_verifier_set_hash,json=newVerifierSetHash,proto3" json:"new_verifier_set_hash,omitempty"`
}

// TransferOperatorshipMsg hands the operator role to a new address.
type TransferOperatorshipMsg struct {
	NewOperator []byte `protobuf:"bytes,1,opt,name=new_operator,json=newOperator,proto3" json:"new_operator,omitempty"`
}

// CallContractMsg sends a message to a contract on another chain.
type CallContractMsg struct {
	Sender                     []byte `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	DestinationChain           string `protobuf:"bytes,2,opt,name=destination_chain,json=destinationChain,proto3" json:"destination_chain,omitempty"`
	DestinationContractAddress string `protobuf:"bytes,3,opt,name=destination_contract_address,json=destinationContractAddress,proto3" json:"destination_contract_address,omitempty"`
	Payload                    []byte `protobuf:"bytes,4,opt,name=payload,proto3" json:"payload,omitempty"`
}

type SessionOpenedEvent struct {
	PayloadMerkleRoot []byte      `protobuf:"bytes,1,opt,name=payload_merkle_root,json=payloadMerkleRoot,proto3" json:"payload_merkle_root,omitempty"`
	CommandType       CommandType `protobuf:"varint,2,opt,name=command_type,json=commandType,proto3" json:"command_type,omitempty"`
	VerifierSetHash   []byte      `protobuf:"bytes,3,opt,name=verifier_set_hash,json=verifierSetHash,proto3" json:"verifier_set_hash,omitempty"`
}

type SignatureVerifiedEvent struct {
	PayloadMerkleRoot []byte      `protobuf:"bytes,1,opt,name=payload_merkle_root,json=payloadMerkleRoot,proto3" json:"payload_merkle_root,omitempty"`
	CommandType       CommandType `protobuf:"varint,2,opt,name=command_type,json=commandType,proto3" json:"command_type,omitempty"`
	Position          uint32      `protobuf:"varint,3,opt,name=position,proto3" json:"position,omitempty"`
	AccumulatedWeight []byte      `protobuf:"bytes,4,opt,name=accumulated_weight,json=accumulatedWeight,proto3" json:"accumulated_weight,omitempty"`
	IsValid           bool        `protobuf:"varint,5,opt,name=is_valid,json=isValid,proto3" json:"is_valid,omitempty"`
}

type MessageApprovedEvent struct {
	CommandID          []byte `protobuf:"bytes,1,opt,name=command_id,json=commandId,proto3" json:"command_id,omitempty"`
	SourceChain        string `protobuf:"bytes,2,opt,name=source_chain,json=sourceChain,proto3" json:"source_chain,omitempty"`
	MessageID          string `protobuf:"bytes,3,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	SourceAddress      string `protobuf:"bytes,4,opt,name=source_address,json=sourceAddress,proto3" json:"source_address,omitempty"`
	DestinationChain   string `protobuf:"bytes,5,opt,name=destination_chain,json=destinationChain,proto3" json:"destination_chain,omitempty"`
	DestinationAddress string `protobuf:"bytes,6,opt,name=destination_address,json=destinationAddress,proto3" json:"destination_address,omitempty"`
	PayloadHash        []byte `protobuf:"bytes,7,opt,name=payload_hash,json=payloadHash,proto3" json:"payload_hash,omitempty"`
}

type MessageExecutedEvent struct {
	CommandID          []byte `protobuf:"bytes,1,opt,name=command_id,json=commandId,proto3" json:"command_id,omitempty"`
	SourceChain        string `protobuf:"bytes,2,opt,name=source_chain,json=sourceChain,proto3" json:"source_chain,omitempty"`
	MessageID          string `protobuf:"bytes,3,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	SourceAddress      string `protobuf:"bytes,4,opt,name=source_address,json=sourceAddress,proto3" json:"source_address,omitempty"`
	DestinationChain   string `protobuf:"bytes,5,opt,name=destination_chain,json=destinationChain,proto3" json:"destination_chain,omitempty"`
	DestinationAddress string `protobuf:"bytes,6,opt,name=destination_address,json=destinationAddress,proto3" json:"destination_address,omitempty"`
	PayloadHash        []byte `protobuf:"bytes,7,opt,name=payload_hash,json=payloadHash,proto3" json:"payload_hash,omitempty"`
}

type VerifierSetRotatedEvent struct {
	VerifierSetHash []byte `protobuf:"bytes,1,opt,name=verifier_set_hash,json=verifierSetHash,proto3" json:"verifier_set_hash,omitempty"`
	Epoch           uint64 `protobuf:"varint,2,opt,name=epoch,proto3" json:"epoch,omitempty"`
}

type OperatorshipTransferredEvent struct {
	NewOperator []byte `protobuf:"bytes,1,opt,name=new_operator,json=newOperator,proto3" json:"new_operator,omitempty"`
}

type ContractCallEvent struct {
	Sender                     []byte `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	DestinationChain           string `protobuf:"bytes,2,opt,name=destination_chain,json=destinationChain,proto3" json:"destination_chain,omitempty"`
	DestinationContractAddress string `protobuf:"bytes,3,opt,name=destination_contract_address,json=destinationContractAddress,proto3" json:"destination_contract_address,omitempty"`
	PayloadHash                []byte `protobuf:"bytes,4,opt,name=payload_hash,json=payloadHash,proto3" json:"payload_hash,omitempty"`
	Payload                    []byte `protobuf:"bytes,5,opt,name=payload,proto3" json:"payload,omitempty"`
}

type configWire Config

func (m *configWire) Reset()         { *m = configWire{} }
func (m *configWire) String() string { return proto.CompactTextString(m) }
func (*configWire) ProtoMessage()    {}

func (m *Config) Marshal() ([]byte, error) {
	return proto.Marshal((*configWire)(m))
}

func (m *Config) Unmarshal(raw []byte) error {
	if err := proto.Unmarshal(raw, (*configWire)(m)); err != nil {
		return errors.Wrapf(errors.ErrModel, "Config: %s", err)
	}
	return nil
}

type verifierSetTrackerWire VerifierSetTracker

func (m *verifierSetTrackerWire) Reset()         { *m = verifierSetTrackerWire{} }
func (m *verifierSetTrackerWire) String() string { return proto.CompactTextString(m) }
func (*verifierSetTrackerWire) ProtoMessage()    {}

func (m *VerifierSetTracker) Marshal() ([]byte, error) {
	return proto.Marshal((*verifierSetTrackerWire)(m))
}

func (m *VerifierSetTracker) Unmarshal(raw []byte) error {
	if err := proto.Unmarshal(raw, (*verifierSetTrackerWire)(m)); err != nil {
		return errors.Wrapf(errors.ErrModel, "VerifierSetTracker: %s", err)
	}
	return nil
}

type verificationSessionWire VerificationSession

func (m *verificationSessionWire) Reset()         { *m = verificationSessionWire{} }
func (m *verificationSessionWire) String() string { return proto.CompactTextString(m) }
func (*verificationSessionWire) ProtoMessage()    {}

func (m *VerificationSession) Marshal() ([]byte, error) {
	return proto.Marshal((*verificationSessionWire)(m))
}

func (m *VerificationSession) Unmarshal(raw []byte) error {
	if err := proto.Unmarshal(raw, (*verificationSessionWire)(m)); err != nil {
		return errors.Wrapf(errors.ErrModel, "VerificationSession: %s", err)
	}
	return nil
}

type incomingMessageWire IncomingMessage

func (m *incomingMessageWire) Reset()         { *m = incomingMessageWire{} }
func (m *incomingMessageWire) String() string { return proto.CompactTextString(m) }
func (*incomingMessageWire) ProtoMessage()    {}

func (m *IncomingMessage) Marshal() ([]byte, error) {
	return proto.Marshal((*incomingMessageWire)(m))
}

func (m *IncomingMessage) Unmarshal(raw []byte) error {
	if err := proto.Unmarshal(raw, (*incomingMessageWire)(m)); err != nil {
		return errors.Wrapf(errors.ErrModel, "IncomingMessage: %s", err)
	}
	return nil
}

type verifierSetLeafWire VerifierSetLeaf

func (m *verifierSetLeafWire) Reset()         { *m = verifierSetLeafWire{} }
func (m *verifierSetLeafWire) String() string { return proto.CompactTextString(m) }
func (*verifierSetLeafWire) ProtoMessage()    {}

func (m *VerifierSetLeaf) Marshal() ([]byte, error) {
	return proto.Marshal((*verifierSetLeafWire)(m))
}

func (m *VerifierSetLeaf) Unmarshal(raw []byte) error {
	if err := proto.Unmarshal(raw, (*verifierSetLeafWire)(m)); err != nil {
		return errors.Wrapf(errors.ErrModel, "VerifierSetLeaf: %s", err)
	}
	return nil
}

type messageWire Message

func (m *messageWire) Reset()         { *m = messageWire{} }
func (m *messageWire) String() string { return proto.CompactTextString(m) }
func (*messageWire) ProtoMessage()    {}

func (m *Message) Marshal() ([]byte, error) {
	return proto.Marshal((*messageWire)(m))
}

func (m *Message) Unmarshal(raw []byte) error {
	if err := proto.Unmarshal(raw, (*messageWire)(m)); err != nil {
		return errors.Wrapf(errors.ErrModel, "Message: %s", err)
	}
	return nil
}

type messageLeafWire MessageLeaf

func (m *messageLeafWire) Reset()         { *m = messageLeafWire{} }
func (m *messageLeafWire) String() string { return proto.CompactTextString(m) }
func (*messageLeafWire) ProtoMessage()    {}

func (m *MessageLeaf) Marshal() ([]byte, error) {
	return proto.Marshal((*messageLeafWire)(m))
}

func (m *MessageLeaf) Unmarshal(raw []byte) error {
	if err := proto.Unmarshal(raw, (*messageLeafWire)(m)); err != nil {
		return errors.Wrapf(errors.ErrModel, "MessageLeaf: %s", err)
	}
	return nil
}

type openSessionMsgWire OpenSessionMsg

func (m *openSessionMsgWire) Reset()         { *m = openSessionMsgWire{} }
func (m *openSessionMsgWire) String() string { return proto.CompactTextString(m) }
func (*openSessionMsgWire) ProtoMessage()    {}

func (m *OpenSessionMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*openSessionMsgWire)(m))
}

func (m *OpenSessionMsg) Unmarshal(raw []byte) error {
	if err := proto.Unmarshal(raw, (*openSessionMsgWire)(m)); err != nil {
		return errors.Wrapf(errors.ErrModel, "OpenSessionMsg: %s", err)
	}
	return nil
}

type submitSignatureMsgWire SubmitSignatureMsg

func (m *submitSignatureMsgWire) Reset()         { *m = submitSignatureMsgWire{} }
func (m *submitSignatureMsgWire) String() string { return proto.CompactTextString(m) }
func (*submitSignatureMsgWire) ProtoMessage()    {}

func (m *SubmitSignatureMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*submitSignatureMsgWire)(m))
}

func (m *SubmitSignatureMsg) Unmarshal(raw []byte) error {
	if err := proto.Unmarshal(raw, (*submitSignatureMsgWire)(m)); err != nil {
		return errors.Wrapf(errors.ErrModel, "SubmitSignatureMsg: %s", err)
	}
	return nil
}

type approveMessageMsgWire ApproveMessageMsg

func (m *approveMessageMsgWire) Reset()         { *m = approveMessageMsgWire{} }
func (m *approveMessageMsgWire) String() string { return proto.CompactTextString(m) }
func (*approveMessageMsgWire) ProtoMessage()    {}

func (m *ApproveMessageMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*approveMessageMsgWire)(m))
}

func (m *ApproveMessageMsg) Unmarshal(raw []byte) error {
	if err := proto.Unmarshal(raw, (*approveMessageMsgWire)(m)); err != nil {
		return errors.Wrapf(errors.ErrModel, "ApproveMessageMsg: %s", err)
	}
	return nil
}

type executeMessageMsgWire ExecuteMessageMsg

func (m *executeMessageMsgWire) Reset()         { *m = executeMessageMsgWire{} }
func (m *executeMessageMsgWire) String() string { return proto.CompactTextString(m) }
func (*executeMessageMsgWire) ProtoMessage()    {}

func (m *ExecuteMessageMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*executeMessageMsgWire)(m))
}

func (m *ExecuteMessageMsg) Unmarshal(raw []byte) error {
	if err := proto.Unmarshal(raw, (*executeMessageMsgWire)(m)); err != nil {
		return errors.Wrapf(errors.ErrModel, "ExecuteMessageMsg: %s", err)
	}
	return nil
}

type rotateSignersMsgWire RotateSignersMsg

func (m *rotateSignersMsgWire) Reset()         { *m = rotateSignersMsgWire{} }
func (m *rotateSignersMsgWire) String() string { return proto.CompactTextString(m) }
func (*rotateSignersMsgWire) ProtoMessage()    {}

func (m *RotateSignersMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*rotateSignersMsgWire)(m))
}

func (m *RotateSignersMsg) Unmarshal(raw []byte) error {
	if err := proto.Unmarshal(raw, (*rotateSignersMsgWire)(m)); err != nil {
		return errors.Wrapf(errors.ErrModel, "RotateSignersMsg: %s", err)
	}
	return nil
}

type transferOperatorshipMsgWire TransferOperatorshipMsg

func (m *transferOperatorshipMsgWire) Reset()         { *m = transferOperatorshipMsgWire{} }
func (m *transferOperatorshipMsgWire) String() string { return proto.CompactTextString(m) }
func (*transferOperatorshipMsgWire) ProtoMessage()    {}

func (m *TransferOperatorshipMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*transferOperatorshipMsgWire)(m))
}

func (m *TransferOperatorshipMsg) Unmarshal(raw []byte) error {
	if err := proto.Unmarshal(raw, (*transferOperatorshipMsgWire)(m)); err != nil {
		return errors.Wrapf(errors.ErrModel, "TransferOperatorshipMsg: %s", err)
	}
	return nil
}

type callContractMsgWire CallContractMsg

func (m *callContractMsgWire) Reset()         { *m = callContractMsgWire{} }
func (m *callContractMsgWire) String() string { return proto.CompactTextString(m) }
func (*callContractMsgWire) ProtoMessage()    {}

func (m *CallContractMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*callContractMsgWire)(m))
}

func (m *CallContractMsg) Unmarshal(raw []byte) error {
	if err := proto.Unmarshal(raw, (*callContractMsgWire)(m)); err != nil {
		return errors.Wrapf(errors.ErrModel, "CallContractMsg: %s", err)
	}
	return nil
}

type sessionOpenedEventWire SessionOpenedEvent

func (m *sessionOpenedEventWire) Reset()         { *m = sessionOpenedEventWire{} }
func (m *sessionOpenedEventWire) String() string { return proto.CompactTextString(m) }
func (*sessionOpenedEventWire) ProtoMessage()    {}

func (m *SessionOpenedEvent) Marshal() ([]byte, error) {
	return proto.Marshal((*sessionOpenedEventWire)(m))
}

func (m *SessionOpenedEvent) Unmarshal(raw []byte) error {
	if err := proto.Unmarshal(raw, (*sessionOpenedEventWire)(m)); err != nil {
		return errors.Wrapf(errors.ErrModel, "SessionOpenedEvent: %s", err)
	}
	return nil
}

type signatureVerifiedEventWire SignatureVerifiedEvent

func (m *signatureVerifiedEventWire) Reset()         { *m = signatureVerifiedEventWire{} }
func (m *signatureVerifiedEventWire) String() string { return proto.CompactTextString(m) }
func (*signatureVerifiedEventWire) ProtoMessage()    {}

func (m *SignatureVerifiedEvent) Marshal() ([]byte, error) {
	return proto.Marshal((*signatureVerifiedEventWire)(m))
}

func (m *SignatureVerifiedEvent) Unmarshal(raw []byte) error {
	if err := proto.Unmarshal(raw, (*signatureVerifiedEventWire)(m)); err != nil {
		return errors.Wrapf(errors.ErrModel, "SignatureVerifiedEvent: %s", err)
	}
	return nil
}

type messageApprovedEventWire MessageApprovedEvent

func (m *messageApprovedEventWire) Reset()         { *m = messageApprovedEventWire{} }
func (m *messageApprovedEventWire) String() string { return proto.CompactTextString(m) }
func (*messageApprovedEventWire) ProtoMessage()    {}

func (m *MessageApprovedEvent) Marshal() ([]byte, error) {
	return proto.Marshal((*messageApprovedEventWire)(m))
}

func (m *MessageApprovedEvent) Unmarshal(raw []byte) error {
	if err := proto.Unmarshal(raw, (*messageApprovedEventWire)(m)); err != nil {
		return errors.Wrapf(errors.ErrModel, "MessageApprovedEvent: %s", err)
	}
	return nil
}

type messageExecutedEventWire MessageExecutedEvent

func (m *messageExecutedEventWire) Reset()         { *m = messageExecutedEventWire{} }
func (m *messageExecutedEventWire) String() string { return proto.CompactTextString(m) }
func (*messageExecutedEventWire) ProtoMessage()    {}

func (m *MessageExecutedEvent) Marshal() ([]byte, error) {
	return proto.Marshal((*messageExecutedEventWire)(m))
}

func (m *MessageExecutedEvent) Unmarshal(raw []byte) error {
	if err := proto.Unmarshal(raw, (*messageExecutedEventWire)(m)); err != nil {
		return errors.Wrapf(errors.ErrModel, "MessageExecutedEvent: %s", err)
	}
	return nil
}

type verifierSetRotatedEventWire VerifierSetRotatedEvent

func (m *verifierSetRotatedEventWire) Reset()         { *m = verifierSetRotatedEventWire{} }
func (m *verifierSetRotatedEventWire) String() string { return proto.CompactTextString(m) }
func (*verifierSetRotatedEventWire) ProtoMessage()    {}

func (m *VerifierSetRotatedEvent) Marshal() ([]byte, error) {
	return proto.Marshal((*verifierSetRotatedEventWire)(m))
}

func (m *VerifierSetRotatedEvent) Unmarshal(raw []byte) error {
	if err := proto.Unmarshal(raw, (*verifierSetRotatedEventWire)(m)); err != nil {
		return errors.Wrapf(errors.ErrModel, "VerifierSetRotatedEvent: %s", err)
	}
	return nil
}

type operatorshipTransferredEventWire OperatorshipTransferredEvent

func (m *operatorshipTransferredEventWire) Reset()         { *m = operatorshipTransferredEventWire{} }
func (m *operatorshipTransferredEventWire) String() string { return proto.CompactTextString(m) }
func (*operatorshipTransferredEventWire) ProtoMessage()    {}

func (m *OperatorshipTransferredEvent) Marshal() ([]byte, error) {
	return proto.Marshal((*operatorshipTransferredEventWire)(m))
}

func (m *OperatorshipTransferredEvent) Unmarshal(raw []byte) error {
	if err := proto.Unmarshal(raw, (*operatorshipTransferredEventWire)(m)); err != nil {
		return errors.Wrapf(errors.ErrModel, "OperatorshipTransferredEvent: %s", err)
	}
	return nil
}

type contractCallEventWire ContractCallEvent

func (m *contractCallEventWire) Reset()         { *m = contractCallEventWire{} }
func (m *contractCallEventWire) String() string { return proto.CompactTextString(m) }
func (*contractCallEventWire) ProtoMessage()    {}

func (m *ContractCallEvent) Marshal() ([]byte, error) {
	return proto.Marshal((*contractCallEventWire)(m))
}

func (m *ContractCallEvent) Unmarshal(raw []byte) error {
	if err := proto.Unmarshal(raw, (*contractCallEventWire)(m)); err != nil {
		return errors.Wrapf(errors.ErrModel, "ContractCallEvent: %s", err)
	}
	return nil
}
