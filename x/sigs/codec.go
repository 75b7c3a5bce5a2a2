package sigs

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/weft/errors"
)

// StdSignature is the signature of a single signer over the sign bytes of
// a transaction.
type StdSignature struct {
	Sequence  int64  `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	KeyType   uint32 `protobuf:"varint,2,opt,name=key_type,json=keyType,proto3" json:"key_type,omitempty"`
	PubKey    []byte `protobuf:"bytes,3,opt,name=pub_key,json=pubKey,proto3" json:"pub_key,omitempty"`
	Signature []byte `protobuf:"bytes,4,opt,name=signature,proto3" json:"signature,omitempty"`
}

// UserData is the replay protection state of a single signer.
type UserData struct {
	Sequence int64 `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
}

type stdSignatureWire StdSignature

func (m *stdSignatureWire) Reset()         { *m = stdSignatureWire{} }
func (m *stdSignatureWire) String() string { return proto.CompactTextString(m) }
func (*stdSignatureWire) ProtoMessage()    {}

func (m *StdSignature) Marshal() ([]byte, error) {
	return proto.Marshal((*stdSignatureWire)(m))
}

func (m *StdSignature) Unmarshal(raw []byte) error {
	if err := proto.Unmarshal(raw, (*stdSignatureWire)(m)); err != nil {
		return errors.Wrapf(errors.ErrModel, "StdSignature: %s", err)
	}
	return nil
}

type userDataWire UserData

func (m *userDataWire) Reset()         { *m = userDataWire{} }
func (m *userDataWire) String() string { return proto.CompactTextString(m) }
func (*userDataWire) ProtoMessage()    {}

func (m *UserData) Marshal() ([]byte, error) {
	return proto.Marshal((*userDataWire)(m))
}

func (m *UserData) Unmarshal(raw []byte) error {
	if err := proto.Unmarshal(raw, (*userDataWire)(m)); err != nil {
		return errors.Wrapf(errors.ErrModel, "UserData: %s", err)
	}
	return nil
}
