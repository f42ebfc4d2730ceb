package cash

import (
	"github.com/gogo/protobuf/proto"
	weave "github.com/iov-one/weave-escrow"
	"github.com/iov-one/weave-escrow/coin"
)

// Set may contain coins of many different currencies.
type Set struct {
	Coins []*coin.Coin `protobuf:"bytes,1,rep,name=coins" json:"coins,omitempty"`
}

type setWire Set

func (m *setWire) Reset()         { *m = setWire{} }
func (m *setWire) String() string { return proto.CompactTextString(m) }
func (*setWire) ProtoMessage()    {}

func (s *Set) Marshal() ([]byte, error) {
	return proto.Marshal((*setWire)(s))
}

func (s *Set) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*setWire)(s))
}

// SendMsg is a request to move coins from the source to the destination
// address.
type SendMsg struct {
	Src    weave.Address `protobuf:"bytes,1,opt,name=src,proto3" json:"src,omitempty"`
	Dest   weave.Address `protobuf:"bytes,2,opt,name=dest,proto3" json:"dest,omitempty"`
	Amount *coin.Coin    `protobuf:"bytes,3,opt,name=amount" json:"amount,omitempty"`
	Memo   string        `protobuf:"bytes,4,opt,name=memo,proto3" json:"memo,omitempty"`
	Ref    []byte        `protobuf:"bytes,5,opt,name=ref,proto3" json:"ref,omitempty"`
}

type sendMsgWire SendMsg

func (m *sendMsgWire) Reset()         { *m = sendMsgWire{} }
func (m *sendMsgWire) String() string { return proto.CompactTextString(m) }
func (*sendMsgWire) ProtoMessage()    {}

func (m *SendMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*sendMsgWire)(m))
}

func (m *SendMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*sendMsgWire)(m))
}
