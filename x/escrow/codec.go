package escrow

import (
	"github.com/gogo/protobuf/proto"
	weave "github.com/iov-one/weave-escrow"
	"github.com/iov-one/weave-escrow/coin"
)

// Escrow is the stored state of a single agreement. It is kept under its
// sequence ID.
type Escrow struct {
	Payer             weave.Address   `protobuf:"bytes,1,opt,name=payer,proto3" json:"payer,omitempty"`
	Payee             weave.Address   `protobuf:"bytes,2,opt,name=payee,proto3" json:"payee,omitempty"`
	Arbiter           weave.Address   `protobuf:"bytes,3,opt,name=arbiter,proto3" json:"arbiter,omitempty"`
	Amount            *coin.Coin      `protobuf:"bytes,4,opt,name=amount" json:"amount,omitempty"`
	ReleaseAfter      weave.UnixTime  `protobuf:"varint,5,opt,name=release_after,proto3" json:"release_after"`
	RequiredApprovals uint32          `protobuf:"varint,6,opt,name=required_approvals,proto3" json:"required_approvals"`
	Status            Status          `protobuf:"varint,7,opt,name=status,proto3" json:"status"`
	ReleaseApprovers  []weave.Address `protobuf:"bytes,8,rep,name=release_approvers" json:"release_approvers,omitempty"`
	RefundApprovers   []weave.Address `protobuf:"bytes,9,rep,name=refund_approvers" json:"refund_approvers,omitempty"`
	Address           weave.Address   `protobuf:"bytes,10,opt,name=address,proto3" json:"address,omitempty"`
}

type escrowWire Escrow

func (m *escrowWire) Reset()         { *m = escrowWire{} }
func (m *escrowWire) String() string { return proto.CompactTextString(m) }
func (*escrowWire) ProtoMessage()    {}

func (e *Escrow) Marshal() ([]byte, error) {
	return proto.Marshal((*escrowWire)(e))
}

func (e *Escrow) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*escrowWire)(e))
}

// CreateMsg locks the amount from the payer account in a new escrow.
type CreateMsg struct {
	Payer             weave.Address  `protobuf:"bytes,1,opt,name=payer,proto3" json:"payer,omitempty"`
	Payee             weave.Address  `protobuf:"bytes,2,opt,name=payee,proto3" json:"payee,omitempty"`
	Arbiter           weave.Address  `protobuf:"bytes,3,opt,name=arbiter,proto3" json:"arbiter,omitempty"`
	Amount            *coin.Coin     `protobuf:"bytes,4,opt,name=amount" json:"amount,omitempty"`
	ReleaseAfter      weave.UnixTime `protobuf:"varint,5,opt,name=release_after,proto3" json:"release_after"`
	RequiredApprovals uint32         `protobuf:"varint,6,opt,name=required_approvals,proto3" json:"required_approvals"`
}

type createMsgWire CreateMsg

func (m *createMsgWire) Reset()         { *m = createMsgWire{} }
func (m *createMsgWire) String() string { return proto.CompactTextString(m) }
func (*createMsgWire) ProtoMessage()    {}

func (m *CreateMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*createMsgWire)(m))
}

func (m *CreateMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*createMsgWire)(m))
}

// ReleaseMsg is a vote to pay the escrow amount to the payee.
type ReleaseMsg struct {
	EscrowId []byte        `protobuf:"bytes,1,opt,name=escrow_id,proto3" json:"escrow_id,omitempty"`
	Approver weave.Address `protobuf:"bytes,2,opt,name=approver,proto3" json:"approver,omitempty"`
}

type releaseMsgWire ReleaseMsg

func (m *releaseMsgWire) Reset()         { *m = releaseMsgWire{} }
func (m *releaseMsgWire) String() string { return proto.CompactTextString(m) }
func (*releaseMsgWire) ProtoMessage()    {}

func (m *ReleaseMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*releaseMsgWire)(m))
}

func (m *ReleaseMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*releaseMsgWire)(m))
}

// RefundMsg is a vote to return the escrow amount to the payer.
type RefundMsg struct {
	EscrowId []byte        `protobuf:"bytes,1,opt,name=escrow_id,proto3" json:"escrow_id,omitempty"`
	Approver weave.Address `protobuf:"bytes,2,opt,name=approver,proto3" json:"approver,omitempty"`
}

type refundMsgWire RefundMsg

func (m *refundMsgWire) Reset()         { *m = refundMsgWire{} }
func (m *refundMsgWire) String() string { return proto.CompactTextString(m) }
func (*refundMsgWire) ProtoMessage()    {}

func (m *RefundMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*refundMsgWire)(m))
}

func (m *RefundMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*refundMsgWire)(m))
}

// Configuration is kept in gconf under the "escrow" key.
type Configuration struct {
	Owner   weave.Address `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Tickers []string      `protobuf:"bytes,2,rep,name=tickers" json:"tickers,omitempty"`
}

type configurationWire Configuration

func (m *configurationWire) Reset()         { *m = configurationWire{} }
func (m *configurationWire) String() string { return proto.CompactTextString(m) }
func (*configurationWire) ProtoMessage()    {}

func (c *Configuration) Marshal() ([]byte, error) {
	return proto.Marshal((*configurationWire)(c))
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*configurationWire)(c))
}

type UpdateConfigurationMsg struct {
	Patch *Configuration `protobuf:"bytes,1,opt,name=patch" json:"patch,omitempty"`
}

type updateConfigurationMsgWire UpdateConfigurationMsg

func (m *updateConfigurationMsgWire) Reset()         { *m = updateConfigurationMsgWire{} }
func (m *updateConfigurationMsgWire) String() string { return proto.CompactTextString(m) }
func (*updateConfigurationMsgWire) ProtoMessage()    {}

func (m *UpdateConfigurationMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*updateConfigurationMsgWire)(m))
}

func (m *UpdateConfigurationMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*updateConfigurationMsgWire)(m))
}
