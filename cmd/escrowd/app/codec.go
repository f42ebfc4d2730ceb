package escrowd

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/weave-escrow/x/cash"
	"github.com/iov-one/weave-escrow/x/escrow"
	"github.com/iov-one/weave-escrow/x/sigs"
)

// Tx contains the message and the signatures authorizing it. The message
// fields form a oneof on the wire, exactly one of them must be set.
type Tx struct {
	Signatures                   []*sigs.StdSignature           `protobuf:"bytes,1,rep,name=signatures" json:"signatures,omitempty"`
	SendMsg                      *cash.SendMsg                  `protobuf:"bytes,2,opt,name=send_msg" json:"send_msg,omitempty"`
	CreateEscrowMsg              *escrow.CreateMsg              `protobuf:"bytes,3,opt,name=create_escrow_msg" json:"create_escrow_msg,omitempty"`
	ReleaseEscrowMsg             *escrow.ReleaseMsg             `protobuf:"bytes,4,opt,name=release_escrow_msg" json:"release_escrow_msg,omitempty"`
	RefundEscrowMsg              *escrow.RefundMsg              `protobuf:"bytes,5,opt,name=refund_escrow_msg" json:"refund_escrow_msg,omitempty"`
	UpdateEscrowConfigurationMsg *escrow.UpdateConfigurationMsg `protobuf:"bytes,6,opt,name=update_escrow_configuration_msg" json:"update_escrow_configuration_msg,omitempty"`
}

type txWire Tx

func (m *txWire) Reset()         { *m = txWire{} }
func (m *txWire) String() string { return proto.CompactTextString(m) }
func (*txWire) ProtoMessage()    {}

func (tx *Tx) Marshal() ([]byte, error) {
	return proto.Marshal((*txWire)(tx))
}

func (tx *Tx) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*txWire)(tx))
}
