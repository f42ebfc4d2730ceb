package crypto

import (
	"github.com/gogo/protobuf/proto"
)

// PublicKey is a public key of a supported signature scheme. Only ed25519
// is supported.
type PublicKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

// PrivateKey is a private key of a supported signature scheme.
type PrivateKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

// Signature is a signature created with a PrivateKey.
type Signature struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

// Wire representations are used for protobuf serialization. They declare
// no Marshal method, so that the reflection based codec is used.
type (
	publicKeyWire  PublicKey
	privateKeyWire PrivateKey
	signatureWire  Signature
)

func (m *publicKeyWire) Reset()         { *m = publicKeyWire{} }
func (m *publicKeyWire) String() string { return proto.CompactTextString(m) }
func (*publicKeyWire) ProtoMessage()    {}

func (m *privateKeyWire) Reset()         { *m = privateKeyWire{} }
func (m *privateKeyWire) String() string { return proto.CompactTextString(m) }
func (*privateKeyWire) ProtoMessage()    {}

func (m *signatureWire) Reset()         { *m = signatureWire{} }
func (m *signatureWire) String() string { return proto.CompactTextString(m) }
func (*signatureWire) ProtoMessage()    {}

func (m *PublicKey) Marshal() ([]byte, error) { return proto.Marshal((*publicKeyWire)(m)) }

func (m *PublicKey) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*publicKeyWire)(m)) }

func (m *PrivateKey) Marshal() ([]byte, error) { return proto.Marshal((*privateKeyWire)(m)) }

func (m *PrivateKey) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*privateKeyWire)(m)) }

func (m *Signature) Marshal() ([]byte, error) { return proto.Marshal((*signatureWire)(m)) }

func (m *Signature) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*signatureWire)(m)) }
