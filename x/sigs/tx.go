package sigs

import (
	weave "github.com/iov-one/weave-escrow"
	"github.com/iov-one/weave-escrow/errors"
)

// SignedTx represents a transaction that contains signatures, which can be
// verified by the Decorator.
type SignedTx interface {
	weave.Tx

	// GetSignBytes returns the canonical byte representation of the
	// message. Used to generate and verify signatures.
	GetSignBytes() ([]byte, error)

	// GetSignatures returns all signatures attached to the transaction.
	GetSignatures() []*StdSignature
}

// Validate ensures the signature is complete and the sequence is not
// negative.
func (s *StdSignature) Validate() error {
	if s.Sequence < 0 {
		return errors.Wrap(ErrInvalidSequence, "negative")
	}
	if s.Pubkey == nil || len(s.Pubkey.Ed25519) == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing public key")
	}
	if s.Signature == nil || len(s.Signature.Ed25519) == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing signature")
	}
	return nil
}
