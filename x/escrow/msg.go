package escrow

import (
	weave "github.com/iov-one/weave-escrow"
	"github.com/iov-one/weave-escrow/errors"
)

const (
	createEscrowCost  int64 = 300
	releaseEscrowCost int64 = 50
	refundEscrowCost  int64 = 50
)

var _ weave.Msg = (*CreateMsg)(nil)
var _ weave.Msg = (*ReleaseMsg)(nil)
var _ weave.Msg = (*RefundMsg)(nil)
var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (CreateMsg) Path() string {
	return "escrow/create"
}

func (ReleaseMsg) Path() string {
	return "escrow/release"
}

func (RefundMsg) Path() string {
	return "escrow/refund"
}

func (UpdateConfigurationMsg) Path() string {
	return "escrow/update_configuration"
}

// Validate checks the terms of the new escrow.
func (m *CreateMsg) Validate() error {
	return validateTerms(m.Payer, m.Payee, m.Arbiter, m.Amount, m.ReleaseAfter, m.RequiredApprovals)
}

func (m *ReleaseMsg) Validate() error {
	return validateVote(m.EscrowId, m.Approver)
}

func (m *RefundMsg) Validate() error {
	return validateVote(m.EscrowId, m.Approver)
}

func (m *UpdateConfigurationMsg) Validate() error {
	if m.Patch == nil {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	return nil
}

func validateVote(escrowID []byte, approver weave.Address) error {
	err := validateEscrowID(escrowID)
	if approver != nil {
		err = errors.AppendField(err, "Approver", approver.Validate())
	}
	return err
}

func validateEscrowID(id []byte) error {
	if len(id) != 8 {
		return errors.Field("EscrowId", errors.ErrInput, "escrow id must be 8 bytes, got %X", id)
	}
	return nil
}
