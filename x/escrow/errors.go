package escrow

import "github.com/iov-one/weave-escrow/errors"

// Escrow errors use codes 1010-1020.
var (
	ErrSameParty         = errors.Register(1010, "payer, payee and arbiter must differ")
	ErrInvalidQuorum     = errors.Register(1011, "required approvals must be between 1 and 3")
	ErrNotPending        = errors.Register(1012, "escrow not pending")
	ErrNotParty          = errors.Register(1013, "approver must be payer, payee or arbiter")
	ErrDuplicateApproval = errors.Register(1014, "duplicate approval")
	ErrTimeNotReached    = errors.Register(1015, "release time not reached")
)
