package cash

import (
	weave "github.com/iov-one/weave-escrow"
	"github.com/iov-one/weave-escrow/coin"
	"github.com/iov-one/weave-escrow/errors"
)

var _ weave.Msg = (*SendMsg)(nil)

const (
	sendTxCost int64 = 100

	maxMemoSize int = 128
	maxRefSize  int = 64
)

func (SendMsg) Path() string {
	return "cash/send"
}

// Validate makes sure that this is sensible.
func (m *SendMsg) Validate() error {
	var err error
	if coin.IsEmpty(m.Amount) || !m.Amount.IsPositive() {
		err = errors.Field("Amount", errors.ErrAmount, "non-positive amount: %v", m.Amount)
	} else {
		err = errors.Field("Amount", m.Amount.Validate(), "invalid amount")
	}
	err = errors.Append(err,
		errors.Field("Src", m.Src.Validate(), "invalid source"),
		errors.Field("Dest", m.Dest.Validate(), "invalid destination"),
	)
	if len(m.Memo) > maxMemoSize {
		err = errors.Append(err, errors.Field("Memo", errors.ErrInput, "memo too long"))
	}
	if len(m.Ref) > maxRefSize {
		err = errors.Append(err, errors.Field("Ref", errors.ErrInput, "ref too long"))
	}
	return err
}
