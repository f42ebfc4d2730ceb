package escrow

import (
	"encoding/json"
	"testing"

	weave "github.com/iov-one/weave-escrow"
	"github.com/iov-one/weave-escrow/coin"
	"github.com/iov-one/weave-escrow/errors"
	"github.com/iov-one/weave-escrow/weavetest"
	"github.com/iov-one/weave-escrow/weavetest/assert"
)

func validEscrow() *Escrow {
	id := weavetest.SequenceID(1)
	return &Escrow{
		Payer:             weavetest.NewCondition().Address(),
		Payee:             weavetest.NewCondition().Address(),
		Arbiter:           weavetest.NewCondition().Address(),
		Amount:            coin.NewCoinp(1, 0, "IOV"),
		ReleaseAfter:      now,
		RequiredApprovals: 2,
		Status:            StatusPending,
		Address:           Condition(id).Address(),
	}
}

func TestEscrowValidate(t *testing.T) {
	cases := map[string]struct {
		Mutate  func(*Escrow)
		WantErr *errors.Error
	}{
		"valid": {
			Mutate: func(*Escrow) {},
		},
		"votes on both tracks": {
			Mutate: func(e *Escrow) {
				e.ReleaseApprovers = []weave.Address{e.Payer, e.Arbiter}
				e.RefundApprovers = []weave.Address{e.Payer}
				e.Status = StatusReleased
			},
		},
		"invalid status": {
			Mutate:  func(e *Escrow) { e.Status = StatusInvalid },
			WantErr: errors.ErrState,
		},
		"vote of a stranger": {
			Mutate: func(e *Escrow) {
				e.RefundApprovers = []weave.Address{weavetest.NewCondition().Address()}
			},
			WantErr: ErrNotParty,
		},
		"duplicated vote": {
			Mutate:  func(e *Escrow) { e.ReleaseApprovers = []weave.Address{e.Payee, e.Payee} },
			WantErr: ErrDuplicateApproval,
		},
		"more votes than required": {
			Mutate:  func(e *Escrow) { e.ReleaseApprovers = []weave.Address{e.Payee, e.Payer, e.Arbiter} },
			WantErr: errors.ErrState,
		},
		"missing address": {
			Mutate:  func(e *Escrow) { e.Address = nil },
			WantErr: errors.ErrEmpty,
		},
		"zero amount": {
			Mutate:  func(e *Escrow) { e.Amount = coin.NewCoinp(0, 0, "IOV") },
			WantErr: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			e := validEscrow()
			tc.Mutate(e)
			assert.IsErr(t, tc.WantErr, e.Validate())
		})
	}
}

func TestEscrowCopy(t *testing.T) {
	e := validEscrow()
	e.ReleaseApprovers = []weave.Address{e.Payer}

	cp := e.Copy().(*Escrow)
	assert.Equal(t, e, cp)

	cp.ReleaseApprovers[0][0]++
	cp.Amount.Whole = 99
	cp.Status = StatusReleased
	assert.Equal(t, e.Payer, e.ReleaseApprovers[0])
	assert.Equal(t, int64(1), e.Amount.Whole)
	assert.Equal(t, StatusPending, e.Status)
}

func TestEscrowSerialization(t *testing.T) {
	e := validEscrow()
	e.ReleaseApprovers = []weave.Address{e.Payee}
	e.RefundApprovers = []weave.Address{e.Arbiter, e.Payer}

	raw, err := e.Marshal()
	assert.Nil(t, err)
	var got Escrow
	assert.Nil(t, got.Unmarshal(raw))
	assert.Equal(t, e, &got)
}

func TestStatusJSON(t *testing.T) {
	raw, err := json.Marshal(StatusRefunded)
	assert.Nil(t, err)
	assert.Equal(t, `"refunded"`, string(raw))

	var s Status
	assert.Nil(t, json.Unmarshal([]byte(`"released"`), &s))
	assert.Equal(t, StatusReleased, s)

	assert.IsErr(t, errors.ErrInput, json.Unmarshal([]byte(`"lost"`), &s))
	assert.IsErr(t, errors.ErrInput, json.Unmarshal([]byte(`2`), &s))
	assert.Equal(t, "status(9)", Status(9).String())
}

func TestStatusIsTerminal(t *testing.T) {
	assert.Equal(t, false, StatusPending.IsTerminal())
	assert.Equal(t, true, StatusReleased.IsTerminal())
	assert.Equal(t, true, StatusRefunded.IsTerminal())
}
