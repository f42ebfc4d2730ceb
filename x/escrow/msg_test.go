package escrow

import (
	"testing"

	weave "github.com/iov-one/weave-escrow"
	"github.com/iov-one/weave-escrow/coin"
	"github.com/iov-one/weave-escrow/errors"
	"github.com/iov-one/weave-escrow/weavetest"
	"github.com/iov-one/weave-escrow/weavetest/assert"
)

func TestCreateMsgValidate(t *testing.T) {
	a := weavetest.NewCondition().Address()
	b := weavetest.NewCondition().Address()
	c := weavetest.NewCondition().Address()

	cases := map[string]struct {
		Msg     *CreateMsg
		WantErr *errors.Error
	}{
		"valid": {
			Msg: &CreateMsg{Payer: a, Payee: b, Arbiter: c, Amount: coin.NewCoinp(1, 0, "IOV"), ReleaseAfter: now, RequiredApprovals: 3},
		},
		"fractional amount": {
			Msg: &CreateMsg{Payer: a, Payee: b, Arbiter: c, Amount: coin.NewCoinp(0, 1, "IOV"), RequiredApprovals: 1},
		},
		"invalid ticker": {
			Msg:     &CreateMsg{Payer: a, Payee: b, Arbiter: c, Amount: coin.NewCoinp(1, 0, "iov"), RequiredApprovals: 1},
			WantErr: errors.ErrCurrency,
		},
		"missing payer": {
			Msg:     &CreateMsg{Payee: b, Arbiter: c, Amount: coin.NewCoinp(1, 0, "IOV"), RequiredApprovals: 1},
			WantErr: errors.ErrEmpty,
		},
		"missing arbiter": {
			Msg:     &CreateMsg{Payer: a, Payee: b, Amount: coin.NewCoinp(1, 0, "IOV"), RequiredApprovals: 1},
			WantErr: errors.ErrEmpty,
		},
		"negative release time": {
			Msg:     &CreateMsg{Payer: a, Payee: b, Arbiter: c, Amount: coin.NewCoinp(1, 0, "IOV"), ReleaseAfter: -1, RequiredApprovals: 1},
			WantErr: errors.ErrState,
		},
		"same party is reported before the quorum": {
			Msg:     &CreateMsg{Payer: a, Payee: a, Arbiter: c, Amount: coin.NewCoinp(1, 0, "IOV"), RequiredApprovals: 7},
			WantErr: ErrSameParty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.IsErr(t, tc.WantErr, tc.Msg.Validate())
		})
	}
}

func TestVoteMsgValidate(t *testing.T) {
	cases := map[string]struct {
		Msg     weave.Msg
		WantErr *errors.Error
	}{
		"release": {
			Msg: &ReleaseMsg{EscrowId: weavetest.SequenceID(1)},
		},
		"refund with approver": {
			Msg: &RefundMsg{EscrowId: weavetest.SequenceID(1), Approver: weavetest.NewCondition().Address()},
		},
		"missing id": {
			Msg:     &ReleaseMsg{},
			WantErr: errors.ErrInput,
		},
		"invalid approver": {
			Msg:     &RefundMsg{EscrowId: weavetest.SequenceID(1), Approver: weave.Address("x")},
			WantErr: errors.ErrInput,
		},
		"empty configuration update": {
			Msg:     &UpdateConfigurationMsg{},
			WantErr: errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.IsErr(t, tc.WantErr, tc.Msg.Validate())
		})
	}
}

func TestVoteMsgFieldErrors(t *testing.T) {
	err := (&ReleaseMsg{EscrowId: []byte{1}, Approver: weave.Address("x")}).Validate()
	assert.FieldError(t, err, "EscrowId", errors.ErrInput)
	assert.FieldError(t, err, "Approver", errors.ErrInput)
}

func TestCreateMsgSerialization(t *testing.T) {
	msg := &CreateMsg{
		Payer:             weavetest.NewCondition().Address(),
		Payee:             weavetest.NewCondition().Address(),
		Arbiter:           weavetest.NewCondition().Address(),
		Amount:            coin.NewCoinp(3, 14, "IOV"),
		ReleaseAfter:      now,
		RequiredApprovals: 2,
	}
	raw, err := msg.Marshal()
	assert.Nil(t, err)
	var got CreateMsg
	assert.Nil(t, got.Unmarshal(raw))
	assert.Equal(t, msg, &got)
}
