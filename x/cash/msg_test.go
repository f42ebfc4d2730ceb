package cash

import (
	"strings"
	"testing"

	"github.com/iov-one/weave-escrow/coin"
	"github.com/iov-one/weave-escrow/errors"
	"github.com/iov-one/weave-escrow/weavetest"
	"github.com/iov-one/weave-escrow/weavetest/assert"
)

func TestSendMsgValidate(t *testing.T) {
	src := weavetest.NewCondition().Address()
	dest := weavetest.NewCondition().Address()

	cases := map[string]struct {
		msg       SendMsg
		wantField string
		wantErr   *errors.Error
	}{
		"valid": {
			msg: SendMsg{Src: src, Dest: dest, Amount: coin.NewCoinp(1, 0, "IOV"), Memo: "rent"},
		},
		"missing amount": {
			msg:       SendMsg{Src: src, Dest: dest},
			wantField: "Amount",
			wantErr:   errors.ErrAmount,
		},
		"negative amount": {
			msg:       SendMsg{Src: src, Dest: dest, Amount: coin.NewCoinp(-1, 0, "IOV")},
			wantField: "Amount",
			wantErr:   errors.ErrAmount,
		},
		"invalid ticker": {
			msg:       SendMsg{Src: src, Dest: dest, Amount: coin.NewCoinp(1, 0, "io")},
			wantField: "Amount",
			wantErr:   errors.ErrCurrency,
		},
		"missing source": {
			msg:       SendMsg{Dest: dest, Amount: coin.NewCoinp(1, 0, "IOV")},
			wantField: "Src",
			wantErr:   errors.ErrEmpty,
		},
		"short destination": {
			msg:       SendMsg{Src: src, Dest: dest[:5], Amount: coin.NewCoinp(1, 0, "IOV")},
			wantField: "Dest",
			wantErr:   errors.ErrInput,
		},
		"memo too long": {
			msg:       SendMsg{Src: src, Dest: dest, Amount: coin.NewCoinp(1, 0, "IOV"), Memo: strings.Repeat("x", 129)},
			wantField: "Memo",
			wantErr:   errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
				return
			}
			assert.FieldError(t, err, tc.wantField, tc.wantErr)
		})
	}
}
