package escrowd

import (
	"testing"

	"github.com/iov-one/weave-escrow/errors"
	"github.com/iov-one/weave-escrow/store"
	"github.com/iov-one/weave-escrow/weavetest"
	"github.com/iov-one/weave-escrow/weavetest/assert"
	"github.com/iov-one/weave-escrow/x/cash"
	"github.com/iov-one/weave-escrow/x/escrow"
	"github.com/iov-one/weave-escrow/x/sigs"
)

func TestTxGetMsg(t *testing.T) {
	release := &escrow.ReleaseMsg{EscrowId: weavetest.SequenceID(4)}
	cases := map[string]struct {
		tx      Tx
		wantMsg interface{}
		wantErr *errors.Error
	}{
		"single message": {
			tx:      Tx{ReleaseEscrowMsg: release},
			wantMsg: release,
		},
		"no message": {
			tx:      Tx{},
			wantErr: errors.ErrMsg,
		},
		"two messages": {
			tx: Tx{
				ReleaseEscrowMsg: release,
				SendMsg:          &cash.SendMsg{},
			},
			wantErr: errors.ErrMsg,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			msg, err := tc.tx.GetMsg()
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr == nil {
				assert.Equal(t, tc.wantMsg, msg)
			}
		})
	}
}

func TestTxDecoder(t *testing.T) {
	tx := &Tx{
		RefundEscrowMsg: &escrow.RefundMsg{
			EscrowId: weavetest.SequenceID(2),
			Approver: weavetest.NewCondition().Address(),
		},
	}
	raw, err := tx.Marshal()
	assert.Nil(t, err)

	decoded, err := TxDecoder(raw)
	assert.Nil(t, err)
	msg, err := decoded.GetMsg()
	assert.Nil(t, err)
	assert.Equal(t, tx.RefundEscrowMsg, msg)

	_, err = TxDecoder([]byte{0xff, 0xff})
	assert.IsErr(t, errors.ErrInput, err)
}

func TestSignBytesIgnoreSignatures(t *testing.T) {
	key := weavetest.NewKey()
	tx := &Tx{
		CreateEscrowMsg: &escrow.CreateMsg{
			Payer:             key.PublicKey().Address(),
			RequiredApprovals: 1,
		},
	}
	unsigned, err := tx.GetSignBytes()
	assert.Nil(t, err)

	sig, err := sigs.SignTx(key, tx, "test-chain-1", 0)
	assert.Nil(t, err)
	tx.Signatures = append(tx.Signatures, sig)

	signed, err := tx.GetSignBytes()
	assert.Nil(t, err)
	assert.Equal(t, unsigned, signed)
	if len(tx.Signatures) != 1 {
		t.Fatal("signatures must be restored")
	}

	conds, err := sigs.VerifyTxSignatures(store.MemStore(), tx, "test-chain-1")
	assert.Nil(t, err)
	assert.Equal(t, 1, len(conds))
}
