package main

import (
	"bytes"
	"testing"

	weave "github.com/iov-one/weave-escrow"
	"github.com/iov-one/weave-escrow/coin"
	"github.com/iov-one/weave-escrow/weavetest"
	"github.com/iov-one/weave-escrow/weavetest/assert"
	"github.com/iov-one/weave-escrow/x/escrow"
)

func TestCmdCreateEscrowHappyPath(t *testing.T) {
	payer := weavetest.NewCondition().Address()
	payee := weavetest.NewCondition().Address()
	arbiter := weavetest.NewCondition().Address()

	var output bytes.Buffer
	args := []string{
		"-payer", payer.String(),
		"-payee", payee.String(),
		"-arbiter", arbiter.String(),
		"-amount", "49 DOGE",
		"-release-after", "2019-03-01T10:00:00Z",
		"-approvals", "3",
	}
	if err := cmdCreateEscrow(nil, &output, args); err != nil {
		t.Fatalf("cannot create a new escrow transaction: %s", err)
	}

	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot read created transaction: %s", err)
	}
	txmsg, err := tx.GetMsg()
	if err != nil {
		t.Fatalf("cannot get transaction message: %s", err)
	}
	msg := txmsg.(*escrow.CreateMsg)

	assert.Equal(t, payer, msg.Payer)
	assert.Equal(t, payee, msg.Payee)
	assert.Equal(t, arbiter, msg.Arbiter)
	assert.Equal(t, coin.NewCoinp(49, 0, "DOGE"), msg.Amount)
	assert.Equal(t, weave.UnixTime(1551434400), msg.ReleaseAfter)
	assert.Equal(t, uint32(3), msg.RequiredApprovals)
}

func TestCmdCreateEscrowInvalid(t *testing.T) {
	addr := weavetest.NewCondition().Address()

	var output bytes.Buffer
	args := []string{
		"-payer", addr.String(),
		"-payee", addr.String(),
		"-arbiter", weavetest.NewCondition().Address().String(),
		"-amount", "1 IOV",
	}
	if err := cmdCreateEscrow(nil, &output, args); err == nil {
		t.Fatal("escrow with the same payer and payee created")
	}
	if output.Len() != 0 {
		t.Fatal("nothing must be written on error")
	}
}

func TestCmdApproveHappyPath(t *testing.T) {
	approver := weavetest.NewCondition().Address()

	var output bytes.Buffer
	args := []string{"-escrow", "7", "-approver", approver.String()}
	if err := cmdApproveRelease(nil, &output, args); err != nil {
		t.Fatalf("cannot create a release approval: %s", err)
	}
	args = []string{"-escrow", "0000000000000007"}
	if err := cmdApproveRefund(nil, &output, args); err != nil {
		t.Fatalf("cannot create a refund approval: %s", err)
	}

	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot read release transaction: %s", err)
	}
	assert.Equal(t, weavetest.SequenceID(7), tx.ReleaseEscrowMsg.EscrowId)
	assert.Equal(t, approver, tx.ReleaseEscrowMsg.Approver)

	tx, _, err = readTx(&output)
	if err != nil {
		t.Fatalf("cannot read refund transaction: %s", err)
	}
	assert.Equal(t, weavetest.SequenceID(7), tx.RefundEscrowMsg.EscrowId)
	if tx.RefundEscrowMsg.Approver != nil {
		t.Fatalf("unexpected approver: %s", tx.RefundEscrowMsg.Approver)
	}
}
