package main

import (
	"flag"
	"fmt"
	"io"

	escrowd "github.com/iov-one/weave-escrow/cmd/escrowd/app"
	"github.com/iov-one/weave-escrow/x/escrow"
)

func cmdCreateEscrow(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for locking funds of the payer in a new escrow. The funds
are paid to the payee or returned to the payer once the required number of
parties approves it.
`)
		fl.PrintDefaults()
	}
	var (
		payerFl     = flAddress(fl, "payer", "", "Address of the account that funds the escrow. It must sign the transaction.")
		payeeFl     = flAddress(fl, "payee", "", "Address of the account that receives the funds on release.")
		arbiterFl   = flAddress(fl, "arbiter", "", "Address of the third party that can break a deadlock.")
		amountFl    = flCoin(fl, "amount", "", "Amount that is locked in the escrow, for example \"10 IOV\".")
		releaseFl   = flTime(fl, "release-after", "0", "Release is not possible before this time. Unix timestamp or RFC3339 date.")
		approvalsFl = fl.Uint("approvals", 2, "Number of distinct parties that must approve the release or the refund, between 1 and 3.")
	)
	fl.Parse(args)

	tx := &escrowd.Tx{
		CreateEscrowMsg: &escrow.CreateMsg{
			Payer:             *payerFl,
			Payee:             *payeeFl,
			Arbiter:           *arbiterFl,
			Amount:            amountFl,
			ReleaseAfter:      *releaseFl,
			RequiredApprovals: uint32(*approvalsFl),
		},
	}
	if err := tx.CreateEscrowMsg.Validate(); err != nil {
		return fmt.Errorf("invalid escrow: %s", err)
	}
	_, err := writeTx(output, tx)
	return err
}

func cmdApproveRelease(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction approving the release of the escrow funds to the payee.
`)
		fl.PrintDefaults()
	}
	var (
		escrowFl   = flSeq(fl, "escrow", "", "ID of the escrow, a number or hex encoded.")
		approverFl = flAddress(fl, "approver", "", "Optional address of the approving party. The main signer is used if not provided.")
	)
	fl.Parse(args)

	msg := &escrow.ReleaseMsg{EscrowId: *escrowFl, Approver: *approverFl}
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("invalid approval: %s", err)
	}
	_, err := writeTx(output, &escrowd.Tx{ReleaseEscrowMsg: msg})
	return err
}

func cmdApproveRefund(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction approving the refund of the escrow funds to the payer.
`)
		fl.PrintDefaults()
	}
	var (
		escrowFl   = flSeq(fl, "escrow", "", "ID of the escrow, a number or hex encoded.")
		approverFl = flAddress(fl, "approver", "", "Optional address of the approving party. The main signer is used if not provided.")
	)
	fl.Parse(args)

	msg := &escrow.RefundMsg{EscrowId: *escrowFl, Approver: *approverFl}
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("invalid approval: %s", err)
	}
	_, err := writeTx(output, &escrowd.Tx{RefundEscrowMsg: msg})
	return err
}
