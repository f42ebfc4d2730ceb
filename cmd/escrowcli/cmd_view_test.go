package main

import (
	"bytes"
	"testing"

	escrowd "github.com/iov-one/weave-escrow/cmd/escrowd/app"
	"github.com/iov-one/weave-escrow/coin"
	"github.com/iov-one/weave-escrow/x/cash"
)

func TestCmdTransactionViewHappyPath(t *testing.T) {
	tx := &escrowd.Tx{
		SendMsg: &cash.SendMsg{
			Amount: coin.NewCoinp(3, 0, "IOV"),
			Memo:   "a memo",
			Ref:    []byte("123"),
		},
	}
	var input bytes.Buffer
	if _, err := writeTx(&input, tx); err != nil {
		t.Fatalf("cannot marshal transaction: %s", err)
	}

	var output bytes.Buffer
	if err := cmdTransactionView(&input, &output, nil); err != nil {
		t.Fatalf("cannot view a transaction: %s", err)
	}

	const want = `{
	"send_msg": {
		"amount": {
			"whole": 3,
			"ticker": "IOV"
		},
		"memo": "a memo",
		"ref": "MTIz"
	}
}`
	got := output.String()
	if want != got {
		t.Logf("want: %s", want)
		t.Logf(" got: %s", got)
		t.Fatal("unexpected view result")
	}
}

func TestCmdTransactionViewNoInput(t *testing.T) {
	var output bytes.Buffer
	if err := cmdTransactionView(&bytes.Buffer{}, &output, nil); err == nil {
		t.Fatal("empty input accepted")
	}
}
