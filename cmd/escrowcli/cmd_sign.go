package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/weave-escrow/x/sigs"
)

func cmdSignTransaction(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Sign given transaction. This is decoding a transaction data from standard
input, adds a signature and writes back to standard output signed transaction
content.

Signing is done offline. The chain ID and the current sequence of the signer
must be provided.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = keyPathFlag(fl)
		chainFl   = fl.String("chain", env("ESCROWCLI_CHAIN_ID", ""),
			"ID of the chain the transaction is submitted to. You can use ESCROWCLI_CHAIN_ID environment variable to set it.")
		seqFl = fl.Int64("seq", 0, "Current sequence of the signer account.")
	)
	fl.Parse(args)

	key, err := decodePrivateKey(*keyPathFl)
	if err != nil {
		return fmt.Errorf("cannot load private key: %s", err)
	}

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction: %s", err)
	}

	sig, err := sigs.SignTx(key, tx, *chainFl, *seqFl)
	if err != nil {
		return fmt.Errorf("cannot sign transaction: %s", err)
	}
	tx.Signatures = append(tx.Signatures, sig)

	_, err = writeTx(output, tx)
	return err
}
