package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	weave "github.com/iov-one/weave-escrow"
)

// commands is a register of all available commands that can be executed by
// this program. The name is used to match with the first argument given.
//
// A command function is given stdin, stdout and the command line arguments
// without the program name and the command name. It is the responsibility
// of the command function to parse the arguments using the flag package.
//
// Keep each command to a single functionality and combine them with a unix
// pipe. For example creating, signing and viewing a transaction:
//
//   $ escrowcli approve-release -escrow 1 \
//       | escrowcli sign -chain my-chain -seq 3 \
//       | escrowcli view
//
var commands = map[string]func(input io.Reader, output io.Writer, args []string) error{
	"approve-refund":  cmdApproveRefund,
	"approve-release": cmdApproveRelease,
	"create-escrow":   cmdCreateEscrow,
	"keyaddr":         cmdKeyaddr,
	"keygen":          cmdKeygen,
	"send-tokens":     cmdSendTokens,
	"sign":            cmdSignTransaction,
	"version":         cmdVersion,
	"view":            cmdTransactionView,
}

func main() {
	if len(os.Args) == 1 {
		fmt.Fprintf(os.Stderr, "%s is a command line client for the escrow ledger.\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [<flags>]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		fmt.Fprintf(os.Stderr, "Run '%s <command> -help' to learn more about each command.\n", os.Args[0])
		os.Exit(2)
	}
	run, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		os.Exit(2)
	}

	// Skip two first arguments. Second argument is the command name that
	// we just consumed.
	if err := run(os.Stdin, os.Stdout, os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func availableCmds() []string {
	available := make([]string, 0, len(commands))
	for name := range commands {
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

func cmdVersion(in io.Reader, out io.Writer, args []string) error {
	_, err := fmt.Fprintln(out, weave.Version())
	return err
}
