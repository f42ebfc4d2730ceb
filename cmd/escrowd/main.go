package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagHome     = "home"
	flagLogLevel = "log-level"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

// rootCmd builds the command tree. The home directory and the logger are
// shared by all sub commands.
func rootCmd() *cobra.Command {
	var (
		home     string
		logLevel string
	)
	root := &cobra.Command{
		Use:          "escrowd",
		Short:        "Escrow ledger ABCI application",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&home, flagHome,
		env("ESCROWD_HOME", filepath.Join(os.ExpandEnv("$HOME"), ".escrowd")),
		"directory to store files under. You can use ESCROWD_HOME environment variable to set it.")
	root.PersistentFlags().StringVar(&logLevel, flagLogLevel, "info",
		"minimal level of logged messages: debug, info, error or none")

	logger := func() (log.Logger, error) {
		return newLogger(logLevel)
	}
	root.AddCommand(
		initCmd(&home),
		startCmd(&home, logger),
		versionCmd(),
	)
	return root
}

func newLogger(level string) (log.Logger, error) {
	allowed, err := log.AllowLevel(level)
	if err != nil {
		return nil, err
	}
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout))
	return log.NewFilter(logger, allowed).With("module", "escrow"), nil
}

// env returns the value of an environment variable if provided (even if
// empty) or a fallback value.
func env(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}
