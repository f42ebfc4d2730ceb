package main

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	escrowd "github.com/iov-one/weave-escrow/cmd/escrowd/app"
	"github.com/iov-one/weave-escrow/errors"
	"github.com/spf13/cobra"
)

func initCmd(home *string) *cobra.Command {
	return &cobra.Command{
		Use:   "init [ticker] [address]",
		Short: "Initialize app options in genesis file",
		Long: `Write the application state into the tendermint genesis file found in
the home directory. The genesis file must already exist, create it with
"tendermint init" first.

The state funds a single account with the given ticker (IOV by default). If
no address is given a new key is generated and printed.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := escrowd.GenInitOptions(args)
			if err != nil {
				return err
			}
			return addGenesisOptions(genesisPath(*home), state)
		},
	}
}

// genesisPath follows the tendermint directory layout.
func genesisPath(home string) string {
	return filepath.Join(home, "config", "genesis.json")
}

// genesisDoc involves some tendermint specific structures we don't want to
// parse, so we just grab it into a raw object format, so we can add one
// line.
type genesisDoc map[string]json.RawMessage

func addGenesisOptions(filename string, state json.RawMessage) error {
	raw, err := ioutil.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(errors.ErrNotFound, "genesis file %s, run tendermint init first", filename)
		}
		return errors.Wrap(err, "cannot read genesis file")
	}

	var doc genesisDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	doc["app_state"] = state

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "cannot serialize genesis")
	}
	return ioutil.WriteFile(filename, out, 0600)
}
