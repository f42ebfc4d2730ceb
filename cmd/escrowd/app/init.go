package escrowd

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	weave "github.com/iov-one/weave-escrow"
	"github.com/iov-one/weave-escrow/coin"
	"github.com/iov-one/weave-escrow/crypto"
	"github.com/iov-one/weave-escrow/errors"
	"github.com/iov-one/weave-escrow/x/cash"
	"github.com/iov-one/weave-escrow/x/escrow"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// DefaultTicker is the currency of the funded genesis account.
const DefaultTicker = "IOV"

// GenInitOptions produces the app state of a genesis with one rich account
// owning the escrow configuration, to use for dev mode.
//
// Optional arguments are the ticker and the address of the account. When
// no address is given a new key is generated and printed.
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := DefaultTicker
	if len(args) > 0 {
		ticker = args[0]
		if !coin.IsCC(ticker) {
			return nil, errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", ticker)
		}
	}

	var addr weave.Address
	if len(args) > 1 {
		var err error
		if addr, err = weave.ParseAddress(args[1]); err != nil {
			return nil, errors.Wrap(err, "address")
		}
	} else {
		// if no address provided, auto-generate one
		// and print out the keys
		generated, keys, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = generated
		fmt.Println(keys)
	}

	type dict map[string]interface{}
	return json.Marshal(dict{
		"cash": []cash.GenesisAccount{
			{
				Address: addr,
				Coins:   []coin.Coin{coin.NewCoin(123456789, 0, ticker)},
			},
		},
		"gconf": dict{
			"escrow": escrow.Configuration{
				Owner:   addr,
				Tickers: []string{ticker},
			},
		},
	})
}

// GenerateApp is used to create the application for the start command.
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "escrow.db")
	}

	application, err := Application("escrowd", Stack(), TxDecoder, dbPath, debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(Initializer())
	application.WithLogger(logger)
	return application, nil
}

type output struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a new public key, along with a
// json representation of the keys.
func GenerateCoinKey() (weave.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()

	keys, err := json.MarshalIndent(output{Pubkey: pubKey, Secret: privKey}, "", "  ")
	if err != nil {
		return nil, "", errors.Wrap(err, "cannot serialize keys")
	}
	return pubKey.Address(), string(keys), nil
}
