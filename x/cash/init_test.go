package cash

import (
	"encoding/json"
	"fmt"
	"testing"

	weave "github.com/iov-one/weave-escrow"
	"github.com/iov-one/weave-escrow/coin"
	"github.com/iov-one/weave-escrow/errors"
	"github.com/iov-one/weave-escrow/store"
	"github.com/iov-one/weave-escrow/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenesis(t *testing.T) {
	addr := weavetest.NewCondition().Address()

	cases := map[string]struct {
		genesis  string
		wantErr  *errors.Error
		wantHave coin.Coins
	}{
		"no accounts": {
			genesis: `{}`,
		},
		"funded account": {
			genesis: fmt.Sprintf(`{"cash": [{"address": "%s", "coins": ["10 IOV", {"whole": 2, "ticker": "ETH"}]}]}`, addr),
			wantHave: coin.Coins{
				coin.NewCoinp(2, 0, "ETH"),
				coin.NewCoinp(10, 0, "IOV"),
			},
		},
		"invalid address": {
			genesis: `{"cash": [{"address": "1234", "coins": ["10 IOV"]}]}`,
			wantErr: errors.ErrInput,
		},
		"invalid coin": {
			genesis: fmt.Sprintf(`{"cash": [{"address": "%s", "coins": [{"whole": 1, "ticker": "x"}]}]}`, addr),
			wantErr: errors.ErrCurrency,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts weave.Options
			require.NoError(t, json.Unmarshal([]byte(tc.genesis), &opts))

			db := store.MemStore()
			err := Initializer{}.FromGenesis(opts, db)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "got %+v", err)
				return
			}
			require.NoError(t, err)
			if tc.wantHave == nil {
				return
			}
			have, err := NewController().Balance(db, addr)
			require.NoError(t, err)
			assert.Equal(t, tc.wantHave, have)
		})
	}
}
