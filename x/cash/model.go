package cash

import (
	"github.com/iov-one/weave-escrow/coin"
	"github.com/iov-one/weave-escrow/orm"
)

// BucketName is where the balances are stored.
const BucketName = "cash"

var _ orm.Model = (*Set)(nil)

// Validate requires that all coins are valid, sorted and non zero.
func (s *Set) Validate() error {
	return coin.Coins(s.Coins).Validate()
}

func (s *Set) Copy() orm.CloneableData {
	return &Set{Coins: coin.Coins(s.Coins).Clone()}
}

// NewWalletBucket returns the bucket of wallets, keyed by owner address.
func NewWalletBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Set{})
}
