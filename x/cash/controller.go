package cash

import (
	weave "github.com/iov-one/weave-escrow"
	"github.com/iov-one/weave-escrow/coin"
	"github.com/iov-one/weave-escrow/errors"
	"github.com/iov-one/weave-escrow/orm"
)

// CoinMover moves funds between two addresses.
type CoinMover interface {
	MoveCoins(db weave.KVStore, src, dest weave.Address, amount coin.Coin) error
}

// Controller gives access to the balances of all accounts.
type Controller interface {
	CoinMover

	// Balance returns the coins held by the address. ErrNotFound is
	// returned for an address that never held any funds.
	Balance(db weave.ReadOnlyKVStore, addr weave.Address) (coin.Coins, error)

	// CoinMint adds the amount to the destination wallet.
	CoinMint(db weave.KVStore, dest weave.Address, amount coin.Coin) error
}

// BaseController is the wallet bucket backed Controller.
type BaseController struct {
	wallets orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a controller operating on the wallet bucket.
func NewController() BaseController {
	return BaseController{wallets: NewWalletBucket()}
}

func (c BaseController) Balance(db weave.ReadOnlyKVStore, addr weave.Address) (coin.Coins, error) {
	var set Set
	if err := c.wallets.One(db, addr, &set); err != nil {
		return nil, errors.Wrapf(err, "wallet %s", addr)
	}
	return coin.Coins(set.Coins), nil
}

// MoveCoins moves the given amount from src to dest. It fails if src does
// not exist, does not hold enough funds or if the dest balance would
// overflow. On failure neither wallet is modified.
func (c BaseController) MoveCoins(db weave.KVStore, src, dest weave.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "cannot move %s", amount)
	}

	have, err := c.Balance(db, src)
	if err != nil {
		if errors.ErrNotFound.Is(err) {
			return errors.Wrapf(errors.ErrEmpty, "empty account %s", src)
		}
		return err
	}
	if !have.Contains(amount) {
		return errors.Wrapf(errors.ErrInsufficientAmount, "%s holds %s", src, have.Get(amount.Ticker))
	}
	if src.Equals(dest) {
		return nil
	}
	left, err := have.Subtract(amount)
	if err != nil {
		return err
	}

	// Both wallets are computed before anything is written.
	destHave, err := c.Balance(db, dest)
	if err != nil && !errors.ErrNotFound.Is(err) {
		return err
	}
	total, err := destHave.Add(amount)
	if err != nil {
		return err
	}

	if err := c.save(db, src, left); err != nil {
		return err
	}
	return c.save(db, dest, total)
}

// CoinMint adds the amount to the destination wallet, creating it if needed.
// It fails if the balance would overflow.
func (c BaseController) CoinMint(db weave.KVStore, dest weave.Address, amount coin.Coin) error {
	have, err := c.Balance(db, dest)
	if err != nil && !errors.ErrNotFound.Is(err) {
		return err
	}
	total, err := have.Add(amount)
	if err != nil {
		return err
	}
	return c.save(db, dest, total)
}

func (c BaseController) save(db weave.KVStore, addr weave.Address, coins coin.Coins) error {
	if !coins.IsEmpty() {
		return c.wallets.Put(db, addr, &Set{Coins: coins})
	}
	err := c.wallets.Delete(db, addr)
	if errors.ErrNotFound.Is(err) {
		return nil
	}
	return err
}
