package escrow

import (
	weave "github.com/iov-one/weave-escrow"
	"github.com/iov-one/weave-escrow/coin"
	"github.com/iov-one/weave-escrow/errors"
	"github.com/iov-one/weave-escrow/gconf"
)

const packageName = "escrow"

var _ gconf.OwnedConfig = (*Configuration)(nil)

func (c *Configuration) Validate() error {
	var err error
	if len(c.Owner) != 0 {
		err = errors.AppendField(err, "Owner", c.Owner.Validate())
	}
	for i, t := range c.Tickers {
		if !coin.IsCC(t) {
			err = errors.Append(err, errors.Field("Tickers", errors.ErrCurrency, "ticker %d: %q", i, t))
		}
	}
	return err
}

func (c *Configuration) GetOwner() weave.Address {
	return c.Owner
}

// Accepts returns true if the ticker is allowed by this configuration.
func (c *Configuration) Accepts(ticker string) bool {
	if len(c.Tickers) == 0 {
		return true
	}
	for _, t := range c.Tickers {
		if t == ticker {
			return true
		}
	}
	return false
}

// loadConfiguration returns the stored configuration. When none is stored
// an empty configuration that accepts any currency is returned.
func loadConfiguration(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	switch err := gconf.Load(db, packageName, &conf); {
	case err == nil:
		return &conf, nil
	case errors.ErrNotFound.Is(err):
		return &Configuration{}, nil
	default:
		return nil, errors.Wrap(err, "load configuration")
	}
}
