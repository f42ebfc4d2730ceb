package escrow

import (
	weave "github.com/iov-one/weave-escrow"
	"github.com/iov-one/weave-escrow/gconf"
)

// Initializer loads the escrow configuration from the genesis file.
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis stores gconf["escrow"] if present. Without a configuration
// escrows in any currency are accepted and the configuration cannot be
// updated.
func (*Initializer) FromGenesis(opts weave.Options, db weave.KVStore) error {
	return gconf.InitConfig(db, opts, packageName, &Configuration{})
}
