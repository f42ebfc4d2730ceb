package orm

import (
	"github.com/iov-one/weave-escrow/errors"
)

// ErrInvalidIndex is returned when a bucket is queried by an index it does
// not declare.
var ErrInvalidIndex = errors.Register(100, "invalid index")
