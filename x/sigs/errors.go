package sigs

import (
	"github.com/iov-one/weave-escrow/errors"
)

// ErrInvalidSequence is returned when a signature carries an unexpected
// sequence value.
var ErrInvalidSequence = errors.Register(120, "invalid sequence number")
