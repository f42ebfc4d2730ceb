package escrow

import (
	"context"

	weave "github.com/iov-one/weave-escrow"
	"github.com/iov-one/weave-escrow/errors"
)

// Clock provides the current time for the release time gate.
type Clock interface {
	Now(context.Context) (weave.UnixTime, error)
}

// BlockClock reads the time of the block being processed from the context.
type BlockClock struct{}

var _ Clock = BlockClock{}

func (BlockClock) Now(ctx context.Context) (weave.UnixTime, error) {
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return 0, errors.Wrap(errors.ErrHuman, err.Error())
	}
	return weave.AsUnixTime(now), nil
}
