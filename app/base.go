package app

import (
	weave "github.com/iov-one/weave-escrow"
	"github.com/iov-one/weave-escrow/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// BaseApp adds DeliverTx and CheckTx handlers to the storage and query
// functionality of StoreApp.
type BaseApp struct {
	*StoreApp
	decoder weave.TxDecoder
	handler weave.Handler
	debug   bool
}

var _ abci.Application = BaseApp{}

// NewBaseApp constructs a basic abci application.
func NewBaseApp(
	store *StoreApp,
	decoder weave.TxDecoder,
	handler weave.Handler,
	debug bool,
) BaseApp {
	return BaseApp{
		StoreApp: store.WithDebug(debug),
		decoder:  decoder,
		handler:  handler,
		debug:    debug,
	}
}

// DeliverTx dispatches the transaction to the handler.
func (b BaseApp) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		countTx("deliver", "(invalid)", err)
		return weave.DeliverTxError(err, b.debug)
	}

	path := weave.GetPath(tx)
	ctx := weave.WithLogInfo(b.BlockContext(),
		"call", "deliver_tx",
		"path", path)

	res, err := b.handler.Deliver(ctx, b.DeliverStore(), tx)
	countTx("deliver", path, err)
	return weave.DeliverOrError(res, err, b.debug)
}

// CheckTx dispatches the transaction to the handler.
func (b BaseApp) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		countTx("check", "(invalid)", err)
		return weave.CheckTxError(err, b.debug)
	}

	path := weave.GetPath(tx)
	ctx := weave.WithLogInfo(b.BlockContext(),
		"call", "check_tx",
		"path", path)

	res, err := b.handler.Check(ctx, b.CheckStore(), tx)
	countTx("check", path, err)
	return weave.CheckOrError(res, err, b.debug)
}

// loadTx calls the decoder, and capture any panics.
func (b BaseApp) loadTx(txBytes []byte) (tx weave.Tx, err error) {
	defer errors.Recover(&err)
	tx, err = b.decoder(txBytes)
	return
}
