package utils

import (
	"context"

	weave "github.com/iov-one/weave-escrow"
)

// writeHandler writes the key-value pair and returns err.
type writeHandler struct {
	key, value []byte
	err        error
}

func (h writeHandler) Check(ctx context.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, h.err
}

func (h writeHandler) Deliver(ctx context.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, h.err
}

// panicHandler always panics.
type panicHandler struct {
	msg string
}

func (h panicHandler) Check(context.Context, weave.KVStore, weave.Tx) (*weave.CheckResult, error) {
	panic(h.msg)
}

func (h panicHandler) Deliver(context.Context, weave.KVStore, weave.Tx) (*weave.DeliverResult, error) {
	panic(h.msg)
}
