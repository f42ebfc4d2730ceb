package utils

import (
	"bytes"
	"context"
	"strings"
	"testing"

	weave "github.com/iov-one/weave-escrow"
	"github.com/iov-one/weave-escrow/errors"
	"github.com/iov-one/weave-escrow/store"
	"github.com/iov-one/weave-escrow/weavetest"
	"github.com/tendermint/tendermint/libs/log"
)

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewTMLogger(log.NewSyncWriter(&buf))
	ctx := weave.WithLogger(context.Background(), logger)
	db := store.MemStore()
	tx := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "escrow/create"}}

	ok := weavetest.Decorate(&weavetest.Handler{
		DeliverResult: weave.DeliverResult{Log: "all good"},
	}, NewLogging())
	if _, err := ok.Deliver(ctx, db, tx); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	out := buf.String()
	if !strings.Contains(out, "all good") || !strings.Contains(out, "path=escrow/create") {
		t.Fatalf("unexpected log: %s", out)
	}

	buf.Reset()
	failing := weavetest.Decorate(&weavetest.Handler{
		DeliverErr: errors.Wrap(errors.ErrNotFound, "no escrow"),
	}, NewLogging())
	if _, err := failing.Deliver(ctx, db, tx); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected error: %v", err)
	}
	if out := buf.String(); !strings.Contains(out, "no escrow") {
		t.Fatalf("error not logged: %s", out)
	}
}
