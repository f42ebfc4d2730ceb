package escrow

import (
	"context"

	weave "github.com/iov-one/weave-escrow"
	"github.com/iov-one/weave-escrow/errors"
	"github.com/iov-one/weave-escrow/gconf"
	"github.com/iov-one/weave-escrow/x"
	"github.com/iov-one/weave-escrow/x/cash"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	tagEscrowID     = "escrow.id"
	tagEscrowStatus = "escrow.status"
)

// RegisterRoutes registers all handlers of this package. Release votes are
// checked against the time provided by the clock.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, bank cash.CoinMover, clock Clock) {
	ledger := NewLedger(auth, bank, clock)
	r.Handle(CreateMsg{}.Path(), CreateEscrowHandler{auth: auth, ledger: ledger})
	r.Handle(ReleaseMsg{}.Path(), ApproveHandler{auth: auth, ledger: ledger, track: releaseTrack})
	r.Handle(RefundMsg{}.Path(), ApproveHandler{auth: auth, ledger: ledger, track: refundTrack})
	r.Handle(UpdateConfigurationMsg{}.Path(), gconf.NewUpdateConfigurationHandler(
		packageName,
		func() gconf.OwnedConfig { return &Configuration{} },
		auth,
	))
}

// RegisterQuery registers the escrow bucket as "/escrows". Escrows can be
// queried by ID or by any party, for example "/escrows/payer".
func RegisterQuery(qr weave.QueryRouter) {
	NewBucket().Register("escrows", qr)
}

// CreateEscrowHandler locks the funds of the payer in a new escrow.
type CreateEscrowHandler struct {
	auth   x.Authenticator
	ledger *Ledger
}

var _ weave.Handler = CreateEscrowHandler{}

// Check verifies the message is well formed and signed by the payer.
func (h CreateEscrowHandler) Check(ctx context.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: createEscrowCost}, nil
}

// Deliver creates the escrow. The escrow ID is returned as the result data.
func (h CreateEscrowHandler) Deliver(ctx context.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	id, err := h.ledger.Create(ctx, db, msg)
	if err != nil {
		return nil, err
	}
	return &weave.DeliverResult{
		Data: id,
		Tags: tags(id, StatusPending),
	}, nil
}

func (h CreateEscrowHandler) validate(ctx context.Context, tx weave.Tx) (*CreateMsg, error) {
	var msg CreateMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Payer) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "payer signature missing")
	}
	return &msg, nil
}

// ApproveHandler records a release or a refund vote.
type ApproveHandler struct {
	auth   x.Authenticator
	ledger *Ledger
	track  track
}

var _ weave.Handler = ApproveHandler{}

// Check verifies the message is well formed and signed by the approver.
// The state of the escrow is verified only when delivered.
func (h ApproveHandler) Check(ctx context.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	cost := releaseEscrowCost
	if h.track == refundTrack {
		cost = refundEscrowCost
	}
	return &weave.CheckResult{GasAllocated: cost}, nil
}

// Deliver counts the vote and returns the new escrow status as tags.
func (h ApproveHandler) Deliver(ctx context.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	id, approver, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	var status Status
	if h.track == releaseTrack {
		status, err = h.ledger.ApproveRelease(ctx, db, id, approver)
	} else {
		status, err = h.ledger.ApproveRefund(ctx, db, id, approver)
	}
	if err != nil {
		return nil, err
	}
	return &weave.DeliverResult{
		Data: id,
		Log:  status.String(),
		Tags: tags(id, status),
	}, nil
}

// validate returns the escrow ID and the approver. The main signer is the
// approver unless the message names one.
func (h ApproveHandler) validate(ctx context.Context, tx weave.Tx) ([]byte, weave.Address, error) {
	var (
		id       []byte
		approver weave.Address
	)
	if h.track == releaseTrack {
		var msg ReleaseMsg
		if err := weave.LoadMsg(tx, &msg); err != nil {
			return nil, nil, errors.Wrap(err, "load msg")
		}
		id, approver = msg.EscrowId, msg.Approver
	} else {
		var msg RefundMsg
		if err := weave.LoadMsg(tx, &msg); err != nil {
			return nil, nil, errors.Wrap(err, "load msg")
		}
		id, approver = msg.EscrowId, msg.Approver
	}

	if approver == nil {
		signer := x.MainSigner(ctx, h.auth)
		if signer == nil {
			return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
		}
		approver = signer.Address()
	}
	if !h.auth.HasAddress(ctx, approver) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "approver signature missing")
	}
	return id, approver, nil
}

func tags(id []byte, s Status) []common.KVPair {
	return []common.KVPair{
		{Key: []byte(tagEscrowID), Value: id},
		{Key: []byte(tagEscrowStatus), Value: []byte(s.String())},
	}
}
