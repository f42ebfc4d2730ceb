package escrow

import (
	"context"
	"fmt"

	weave "github.com/iov-one/weave-escrow"
	"github.com/iov-one/weave-escrow/errors"
	"github.com/iov-one/weave-escrow/orm"
	"github.com/iov-one/weave-escrow/x"
	"github.com/iov-one/weave-escrow/x/cash"
)

// Ledger owns all escrows. It assigns identifiers, counts the votes and
// moves the funds when an escrow reaches a final state.
type Ledger struct {
	bucket orm.ModelBucket
	seq    orm.Sequence
	auth   x.Authenticator
	bank   cash.CoinMover
	clock  Clock
}

// NewLedger returns a ledger that keeps escrows in the escrow bucket.
func NewLedger(auth x.Authenticator, bank cash.CoinMover, clock Clock) *Ledger {
	bucket := NewBucket()
	return &Ledger{
		bucket: bucket,
		seq:    bucket.Sequence(orm.SeqID),
		auth:   auth,
		bank:   bank,
		clock:  clock,
	}
}

// Create stores a new pending escrow and moves the amount from the payer
// account to the escrow account. The payer must sign the request. The ID of
// the new escrow is returned.
func (l *Ledger) Create(ctx context.Context, db weave.KVStore, msg *CreateMsg) ([]byte, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	conf, err := loadConfiguration(db)
	if err != nil {
		return nil, err
	}
	if !conf.Accepts(msg.Amount.Ticker) {
		return nil, errors.Wrapf(errors.ErrCurrency, "%s is not accepted", msg.Amount.Ticker)
	}
	if !l.auth.HasAddress(ctx, msg.Payer) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "payer signature missing")
	}

	last, err := l.seq.CurVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read escrow sequence")
	}
	id := orm.EncodeSequence(last + 1)
	esc := &Escrow{
		Payer:             msg.Payer,
		Payee:             msg.Payee,
		Arbiter:           msg.Arbiter,
		Amount:            msg.Amount.Clone(),
		ReleaseAfter:      msg.ReleaseAfter,
		RequiredApprovals: msg.RequiredApprovals,
		Status:            StatusPending,
		Address:           Condition(id).Address(),
	}
	if err := esc.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid escrow")
	}

	// Funds are moved before anything is written so a failed deposit
	// leaves the store untouched.
	if err := l.bank.MoveCoins(db, esc.Payer, esc.Address, *esc.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot deposit")
	}
	if _, err := l.seq.NextVal(db); err != nil {
		return nil, errors.Wrap(err, "cannot acquire id")
	}
	if err := l.bucket.Put(db, id, esc); err != nil {
		return nil, errors.Wrap(err, "cannot store escrow")
	}

	weave.GetLogger(ctx).Info("escrow created",
		"id", fmt.Sprintf("%X", id),
		"amount", esc.Amount.String())
	return id, nil
}

// ApproveRelease records the vote of the approver to pay the amount to the
// payee. When the quorum is reached the amount is paid out, which is only
// possible once the release time has passed. The status of the escrow after
// the vote is returned.
func (l *Ledger) ApproveRelease(ctx context.Context, db weave.KVStore, id []byte, approver weave.Address) (Status, error) {
	return l.approve(ctx, db, id, approver, releaseTrack)
}

// ApproveRefund records the vote of the approver to return the amount to
// the payer. When the quorum is reached the amount is paid back.
func (l *Ledger) ApproveRefund(ctx context.Context, db weave.KVStore, id []byte, approver weave.Address) (Status, error) {
	return l.approve(ctx, db, id, approver, refundTrack)
}

type track int

const (
	releaseTrack track = iota
	refundTrack
)

func (t track) String() string {
	if t == releaseTrack {
		return "release"
	}
	return "refund"
}

func (l *Ledger) approve(ctx context.Context, db weave.KVStore, id []byte, approver weave.Address, t track) (Status, error) {
	if len(approver) == 0 || !l.auth.HasAddress(ctx, approver) {
		return StatusInvalid, errors.Wrap(errors.ErrUnauthorized, "approver signature missing")
	}
	esc, err := l.Get(db, id)
	if err != nil {
		return StatusInvalid, err
	}
	if esc.Status.IsTerminal() {
		return esc.Status, errors.Wrapf(ErrNotPending, "escrow is %s", esc.Status)
	}
	if !esc.IsParty(approver) {
		return esc.Status, errors.Wrapf(ErrNotParty, "%s", approver)
	}

	votes := &esc.RefundApprovers
	if t == releaseTrack {
		votes = &esc.ReleaseApprovers
	}
	if hasVoted(*votes, approver) {
		return esc.Status, errors.Wrapf(ErrDuplicateApproval, "%s already approved the %s", approver, t)
	}
	*votes = append(*votes, approver.Clone())

	if len(*votes) >= int(esc.RequiredApprovals) {
		if err := l.settle(ctx, db, esc, t); err != nil {
			return StatusPending, err
		}
	}
	if err := l.bucket.Put(db, id, esc); err != nil {
		return StatusInvalid, errors.Wrap(err, "cannot store escrow")
	}

	weave.GetLogger(ctx).Debug("escrow vote",
		"id", fmt.Sprintf("%X", id),
		"track", t.String(),
		"approver", approver.String())
	return esc.Status, nil
}

// settle moves the funds out of the escrow account once a track reached the
// quorum. A release before the release time fails and nothing must be
// saved.
func (l *Ledger) settle(ctx context.Context, db weave.KVStore, esc *Escrow, t track) error {
	dest := esc.Payer
	status := StatusRefunded
	if t == releaseTrack {
		now, err := l.clock.Now(ctx)
		if err != nil {
			return errors.Wrap(err, "clock")
		}
		if now < esc.ReleaseAfter {
			return errors.Wrapf(ErrTimeNotReached, "release after %s", esc.ReleaseAfter)
		}
		dest = esc.Payee
		status = StatusReleased
	}
	if err := l.bank.MoveCoins(db, esc.Address, dest, *esc.Amount); err != nil {
		return errors.Wrap(err, "cannot pay out")
	}
	esc.Status = status
	weave.GetLogger(ctx).Info("escrow "+status.String(),
		"escrow", esc.Address.String(),
		"to", dest.String())
	return nil
}

// Get returns the escrow with the given ID.
func (l *Ledger) Get(db weave.ReadOnlyKVStore, id []byte) (*Escrow, error) {
	var esc Escrow
	if err := l.bucket.One(db, id, &esc); err != nil {
		return nil, errors.Wrapf(err, "escrow %X", id)
	}
	return &esc, nil
}

// Count returns the number of escrows ever created.
func (l *Ledger) Count(db weave.ReadOnlyKVStore) (uint64, error) {
	n, err := l.seq.CurVal(db)
	if err != nil {
		return 0, errors.Wrap(err, "cannot read escrow sequence")
	}
	return n, nil
}
