package escrow

import (
	"context"
	"testing"

	weave "github.com/iov-one/weave-escrow"
	"github.com/iov-one/weave-escrow/coin"
	"github.com/iov-one/weave-escrow/errors"
	"github.com/iov-one/weave-escrow/gconf"
	"github.com/iov-one/weave-escrow/store"
	"github.com/iov-one/weave-escrow/weavetest"
	"github.com/iov-one/weave-escrow/weavetest/assert"
	"github.com/iov-one/weave-escrow/x/cash"
)

const now weave.UnixTime = 1550000000

type testClock struct {
	now weave.UnixTime
}

func (c *testClock) Now(context.Context) (weave.UnixTime, error) {
	return c.now, nil
}

type fixture struct {
	db     weave.KVStore
	auth   *weavetest.CtxAuth
	clock  *testClock
	ledger *Ledger

	payer   weave.Condition
	payee   weave.Condition
	arbiter weave.Condition
}

func newFixture(t testing.TB) *fixture {
	t.Helper()
	f := &fixture{
		db:      store.MemStore(),
		auth:    &weavetest.CtxAuth{Key: "auth"},
		clock:   &testClock{now: now},
		payer:   weavetest.NewCondition(),
		payee:   weavetest.NewCondition(),
		arbiter: weavetest.NewCondition(),
	}
	bank := cash.NewController()
	f.ledger = NewLedger(f.auth, bank, f.clock)
	assert.Nil(t, bank.CoinMint(f.db, f.payer.Address(), coin.NewCoin(5000, 0, "IOV")))
	return f
}

// signed returns a context authenticated by the given conditions.
func (f *fixture) signed(conds ...weave.Condition) context.Context {
	return f.auth.SetConditions(context.Background(), conds...)
}

func (f *fixture) createMsg(amount int64, releaseAfter weave.UnixTime, approvals uint32) *CreateMsg {
	return &CreateMsg{
		Payer:             f.payer.Address(),
		Payee:             f.payee.Address(),
		Arbiter:           f.arbiter.Address(),
		Amount:            coin.NewCoinp(amount, 0, "IOV"),
		ReleaseAfter:      releaseAfter,
		RequiredApprovals: approvals,
	}
}

func (f *fixture) create(t testing.TB, amount int64, releaseAfter weave.UnixTime, approvals uint32) []byte {
	t.Helper()
	id, err := f.ledger.Create(f.signed(f.payer), f.db, f.createMsg(amount, releaseAfter, approvals))
	assert.Nil(t, err)
	return id
}

func (f *fixture) release(approver weave.Condition, id []byte) (Status, error) {
	return f.ledger.ApproveRelease(f.signed(approver), f.db, id, approver.Address())
}

func (f *fixture) refund(approver weave.Condition, id []byte) (Status, error) {
	return f.ledger.ApproveRefund(f.signed(approver), f.db, id, approver.Address())
}

func (f *fixture) count(t testing.TB) uint64 {
	t.Helper()
	n, err := f.ledger.Count(f.db)
	assert.Nil(t, err)
	return n
}

// balance returns the whole IOV tokens held by the address.
func balance(t testing.TB, db weave.ReadOnlyKVStore, a weave.Address) int64 {
	t.Helper()
	coins, err := cash.NewController().Balance(db, a)
	if errors.ErrNotFound.Is(err) {
		return 0
	}
	assert.Nil(t, err)
	return coins.Get("IOV").Whole
}

func TestImmediateRelease(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, 1000, now, 1)
	assert.Equal(t, weavetest.SequenceID(1), id)

	esc, err := f.ledger.Get(f.db, id)
	assert.Nil(t, err)
	assert.Equal(t, StatusPending, esc.Status)
	assert.Equal(t, Condition(id).Address(), esc.Address)
	assert.Equal(t, int64(1000), balance(t, f.db, esc.Address))
	assert.Equal(t, int64(4000), balance(t, f.db, f.payer.Address()))

	status, err := f.release(f.payer, id)
	assert.Nil(t, err)
	assert.Equal(t, StatusReleased, status)

	esc, err = f.ledger.Get(f.db, id)
	assert.Nil(t, err)
	assert.Equal(t, StatusReleased, esc.Status)
	assert.Equal(t, []weave.Address{f.payer.Address()}, esc.ReleaseApprovers)
	assert.Equal(t, int64(1000), balance(t, f.db, f.payee.Address()))
	assert.Equal(t, int64(0), balance(t, f.db, esc.Address))
	assert.Equal(t, uint64(1), f.count(t))
}

func TestArbiterBreaksDeadlock(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, 1000, now, 2)

	status, err := f.release(f.payer, id)
	assert.Nil(t, err)
	assert.Equal(t, StatusPending, status)
	assert.Equal(t, int64(0), balance(t, f.db, f.payee.Address()))

	status, err = f.release(f.arbiter, id)
	assert.Nil(t, err)
	assert.Equal(t, StatusReleased, status)
	assert.Equal(t, int64(1000), balance(t, f.db, f.payee.Address()))
}

func TestReleaseBeforeTime(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, 1000, now+3600, 1)

	status, err := f.release(f.payer, id)
	assert.IsErr(t, ErrTimeNotReached, err)
	assert.Equal(t, StatusPending, status)

	// The vote that failed the time gate is not stored.
	esc, err := f.ledger.Get(f.db, id)
	assert.Nil(t, err)
	assert.Equal(t, StatusPending, esc.Status)
	assert.Equal(t, 0, len(esc.ReleaseApprovers))
	assert.Equal(t, int64(1000), balance(t, f.db, esc.Address))

	// One second too early.
	f.clock.now = now + 3599
	_, err = f.release(f.payer, id)
	assert.IsErr(t, ErrTimeNotReached, err)

	// The release time is inclusive and the same party can vote again.
	f.clock.now = now + 3600
	status, err = f.release(f.payer, id)
	assert.Nil(t, err)
	assert.Equal(t, StatusReleased, status)
	assert.Equal(t, int64(1000), balance(t, f.db, f.payee.Address()))
}

func TestTimeGateOnlyAppliesToRelease(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, 1000, now+3600, 2)

	// Release votes below the quorum do not read the clock.
	status, err := f.release(f.payee, id)
	assert.Nil(t, err)
	assert.Equal(t, StatusPending, status)

	status, err = f.refund(f.payee, id)
	assert.Nil(t, err)
	assert.Equal(t, StatusPending, status)
	status, err = f.refund(f.arbiter, id)
	assert.Nil(t, err)
	assert.Equal(t, StatusRefunded, status)
	assert.Equal(t, int64(5000), balance(t, f.db, f.payer.Address()))
}

func TestCreateFailureLeavesNoState(t *testing.T) {
	cases := map[string]struct {
		Signer  func(*fixture) weave.Condition
		Msg     func(*fixture) *CreateMsg
		Config  *Configuration
		WantErr *errors.Error
	}{
		"zero amount": {
			Msg:     func(f *fixture) *CreateMsg { return f.createMsg(0, now, 1) },
			WantErr: errors.ErrAmount,
		},
		"negative amount": {
			Msg:     func(f *fixture) *CreateMsg { return f.createMsg(-5, now, 1) },
			WantErr: errors.ErrAmount,
		},
		"missing amount": {
			Msg: func(f *fixture) *CreateMsg {
				msg := f.createMsg(1, now, 1)
				msg.Amount = nil
				return msg
			},
			WantErr: errors.ErrAmount,
		},
		"payer is payee": {
			Msg: func(f *fixture) *CreateMsg {
				msg := f.createMsg(1, now, 1)
				msg.Payee = msg.Payer
				return msg
			},
			WantErr: ErrSameParty,
		},
		"payer is arbiter": {
			Msg: func(f *fixture) *CreateMsg {
				msg := f.createMsg(1, now, 1)
				msg.Arbiter = msg.Payer
				return msg
			},
			WantErr: ErrSameParty,
		},
		"payee is arbiter": {
			Msg: func(f *fixture) *CreateMsg {
				msg := f.createMsg(1, now, 1)
				msg.Arbiter = msg.Payee
				return msg
			},
			WantErr: ErrSameParty,
		},
		"zero amount is reported before the same party": {
			Msg: func(f *fixture) *CreateMsg {
				msg := f.createMsg(0, now, 1)
				msg.Payee = msg.Payer
				return msg
			},
			WantErr: errors.ErrAmount,
		},
		"no approvals required": {
			Msg:     func(f *fixture) *CreateMsg { return f.createMsg(1, now, 0) },
			WantErr: ErrInvalidQuorum,
		},
		"too many approvals required": {
			Msg:     func(f *fixture) *CreateMsg { return f.createMsg(1, now, 4) },
			WantErr: ErrInvalidQuorum,
		},
		"invalid payee address": {
			Msg: func(f *fixture) *CreateMsg {
				msg := f.createMsg(1, now, 1)
				msg.Payee = weave.Address("short")
				return msg
			},
			WantErr: errors.ErrInput,
		},
		"not signed by the payer": {
			Signer:  func(f *fixture) weave.Condition { return f.payee },
			Msg:     func(f *fixture) *CreateMsg { return f.createMsg(1, now, 1) },
			WantErr: errors.ErrUnauthorized,
		},
		"not enough funds": {
			Msg:     func(f *fixture) *CreateMsg { return f.createMsg(5001, now, 1) },
			WantErr: errors.ErrInsufficientAmount,
		},
		"currency not accepted": {
			Msg:     func(f *fixture) *CreateMsg { return f.createMsg(1, now, 1) },
			Config:  &Configuration{Tickers: []string{"ETH", "BTC"}},
			WantErr: errors.ErrCurrency,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newFixture(t)
			if tc.Config != nil {
				assert.Nil(t, gconf.Save(f.db, packageName, tc.Config))
			}
			signer := f.payer
			if tc.Signer != nil {
				signer = tc.Signer(f)
			}

			id, err := f.ledger.Create(f.signed(signer), f.db, tc.Msg(f))
			assert.IsErr(t, tc.WantErr, err)
			assert.Nil(t, id)
			assert.Equal(t, uint64(0), f.count(t))
			assert.Equal(t, int64(5000), balance(t, f.db, f.payer.Address()))

			_, err = f.ledger.Get(f.db, weavetest.SequenceID(1))
			assert.IsErr(t, errors.ErrNotFound, err)
		})
	}
}

func TestCreateWithAcceptedCurrency(t *testing.T) {
	f := newFixture(t)
	assert.Nil(t, gconf.Save(f.db, packageName, &Configuration{Tickers: []string{"ETH", "IOV"}}))
	id := f.create(t, 10, now, 1)
	assert.Equal(t, weavetest.SequenceID(1), id)
}

func TestCreateInThePast(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, 10, 1, 1)
	status, err := f.release(f.payee, id)
	assert.Nil(t, err)
	assert.Equal(t, StatusReleased, status)
}

func TestIDsAreSequential(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, uint64(0), f.count(t))
	for i := uint64(1); i <= 3; i++ {
		id := f.create(t, 10, now, 1)
		assert.Equal(t, weavetest.SequenceID(i), id)
		assert.Equal(t, i, f.count(t))
	}
	// Final escrows are still counted.
	_, err := f.release(f.payer, weavetest.SequenceID(2))
	assert.Nil(t, err)
	assert.Equal(t, uint64(3), f.count(t))
}

func TestGetUnknownEscrow(t *testing.T) {
	f := newFixture(t)
	_, err := f.ledger.Get(f.db, weavetest.SequenceID(42))
	assert.IsErr(t, errors.ErrNotFound, err)

	_, err = f.release(f.payer, weavetest.SequenceID(42))
	assert.IsErr(t, errors.ErrNotFound, err)
	_, err = f.refund(f.payer, weavetest.SequenceID(42))
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestSingleTerminalTransition(t *testing.T) {
	f := newFixture(t)
	released := f.create(t, 100, now, 1)
	refunded := f.create(t, 100, now, 1)

	_, err := f.release(f.payee, released)
	assert.Nil(t, err)
	_, err = f.refund(f.payee, refunded)
	assert.Nil(t, err)

	for _, id := range [][]byte{released, refunded} {
		for _, party := range []weave.Condition{f.payer, f.payee, f.arbiter} {
			_, err := f.release(party, id)
			assert.IsErr(t, ErrNotPending, err)
			_, err = f.refund(party, id)
			assert.IsErr(t, ErrNotPending, err)
		}
	}

	esc, err := f.ledger.Get(f.db, released)
	assert.Nil(t, err)
	assert.Equal(t, StatusReleased, esc.Status)
	assert.Equal(t, 0, len(esc.RefundApprovers))

	esc, err = f.ledger.Get(f.db, refunded)
	assert.Nil(t, err)
	assert.Equal(t, StatusRefunded, esc.Status)
	assert.Equal(t, 0, len(esc.ReleaseApprovers))

	// 5000 - 2*100 + 100 refunded.
	assert.Equal(t, int64(4900), balance(t, f.db, f.payer.Address()))
	assert.Equal(t, int64(100), balance(t, f.db, f.payee.Address()))
}

func TestQuorumIsExact(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, 100, now, 3)

	for _, party := range []weave.Condition{f.payer, f.payee} {
		status, err := f.release(party, id)
		assert.Nil(t, err)
		assert.Equal(t, StatusPending, status)
	}
	assert.Equal(t, int64(0), balance(t, f.db, f.payee.Address()))

	status, err := f.release(f.arbiter, id)
	assert.Nil(t, err)
	assert.Equal(t, StatusReleased, status)
}

func TestTracksAreIndependent(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, 100, now, 2)

	status, err := f.release(f.payer, id)
	assert.Nil(t, err)
	assert.Equal(t, StatusPending, status)

	// A release vote does not count towards the refund.
	status, err = f.refund(f.payee, id)
	assert.Nil(t, err)
	assert.Equal(t, StatusPending, status)

	// The same party can vote on both tracks.
	status, err = f.refund(f.payer, id)
	assert.Nil(t, err)
	assert.Equal(t, StatusRefunded, status)

	esc, err := f.ledger.Get(f.db, id)
	assert.Nil(t, err)
	assert.Equal(t, []weave.Address{f.payer.Address()}, esc.ReleaseApprovers)
	assert.Equal(t, []weave.Address{f.payee.Address(), f.payer.Address()}, esc.RefundApprovers)
	assert.Equal(t, int64(5000), balance(t, f.db, f.payer.Address()))
}

func TestDuplicateApproval(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, 100, now, 2)

	_, err := f.release(f.arbiter, id)
	assert.Nil(t, err)
	status, err := f.release(f.arbiter, id)
	assert.IsErr(t, ErrDuplicateApproval, err)
	assert.Equal(t, StatusPending, status)

	_, err = f.refund(f.payee, id)
	assert.Nil(t, err)
	_, err = f.refund(f.payee, id)
	assert.IsErr(t, ErrDuplicateApproval, err)

	esc, err := f.ledger.Get(f.db, id)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(esc.ReleaseApprovers))
	assert.Equal(t, 1, len(esc.RefundApprovers))
}

func TestApproverMustBeAuthorizedParty(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, 100, now, 1)
	stranger := weavetest.NewCondition()

	_, err := f.release(stranger, id)
	assert.IsErr(t, ErrNotParty, err)
	_, err = f.refund(stranger, id)
	assert.IsErr(t, ErrNotParty, err)

	// The payee cannot vote in the name of the payer.
	_, err = f.ledger.ApproveRelease(f.signed(f.payee), f.db, id, f.payer.Address())
	assert.IsErr(t, errors.ErrUnauthorized, err)
	_, err = f.ledger.ApproveRefund(f.signed(), f.db, id, f.payer.Address())
	assert.IsErr(t, errors.ErrUnauthorized, err)

	// Authorization is checked before the escrow is loaded.
	_, err = f.ledger.ApproveRelease(f.signed(), f.db, weavetest.SequenceID(42), f.payer.Address())
	assert.IsErr(t, errors.ErrUnauthorized, err)

	esc, err := f.ledger.Get(f.db, id)
	assert.Nil(t, err)
	assert.Equal(t, StatusPending, esc.Status)
	assert.Equal(t, 0, len(esc.ReleaseApprovers))
	assert.Equal(t, 0, len(esc.RefundApprovers))
}

func TestFailedPayoutKeepsFundsLocked(t *testing.T) {
	f := newFixture(t)
	bank := cash.NewController()
	assert.Nil(t, bank.CoinMint(f.db, f.payee.Address(), coin.NewCoin(coin.MaxInt, 0, "IOV")))
	id := f.create(t, 1000, now, 1)
	custody := Condition(id).Address()

	// The payee wallet cannot take any more funds.
	status, err := f.release(f.payer, id)
	assert.IsErr(t, errors.ErrOverflow, err)
	assert.Equal(t, StatusPending, status)

	esc, err := f.ledger.Get(f.db, id)
	assert.Nil(t, err)
	assert.Equal(t, StatusPending, esc.Status)
	assert.Equal(t, 0, len(esc.ReleaseApprovers))
	assert.Equal(t, int64(1000), balance(t, f.db, custody))
	assert.Equal(t, coin.MaxInt, balance(t, f.db, f.payee.Address()))

	// The locked funds can still be returned.
	status, err = f.refund(f.payer, id)
	assert.Nil(t, err)
	assert.Equal(t, StatusRefunded, status)
	assert.Equal(t, int64(0), balance(t, f.db, custody))
	assert.Equal(t, int64(5000), balance(t, f.db, f.payer.Address()))
}
