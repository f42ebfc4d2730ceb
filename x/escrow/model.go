package escrow

import (
	"encoding/json"
	"fmt"

	weave "github.com/iov-one/weave-escrow"
	"github.com/iov-one/weave-escrow/coin"
	"github.com/iov-one/weave-escrow/errors"
	"github.com/iov-one/weave-escrow/orm"
)

// BucketName is where the escrows are stored.
const BucketName = "esc"

const (
	minApprovals = 1
	maxApprovals = 3
)

// Status is the stage of an escrow.
type Status int32

const (
	StatusInvalid Status = iota
	StatusPending
	StatusReleased
	StatusRefunded
)

var statusNames = map[Status]string{
	StatusInvalid:  "invalid",
	StatusPending:  "pending",
	StatusReleased: "released",
	StatusRefunded: "refunded",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int32(s))
}

// IsTerminal returns true if no more votes can change the escrow.
func (s Status) IsTerminal() bool {
	return s == StatusReleased || s == StatusRefunded
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(raw []byte) error {
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return errors.Wrap(errors.ErrInput, "status must be a string")
	}
	for st, n := range statusNames {
		if n == name {
			*s = st
			return nil
		}
	}
	return errors.Wrapf(errors.ErrInput, "unknown status %q", name)
}

var _ orm.Model = (*Escrow)(nil)

// Validate ensures the escrow is consistent.
func (e *Escrow) Validate() error {
	if err := validateTerms(e.Payer, e.Payee, e.Arbiter, e.Amount, e.ReleaseAfter, e.RequiredApprovals); err != nil {
		return err
	}
	switch e.Status {
	case StatusPending, StatusReleased, StatusRefunded:
	default:
		return errors.Wrapf(errors.ErrState, "invalid status %d", e.Status)
	}
	if err := e.validateVotes("release", e.ReleaseApprovers); err != nil {
		return err
	}
	if err := e.validateVotes("refund", e.RefundApprovers); err != nil {
		return err
	}
	if err := e.Address.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	return nil
}

func (e *Escrow) validateVotes(track string, votes []weave.Address) error {
	if len(votes) > int(e.RequiredApprovals) {
		return errors.Wrapf(errors.ErrState, "%s: more votes than required", track)
	}
	for i, v := range votes {
		if !e.IsParty(v) {
			return errors.Wrapf(ErrNotParty, "%s: vote %d", track, i)
		}
		if hasVoted(votes[:i], v) {
			return errors.Wrapf(ErrDuplicateApproval, "%s: vote %d", track, i)
		}
	}
	return nil
}

// IsParty returns true if the address is the payer, the payee or the
// arbiter of this escrow.
func (e *Escrow) IsParty(a weave.Address) bool {
	return a.Equals(e.Payer) || a.Equals(e.Payee) || a.Equals(e.Arbiter)
}

func (e *Escrow) Copy() orm.CloneableData {
	return &Escrow{
		Payer:             e.Payer.Clone(),
		Payee:             e.Payee.Clone(),
		Arbiter:           e.Arbiter.Clone(),
		Amount:            e.Amount.Clone(),
		ReleaseAfter:      e.ReleaseAfter,
		RequiredApprovals: e.RequiredApprovals,
		Status:            e.Status,
		ReleaseApprovers:  cloneAddresses(e.ReleaseApprovers),
		RefundApprovers:   cloneAddresses(e.RefundApprovers),
		Address:           e.Address.Clone(),
	}
}

func cloneAddresses(addrs []weave.Address) []weave.Address {
	if addrs == nil {
		return nil
	}
	res := make([]weave.Address, len(addrs))
	for i, a := range addrs {
		res[i] = a.Clone()
	}
	return res
}

func hasVoted(votes []weave.Address, a weave.Address) bool {
	for _, v := range votes {
		if v.Equals(a) {
			return true
		}
	}
	return false
}

// validateTerms checks the immutable terms of an escrow. The first
// violation found is returned.
func validateTerms(
	payer, payee, arbiter weave.Address,
	amount *coin.Coin,
	releaseAfter weave.UnixTime,
	requiredApprovals uint32,
) error {
	if coin.IsEmpty(amount) || !amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "amount must be greater than zero")
	}
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if payer.Equals(payee) || payer.Equals(arbiter) || payee.Equals(arbiter) {
		return errors.Wrap(ErrSameParty, "payer, payee and arbiter must be distinct")
	}
	if requiredApprovals < minApprovals || requiredApprovals > maxApprovals {
		return errors.Wrapf(ErrInvalidQuorum, "got %d", requiredApprovals)
	}
	if err := payer.Validate(); err != nil {
		return errors.Wrap(err, "payer")
	}
	if err := payee.Validate(); err != nil {
		return errors.Wrap(err, "payee")
	}
	if err := arbiter.Validate(); err != nil {
		return errors.Wrap(err, "arbiter")
	}
	if err := releaseAfter.Validate(); err != nil {
		return errors.Wrap(err, "release after")
	}
	return nil
}

// Condition returns the condition that controls the escrow account.
func Condition(id []byte) weave.Condition {
	return weave.NewCondition("escrow", "seq", id)
}

// NewBucket returns the escrow bucket indexed by every party.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Escrow{},
		orm.WithIndex("payer", payerIndex, false),
		orm.WithIndex("payee", payeeIndex, false),
		orm.WithIndex("arbiter", arbiterIndex, false),
	)
}

func toEscrow(obj orm.Object) (*Escrow, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	esc, ok := obj.Value().(*Escrow)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "cannot index %T", obj.Value())
	}
	return esc, nil
}

func payerIndex(obj orm.Object) ([]byte, error) {
	esc, err := toEscrow(obj)
	if err != nil {
		return nil, err
	}
	return esc.Payer, nil
}

func payeeIndex(obj orm.Object) ([]byte, error) {
	esc, err := toEscrow(obj)
	if err != nil {
		return nil, err
	}
	return esc.Payee, nil
}

func arbiterIndex(obj orm.Object) ([]byte, error) {
	esc, err := toEscrow(obj)
	if err != nil {
		return nil, err
	}
	return esc.Arbiter, nil
}
