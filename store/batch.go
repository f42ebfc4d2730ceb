package store

import (
	weave "github.com/iov-one/weave-escrow"
)

// OpType is the kind of an operation recorded by a batch.
type OpType int32

const (
	SetOp OpType = iota
	DelOp
)

// Op is a single operation recorded by a batch.
type Op struct {
	Kind  OpType
	Key   []byte
	Value []byte
}

// Apply performs the operation on given store.
func (o Op) Apply(out weave.SetDeleter) error {
	if o.Kind == DelOp {
		return out.Delete(o.Key)
	}
	return out.Set(o.Key, o.Value)
}

// NonAtomicBatch records all operations and applies them one after
// another on Write. It is meant to be used on top of in-memory stores,
// where a write cannot fail half way.
type NonAtomicBatch struct {
	out weave.SetDeleter
	ops []Op
}

var _ weave.Batch = (*NonAtomicBatch)(nil)

// NewNonAtomicBatch returns a batch writing to given store.
func NewNonAtomicBatch(out weave.SetDeleter) *NonAtomicBatch {
	return &NonAtomicBatch{out: out}
}

func (b *NonAtomicBatch) Set(key, value []byte) error {
	b.ops = append(b.ops, Op{Kind: SetOp, Key: key, Value: value})
	return nil
}

func (b *NonAtomicBatch) Delete(key []byte) error {
	b.ops = append(b.ops, Op{Kind: DelOp, Key: key})
	return nil
}

// Write applies all recorded operations and resets the batch.
func (b *NonAtomicBatch) Write() error {
	for _, op := range b.ops {
		if err := op.Apply(b.out); err != nil {
			return err
		}
	}
	b.ops = nil
	return nil
}

// Reset drops all recorded operations.
func (b *NonAtomicBatch) Reset() {
	b.ops = nil
}

// ShowOps returns all operations recorded so far.
func (b *NonAtomicBatch) ShowOps() []Op {
	return b.ops
}
