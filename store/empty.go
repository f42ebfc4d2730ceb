package store

import (
	weave "github.com/iov-one/weave-escrow"
)

// EmptyKVStore never holds any data. Writes are ignored.
type EmptyKVStore struct{}

var _ weave.KVStore = EmptyKVStore{}

func (e EmptyKVStore) Get(key []byte) ([]byte, error) { return nil, nil }

func (e EmptyKVStore) Has(key []byte) (bool, error) { return false, nil }

func (e EmptyKVStore) Set(key, value []byte) error { return nil }

func (e EmptyKVStore) Delete(key []byte) error { return nil }

func (e EmptyKVStore) Iterator(start, end []byte) (weave.Iterator, error) {
	return NewSliceIterator(nil), nil
}

func (e EmptyKVStore) ReverseIterator(start, end []byte) (weave.Iterator, error) {
	return NewSliceIterator(nil), nil
}

func (e EmptyKVStore) NewBatch() weave.Batch {
	return NewNonAtomicBatch(e)
}
