// Package iavl provides a persistent, merkle tree backed store.
package iavl

import (
	weave "github.com/iov-one/weave-escrow"
	"github.com/iov-one/weave-escrow/errors"
	"github.com/iov-one/weave-escrow/store"
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"
)

// DefaultCacheSize is the number of tree nodes kept in memory.
const DefaultCacheSize = 10000

// CommitStore manages an iavl committed state.
type CommitStore struct {
	tree *iavl.MutableTree
}

var _ weave.CommitKVStore = CommitStore{}

// NewCommitStore creates a new store with a goleveldb backend, stored in
// given directory.
func NewCommitStore(path, name string) (CommitStore, error) {
	db, err := dbm.NewGoLevelDB(name, path)
	if err != nil {
		return CommitStore{}, errors.Wrapf(err, "cannot open %q database in %s", name, path)
	}
	return CommitStore{tree: iavl.NewMutableTree(db, DefaultCacheSize)}, nil
}

// MockCommitStore creates a new in memory store, useful for tests.
func MockCommitStore() CommitStore {
	return CommitStore{tree: iavl.NewMutableTree(dbm.NewMemDB(), DefaultCacheSize)}
}

// Get returns the value at the last committed state.
func (s CommitStore) Get(key []byte) ([]byte, error) {
	_, val := s.tree.Get(key)
	return val, nil
}

// Commit saves the working state as the next version.
func (s CommitStore) Commit() (weave.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return weave.CommitID{}, errors.Wrap(err, "cannot save version")
	}
	return weave.CommitID{Version: version, Hash: hash}, nil
}

// LoadLatestVersion loads the latest persisted version. If there was a
// crash during the last commit, it is guaranteed to return a stable state,
// even if older.
func (s CommitStore) LoadLatestVersion() error {
	_, err := s.tree.Load()
	return errors.Wrap(err, "cannot load tree")
}

// LatestVersion returns info on the latest version saved to disk.
func (s CommitStore) LatestVersion() (weave.CommitID, error) {
	return weave.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}, nil
}

// CacheWrap returns a btree cache over the tree. Written data goes to the
// working state and is persisted on Commit.
func (s CommitStore) CacheWrap() weave.KVCacheWrap {
	return s.Adapter().CacheWrap()
}

// Adapter returns a store operating directly on the working state of the
// tree.
func (s CommitStore) Adapter() weave.CacheableKVStore {
	return adapter{tree: s.tree}
}

// adapter implements weave.CacheableKVStore on top of the working tree.
type adapter struct {
	tree *iavl.MutableTree
}

var _ weave.CacheableKVStore = adapter{}

func (a adapter) Get(key []byte) ([]byte, error) {
	_, val := a.tree.Get(key)
	return val, nil
}

func (a adapter) Has(key []byte) (bool, error) {
	return a.tree.Has(key), nil
}

func (a adapter) Set(key, value []byte) error {
	if len(key) == 0 {
		return errors.Wrap(errors.ErrInput, "empty key")
	}
	a.tree.Set(key, value)
	return nil
}

func (a adapter) Delete(key []byte) error {
	a.tree.Remove(key)
	return nil
}

func (a adapter) NewBatch() weave.Batch {
	return store.NewNonAtomicBatch(a)
}

func (a adapter) CacheWrap() weave.KVCacheWrap {
	return store.NewBTreeCacheWrap(a, a.NewBatch(), nil)
}

// Iterator loads all matching items upfront. The tree does not provide a
// lazy iterator.
func (a adapter) Iterator(start, end []byte) (weave.Iterator, error) {
	return store.NewSliceIterator(a.collect(start, end, true)), nil
}

func (a adapter) ReverseIterator(start, end []byte) (weave.Iterator, error) {
	return store.NewSliceIterator(a.collect(start, end, false)), nil
}

func (a adapter) collect(start, end []byte, ascending bool) []weave.Model {
	var res []weave.Model
	a.tree.IterateRange(start, end, ascending, func(key, value []byte) bool {
		res = append(res, weave.Pair(key, value))
		return false
	})
	return res
}
