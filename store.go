package weave

// ReadOnlyKVStore is a simple interface to query data.
type ReadOnlyKVStore interface {
	// Get returns nil iff key doesn't exist.
	Get(key []byte) ([]byte, error)

	// Has checks if a key exists.
	Has(key []byte) (bool, error)

	// Iterator over a domain of keys in ascending order. Start is
	// inclusive and end is exclusive. A nil value means unbounded.
	// No writes may happen within a domain while an iterator exists over
	// it.
	Iterator(start, end []byte) (Iterator, error)

	// ReverseIterator over a domain of keys in descending order. Start is
	// inclusive and end is exclusive. A nil value means unbounded.
	ReverseIterator(start, end []byte) (Iterator, error)
}

// SetDeleter is a minimal interface for writing. Batch and KVStore
// implement it.
type SetDeleter interface {
	// Set sets the key.
	Set(key, value []byte) error

	// Delete deletes the key.
	Delete(key []byte) error
}

// KVStore is a simple interface to get and set data.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter

	// NewBatch returns a batch that can write multiple ops atomically.
	NewBatch() Batch
}

// Batch can write multiple ops atomically to an underlying KVStore.
type Batch interface {
	SetDeleter

	// Write applies all collected operations.
	Write() error
}

// Iterator allows to access a set of items within a range of keys. Items
// may be preloaded or loaded on demand.
//
//   it, err := db.Iterator(start, end)
//   defer it.Release()
//   for {
//     key, value, err := it.Next()
//     if errors.ErrIteratorDone.Is(err) {
//       break
//     }
//     ...
//   }
type Iterator interface {
	// Next returns the next key and value. When there are no more items
	// errors.ErrIteratorDone is returned.
	Next() (key, value []byte, err error)

	// Release releases the iterator. It must be called even if the
	// iterator was not exhausted.
	Release()
}

// CacheableKVStore is a KVStore that supports cache wrapping.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap maintains a scratch pad of uncommitted data that is visible
// to all queries. At the end, call Write to use the cached data or Discard
// to drop it. It works like a database savepoint.
type KVCacheWrap interface {
	// CacheableKVStore allows to use this cache recursively.
	CacheableKVStore

	// Write syncs with the underlying store.
	Write() error

	// Discard invalidates this cache and releases all data.
	Discard()
}

// CommitKVStore is a store that can persist state to disk, load on start
// up and maintain a history of versions.
type CommitKVStore interface {
	// Get returns the value at the last committed state. Returns nil iff
	// key doesn't exist.
	Get(key []byte) ([]byte, error)

	// CacheWrap returns a cache that is written to the working state on
	// Write.
	CacheWrap() KVCacheWrap

	// Commit the next version to disk, and return its info.
	Commit() (CommitID, error)

	// LoadLatestVersion loads the latest persisted version.
	LoadLatestVersion() error

	// LatestVersion returns info on the latest version saved to disk.
	LatestVersion() (CommitID, error)
}

// CommitID contains the tree version number and its merkle root.
type CommitID struct {
	Version int64
	Hash    []byte
}
