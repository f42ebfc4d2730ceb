package orm

import (
	"bytes"

	weave "github.com/iov-one/weave-escrow"
	"github.com/iov-one/weave-escrow/errors"
	"github.com/iov-one/weave-escrow/store"
)

// Indexer calculates the secondary index key for a given object. A nil key
// means the object is not indexed.
type Indexer func(Object) ([]byte, error)

// Index is a secondary index on the objects of a bucket. A unique index
// stores a single primary key per index value. A non unique index stores a
// MultiRef.
type Index struct {
	name   string
	id     []byte
	unique bool
	index  Indexer
	refKey func([]byte) []byte
}

var _ weave.QueryHandler = Index{}

// NewIndex constructs an index.
// Indexer calculates the index for an object.
// unique enforces a unique constraint on the index.
// refKey calculates the absolute dbkey for a ref.
func NewIndex(name string, indexer Indexer, unique bool, refKey func([]byte) []byte) Index {
	return Index{
		name:   name,
		id:     []byte("_i." + name + ":"),
		index:  indexer,
		unique: unique,
		refKey: refKey,
	}
}

func (i Index) Name() string {
	return i.name
}

// IndexKey is the full key stored in the db, including prefix.
func (i Index) IndexKey(key []byte) []byte {
	out := make([]byte, len(i.id)+len(key))
	copy(out, i.id)
	copy(out[len(i.id):], key)
	return out
}

// Update keeps the index in sync with a change to an object.
//
// prev == nil means insert
// save == nil means delete
// both == nil is an error
// both != nil with different keys is an error
func (i Index) Update(db weave.KVStore, prev Object, save Object) error {
	switch {
	case prev == nil && save == nil:
		return errors.Wrap(errors.ErrHuman, "update requires at least one non-nil object")
	case prev == nil:
		key, err := i.index(save)
		if err != nil {
			return err
		}
		return i.insert(db, key, save.Key())
	case save == nil:
		key, err := i.index(prev)
		if err != nil {
			return err
		}
		return i.remove(db, key, prev.Key())
	default:
		return i.move(db, prev, save)
	}
}

// GetAt returns the primary keys indexed under the given value.
func (i Index) GetAt(db weave.ReadOnlyKVStore, index []byte) ([][]byte, error) {
	val, err := db.Get(i.IndexKey(index))
	if err != nil || val == nil {
		return nil, err
	}
	if i.unique {
		return [][]byte{val}, nil
	}
	var refs MultiRef
	if err := refs.Unmarshal(val); err != nil {
		return nil, errors.Wrap(err, "unmarshal refs")
	}
	return refs.Refs, nil
}

// GetPrefix returns the primary keys of all index values starting with the
// given prefix.
func (i Index) GetPrefix(db weave.ReadOnlyKVStore, prefix []byte) ([][]byte, error) {
	it, err := db.Iterator(store.PrefixRange(i.IndexKey(prefix)))
	if err != nil {
		return nil, err
	}
	models, err := store.ReadAll(it)
	if err != nil {
		return nil, err
	}

	var res [][]byte
	for _, m := range models {
		if i.unique {
			res = append(res, m.Value)
			continue
		}
		var refs MultiRef
		if err := refs.Unmarshal(m.Value); err != nil {
			return nil, errors.Wrap(err, "unmarshal refs")
		}
		res = append(res, refs.Refs...)
	}
	return res, nil
}

// Query returns the objects referenced by the index.
func (i Index) Query(db weave.ReadOnlyKVStore, mod string, data []byte) ([]weave.Model, error) {
	var (
		refs [][]byte
		err  error
	)
	switch mod {
	case weave.KeyQueryMod:
		refs, err = i.GetAt(db, data)
	case weave.PrefixQueryMod:
		refs, err = i.GetPrefix(db, data)
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown query mod %q", mod)
	}
	if err != nil {
		return nil, err
	}

	res := make([]weave.Model, 0, len(refs))
	for _, ref := range refs {
		key := i.refKey(ref)
		val, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		if val != nil {
			res = append(res, weave.Pair(key, val))
		}
	}
	return res, nil
}

func (i Index) move(db weave.KVStore, prev Object, save Object) error {
	if !bytes.Equal(prev.Key(), save.Key()) {
		return errors.Wrap(errors.ErrImmutable, "cannot modify the primary key of an object")
	}
	oldKey, err := i.index(prev)
	if err != nil {
		return err
	}
	newKey, err := i.index(save)
	if err != nil {
		return err
	}
	if bytes.Equal(oldKey, newKey) {
		return nil
	}
	if err := i.insert(db, newKey, save.Key()); err != nil {
		return err
	}
	return i.remove(db, oldKey, prev.Key())
}

func (i Index) insert(db weave.KVStore, index []byte, pk []byte) error {
	if len(index) == 0 {
		return nil
	}
	key := i.IndexKey(index)
	cur, err := db.Get(key)
	if err != nil {
		return err
	}
	if i.unique {
		if cur != nil {
			return errors.Wrap(errors.ErrDuplicate, i.name)
		}
		return db.Set(key, pk)
	}

	var refs MultiRef
	if cur != nil {
		if err := refs.Unmarshal(cur); err != nil {
			return errors.Wrap(err, "unmarshal refs")
		}
	}
	if err := refs.Add(pk); err != nil {
		return err
	}
	raw, err := refs.Marshal()
	if err != nil {
		return err
	}
	return db.Set(key, raw)
}

func (i Index) remove(db weave.KVStore, index []byte, pk []byte) error {
	if len(index) == 0 {
		return nil
	}
	key := i.IndexKey(index)
	cur, err := db.Get(key)
	if err != nil {
		return err
	}
	if cur == nil {
		return errors.Wrap(errors.ErrNotFound, "cannot remove index from nothing")
	}
	if i.unique {
		if !bytes.Equal(cur, pk) {
			return errors.Wrap(errors.ErrNotFound, "cannot remove index from invalid object")
		}
		return db.Delete(key)
	}

	var refs MultiRef
	if err := refs.Unmarshal(cur); err != nil {
		return errors.Wrap(err, "unmarshal refs")
	}
	if err := refs.Remove(pk); err != nil {
		return err
	}
	if len(refs.Refs) == 0 {
		return db.Delete(key)
	}
	raw, err := refs.Marshal()
	if err != nil {
		return err
	}
	return db.Set(key, raw)
}
