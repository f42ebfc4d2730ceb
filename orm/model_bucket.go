package orm

import (
	"reflect"

	weave "github.com/iov-one/weave-escrow"
	"github.com/iov-one/weave-escrow/errors"
)

// ModelBucket operates on Models rather than Objects.
type ModelBucket interface {
	// One loads the entity stored under key into dest. ErrNotFound is
	// returned if the entity does not exist. ErrType is returned if dest
	// cannot hold the stored entity.
	One(db weave.ReadOnlyKVStore, key []byte, dest Model) error

	// ByIndex returns all entities indexed under key by the named index.
	// dest must be a pointer to a slice of models.
	ByIndex(db weave.ReadOnlyKVStore, indexName string, key []byte, dest interface{}) error

	// Has returns nil if an entity exists under key, ErrNotFound otherwise.
	Has(db weave.ReadOnlyKVStore, key []byte) error

	// Put validates and saves m under key.
	Put(db weave.KVStore, key []byte, m Model) error

	// Delete removes an entity. ErrNotFound is returned if it does not
	// exist.
	Delete(db weave.KVStore, key []byte) error

	// Sequence returns a sequence scoped to this bucket.
	Sequence(name string) Sequence

	// Register registers the bucket and its indexes for queries.
	Register(name string, r weave.QueryRouter)
}

// ModelBucketOption configures a model bucket.
type ModelBucketOption func(*modelBucket)

// WithIndex declares a secondary index.
func WithIndex(name string, indexer Indexer, unique bool) ModelBucketOption {
	return func(mb *modelBucket) {
		mb.b = mb.b.WithIndex(name, indexer, unique)
	}
}

// NewModelBucket returns a bucket storing entities of the same type as
// example.
func NewModelBucket(name string, example Model, opts ...ModelBucketOption) ModelBucket {
	mb := &modelBucket{
		b:     NewBucket(name, NewSimpleObj(nil, example)),
		model: reflect.TypeOf(example),
	}
	for _, fn := range opts {
		fn(mb)
	}
	return mb
}

type modelBucket struct {
	b     Bucket
	model reflect.Type
}

var _ ModelBucket = (*modelBucket)(nil)

func (mb *modelBucket) One(db weave.ReadOnlyKVStore, key []byte, dest Model) error {
	obj, err := mb.b.Get(db, key)
	if err != nil {
		return err
	}
	if obj == nil || obj.Value() == nil {
		return errors.Wrapf(errors.ErrNotFound, "%s not in the store", mb.b.Name())
	}
	res := obj.Value()
	if !reflect.TypeOf(res).AssignableTo(reflect.TypeOf(dest)) {
		return errors.Wrapf(errors.ErrType, "%T cannot be represented as %T", res, dest)
	}
	reflect.ValueOf(dest).Elem().Set(reflect.ValueOf(res).Elem())
	return nil
}

func (mb *modelBucket) ByIndex(db weave.ReadOnlyKVStore, indexName string, key []byte, dest interface{}) error {
	objs, err := mb.b.GetIndexed(db, indexName, key)
	if err != nil {
		return err
	}

	ptr := reflect.ValueOf(dest)
	if ptr.Kind() != reflect.Ptr || ptr.Elem().Kind() != reflect.Slice {
		return errors.Wrapf(errors.ErrType, "destination must be a pointer to a slice, got %T", dest)
	}
	slice := ptr.Elem()
	elem := slice.Type().Elem()
	if !mb.model.AssignableTo(elem) && !mb.model.Elem().AssignableTo(elem) {
		return errors.Wrapf(errors.ErrType, "%v cannot be represented as %v", mb.model, elem)
	}

	for _, obj := range objs {
		val := reflect.ValueOf(obj.Value())
		if !mb.model.AssignableTo(elem) {
			val = val.Elem()
		}
		slice = reflect.Append(slice, val)
	}
	ptr.Elem().Set(slice)
	return nil
}

func (mb *modelBucket) Has(db weave.ReadOnlyKVStore, key []byte) error {
	ok, err := mb.b.Has(db, key)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "%s not in the store", mb.b.Name())
	}
	return nil
}

func (mb *modelBucket) Put(db weave.KVStore, key []byte, m Model) error {
	if reflect.TypeOf(m) != mb.model {
		return errors.Wrapf(errors.ErrType, "cannot store %T in %s", m, mb.b.Name())
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	if err := mb.b.Save(db, NewSimpleObj(key, m)); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

func (mb *modelBucket) Delete(db weave.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	return mb.b.Delete(db, key)
}

func (mb *modelBucket) Sequence(name string) Sequence {
	return mb.b.Sequence(name)
}

func (mb *modelBucket) Register(name string, r weave.QueryRouter) {
	mb.b.Register(name, r)
}
