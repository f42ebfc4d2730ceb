package orm

import (
	weave "github.com/iov-one/weave-escrow"
)

// Object is what is stored in the bucket. Key is joined with the bucket
// prefix to build the database key. Value is the data stored.
type Object interface {
	Keyed
	Cloneable
	Validate() error
	Value() weave.Persistent
}

// Keyed is anything that can identify itself.
type Keyed interface {
	Key() []byte
	SetKey([]byte)
}

// Cloneable creates a new, empty object that can be loaded into.
type Cloneable interface {
	Clone() Object
}

// CloneableData is a value that can be embedded in a SimpleObj.
type CloneableData interface {
	weave.Persistent
	Validate() error
	Copy() CloneableData
}

// Model is implemented by any entity that can be stored using ModelBucket.
type Model = CloneableData

// Reader reads objects from the database.
type Reader interface {
	Get(db weave.ReadOnlyKVStore, key []byte) (Object, error)
}
