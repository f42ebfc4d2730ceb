package store

import (
	"bytes"

	weave "github.com/iov-one/weave-escrow"
	"github.com/iov-one/weave-escrow/errors"
)

// cacheIterator merges cached items with the parent iterator. Cached
// items take precedence and deleted items hide the parent value.
type cacheIterator struct {
	parent    weave.Iterator
	items     []keyer
	ascending bool

	// lookahead of the parent iterator
	pkey, pval []byte
	ploaded    bool
	pdone      bool
}

var _ weave.Iterator = (*cacheIterator)(nil)

func newCacheIterator(parent weave.Iterator, items []keyer, ascending bool) *cacheIterator {
	return &cacheIterator{
		parent:    parent,
		items:     items,
		ascending: ascending,
	}
}

func (c *cacheIterator) loadParent() error {
	if c.ploaded || c.pdone {
		return nil
	}
	k, v, err := c.parent.Next()
	switch {
	case errors.ErrIteratorDone.Is(err):
		c.pdone = true
	case err != nil:
		return err
	default:
		c.pkey, c.pval, c.ploaded = k, v, true
	}
	return nil
}

func (c *cacheIterator) Next() ([]byte, []byte, error) {
	for {
		if err := c.loadParent(); err != nil {
			return nil, nil, err
		}

		if len(c.items) == 0 {
			if c.pdone {
				return nil, nil, errors.ErrIteratorDone
			}
			c.ploaded = false
			return c.pkey, c.pval, nil
		}

		item := c.items[0]
		if !c.pdone {
			cmp := bytes.Compare(item.Key(), c.pkey)
			if !c.ascending {
				cmp = -cmp
			}
			if cmp > 0 {
				c.ploaded = false
				return c.pkey, c.pval, nil
			}
			if cmp == 0 {
				// Cached value overwrites the parent one.
				c.ploaded = false
			}
		}

		c.items = c.items[1:]
		if s, ok := item.(setItem); ok {
			return s.key, s.value, nil
		}
	}
}

func (c *cacheIterator) Release() {
	c.parent.Release()
	c.items = nil
}

// SliceIterator iterates over a preloaded list of models.
type SliceIterator struct {
	data []weave.Model
}

var _ weave.Iterator = (*SliceIterator)(nil)

// NewSliceIterator returns an iterator over given models, in the order
// they are provided.
func NewSliceIterator(data []weave.Model) *SliceIterator {
	return &SliceIterator{data: data}
}

func (s *SliceIterator) Next() ([]byte, []byte, error) {
	if len(s.data) == 0 {
		return nil, nil, errors.ErrIteratorDone
	}
	m := s.data[0]
	s.data = s.data[1:]
	return m.Key, m.Value, nil
}

func (s *SliceIterator) Release() {
	s.data = nil
}

// ReadAll consumes given iterator and returns all models. The iterator is
// released.
func ReadAll(it weave.Iterator) ([]weave.Model, error) {
	defer it.Release()
	var res []weave.Model
	for {
		k, v, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, weave.Pair(k, v))
	}
}

// PrefixRange returns the [start, end) range covering all keys with given
// prefix. End is nil if the prefix is all 0xFF bytes.
func PrefixRange(prefix []byte) ([]byte, []byte) {
	start := append([]byte(nil), prefix...)
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xFF {
			end[i]++
			return start, end[:i+1]
		}
	}
	return start, nil
}
