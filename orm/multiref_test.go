package orm

import (
	"testing"

	"github.com/iov-one/weave-escrow/errors"
	"github.com/iov-one/weave-escrow/weavetest/assert"
)

func TestMultiRef(t *testing.T) {
	m, err := NewMultiRef([]byte("c"), []byte("a"), []byte("b"))
	assert.Nil(t, err)
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b"), []byte("c")}, m.Refs)

	assert.IsErr(t, errors.ErrDuplicate, m.Add([]byte("b")))
	assert.Nil(t, m.Remove([]byte("b")))
	assert.IsErr(t, errors.ErrNotFound, m.Remove([]byte("b")))

	raw, err := m.Marshal()
	assert.Nil(t, err)
	var got MultiRef
	assert.Nil(t, got.Unmarshal(raw))
	assert.Equal(t, m.Refs, got.Refs)

	cp := m.Copy().(*MultiRef)
	assert.Nil(t, cp.Remove([]byte("a")))
	assert.Equal(t, 2, len(m.Refs))

	assert.IsErr(t, errors.ErrEmpty, new(MultiRef).Validate())
}
