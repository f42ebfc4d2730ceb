package store

import (
	"testing"

	weave "github.com/iov-one/weave-escrow"
	"github.com/iov-one/weave-escrow/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeMemStore() (weave.CacheableKVStore, func()) {
	return MemStore(), func() {}
}

var suite = NewTestSuite(makeMemStore)

func TestBTreeCacheGetSet(t *testing.T) { suite.GetSet(t) }
func TestBTreeCacheConflicts(t *testing.T) { suite.CacheConflicts(t) }
func TestBTreeCacheIterators(t *testing.T) { suite.Iterators(t) }
func TestBTreeNestedCacheIterator(t *testing.T) { testNestedIterator(t, MemStore()) }

func testNestedIterator(t *testing.T, base weave.CacheableKVStore) {
	require.NoError(t, base.Set([]byte("k1"), []byte("v1")))
	mid := base.CacheWrap()
	require.NoError(t, mid.Set([]byte("k2"), []byte("v2")))
	top := mid.CacheWrap()
	require.NoError(t, top.Delete([]byte("k1")))
	require.NoError(t, top.Set([]byte("k3"), []byte("v3")))

	it, err := top.Iterator(nil, nil)
	require.NoError(t, err)
	got, err := ReadAll(it)
	require.NoError(t, err)
	assert.Equal(t, []weave.Model{
		weave.Pair([]byte("k2"), []byte("v2")),
		weave.Pair([]byte("k3"), []byte("v3")),
	}, got)
}

func TestEmptyKeyIsRejected(t *testing.T) {
	db := MemStore()
	err := db.Set(nil, []byte("x"))
	assert.True(t, errors.ErrInput.Is(err))
	err = db.Delete([]byte{})
	assert.True(t, errors.ErrInput.Is(err))
}

func TestPrefixRange(t *testing.T) {
	cases := map[string]struct {
		prefix    []byte
		wantStart []byte
		wantEnd   []byte
	}{
		"simple prefix": {
			prefix:    []byte("esc:"),
			wantStart: []byte("esc:"),
			wantEnd:   []byte("esc;"),
		},
		"trailing 0xFF bytes are cut": {
			prefix:    []byte{0x01, 0xFF, 0xFF},
			wantStart: []byte{0x01, 0xFF, 0xFF},
			wantEnd:   []byte{0x02},
		},
		"all 0xFF bytes have no end": {
			prefix:    []byte{0xFF, 0xFF},
			wantStart: []byte{0xFF, 0xFF},
			wantEnd:   nil,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			start, end := PrefixRange(tc.prefix)
			assert.Equal(t, tc.wantStart, start)
			assert.Equal(t, tc.wantEnd, end)
		})
	}
}

func TestNonAtomicBatchShowOps(t *testing.T) {
	db := MemStore()
	b := NewNonAtomicBatch(db)
	require.NoError(t, b.Set([]byte("a"), []byte("1")))
	require.NoError(t, b.Delete([]byte("b")))
	assert.Equal(t, []Op{
		{Kind: SetOp, Key: []byte("a"), Value: []byte("1")},
		{Kind: DelOp, Key: []byte("b")},
	}, b.ShowOps())

	require.NoError(t, b.Write())
	assert.Empty(t, b.ShowOps())
	v, err := db.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
}
