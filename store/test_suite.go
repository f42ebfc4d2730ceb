package store

import (
	"bytes"
	"crypto/rand"
	"sort"
	"testing"

	weave "github.com/iov-one/weave-escrow"
	"github.com/iov-one/weave-escrow/errors"
	"github.com/iov-one/weave-escrow/weavetest/assert"
)

// TestSuite provides store tests that are generic to the CacheableKVStore
// interface. Customize only the store constructor, the rest of the logic is
// shared by all implementations (ie. btree and iavl).
type TestSuite struct {
	makeBase TestStoreConstructor
}

// TestStoreConstructor returns a fresh store and a cleanup function.
type TestStoreConstructor func() (base weave.CacheableKVStore, cleanup func())

// NewTestSuite returns a suite testing stores created by given constructor.
func NewTestSuite(constructor TestStoreConstructor) *TestSuite {
	return &TestSuite{makeBase: constructor}
}

// GetSet does basic sanity checks of nested caches.
func (s *TestSuite) GetSet(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	k, v := []byte("payer"), []byte("alice")
	s.AssertGetHas(t, base, k, nil, false)
	assert.Nil(t, base.Set(k, v))
	s.AssertGetHas(t, base, k, v, true)

	// A cache returns the base data.
	cache := base.CacheWrap()
	s.AssertGetHas(t, cache, k, v, true)

	// Writing more data is only visible in the cache.
	k2, v2 := []byte("payee"), []byte("bob")
	assert.Nil(t, cache.Set(k2, v2))
	s.AssertGetHas(t, cache, k2, v2, true)
	s.AssertGetHas(t, base, k2, nil, false)

	assert.Nil(t, cache.Write())
	s.AssertGetHas(t, base, k, v, true)
	s.AssertGetHas(t, base, k2, v2, true)

	// Discarded changes are not visible.
	k3, v3 := []byte("arbiter"), []byte("carol")
	c2 := base.CacheWrap()
	assert.Nil(t, c2.Set(k3, v3))
	c2.Discard()
	s.AssertGetHas(t, base, k3, nil, false)

	// Deletes are written as well.
	c3 := base.CacheWrap()
	assert.Nil(t, c3.Delete(k))
	s.AssertGetHas(t, c3, k, nil, false)
	s.AssertGetHas(t, base, k, v, true)
	assert.Nil(t, c3.Write())
	s.AssertGetHas(t, base, k, nil, false)
	s.AssertGetHas(t, base, k2, v2, true)
}

// CacheConflicts checks overwriting values and deleting underlying values.
func (s *TestSuite) CacheConflicts(t *testing.T) {
	ks := randKeys(4, 16)
	vs := randKeys(4, 40)

	parent, cleanup := s.makeBase()
	defer cleanup()

	assert.Nil(t, parent.Set(ks[1], vs[1]))
	assert.Nil(t, parent.Set(ks[2], vs[2]))

	child := parent.CacheWrap()
	assert.Nil(t, child.Set(ks[1], vs[0]))
	assert.Nil(t, child.Set(ks[3], vs[3]))
	assert.Nil(t, child.Delete(ks[2]))

	parentWant := []weave.Model{weave.Pair(ks[1], vs[1]), weave.Pair(ks[2], vs[2]), weave.Pair(ks[3], nil)}
	childWant := []weave.Model{weave.Pair(ks[1], vs[0]), weave.Pair(ks[2], nil), weave.Pair(ks[3], vs[3])}

	for _, q := range parentWant {
		s.AssertGetHas(t, parent, q.Key, q.Value, q.Value != nil)
	}
	for _, q := range childWant {
		s.AssertGetHas(t, child, q.Key, q.Value, q.Value != nil)
	}

	assert.Nil(t, child.Write())
	for _, q := range childWant {
		s.AssertGetHas(t, parent, q.Key, q.Value, q.Value != nil)
	}
}

// Iterators checks forward and reverse iteration over data combined from
// a cache and its parent.
func (s *TestSuite) Iterators(t *testing.T) {
	ms := randModels(7, 20, 50)
	a, a2, b, b2, c, d, e := ms[0], ms[1], ms[2], ms[3], ms[4], ms[5], ms[6]
	a2.Key = a.Key
	b2.Key = b.Key

	abc := sortModels([]weave.Model{a, b, c})
	overwritten := sortModels([]weave.Model{a2, b2, c, d})
	mixed := sortModels([]weave.Model{a, c, e})

	cases := map[string]iterCase{
		"child only": {
			child: setOps(a, b, c),
			queries: []rangeQuery{
				{nil, nil, false, abc},
				{abc[1].Key, abc[2].Key, false, abc[1:2]},
				{nil, nil, true, reverse(abc)},
				{abc[1].Key, nil, true, reverse(abc[1:])},
			},
		},
		"parent only": {
			pre: setOps(a, b, c),
			queries: []rangeQuery{
				{nil, nil, false, abc},
				{nil, abc[2].Key, false, abc[:2]},
				{nil, nil, true, reverse(abc)},
			},
		},
		"simple combination": {
			pre:   setOps(a, b),
			child: setOps(c),
			queries: []rangeQuery{
				{nil, nil, false, abc},
				{abc[1].Key, abc[2].Key, false, abc[1:2]},
				{nil, nil, true, reverse(abc)},
			},
		},
		"overwritten data shows child values": {
			pre:   setOps(a, b, c),
			child: setOps(a2, b2, d),
			queries: []rangeQuery{
				{nil, nil, false, overwritten},
				{overwritten[1].Key, overwritten[3].Key, false, overwritten[1:3]},
				{nil, nil, true, reverse(overwritten)},
			},
		},
		"deleted data is skipped": {
			pre:   setOps(a, b, c, d),
			child: append(delOps(b, d), setOps(e)...),
			queries: []rangeQuery{
				{nil, nil, false, mixed},
				{nil, nil, true, reverse(mixed)},
				{mixed[1].Key, nil, false, mixed[1:]},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			base, cleanup := s.makeBase()
			defer cleanup()
			tc.verify(t, base)
		})
	}
}

// AssertGetHas checks that both Get and Has return expected values.
func (s *TestSuite) AssertGetHas(t testing.TB, kv weave.ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	assert.Nil(t, err)
	assert.Equal(t, val, got)
	exists, err := kv.Has(key)
	assert.Nil(t, err)
	assert.Equal(t, has, exists)
}

type iterCase struct {
	pre     []Op
	child   []Op
	queries []rangeQuery
}

type rangeQuery struct {
	start    []byte
	end      []byte
	reverse  bool
	expected []weave.Model
}

func (i iterCase) verify(t testing.TB, base weave.CacheableKVStore) {
	t.Helper()
	for _, op := range i.pre {
		assert.Nil(t, op.Apply(base))
	}
	child := base.CacheWrap()
	for _, op := range i.child {
		assert.Nil(t, op.Apply(child))
	}

	for _, q := range i.queries {
		var (
			it  weave.Iterator
			err error
		)
		if q.reverse {
			it, err = child.ReverseIterator(q.start, q.end)
		} else {
			it, err = child.Iterator(q.start, q.end)
		}
		assert.Nil(t, err)

		for n, want := range q.expected {
			key, value, err := it.Next()
			assert.Nil(t, err)
			if !bytes.Equal(want.Key, key) {
				t.Fatalf("want key %d: %X, got %X", n, want.Key, key)
			}
			assert.Equal(t, want.Value, value)
		}
		if _, _, err := it.Next(); !errors.ErrIteratorDone.Is(err) {
			t.Fatalf("want ErrIteratorDone, got %+v", err)
		}
		it.Release()
	}
}

func randBytes(length int) []byte {
	res := make([]byte, length)
	if _, err := rand.Read(res); err != nil {
		panic(err)
	}
	return res
}

func randKeys(count, size int) [][]byte {
	res := make([][]byte, count)
	for i := range res {
		res[i] = randBytes(size)
	}
	return res
}

func randModels(count, keySize, valueSize int) []weave.Model {
	models := make([]weave.Model, count)
	for i := range models {
		models[i] = weave.Pair(randBytes(keySize), randBytes(valueSize))
	}
	return models
}

func reverse(models []weave.Model) []weave.Model {
	res := make([]weave.Model, len(models))
	for i, m := range models {
		res[len(models)-1-i] = m
	}
	return res
}

func sortModels(models []weave.Model) []weave.Model {
	res := make([]weave.Model, len(models))
	copy(res, models)
	sort.Slice(res, func(i, j int) bool {
		return bytes.Compare(res[i].Key, res[j].Key) < 0
	})
	return res
}

func setOps(ms ...weave.Model) []Op {
	res := make([]Op, len(ms))
	for i, m := range ms {
		res[i] = Op{Kind: SetOp, Key: m.Key, Value: m.Value}
	}
	return res
}

func delOps(ms ...weave.Model) []Op {
	res := make([]Op, len(ms))
	for i, m := range ms {
		res[i] = Op{Kind: DelOp, Key: m.Key}
	}
	return res
}
