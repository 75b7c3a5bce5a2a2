package store

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/iov-one/weft/errors"
	"github.com/iov-one/weft/weavetest/assert"
)

// storeSuite runs the same checks against every CacheableKVStore
// implementation.
type storeSuite struct {
	open func() (base CacheableKVStore, cleanup func())
}

func assertGetHas(t testing.TB, kv ReadOnlyKVStore, key, val []byte) {
	t.Helper()
	got, err := kv.Get(key)
	assert.Nil(t, err)
	assert.Equal(t, val, got)
	has, err := kv.Has(key)
	assert.Nil(t, err)
	assert.Equal(t, val != nil, has)
}

// CacheWrap checks that a cache wrap is isolated until written and that a
// discarded wrap leaves no trace.
func (s storeSuite) CacheWrap(t *testing.T) {
	base, cleanup := s.open()
	defer cleanup()

	epoch, root := []byte("epoch"), []byte("root")
	assertGetHas(t, base, epoch, nil)
	assert.Nil(t, base.Set(epoch, []byte{1}))
	assertGetHas(t, base, epoch, []byte{1})

	unit := base.CacheWrap()
	assertGetHas(t, unit, epoch, []byte{1})
	assert.Nil(t, unit.Set(root, []byte("approved")))
	assert.Nil(t, unit.Set(epoch, []byte{2}))
	assertGetHas(t, unit, root, []byte("approved"))
	assertGetHas(t, base, root, nil)
	assertGetHas(t, base, epoch, []byte{1})
	assert.Nil(t, unit.Write())
	assertGetHas(t, base, root, []byte("approved"))
	assertGetHas(t, base, epoch, []byte{2})

	failed := base.CacheWrap()
	assert.Nil(t, failed.Delete(root))
	assert.Nil(t, failed.Set(epoch, []byte{3}))
	failed.Discard()
	assertGetHas(t, base, root, []byte("approved"))
	assertGetHas(t, base, epoch, []byte{2})
}

// Iterators checks that iterating a cache wrap merges its pending writes
// and deletes with the parent content.
func (s storeSuite) Iterators(t *testing.T) {
	key := func(i int) []byte { return []byte(fmt.Sprintf("k%02d", i)) }
	pair := func(i int, v string) Model { return Pair(key(i), []byte(v)) }

	cases := map[string]struct {
		parent []Op
		child  []Op
		start  []byte
		end    []byte
		want   []Model
	}{
		"child only": {
			child: []Op{SetOp(key(2), []byte("b")), SetOp(key(1), []byte("a"))},
			want:  []Model{pair(1, "a"), pair(2, "b")},
		},
		"parent only": {
			parent: []Op{SetOp(key(3), []byte("c")), SetOp(key(1), []byte("a"))},
			want:   []Model{pair(1, "a"), pair(3, "c")},
		},
		"child overrides parent": {
			parent: []Op{SetOp(key(1), []byte("a")), SetOp(key(2), []byte("b"))},
			child:  []Op{SetOp(key(2), []byte("B")), SetOp(key(3), []byte("C"))},
			want:   []Model{pair(1, "a"), pair(2, "B"), pair(3, "C")},
		},
		"child deletes are skipped": {
			parent: []Op{SetOp(key(1), []byte("a")), SetOp(key(2), []byte("b")), SetOp(key(4), []byte("d"))},
			child:  []Op{DelOp(key(1)), DelOp(key(4)), DelOp(key(9))},
			want:   []Model{pair(2, "b")},
		},
		"bounded range": {
			parent: []Op{SetOp(key(1), []byte("a")), SetOp(key(3), []byte("c")), SetOp(key(5), []byte("e"))},
			child:  []Op{SetOp(key(2), []byte("b")), SetOp(key(4), []byte("d"))},
			start:  key(2),
			end:    key(5),
			want:   []Model{pair(2, "b"), pair(3, "c"), pair(4, "d")},
		},
		"empty range": {
			parent: []Op{SetOp(key(1), []byte("a"))},
			child:  []Op{DelOp(key(1))},
			end:    key(1),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			base, cleanup := s.open()
			defer cleanup()
			for _, op := range tc.parent {
				assert.Nil(t, op.Apply(base))
			}
			child := base.CacheWrap()
			for _, op := range tc.child {
				assert.Nil(t, op.Apply(child))
			}

			it, err := child.Iterator(tc.start, tc.end)
			assert.Nil(t, err)
			assertIterates(t, it, tc.want)

			it, err = child.ReverseIterator(tc.start, tc.end)
			assert.Nil(t, err)
			reversed := make([]Model, len(tc.want))
			for i, m := range tc.want {
				reversed[len(tc.want)-1-i] = m
			}
			assertIterates(t, it, reversed)
		})
	}
}

func assertIterates(t testing.TB, it Iterator, want []Model) {
	t.Helper()
	defer it.Release()
	for i, w := range want {
		k, v, err := it.Next()
		assert.Nil(t, err)
		if !bytes.Equal(w.Key, k) {
			t.Fatalf("entry %d: want key %q, got %q", i, w.Key, k)
		}
		assert.Equal(t, w.Value, v)
	}
	if _, _, err := it.Next(); !errors.ErrIteratorDone.Is(err) {
		t.Fatalf("want ErrIteratorDone, got %+v", err)
	}
}
