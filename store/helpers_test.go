package store

import (
	"crypto/rand"
	"testing"

	"github.com/iov-one/weft/errors"
	"github.com/iov-one/weft/weavetest/assert"
)

// TestSliceIterator makes sure the basic slice iterator works.
func TestSliceIterator(t *testing.T) {
	const size = 10

	ks := randKeys(size, 8)
	vs := randKeys(size, 40)

	models := make([]Model, size)
	for i := 0; i < size; i++ {
		models[i].Key = ks[i]
		models[i].Value = vs[i]
	}

	iter := NewSliceIterator(models)
	for i := 0; i < size; i++ {
		k, v, err := iter.Next()
		assert.Nil(t, err)
		assert.Equal(t, ks[i], k)
		assert.Equal(t, vs[i], v)
	}
	if _, _, err := iter.Next(); !errors.ErrIteratorDone.Is(err) {
		t.Fatalf("want iterator done, got %+v", err)
	}

	it := NewSliceIterator(models)
	it.Release()
	if _, _, err := it.Next(); !errors.ErrIteratorDone.Is(err) {
		t.Fatal("released iterator must be exhausted")
	}
}

func TestNonAtomicBatch(t *testing.T) {
	base := MemStore()
	b := NewNonAtomicBatch(base)
	assert.Nil(t, b.Set([]byte("one"), []byte("1")))
	assert.Nil(t, b.Set([]byte("two"), []byte("2")))
	assert.Nil(t, b.Delete([]byte("one")))

	has, err := base.Has([]byte("two"))
	assert.Nil(t, err)
	assert.Equal(t, false, has)

	assert.Nil(t, b.Write())
	assert.Equal(t, 0, len(b.ShowOps()))

	got, err := base.Get([]byte("two"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("2"), got)
	has, err = base.Has([]byte("one"))
	assert.Nil(t, err)
	assert.Equal(t, false, has)
}

func randKeys(count, length int) [][]byte {
	res := make([][]byte, count)
	for i := 0; i < count; i++ {
		res[i] = randBytes(length)
	}
	return res
}

func randBytes(length int) []byte {
	res := make([]byte, length)
	rand.Read(res)
	return res
}
