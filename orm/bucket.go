package orm

import (
	"fmt"
	"regexp"

	"github.com/iov-one/weft"
	"github.com/iov-one/weft/errors"
)

var (
	isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString
)

// Bucket is a prefixed subspace of the DB.
//
// This is a generic building block that should generally
// be embedded in a type-safe wrapper to ensure all data
// is the same type.
type Bucket struct {
	name   string
	prefix []byte
}

// NewBucket creates a bucket to store data
func NewBucket(name string) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}

	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
	}
}

// Name returns the name of the bucket.
func (b Bucket) Name() string {
	return b.name
}

// DBKey is the full key we store in the db, including prefix
// We copy into a new array rather than use append, as we don't
// want consequetive calls to overwrite the same byte array.
func (b Bucket) DBKey(key []byte) []byte {
	l := len(b.prefix)
	out := make([]byte, l+len(key))
	copy(out, b.prefix)
	copy(out[l:], key)
	return out
}

// Get returns the raw value stored under given key, or nil.
func (b Bucket) Get(db weft.ReadOnlyKVStore, key []byte) ([]byte, error) {
	raw, err := db.Get(b.DBKey(key))
	if err != nil {
		return nil, errors.Wrapf(err, "get %s", b.name)
	}
	return raw, nil
}

// Has returns true if a value is stored under given key.
func (b Bucket) Has(db weft.ReadOnlyKVStore, key []byte) (bool, error) {
	ok, err := db.Has(b.DBKey(key))
	if err != nil {
		return false, errors.Wrapf(err, "has %s", b.name)
	}
	return ok, nil
}

// Save writes the raw value under given key.
func (b Bucket) Save(db weft.KVStore, key, value []byte) error {
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "key")
	}
	if err := db.Set(b.DBKey(key), value); err != nil {
		return errors.Wrapf(err, "save %s", b.name)
	}
	return nil
}

// Delete removes the value stored under given key.
func (b Bucket) Delete(db weft.KVStore, key []byte) error {
	if err := db.Delete(b.DBKey(key)); err != nil {
		return errors.Wrapf(err, "delete %s", b.name)
	}
	return nil
}

// Iterate returns an iterator over all the bucket entries. Returned keys
// are stripped of the bucket prefix.
func (b Bucket) Iterate(db weft.ReadOnlyKVStore) (weft.Iterator, error) {
	end := make([]byte, len(b.prefix))
	copy(end, b.prefix)
	end[len(end)-1]++
	it, err := db.Iterator(b.prefix, end)
	if err != nil {
		return nil, errors.Wrapf(err, "iterate %s", b.name)
	}
	return &prefixIterator{it: it, cut: len(b.prefix)}, nil
}

type prefixIterator struct {
	it  weft.Iterator
	cut int
}

func (p *prefixIterator) Next() (key, value []byte, err error) {
	key, value, err = p.it.Next()
	if err != nil {
		return nil, nil, err
	}
	return key[p.cut:], value, nil
}

func (p *prefixIterator) Release() {
	p.it.Release()
}
