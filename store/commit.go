package store

import (
	"github.com/iov-one/weft/errors"
	dbm "github.com/tendermint/tm-db"
)

// CommitStore is the durable root of the gateway state. All changes are
// expected to go through a CacheWrap so that a single Write persists every
// mutation of a unit of work atomically.
type CommitStore struct {
	db dbm.DB
}

var _ CommitKVStore = (*CommitStore)(nil)

// NewCommitStore wraps an already opened database.
func NewCommitStore(db dbm.DB) *CommitStore {
	return &CommitStore{db: db}
}

// OpenCommitStore opens (or creates) a goleveldb database with given name
// inside of the dir directory.
func OpenCommitStore(dir, name string) (*CommitStore, error) {
	db, err := dbm.NewGoLevelDB(name, dir)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "open %s/%s: %s", dir, name, err)
	}
	return NewCommitStore(db), nil
}

// MemCommitStore returns a non persistent store backed by an in-memory
// database.
func MemCommitStore() *CommitStore {
	return NewCommitStore(dbm.NewMemDB())
}

func (s *CommitStore) Get(key []byte) ([]byte, error) {
	val, err := s.db.Get(key)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return val, nil
}

func (s *CommitStore) Has(key []byte) (bool, error) {
	ok, err := s.db.Has(key)
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return ok, nil
}

func (s *CommitStore) Set(key, value []byte) error {
	if err := s.db.SetSync(key, value); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

func (s *CommitStore) Delete(key []byte) error {
	if err := s.db.DeleteSync(key); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

func (s *CommitStore) Iterator(start, end []byte) (Iterator, error) {
	it, err := s.db.Iterator(start, end)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return &dbIterator{it: it}, nil
}

func (s *CommitStore) ReverseIterator(start, end []byte) (Iterator, error) {
	it, err := s.db.ReverseIterator(start, end)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return &dbIterator{it: it}, nil
}

// NewBatch returns an atomic batch. Written data is synced to disk.
func (s *CommitStore) NewBatch() Batch {
	return &dbBatch{b: s.db.NewBatch()}
}

// CacheWrap returns a cache that is written to the database in a single
// atomic batch.
func (s *CommitStore) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(s, s.NewBatch(), nil)
}

// Close releases the database.
func (s *CommitStore) Close() error {
	if err := s.db.Close(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

type dbBatch struct {
	b      dbm.Batch
	closed bool
}

func (b *dbBatch) Set(key, value []byte) error {
	if err := b.b.Set(key, value); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

func (b *dbBatch) Delete(key []byte) error {
	if err := b.b.Delete(key); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

func (b *dbBatch) Write() error {
	defer b.Close()
	if err := b.b.WriteSync(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// Close releases the batch without writing it. It is safe to call more
// than once.
func (b *dbBatch) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	if err := b.b.Close(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// dbIterator adapts the database cursor to the Iterator interface.
type dbIterator struct {
	it dbm.Iterator
}

func (i *dbIterator) Next() (key, value []byte, err error) {
	if !i.it.Valid() {
		if err := i.it.Error(); err != nil {
			return nil, nil, errors.Wrap(errors.ErrDatabase, err.Error())
		}
		return nil, nil, errors.Wrap(errors.ErrIteratorDone, "database iterator")
	}
	key, value = i.it.Key(), i.it.Value()
	i.it.Next()
	return key, value, nil
}

func (i *dbIterator) Release() {
	i.it.Close()
}
