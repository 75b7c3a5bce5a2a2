package orm

import (
	"reflect"

	"github.com/iov-one/weft"
	"github.com/iov-one/weft/errors"
)

// Model is implemented by any entity that can be stored using ModelBucket.
//
// This is the same interface as CloneableData but we want to have a
// dedicated type to distinguish the model from everything else.
type Model interface {
	weft.Persistent
	Validate() error
}

// VersionedModel is a Model that carries a monotonically increasing version.
// The version is used to detect lost updates.
type VersionedModel interface {
	Model
	GetVersion() uint32
	SetVersion(uint32)
}

// ModelBucket is implemented by buckets that operates on Models rather than
// Objects.
type ModelBucket interface {
	// One query the database for a single model instance. Lookup is done
	// by the primary index key. Result is loaded into given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	One(db weft.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns nil if a model under given key exists, ErrNotFound
	// otherwise.
	Has(db weft.ReadOnlyKVStore, key []byte) error

	// Put saves given model in the database. The model is validated
	// before storing.
	Put(db weft.KVStore, key []byte, m Model) error

	// Create saves given model in the database only if no model is stored
	// under given key yet. ErrDuplicate is returned otherwise.
	Create(db weft.KVStore, key []byte, m Model) error

	// Swap stores given versioned model only if the version currently
	// stored is equal to the version of the model. On success the version
	// of the model is incremented. ErrConflict is returned if the stored
	// version is different.
	Swap(db weft.KVStore, key []byte, m VersionedModel) error

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db weft.KVStore, key []byte) error

	// Bucket returns the underlying raw bucket.
	Bucket() Bucket
}

// NewModelBucket returns a ModelBucket instance. This implementation relies
// on a bucket instance. Final implementation should operate directly on the
// KVStore instead.
func NewModelBucket(name string, m Model) ModelBucket {
	return &modelBucket{
		b:     NewBucket(name),
		model: reflect.TypeOf(m),
	}
}

type modelBucket struct {
	b     Bucket
	model reflect.Type
}

var _ ModelBucket = (*modelBucket)(nil)

func (mb *modelBucket) One(db weft.ReadOnlyKVStore, key []byte, dest Model) error {
	if reflect.TypeOf(dest) != mb.model {
		return errors.Wrapf(errors.ErrType, "%s bucket stores %s, got %T", mb.b.Name(), mb.model, dest)
	}
	raw, err := mb.b.Get(db, key)
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot unmarshal %T: %s", dest, err)
	}
	return nil
}

func (mb *modelBucket) Has(db weft.ReadOnlyKVStore, key []byte) error {
	ok, err := mb.b.Has(db, key)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "%s", mb.b.Name())
	}
	return nil
}

func (mb *modelBucket) Put(db weft.KVStore, key []byte, m Model) error {
	if reflect.TypeOf(m) != mb.model {
		return errors.Wrapf(errors.ErrType, "%s bucket stores %s, got %T", mb.b.Name(), mb.model, m)
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot marshal %T: %s", m, err)
	}
	if err := mb.b.Save(db, key, raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

func (mb *modelBucket) Create(db weft.KVStore, key []byte, m Model) error {
	switch err := mb.Has(db, key); {
	case err == nil:
		return errors.Wrapf(errors.ErrDuplicate, "%s %X", mb.b.Name(), key)
	case !errors.ErrNotFound.Is(err):
		return err
	}
	return mb.Put(db, key, m)
}

func (mb *modelBucket) Swap(db weft.KVStore, key []byte, m VersionedModel) error {
	stored, ok := reflect.New(mb.model.Elem()).Interface().(VersionedModel)
	if !ok {
		return errors.Wrapf(errors.ErrType, "%s does not support versioning", mb.model)
	}
	if err := mb.One(db, key, stored); err != nil {
		return err
	}
	if stored.GetVersion() != m.GetVersion() {
		return errors.Wrapf(errors.ErrConflict, "%s version %d, stored %d",
			mb.b.Name(), m.GetVersion(), stored.GetVersion())
	}
	m.SetVersion(m.GetVersion() + 1)
	if err := mb.Put(db, key, m); err != nil {
		m.SetVersion(m.GetVersion() - 1)
		return err
	}
	return nil
}

func (mb *modelBucket) Delete(db weft.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	return mb.b.Delete(db, key)
}

func (mb *modelBucket) Bucket() Bucket {
	return mb.b
}
