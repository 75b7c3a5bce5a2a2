//nolint
package store

import "github.com/iov-one/weft"

// Move references for all storage types into this package
// for shorter names everywhere

type (
	ReadOnlyKVStore  = weft.ReadOnlyKVStore
	SetDeleter       = weft.SetDeleter
	KVStore          = weft.KVStore
	Batch            = weft.Batch
	Iterator         = weft.Iterator
	CacheableKVStore = weft.CacheableKVStore
	KVCacheWrap      = weft.KVCacheWrap
	CommitKVStore    = weft.CommitKVStore
	Model            = weft.Model
)

// Pair constructs a model from a key-value pair
func Pair(key, value []byte) Model {
	return Model{
		Key:   key,
		Value: value,
	}
}
