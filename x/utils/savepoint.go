package utils

import (
	"context"

	"github.com/iov-one/weft"
	"github.com/iov-one/weft/errors"
)

// Savepoint will isolate all data inside of the call,
// and commit/rollback to savepoint based on if error
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ weft.Decorator = Savepoint{}

// NewSavepoint creates a Savepoint decorator,
// but you must call OnCheck/OnDeliver so it will be triggered
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// OnCheck returns a savepoint that will trigger on Check
func (s Savepoint) OnCheck() Savepoint {
	return Savepoint{
		onCheck:   true,
		onDeliver: s.onDeliver,
	}
}

// OnDeliver returns a savepoint that will trigger on Deliver
func (s Savepoint) OnDeliver() Savepoint {
	return Savepoint{
		onCheck:   s.onCheck,
		onDeliver: true,
	}
}

// Check will optionally set a checkpoint
func (s Savepoint) Check(ctx context.Context, info weft.BlockInfo, store weft.KVStore, tx weft.Tx, next weft.Checker) (*weft.CheckResult, error) {
	if !s.onCheck {
		return next.Check(ctx, info, store, tx)
	}

	cstore, ok := store.(weft.CacheableKVStore)
	if !ok {
		return next.Check(ctx, info, store, tx)
	}

	cache := cstore.CacheWrap()
	if res, err := next.Check(ctx, info, cache, tx); err != nil {
		cache.Discard()
		return nil, err
	} else if werr := cache.Write(); werr != nil {
		return nil, errors.Wrap(werr, "writing savepoint")
	} else {
		return res, nil
	}
}

// Deliver will optionally set a checkpoint
func (s Savepoint) Deliver(ctx context.Context, info weft.BlockInfo, store weft.KVStore, tx weft.Tx, next weft.Deliverer) (*weft.DeliverResult, error) {
	if !s.onDeliver {
		return next.Deliver(ctx, info, store, tx)
	}

	cstore, ok := store.(weft.CacheableKVStore)
	if !ok {
		return next.Deliver(ctx, info, store, tx)
	}

	cache := cstore.CacheWrap()
	if res, err := next.Deliver(ctx, info, cache, tx); err != nil {
		cache.Discard()
		return nil, err
	} else if werr := cache.Write(); werr != nil {
		return nil, errors.Wrap(werr, "writing savepoint")
	} else {
		return res, nil
	}
}
