package utils

import (
	"context"

	"github.com/iov-one/weft"
	"github.com/iov-one/weft/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors
type Recovery struct{}

var _ weft.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx context.Context, info weft.BlockInfo, store weft.KVStore, tx weft.Tx, next weft.Checker) (_ *weft.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, info, store, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx context.Context, info weft.BlockInfo, store weft.KVStore, tx weft.Tx, next weft.Deliverer) (_ *weft.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, info, store, tx)
}
