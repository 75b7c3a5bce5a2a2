/*
Package sigs provides basic authentication
middleware to verify the signatures on the transaction,
and maintain nonces for replay protection.

Only conditions of keys that signed the transaction are placed into the
context. Any condition a transaction claims without a signature is ignored.
*/
package sigs

import (
	"context"

	"github.com/iov-one/weft"
	"github.com/iov-one/weft/errors"
)

// Decorator verifies the signatures and adds them to the context
type Decorator struct {
	allowMissingSigs bool
}

var _ weft.Decorator = Decorator{}

// NewDecorator returns a default authentication decorator,
// which appends the chainID before checking the signature,
// and requires at least one signature to be present
func NewDecorator() Decorator {
	return Decorator{
		allowMissingSigs: false,
	}
}

// AllowMissingSigs allows us to pass along items with no signatures
func (d Decorator) AllowMissingSigs() Decorator {
	d.allowMissingSigs = true
	return d
}

// Check verifies signatures before calling down the stack.
func (d Decorator) Check(ctx context.Context, info weft.BlockInfo, store weft.KVStore, tx weft.Tx, next weft.Checker) (*weft.CheckResult, error) {
	ctx, err := d.withVerifiedSigners(ctx, info, store, tx)
	if err != nil {
		return nil, err
	}
	return next.Check(ctx, info, store, tx)
}

// Deliver verifies signatures before calling down the stack.
func (d Decorator) Deliver(ctx context.Context, info weft.BlockInfo, store weft.KVStore, tx weft.Tx, next weft.Deliverer) (*weft.DeliverResult, error) {
	ctx, err := d.withVerifiedSigners(ctx, info, store, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, info, store, tx)
}

// withVerifiedSigners always resets the signers, so that a nested call
// never inherits the signers of its parent.
func (d Decorator) withVerifiedSigners(ctx context.Context, info weft.BlockInfo, store weft.KVStore, tx weft.Tx) (context.Context, error) {
	var signers []weft.Condition
	if stx, ok := tx.(SignedTx); ok {
		var err error
		signers, err = VerifyTxSignatures(store, stx, info.ChainID())
		if err != nil {
			return nil, errors.Wrap(err, "cannot verify signatures")
		}
	}
	if len(signers) == 0 && !d.allowMissingSigs {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return withSigners(ctx, signers), nil
}
