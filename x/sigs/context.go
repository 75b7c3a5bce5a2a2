package sigs

import (
	"context"

	"github.com/iov-one/weft"
	"github.com/iov-one/weft/x"
)

type contextKey int // local to the sigs module

const (
	contextKeySigners contextKey = iota
)

// withSigners is a private method, as only this module
// can add a signer
func withSigners(ctx context.Context, signers []weft.Condition) context.Context {
	return context.WithValue(ctx, contextKeySigners, signers)
}

// Authenticator exposes the signers verified by the Decorator.
type Authenticator struct{}

var _ x.Authenticator = Authenticator{}

// GetConditions returns who signed the current Context.
// May be empty
func (Authenticator) GetConditions(ctx context.Context) []weft.Condition {
	// (val, ok) form to return nil instead of panic if unset
	val, _ := ctx.Value(contextKeySigners).([]weft.Condition)
	return val
}

// HasAddress returns true if the address signed the current Context.
func (a Authenticator) HasAddress(ctx context.Context, addr weft.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
