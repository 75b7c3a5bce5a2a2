package x

import (
	"context"

	"github.com/iov-one/weft"
)

// Authenticator extracts the authenticated caller conditions from the
// context. Handlers receive it in their constructor so that the
// authentication source can be replaced, for example by a test double.
type Authenticator interface {
	// GetConditions returns all conditions the caller fulfilled.
	GetConditions(context.Context) []weft.Condition
	// HasAddress checks if any condition matches this address.
	HasAddress(context.Context, weft.Address) bool
}

// MultiAuth chains together many Authenticators into one.
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticator
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetConditions combines the conditions of all Authenticators in order.
func (m MultiAuth) GetConditions(ctx context.Context) []weft.Condition {
	var res []weft.Condition
	for _, impl := range m.impls {
		res = append(res, impl.GetConditions(ctx)...)
	}
	return res
}

// HasAddress returns true iff any Authenticator knows the address.
func (m MultiAuth) HasAddress(ctx context.Context, addr weft.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}
