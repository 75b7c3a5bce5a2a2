package gateway

import (
	"context"

	"github.com/iov-one/weft"
	"github.com/iov-one/weft/errors"
	"github.com/iov-one/weft/x"
)

type contextKey int // local to the gateway module

const (
	contextKeyCaller contextKey = iota
)

// withCaller is a private method, as only this module can grant the caller
// condition of a message.
func withCaller(ctx context.Context, caller weft.Condition) context.Context {
	return context.WithValue(ctx, contextKeyCaller, caller)
}

// CallerAuthenticator exposes the caller condition granted by the
// CallerDecorator.
type CallerAuthenticator struct{}

var _ x.Authenticator = CallerAuthenticator{}

// GetConditions returns the granted caller condition, if any.
func (CallerAuthenticator) GetConditions(ctx context.Context) []weft.Condition {
	// (val, ok) form to return nil instead of panic if unset
	val, _ := ctx.Value(contextKeyCaller).(weft.Condition)
	if val == nil {
		return nil
	}
	return []weft.Condition{val}
}

// HasAddress returns true iff this address is in GetConditions
func (a CallerAuthenticator) HasAddress(ctx context.Context, addr weft.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}

// CallerDecorator grants the caller condition of an approved message to a
// transaction authenticated by the message destination. The destination
// address must be among the addresses known to auth, usually the verified
// signers of the transaction.
type CallerDecorator struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ weft.Decorator = CallerDecorator{}

// NewCallerDecorator returns a decorator granting caller conditions to
// destinations authenticated by auth.
func NewCallerDecorator(auth x.Authenticator) CallerDecorator {
	return CallerDecorator{auth: auth, ctrl: NewController()}
}

func (d CallerDecorator) Check(ctx context.Context, info weft.BlockInfo, store weft.KVStore, tx weft.Tx, next weft.Checker) (*weft.CheckResult, error) {
	ctx, err := d.withCaller(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	return next.Check(ctx, info, store, tx)
}

func (d CallerDecorator) Deliver(ctx context.Context, info weft.BlockInfo, store weft.KVStore, tx weft.Tx, next weft.Deliverer) (*weft.DeliverResult, error) {
	ctx, err := d.withCaller(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, info, store, tx)
}

// withCaller always clears a previously granted condition. A message that
// is not approved or a destination that is not an address gets no
// condition, and the handler reports the failure.
func (d CallerDecorator) withCaller(ctx context.Context, store weft.KVStore, tx weft.Tx) (context.Context, error) {
	ctx = withCaller(ctx, nil)

	msg, err := tx.GetMsg()
	if err != nil {
		// The router reports a missing message.
		return ctx, nil
	}
	exec, ok := msg.(*ExecuteMessageMsg)
	if !ok {
		return ctx, nil
	}
	incoming, err := d.ctrl.Message(store, exec.CommandID)
	switch {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		return ctx, nil
	default:
		return nil, err
	}
	dest, err := weft.ParseAddress(incoming.DestinationAddress)
	if err != nil || dest == nil {
		return ctx, nil
	}
	if !d.auth.HasAddress(ctx, dest) {
		return ctx, nil
	}
	return withCaller(ctx, CallerCondition(incoming.CommandID, incoming.DestinationAddress)), nil
}
