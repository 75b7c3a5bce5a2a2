package weavetest

import (
	"context"

	"github.com/iov-one/weft"
)

// Handler implements a mock of weft.Handler
//
// Use this handler in your tests. Set CheckErr or DeliverErr to force error
// response. Each method call is counted.
type Handler struct {
	checkCall   int
	CheckResult weft.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult weft.DeliverResult
	DeliverErr    error
}

var _ weft.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx context.Context, info weft.BlockInfo, db weft.KVStore, tx weft.Tx) (*weft.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx context.Context, info weft.BlockInfo, db weft.KVStore, tx weft.Tx) (*weft.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
