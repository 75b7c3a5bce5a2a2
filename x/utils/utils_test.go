package utils

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/iov-one/weft"
	"github.com/iov-one/weft/errors"
	"github.com/iov-one/weft/store"
	"github.com/iov-one/weft/weavetest"
	"github.com/iov-one/weft/weavetest/assert"
	"github.com/tendermint/tendermint/libs/log"
)

func testInfo(t testing.TB, logger log.Logger) weft.BlockInfo {
	t.Helper()
	info, err := weft.NewBlockInfo(5, time.Unix(1000, 0), "test-chain", logger)
	assert.Nil(t, err)
	return info
}

func TestRecovery(t *testing.T) {
	var h panicHandler
	r := NewRecovery()

	ctx := context.Background()
	info := testInfo(t, nil)
	s := store.MemStore()

	// Panic handler panics. Test the test tool.
	assert.Panics(t, func() { h.Check(ctx, info, s, nil) })
	assert.Panics(t, func() { h.Deliver(ctx, info, s, nil) })

	// Recovery wrapped handler returns an error.
	_, err := r.Check(ctx, info, s, nil, h)
	assert.IsErr(t, errors.ErrPanic, err)

	_, err = r.Deliver(ctx, info, s, nil, h)
	assert.IsErr(t, errors.ErrPanic, err)
}

func TestSavepoint(t *testing.T) {
	// always write ok, ov before calling functions
	ok, ov := []byte("demo"), []byte("data")
	// some key, value to try to write
	nk, nv := []byte{1, 2, 3}, []byte{4, 5, 6}
	// a default error if desired
	derr := fmt.Errorf("something went wrong")

	cases := map[string]struct {
		save    weft.Decorator
		handler weft.Handler
		check   bool
		wantErr bool
		written [][]byte
		missing [][]byte
	}{
		"savepoint deactivated, returns error, both written": {
			save:    NewSavepoint(),
			handler: writeHandler{key: nk, value: nv, err: derr},
			check:   true,
			wantErr: true,
			written: [][]byte{ok, nk},
		},
		"savepoint activated, returns error, one written": {
			save:    NewSavepoint().OnCheck(),
			handler: writeHandler{key: nk, value: nv, err: derr},
			check:   true,
			wantErr: true,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"savepoint activated for deliver, returns error, one written": {
			save:    NewSavepoint().OnDeliver(),
			handler: writeHandler{key: nk, value: nv, err: derr},
			wantErr: true,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"savepoint check doesn't affect deliver": {
			save:    NewSavepoint().OnCheck(),
			handler: writeHandler{key: nk, value: nv, err: derr},
			wantErr: true,
			written: [][]byte{ok, nk},
		},
		"savepoint writes on success": {
			save:    NewSavepoint().OnDeliver(),
			handler: writeHandler{key: nk, value: nv},
			written: [][]byte{ok, nk},
		},
		"panics are recovered and discarded": {
			save:    NewSavepoint().OnDeliver(),
			handler: weavetest.Decorate(panicHandler{}, NewRecovery()),
			wantErr: true,
			written: [][]byte{ok},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			info := testInfo(t, nil)
			kv := store.MemStore()
			assert.Nil(t, kv.Set(ok, ov))

			var err error
			if tc.check {
				_, err = tc.save.Check(ctx, info, kv, nil, tc.handler)
			} else {
				_, err = tc.save.Deliver(ctx, info, kv, nil, tc.handler)
			}
			if tc.wantErr != (err != nil) {
				t.Fatalf("unexpected error state: %v", err)
			}
			for _, k := range tc.written {
				has, err := kv.Has(k)
				assert.Nil(t, err)
				assert.Equal(t, true, has)
			}
			for _, k := range tc.missing {
				has, err := kv.Has(k)
				assert.Nil(t, err)
				assert.Equal(t, false, has)
			}
		})
	}
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewTMLogger(log.NewSyncWriter(&buf))
	info := testInfo(t, logger)
	tx := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "gateway/approve_message"}}

	h := &weavetest.Handler{DeliverResult: weft.DeliverResult{Log: "approved"}}
	_, err := NewLogging().Deliver(context.Background(), info, store.MemStore(), tx, h)
	assert.Nil(t, err)

	out := buf.String()
	if !strings.Contains(out, "approved") || !strings.Contains(out, "gateway/approve_message") {
		t.Fatalf("unexpected log output: %q", out)
	}

	buf.Reset()
	h.DeliverErr = errors.ErrUnauthorized
	_, err = NewLogging().Deliver(context.Background(), info, store.MemStore(), tx, h)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	if !strings.Contains(buf.String(), "unauthorized") {
		t.Fatalf("error not logged: %q", buf.String())
	}
}

type panicHandler struct{}

var _ weft.Handler = panicHandler{}

func (p panicHandler) Check(ctx context.Context, info weft.BlockInfo, store weft.KVStore, tx weft.Tx) (*weft.CheckResult, error) {
	panic("check panic")
}

func (p panicHandler) Deliver(ctx context.Context, info weft.BlockInfo, store weft.KVStore, tx weft.Tx) (*weft.DeliverResult, error) {
	panic("deliver panic")
}

// writeHandler writes the key, value pair and returns the error (may be nil)
type writeHandler struct {
	key   []byte
	value []byte
	err   error
}

func (h writeHandler) Check(ctx context.Context, info weft.BlockInfo, store weft.KVStore, tx weft.Tx) (*weft.CheckResult, error) {
	if err := store.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &weft.CheckResult{}, h.err
}

func (h writeHandler) Deliver(ctx context.Context, info weft.BlockInfo, store weft.KVStore, tx weft.Tx) (*weft.DeliverResult, error) {
	if err := store.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &weft.DeliverResult{}, h.err
}
