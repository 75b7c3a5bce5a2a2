package app

import (
	"context"
	"encoding/binary"
	"sync"
	"time"

	"github.com/iov-one/weft"
	"github.com/iov-one/weft/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// Gateway is the host that owns the durable store and runs every
// transaction as one atomic unit. A transaction either commits all of its
// writes or none of them.
//
// Transactions are serialized, so each record has a single writer at a time.
// Handlers must still not rely on ordering between different callers.
type Gateway struct {
	mu      sync.Mutex
	store   weft.CommitKVStore
	handler weft.Handler
	logger  log.Logger
	chainID string
	height  int64
}

// NewGateway wraps the store with the given handler stack. The chain id and
// the last height are loaded from the store when it was initialized before.
func NewGateway(store weft.CommitKVStore, handler weft.Handler, logger log.Logger) (*Gateway, error) {
	if logger == nil {
		logger = weft.DefaultLogger
	}
	chainID, err := loadChainID(store)
	if err != nil {
		return nil, err
	}
	height, err := loadHeight(store)
	if err != nil {
		return nil, err
	}
	return &Gateway{
		store:   store,
		handler: handler,
		logger:  logger,
		chainID: chainID,
		height:  height,
	}, nil
}

// ChainID returns the chain id set at genesis, empty before InitChain.
func (g *Gateway) ChainID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.chainID
}

// Height returns the number of transactions committed so far.
func (g *Gateway) Height() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.height
}

// InitChain stores the chain id and runs the initializer over the
// genesis application state. It can be called only once per store.
func (g *Gateway) InitChain(gen Genesis, init weft.Initializer) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.chainID != "" {
		return errors.Wrapf(errors.ErrState, "already initialized as %q", g.chainID)
	}
	info, err := weft.NewBlockInfo(0, gen.GenesisTime, gen.ChainID, g.logger)
	if err != nil {
		return err
	}
	info = info.WithLogInfo("call", "init_chain")

	cache := g.store.CacheWrap()
	if err := saveChainID(cache, gen.ChainID); err != nil {
		cache.Discard()
		return err
	}
	if init != nil {
		if err := init.FromGenesis(gen.AppState, info, cache); err != nil {
			cache.Discard()
			return errors.Wrap(err, "genesis")
		}
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "commit genesis")
	}
	g.chainID = gen.ChainID
	info.Logger().Info("chain initialized", "chain_id", gen.ChainID)
	return nil
}

// Deliver executes the transaction and commits its writes if the handler
// succeeds. On failure nothing is written.
func (g *Gateway) Deliver(ctx context.Context, now time.Time, tx weft.Tx) (*weft.DeliverResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	info, err := g.blockInfo(g.height+1, now)
	if err != nil {
		return nil, err
	}
	info = info.WithLogInfo("call", "deliver_tx")

	cache := g.store.CacheWrap()
	res, err := g.handler.Deliver(ctx, info, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := saveHeight(cache, info.Height()); err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "commit")
	}
	g.height = info.Height()
	return res, nil
}

// Check runs the transaction against the current state without
// committing anything.
func (g *Gateway) Check(ctx context.Context, now time.Time, tx weft.Tx) (*weft.CheckResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	info, err := g.blockInfo(g.height, now)
	if err != nil {
		return nil, err
	}
	info = info.WithLogInfo("call", "check_tx")

	cache := g.store.CacheWrap()
	defer cache.Discard()
	return g.handler.Check(ctx, info, cache, tx)
}

// View gives fn read access to the committed state. Writes are blocked
// until fn returns.
func (g *Gateway) View(fn func(db weft.ReadOnlyKVStore) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(g.store)
}

// Close releases the underlying store.
func (g *Gateway) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.store.Close()
}

func (g *Gateway) blockInfo(height int64, now time.Time) (weft.BlockInfo, error) {
	if g.chainID == "" {
		return weft.BlockInfo{}, errors.Wrap(errors.ErrState, "chain not initialized")
	}
	return weft.NewBlockInfo(height, now, g.chainID, g.logger)
}

func loadHeight(kv weft.ReadOnlyKVStore) (int64, error) {
	raw, err := kv.Get(heightKey)
	if err != nil {
		return 0, errors.Wrap(err, "load height")
	}
	if raw == nil {
		return 0, nil
	}
	if len(raw) != 8 {
		return 0, errors.Wrapf(errors.ErrState, "height of %d bytes", len(raw))
	}
	return int64(binary.BigEndian.Uint64(raw)), nil
}

func saveHeight(kv weft.KVStore, height int64) error {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(height))
	return kv.Set(heightKey, raw)
}
