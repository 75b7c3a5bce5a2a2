package server

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/iov-one/weft"
	"github.com/iov-one/weft/app"
	"github.com/iov-one/weft/errors"
	"github.com/iov-one/weft/store"
	"github.com/iov-one/weft/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

// testApp opens a gateway over the data directory that accepts every
// transaction.
func testApp(home string, logger log.Logger) (*app.Gateway, error) {
	kv, err := store.OpenCommitStore(filepath.Dir(DataFile(home)), "gateway")
	if err != nil {
		return nil, err
	}
	handler := &weavetest.Handler{DeliverResult: weft.DeliverResult{Data: []byte("ok")}}
	return app.NewGateway(kv, handler, logger)
}

func testTxDecoder(raw []byte) (weft.Tx, error) {
	if len(raw) == 0 {
		return nil, errors.Wrap(errors.ErrEmpty, "tx")
	}
	return &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/msg", Serialized: raw}}, nil
}

func TestInitChain(t *testing.T) {
	home := setupViper(t)
	logger := log.NewNopLogger()

	initChain := InitChainCmd(testApp, demoInitializer{}, logger)
	err := initChain.RunE(initChain, nil)
	assert.Error(t, err, "genesis file is required")

	require.NoError(t, InitCmd(testGenOptions, logger).RunE(nil, nil))
	require.NoError(t, initChain.RunE(initChain, nil))
	// A second run keeps the initialized store.
	require.NoError(t, initChain.RunE(initChain, nil))

	gw, err := testApp(home, logger)
	require.NoError(t, err)
	assert.Equal(t, "test-chain-LgVOZ0", gw.ChainID())
	err = gw.View(func(db weft.ReadOnlyKVStore) error {
		val, err := db.Get([]byte("demo"))
		assert.Equal(t, []byte{42}, val)
		return err
	})
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	// The store cannot be reused for another chain.
	gen, err := app.LoadGenesis(GenesisFile(home))
	require.NoError(t, err)
	gen.ChainID = "another-chain"
	require.NoError(t, app.SaveGenesis(GenesisFile(home), gen))
	err = initChain.RunE(initChain, nil)
	assert.True(t, errors.ErrState.Is(err))
}

func TestDeliver(t *testing.T) {
	setupViper(t)
	logger := log.NewNopLogger()

	txFile := filepath.Join(t.TempDir(), "tx.bin")
	require.NoError(t, ioutil.WriteFile(txFile, []byte("payload"), 0600))

	deliver := DeliverCmd(testApp, testTxDecoder, logger)
	var out bytes.Buffer
	deliver.SetOut(&out)

	// Nothing is delivered before the chain is initialized.
	err := deliver.RunE(deliver, []string{txFile})
	assert.True(t, errors.ErrState.Is(err))

	require.NoError(t, InitCmd(testGenOptions, logger).RunE(nil, nil))
	initChain := InitChainCmd(testApp, demoInitializer{}, logger)
	require.NoError(t, initChain.RunE(initChain, nil))

	require.NoError(t, deliver.RunE(deliver, []string{txFile}))
	var res struct {
		Height int64  `json:"height"`
		Data   []byte `json:"data"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, int64(1), res.Height)
	assert.Equal(t, []byte("ok"), res.Data)

	empty := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, ioutil.WriteFile(empty, nil, 0600))
	err = deliver.RunE(deliver, []string{empty})
	assert.True(t, errors.ErrEmpty.Is(err))
}
