package app

import (
	"encoding/json"
	"io/ioutil"
	"time"

	"github.com/iov-one/weft"
	"github.com/iov-one/weft/errors"
)

// Genesis file format. AppState is keyed by extension name and each
// extension reads its own section with weft.Options.ReadOptions.
type Genesis struct {
	ChainID     string       `json:"chain_id"`
	GenesisTime time.Time    `json:"genesis_time"`
	AppState    weft.Options `json:"app_state"`
}

// LoadGenesis tries to load a given file into a Genesis struct
func LoadGenesis(filePath string) (Genesis, error) {
	var gen Genesis

	bytes, err := ioutil.ReadFile(filePath)
	if err != nil {
		return gen, errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := json.Unmarshal(bytes, &gen); err != nil {
		return gen, errors.Wrapf(errors.ErrInput, "unmarshaling genesis file: %s", err)
	}
	return gen, nil
}

// SaveGenesis writes the genesis as indented JSON to filePath.
func SaveGenesis(filePath string, gen Genesis) error {
	raw, err := json.MarshalIndent(gen, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := ioutil.WriteFile(filePath, raw, 0600); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// ChainInitializers lets you initialize many extensions with one function
func ChainInitializers(inits ...weft.Initializer) weft.Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []weft.Initializer
}

// FromGenesis will pass opts to all Initializers in the list,
// aborting at the first error.
func (c chainInitializer) FromGenesis(opts weft.Options, info weft.BlockInfo, kv weft.KVStore) error {
	for _, i := range c.inits {
		if err := i.FromGenesis(opts, info, kv); err != nil {
			return err
		}
	}
	return nil
}

//------- storing chain state ---------

var (
	chainIDKey = []byte("_i:chain_id")
	heightKey  = []byte("_i:height")
)

// loadChainID returns the chain id stored if any
func loadChainID(kv weft.ReadOnlyKVStore) (string, error) {
	v, err := kv.Get(chainIDKey)
	if err != nil {
		return "", errors.Wrap(err, "load chain id")
	}
	return string(v), nil
}

// saveChainID stores a chain id in the kv store.
// Returns error if already set, or invalid name
func saveChainID(kv weft.KVStore, chainID string) error {
	if !weft.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %q", chainID)
	}
	existing, err := kv.Get(chainIDKey)
	if err != nil {
		return errors.Wrap(err, "load chain id")
	}
	if existing != nil {
		return errors.Wrap(errors.ErrState, "chain id already set")
	}
	return kv.Set(chainIDKey, []byte(chainID))
}
