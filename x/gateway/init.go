package gateway

import (
	"github.com/iov-one/weft"
	"github.com/iov-one/weft/errors"
	"github.com/iov-one/weft/gconf"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ weft.Initializer = (*Initializer)(nil)

// FromGenesis stores the gateway configuration and binds the initial
// verifier set at the configured epoch. Unless set, the last rotation
// time is the genesis time.
func (*Initializer) FromGenesis(opts weft.Options, info weft.BlockInfo, db weft.KVStore) error {
	var conf Config
	if err := gconf.InitConfig(db, opts, configPkg, &conf); err != nil {
		return errors.Wrap(err, "init config")
	}

	var genesis struct {
		InitialVerifierSet *VerifierSet `json:"initial_verifier_set"`
	}
	if err := opts.ReadOptions("gateway", &genesis); err != nil {
		return errors.Wrap(err, "read gateway genesis")
	}
	if genesis.InitialVerifierSet == nil {
		return errors.Wrap(errors.ErrEmpty, "initial verifier set")
	}
	setHash, err := genesis.InitialVerifierSet.Hash(conf.DomainSeparator)
	if err != nil {
		return errors.Wrap(err, "initial verifier set")
	}
	ctrl := NewController()
	if err := ctrl.Bind(db, setHash, conf.CurrentEpoch); err != nil {
		return err
	}
	// Binding the initial set counts as a rotation.
	if conf.LastRotationTimestamp == 0 {
		conf.LastRotationTimestamp = int64(info.UnixTime())
		if err := ctrl.saveConfig(db, &conf); err != nil {
			return err
		}
	}
	info.Logger().Info("gateway initialized",
		"verifier_set", setHash.String(),
		"epoch", conf.CurrentEpoch)
	return nil
}
