package gateway

import (
	"github.com/iov-one/weft"
	"github.com/iov-one/weft/errors"
	"github.com/iov-one/weft/gconf"
	"github.com/iov-one/weft/orm"
)

// Controller implements the gateway operations on top of a key value
// store. It keeps no state of its own. The caller is expected to run each
// operation on a cache wrap that is written only when the operation
// succeeds.
type Controller struct {
	trackers orm.ModelBucket
	sessions orm.ModelBucket
	messages orm.ModelBucket
}

// NewController returns a controller using the default gateway buckets.
func NewController() *Controller {
	return &Controller{
		trackers: NewVerifierSetTrackerBucket(),
		sessions: NewVerificationSessionBucket(),
		messages: NewIncomingMessageBucket(),
	}
}

// Config loads the gateway configuration.
func (c *Controller) Config(db weft.ReadOnlyKVStore) (*Config, error) {
	var conf Config
	if err := gconf.Load(db, configPkg, &conf); err != nil {
		return nil, errors.Wrap(err, "load gateway configuration")
	}
	return &conf, nil
}

func (c *Controller) saveConfig(db weft.KVStore, conf *Config) error {
	if err := gconf.Save(db, configPkg, conf); err != nil {
		return errors.Wrap(err, "save gateway configuration")
	}
	return nil
}
