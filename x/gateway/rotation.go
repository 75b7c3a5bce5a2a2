package gateway

import (
	"math"

	"github.com/iov-one/weft"
	"github.com/iov-one/weft/errors"
	"github.com/iov-one/weft/merkle"
)

// RotateSigners activates a new verifier set. The rotation payload must be
// signed by a quorum of a trusted verifier set.
//
// Unless the operator co-signed the rotation, the signing set must be the
// latest one and the minimum rotation delay must have elapsed since the
// previous rotation.
//
// The new epoch is returned.
func (c *Controller) RotateSigners(
	db weft.KVStore,
	now weft.UnixTime,
	root merkle.Hash,
	newSet merkle.Hash,
	operatorSigned bool,
) (uint64, error) {
	conf, err := c.Config(db)
	if err != nil {
		return 0, err
	}
	session, err := c.sessionFor(db, root, RotateSigners)
	if err != nil {
		return 0, err
	}
	if !session.IsValid() {
		return 0, errors.Wrapf(ErrThresholdNotReached, "session for %s", root)
	}
	signingSet := session.SigningSet()
	expected, err := RotationPayloadRoot(newSet, signingSet, conf.DomainSeparator)
	if err != nil {
		return 0, err
	}
	if expected != root {
		return 0, errors.Wrap(ErrInvalidMerkleProof, "payload root does not commit to the new verifier set")
	}
	if newSet == signingSet {
		return 0, errors.Wrap(ErrDuplicateBinding, "rotation to the signing verifier set")
	}
	epoch, err := c.Epoch(db, signingSet)
	if err != nil {
		return 0, err
	}
	if err := AssertEpochValid(conf, epoch); err != nil {
		return 0, err
	}

	if !operatorSigned {
		if epoch != conf.CurrentEpoch {
			return 0, errors.Wrapf(ErrNotLatestVerifierSet, "signed at epoch %d, current %d", epoch, conf.CurrentEpoch)
		}
		if int64(now) < conf.LastRotationTimestamp {
			return 0, errors.Wrap(ErrArithmeticOverflow, "block time before last rotation")
		}
		if int64(now)-conf.LastRotationTimestamp < conf.MinimumRotationDelay {
			return 0, errors.Wrapf(ErrRotationTooSoon, "last rotation at %d, delay %d",
				conf.LastRotationTimestamp, conf.MinimumRotationDelay)
		}
	}

	if conf.CurrentEpoch == math.MaxUint64 {
		return 0, errors.Wrap(ErrArithmeticOverflow, "epoch")
	}
	conf.CurrentEpoch++
	conf.LastRotationTimestamp = int64(now)
	if err := c.Bind(db, newSet, conf.CurrentEpoch); err != nil {
		return 0, err
	}
	if err := c.saveConfig(db, conf); err != nil {
		return 0, err
	}
	return conf.CurrentEpoch, nil
}

// TransferOperatorship replaces the gateway operator.
func (c *Controller) TransferOperatorship(db weft.KVStore, newOperator weft.Address) error {
	if err := newOperator.Validate(); err != nil {
		return errors.Wrap(err, "new operator")
	}
	conf, err := c.Config(db)
	if err != nil {
		return err
	}
	conf.Operator = newOperator
	return c.saveConfig(db, conf)
}
