package gateway

import (
	"github.com/iov-one/weft"
	"github.com/iov-one/weft/errors"
	"github.com/iov-one/weft/merkle"
)

// AssertEpochValid returns nil if a verifier set bound at given epoch is
// still trusted. A set stays trusted for the retention window number of
// rotations after it was superseded.
func AssertEpochValid(conf *Config, epoch uint64) error {
	if epoch > conf.CurrentEpoch {
		return errors.Wrapf(ErrArithmeticOverflow, "epoch %d is ahead of current epoch %d", epoch, conf.CurrentEpoch)
	}
	elapsed := conf.CurrentEpoch - epoch
	if elapsed >= conf.PreviousVerifierSetRetention {
		return errors.Wrapf(ErrVerifierSetTooOld, "epoch %d, current %d, retention %d",
			epoch, conf.CurrentEpoch, conf.PreviousVerifierSetRetention)
	}
	return nil
}

// Epoch returns the epoch the verifier set was bound to.
func (c *Controller) Epoch(db weft.ReadOnlyKVStore, setHash merkle.Hash) (uint64, error) {
	var t VerifierSetTracker
	switch err := c.trackers.One(db, setHash[:], &t); {
	case err == nil:
		return t.Epoch, nil
	case errors.ErrNotFound.Is(err):
		return 0, errors.Wrapf(ErrUnknownVerifierSet, "verifier set %s", setHash)
	default:
		return 0, errors.Wrap(err, "load verifier set tracker")
	}
}

// Bind records that the verifier set became active at given epoch. A hash
// can be bound only once.
func (c *Controller) Bind(db weft.KVStore, setHash merkle.Hash, epoch uint64) error {
	t := &VerifierSetTracker{Epoch: epoch, VerifierSetHash: setHash.Bytes()}
	switch err := c.trackers.Create(db, setHash[:], t); {
	case err == nil:
		return nil
	case errors.ErrDuplicate.Is(err):
		return errors.Wrapf(ErrDuplicateBinding, "verifier set %s", setHash)
	default:
		return errors.Wrap(err, "bind verifier set")
	}
}

// Trackers returns all bound verifier sets.
func (c *Controller) Trackers(db weft.ReadOnlyKVStore) ([]*VerifierSetTracker, error) {
	it, err := c.trackers.Bucket().Iterate(db)
	if err != nil {
		return nil, errors.Wrap(err, "iterate trackers")
	}
	defer it.Release()

	var trackers []*VerifierSetTracker
	for {
		_, raw, err := it.Next()
		switch {
		case err == nil:
		case errors.ErrIteratorDone.Is(err):
			return trackers, nil
		default:
			return nil, errors.Wrap(err, "iterate trackers")
		}
		var t VerifierSetTracker
		if err := t.Unmarshal(raw); err != nil {
			return nil, err
		}
		trackers = append(trackers, &t)
	}
}
