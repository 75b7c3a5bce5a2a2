package sigs

import (
	"math"

	"github.com/iov-one/weft/errors"
	"github.com/iov-one/weft/orm"
)

// BucketName is where we store the sequences of the signers
const BucketName = "sigs"

var _ orm.Model = (*UserData)(nil)

func (u *UserData) Validate() error {
	if u.Sequence < 0 {
		return errors.Wrap(ErrInvalidSequence, "negative")
	}
	return nil
}

// CheckAndIncrementSequence implements check and increment operation.
// If current sequence value is the same as given expected value then it is
// incremented. Otherwise an error is returned.
func (u *UserData) CheckAndIncrementSequence(expected int64) error {
	if u.Sequence != expected {
		return errors.Wrapf(ErrInvalidSequence, "mismatch expected %d, got %d", expected, u.Sequence)
	}
	if u.Sequence == math.MaxInt64 {
		return errors.Wrap(errors.ErrOverflow, "sequence")
	}
	u.Sequence++
	return nil
}

// NewUserBucket returns a bucket of UserData indexed by the signer address.
func NewUserBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &UserData{})
}
