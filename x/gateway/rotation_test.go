package gateway

import (
	"testing"

	"github.com/iov-one/weft"
	"github.com/iov-one/weft/errors"
	"github.com/iov-one/weft/merkle"
	"github.com/iov-one/weft/weavetest"
	"github.com/iov-one/weft/weavetest/assert"
)

// signRotation opens a rotation session from signer to next and collects
// all signatures of the signing set.
func (f *fixture) signRotation(t *testing.T, signer *signingSet, next merkle.Hash) merkle.Hash {
	t.Helper()
	root, err := RotationPayloadRoot(next, signer.hash, testDomainSeparator)
	assert.Nil(t, err)
	all := make([]int, len(signer.signers))
	for i := range all {
		all[i] = i
	}
	f.approveRoot(t, signer, root, RotateSigners, all...)
	return root
}

func TestRotateSigners(t *testing.T) {
	s1 := newSigningSet(t, 1, 2, 1, 1)
	s2 := newSigningSet(t, 2, 1, 1)
	s3 := newSigningSet(t, 3, 1, 1)
	s4 := newSigningSet(t, 4, 1, 1)
	f := newFixture(t, s1)

	// Too soon after genesis, the last rotation is at 0 and the delay is 100.
	root := f.signRotation(t, s1, s2.hash)
	_, err := f.ctrl.RotateSigners(f.db, 99, root, s2.hash, false)
	assert.IsErr(t, ErrRotationTooSoon, err)

	epoch, err := f.ctrl.RotateSigners(f.db, 100, root, s2.hash, false)
	assert.Nil(t, err)
	assert.Equal(t, uint64(2), epoch)
	conf := f.config(t)
	assert.Equal(t, uint64(2), conf.CurrentEpoch)
	assert.Equal(t, int64(100), conf.LastRotationTimestamp)
	bound, err := f.ctrl.Epoch(f.db, s2.hash)
	assert.Nil(t, err)
	assert.Equal(t, uint64(2), bound)

	// The same rotation cannot be replayed.
	_, err = f.ctrl.RotateSigners(f.db, 1000, root, s2.hash, true)
	assert.IsErr(t, ErrDuplicateBinding, err)

	// The previous set is still trusted but it is no longer the latest.
	root = f.signRotation(t, s1, s3.hash)
	_, err = f.ctrl.RotateSigners(f.db, 1000, root, s3.hash, false)
	assert.IsErr(t, ErrNotLatestVerifierSet, err)

	// The operator can rotate from any trusted set without waiting.
	epoch, err = f.ctrl.RotateSigners(f.db, 101, root, s3.hash, true)
	assert.Nil(t, err)
	assert.Equal(t, uint64(3), epoch)

	// The first set fell out of the retention window.
	root = f.signRotationUnchecked(t, s1, s4.hash)
	_, err = f.ctrl.RotateSigners(f.db, 1000, root, s4.hash, true)
	assert.IsErr(t, ErrVerifierSetTooOld, err)
	_, err = f.ctrl.OpenSession(f.db, merkle.Hash{0x01}, ApproveMessages, s1.hash)
	assert.IsErr(t, ErrVerifierSetTooOld, err)

	// The latest set rotates once the delay elapsed.
	root = f.signRotation(t, s3, s4.hash)
	_, err = f.ctrl.RotateSigners(f.db, 200, root, s4.hash, false)
	assert.IsErr(t, ErrRotationTooSoon, err)
	epoch, err = f.ctrl.RotateSigners(f.db, 201, root, s4.hash, false)
	assert.Nil(t, err)
	assert.Equal(t, uint64(4), epoch)
}

// signRotationUnchecked writes a fully signed rotation session without
// going through OpenSession, so that sessions of expired sets can be
// tested.
func (f *fixture) signRotationUnchecked(t *testing.T, signer *signingSet, next merkle.Hash) merkle.Hash {
	t.Helper()
	root, err := RotationPayloadRoot(next, signer.hash, testDomainSeparator)
	assert.Nil(t, err)
	session := newVerificationSession(root, RotateSigners, signer.hash)
	for _, leaf := range signer.leaves {
		assert.Nil(t, session.markSigned(leaf))
	}
	assert.Nil(t, f.ctrl.sessions.Put(f.db, SessionKey(root, RotateSigners), session))
	return root
}

func TestRotateSignersRejects(t *testing.T) {
	s1 := newSigningSet(t, 1, 2, 1, 1)
	s2 := newSigningSet(t, 2, 1, 1)
	s3 := newSigningSet(t, 3, 1, 1)
	f := newFixture(t, s1)

	t.Run("quorum not reached", func(t *testing.T) {
		root, err := RotationPayloadRoot(s2.hash, s1.hash, testDomainSeparator)
		assert.Nil(t, err)
		f.approveRoot(t, s1, root, RotateSigners, 0)
		_, err = f.ctrl.RotateSigners(f.db, 1000, root, s2.hash, true)
		assert.IsErr(t, ErrThresholdNotReached, err)
	})

	t.Run("root signed for another set", func(t *testing.T) {
		root := f.signRotation(t, s1, s3.hash)
		_, err := f.ctrl.RotateSigners(f.db, 1000, root, s2.hash, true)
		assert.IsErr(t, ErrInvalidMerkleProof, err)
	})

	t.Run("rotation to the signing set", func(t *testing.T) {
		root := f.signRotation(t, s1, s1.hash)
		_, err := f.ctrl.RotateSigners(f.db, 1000, root, s1.hash, true)
		assert.IsErr(t, ErrDuplicateBinding, err)
	})

	t.Run("message session", func(t *testing.T) {
		root, err := RotationPayloadRoot(s2.hash, s1.hash, testDomainSeparator)
		assert.Nil(t, err)
		root[0] ^= 0xff
		f.approveRoot(t, s1, root, ApproveMessages, 0, 1)
		_, err = f.ctrl.RotateSigners(f.db, 1000, root, s2.hash, true)
		assert.IsErr(t, ErrInvalidCommandType, err)
	})

	t.Run("block time before the last rotation", func(t *testing.T) {
		g := newFixture(t, s1)
		conf := g.config(t)
		conf.LastRotationTimestamp = 500
		assert.Nil(t, g.ctrl.saveConfig(g.db, conf))
		root := g.signRotation(t, s1, s2.hash)
		_, err := g.ctrl.RotateSigners(g.db, 400, root, s2.hash, false)
		assert.IsErr(t, ErrArithmeticOverflow, err)
	})

	// Nothing above changed the gateway state.
	conf := f.config(t)
	assert.Equal(t, uint64(1), conf.CurrentEpoch)
}

func TestTransferOperatorship(t *testing.T) {
	s := newSigningSet(t, 0, 1, 1)
	f := newFixture(t, s)

	next := weavetest.NewCondition().Address()
	assert.Nil(t, f.ctrl.TransferOperatorship(f.db, next))
	assert.Equal(t, next, f.config(t).OperatorAddress())

	assert.IsErr(t, errors.ErrInput, f.ctrl.TransferOperatorship(f.db, weft.Address(nil)))
}
