package app

import (
	"testing"

	"github.com/iov-one/weft"
	"github.com/iov-one/weft/errors"
	"github.com/iov-one/weft/store"
	"github.com/iov-one/weft/weavetest"
	"github.com/iov-one/weft/weavetest/assert"
	"github.com/iov-one/weft/x/sigs"
)

func TestTxSignBytes(t *testing.T) {
	tx := NewTx(&weavetest.Msg{RoutePath: "test/msg", Serialized: []byte("data")})
	bz, err := tx.GetSignBytes()
	assert.Nil(t, err)
	assert.Equal(t, []byte("test/msg\x00data"), bz)

	_, err = NewTx(nil).GetSignBytes()
	assert.IsErr(t, errors.ErrEmpty, err)
}

func TestTxEncoding(t *testing.T) {
	signer := weavetest.NewKey()
	tx := NewTx(&weavetest.Msg{RoutePath: "test/msg", Serialized: []byte("data")})
	assert.Nil(t, tx.Sign(signer, "test-chain", 0))

	raw, err := tx.Marshal()
	assert.Nil(t, err)

	newMsg := func(path string) (weft.Msg, error) {
		if path != "test/msg" {
			return nil, errors.Wrapf(errors.ErrNotFound, "path %q", path)
		}
		return &weavetest.Msg{RoutePath: path}, nil
	}
	got, err := DecodeTx(raw, newMsg)
	assert.Nil(t, err)
	msg, err := got.GetMsg()
	assert.Nil(t, err)
	assert.Equal(t, []byte("data"), msg.(*weavetest.Msg).Serialized)
	assert.Equal(t, 1, len(got.Signatures))

	// The decoded signature still verifies.
	conds, err := sigs.VerifyTxSignatures(store.MemStore(), got, "test-chain")
	assert.Nil(t, err)
	assert.Equal(t, signer.PublicKey().Condition(), conds[0])

	_, err = DecodeTx(raw, func(string) (weft.Msg, error) { return nil, errors.ErrNotFound })
	assert.IsErr(t, errors.ErrNotFound, err)
	_, err = DecodeTx([]byte{0xff, 0xff}, newMsg)
	assert.IsErr(t, errors.ErrModel, err)
}
