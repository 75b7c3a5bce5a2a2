package sigs

import (
	"context"
	"testing"

	"github.com/iov-one/weft"
	"github.com/iov-one/weft/crypto"
	"github.com/iov-one/weft/errors"
	"github.com/iov-one/weft/store"
	"github.com/iov-one/weft/weavetest"
	"github.com/iov-one/weft/weavetest/assert"
)

const testChainID = "test-chain"

// signedTx is a minimal SignedTx with fixed sign bytes.
type signedTx struct {
	weavetest.Tx
	data []byte
	sigs []*StdSignature
}

func (tx *signedTx) GetSignBytes() ([]byte, error) {
	return tx.data, nil
}

func (tx *signedTx) GetSignatures() []*StdSignature {
	return tx.sigs
}

// captureHandler records the signers visible to the handler.
type captureHandler struct {
	weavetest.Handler
	seen []weft.Condition
}

func (h *captureHandler) Check(ctx context.Context, info weft.BlockInfo, db weft.KVStore, tx weft.Tx) (*weft.CheckResult, error) {
	h.seen = Authenticator{}.GetConditions(ctx)
	return &weft.CheckResult{}, nil
}

func (h *captureHandler) Deliver(ctx context.Context, info weft.BlockInfo, db weft.KVStore, tx weft.Tx) (*weft.DeliverResult, error) {
	h.seen = Authenticator{}.GetConditions(ctx)
	return &weft.DeliverResult{}, nil
}

func newInfo(t testing.TB, chainID string) weft.BlockInfo {
	t.Helper()
	info, err := weft.NewBlockInfo(1, weft.UnixTime(10).Time(), chainID, nil)
	assert.Nil(t, err)
	return info
}

func sign(t testing.TB, signer crypto.Signer, tx *signedTx, chainID string, seq int64) *StdSignature {
	t.Helper()
	sig, err := SignTx(signer, tx, chainID, seq)
	assert.Nil(t, err)
	return sig
}

func TestBuildSignBytes(t *testing.T) {
	a, err := BuildSignBytes([]byte("payload"), testChainID, 0)
	assert.Nil(t, err)
	assert.Equal(t, crypto.HashSize, len(a))

	b, err := BuildSignBytes([]byte("payload"), testChainID, 1)
	assert.Nil(t, err)
	c, err := BuildSignBytes([]byte("payload"), "other-chain", 0)
	assert.Nil(t, err)
	if string(a) == string(b) || string(a) == string(c) {
		t.Fatal("sign bytes must depend on the chain and the sequence")
	}

	_, err = BuildSignBytes([]byte("payload"), "x", 0)
	assert.IsErr(t, errors.ErrInput, err)
	_, err = BuildSignBytes([]byte("payload"), testChainID, -1)
	assert.IsErr(t, ErrInvalidSequence, err)
}

func TestVerifyTxSignatures(t *testing.T) {
	ed, secp := weavetest.NewKey(), weavetest.NewSecpKey()
	db := store.MemStore()

	tx := &signedTx{data: []byte("first")}
	tx.sigs = []*StdSignature{
		sign(t, ed, tx, testChainID, 0),
		sign(t, secp, tx, testChainID, 0),
	}
	conds, err := VerifyTxSignatures(db, tx, testChainID)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(conds))
	assert.Equal(t, ed.PublicKey().Condition(), conds[0])
	assert.Equal(t, secp.PublicKey().Condition(), conds[1])

	seq, err := NextSequence(db, ed.PublicKey())
	assert.Nil(t, err)
	assert.Equal(t, int64(1), seq)

	// The same signatures cannot be replayed.
	_, err = VerifyTxSignatures(db, tx, testChainID)
	assert.IsErr(t, ErrInvalidSequence, err)

	// A signature for another chain is rejected.
	other := &signedTx{data: []byte("second")}
	other.sigs = []*StdSignature{sign(t, ed, other, "other-chain", 1)}
	_, err = VerifyTxSignatures(db, other, testChainID)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	// A signature over different bytes is rejected.
	forged := &signedTx{data: []byte("forged"), sigs: []*StdSignature{sign(t, ed, other, testChainID, 1)}}
	_, err = VerifyTxSignatures(db, forged, testChainID)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	// A signature claiming another public key is rejected.
	claimed := sign(t, ed, other, testChainID, 1)
	claimed.PubKey = secp.PublicKey().Key
	claimed.KeyType = uint32(secp.PublicKey().Type)
	_, err = VerifyTxSignatures(db, &signedTx{data: other.data, sigs: []*StdSignature{claimed}}, testChainID)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	other.sigs = []*StdSignature{sign(t, ed, other, testChainID, 1)}
	_, err = VerifyTxSignatures(db, other, testChainID)
	assert.Nil(t, err)
}

func TestDecorator(t *testing.T) {
	signer := weavetest.NewKey()
	info := newInfo(t, testChainID)

	cases := map[string]struct {
		decorator Decorator
		tx        func(t testing.TB) weft.Tx
		want      []weft.Condition
		wantErr   *errors.Error
	}{
		"signer is exposed": {
			decorator: NewDecorator(),
			tx: func(t testing.TB) weft.Tx {
				tx := &signedTx{data: []byte("data")}
				tx.sigs = []*StdSignature{sign(t, signer, tx, testChainID, 0)}
				return tx
			},
			want: []weft.Condition{signer.PublicKey().Condition()},
		},
		"unsigned conditions are not trusted": {
			decorator: NewDecorator().AllowMissingSigs(),
			tx: func(testing.TB) weft.Tx {
				return &weavetest.Tx{Conditions: []weft.Condition{signer.PublicKey().Condition()}}
			},
		},
		"missing signature": {
			decorator: NewDecorator(),
			tx: func(testing.TB) weft.Tx {
				return &signedTx{data: []byte("data")}
			},
			wantErr: errors.ErrUnauthorized,
		},
		"missing signature allowed": {
			decorator: NewDecorator().AllowMissingSigs(),
			tx: func(testing.TB) weft.Tx {
				return &signedTx{data: []byte("data")}
			},
		},
		"bad signature": {
			decorator: NewDecorator().AllowMissingSigs(),
			tx: func(t testing.TB) weft.Tx {
				tx := &signedTx{data: []byte("data")}
				sig := sign(t, signer, tx, testChainID, 0)
				sig.Signature[0] ^= 1
				tx.sigs = []*StdSignature{sig}
				return tx
			},
			wantErr: errors.ErrUnauthorized,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			h := &captureHandler{}
			tx := tc.tx(t)

			_, err := tc.decorator.Check(context.Background(), info, store.MemStore(), tx, h)
			assert.IsErr(t, tc.wantErr, err)

			h.seen = nil
			_, err = tc.decorator.Deliver(context.Background(), info, store.MemStore(), tx, h)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, len(tc.want), len(h.seen))
				for i := range tc.want {
					assert.Equal(t, tc.want[i], h.seen[i])
				}
			}
		})
	}
}

func TestDecoratorDoesNotInheritSigners(t *testing.T) {
	signer := weavetest.NewKey()
	ctx := withSigners(context.Background(), []weft.Condition{signer.PublicKey().Condition()})

	h := &captureHandler{}
	_, err := NewDecorator().AllowMissingSigs().Deliver(ctx, newInfo(t, testChainID), store.MemStore(), &weavetest.Tx{}, h)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(h.seen))
}

func TestAuthenticatorHasAddress(t *testing.T) {
	a, b := weavetest.NewCondition(), weavetest.NewCondition()
	ctx := withSigners(context.Background(), []weft.Condition{a})

	auth := Authenticator{}
	assert.Equal(t, true, auth.HasAddress(ctx, a.Address()))
	assert.Equal(t, false, auth.HasAddress(ctx, b.Address()))
	assert.Equal(t, false, auth.HasAddress(context.Background(), a.Address()))
}

func TestCheckAndIncrementSequence(t *testing.T) {
	u := UserData{Sequence: 3}
	assert.IsErr(t, ErrInvalidSequence, u.CheckAndIncrementSequence(2))
	assert.Nil(t, u.CheckAndIncrementSequence(3))
	assert.Equal(t, int64(4), u.Sequence)
}
