package crypto

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/iov-one/weft/errors"
	"github.com/iov-one/weft/weavetest/assert"
)

func TestKeccak256(t *testing.T) {
	// Well known digest of the empty input.
	empty := Keccak256()
	assert.Equal(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", hex.EncodeToString(empty[:]))

	// Chunks are concatenated.
	assert.Equal(t, Keccak256([]byte("gate"), []byte("way")), Keccak256([]byte("gateway")))
}

func TestSigning(t *testing.T) {
	secp, err := GenSecp256k1()
	assert.Nil(t, err)
	ed, err := GenEd25519()
	assert.Nil(t, err)

	cases := map[string]Signer{
		"secp256k1": secp,
		"ed25519":   ed,
	}

	for name, signer := range cases {
		t.Run(name, func(t *testing.T) {
			public := signer.PublicKey()
			assert.Nil(t, public.Validate())

			msg := Keccak256([]byte("foobar"))
			msg2 := Keccak256([]byte("dingbooms"))

			sig, err := signer.Sign(msg[:])
			assert.Nil(t, err)
			sig2, err := signer.Sign(msg2[:])
			assert.Nil(t, err)

			if !public.Verify(msg[:], sig) {
				t.Fatal("cannot verify a message signed with this public key")
			}
			if !public.Verify(msg2[:], sig2) {
				t.Fatal("cannot verify a message signed with this public key")
			}
			if public.Verify(msg[:], sig2) {
				t.Fatal("verified message signature of the wrong message")
			}
			if public.Verify(msg[:], nil) {
				t.Fatal("verified an empty signature")
			}

			tampered := append([]byte{}, sig...)
			tampered[3] ^= 0x01
			if public.Verify(msg[:], tampered) {
				t.Fatal("verified a tampered signature")
			}
		})
	}
}

func TestSecp256k1RecoveryID(t *testing.T) {
	signer, err := Secp256k1FromSeed(bytesOf(32, 7))
	assert.Nil(t, err)
	public := signer.PublicKey()
	digest := Keccak256([]byte("recovery"))

	sig, err := signer.Sign(digest[:])
	assert.Nil(t, err)
	if sig[64] != 27 && sig[64] != 28 {
		t.Fatalf("unexpected recovery id %d", sig[64])
	}
	if !public.Verify(digest[:], sig) {
		t.Fatal("27/28 recovery id not accepted")
	}

	raw := append([]byte{}, sig...)
	raw[64] -= 27
	if !public.Verify(digest[:], raw) {
		t.Fatal("0/1 recovery id not accepted")
	}

	raw[64] = 5
	if public.Verify(digest[:], raw) {
		t.Fatal("invalid recovery id accepted")
	}

	other, err := Secp256k1FromSeed(bytesOf(32, 9))
	assert.Nil(t, err)
	if other.PublicKey().Verify(digest[:], sig) {
		t.Fatal("signature verified for another key")
	}

	// A different key type never verifies.
	wrongType := PublicKey{Type: Ed25519, Key: public.Key}
	if wrongType.Verify(digest[:], sig) {
		t.Fatal("signature verified for a mismatched key type")
	}
}

func TestPublicKeyJSON(t *testing.T) {
	signer, err := Ed25519FromSeed(bytesOf(32, 1))
	assert.Nil(t, err)
	public := signer.PublicKey()

	raw, err := json.Marshal(public)
	assert.Nil(t, err)

	var got PublicKey
	assert.Nil(t, json.Unmarshal(raw, &got))
	if !got.Equals(public) {
		t.Fatalf("want %s, got %s", public, got)
	}

	cases := map[string]*errors.Error{
		`"secp256k1:00"`:   errors.ErrInput,
		`"rsa:00"`:         errors.ErrType,
		`"ed25519"`:        errors.ErrInput,
		`"ed25519:zz"`:     errors.ErrInput,
		`"ed25519:0011ff"`: errors.ErrInput,
	}
	for raw, want := range cases {
		var p PublicKey
		assert.IsErr(t, want, json.Unmarshal([]byte(raw), &p))
	}
}

func TestPublicKeyCondition(t *testing.T) {
	signer, err := Secp256k1FromSeed(bytesOf(32, 3))
	assert.Nil(t, err)
	cond := signer.PublicKey().Condition()
	ext, typ, data, err := cond.Parse()
	assert.Nil(t, err)
	assert.Equal(t, ExtensionName, ext)
	assert.Equal(t, "secp256k1", typ)
	assert.Equal(t, signer.PublicKey().Key, data)
	assert.Equal(t, cond.Address(), signer.PublicKey().Address())
}

func bytesOf(n int, b byte) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}
