package gateway

import (
	"bytes"
	"testing"

	"github.com/iov-one/weft"
	"github.com/iov-one/weft/crypto"
	"github.com/iov-one/weft/merkle"
	"github.com/iov-one/weft/store"
	"github.com/iov-one/weft/weavetest"
	"github.com/iov-one/weft/weavetest/assert"
)

var testDomainSeparator = bytes.Repeat([]byte{0xd5}, DomainSeparatorSize)

// signingSet is a verifier set together with the keys of its members.
type signingSet struct {
	signers []crypto.Signer
	set     *VerifierSet
	hash    merkle.Hash
	tree    *merkle.Tree
	leaves  []*VerifierSetLeaf
}

func newSigningSet(t testing.TB, nonce, quorum uint64, weights ...uint64) *signingSet {
	t.Helper()
	s := &signingSet{set: &VerifierSet{Nonce: nonce, Quorum: quorum}}
	for i, w := range weights {
		// Mix both key types so both verification paths are exercised.
		var k crypto.Signer
		if i%2 == 0 {
			k = weavetest.NewKey()
		} else {
			k = weavetest.NewSecpKey()
		}
		s.signers = append(s.signers, k)
		s.set.Signers = append(s.set.Signers, WeightedSigner{PubKey: k.PublicKey(), Weight: w})
	}
	tree, leaves, err := s.set.Tree(testDomainSeparator)
	assert.Nil(t, err)
	s.tree, s.leaves, s.hash = tree, leaves, tree.Root()
	return s
}

func (s *signingSet) proof(t testing.TB, i int) merkle.Proof {
	t.Helper()
	p, err := s.tree.Proof(i)
	assert.Nil(t, err)
	return p
}

func (s *signingSet) sign(t testing.TB, i int, root merkle.Hash) []byte {
	t.Helper()
	sig, err := s.signers[i].Sign(SigningDigest(testDomainSeparator, root))
	assert.Nil(t, err)
	return sig
}

// fixture is a gateway with a configuration and a bound initial verifier
// set.
type fixture struct {
	db       weft.KVStore
	ctrl     *Controller
	operator weft.Condition
	initial  *signingSet
}

func newFixture(t testing.TB, initial *signingSet) *fixture {
	t.Helper()
	f := &fixture{
		db:       store.MemStore(),
		ctrl:     NewController(),
		operator: weavetest.NewCondition(),
		initial:  initial,
	}
	conf := &Config{
		CurrentEpoch:                 1,
		PreviousVerifierSetRetention: 2,
		MinimumRotationDelay:         100,
		DomainSeparator:              testDomainSeparator,
		Operator:                     f.operator.Address(),
	}
	assert.Nil(t, f.ctrl.saveConfig(f.db, conf))
	assert.Nil(t, f.ctrl.Bind(f.db, initial.hash, 1))
	return f
}

func (f *fixture) config(t testing.TB) *Config {
	t.Helper()
	conf, err := f.ctrl.Config(f.db)
	assert.Nil(t, err)
	return conf
}

func (f *fixture) submit(t testing.TB, s *signingSet, root merkle.Hash, ct CommandType, i int) (*VerificationSession, bool, error) {
	t.Helper()
	return f.ctrl.SubmitSignature(f.db, root, ct, s.leaves[i], s.proof(t, i), s.sign(t, i, root))
}

// approveRoot opens a session for the root and collects the signatures of
// the given signers.
func (f *fixture) approveRoot(t testing.TB, s *signingSet, root merkle.Hash, ct CommandType, signers ...int) *VerificationSession {
	t.Helper()
	_, err := f.ctrl.OpenSession(f.db, root, ct, s.hash)
	assert.Nil(t, err)
	var session *VerificationSession
	for _, i := range signers {
		session, _, err = f.submit(t, s, root, ct, i)
		assert.Nil(t, err)
	}
	return session
}

// testDestination is the component all messages of testBatch are sent to.
var testDestination = weavetest.NewCondition()

// testBatch returns a batch of n messages and the payload of each message.
func testBatch(n int) (*MessageBatch, [][]byte) {
	batch := &MessageBatch{}
	payloads := make([][]byte, n)
	for i := 0; i < n; i++ {
		payloads[i] = []byte{'p', byte(i)}
		h := crypto.Keccak256(payloads[i])
		batch.Messages = append(batch.Messages, &Message{
			SourceChain:        "ethereum",
			MessageID:          string(rune('a' + i)),
			SourceAddress:      "0xsource",
			DestinationChain:   "weft",
			DestinationAddress: testDestination.Address().String(),
			PayloadHash:        h[:],
		})
	}
	return batch, payloads
}

func (f *fixture) batchTree(t testing.TB, s *signingSet, n int) (*merkle.Tree, []*MessageLeaf, [][]byte) {
	t.Helper()
	batch, payloads := testBatch(n)
	tree, leaves, err := batch.Tree(testDomainSeparator, s.hash)
	assert.Nil(t, err)
	return tree, leaves, payloads
}
