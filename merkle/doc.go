/*
Package merkle implements the domain separated Merkle tree the gateway uses to
commit to verifier sets and message batches.

All digests are keccak-256. An internal node is H(0x01 ‖ left ‖ right); a
node without a right sibling is combined with itself. A leaf is
H(tag ‖ rlp(content)) where tag identifies the leaf type and is never 0x01, so
a leaf pre-image can never be mistaken for a node pre-image.
*/
package merkle
