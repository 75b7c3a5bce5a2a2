/*
Package crypto contains the hashing and signature primitives of the gateway.

Verifier public keys are typed: a secp256k1 key is stored in its 33 byte
compressed form and signs with 65 byte recoverable signatures (r ‖ s ‖ v), an
ed25519 key is 32 bytes long and signs with 64 byte signatures.
*/
package crypto
