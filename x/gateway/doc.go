/*
Package gateway implements the verification and approval engine of the
cross-chain gateway.

A remote chain summarizes a batch of messages, or a new verifier set, as one
Merkle root signed by its active verifier set. A relayer opens a verification
session for that root and submits signatures in as many transactions as it
needs. Every valid signature adds the weight of its signer to the session.
Once the accumulated weight reaches the quorum, the session is valid and
messages proved against its root can be approved, or a new verifier set can
be rotated in.

Each message is approved at most once and executed at most once. Execution
is reserved for the destination component the message was sent to.
*/
package gateway
