package gateway

import (
	"github.com/iov-one/weft/errors"
)

var (
	ErrArithmeticOverflow     = errors.Register(3000, "arithmetic overflow")
	ErrVerifierSetTooOld      = errors.Register(3001, "verifier set too old")
	ErrInvalidMerkleProof     = errors.Register(3002, "invalid merkle proof")
	ErrDuplicateBinding       = errors.Register(3003, "verifier set already bound")
	ErrRotationTooSoon        = errors.Register(3004, "rotation delay not elapsed")
	ErrThresholdNotReached    = errors.Register(3005, "threshold not reached")
	ErrMessageAlreadyApproved = errors.Register(3006, "message already approved")
	ErrMessageNotApproved     = errors.Register(3007, "message not approved")
	ErrAlreadyExecuted        = errors.Register(3008, "message already executed")
	ErrInvalidPayloadHash     = errors.Register(3009, "invalid payload hash")
	ErrInvalidCallerIdentity  = errors.Register(3010, "invalid caller identity")
	ErrSessionExists          = errors.Register(3011, "verification session exists")
	ErrInvalidCommandType     = errors.Register(3012, "invalid command type")
	ErrInvalidDomainSeparator = errors.Register(3013, "invalid domain separator")
	ErrInvalidSignature       = errors.Register(3014, "invalid signature")
	ErrSlotOutOfBounds        = errors.Register(3015, "signature slot out of bounds")
	ErrNotLatestVerifierSet   = errors.Register(3016, "not signed by the latest verifier set")
	ErrUnknownVerifierSet     = errors.Register(3017, "unknown verifier set")
)
