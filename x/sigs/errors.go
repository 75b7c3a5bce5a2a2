package sigs

import (
	"github.com/iov-one/weft/errors"
)

var (
	ErrInvalidSequence = errors.Register(3100, "invalid sequence number")
)
