// BlockInfo carries the host provided context of a unit of work down the
// Decorator/Handler stack. Optional, module local values (timeouts, request
// scoped data) belong to context.Context instead.

package weft

import (
	"regexp"
	"time"

	"github.com/iov-one/weft/errors"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	// DefaultLogger is used for all context that have not
	// set anything themselves
	DefaultLogger = log.NewNopLogger()

	// IsValidChainID is the RegExp to ensure valid chain IDs
	IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString
)

// BlockInfo is the host provided information about the unit of work being
// executed. Time is the only notion of "now" a handler may use.
type BlockInfo struct {
	height  int64
	time    time.Time
	chainID string
	logger  log.Logger
}

// NewBlockInfo creates a BlockInfo struct with current context of where it is being executed
func NewBlockInfo(height int64, blockTime time.Time, chainID string, logger log.Logger) (BlockInfo, error) {
	if !IsValidChainID(chainID) {
		return BlockInfo{}, errors.Wrap(errors.ErrInput, "chainID invalid")
	}
	if height < 0 {
		return BlockInfo{}, errors.Wrap(errors.ErrInput, "negative height")
	}
	if logger == nil {
		logger = DefaultLogger
	}
	return BlockInfo{
		height:  height,
		time:    blockTime,
		chainID: chainID,
		logger:  logger,
	}, nil
}

func (b BlockInfo) ChainID() string {
	return b.chainID
}

func (b BlockInfo) Height() int64 {
	return b.height
}

func (b BlockInfo) BlockTime() time.Time {
	return b.time
}

func (b BlockInfo) UnixTime() UnixTime {
	return AsUnixTime(b.time)
}

func (b BlockInfo) Logger() log.Logger {
	return b.logger
}

// WithLogInfo accepts keyvalue pairs, and returns another
// context like this, after passing all the keyvals to the
// Logger
func (b BlockInfo) WithLogInfo(keyvals ...interface{}) BlockInfo {
	b.logger = b.logger.With(keyvals...)
	return b
}

// IsExpired returns true if given time is in the past as compared to the "now"
// as declared for the block. Expiration is inclusive, meaning that if current
// time is equal to the expiration time than this function returns true.
func (b BlockInfo) IsExpired(t UnixTime) bool {
	return t <= b.UnixTime()
}

// InThePast returns true if given time is in the past compared to the current
// time as declared in the context. Context "now" should come from the block
// header.
// Keep in mind that this function is not inclusive of current time. It given
// time is equal to "now" then this function returns false.
func (b BlockInfo) InThePast(t time.Time) bool {
	return t.Before(b.BlockTime())
}
