package utils

import (
	"context"
	"time"

	"github.com/iov-one/weft"
	"github.com/iov-one/weft/errors"
)

// Logging is a decorator to log messages as they pass through
type Logging struct{}

var _ weft.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> error, success -> debug
func (r Logging) Check(ctx context.Context, info weft.BlockInfo, store weft.KVStore, tx weft.Tx, next weft.Checker) (*weft.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, info, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(info, tx, start, resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info
func (r Logging) Deliver(ctx context.Context, info weft.BlockInfo, store weft.KVStore, tx weft.Tx, next weft.Deliverer) (*weft.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, info, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(info, tx, start, resLog, err, false)
	return res, err
}

// logDuration writes information about the time and result to the logger
func logDuration(info weft.BlockInfo, tx weft.Tx, start time.Time, msg string, err error, lowPrio bool) {
	delta := time.Since(start)
	logger := info.Logger().With(
		"duration", delta/time.Microsecond,
		"path", weft.GetPath(tx),
	)

	if err != nil {
		logger = logger.With("err", err, "code", errors.CodeOf(err))
	}

	// Although message can be empty, we still want to emit a log entry
	// because it contains other relevant information beside the message.

	if err != nil {
		logger.Error(msg)
	} else {
		if lowPrio {
			logger.Debug(msg)
		} else {
			logger.Info(msg)
		}
	}
}
