package will

import (
	"github.com/iov-one/weave/errors"
)

var (
	// ErrInvalidShare is returned when a beneficiary share is out of the
	// allowed range or when all shares of a will sum to more than 100.
	ErrInvalidShare = errors.Register(1200, "invalid share")

	// ErrInvalidPeriod is returned when an inactivity period is not a
	// positive duration.
	ErrInvalidPeriod = errors.Register(1201, "invalid inactivity period")

	// ErrInactivityNotMet is returned when a will is executed before its
	// inactivity period has passed.
	ErrInactivityNotMet = errors.Register(1202, "inactivity period not met")

	// ErrTransferFailed is returned when a payout to a beneficiary could not
	// be made. The whole execution is aborted.
	ErrTransferFailed = errors.Register(1203, "transfer failed")
)
