package shamir

import (
	"errors"

	"github.com/oarkflow/xsss/internal/gf256"
)

// Error taxonomy per spec §7. Each is a sentinel meant to be tested with
// errors.Is; none are retried or recovered internally.
var (
	ErrInvalidThreshold        = errors.New("shamir: threshold must be between 2 and 255")
	ErrEmptySecret             = errors.New("shamir: secret must not be empty")
	ErrShareLimitExceeded      = errors.New("shamir: cannot issue more than 255 shares")
	ErrEmptyShares             = errors.New("shamir: no shares supplied")
	ErrInsufficientShares      = errors.New("shamir: fewer shares than the threshold")
	ErrDuplicateShareIndex     = errors.New("shamir: duplicate share index")
	ErrInvalidShareIndex       = errors.New("shamir: share index must be non-zero")
	ErrInconsistentShareLength = errors.New("shamir: shares have mismatched lengths")
	// ErrDivisionByZero indicates an internal invariant violation — it
	// should be unreachable given valid, distinct, non-zero share indices.
	ErrDivisionByZero = gf256.ErrDivisionByZero
)
