package prioritize

import "errors"

// Domain-specific errors for the prioritize package.
var (
	ErrUnknownStrategy = errors.New("unknown prioritization strategy")
	ErrNegativeWeight  = errors.New("weights must be non-negative")
	ErrTooManyTasks    = errors.New("too many tasks in one batch")
)
