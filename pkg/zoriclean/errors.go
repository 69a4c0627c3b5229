package zoriclean

import (
	"errors"
	"fmt"
)

// ErrRegionColumnMissing indicates the input header has no RegionName column.
var ErrRegionColumnMissing = errors.New(`column "RegionName" not found in header`)

// ErrDateColumnsNotFound indicates long mode could not locate the boundary
// between metadata columns and date columns.
var ErrDateColumnsNotFound = errors.New("could not locate date columns in header")

// CleanError represents a fatal error during a cleaning run.
type CleanError struct {
	Stage string // "open", "columns", "stream", "write"
	Err   error
}

func (e *CleanError) Error() string {
	return fmt.Sprintf("clean error during %s: %v", e.Stage, e.Err)
}

func (e *CleanError) Unwrap() error {
	return e.Err
}

// NewCleanError creates a new CleanError.
func NewCleanError(stage string, err error) *CleanError {
	return &CleanError{Stage: stage, Err: err}
}
