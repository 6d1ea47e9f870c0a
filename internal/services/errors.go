package services

import "errors"

var (
	// ErrRestoreFailed wraps the store error that stopped a restore. Keys written
	// before the failure keep their new values.
	ErrRestoreFailed = errors.New("data restoration failed")
	// ErrClearFailed wraps the store error that stopped a clear. Keys removed
	// before the failure stay removed.
	ErrClearFailed = errors.New("data deletion failed")
)
