package storage

import "errors"

var (
	// ErrQuotaExceeded mirrors the browser's QuotaExceededError: the write would grow the
	// store past its configured byte budget.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	ErrClosed        = errors.New("store is closed")
	ErrUnknownDriver = errors.New("unknown storage driver")
)
