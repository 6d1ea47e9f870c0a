package backup

import "errors"

var (
	ErrInvalidJSON     = errors.New("invalid JSON file")
	ErrReadFailed      = errors.New("failed to read file")
	ErrInvalidSnapshot = errors.New("invalid backup file format")
)
