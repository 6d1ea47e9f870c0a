package models

import "errors"

// ErrInvalidComponent is returned for a widget name outside the known six.
var ErrInvalidComponent = errors.New("invalid component")
