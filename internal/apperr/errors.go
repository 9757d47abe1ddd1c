package apperr

import "errors"

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")
