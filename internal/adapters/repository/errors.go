package repository

import "errors"

// Sentinel kinds for snapshot errors.
var (
	ErrNotFound = errors.New("snapshot not found")
	ErrEncode   = errors.New("snapshot encode failed")
)
