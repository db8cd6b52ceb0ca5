package source

import "errors"

// Sentinel errors for table loads.
var (
	ErrOpen     = errors.New("source: open failed")
	ErrHeader   = errors.New("source: unreadable header")
	ErrFeatures = errors.New("source: unreadable map features")
)
