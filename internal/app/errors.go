package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrLoad         = errors.New("load failed")
	ErrUnknownView  = errors.New("unknown view")
	ErrNotStarted   = errors.New("service not started")
	ErrBackpressure = errors.New("refresh queue full")
)
