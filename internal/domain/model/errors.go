package model

import "errors"

var (
	ErrInvalidHandle  = errors.New("invalid handle")
	ErrHandleNotFound = errors.New("handle not found")
	ErrUpstream       = errors.New("upstream request failed")
	ErrInvalidKind    = errors.New("invalid kind")
	ErrInvalidBucket  = errors.New("invalid bucket")
)
