package bintree

import "errors"

// Sentinel errors for malformed Rebuild input.
var (
	ErrLengthMismatch   = errors.New("pre-order and in-order lengths differ")
	ErrMultisetMismatch = errors.New("pre-order and in-order hold different values")
	ErrRootNotFound     = errors.New("subtree root missing from in-order window")
)
