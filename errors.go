package mtree

import "errors"

var (
	// ErrEmptyTree signals an operation that is only meaningful on a
	// non-empty tree.
	ErrEmptyTree = errors.New("mtree: tree is empty")
	// ErrInvalidOrder signals a requested tree order below the structural
	// minimum of 3.
	ErrInvalidOrder = errors.New("mtree: invalid tree order")
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("mtree: invalid configuration")
)
