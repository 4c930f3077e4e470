package mtree

import "fmt"

// DefaultOrder is the tree order used when a configuration leaves the order
// unspecified.
const DefaultOrder = 5

// Compare is a three-way comparison over keys: negative for a < b, zero for
// equal keys, positive for a > b.
type Compare[T any] func(a, b T) int

// Config configures an M-ary search tree.
type Config[T any] struct {
	// Order is M, the maximum number of children per node. A node holds at
	// most M-1 keys. Zero selects DefaultOrder.
	Order int
	// Compare orders the keys. Required.
	Compare Compare[T]
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Order == 0 {
		cfg.Order = DefaultOrder
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	cfg = cfg.normalized()
	if cfg.Order < 3 {
		// a node must be able to hold at least 2 keys after a split
		return fmt.Errorf("%w: order %d below structural minimum 3", ErrInvalidOrder, cfg.Order)
	}
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	return nil
}
