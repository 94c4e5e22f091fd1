package binio

import (
	"errors"
	"fmt"
)

// ErrBounds is wrapped by every BoundsError.
var ErrBounds = errors.New("out of bounds")

// BoundsError records a seek, read or write past the available length of a
// stream that cannot grow.
type BoundsError struct {
	Op       string
	Position int64
	Need     int64
	Length   int64
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: %v: need %d bytes at position %d, length %d",
		e.Op, ErrBounds, e.Need, e.Position, e.Length)
}

func (e *BoundsError) Unwrap() error { return ErrBounds }

// AllocationPolicyError is the panic value for an attempt to shrink a
// writer's buffer.
type AllocationPolicyError struct {
	Length    int64
	Requested int64
}

func (e *AllocationPolicyError) Error() string {
	return fmt.Sprintf("binio: cannot resize buffer of length %d to %d: buffers never shrink",
		e.Length, e.Requested)
}
