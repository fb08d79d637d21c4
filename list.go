// Package lists implements a family of random-access lists built directly on
// fixed-length backing arrays that are grown and shrunk by hand.
//
// Every list starts empty with a single slot (or no blocks, for
// RootishArrayStack), doubles when full and shrinks when at most a third of
// its capacity is in use, so appends and removals at the cheap end cost
// amortized O(1). None of the lists are safe for concurrent use.
package lists

import (
	"errors"
	"fmt"
)

// List is the random-access interface shared by ArrayStack, ArrayDeque,
// DualArrayDeque and RootishArrayStack. Indexes are zero-based.
type List[T any] interface {
	// Get returns the element at index i, or false if i is out of [0, Len()).
	Get(i int) (T, bool)
	// Set replaces the element at index i and returns the previous one, or
	// false if i is out of [0, Len()).
	Set(i int, x T) (T, bool)
	// Add inserts x at index i, shifting later elements up by one. It returns
	// an error wrapping ErrIndexOutOfRange if i is out of [0, Len()].
	Add(i int, x T) error
	// Remove deletes and returns the element at index i, or false if i is
	// out of [0, Len()).
	Remove(i int) (T, bool)
	// Len returns the number of elements.
	Len() int
	// MakeSliceCopy returns a fresh slice with every element in order.
	MakeSliceCopy() []T
	// Stats returns the work counters accumulated so far.
	Stats() Stats
}

var (
	_ List[int] = (*ArrayStack[int])(nil)
	_ List[int] = (*ArrayDeque[int])(nil)
	_ List[int] = (*DualArrayDeque[int])(nil)
	_ List[int] = (*RootishArrayStack[int])(nil)
)

/*****************************************************************************
 * SENTINEL ERRORS
 *****************************************************************************/

// ErrIndexOutOfRange is returned when adding at an index outside [0, Len()].
var ErrIndexOutOfRange = errors.New("index out of range")

/*****************************************************************************
 * HELPERS
 *****************************************************************************/

func outOfRange(i, n int) error {
	return fmt.Errorf("%w: index %d with length %d", ErrIndexOutOfRange, i, n)
}

// wrap returns the ring slot k places after j in a ring of length c. k may be
// negative, but not below -c.
func wrap(j, k, c int) int {
	return (j + k + c) % c
}

// fitCap is the capacity every resize targets.
func fitCap(n int) int {
	return max(1, 2*n)
}
