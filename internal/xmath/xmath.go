// Package xmath holds the integer arithmetic behind RootishArrayStack's block
// layout, where block b has b+1 slots and starts at index Triangular(b).
package xmath

import "math"

// Triangular returns b(b+1)/2, the number of slots in blocks 0 through b-1.
// It returns 0 for non-positive b.
func Triangular(b int) int {
	if b <= 0 {
		return 0
	}
	return b * (b + 1) / 2
}

// BlockOf returns the block holding index i, that is the unique b >= 0 with
// Triangular(b) <= i < Triangular(b+1). i must be non-negative.
//
// The closed form ceil((-3+sqrt(9+8i))/2) is only a first guess: near block
// boundaries the float rounding can be off by one, so the result is corrected
// with integer comparisons.
func BlockOf(i int) int {
	b := int(math.Ceil((-3 + math.Sqrt(9+8*float64(i))) / 2))
	if b < 0 {
		b = 0
	}
	for b > 0 && Triangular(b) > i {
		b--
	}
	for Triangular(b+1) <= i {
		b++
	}
	return b
}

// Locate splits index i into its block and the offset within that block.
func Locate(i int) (b, j int) {
	b = BlockOf(i)
	return b, i - Triangular(b)
}
