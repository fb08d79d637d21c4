package lists

import "github.com/lucasgdosr/lists/internal/xmath"

// RootishArrayStack is a list stored in blocks of increasing size: block b
// holds b+1 slots, so r blocks hold r(r+1)/2 elements. Growing appends a
// block instead of copying every element, which keeps the unused space in
// O(sqrt(n)) at the cost of one index translation per access.
//
// Like ArrayStack it is cheap at the back; Add and Remove at index i move the
// n-i elements after it one by one across block boundaries.
type RootishArrayStack[T any] struct {
	blocks *ArrayStack[[]T]
	n      int
	stats  Stats
}

// MakeRootishArrayStack returns an empty RootishArrayStack with no blocks.
func MakeRootishArrayStack[T any]() *RootishArrayStack[T] {
	return &RootishArrayStack[T]{blocks: MakeArrayStack[[]T]()}
}

// CopySliceToRootishArrayStack returns a RootishArrayStack holding the
// elements of s in the fewest blocks that fit them.
func CopySliceToRootishArrayStack[T any](s []T) *RootishArrayStack[T] {
	r := MakeRootishArrayStack[T]()
	for xmath.Triangular(r.blocks.Len()) < len(s) {
		r.grow()
	}
	for i, x := range s {
		r.put(i, x)
	}
	r.n = len(s)
	return r
}

// Len returns the number of elements in the RootishArrayStack or 0 if nil.
func (r *RootishArrayStack[T]) Len() int {
	if r == nil {
		return 0
	}
	return r.n
}

// Blocks returns the number of allocated blocks.
func (r *RootishArrayStack[T]) Blocks() int { return r.blocks.Len() }

// Cap returns the number of slots over every allocated block.
func (r *RootishArrayStack[T]) Cap() int { return xmath.Triangular(r.blocks.Len()) }

// Get returns the i-th element. If i is out of bounds, it returns false.
func (r *RootishArrayStack[T]) Get(i int) (t T, ok bool) {
	if i < 0 || i >= r.n {
		return
	}
	return r.at(i), true
}

// Set writes x to the i-th position and returns the element it replaced. If
// i is out of bounds, nothing is written and it returns false.
func (r *RootishArrayStack[T]) Set(i int, x T) (old T, ok bool) {
	if i < 0 || i >= r.n {
		return
	}
	old = r.at(i)
	r.put(i, x)
	return old, true
}

// Add inserts x at index i, which may be Len() to append. A new block is
// appended first if the existing ones are full.
func (r *RootishArrayStack[T]) Add(i int, x T) error {
	if i < 0 || i > r.n {
		return outOfRange(i, r.n)
	}
	if xmath.Triangular(r.blocks.Len()) < r.n+1 {
		r.grow()
	}
	r.n++
	for k := r.n - 1; k > i; k-- {
		r.put(k, r.at(k-1))
	}
	r.stats.Moves += uint64(r.n - 1 - i)
	r.put(i, x)
	return nil
}

// Remove deletes the i-th element and returns it. If i is out of bounds, it
// returns false. Trailing blocks are released one at a time while two fewer
// blocks would still hold every element.
func (r *RootishArrayStack[T]) Remove(i int) (t T, ok bool) {
	if i < 0 || i >= r.n {
		return
	}
	t = r.at(i)
	for k := i; k < r.n-1; k++ {
		r.put(k, r.at(k+1))
	}
	r.stats.Moves += uint64(r.n - 1 - i)
	var zero T
	r.put(r.n-1, zero)
	r.n--
	r.shrink()
	return t, true
}

// MakeSliceCopy allocates a slice holding every element in order.
func (r *RootishArrayStack[T]) MakeSliceCopy() []T {
	s := make([]T, 0, r.n)
	for b := 0; len(s) < r.n; b++ {
		block, _ := r.blocks.Get(b)
		s = append(s, block[:min(len(block), r.n-len(s))]...)
	}
	return s
}

// Stats returns the work counters of the RootishArrayStack, including the
// stack of blocks.
func (r *RootishArrayStack[T]) Stats() Stats {
	return r.stats.Add(r.blocks.Stats())
}

func (r *RootishArrayStack[T]) at(i int) T {
	b, j := xmath.Locate(i)
	return r.blocks.buf[b][j]
}

func (r *RootishArrayStack[T]) put(i int, x T) {
	b, j := xmath.Locate(i)
	r.blocks.buf[b][j] = x
}

func (r *RootishArrayStack[T]) grow() {
	b := r.blocks.Len()
	_ = r.blocks.Add(b, make([]T, b+1))
	r.stats.Resizes++
}

func (r *RootishArrayStack[T]) shrink() {
	b := r.blocks.Len()
	for b > 0 && xmath.Triangular(b-2) >= r.n {
		r.blocks.Remove(b - 1)
		r.stats.Resizes++
		b--
	}
}
