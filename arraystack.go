package lists

// ArrayStack is a list backed by a single array whose first slot holds the
// first element. Adding or removing at index i shifts every element after i,
// so it is cheap at the back and expensive at the front.
//
// To create an ArrayStack, use MakeArrayStack or CopySliceToArrayStack. nil
// ArrayStacks panic when called, except for Len.
type ArrayStack[T any] struct {
	buf   []T
	n     int
	stats Stats
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// MakeArrayStack returns an empty ArrayStack with a single slot.
func MakeArrayStack[T any]() *ArrayStack[T] {
	return &ArrayStack[T]{buf: make([]T, 1)}
}

// CopySliceToArrayStack allocates a buffer of len(s) slots, or one for an
// empty slice, and copies s into it. Memory is not shared with s.
func CopySliceToArrayStack[T any](s []T) *ArrayStack[T] {
	buf := make([]T, max(1, len(s)))
	copy(buf, s)
	return &ArrayStack[T]{buf: buf, n: len(s)}
}

/*****************************************************************************
 * LIST API
 *****************************************************************************/

// Len returns the number of elements in the ArrayStack or 0 if nil.
func (a *ArrayStack[T]) Len() int {
	if a == nil {
		return 0
	}
	return a.n
}

// Cap returns the length of the backing array.
func (a *ArrayStack[T]) Cap() int { return len(a.buf) }

// Get returns the i-th element. If i is out of bounds, it returns false.
func (a *ArrayStack[T]) Get(i int) (t T, ok bool) {
	if i < 0 || i >= a.n {
		return
	}
	return a.buf[i], true
}

// Set writes x to the i-th position and returns the element it replaced. If
// i is out of bounds, nothing is written and it returns false.
func (a *ArrayStack[T]) Set(i int, x T) (old T, ok bool) {
	if i < 0 || i >= a.n {
		return
	}
	old, a.buf[i] = a.buf[i], x
	return old, true
}

// Add inserts x at index i, which may be Len() to append. The backing array
// doubles before shifting if it is full.
func (a *ArrayStack[T]) Add(i int, x T) error {
	if i < 0 || i > a.n {
		return outOfRange(i, a.n)
	}
	if a.n == len(a.buf) {
		a.resize(fitCap(a.n))
	}
	copy(a.buf[i+1:a.n+1], a.buf[i:a.n])
	a.stats.Moves += uint64(a.n - i)
	a.buf[i] = x
	a.n++
	return nil
}

// Remove deletes the i-th element and returns it. If i is out of bounds, it
// returns false. The backing array shrinks once it is at least three times
// the number of remaining elements.
func (a *ArrayStack[T]) Remove(i int) (t T, ok bool) {
	if i < 0 || i >= a.n {
		return
	}
	t = a.buf[i]
	copy(a.buf[i:a.n-1], a.buf[i+1:a.n])
	a.stats.Moves += uint64(a.n - i - 1)
	a.n--
	var zero T
	a.buf[a.n] = zero
	if len(a.buf) >= 3*a.n {
		a.resize(fitCap(a.n))
	}
	return t, true
}

// MakeSliceCopy allocates a slice holding every element in order.
func (a *ArrayStack[T]) MakeSliceCopy() []T {
	s := make([]T, a.n)
	copy(s, a.buf[:a.n])
	return s
}

// Stats returns the work counters of the ArrayStack.
func (a *ArrayStack[T]) Stats() Stats { return a.stats }

/*****************************************************************************
 * HELPERS
 *****************************************************************************/

// resize moves the live elements into a fresh array of newCap slots. It is a
// no-op when the capacity would not change.
func (a *ArrayStack[T]) resize(newCap int) {
	if newCap == len(a.buf) {
		return
	}
	newBuf := make([]T, newCap)
	copy(newBuf, a.buf[:a.n])
	a.buf = newBuf
	a.stats.Resizes++
	a.stats.Moves += uint64(a.n)
}
