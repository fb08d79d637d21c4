package lists

// ArrayDeque is a list backed by a circular array. Add and Remove shift
// whichever side of index i holds fewer elements, so both ends are cheap and
// an operation at i costs O(1+min(i, n-i)) amortized.
//
// To create an ArrayDeque, use MakeArrayDeque or CopySliceToArrayDeque. nil
// ArrayDeques panic when called, except for Len. Creating an ArrayDeque in the
// following way is wrong:
//
//	var d ArrayDeque[int] // wrong
//
// The backing array doubles when it is full and halves its excess once at
// most a third of it is in use. Every resize moves the first element to
// slot 0.
type ArrayDeque[T any] struct {
	ring[T]
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// MakeArrayDeque returns an empty ArrayDeque with a single slot.
func MakeArrayDeque[T any]() *ArrayDeque[T] {
	return &ArrayDeque[T]{ring: makeRing[T](nil)}
}

// CopySliceToArrayDeque allocates a buffer of len(s) slots, or one for an
// empty slice, and copies every element of s to the ArrayDeque. Memory is not
// shared with s.
func CopySliceToArrayDeque[T any](s []T) *ArrayDeque[T] {
	return &ArrayDeque[T]{ring: makeRing(s)}
}

/*****************************************************************************
 * LIST API
 *****************************************************************************/

// Len returns the number of elements in the ArrayDeque or 0 if nil.
func (d *ArrayDeque[T]) Len() int {
	if d == nil {
		return 0
	}
	return d.n
}

// Get returns the i-th element. If i is out of bounds, it returns false.
func (d *ArrayDeque[T]) Get(i int) (t T, ok bool) {
	if i < 0 || i >= d.n {
		return
	}
	return d.buf[d.slot(i)], true
}

// Set writes x to the i-th position and returns the element it replaced. If
// i is out of bounds, nothing is written and it returns false.
func (d *ArrayDeque[T]) Set(i int, x T) (old T, ok bool) {
	if i < 0 || i >= d.n {
		return
	}
	s := d.slot(i)
	old, d.buf[s] = d.buf[s], x
	return old, true
}

// Add inserts x at index i, which may be Len() to append. When i is in the
// front half, the elements before i move one slot towards the front;
// otherwise the elements from i on move one slot towards the back.
func (d *ArrayDeque[T]) Add(i int, x T) error {
	if i < 0 || i > d.n {
		return outOfRange(i, d.n)
	}
	d.grow()
	c := len(d.buf)
	if i < d.n/2 {
		d.j = wrap(d.j, -1, c)
		for k := 0; k < i; k++ {
			d.buf[wrap(d.j, k, c)] = d.buf[wrap(d.j, k+1, c)]
		}
		d.stats.Moves += uint64(i)
	} else {
		for k := d.n; k > i; k-- {
			d.buf[wrap(d.j, k, c)] = d.buf[wrap(d.j, k-1, c)]
		}
		d.stats.Moves += uint64(d.n - i)
	}
	d.buf[wrap(d.j, i, c)] = x
	d.n++
	return nil
}

// Remove deletes the i-th element and returns it. If i is out of bounds, it
// returns false. Like Add, it closes the gap from the shorter side.
func (d *ArrayDeque[T]) Remove(i int) (t T, ok bool) {
	if i < 0 || i >= d.n {
		return
	}
	c := len(d.buf)
	t = d.buf[wrap(d.j, i, c)]
	if i < d.n/2 {
		for k := i; k > 0; k-- {
			d.buf[wrap(d.j, k, c)] = d.buf[wrap(d.j, k-1, c)]
		}
		d.stats.Moves += uint64(i)
		d.clear(d.j)
		d.j = wrap(d.j, 1, c)
	} else {
		for k := i; k < d.n-1; k++ {
			d.buf[wrap(d.j, k, c)] = d.buf[wrap(d.j, k+1, c)]
		}
		d.stats.Moves += uint64(d.n - 1 - i)
		d.clear(wrap(d.j, d.n-1, c))
	}
	d.n--
	d.shrink()
	return t, true
}
