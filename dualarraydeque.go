package lists

// DualArrayDeque is a list made of two ArrayStacks placed back to back. front
// holds the first elements in reverse order, so front's last slot is index 0,
// and back holds the rest in order. Both ends are therefore the cheap end of
// some ArrayStack.
//
// After every Add and Remove the two sides are rebuilt around the middle if
// one has more than three times the elements of the other.
type DualArrayDeque[T any] struct {
	front, back *ArrayStack[T]
	// stats holds rebalances and the counters of retired ArrayStacks.
	stats Stats
}

// MakeDualArrayDeque returns an empty DualArrayDeque.
func MakeDualArrayDeque[T any]() *DualArrayDeque[T] {
	return &DualArrayDeque[T]{
		front: MakeArrayStack[T](),
		back:  MakeArrayStack[T](),
	}
}

// CopySliceToDualArrayDeque returns a DualArrayDeque holding the elements of s
// split evenly between both sides. Memory is not shared with s.
func CopySliceToDualArrayDeque[T any](s []T) *DualArrayDeque[T] {
	d := &DualArrayDeque[T]{}
	d.split(s)
	return d
}

// Len returns the number of elements in the DualArrayDeque or 0 if nil.
func (d *DualArrayDeque[T]) Len() int {
	if d == nil {
		return 0
	}
	return d.front.Len() + d.back.Len()
}

// Sides returns the number of elements held by the front and back stacks.
func (d *DualArrayDeque[T]) Sides() (front, back int) {
	return d.front.Len(), d.back.Len()
}

// Get returns the i-th element. If i is out of bounds, it returns false.
func (d *DualArrayDeque[T]) Get(i int) (t T, ok bool) {
	if i < 0 {
		return
	}
	f := d.front.Len()
	if i < f {
		return d.front.Get(f - i - 1)
	}
	return d.back.Get(i - f)
}

// Set writes x to the i-th position and returns the element it replaced. If
// i is out of bounds, nothing is written and it returns false.
func (d *DualArrayDeque[T]) Set(i int, x T) (old T, ok bool) {
	if i < 0 {
		return
	}
	f := d.front.Len()
	if i < f {
		return d.front.Set(f-i-1, x)
	}
	return d.back.Set(i-f, x)
}

// Add inserts x at index i, which may be Len() to append.
func (d *DualArrayDeque[T]) Add(i int, x T) error {
	if n := d.Len(); i < 0 || i > n {
		return outOfRange(i, n)
	}
	var err error
	if f := d.front.Len(); i < f {
		err = d.front.Add(f-i, x)
	} else {
		err = d.back.Add(i-f, x)
	}
	if err != nil {
		return err
	}
	d.balance()
	return nil
}

// Remove deletes the i-th element and returns it. If i is out of bounds, it
// returns false.
func (d *DualArrayDeque[T]) Remove(i int) (t T, ok bool) {
	if i < 0 || i >= d.Len() {
		return
	}
	if f := d.front.Len(); i < f {
		t, ok = d.front.Remove(f - i - 1)
	} else {
		t, ok = d.back.Remove(i - f)
	}
	d.balance()
	return t, ok
}

// MakeSliceCopy allocates a slice holding every element in order.
func (d *DualArrayDeque[T]) MakeSliceCopy() []T {
	f := d.front.Len()
	s := make([]T, f+d.back.Len())
	for k := 0; k < f; k++ {
		s[k] = d.front.buf[f-k-1]
	}
	copy(s[f:], d.back.buf[:d.back.n])
	return s
}

// Stats returns the work counters of the DualArrayDeque and both stacks.
func (d *DualArrayDeque[T]) Stats() Stats {
	return d.stats.Add(d.front.Stats()).Add(d.back.Stats())
}

func (d *DualArrayDeque[T]) balance() {
	f, b := d.front.Len(), d.back.Len()
	if 3*f >= b && 3*b >= f {
		return
	}
	s := d.MakeSliceCopy()
	d.stats = d.Stats()
	d.stats.Rebalances++
	d.stats.Moves += uint64(len(s))
	d.split(s)
}

// split replaces both sides with stacks holding s[:mid] reversed and s[mid:].
func (d *DualArrayDeque[T]) split(s []T) {
	mid := len(s) / 2
	front := make([]T, mid)
	for k := range mid {
		front[k] = s[mid-k-1]
	}
	d.front = CopySliceToArrayStack(front)
	d.back = CopySliceToArrayStack(s[mid:])
}
