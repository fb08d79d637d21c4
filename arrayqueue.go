package lists

// ArrayQueue is a FIFO queue backed by a circular array. Add appends at the
// back and Remove pops from the front, both in amortized O(1).
//
// To create an ArrayQueue, use MakeArrayQueue or CopySliceToArrayQueue. nil
// ArrayQueues panic when called, except for Len.
type ArrayQueue[T any] struct {
	ring[T]
}

// MakeArrayQueue returns an empty ArrayQueue with a single slot.
func MakeArrayQueue[T any]() *ArrayQueue[T] {
	return &ArrayQueue[T]{ring: makeRing[T](nil)}
}

// CopySliceToArrayQueue returns an ArrayQueue holding the elements of s, s[0]
// being the front. Memory is not shared with s.
func CopySliceToArrayQueue[T any](s []T) *ArrayQueue[T] {
	return &ArrayQueue[T]{ring: makeRing(s)}
}

// Len returns the number of elements in the ArrayQueue or 0 if nil.
func (q *ArrayQueue[T]) Len() int {
	if q == nil {
		return 0
	}
	return q.n
}

// Add puts x at the back of the queue. It always succeeds and returns true.
func (q *ArrayQueue[T]) Add(x T) bool {
	q.grow()
	q.buf[q.slot(q.n)] = x
	q.n++
	return true
}

// Remove pops the front of the queue. If it's empty, it returns false.
func (q *ArrayQueue[T]) Remove() (t T, ok bool) {
	if q.n == 0 {
		return
	}
	t = q.buf[q.j]
	q.clear(q.j)
	q.j = q.slot(1)
	q.n--
	q.shrink()
	return t, true
}

// Peek returns the front of the queue without removing it. If it's empty, it
// returns false.
func (q *ArrayQueue[T]) Peek() (t T, ok bool) {
	if q.n == 0 {
		return
	}
	return q.buf[q.j], true
}
