package lists

// ring is the circular buffer behind ArrayQueue and ArrayDeque. Logical index
// i lives in slot (j+i) mod len(buf). The buffer always has at least one slot.
type ring[T any] struct {
	buf   []T
	j, n  int
	stats Stats
}

func makeRing[T any](s []T) ring[T] {
	buf := make([]T, max(1, len(s)))
	copy(buf, s)
	return ring[T]{buf: buf, n: len(s)}
}

// Cap returns the length of the backing array.
func (r *ring[T]) Cap() int { return len(r.buf) }

// Stats returns the work counters accumulated so far.
func (r *ring[T]) Stats() Stats { return r.stats }

// MakeSliceCopy allocates a slice holding every element in order.
func (r *ring[T]) MakeSliceCopy() []T {
	s := make([]T, r.n)
	r.copySlice(s)
	return s
}

func (r *ring[T]) slot(i int) int { return wrap(r.j, i, len(r.buf)) }

// slices returns the live elements as at most two contiguous runs.
func (r *ring[T]) slices() (a, b []T) {
	if r.n == 0 {
		return nil, nil
	}
	end := r.j + r.n
	if end <= len(r.buf) {
		return r.buf[r.j:end], nil
	}
	return r.buf[r.j:], r.buf[:end-len(r.buf)]
}

func (r *ring[T]) copySlice(buf []T) int {
	s1, s2 := r.slices()
	c := copy(buf, s1)
	return c + copy(buf[c:], s2)
}

// resize re-linearizes the live elements into a fresh array of newCap slots
// so that logical index 0 lands in slot 0. It is a no-op when the capacity
// would not change.
func (r *ring[T]) resize(newCap int) {
	if newCap == len(r.buf) {
		return
	}
	newBuf := make([]T, newCap)
	r.copySlice(newBuf)
	r.buf = newBuf
	r.j = 0
	r.stats.Resizes++
	r.stats.Moves += uint64(r.n)
}

// grow makes room for one more element.
func (r *ring[T]) grow() {
	if r.n+1 > len(r.buf) {
		r.resize(fitCap(r.n))
	}
}

// shrink releases capacity once at most a third of it is in use.
func (r *ring[T]) shrink() {
	if len(r.buf) >= 3*r.n {
		r.resize(fitCap(r.n))
	}
}

func (r *ring[T]) clear(slot int) {
	var zero T
	r.buf[slot] = zero
}
