package lists

// Stats counts the work a list has done since it was made. Moves counts every
// element copied from one slot to another, whether by shifting or by a
// resize. Together with the number of operations performed it gives the
// amortized cost per operation.
type Stats struct {
	// Resizes counts backing array reallocations, including block
	// allocations and releases for RootishArrayStack.
	Resizes uint64
	// Moves counts element copies.
	Moves uint64
	// Rebalances counts DualArrayDeque front/back rebuilds.
	Rebalances uint64
}

// Add returns the field-wise sum of s and o.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Resizes:    s.Resizes + o.Resizes,
		Moves:      s.Moves + o.Moves,
		Rebalances: s.Rebalances + o.Rebalances,
	}
}

// MovesPerOp returns the average number of moves over ops operations, or 0 if
// ops is not positive.
func (s Stats) MovesPerOp(ops int) float64 {
	if ops <= 0 {
		return 0
	}
	return float64(s.Moves) / float64(ops)
}
