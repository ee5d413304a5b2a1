package assign

// roundRobinCursor walks the indices in [0, size), wrapping around after the
// last one. A fresh cursor has not selected anything yet; the first advance
// lands on index 0.
type roundRobinCursor struct {
	last int
	size int
}

func newRoundRobinCursor(size int) roundRobinCursor {
	return roundRobinCursor{last: -1, size: size}
}

// advance moves the cursor to the next index and returns it. Size must be
// positive; the grouper never produces empty groups, and the distributor
// skips topics with no groups at all.
func (c *roundRobinCursor) advance() int {
	c.last = (c.last + 1) % c.size
	return c.last
}
