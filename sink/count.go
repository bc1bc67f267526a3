package sink

// Count tallies bytes without storing them.
//
// It is the cheapest possible sink, used to measure encoded size and to
// benchmark the encode path without I/O or allocation noise.
type Count struct {
	n int64
}

// Write records the length of p and discards the bytes.
func (c *Count) Write(p []byte) (int, error) {
	c.n += int64(len(p))
	return len(p), nil
}

// Total returns the number of bytes written so far.
func (c *Count) Total() int64 {
	return c.n
}

// Reset clears the counter for reuse.
func (c *Count) Reset() {
	c.n = 0
}
