package todostore

// IDSource hands out todo ids. Every value returned by Next must be strictly
// greater than every value it returned before.
type IDSource interface {
	Next() int
}

// Counter is a monotonic IDSource. It is not safe for concurrent use; a
// session applies actions one at a time.
type Counter struct {
	last int
}

// NewCounter returns a Counter whose first id is after+1. Pass the largest
// id already present in the initial state.
func NewCounter(after int) *Counter {
	return &Counter{last: after}
}

// Next returns the next id.
func (c *Counter) Next() int {
	c.last++
	return c.last
}

// Last returns the most recently issued id, or the starting point if none
// has been issued yet.
func (c *Counter) Last() int { return c.last }
