// Package counter holds the single integer the counter app displays.
//
// A Counter is not safe for concurrent use. The UI mutates it only from
// Bubble Tea's update loop, which handles one message at a time.
package counter

import "strconv"

// Action is one of the three operations a control can trigger.
type Action int

const (
	Increment Action = iota
	Decrement
	Reset
)

func (a Action) String() string {
	switch a {
	case Increment:
		return "increment"
	case Decrement:
		return "decrement"
	case Reset:
		return "reset"
	}
	return "unknown"
}

// Counter is a signed count starting at zero. The zero value is ready to use.
type Counter struct {
	count int
}

// New returns a Counter at zero.
func New() *Counter {
	return &Counter{}
}

// Increment adds one.
func (c *Counter) Increment() { c.count++ }

// Decrement subtracts one.
func (c *Counter) Decrement() { c.count-- }

// Reset sets the count back to zero.
func (c *Counter) Reset() { c.count = 0 }

// Value returns the current count.
func (c *Counter) Value() int { return c.count }

// Apply runs the operation named by a. Unknown actions are ignored.
func (c *Counter) Apply(a Action) {
	switch a {
	case Increment:
		c.Increment()
	case Decrement:
		c.Decrement()
	case Reset:
		c.Reset()
	}
}

// String renders the count the way the badge shows it, e.g. "Count: -1".
func (c *Counter) String() string {
	return "Count: " + strconv.Itoa(c.count)
}
