// Package focus provides the focus ring every format viewer navigates with.
package focus

// Cycle tracks which of an ordered set of panels holds focus. The zero
// sentinel value means nothing is focused; it never appears in the cycle
// order itself. Only the owning viewer mutates a Cycle — rendering code
// reads Current and nothing else.
type Cycle[T comparable] struct {
	order    []T
	sentinel T
	current  T
	previous T
}

// NewCycle returns a cycle over order, starting focused on initial.
// order must not contain the sentinel.
func NewCycle[T comparable](sentinel, initial T, order []T) *Cycle[T] {
	return &Cycle[T]{
		order:    order,
		sentinel: sentinel,
		current:  initial,
		previous: sentinel,
	}
}

// Current returns the focused value, or the sentinel while unfocused.
func (c *Cycle[T]) Current() T {
	return c.current
}

// Is reports whether v currently holds focus.
func (c *Cycle[T]) Is(v T) bool {
	return c.current == v
}

// Advance moves focus by dir (+1 or -1) through the cycle order, wrapping
// at both ends. When current is the sentinel the scan falls back to
// position 0 before the direction is applied.
func (c *Cycle[T]) Advance(dir int) {
	n := len(c.order)
	if n == 0 {
		return
	}
	pos := 0
	for i, v := range c.order {
		if v == c.current {
			pos = i
			break
		}
	}
	c.current = c.order[(n+pos+dir)%n]
}

// Unfocus saves the current focus and clears it to the sentinel. Called
// when input leaves Interactive mode.
func (c *Cycle[T]) Unfocus() {
	c.previous = c.current
	c.current = c.sentinel
}

// Refocus restores the focus saved by Unfocus. Called when input
// re-enters Interactive mode.
func (c *Cycle[T]) Refocus() {
	c.current = c.previous
}
