// Package cursor provides the single-selection list cursor shared by the
// format viewers (load commands, ROM banks).
package cursor

// List is an optional index into an ordered sequence. The sequence itself
// is owned by the parsed binary structure; the cursor only ever receives
// its length. Movement saturates at the ends — unlike focus cycling,
// selection does not wrap.
type List struct {
	index    int
	selected bool
}

// New returns a cursor with nothing selected.
func New() *List {
	return &List{}
}

// NewAt returns a cursor selecting index, the usual initial state for a
// freshly constructed viewer.
func NewAt(index int) *List {
	return &List{index: index, selected: true}
}

// Selected returns the selected index, or ok=false when nothing is
// selected.
func (l *List) Selected() (int, bool) {
	if !l.selected {
		return 0, false
	}
	return l.index, true
}

// Next moves the selection down one entry in a list of the given length,
// saturating at the last entry. With no selection it selects the first.
func (l *List) Next(length int) {
	if length <= 0 {
		return
	}
	if !l.selected {
		l.index = 0
		l.selected = true
		return
	}
	if l.index < length-1 {
		l.index++
	}
}

// Prev moves the selection up one entry, saturating at the first. With no
// selection it selects the last.
func (l *List) Prev(length int) {
	if length <= 0 {
		return
	}
	if !l.selected {
		l.index = length - 1
		l.selected = true
		return
	}
	if l.index > 0 {
		l.index--
	}
}
