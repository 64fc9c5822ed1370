package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func selected(t *testing.T, l *List) int {
	t.Helper()
	i, ok := l.Selected()
	assert.True(t, ok)
	return i
}

func TestNewHasNoSelection(t *testing.T) {
	l := New()
	_, ok := l.Selected()
	assert.False(t, ok)
}

func TestNextFromNoneSelectsFirst(t *testing.T) {
	l := New()
	l.Next(5)
	assert.Equal(t, 0, selected(t, l))
}

func TestPrevFromNoneSelectsLast(t *testing.T) {
	l := New()
	l.Prev(5)
	assert.Equal(t, 4, selected(t, l))
}

func TestNextSaturates(t *testing.T) {
	l := New()
	for i := 0; i < 5; i++ {
		l.Next(5)
	}
	assert.Equal(t, 4, selected(t, l))

	// Further calls stay put: no wraparound.
	l.Next(5)
	l.Next(5)
	assert.Equal(t, 4, selected(t, l))
}

func TestPrevSaturates(t *testing.T) {
	l := NewAt(1)
	l.Prev(5)
	assert.Equal(t, 0, selected(t, l))
	l.Prev(5)
	assert.Equal(t, 0, selected(t, l))
}

func TestEmptyListIsInert(t *testing.T) {
	l := New()
	l.Next(0)
	l.Prev(0)
	_, ok := l.Selected()
	assert.False(t, ok)
}
