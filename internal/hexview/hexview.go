// Package hexview renders opaque byte buffers as a fixed-width hex grid.
package hexview

import (
	"fmt"
	"strings"
)

const (
	// prefixWidth is the line-info prefix: a 3-digit hex line counter
	// followed by a 3-column gap.
	prefixWidth = 6

	// blockWidth is one 4-byte block: 8 hex digits plus a separator column.
	blockWidth = 9

	bytesPerBlock = 4
)

// MinWidth is the narrowest width that fits at least one block.
const MinWidth = prefixWidth + blockWidth

// BlocksPerLine returns how many 4-byte blocks fit into the given width.
// Widths too narrow for a single block yield 0 instead of underflowing.
func BlocksPerLine(width int) int {
	if width < MinWidth {
		return 0
	}
	return (width - prefixWidth) / blockWidth
}

// Render lays out data as lines of hex blocks for the given width in
// character columns. The output is a pure function of its inputs: same
// buffer and width always produce identical text. Buffers that fit no
// block (or an empty buffer) render as the empty string; any scrolling
// is the caller's concern.
func Render(data []byte, width int) string {
	blocks := BlocksPerLine(width)
	if blocks == 0 || len(data) == 0 {
		return ""
	}

	var b strings.Builder
	line := 0
	offset := 0
	for offset < len(data) {
		fmt.Fprintf(&b, "%03X   ", line)
		for i := 0; i < blocks && offset < len(data); i++ {
			end := offset + bytesPerBlock
			if end > len(data) {
				end = len(data)
			}
			for _, c := range data[offset:end] {
				fmt.Fprintf(&b, "%02X", c)
			}
			b.WriteByte(' ')
			offset = end
		}
		b.WriteByte('\n')
		line++
	}
	return b.String()
}

// LineCount reports how many lines Render will emit for the given
// buffer length and width: ceil(length / (4 * blocks)).
func LineCount(length, width int) int {
	blocks := BlocksPerLine(width)
	if blocks == 0 || length == 0 {
		return 0
	}
	perLine := blocks * bytesPerBlock
	return (length + perLine - 1) / perLine
}
