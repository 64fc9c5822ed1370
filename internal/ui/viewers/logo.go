package viewers

import "strings"

// quadrants maps a pair of 2-pixel rows (top row in the high bits) to
// the matching quadrant block character.
var quadrants = [16]rune{
	' ',        // 00 00
	'▗',   // 00 01
	'▖',   // 00 10
	'▄',   // 00 11
	'▝',   // 01 00
	'▐',   // 01 01
	'▞',   // 01 10
	'▟',   // 01 11
	'▘',   // 10 00
	'▚',   // 10 01
	'▌',   // 10 10
	'▙',   // 10 11
	'▀',   // 11 00
	'▜',   // 11 01
	'▛',   // 11 10
	'█',   // 11 11
}

// logoRow renders one of the four text rows of the 48x8-pixel logo
// bitmap. The bitmap stores the top and bottom halves in 24-byte runs;
// within a run, even and odd bytes interleave scanlines and each nibble
// holds four pixels. Two scanlines are folded into one text row using
// quadrant characters.
func logoRow(row int, logo []byte) string {
	if len(logo) < 48 {
		return ""
	}

	var b strings.Builder
	dis := row % 2
	offset := 0
	if row >= 2 {
		offset = 24
	}
	for i := 0; i < 24; i += 2 {
		v := logo[offset+i+dis]
		top := (v & 0xF0) >> 4
		bottom := v & 0x0F
		for s := 1; s >= 0; s-- {
			mask := byte(0b11 << (s * 2))
			t := (top & mask) >> (s * 2)
			bo := (bottom & mask) >> (s * 2)
			b.WriteRune(quadrants[t<<2|bo])
		}
	}
	return b.String()
}
