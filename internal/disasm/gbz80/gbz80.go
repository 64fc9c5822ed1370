// Package gbz80 disassembles SM83 machine code, the Game Boy's Z80
// derivative. It is a straight linear decoder for short, fixed ranges
// (entry points, interrupt and restart vectors), not a tracing
// disassembler.
package gbz80

import (
	"fmt"
	"strings"
)

const prefixCB = 0xCB

// Disassemble decodes data into one instruction string per element.
// Decoding fails on an illegal opcode or an instruction truncated by the
// end of the range.
func Disassemble(data []byte) ([]string, error) {
	var out []string
	offset := 0
	for offset < len(data) {
		text, size, err := decode(data[offset:])
		if err != nil {
			return nil, fmt.Errorf("at offset %d: %w", offset, err)
		}
		out = append(out, text)
		offset += size
	}
	return out, nil
}

func decode(data []byte) (string, int, error) {
	op := data[0]

	if op == prefixCB {
		if len(data) < 2 {
			return "", 0, fmt.Errorf("truncated cb-prefixed instruction")
		}
		return cbName(data[1]), 2, nil
	}

	entry := opcodes[op]
	if entry.size == 0 {
		return "", 0, fmt.Errorf("illegal opcode 0x%02X", op)
	}
	if len(data) < entry.size {
		return "", 0, fmt.Errorf("truncated %s instruction", strings.Fields(entry.name)[0])
	}

	return expand(entry, data), entry.size, nil
}

// expand substitutes operand placeholders with the instruction's
// immediate bytes. 16-bit immediates are little-endian.
func expand(entry opcode, data []byte) string {
	name := entry.name
	switch {
	case strings.Contains(name, "d16"):
		name = strings.Replace(name, "d16", imm16(data), 1)
	case strings.Contains(name, "a16"):
		name = strings.Replace(name, "a16", imm16(data), 1)
	case strings.Contains(name, "d8"):
		name = strings.Replace(name, "d8", fmt.Sprintf("$%02X", data[1]), 1)
	case strings.Contains(name, "a8"):
		name = strings.Replace(name, "a8", fmt.Sprintf("$FF%02X", data[1]), 1)
	case strings.Contains(name, "r8"):
		name = strings.Replace(name, "r8", fmt.Sprintf("%+d", int8(data[1])), 1)
	}
	return name
}

func imm16(data []byte) string {
	return fmt.Sprintf("$%04X", uint16(data[1])|uint16(data[2])<<8)
}
