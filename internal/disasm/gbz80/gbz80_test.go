package gbz80

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisassembleSimple(t *testing.T) {
	lines, err := Disassemble([]byte{0x00, 0xC9})
	require.NoError(t, err)
	assert.Equal(t, []string{"nop", "ret"}, lines)
}

func TestDisassembleImmediates(t *testing.T) {
	tests := []struct {
		name string
		code []byte
		want []string
	}{
		{"jp", []byte{0xC3, 0x50, 0x01}, []string{"jp $0150"}},
		{"ld d16", []byte{0x21, 0x00, 0xC0}, []string{"ld hl,$C000"}},
		{"ld d8", []byte{0x3E, 0x42}, []string{"ld a,$42"}},
		{"ldh", []byte{0xE0, 0x26}, []string{"ldh ($FF26),a"}},
		{"jr backward", []byte{0x18, 0xFE}, []string{"jr -2"}},
		{"jr conditional", []byte{0x20, 0x05}, []string{"jr nz,+5"}},
		{"rst", []byte{0xFF}, []string{"rst 38h"}},
		{"ld r,r", []byte{0x78}, []string{"ld a,b"}},
		{"alu", []byte{0xAF}, []string{"xor a"}},
		{"halt", []byte{0x76}, []string{"halt"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := Disassemble(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, lines)
		})
	}
}

func TestDisassembleCBPrefix(t *testing.T) {
	lines, err := Disassemble([]byte{0xCB, 0x37, 0xCB, 0x7C, 0xCB, 0x87, 0xCB, 0xC6})
	require.NoError(t, err)
	assert.Equal(t, []string{"swap a", "bit 7,h", "res 0,a", "set 0,(hl)"}, lines)
}

func TestDisassembleEntryPoint(t *testing.T) {
	// The canonical cartridge entry: nop; jp $0150.
	lines, err := Disassemble([]byte{0x00, 0xC3, 0x50, 0x01})
	require.NoError(t, err)
	assert.Equal(t, []string{"nop", "jp $0150"}, lines)
}

func TestDisassembleIllegalOpcode(t *testing.T) {
	_, err := Disassemble([]byte{0x00, 0xD3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0xD3")
	assert.Contains(t, err.Error(), "offset 1")
}

func TestDisassembleTruncated(t *testing.T) {
	_, err := Disassemble([]byte{0xC3, 0x50})
	assert.Error(t, err)

	_, err = Disassemble([]byte{0xCB})
	assert.Error(t, err)
}

func TestDisassembleEmpty(t *testing.T) {
	lines, err := Disassemble(nil)
	require.NoError(t, err)
	assert.Empty(t, lines)
}
