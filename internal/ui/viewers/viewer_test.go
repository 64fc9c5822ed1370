package viewers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binspect/internal/binary"
	"binspect/internal/config"
	"binspect/internal/gb"
	"binspect/internal/macho"
	"binspect/internal/ui/views"
)

func testStyles() *views.Styles {
	return views.NewStyles(config.Default().UI)
}

func testROM(t *testing.T) *gb.ROM {
	t.Helper()

	logo := make([]byte, 48)
	for i := range logo {
		logo[i] = 0xFF
	}

	bank := make([]byte, 0x4000)
	for i := range bank {
		bank[i] = 0xFF
	}
	vector := func(program ...byte) []byte {
		v := append([]byte{}, program...)
		for len(v) < 8 {
			v = append(v, 0xFF)
		}
		return v
	}

	rom := &gb.ROM{
		Header: gb.Header{
			EntryPoint:  []byte{0x00, 0xC3, 0x50, 0x01}, // nop; jp $0150
			Logo:        logo,
			Title:       "TETRIS",
			ROMSizeCode: 0x01, // 4 banks
		},
		Interrupts: gb.Interrupts{
			VBlank:  vector(0xC9), // ret
			LCDStat: vector(),
			Timer:   vector(),
			Serial:  vector(),
			Joypad:  vector(),
		},
		Banks: [][]byte{bank, bank, bank, bank},
	}
	for i := range rom.Restarts {
		rom.Restarts[i] = vector()
	}
	return rom
}

func testMacho() *macho.File {
	return &macho.File{
		CPU:  "CpuArm64",
		Type: "TypeExec",
		Ncmd: 2,
		Commands: []macho.Command{
			{Label: "Segment64 | __TEXT", Sections: []macho.Section{
				{Name: "__text", Addr: 0x100000000, Size: 0x40},
			}},
			{Label: "UUID"},
		},
	}
}

func TestNewMatchesBinaryKind(t *testing.T) {
	styles := testStyles()

	v := New(nil, styles)
	assert.IsType(t, &Placeholder{}, v)

	v = New(&binary.File{Kind: binary.KindMacho, Macho: testMacho()}, styles)
	assert.IsType(t, &Macho{}, v)

	v = New(&binary.File{Kind: binary.KindGameBoy, GameBoy: testROM(t)}, styles)
	assert.IsType(t, &GameBoy{}, v)

	// A kind without its parsed payload falls back to the placeholder.
	v = New(&binary.File{Kind: binary.KindMacho}, styles)
	assert.IsType(t, &Placeholder{}, v)
}

func TestPlaceholderView(t *testing.T) {
	v := NewPlaceholder(testStyles())
	out := v.View(80, 24)
	assert.Contains(t, out, ":o <path>")
}

func TestGameBoySelectionGatedOnBankFocus(t *testing.T) {
	v := NewGameBoy(testROM(t), testStyles())

	// Initial focus is the header pane; selection moves are ignored.
	v.MoveSelection(1)
	out := v.View(120, 40)
	assert.Contains(t, out, "> Bank 0")

	// One step forward from the header lands on the bank list.
	v.CycleFocus(1)
	v.MoveSelection(1)
	out = v.View(120, 40)
	assert.Contains(t, out, "> Bank 1")
}

func TestGameBoyFocusWraps(t *testing.T) {
	v := NewGameBoy(testROM(t), testStyles())

	// Header -> Banks -> wrap to Restarts -> back to Banks.
	v.CycleFocus(1)
	v.CycleFocus(1)
	v.CycleFocus(-1)
	v.MoveSelection(1)
	out := v.View(120, 40)
	assert.Contains(t, out, "> Bank 1")
}

func TestGameBoyBlurAndFocus(t *testing.T) {
	v := NewGameBoy(testROM(t), testStyles())
	v.CycleFocus(1) // banks

	v.Blur()
	v.MoveSelection(1)
	out := v.View(120, 40)
	assert.Contains(t, out, "> Bank 0")

	v.Focus()
	v.MoveSelection(1)
	out = v.View(120, 40)
	assert.Contains(t, out, "> Bank 1")
}

func TestGameBoyHeaderDetail(t *testing.T) {
	v := NewGameBoy(testROM(t), testStyles())
	out := v.View(120, 40)

	assert.Contains(t, out, "Game Title:")
	assert.Contains(t, out, "TETRIS")
	assert.Contains(t, out, "jp $0150")
	assert.Contains(t, out, "Non-default restarts: 0")
	assert.Contains(t, out, "Non-default interrupts: 1")
	assert.Contains(t, out, "Banks (4)")
}

func TestGameBoyVectorDetails(t *testing.T) {
	v := NewGameBoy(testROM(t), testStyles())

	// Restarts pane is one step past the bank list.
	v.CycleFocus(1)
	v.CycleFocus(1)
	out := v.View(120, 40)
	assert.Contains(t, out, "RST 0:")
	assert.Contains(t, out, "RST 7:")

	v.CycleFocus(1)
	out = v.View(120, 40)
	assert.Contains(t, out, "V-Blank:")
	assert.Contains(t, out, "ret")
	assert.Contains(t, out, "Joypad:")
}

func TestGameBoyBankDetailIsHex(t *testing.T) {
	v := NewGameBoy(testROM(t), testStyles())
	v.CycleFocus(1) // banks
	out := v.View(120, 40)

	assert.Contains(t, out, "FFFFFFFF")
	assert.Contains(t, out, "000   ")
}

func TestMachoInitialFocusIsCommands(t *testing.T) {
	v := NewMacho(testMacho(), testStyles())

	v.MoveSelection(1)
	out := v.View(120, 40)
	assert.Contains(t, out, "> UUID")
}

func TestMachoDetailShowsSections(t *testing.T) {
	v := NewMacho(testMacho(), testStyles())
	out := v.View(120, 40)

	require.Contains(t, out, "> Segment64 | __TEXT")
	assert.Contains(t, out, "__text")

	// Non-segment commands leave the detail pane empty of sections.
	v.MoveSelection(1)
	out = v.View(120, 40)
	assert.NotContains(t, out, "__text")
}

func TestMachoSelectionSaturates(t *testing.T) {
	v := NewMacho(testMacho(), testStyles())

	for i := 0; i < 5; i++ {
		v.MoveSelection(1)
	}
	out := v.View(120, 40)
	assert.Contains(t, out, "> UUID")

	for i := 0; i < 5; i++ {
		v.MoveSelection(-1)
	}
	out = v.View(120, 40)
	assert.Contains(t, out, "> Segment64 | __TEXT")
}

func TestLogoRow(t *testing.T) {
	solid := make([]byte, 48)
	for i := range solid {
		solid[i] = 0xFF
	}
	row := logoRow(0, solid)
	assert.Equal(t, strings.Repeat("█", 24), row)

	blank := make([]byte, 48)
	assert.Equal(t, strings.Repeat(" ", 24), logoRow(3, blank))

	assert.Equal(t, "", logoRow(0, []byte{0xFF}))
}
