package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binspect/internal/binary"
	"binspect/internal/config"
	"binspect/internal/gb"
	"binspect/internal/ui/input/types"
	"binspect/internal/ui/viewers"
)

func testModel() *Model {
	m := NewModel(config.Default())
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func typeKeys(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func pressEnter(m *Model) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func testBinary() *binary.File {
	vector := func() []byte {
		v := make([]byte, 8)
		for i := range v {
			v[i] = 0xFF
		}
		return v
	}
	rom := &gb.ROM{
		Header: gb.Header{
			EntryPoint:  []byte{0x00, 0xC3, 0x50, 0x01},
			Logo:        make([]byte, 48),
			Title:       "TETRIS",
			ROMSizeCode: 0x00,
		},
		Interrupts: gb.Interrupts{
			VBlank: vector(), LCDStat: vector(), Timer: vector(),
			Serial: vector(), Joypad: vector(),
		},
		Banks: [][]byte{make([]byte, 0x4000), make([]byte, 0x4000)},
	}
	for i := range rom.Restarts {
		rom.Restarts[i] = vector()
	}
	return &binary.File{Path: "rom.gb", Kind: binary.KindGameBoy, GameBoy: rom}
}

func TestQuitCommand(t *testing.T) {
	m := testModel()

	typeKeys(m, ":q")
	cmd := pressEnter(m)

	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
}

func TestOpenFailureStaysInCommandMode(t *testing.T) {
	m := testModel()
	m.openFile = func(path string) (*binary.File, error) {
		return nil, errors.New("no such file")
	}

	typeKeys(m, ":o missing.bin")
	pressEnter(m)

	assert.Equal(t, types.ModeCommand, m.input.CurrentMode())
	assert.Nil(t, m.bin)
	assert.IsType(t, &viewers.Placeholder{}, m.viewer)
	assert.Empty(t, m.input.Buffer())
	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "no such file")
}

func TestOpenSuccessSwitchesToInteractive(t *testing.T) {
	m := testModel()
	var gotPath string
	m.openFile = func(path string) (*binary.File, error) {
		gotPath = path
		return testBinary(), nil
	}

	typeKeys(m, ":o rom.gb")
	pressEnter(m)

	assert.Equal(t, "rom.gb", gotPath)
	assert.Equal(t, types.ModeInteractive, m.input.CurrentMode())
	require.NotNil(t, m.bin)
	assert.Equal(t, binary.KindGameBoy, m.bin.Kind)
	assert.IsType(t, &viewers.GameBoy{}, m.viewer)
	assert.Empty(t, m.input.Buffer())
	assert.False(t, m.statusErr)
	assert.Contains(t, m.status, "TETRIS")
}

func TestOpenWithoutPath(t *testing.T) {
	m := testModel()

	typeKeys(m, ":o")
	pressEnter(m)

	assert.Equal(t, types.ModeCommand, m.input.CurrentMode())
	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "usage")
}

func TestUnknownCommandIsDropped(t *testing.T) {
	m := testModel()

	typeKeys(m, ":frobnicate")
	pressEnter(m)

	assert.Equal(t, types.ModeInteractive, m.input.CurrentMode())
	assert.Nil(t, m.bin)
	assert.Empty(t, m.input.Buffer())
}

func TestEscReturnsToCommandLine(t *testing.T) {
	m := testModel()
	m.openFile = func(path string) (*binary.File, error) {
		return testBinary(), nil
	}

	typeKeys(m, ":o rom.gb")
	pressEnter(m)
	require.Equal(t, types.ModeInteractive, m.input.CurrentMode())

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, types.ModeCommand, m.input.CurrentMode())

	// Keys now edit the buffer instead of driving the viewer.
	typeKeys(m, ":q")
	assert.Equal(t, ":q", m.input.Buffer())
}

func TestInteractiveKeysDriveViewer(t *testing.T) {
	m := testModel()
	m.openFile = func(path string) (*binary.File, error) {
		return testBinary(), nil
	}

	typeKeys(m, ":o rom.gb")
	pressEnter(m)

	// Header -> Banks, then move the selection down.
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})

	out := m.View()
	assert.Contains(t, out, "> Bank 1")
}

func TestViewBeforeLoad(t *testing.T) {
	m := testModel()
	out := m.View()

	assert.Contains(t, out, "<no binary loaded>")
	assert.Contains(t, out, ":o <path>")
}

func TestWindowResize(t *testing.T) {
	m := NewModel(config.Default())
	assert.Equal(t, "loading...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.NotEqual(t, "loading...", m.View())
}
