package viewers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"binspect/internal/disasm/gbz80"
	"binspect/internal/gb"
	"binspect/internal/hexview"
	"binspect/internal/ui/cursor"
	"binspect/internal/ui/focus"
	"binspect/internal/ui/views"
)

type gbPane int

const (
	gbPaneNone gbPane = iota
	gbPaneRestarts
	gbPaneInterrupts
	gbPaneHeader
	gbPaneBanks
)

// gbDisassembly caches the decoded entry point and vectors. Everything
// is disassembled once at construction; a decode failure is kept as a
// single error line in place of the listing.
type gbDisassembly struct {
	entryPoint string
	restarts   [8]string
	vblank     string
	lcdstat    string
	timer      string
	serial     string
	joypad     string
}

// GameBoy presents a cartridge image as restart/interrupt/header summary
// panels plus a bank list whose detail pane is a raw hex view.
type GameBoy struct {
	rom    *gb.ROM
	styles *views.Styles
	focus  *focus.Cycle[gbPane]
	cursor *cursor.List
	disasm gbDisassembly
	banks  []string
}

func NewGameBoy(rom *gb.ROM, styles *views.Styles) *GameBoy {
	banks := make([]string, len(rom.Banks))
	for i := range rom.Banks {
		banks[i] = fmt.Sprintf("Bank %d", i)
	}

	v := &GameBoy{
		rom:    rom,
		styles: styles,
		focus: focus.NewCycle(gbPaneNone, gbPaneHeader,
			[]gbPane{gbPaneRestarts, gbPaneInterrupts, gbPaneHeader, gbPaneBanks}),
		cursor: cursor.NewAt(0),
		banks:  banks,
	}

	v.disasm.entryPoint = disassemble(rom.Header.EntryPoint)
	for i, rst := range rom.Restarts {
		v.disasm.restarts[i] = disassemble(rst)
	}
	v.disasm.vblank = disassemble(rom.Interrupts.VBlank)
	v.disasm.lcdstat = disassemble(rom.Interrupts.LCDStat)
	v.disasm.timer = disassemble(rom.Interrupts.Timer)
	v.disasm.serial = disassemble(rom.Interrupts.Serial)
	v.disasm.joypad = disassemble(rom.Interrupts.Joypad)

	return v
}

func disassemble(data []byte) string {
	lines, err := gbz80.Disassemble(data)
	if err != nil {
		return fmt.Sprintf("Err disassemble: %v", err)
	}
	return strings.Join(lines, "; ")
}

func (v *GameBoy) CycleFocus(dir int) {
	v.focus.Advance(dir)
}

func (v *GameBoy) MoveSelection(dir int) {
	if !v.focus.Is(gbPaneBanks) {
		return
	}
	if dir > 0 {
		v.cursor.Next(len(v.banks))
	} else {
		v.cursor.Prev(len(v.banks))
	}
}

func (v *GameBoy) Blur()  { v.focus.Unfocus() }
func (v *GameBoy) Focus() { v.focus.Refocus() }

func (v *GameBoy) View(width, height int) string {
	leftWidth := width * 30 / 100
	if leftWidth < 24 {
		leftWidth = 24
	}
	rightWidth := width - leftWidth

	paneHeight := 3
	bankHeight := height - 3*paneHeight

	h := v.rom.Header
	restarts := v.styles.RenderPanel("Restart Calls",
		fmt.Sprintf("Non-default restarts: %d", v.nonDefaultRestarts()),
		leftWidth, paneHeight, v.focus.Is(gbPaneRestarts))
	interrupts := v.styles.RenderPanel("Interrupts",
		fmt.Sprintf("Non-default interrupts: %d", v.nonDefaultInterrupts()),
		leftWidth, paneHeight, v.focus.Is(gbPaneInterrupts))
	header := v.styles.RenderPanel("Header",
		fmt.Sprintf("title:%s | type:%s", h.Title, gb.CartridgeTypeString(h.CartridgeType)),
		leftWidth, paneHeight, v.focus.Is(gbPaneHeader))

	selected, hasSelection := v.cursor.Selected()
	list := v.styles.RenderList(v.banks, selected, hasSelection, bankHeight-3)
	banks := v.styles.RenderPanel(fmt.Sprintf("Banks (%d)", gb.NumBanks(h.ROMSizeCode)),
		list, leftWidth, bankHeight, v.focus.Is(gbPaneBanks))

	left := lipgloss.JoinVertical(lipgloss.Left, restarts, interrupts, header, banks)
	detail := v.styles.RenderPanel("Details", v.detail(rightWidth), rightWidth, height, false)

	return views.JoinPanes(left, detail)
}

func (v *GameBoy) detail(width int) string {
	switch v.focus.Current() {
	case gbPaneRestarts:
		return v.restartDetail()
	case gbPaneInterrupts:
		return v.interruptDetail()
	case gbPaneHeader:
		return v.headerDetail()
	case gbPaneBanks:
		selected, ok := v.cursor.Selected()
		if !ok || selected >= len(v.rom.Banks) {
			return ""
		}
		return hexview.Render(v.rom.Banks[selected], width-4)
	default:
		return ""
	}
}

func (v *GameBoy) restartDetail() string {
	var b strings.Builder
	for i, dis := range v.disasm.restarts {
		fmt.Fprintf(&b, "%-7s%s\n", fmt.Sprintf("RST %d:", i), dis)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (v *GameBoy) interruptDetail() string {
	rows := []struct {
		label string
		dis   string
	}{
		{"V-Blank:", v.disasm.vblank},
		{"LCD-Stat:", v.disasm.lcdstat},
		{"Timer:", v.disasm.timer},
		{"Serial:", v.disasm.serial},
		{"Joypad:", v.disasm.joypad},
	}
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%-10s%s\n", r.label, r.dis)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (v *GameBoy) headerDetail() string {
	h := v.rom.Header

	checksum := fmt.Sprintf("0x%02X (ok)", h.HeaderChecksum)
	if !h.ChecksumOK() {
		checksum = fmt.Sprintf("0x%02X (computed 0x%02X)", h.HeaderChecksum, h.ComputedChecksum)
	}
	manufacturer := h.Manufacturer
	if manufacturer == "" {
		manufacturer = "-"
	}

	rows := []struct {
		label string
		value string
	}{
		{"Logo:", v.styles.Logo.Render(logoRow(0, h.Logo))},
		{"", v.styles.Logo.Render(logoRow(1, h.Logo))},
		{"", v.styles.Logo.Render(logoRow(2, h.Logo))},
		{"", v.styles.Logo.Render(logoRow(3, h.Logo))},
		{"", ""},
		{"Entry Point:", v.disasm.entryPoint},
		{"Game Title:", h.Title},
		{"Manufacturer Code:", manufacturer},
		{"GBC Flag:", gb.CGBFlagString(h.CGBFlag)},
		{"Licensee Code:", h.LicenseeCode},
		{"Super Gameboy Flag:", gb.SGBFlagString(h.SGBFlag)},
		{"Cartridge Type:", gb.CartridgeTypeString(h.CartridgeType)},
		{"ROM Size:", gb.ROMSizeString(h.ROMSizeCode)},
		{"RAM Size:", gb.RAMSizeString(h.RAMSizeCode)},
		{"Destination Code:", gb.DestinationString(h.Destination)},
		{"ROM Version:", fmt.Sprintf("%d", h.Version)},
		{"Checksum:", checksum},
		{"Global Checksum:", fmt.Sprintf("0x%04X", h.GlobalChecksum)},
	}

	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%-22s%s\n", r.label, r.value)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (v *GameBoy) nonDefaultRestarts() int {
	n := 0
	for _, rst := range v.rom.Restarts {
		if !gb.DefaultVector(rst) {
			n++
		}
	}
	return n
}

func (v *GameBoy) nonDefaultInterrupts() int {
	n := 0
	for _, vec := range [][]byte{
		v.rom.Interrupts.VBlank,
		v.rom.Interrupts.LCDStat,
		v.rom.Interrupts.Timer,
		v.rom.Interrupts.Serial,
		v.rom.Interrupts.Joypad,
	} {
		if !gb.DefaultVector(vec) {
			n++
		}
	}
	return n
}
