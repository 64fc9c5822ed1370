package viewers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"binspect/internal/macho"
	"binspect/internal/ui/cursor"
	"binspect/internal/ui/focus"
	"binspect/internal/ui/views"
)

type machoPane int

const (
	machoPaneNone machoPane = iota
	machoPaneHeader
	machoPaneCommands
)

// Macho presents a Mach-O file as a header summary and a load-command
// list, with the selected segment's sections in the detail pane.
type Macho struct {
	file   *macho.File
	styles *views.Styles
	focus  *focus.Cycle[machoPane]
	cursor *cursor.List
	labels []string
}

func NewMacho(file *macho.File, styles *views.Styles) *Macho {
	labels := make([]string, len(file.Commands))
	for i, cmd := range file.Commands {
		labels[i] = cmd.Label
	}
	return &Macho{
		file:   file,
		styles: styles,
		focus: focus.NewCycle(machoPaneNone, machoPaneCommands,
			[]machoPane{machoPaneHeader, machoPaneCommands}),
		cursor: cursor.NewAt(0),
		labels: labels,
	}
}

func (v *Macho) CycleFocus(dir int) {
	v.focus.Advance(dir)
}

func (v *Macho) MoveSelection(dir int) {
	if !v.focus.Is(machoPaneCommands) {
		return
	}
	if dir > 0 {
		v.cursor.Next(len(v.labels))
	} else {
		v.cursor.Prev(len(v.labels))
	}
}

func (v *Macho) Blur()  { v.focus.Unfocus() }
func (v *Macho) Focus() { v.focus.Refocus() }

func (v *Macho) View(width, height int) string {
	leftWidth := width * 30 / 100
	if leftWidth < 20 {
		leftWidth = 20
	}
	rightWidth := width - leftWidth

	headerHeight := 3
	listHeight := height - headerHeight

	header := v.styles.RenderPanel("Header",
		fmt.Sprintf("cpu:%s | sub:%d | file:%s", v.file.CPU, v.file.SubCPU, v.file.Type),
		leftWidth, headerHeight, v.focus.Is(machoPaneHeader))

	selected, hasSelection := v.cursor.Selected()
	list := v.styles.RenderList(v.labels, selected, hasSelection, listHeight-3)
	commands := v.styles.RenderPanel(fmt.Sprintf("Load Commands (%d)", v.file.Ncmd),
		list, leftWidth, listHeight, v.focus.Is(machoPaneCommands))

	left := lipgloss.JoinVertical(lipgloss.Left, header, commands)
	detail := v.styles.RenderPanel("Details", v.detail(), rightWidth, height, false)

	return views.JoinPanes(left, detail)
}

// detail lists the sections of the selected load command. Non-segment
// commands have no section list and leave the pane empty.
func (v *Macho) detail() string {
	selected, ok := v.cursor.Selected()
	if !ok || selected >= len(v.file.Commands) {
		return ""
	}
	sections := v.file.Commands[selected].Sections
	if len(sections) == 0 {
		return ""
	}
	lines := make([]string, len(sections))
	for i, s := range sections {
		lines[i] = fmt.Sprintf("%-16s  addr 0x%X  size 0x%X", s.Name, s.Addr, s.Size)
	}
	return strings.Join(lines, "\n")
}
