// Package viewers renders the per-format panel trees. A viewer is
// constructed together with its parsed binary, so the format on screen
// always matches the file that was opened.
package viewers

import (
	"binspect/internal/binary"
	"binspect/internal/ui/views"
)

// Viewer is an interactive panel tree for one binary format. Rendering
// is pure; only the navigation methods mutate state.
type Viewer interface {
	// CycleFocus moves panel focus by dir (+1 or -1).
	CycleFocus(dir int)

	// MoveSelection moves the focused list's selection by dir. Panels
	// without a list ignore it.
	MoveSelection(dir int)

	// Blur clears focus, remembering it for Focus.
	Blur()

	// Focus restores the focus cleared by Blur.
	Focus()

	// View renders the panel tree into the given area.
	View(width, height int) string
}

// New constructs the viewer matching the binary's kind.
func New(bin *binary.File, styles *views.Styles) Viewer {
	switch {
	case bin == nil:
		return NewPlaceholder(styles)
	case bin.Kind == binary.KindMacho && bin.Macho != nil:
		return NewMacho(bin.Macho, styles)
	case bin.Kind == binary.KindGameBoy && bin.GameBoy != nil:
		return NewGameBoy(bin.GameBoy, styles)
	default:
		return NewPlaceholder(styles)
	}
}
