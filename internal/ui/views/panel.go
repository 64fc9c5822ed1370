package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel renders a bordered pane with a title line. The border color
// tracks focus so the user can see which pane tab landed on.
func (s *Styles) RenderPanel(title, content string, width, height int, focused bool) string {
	style := s.Panel
	if focused {
		style = s.PanelFocused
	}

	inner := content
	if title != "" {
		inner = s.PanelTitle.Render(title)
		if content != "" {
			inner += "\n" + content
		}
	}

	if width > 0 {
		style = style.Width(width - style.GetHorizontalFrameSize()).MaxWidth(width)
	}
	if height > 0 {
		style = style.Height(height - style.GetVerticalFrameSize()).MaxHeight(height)
	}

	return style.Render(inner)
}

// RenderList renders items with the selection highlighted, keeping the
// selected row inside a window of visible lines.
func (s *Styles) RenderList(items []string, selected int, hasSelection bool, visible int) string {
	if len(items) == 0 {
		return s.Dim.Render("(empty)")
	}

	start := 0
	if visible > 0 && len(items) > visible {
		if hasSelection {
			// Keep the selection roughly centered.
			start = selected - visible/2
		}
		if start < 0 {
			start = 0
		}
		if start > len(items)-visible {
			start = len(items) - visible
		}
	}
	end := len(items)
	if visible > 0 && start+visible < end {
		end = start + visible
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		line := items[i]
		if hasSelection && i == selected {
			line = s.SelectionBg.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// JoinPanes lays panes out side by side, top aligned.
func JoinPanes(panes ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, panes...)
}
