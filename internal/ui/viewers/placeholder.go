package viewers

import "binspect/internal/ui/views"

// Placeholder fills the content area before a binary is loaded.
type Placeholder struct {
	styles *views.Styles
}

func NewPlaceholder(styles *views.Styles) *Placeholder {
	return &Placeholder{styles: styles}
}

func (p *Placeholder) CycleFocus(dir int)    {}
func (p *Placeholder) MoveSelection(dir int) {}
func (p *Placeholder) Blur()                 {}
func (p *Placeholder) Focus()                {}

func (p *Placeholder) View(width, height int) string {
	content := p.styles.Dim.Render("No file loaded. Type :o <path> to open a binary.")
	return p.styles.RenderPanel("binspect", content, width, height, false)
}
