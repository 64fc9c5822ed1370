package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"binspect/internal/ui/input/types"
)

// CommandMode owns the command line. Keys not handled here fall through
// to the shared text input.
type CommandMode struct {
	textInput *textinput.Model
}

func NewCommandMode(ti *textinput.Model) *CommandMode {
	return &CommandMode{textInput: ti}
}

func (m *CommandMode) Name() string {
	return "command"
}

func (m *CommandMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Reset()
		m.textInput.Focus()
		m.textInput.Prompt = "" // Prompt is handled in the UI layer
	}
	return nil
}

func (m *CommandMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
		m.textInput.Reset()
	}
	return nil
}

func (m *CommandMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{}}, true
	case "enter":
		text := ""
		if m.textInput != nil {
			text = m.textInput.Value()
		}
		return []types.Action{types.ExecuteCommandAction{Text: text}}, true
	default:
		// Let the main handler feed the key to the text input
		return nil, false
	}
}
