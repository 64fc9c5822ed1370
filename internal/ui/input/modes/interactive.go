package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"binspect/internal/ui/input/types"
)

// InteractiveMode drives the active format viewer: focus cycling and
// list selection. Esc drops back to command mode.
type InteractiveMode struct{}

func NewInteractiveMode() *InteractiveMode {
	return &InteractiveMode{}
}

func (m *InteractiveMode) Name() string {
	return "interactive"
}

func (m *InteractiveMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *InteractiveMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *InteractiveMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{}}, true
	case "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeCommand}}, true
	case "tab":
		return []types.Action{types.CycleFocusAction{Dir: 1}}, true
	case "shift+tab":
		return []types.Action{types.CycleFocusAction{Dir: -1}}, true
	case "up", "k":
		return []types.Action{types.MoveSelectionAction{Dir: -1}}, true
	case "down", "j":
		return []types.Action{types.MoveSelectionAction{Dir: 1}}, true
	case "?":
		return []types.Action{types.ShowHelpAction{}}, true
	default:
		return nil, false
	}
}
