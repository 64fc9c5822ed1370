package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"binspect/internal/ui/input/modes"
	"binspect/internal/ui/input/types"
)

// Handler routes keys to the active mode handler and owns the shared
// text input used by command mode.
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model
}

func New() *Handler {
	ti := textinput.New()
	ti.CharLimit = 256

	h := &Handler{
		currentMode: types.ModeCommand,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeCommand] = modes.NewCommandMode(h.textInput)
	h.modes[types.ModeInteractive] = modes.NewInteractiveMode()

	// The program starts on the command line.
	ti.Focus()
	ti.Prompt = ""

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []types.Action

	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	// Mode changes are applied here so Enter/Exit hooks and text input
	// focus stay consistent no matter which mode requested the switch.
	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.applyModeChange(changeMode.Mode, ctx)...)
			cmd = textinput.Blink
		} else {
			allActions = append(allActions, action)
		}
	}

	// Unhandled keys in command mode edit the buffer.
	if h.isTextMode(h.currentMode) && !consumed {
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
	}

	return allActions, cmd
}

func (h *Handler) applyModeChange(mode types.Mode, ctx types.Context) []types.Action {
	var out []types.Action
	if cur := h.modes[h.currentMode]; cur != nil {
		out = append(out, cur.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		out = append(out, next.Enter(ctx)...)
	}
	return out
}

// ChangeMode switches modes directly, outside of key handling.
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) {
	if mode == h.currentMode {
		return
	}
	h.applyModeChange(mode, ctx)
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// Buffer returns the current command line contents.
func (h *Handler) Buffer() string {
	return h.textInput.Value()
}

// CursorPos returns the caret position within the command line.
func (h *Handler) CursorPos() int {
	return h.textInput.Position()
}

// ResetInput clears the command line buffer.
func (h *Handler) ResetInput() {
	h.textInput.Reset()
}

// TextInput exposes the shared text input for rendering.
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeCommand
}

// Update handles non-keyboard messages for the text input (cursor blink).
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
