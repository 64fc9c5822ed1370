package types

import tea "github.com/charmbracelet/bubbletea"

// Mode is an input mode. Command mode owns the command line; Interactive
// mode forwards keys to the active format viewer.
type Mode int

const (
	ModeCommand Mode = iota
	ModeInteractive
)

// Action is a command for the model to execute.
type Action interface {
	Type() string
}

// Context gives mode handlers read-only access to the model state they
// key decisions off.
type Context interface {
	// Loaded reports whether a binary is currently loaded.
	Loaded() bool
}

// ModeHandler handles input for a single mode.
type ModeHandler interface {
	// HandleKey processes a key and returns actions plus whether the key
	// was consumed. Unconsumed keys in Command mode fall through to the
	// text input.
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode.
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode.
	Exit(ctx Context) []Action

	// Name returns the mode name for display.
	Name() string
}
