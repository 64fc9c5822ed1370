package types

// ExecuteCommandAction runs the command line buffer.
type ExecuteCommandAction struct {
	Text string
}

func (a ExecuteCommandAction) Type() string { return "execute_command" }

// ChangeModeAction switches the input mode.
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// CycleFocusAction moves focus to the next or previous pane.
type CycleFocusAction struct {
	Dir int
}

func (a CycleFocusAction) Type() string { return "cycle_focus" }

// MoveSelectionAction moves the list selection cursor.
type MoveSelectionAction struct {
	Dir int
}

func (a MoveSelectionAction) Type() string { return "move_selection" }

// QuitAction exits the program.
type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }

// ShowHelpAction opens the help pager.
type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }
