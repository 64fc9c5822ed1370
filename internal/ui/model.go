package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"binspect/internal/binary"
	"binspect/internal/config"
	"binspect/internal/logx"
	"binspect/internal/ui/input"
	"binspect/internal/ui/input/types"
	"binspect/internal/ui/viewers"
	"binspect/internal/ui/views"
)

const (
	titleHeight   = 3
	commandHeight = 3
)

// Model is the application shell: the loaded binary and its viewer, the
// modal input handler, and the status and command lines around the
// content area. The binary and viewer fields are always replaced as a
// pair, so the viewer on screen matches the file that was opened.
type Model struct {
	cfg    *config.Config
	styles *views.Styles
	keys   keyMap
	help   help.Model

	width  int
	height int

	input  *input.Handler
	bin    *binary.File
	viewer viewers.Viewer

	status    string
	statusErr bool

	// openFile is swapped out in tests.
	openFile func(path string) (*binary.File, error)

	// viewerSwapped suppresses the blur/focus sync for the key that
	// replaced the viewer; a fresh viewer starts focused.
	viewerSwapped bool

	program  *tea.Program
	quitting bool
}

func NewModel(cfg *config.Config) *Model {
	styles := views.NewStyles(cfg.UI)
	return &Model{
		cfg:      cfg,
		styles:   styles,
		keys:     newKeyMap(),
		help:     help.New(),
		input:    input.New(),
		viewer:   viewers.NewPlaceholder(styles),
		openFile: binary.Open,
	}
}

// SetProgram hands the model the running program so the help pager can
// release and restore the terminal.
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Loaded implements the input context.
func (m *Model) Loaded() bool {
	return m.bin != nil
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("help pager: %v", msg.err), true)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	default:
		return m, m.input.Update(msg)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.input.CurrentMode()
	m.viewerSwapped = false

	actions, inputCmd := m.input.HandleKey(msg, m)

	var cmds []tea.Cmd
	if inputCmd != nil {
		cmds = append(cmds, inputCmd)
	}
	for _, action := range actions {
		if cmd := m.apply(action); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	// Mode transitions move focus between the command line and the
	// viewer, except when the viewer was just replaced: a fresh viewer
	// starts with its initial panel focused.
	after := m.input.CurrentMode()
	if before != after && !m.viewerSwapped {
		if after == types.ModeCommand {
			m.viewer.Blur()
		} else {
			m.viewer.Focus()
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) apply(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.ExecuteCommandAction:
		return m.dispatch(a.Text)
	case types.CycleFocusAction:
		m.viewer.CycleFocus(a.Dir)
	case types.MoveSelectionAction:
		m.viewer.MoveSelection(a.Dir)
	case types.ShowHelpAction:
		return m.showHelpCmd()
	case types.QuitAction:
		m.quitting = true
		return tea.Quit
	}
	return nil
}

// dispatch executes one command line. The buffer is cleared before
// anything else so every outcome leaves it empty with the cursor at 0.
func (m *Model) dispatch(text string) tea.Cmd {
	m.input.ResetInput()
	text = strings.TrimSpace(text)

	switch {
	case text == ":q":
		m.quitting = true
		return tea.Quit

	case text == ":o" || strings.HasPrefix(text, ":o "):
		path := strings.TrimSpace(strings.TrimPrefix(text, ":o"))
		if path == "" {
			m.setStatus("usage: :o <path>", true)
			return nil
		}
		if err := m.OpenPath(path); err != nil {
			// Stay on the command line so the path can be corrected.
			logx.Errorf("open failed: %v", err)
			m.setStatus(err.Error(), true)
		}
		return nil

	default:
		// Unknown commands are dropped; focus still moves to the viewer.
		m.input.ChangeMode(types.ModeInteractive, m)
		return nil
	}
}

// OpenPath loads a binary and switches to its viewer, as when opening
// from the command line or a startup argument.
func (m *Model) OpenPath(path string) error {
	bin, err := m.openFile(path)
	if err != nil {
		return err
	}
	logx.Infof("opened %s as %s", path, bin.Kind)
	m.bin = bin
	m.viewer = viewers.New(bin, m.styles)
	m.viewerSwapped = true
	m.setStatus(bin.Summary(), false)
	m.input.ChangeMode(types.ModeInteractive, m)
	return nil
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *Model) showHelpCmd() tea.Cmd {
	ops := NewHelpOps(m.program)
	content := renderHelpContent()
	return func() tea.Msg {
		return helpPagerMsg{err: ops.ShowHelpInPager(content)}
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	title := "<no binary loaded>"
	if m.bin != nil {
		title = m.bin.Summary()
	}
	titlePanel := m.styles.RenderPanel("Binary",
		m.styles.Title.Render(title), m.width, titleHeight, false)

	footer := ""
	if m.cfg.UI.ShowHelpHint {
		footer = m.help.View(m.keys)
	}
	statusLine := m.statusView()

	contentHeight := m.height - titleHeight - commandHeight
	if statusLine != "" {
		contentHeight -= lipgloss.Height(statusLine)
	}
	if footer != "" {
		contentHeight -= lipgloss.Height(footer)
	}
	if contentHeight < 0 {
		contentHeight = 0
	}
	content := m.viewer.View(m.width, contentHeight)

	commandLine := m.commandView()

	parts := []string{titlePanel, content}
	if statusLine != "" {
		parts = append(parts, statusLine)
	}
	parts = append(parts, commandLine)
	if footer != "" {
		parts = append(parts, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) statusView() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return m.styles.StatusError.Render(m.status)
	}
	return m.styles.Status.Render(m.status)
}

// commandView renders the command line, highlighted while it has focus.
func (m *Model) commandView() string {
	line := m.input.TextInput().View()
	if m.input.CurrentMode() == types.ModeCommand {
		line = m.styles.Prompt.Render(line)
	}
	return m.styles.RenderPanel("", line, m.width, commandHeight, false)
}
