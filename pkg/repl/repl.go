// Package repl implements an interactive source explorer built on Bubble Tea.
// The user types C-subset source into a textarea; on Enter the buffer is
// tokenized and parsed, and the result pane shows either the syntax tree or
// the token stream, toggled with Tab.
package repl

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"minic/pkg/compiler"
)

// viewMode selects what the result pane shows.
type viewMode int

const (
	modeAST viewMode = iota
	modeTokens
)

func (m viewMode) String() string {
	if m == modeTokens {
		return "Tokens"
	}
	return "AST"
}

// key mappings for the explorer.
type keyMap struct {
	Run    key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Run: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "analyze buffer"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "toggle tokens/AST"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns keybindings to show in the minimized help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Toggle, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run, k.Toggle},
		{k.Quit},
	}
}

// Styles for the UI.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	subtle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("44")).Bold(true)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

type model struct {
	input    textarea.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	mode     viewMode
	source   string // buffer as of the last analysis
	status   string
	diags    int
	width    int
	height   int
}

func newModel() model {
	ta := textarea.New()
	ta.Placeholder = "Type source here, then press Enter."
	ta.Focus()
	ta.Prompt = "src> "
	ta.CharLimit = 0
	ta.ShowLineNumbers = false

	vp := viewport.New(80, 20)
	vp.SetContent(subtle.Render("The syntax tree will appear here."))

	h := help.New()
	h.ShowAll = true

	return model{
		input:    ta,
		viewport: vp,
		help:     h,
		keys:     newKeyMap(),
		status:   "Enter analyzes the buffer",
	}
}

// Init satisfies the tea.Model interface.
func (m model) Init() tea.Cmd {
	return textarea.Blink
}

// Update satisfies the tea.Model interface.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

		// Run and Toggle are handled here and never reach the textarea,
		// which would otherwise insert the newline or tab literally.
		if key.Matches(msg, m.keys.Run) {
			if strings.TrimSpace(m.input.Value()) == "" {
				return m, nil
			}
			m.source = m.input.Value()
			m.refresh()
			return m, nil
		}
		if key.Matches(msg, m.keys.Toggle) {
			if m.mode == modeAST {
				m.mode = modeTokens
			} else {
				m.mode = modeAST
			}
			if m.source != "" {
				m.refresh()
			}
			return m, nil
		}
	}

	// Let components update themselves.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// layout divides the terminal between the input box and the result pane,
// reserving a fixed number of lines for the title, labels, status, and help.
func (m *model) layout() {
	const chromeLines = 10

	available := m.height - chromeLines
	if available < 2 {
		available = 2
	}

	inputHeight := available / 3
	if inputHeight < 1 {
		inputHeight = 1
	}
	resultsHeight := available - inputHeight
	if resultsHeight < 1 {
		resultsHeight = 1
	}

	m.input.SetWidth(m.width - 6)
	m.input.SetHeight(inputHeight)
	m.viewport.Width = m.width - 6
	m.viewport.Height = resultsHeight
}

// refresh analyzes the stored source and renders the pane for the
// current mode. Parsing a buffer of interactive size is effectively
// instant, so this runs inside Update rather than behind a tea.Cmd.
func (m *model) refresh() {
	tokens := compiler.Tokenize(m.source)
	prog, diags := compiler.Parse(tokens)
	m.diags = len(diags)

	var buf bytes.Buffer
	switch m.mode {
	case modeTokens:
		if len(tokens) == 0 {
			buf.WriteString(subtle.Render("no tokens"))
		}
		for _, tok := range tokens {
			fmt.Fprintln(&buf, tok)
		}
	default:
		compiler.Fprint(&buf, prog)
	}

	if len(diags) > 0 {
		buf.WriteString("\n")
		for _, d := range diags {
			fmt.Fprintln(&buf, errorStyle.Render(d.String()))
		}
	}

	m.viewport.SetContent(buf.String())
	m.status = fmt.Sprintf("%d tokens, %d diagnostics", len(tokens), len(diags))
}

// View draws the entire interface.
func (m model) View() string {
	title := titleStyle.Render("minic") + " " + subtle.Render("source explorer")
	modeLine := subtle.Render("View: " + m.mode.String())

	inputBox := boxStyle.Render(m.input.View())
	resultBox := boxStyle.Render(m.viewport.View())

	statusLine := statusStyle.Render(m.status)
	if m.diags > 0 {
		statusLine += "  " + errorStyle.Render(fmt.Sprintf("%d diagnostics", m.diags))
	}

	helpView := m.help.View(m.keys)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		modeLine,
		"",
		"Source:",
		inputBox,
		"",
		m.mode.String()+":",
		resultBox,
		"",
		statusLine,
		helpView,
	)
}

// Options configures the explorer.
type Options struct {
	Color bool
}

// Run starts the explorer and blocks until the user quits.
func Run(opts Options) error {
	if !opts.Color {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run explorer: %w", err)
	}
	return nil
}
