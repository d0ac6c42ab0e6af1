package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dzonas/befunge93/engine"
	"github.com/Dzonas/befunge93/ioport"
	"github.com/Dzonas/befunge93/manifest"
)

// runChunk is how many steps one animation frame may execute before the
// UI gets a chance to redraw and read keys.
const runChunk = 10000

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Padding(0, 1)

	gridStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	ipStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA"))

	stackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	outputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	eng      *engine.Engine
	port     *ioport.BufferPort
	filename string
	text     string

	steps     int
	running   bool
	loadErr   error
	stepErr   error
	input     textinput.Model
	prompting bool
	promptOp  byte
}

type runTickMsg struct{}

func newInteractiveModel(filename string, cfg *manifest.Manifest) *interactiveModel {
	if cfg.TUI.AccentColor != "" {
		titleStyle = titleStyle.Background(lipgloss.Color(cfg.TUI.AccentColor))
		ipStyle = ipStyle.Background(lipgloss.Color(cfg.TUI.AccentColor))
	}
	if cfg.TUI.ErrorColor != "" {
		errorStyle = errorStyle.Foreground(lipgloss.Color(cfg.TUI.ErrorColor))
	}

	port := ioport.NewBufferPort(cfg.Run.Stdin)
	return &interactiveModel{
		eng:      engine.New(port),
		port:     port,
		filename: filename,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	text, err := readProgram(m.filename)
	if err != nil {
		m.loadErr = err
		return nil
	}
	m.text = text
	m.loadErr = m.eng.Load(text)
	return nil
}

func (m *interactiveModel) reload() {
	m.loadErr = m.eng.Load(m.text)
	m.stepErr = nil
	m.steps = 0
	m.running = false
	m.prompting = false
	m.port.TakeOutput()
}

// needsInput reports whether the next instruction would read from an
// exhausted input buffer, so the front end can prompt first.
func (m *interactiveModel) needsInput() (byte, bool) {
	snap := m.eng.Inspect()
	if snap.Terminated || snap.StringMode || m.port.Pending() > 0 {
		return 0, false
	}
	ch := snap.Grid[snap.Y][snap.X]
	if ch == '&' || ch == '~' {
		return ch, true
	}
	return 0, false
}

func (m *interactiveModel) openPrompt(op byte) {
	ti := textinput.New()
	ti.Prompt = "input: "
	if op == '&' {
		ti.Placeholder = "integer"
	} else {
		ti.Placeholder = "character"
	}
	ti.Width = 20
	ti.Focus()
	m.input = ti
	m.prompting = true
	m.promptOp = op
}

func (m *interactiveModel) stepOnce() {
	if op, ok := m.needsInput(); ok {
		m.openPrompt(op)
		return
	}
	status, err := m.eng.Step()
	switch status {
	case engine.Continued, engine.Terminated:
		m.steps++
	case engine.Faulted:
		m.steps++
		m.stepErr = err
	case engine.AlreadyTerminated:
		// nothing to do until reload
	}
}

// stepChunk advances up to runChunk steps, stopping early at
// termination, a fault, or a pending input read.
func (m *interactiveModel) stepChunk() {
	for i := 0; i < runChunk; i++ {
		if op, ok := m.needsInput(); ok {
			m.openPrompt(op)
			return
		}
		status, err := m.eng.Step()
		switch status {
		case engine.Continued:
			m.steps++
		case engine.Terminated:
			m.steps++
			m.running = false
			return
		case engine.Faulted:
			m.steps++
			m.stepErr = err
			m.running = false
			return
		case engine.AlreadyTerminated:
			m.running = false
			return
		}
	}
}

func runTick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(time.Time) tea.Msg {
		return runTickMsg{}
	})
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.prompting {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "enter":
				value := m.input.Value()
				if m.promptOp == '&' {
					value += "\n"
				}
				m.port.Feed(value)
				m.prompting = false
				m.stepOnce()
				if m.running {
					return m, runTick()
				}
				return m, nil
			case "esc":
				m.prompting = false
				m.running = false
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "s", " ":
			m.running = false
			if m.loadErr == nil {
				m.stepOnce()
			}

		case "r":
			if m.loadErr == nil && !m.running {
				m.running = true
				return m, runTick()
			}
			m.running = false

		case "l":
			if m.text != "" {
				m.reload()
			}
		}

	case runTickMsg:
		if m.running {
			m.stepChunk()
			if m.running && !m.prompting {
				return m, runTick()
			}
		}
	}

	return m, nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Befunge93"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	if m.loadErr != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.loadErr)))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("q quit"))
		return b.String()
	}

	snap := m.eng.Inspect()
	b.WriteString(renderGrid(snap))
	b.WriteString("\n")
	b.WriteString(renderStack(snap))
	b.WriteString("\n\n")

	if out := tail(snap.Output, 300); out != "" {
		b.WriteString(outputStyle.Render(out))
		b.WriteString("\n\n")
	}

	b.WriteString(renderStatus(snap, m.steps, m.running))
	if m.stepErr != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Fault: %v", m.stepErr)))
	}
	b.WriteString("\n")

	if m.prompting {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter feed • esc cancel"))
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("s step • r run/pause • l reload • q quit"))
	return b.String()
}

// renderGrid draws the playfield with the instruction pointer's cell
// highlighted. Blank trailing rows are collapsed to keep small programs
// compact.
func renderGrid(snap engine.Snapshot) string {
	last := len(snap.Grid) - 1
	for last > int(snap.Y) && strings.TrimSpace(snap.Grid[last]) == "" {
		last--
	}

	var b strings.Builder
	for y := 0; y <= last; y++ {
		row := snap.Grid[y]
		if int64(y) == snap.Y {
			x := int(snap.X)
			b.WriteString(gridStyle.Render(row[:x]))
			b.WriteString(ipStyle.Render(string(row[x])))
			b.WriteString(gridStyle.Render(row[x+1:]))
		} else {
			b.WriteString(gridStyle.Render(row))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderStack(snap engine.Snapshot) string {
	if len(snap.Stack) == 0 {
		return stackStyle.Render("stack: empty")
	}

	const maxShown = 16
	var parts []string
	for i := len(snap.Stack) - 1; i >= 0 && len(parts) < maxShown; i-- {
		parts = append(parts, fmt.Sprintf("%d", snap.Stack[i]))
	}
	s := "stack: " + strings.Join(parts, " ")
	if len(snap.Stack) > maxShown {
		s += fmt.Sprintf(" … (+%d)", len(snap.Stack)-maxShown)
	}
	return stackStyle.Render(s)
}

func renderStatus(snap engine.Snapshot, steps int, running bool) string {
	state := "ready"
	switch {
	case snap.Terminated:
		state = "terminated"
	case running:
		state = "running"
	}
	mode := ""
	if snap.StringMode {
		mode = " • string mode"
	}
	return helpStyle.Render(fmt.Sprintf("(%d,%d) %s%s • %d steps • %s",
		snap.X, snap.Y, snap.Direction, mode, steps, state))
}

// tail returns the last n bytes of s, starting at a line boundary when
// one is close.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	s = s[len(s)-n:]
	if i := strings.IndexByte(s, '\n'); i >= 0 && i < 80 {
		s = s[i+1:]
	}
	return "…" + s
}

func runInteractive(filename string, cfg *manifest.Manifest) error {
	p := tea.NewProgram(newInteractiveModel(filename, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
