package term

import (
	"fmt"
	"time"

	"lifebuf/internal/app"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// minInterval bounds the tick rate when the configured interval is zero.
const minInterval = 16 * time.Millisecond

// chromeRows is the number of terminal rows used below the board.
const chromeRows = 2

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

var _ app.Sink = (*Screen)(nil)

type tickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	if interval < minInterval {
		interval = minInterval
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Options configures the terminal program.
type Options struct {
	Interval time.Duration
	// Cols and Rows give the initial terminal size; window-size messages
	// replace them.
	Cols, Rows int
}

// Model is the Bubble Tea model driving a Runner.
type Model struct {
	runner   *app.Runner
	screen   *Screen
	sink     app.Sink
	interval time.Duration
	keys     keyMap
	help     help.Model

	cols, rows int
	paused     bool
	err        error
}

// NewModel builds a model around runner.
func NewModel(runner *app.Runner, opts Options) *Model {
	screen := NewScreen()
	m := &Model{
		runner:   runner,
		screen:   screen,
		sink:     screen,
		interval: opts.Interval,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	m.resize(opts.Cols, opts.Rows)
	return m
}

// Init presents the seeded generation and starts the clock.
func (m *Model) Init() tea.Cmd {
	m.present()
	return tickCmd(m.interval)
}

// Update handles ticks, key presses and terminal resizes.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
		case key.Matches(msg, m.keys.Step):
			m.advance()
		case key.Matches(msg, m.keys.Reset):
			m.err = m.runner.Reset()
			m.present()
		}
		return m, nil

	case tickMsg:
		if !m.paused {
			m.advance()
		}
		return m, tickCmd(m.interval)
	}
	return m, nil
}

// View renders the board followed by a status line and key help.
func (m *Model) View() string {
	sim := m.runner.Sim()
	status := fmt.Sprintf("generation %d", sim.Generation())
	if m.paused {
		status += " · paused"
	}
	if m.err != nil {
		status += " · " + m.err.Error()
	}
	return m.screen.Render(m.cols, m.rows) + "\n" +
		statusStyle.Render(status) + "\n" +
		m.help.View(m.keys)
}

func (m *Model) advance() {
	m.runner.Advance()
	m.present()
}

func (m *Model) present() {
	fb := m.runner.Framebuffer()
	if err := m.sink.Present(m.runner.Frame(), fb.Width(), fb.Height()); err != nil {
		m.err = err
	}
}

func (m *Model) resize(cols, rows int) {
	m.cols = cols
	m.rows = rows - chromeRows
	if rows > 0 && m.rows < 1 {
		m.rows = 1
	}
}

// Run starts the terminal program and blocks until the user quits.
func Run(runner *app.Runner, opts Options) error {
	p := tea.NewProgram(NewModel(runner, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
