package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodger/internal/core"
	"github.com/vovakirdan/dodger/internal/registry"
)

// Options configures a terminal session.
type Options struct {
	TickRate   int
	Seed       int64
	HoldWindow time.Duration
	Logger     *log.Logger // nil discards
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	latch    *KeyLatch
	logger   *log.Logger
	state    core.GameState
	lastTick time.Time
	rows     int // Terminal rows including the help footer
	quitting bool
}

// NewModel creates a model for a terminal of cols x rows cells.
func NewModel(game registry.Game, cols, rows int, opts Options) Model {
	// Use time-based seed if not specified
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cols, 1),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		latch:  NewKeyLatch(opts.HoldWindow),
		logger: logger,
		rows:   rows,
	}
	m.help.Width = cols
	m.layout()

	w, h := m.screen.WorldSize()
	m.config = core.RuntimeConfig{
		Width:    w,
		Height:   h,
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
	}
	return m
}

// footerHeight is the number of rows the help view takes.
func (m Model) footerHeight() int {
	if !m.help.ShowAll {
		return 1
	}
	n := 0
	for _, col := range m.keys.FullHelp() {
		n = max(n, len(col))
	}
	return n
}

// layout sizes the game screen to the rows left above the help footer.
func (m Model) layout() {
	m.screen.Resize(m.screen.Width(), max(1, m.rows-m.footerHeight()))
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session start",
		"game", m.game.ID(),
		"seed", m.config.Seed,
		"cols", m.screen.Width(),
		"rows", m.screen.Height(),
		"fps", m.config.TickRate,
	)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("quit", "score", m.state.Score, "frames", m.state.Frames)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	m.latch.Observe(m.keys.Action(msg), time.Now())
	return m, nil
}

// handleResize processes window resize events. The game keeps its state and
// sees the new bounds on its next frame.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.rows = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, max(1, msg.Height-m.footerHeight()))
	m.logger.Debug("resize", "cols", msg.Width, "rows", msg.Height)
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	w, h := m.screen.WorldSize()
	frame := core.Frame{
		Delta:  dt,
		Width:  w,
		Height: h,
		Input:  m.latch.Frame(now),
	}

	result := m.game.Step(frame)
	m.state = result.State

	switch {
	case result.Lost:
		m.logger.Info("game over",
			"score", m.state.Score,
			"frames", m.state.Frames,
			"elapsed", m.state.Elapsed.Round(time.Millisecond),
		)
		m.logger.Debug("last frame\n" + m.screen.String())
	case result.Restarted:
		// Keys held across the restart do not carry into the new round.
		m.latch.Reset()
		m.logger.Info("restart")
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Run starts the Bubble Tea program for the game.
func Run(game registry.Game, cols, rows int, opts Options) error {
	model := NewModel(game, cols, rows, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
