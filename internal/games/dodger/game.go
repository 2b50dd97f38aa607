// Package dodger implements a small shooter: the player square moves freely,
// fires upward, and loses when a descending enemy square reaches the bottom
// of the screen.
package dodger

import (
	"fmt"
	"time"

	"github.com/vovakirdan/dodger/internal/config"
	"github.com/vovakirdan/dodger/internal/core"
	"github.com/vovakirdan/dodger/internal/registry"
)

// Mode is the top-level game state.
type Mode int

const (
	ModePlaying Mode = iota
	ModeGameOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "Playing"
	case ModeGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// pausedText is shown over the playfield while paused.
const pausedText = "PAUSED - press P to resume"

// gameConfig is used by games created through the registry.
var gameConfig = config.DefaultDodgerConfig()

// SetConfig sets the config used by games created after this call.
// The CLI loads and validates the config before play starts.
func SetConfig(cfg config.DodgerConfig) {
	gameConfig = cfg
}

// Game owns all simulation state. Every field is reset by Reset or by a
// restart from game over; nothing lives in package globals.
type Game struct {
	cfg     config.DodgerConfig
	palette config.Palette
	runtime core.RuntimeConfig
	spawner *Spawner

	player      Entity
	enemies     []Entity
	projectiles []Entity
	dying       []Entity // Swept this frame, drawn once more

	score      int
	hudScore   int  // Score as of the start of the frame, shown in the readout
	lostFrame  bool // The last Step ended the game; Render still draws the playfield
	spawnTimer float64
	mode       Mode
	paused     bool
	frames     int
	elapsed    float64 // Seconds of simulated play

	width  float64 // Last reported drawable width
	height float64 // Last reported drawable height
}

// New creates a new Dodger game instance using the registered config.
func New() *Game {
	g, err := NewWithConfig(gameConfig)
	if err != nil {
		// SetConfig only receives validated configs; fall back to defaults.
		g, _ = NewWithConfig(config.DefaultDodgerConfig())
	}
	return g
}

// NewWithConfig creates a game with an explicit config.
func NewWithConfig(cfg config.DodgerConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dodger: %w", err)
	}
	palette, err := cfg.Palette()
	if err != nil {
		return nil, fmt.Errorf("dodger: %w", err)
	}
	return &Game{
		cfg:         cfg,
		palette:     palette,
		enemies:     make([]Entity, 0, 16),
		projectiles: make([]Entity, 0, 16),
	}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dodger"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dodger"
}

// Reset initializes the game for the given screen and seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.width = runtime.Width
	g.height = runtime.Height
	g.spawner = NewSpawner(g.cfg, g.palette, runtime.Seed)
	g.reset()
}

// reset returns to the initial Playing state. The spawner's RNG keeps its
// sequence so restarts do not replay the same enemies.
func (g *Game) reset() {
	g.score = 0
	g.hudScore = 0
	g.lostFrame = false
	g.enemies = g.enemies[:0]
	g.projectiles = g.projectiles[:0]
	g.dying = g.dying[:0]
	g.spawnTimer = g.cfg.Spawn.Interval
	g.player = g.spawner.SpawnPlayer(g.width, g.height)
	g.mode = ModePlaying
	g.paused = false
	g.frames = 0
	g.elapsed = 0
}

// Step advances the game by one frame.
func (g *Game) Step(f core.Frame) core.StepResult {
	g.dying = g.dying[:0]
	g.lostFrame = false
	if f.Width > 0 && f.Height > 0 {
		g.width = f.Width
		g.height = f.Height
	}

	if g.mode == ModeGameOver {
		if g.restartRequested(f.Input) {
			g.reset()
			return core.StepResult{State: g.State(), Restarted: true}
		}
		return core.StepResult{State: g.State()}
	}

	if f.Input.IsPressed(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.frames++
	g.elapsed += f.Delta
	g.hudScore = g.score

	lost := g.simulate(f)
	if lost {
		g.mode = ModeGameOver
		g.lostFrame = true
	}
	return core.StepResult{State: g.State(), Lost: lost}
}

// restartRequested applies the configured restart trigger.
func (g *Game) restartRequested(in core.InputFrame) bool {
	if g.cfg.Rules.RestartTrigger == config.RestartHeld {
		return in.IsHeld(core.ActionRestart)
	}
	return in.IsPressed(core.ActionRestart)
}

// Render draws the current game state. The frame that ended the game still
// shows the playfield, including what it destroyed; the prompt replaces it
// from the next frame on.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear(g.palette.Background)

	if g.mode == ModeGameOver && !g.lostFrame {
		g.drawCentered(dst, g.cfg.HUD.GameOverText, g.palette.Message)
		return
	}

	hud := g.cfg.HUD
	dst.DrawText(fmt.Sprintf("Score: %d", g.hudScore), hud.ScoreX, hud.ScoreY, hud.FontSize, g.palette.Score)

	for _, e := range g.enemies {
		e.Draw(dst)
	}
	for _, e := range g.dying {
		e.Draw(dst)
	}
	for _, p := range g.projectiles {
		p.Draw(dst)
	}
	g.player.Draw(dst)

	if g.paused {
		g.drawCentered(dst, pausedText, g.palette.Message)
	}
}

// drawCentered draws one line of text centered on the screen.
func (g *Game) drawCentered(dst core.Canvas, text string, c core.Color) {
	size := g.cfg.HUD.FontSize
	tw, th := dst.MeasureText(text, size)
	dst.DrawText(text, g.width/2-tw/2, g.height/2-th/2, size, c)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.mode == ModeGameOver,
		Paused:   g.paused,
		Frames:   g.frames,
		Elapsed:  time.Duration(g.elapsed * float64(time.Second)),
	}
}

// Mode returns the current mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Player returns a copy of the player entity.
func (g *Game) Player() Entity {
	return g.player
}

// Enemies returns the live enemies. The slice is owned by the game.
func (g *Game) Enemies() []Entity {
	return g.enemies
}

// Projectiles returns the live projectiles. The slice is owned by the game.
func (g *Game) Projectiles() []Entity {
	return g.projectiles
}

// Register the game with the registry
func init() {
	registry.Register("dodger", func() registry.Game {
		return New()
	})
}
