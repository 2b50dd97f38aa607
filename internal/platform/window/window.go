// Package window runs games in a desktop window with ebiten.
package window

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/dodger/internal/core"
	"github.com/vovakirdan/dodger/internal/registry"
)

// Options configures a window session.
type Options struct {
	Width    int
	Height   int
	TickRate int
	Seed     int64
	Logger   *log.Logger // nil discards
}

// Game adapts a registry.Game to ebiten.Game.
type Game struct {
	game   registry.Game
	canvas *imageCanvas
	logger *log.Logger
	tps    int
	width  int
	height int
	state  core.GameState
}

var _ ebiten.Game = (*Game)(nil)

// New creates a window adapter and resets the game for the window size.
func New(game registry.Game, opts Options) (*Game, error) {
	def := core.DefaultConfig()
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = int(def.Width), int(def.Height)
	}
	if opts.TickRate <= 0 {
		opts.TickRate = def.TickRate
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	canvas, err := newImageCanvas()
	if err != nil {
		return nil, err
	}

	g := &Game{
		game:   game,
		canvas: canvas,
		logger: logger,
		tps:    opts.TickRate,
		width:  opts.Width,
		height: opts.Height,
	}
	game.Reset(core.RuntimeConfig{
		Width:    float64(opts.Width),
		Height:   float64(opts.Height),
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
	})
	logger.Info("session start",
		"game", game.ID(),
		"seed", opts.Seed,
		"width", opts.Width,
		"height", opts.Height,
		"tps", opts.TickRate,
	)
	return g, nil
}

// Update runs one simulation frame.
func (g *Game) Update() error {
	in := BuildInput(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
	if in.IsPressed(core.ActionQuit) {
		g.logger.Info("quit", "score", g.state.Score, "frames", g.state.Frames)
		return ebiten.Termination
	}

	result := g.game.Step(core.Frame{
		Delta:  1.0 / float64(ebiten.TPS()),
		Width:  float64(g.width),
		Height: float64(g.height),
		Input:  in,
	})
	g.state = result.State

	switch {
	case result.Lost:
		g.logger.Info("game over",
			"score", g.state.Score,
			"frames", g.state.Frames,
			"elapsed", g.state.Elapsed.Round(time.Millisecond),
		)
	case result.Restarted:
		g.logger.Info("restart")
	}
	return nil
}

// Draw renders the game onto the screen image.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.dst = screen
	g.game.Render(g.canvas)
}

// Layout follows the window size so the playfield grows with it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens a window and plays the game until it is closed.
func Run(game registry.Game, opts Options) error {
	g, err := New(game, opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.tps)

	// RunGame returns nil when Update returns ebiten.Termination.
	return ebiten.RunGame(g)
}
