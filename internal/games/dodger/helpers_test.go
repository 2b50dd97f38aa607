package dodger

import (
	"fmt"
	"testing"

	"github.com/vovakirdan/dodger/internal/config"
	"github.com/vovakirdan/dodger/internal/core"
)

const (
	testW = 800.0
	testH = 600.0
)

// newTestGame returns a reset game on an 800x600 screen.
func newTestGame(t *testing.T, mutate func(*config.DodgerConfig)) *Game {
	t.Helper()

	cfg := config.DefaultDodgerConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig() failed: %v", err)
	}
	g.Reset(core.RuntimeConfig{Width: testW, Height: testH, TickRate: 60, Seed: 42})
	return g
}

// frame builds a frame on the test screen.
func frame(dt float64) core.Frame {
	return core.NewFrame(dt, testW, testH)
}

// drawCall is one recorded Canvas call.
type drawCall struct {
	kind       string // "clear", "rect", "text"
	x, y, w, h float64
	text       string
	color      core.Color
}

// recordingCanvas is a Canvas that records every call.
type recordingCanvas struct {
	calls []drawCall
}

func (c *recordingCanvas) Clear(bg core.Color) {
	c.calls = append(c.calls, drawCall{kind: "clear", color: bg})
}

func (c *recordingCanvas) DrawRect(x, y, w, h float64, col core.Color) {
	c.calls = append(c.calls, drawCall{kind: "rect", x: x, y: y, w: w, h: h, color: col})
}

func (c *recordingCanvas) DrawText(text string, x, y, size float64, col core.Color) {
	c.calls = append(c.calls, drawCall{kind: "text", x: x, y: y, h: size, text: text, color: col})
}

// MeasureText uses a fixed 20x40 glyph box.
func (c *recordingCanvas) MeasureText(text string, _ float64) (float64, float64) {
	return float64(len(text)) * 20, 40
}

func (c *recordingCanvas) count(kind string) int {
	n := 0
	for _, call := range c.calls {
		if call.kind == kind {
			n++
		}
	}
	return n
}

func (c *recordingCanvas) texts() []string {
	var out []string
	for _, call := range c.calls {
		if call.kind == "text" {
			out = append(out, call.text)
		}
	}
	return out
}

func (d drawCall) String() string {
	return fmt.Sprintf("%s(%q %.1f,%.1f %.1fx%.1f %v)", d.kind, d.text, d.x, d.y, d.w, d.h, d.color)
}
