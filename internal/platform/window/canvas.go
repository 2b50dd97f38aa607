package window

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/dodger/internal/core"
)

// imageCanvas draws onto an ebiten image in world units (1 unit = 1 pixel).
type imageCanvas struct {
	dst    *ebiten.Image
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

var _ core.Canvas = (*imageCanvas)(nil)

func newImageCanvas() (*imageCanvas, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: load font: %w", err)
	}
	return &imageCanvas{
		source: source,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

func (c *imageCanvas) face(size float64) *text.GoTextFace {
	f, ok := c.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: c.source, Size: size}
		c.faces[size] = f
	}
	return f
}

func (c *imageCanvas) Clear(bg core.Color) {
	c.dst.Fill(RGBA(bg))
}

func (c *imageCanvas) DrawRect(x, y, w, h float64, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), RGBA(col), false)
}

// DrawText draws text with its baseline at y.
func (c *imageCanvas) DrawText(s string, x, y, size float64, col core.Color) {
	face := c.face(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(RGBA(col))
	text.Draw(c.dst, s, face, op)
}

func (c *imageCanvas) MeasureText(s string, size float64) (w, h float64) {
	return text.Measure(s, c.face(size), 0)
}
