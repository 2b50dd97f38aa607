package core

import (
	"math"
	"strings"
)

// World units covered by one terminal cell. Terminal cells are roughly twice
// as tall as they are wide.
const (
	CellW = 10.0
	CellH = 20.0
)

// Cell is a single character position on a Screen.
type Cell struct {
	Rune       rune
	Color      Color // Foreground
	Background Color
}

// Screen is a 2D character buffer. It implements Canvas by rasterizing world
// coordinates into cells, so games draw the same way regardless of platform.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

var _ Canvas = (*Screen)(nil)

// NewScreen creates a new screen buffer with the given dimensions in cells.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear(ColorDefault)
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// WorldSize returns the screen dimensions in world units.
func (s *Screen) WorldSize() (w, h float64) {
	return float64(s.width) * CellW, float64(s.height) * CellH
}

// Resize changes the screen dimensions. Content is discarded.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear(ColorDefault)
}

// Clear fills the entire screen with blank cells on the given background.
func (s *Screen) Clear(bg Color) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', Background: bg}
		}
	}
}

// SetCell places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawRect paints every cell the world rectangle overlaps. Cells keep no
// glyph; the color becomes the cell background.
func (s *Screen) DrawRect(x, y, w, h float64, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0 := int(math.Floor(x / CellW))
	y0 := int(math.Floor(y / CellH))
	x1 := int(math.Ceil((x+w)/CellW)) - 1
	y1 := int(math.Ceil((y+h)/CellH)) - 1

	x0 = Clamp(x0, 0, s.width)
	y0 = Clamp(y0, 0, s.height)
	x1 = Clamp(x1, -1, s.width-1)
	y1 = Clamp(y1, -1, s.height-1)

	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			s.SetCell(cx, cy, Cell{Rune: ' ', Background: c})
		}
	}
}

// DrawText writes text whose baseline sits at world y. The text lands on the
// row above the baseline and keeps the background already under it.
// Characters beyond the screen bounds are clipped. Size is ignored.
func (s *Screen) DrawText(text string, x, y, _ float64, c Color) {
	row := int(math.Floor(y/CellH)) - 1
	row = Clamp(row, 0, s.height-1)
	col := int(math.Floor(x / CellW))
	s.writeRow(col, row, text, c)
}

// MeasureText returns the world size of text laid out in cells.
func (s *Screen) MeasureText(text string, _ float64) (w, h float64) {
	return float64(len([]rune(text))) * CellW, CellH
}

func (s *Screen) writeRow(x, y int, text string, c Color) {
	if y < 0 || y >= s.height {
		return
	}
	i := 0
	for _, r := range text {
		cx := x + i
		i++
		if cx < 0 || cx >= s.width {
			continue
		}
		cell := s.cells[y][cx]
		cell.Rune = r
		cell.Color = c
		s.cells[y][cx] = cell
	}
}

// String converts the screen buffer to plain text without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
