package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("dimensions = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	w, h := s.WorldSize()
	if w != 800 || h != 480 {
		t.Errorf("WorldSize() = %fx%f, expected 800x480", w, h)
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Rune != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.GetCell(x, y).Rune, x, y)
			}
		}
	}
}

func TestScreenClearBackground(t *testing.T) {
	s := NewScreen(4, 3)
	s.Clear(ColorRed)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if bg := s.GetCell(x, y).Background; bg != ColorRed {
				t.Errorf("background at (%d, %d) = %v, expected red", x, y, bg)
			}
		}
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)

	// World rect (20, 40)-(50, 80) covers cols 2..4, rows 2..3.
	s.DrawRect(20, 40, 30, 40, ColorGreen)

	for y := 2; y <= 3; y++ {
		for x := 2; x <= 4; x++ {
			if bg := s.GetCell(x, y).Background; bg != ColorGreen {
				t.Errorf("DrawRect: expected green at (%d, %d), got %v", x, y, bg)
			}
		}
	}
	if s.GetCell(1, 2).Background != ColorDefault || s.GetCell(5, 2).Background != ColorDefault {
		t.Error("DrawRect should not paint columns outside the rect")
	}
	if s.GetCell(2, 1).Background != ColorDefault || s.GetCell(2, 4).Background != ColorDefault {
		t.Error("DrawRect should not paint rows outside the rect")
	}
}

func TestScreenDrawRectPartialCells(t *testing.T) {
	s := NewScreen(10, 10)

	// Starts mid-cell: any overlapped cell is painted.
	s.DrawRect(15, 25, 10, 10, ColorYellow)

	for _, p := range [][2]int{{1, 1}, {2, 1}} {
		if s.GetCell(p[0], p[1]).Background != ColorYellow {
			t.Errorf("expected yellow at %v", p)
		}
	}
	if s.GetCell(3, 1).Background == ColorYellow {
		t.Error("cell past the rect should stay untouched")
	}
}

func TestScreenDrawRectOffscreen(t *testing.T) {
	s := NewScreen(5, 5)

	// Must not panic.
	s.DrawRect(-100, -100, 50, 50, ColorRed)
	s.DrawRect(1000, 1000, 50, 50, ColorRed)
	s.DrawRect(-5, -5, 20, 30, ColorRed)

	if s.GetCell(0, 0).Background != ColorRed {
		t.Error("partially visible rect should paint the corner cell")
	}
	if s.GetCell(2, 2).Background == ColorRed {
		t.Error("rect should be clipped to its own extent")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.Clear(ColorRed)

	// Baseline at y=30 lands on row 0; x=10 is col 1.
	s.DrawText("Score: 3", 10, 30, 40, ColorBlue)

	if !strings.HasPrefix(s.Row(0), " Score: 3") {
		t.Errorf("row 0 = %q", s.Row(0))
	}
	cell := s.GetCell(1, 0)
	if cell.Color != ColorBlue || cell.Background != ColorRed {
		t.Errorf("text cell = %+v, expected blue on red", cell)
	}

	// Clipped at the right edge.
	s.DrawText("Hello", 180, 30, 40, ColorWhite)
	if s.GetCell(18, 0).Rune != 'H' || s.GetCell(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenMeasureText(t *testing.T) {
	s := NewScreen(20, 5)
	w, h := s.MeasureText("Hi", 40)
	if w != 2*CellW || h != CellH {
		t.Errorf("MeasureText() = %fx%f", w, h)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	// Baselines at the bottom of each row.
	s.DrawText("AAAAA", 0, 20, 0, ColorDefault)
	s.DrawText("BBBBB", 0, 40, 0, ColorDefault)
	s.DrawText("CCCCC", 0, 60, 0, ColorDefault)

	expected := "AAAAA\nBBBBB\nCCCCC"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Resize(8, 4)

	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if got := s.Row(-1); got != "        " {
		t.Errorf("Out of bounds row should be spaces, got %q", got)
	}
}
