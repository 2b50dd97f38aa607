package core

// Canvas is the outbound half of the platform contract: games submit colored
// rectangles and text, and the platform decides how to put them on screen.
// Coordinates are world units. Text y is the baseline.
type Canvas interface {
	// Clear fills the whole drawable area with a background color.
	Clear(bg Color)

	// DrawRect fills an axis-aligned rectangle.
	DrawRect(x, y, w, h float64, c Color)

	// DrawText draws a single line of text.
	DrawText(text string, x, y, size float64, c Color)

	// MeasureText returns the width and height the text would occupy.
	MeasureText(text string, size float64) (w, h float64)
}
