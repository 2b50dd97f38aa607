package window

import (
	"image/color"

	"github.com/vovakirdan/dodger/internal/core"
)

var rgbaColors = map[core.Color]color.RGBA{
	core.ColorBlack:   {0x00, 0x00, 0x00, 0xff},
	core.ColorRed:     {0xff, 0x00, 0x00, 0xff},
	core.ColorGreen:   {0x00, 0xff, 0x00, 0xff},
	core.ColorYellow:  {0xff, 0xff, 0x00, 0xff},
	core.ColorBlue:    {0x00, 0x00, 0xff, 0xff},
	core.ColorMagenta: {0xff, 0x00, 0xff, 0xff},
	core.ColorCyan:    {0x00, 0xff, 0xff, 0xff},
	core.ColorWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:  {0xff, 0xa5, 0x00, 0xff},
	core.ColorGray:    {0x80, 0x80, 0x80, 0xff},
}

// RGBA returns the window color for a palette entry. ColorDefault and
// unknown entries are white.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := rgbaColors[c]; ok {
		return rgba
	}
	return color.RGBA{0xff, 0xff, 0xff, 0xff}
}
