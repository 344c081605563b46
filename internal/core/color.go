package core

// Color is the foreground color of a screen cell. The platform layer maps
// each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// rainbow is the palette used for rows of bricks and card faces.
var rainbow = []Color{
	ColorBrightRed,
	ColorOrange,
	ColorBrightYellow,
	ColorBrightGreen,
	ColorBrightCyan,
	ColorBrightBlue,
	ColorBrightMagenta,
	ColorMagenta,
}

// PaletteColor returns the i-th palette color, wrapping around.
func PaletteColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return rainbow[i%len(rainbow)]
}
