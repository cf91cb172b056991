package core

// Color represents a foreground color for a screen cell.
// The platform renderer maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBrightRed
	ColorBrightGreen
	ColorGray
)

// Palette roles used by the snake renderer.
const (
	ColorFood   = ColorBrightRed
	ColorBody   = ColorGreen
	ColorHead   = ColorBrightGreen
	ColorBorder = ColorGray
	ColorNotice = ColorYellow
)
