package core

// Color identifies the foreground color of a screen cell. The platform
// layer maps each value to a concrete terminal style; the game only picks
// from this palette.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorRed
	ColorBrightRed
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorBrightYellow
	ColorCyan
	ColorMagenta
)
