package core

// Color is a palette index for a screen cell.
// Frontends map it to ANSI 256 colors (TUI) or RGBA (GUI).
type Color uint8

// Palette entries used by the Block Eater renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorGold
	ColorPink
	ColorPurple
)

// LevelColors is the eater color per eater level (1-indexed via LevelColor).
var LevelColors = []Color{
	ColorGreen,
	ColorCyan,
	ColorBlue,
	ColorPurple,
	ColorPink,
	ColorGold,
}

// LevelColor returns the eater color for the given level, clamped to the palette.
func LevelColor(level int) Color {
	idx := Clamp(level-1, 0, len(LevelColors)-1)
	return LevelColors[idx]
}

// BlockColor picks a color for a block by its score value.
// Heavier blocks get warmer colors.
func BlockColor(value int) Color {
	switch {
	case value >= 50:
		return ColorRed
	case value >= 25:
		return ColorOrange
	case value >= 10:
		return ColorYellow
	default:
		return ColorWhite
	}
}

// RGBA returns an 8-bit RGBA quadruple for graphical frontends.
func (c Color) RGBA() (r, g, b, a uint8) {
	switch c {
	case ColorRed:
		return 230, 60, 60, 255
	case ColorGreen:
		return 0, 255, 0, 255
	case ColorYellow:
		return 240, 220, 60, 255
	case ColorBlue:
		return 0, 100, 255, 255
	case ColorMagenta:
		return 220, 60, 220, 255
	case ColorCyan:
		return 0, 255, 255, 255
	case ColorWhite:
		return 235, 235, 235, 255
	case ColorOrange:
		return 255, 140, 0, 255
	case ColorGray:
		return 120, 120, 130, 255
	case ColorGold:
		return 255, 215, 0, 255
	case ColorPink:
		return 255, 0, 150, 255
	case ColorPurple:
		return 150, 0, 255, 255
	default:
		return 200, 200, 200, 255
	}
}
