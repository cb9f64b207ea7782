package board

import (
	"fmt"
	"strings"
)

// Color is the colour of a token. ColorNone is reserved and never appears
// on a board.
type Color uint8

const (
	ColorNone Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorPurple
	ColorOrange
	colorCount
)

// MaxPalette is the number of playable colours.
const MaxPalette = int(colorCount) - 1

// Valid reports whether c is a playable colour.
func (c Color) Valid() bool {
	return c > ColorNone && c < colorCount
}

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	case ColorOrange:
		return "orange"
	default:
		return "unknown"
	}
}

// Char returns a single character representation for ASCII boards.
func (c Color) Char() rune {
	switch c {
	case ColorNone:
		return '.'
	case ColorRed:
		return 'R'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorYellow:
		return 'Y'
	case ColorPurple:
		return 'P'
	case ColorOrange:
		return 'O'
	default:
		return '?'
	}
}

// ParseColor converts a name or single-letter code to a Color.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "red", "r":
		return ColorRed, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "yellow", "y":
		return ColorYellow, true
	case "purple", "p":
		return ColorPurple, true
	case "orange", "o":
		return ColorOrange, true
	default:
		return ColorNone, false
	}
}

// Palette returns the first n playable colours.
func Palette(n int) ([]Color, error) {
	if n < 2 || n > MaxPalette {
		return nil, fmt.Errorf("palette of %d colors (want 2..%d): %w", n, MaxPalette, ErrInvalidPalette)
	}
	p := make([]Color, n)
	for i := range p {
		p[i] = Color(i + 1)
	}
	return p, nil
}
