package model

// Color identifies one of the two players
type Color string

const (
	ColorWhite Color = "white"
	ColorBlack Color = "black"
)

// Opponent returns the other color
func (c Color) Opponent() Color {
	if c == ColorWhite {
		return ColorBlack
	}
	return ColorWhite
}

// Valid reports whether c is one of the two playable colors
func (c Color) Valid() bool {
	return c == ColorWhite || c == ColorBlack
}

// ParseColor converts a string into a Color
func ParseColor(s string) (Color, error) {
	c := Color(s)
	if !c.Valid() {
		return "", ErrInvalidColor
	}
	return c, nil
}

// Colors returns both playable colors in a stable order
func Colors() []Color {
	return []Color{ColorWhite, ColorBlack}
}
