package rules

import "fmt"

// Color identifies how a cell should be painted. Renderers map the
// identifier onto whatever their output supports; RGB carries the reference
// value.
type Color int

// Colors used by the game.
const (
	ColorBoard Color = iota
	ColorBorder
	ColorApple
	ColorSnake
)

var palette = map[Color][3]uint8{
	ColorBoard:  {0, 0, 0},
	ColorBorder: {93, 216, 228},
	ColorApple:  {255, 0, 0},
	ColorSnake:  {0, 255, 0},
}

// RGB returns the reference red, green and blue components of the color.
func (c Color) RGB() (r, g, b uint8) {
	v := palette[c]
	return v[0], v[1], v[2]
}

// Hex returns the color as a #rrggbb string.
func (c Color) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func (c Color) String() string {
	switch c {
	case ColorBoard:
		return "board"
	case ColorBorder:
		return "border"
	case ColorApple:
		return "apple"
	case ColorSnake:
		return "snake"
	}
	return "unknown"
}

// Drawable is anything that occupies cells on the board and can be painted.
type Drawable interface {
	Cells() []Point
	Color() Color
}
