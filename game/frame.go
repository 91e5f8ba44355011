package game

import "github.com/battlesnakeio/snake/rules"

// DrawRequest paints a single cell.
type DrawRequest struct {
	Point rules.Point
	Color rules.Color
}

// Frame is everything a renderer needs to redraw the board after a tick.
// Renderers clear the board when Clear is set and then apply Requests in
// order.
type Frame struct {
	Title    string
	Board    rules.Board
	Clear    bool
	Requests []DrawRequest

	Turn   int64
	Length int
	Best   int
	Speed  int
	Paused bool
}

// Renderer draws frames.
type Renderer interface {
	Render(*Frame) error
}

// Discard is a renderer that draws nothing.
var Discard Renderer = discard{}

type discard struct{}

func (discard) Render(*Frame) error { return nil }

// draw appends one request per cell of d.
func (f *Frame) draw(d rules.Drawable) {
	c := d.Color()
	for _, p := range d.Cells() {
		f.Requests = append(f.Requests, DrawRequest{Point: p, Color: c})
	}
}

// erase paints p with the board background.
func (f *Frame) erase(p rules.Point) {
	f.Requests = append(f.Requests, DrawRequest{Point: p, Color: rules.ColorBoard})
}
