package commands

import (
	"fmt"

	"github.com/battlesnakeio/snake/game"
	"github.com/battlesnakeio/snake/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	left         = 2
	top          = 2
	// cellWidth is the number of terminal columns per board cell, which
	// keeps cells roughly square.
	cellWidth = 2
)

var cellColors = map[rules.Color]termbox.Attribute{
	rules.ColorBoard:  bgColor,
	rules.ColorBorder: termbox.ColorCyan,
	rules.ColorApple:  termbox.ColorRed,
	rules.ColorSnake:  termbox.ColorGreen,
}

// termRenderer draws frames with termbox.
type termRenderer struct{}

func (r *termRenderer) Render(f *game.Frame) error {
	if f == nil {
		return errors.New("received nil frame")
	}
	if f.Clear {
		if err := termbox.Clear(defaultColor, defaultColor); err != nil {
			return errors.Wrap(err, "unable to clear terminal")
		}
	}

	cols, rows := f.Board.Columns(), f.Board.Rows()
	renderTitle(f.Title)
	renderBoard(cols, rows)
	for _, req := range f.Requests {
		renderCell(f.Board, req)
	}
	renderStatus(rows, f)

	return errors.Wrap(termbox.Flush(), "unable to flush terminal")
}

func renderCell(b rules.Board, req game.DrawRequest) {
	x := left + (req.Point.X/b.Unit)*cellWidth
	y := top + 1 + req.Point.Y/b.Unit
	c := cellColors[req.Color]
	for i := 0; i < cellWidth; i++ {
		termbox.SetCell(x+i, y, ' ', c, c)
	}
}

func renderBoard(cols, rows int) {
	border := cellColors[rules.ColorBorder]
	width := cols * cellWidth
	bottom := top + rows + 1

	for i := top + 1; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', border, bgColor)
		termbox.SetCell(left+width, i, '│', border, bgColor)
	}

	termbox.SetCell(left-1, top, '┌', border, bgColor)
	termbox.SetCell(left-1, bottom, '└', border, bgColor)
	termbox.SetCell(left+width, top, '┐', border, bgColor)
	termbox.SetCell(left+width, bottom, '┘', border, bgColor)

	fill(left, top, width, 1, termbox.Cell{Ch: '─', Fg: border})
	fill(left, bottom, width, 1, termbox.Cell{Ch: '─', Fg: border})
}

func renderTitle(title string) {
	tbprint(left, top-1, defaultColor, defaultColor, title)
}

func renderStatus(rows int, f *game.Frame) {
	text := fmt.Sprintf("Turn %d  Length %d  Best %d  Speed %d/s", f.Turn, f.Length, f.Best, f.Speed)
	if f.Paused {
		text += "  [paused]"
	}
	tbprint(left, top+rows+2, defaultColor, defaultColor, text)
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
