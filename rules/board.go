package rules

import (
	"errors"
	"math/rand"
)

var (
	// ErrInvalidBoard is returned for boards that are not a positive whole
	// number of grid cells on both axes.
	ErrInvalidBoard = errors.New("rules: board dimensions must be positive multiples of the grid unit")
	// ErrBoardFull is returned when there is no unoccupied cell left.
	ErrBoardFull = errors.New("rules: no unoccupied cells left on the board")
)

// Board describes the playing field. Width and Height are measured in the
// same units as Unit, so a 640x480 board with a unit of 20 holds 32x24 cells.
type Board struct {
	Width  int
	Height int
	Unit   int
}

// NewBoard returns a validated board.
func NewBoard(width, height, unit int) (Board, error) {
	b := Board{Width: width, Height: height, Unit: unit}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Validate checks the board is made of whole cells.
func (b Board) Validate() error {
	if b.Unit <= 0 || b.Width <= 0 || b.Height <= 0 {
		return ErrInvalidBoard
	}
	if b.Width%b.Unit != 0 || b.Height%b.Unit != 0 {
		return ErrInvalidBoard
	}
	return nil
}

// Columns is the number of cells on the x axis.
func (b Board) Columns() int { return b.Width / b.Unit }

// Rows is the number of cells on the y axis.
func (b Board) Rows() int { return b.Height / b.Unit }

// Cells is the total number of cells on the board.
func (b Board) Cells() int { return b.Columns() * b.Rows() }

// Start is the canonical cell a snake starts from: the cell containing the
// centre of the board.
func (b Board) Start() Point {
	return Point{
		X: (b.Columns() / 2) * b.Unit,
		Y: (b.Rows() / 2) * b.Unit,
	}
}

// Contains reports whether p is a grid aligned cell inside the board.
func (b Board) Contains(p Point) bool {
	if p.X < 0 || p.X >= b.Width || p.Y < 0 || p.Y >= b.Height {
		return false
	}
	return p.X%b.Unit == 0 && p.Y%b.Unit == 0
}

// Step moves p one cell in direction d, wrapping each axis so that leaving
// one edge re-enters from the opposite edge.
func (b Board) Step(p Point, d Direction) Point {
	return Point{
		X: wrap(p.X+d.X*b.Unit, b.Width),
		Y: wrap(p.Y+d.Y*b.Unit, b.Height),
	}
}

func wrap(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}

// RandomPoint returns a uniformly random cell. x and y are drawn independently.
func (b Board) RandomPoint(rng *rand.Rand) Point {
	return Point{
		X: rng.Intn(b.Columns()) * b.Unit,
		Y: rng.Intn(b.Rows()) * b.Unit,
	}
}

// UnoccupiedPoints lists every cell that is not in occupied, row by row.
func (b Board) UnoccupiedPoints(occupied []Point) []Point {
	taken := make(map[Point]struct{}, len(occupied))
	for _, o := range occupied {
		taken[o] = struct{}{}
	}

	candidates := make([]Point, 0, b.Cells())
	for y := 0; y < b.Height; y += b.Unit {
		for x := 0; x < b.Width; x += b.Unit {
			p := Point{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				candidates = append(candidates, p)
			}
		}
	}
	return candidates
}
