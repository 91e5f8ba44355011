package rules

import "math/rand"

// Apple is the single piece of food on the board.
type Apple struct {
	Position Point

	board Board
	rng   *rand.Rand
}

// NewApple creates an apple placed on a random cell that is not in occupied.
func NewApple(board Board, rng *rand.Rand, occupied []Point) (*Apple, error) {
	a := &Apple{board: board, rng: rng}
	if err := a.Relocate(occupied); err != nil {
		return nil, err
	}
	return a, nil
}

// Relocate moves the apple to a uniformly random cell that is not in
// occupied. Random cells are sampled until a free one turns up; after as many
// misses as the board has cells, the free cells are enumerated and one of
// them is picked instead, so the call always terminates. ErrBoardFull is
// returned, and the apple left where it was, when every cell is occupied.
func (a *Apple) Relocate(occupied []Point) error {
	for i := 0; i < a.board.Cells(); i++ {
		p := a.board.RandomPoint(a.rng)
		if !containsPoint(occupied, p) {
			a.Position = p
			return nil
		}
	}

	open := a.board.UnoccupiedPoints(occupied)
	if len(open) == 0 {
		return ErrBoardFull
	}
	a.Position = open[a.rng.Intn(len(open))]
	return nil
}

// Cells returns the cell the apple sits on.
func (a *Apple) Cells() []Point {
	return []Point{a.Position}
}

// Color returns the apple color.
func (a *Apple) Color() Color {
	return ColorApple
}
