package rules

import "math/rand"

// Snake is the player controlled snake. Body is ordered head first.
type Snake struct {
	Body      []Point
	Length    int
	Direction Direction

	// pending is the direction requested since the last tick. The zero value
	// means no request.
	pending Direction
	board   Board
	rng     *rand.Rand
}

// NewSnake creates a snake in its initial state on the given board.
func NewSnake(board Board, rng *rand.Rand) *Snake {
	s := &Snake{board: board, rng: rng}
	s.Reset()
	return s
}

// Reset puts the snake back to a single segment on the board's start cell,
// heading in a random direction.
func (s *Snake) Reset() {
	s.Body = []Point{s.board.Start()}
	s.Length = 1
	s.Direction = Directions[s.rng.Intn(len(Directions))]
	s.pending = Direction{}
}

// Head returns the first point in the body
func (s *Snake) Head() Point {
	return s.Body[0]
}

// Tail returns the last point in the body
func (s *Snake) Tail() Point {
	return s.Body[len(s.Body)-1]
}

// SetDirection changes the direction immediately. Reversals are rejected.
func (s *Snake) SetDirection(d Direction) bool {
	if !d.Valid() || d == s.Direction.Opposite() {
		return false
	}
	s.Direction = d
	return true
}

// QueueDirection records a direction to apply on the next tick. The request
// is checked against the direction the snake is actually travelling in, so a
// burst of key presses between two ticks can never turn the snake back on
// itself. The last accepted request wins.
func (s *Snake) QueueDirection(d Direction) bool {
	if Turn(s.Direction, d) != d {
		return false
	}
	s.pending = d
	return true
}

// Pending returns the queued direction and whether there is one.
func (s *Snake) Pending() (Direction, bool) {
	return s.pending, s.pending.Valid()
}

// UpdateDirection applies and clears the queued direction.
func (s *Snake) UpdateDirection() {
	if s.pending.Valid() {
		s.SetDirection(s.pending)
		s.pending = Direction{}
	}
}

// Advance returns the cell the head moves into on the next tick. Nothing is
// committed.
func (s *Snake) Advance() Point {
	return s.board.Step(s.Head(), s.Direction)
}

// Occupies reports whether any segment is on p.
func (s *Snake) Occupies(p Point) bool {
	return containsPoint(s.Body, p)
}

// collides checks the candidate head against the body, leaving out the tail
// cell that is vacated by this move.
func (s *Snake) collides(next Point) bool {
	body := s.Body
	if len(body) >= s.Length {
		body = body[:len(body)-1]
	}
	return containsPoint(body, next)
}

// Cells returns a copy of the body.
func (s *Snake) Cells() []Point {
	cells := make([]Point, len(s.Body))
	copy(cells, s.Body)
	return cells
}

// Color returns the snake color.
func (s *Snake) Color() Color {
	return ColorSnake
}
