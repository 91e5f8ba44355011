package rules

// Direction is a unit vector over the board grid. The zero value is not a
// valid direction.
type Direction struct {
	X int
	Y int
}

// The four directions a snake can travel in.
var (
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
)

// Directions lists every valid direction.
var Directions = []Direction{Up, Down, Left, Right}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// Valid reports whether d is one of the four unit directions.
func (d Direction) Valid() bool {
	for _, v := range Directions {
		if v == d {
			return true
		}
	}
	return false
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// turns maps the current direction and the requested one to the direction
// the snake ends up travelling in. A request for the opposite direction keeps
// the current heading.
var turns = map[Direction]map[Direction]Direction{
	Up:    {Up: Up, Down: Up, Left: Left, Right: Right},
	Down:  {Up: Down, Down: Down, Left: Left, Right: Right},
	Left:  {Up: Up, Down: Down, Left: Left, Right: Left},
	Right: {Up: Up, Down: Down, Left: Right, Right: Right},
}

// Turn returns the direction that results from requesting a move in
// requested while travelling in current. Reversals and invalid requests are
// ignored.
func Turn(current, requested Direction) Direction {
	next, ok := turns[current][requested]
	if !ok {
		return current
	}
	return next
}
