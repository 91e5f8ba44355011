package rules

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func TestNewSnake(t *testing.T) {
	s := NewSnake(classicBoard, newRand())
	require.Equal(t, []Point{{X: 320, Y: 240}}, s.Body)
	require.Equal(t, 1, s.Length)
	require.True(t, s.Direction.Valid())
	_, ok := s.Pending()
	require.False(t, ok)
	require.Equal(t, ColorSnake, s.Color())
}

func TestSnake_SetDirection(t *testing.T) {
	for _, current := range Directions {
		for _, requested := range Directions {
			s := newTestSnake(t, current, Point{X: 100, Y: 100})
			accepted := s.SetDirection(requested)
			if requested == current.Opposite() {
				require.False(t, accepted, "%s -> %s", current, requested)
				require.Equal(t, current, s.Direction)
			} else {
				require.True(t, accepted, "%s -> %s", current, requested)
				require.Equal(t, requested, s.Direction)
			}
		}
	}
}

func TestSnake_QueueDirection(t *testing.T) {
	s := newTestSnake(t, Right, Point{X: 100, Y: 100}, Point{X: 80, Y: 100})

	require.False(t, s.QueueDirection(Left))
	require.True(t, s.QueueDirection(Up))
	d, ok := s.Pending()
	require.True(t, ok)
	require.Equal(t, Up, d)

	// still travelling right, so down is a legal replacement for up
	require.True(t, s.QueueDirection(Down))
	require.Equal(t, Right, s.Direction)

	s.UpdateDirection()
	require.Equal(t, Down, s.Direction)
	_, ok = s.Pending()
	require.False(t, ok)
}

func TestSnake_QueueDirectionNoReversalWithinTick(t *testing.T) {
	s := newTestSnake(t, Right,
		Point{X: 100, Y: 100},
		Point{X: 80, Y: 100},
		Point{X: 60, Y: 100},
	)

	// up then left inside one tick must not fold the snake onto its neck
	require.True(t, s.QueueDirection(Up))
	require.False(t, s.QueueDirection(Left))

	res := s.Tick(nil)
	require.False(t, res.Reset)
	require.Equal(t, Point{X: 100, Y: 80}, s.Head())
	require.Equal(t, Up, s.Direction)
}

func TestSnake_Advance(t *testing.T) {
	s := newTestSnake(t, Right, Point{X: 620, Y: 100})
	require.Equal(t, Point{X: 0, Y: 100}, s.Advance())
	require.Equal(t, Point{X: 620, Y: 100}, s.Head(), "advance must not commit")

	s = newTestSnake(t, Left, Point{X: 0, Y: 100})
	require.Equal(t, Point{X: 620, Y: 100}, s.Advance())

	s = newTestSnake(t, Up, Point{X: 100, Y: 0})
	require.Equal(t, Point{X: 100, Y: 460}, s.Advance())

	s = newTestSnake(t, Down, Point{X: 100, Y: 460})
	require.Equal(t, Point{X: 100, Y: 0}, s.Advance())
}

func TestSnake_TickMoves(t *testing.T) {
	s := newTestSnake(t, Right,
		Point{X: 100, Y: 100},
		Point{X: 80, Y: 100},
		Point{X: 60, Y: 100},
	)
	apple := newTestApple(Point{X: 300, Y: 300})

	res := s.Tick(apple)
	require.False(t, res.Ate)
	require.False(t, res.Reset)
	require.True(t, res.HasVacated)
	require.Equal(t, Point{X: 60, Y: 100}, res.Vacated)
	require.Equal(t, 3, s.Length)
	require.Equal(t, []Point{
		{X: 120, Y: 100},
		{X: 100, Y: 100},
		{X: 80, Y: 100},
	}, s.Body)
	require.Equal(t, Point{X: 300, Y: 300}, apple.Position)
}

func TestSnake_TickEatsApple(t *testing.T) {
	s := newTestSnake(t, Right,
		Point{X: 100, Y: 100},
		Point{X: 80, Y: 100},
		Point{X: 60, Y: 100},
	)
	apple := newTestApple(Point{X: 120, Y: 100})

	res := s.Tick(apple)
	require.True(t, res.Ate)
	require.False(t, res.Reset)
	require.False(t, res.HasVacated)
	require.Equal(t, Point{X: 120, Y: 100}, res.Head)
	require.Equal(t, 4, s.Length)
	require.Equal(t, []Point{
		{X: 120, Y: 100},
		{X: 100, Y: 100},
		{X: 80, Y: 100},
		{X: 60, Y: 100},
	}, s.Body)
	require.False(t, s.Occupies(apple.Position), spew.Sdump(s.Body, apple.Position))
	require.True(t, classicBoard.Contains(apple.Position))
}

func TestSnake_TickWraps(t *testing.T) {
	s := newTestSnake(t, Right, Point{X: 620, Y: 100})
	res := s.Tick(newTestApple(Point{X: 300, Y: 300}))
	require.Equal(t, Point{X: 0, Y: 100}, res.Head)
	require.Equal(t, []Point{{X: 0, Y: 100}}, s.Body)
	require.Equal(t, Point{X: 620, Y: 100}, res.Vacated)
}

func TestSnake_TickSelfCollisionResets(t *testing.T) {
	s := newTestSnake(t, Right,
		Point{X: 100, Y: 100},
		Point{X: 100, Y: 80},
		Point{X: 120, Y: 80},
		Point{X: 120, Y: 100},
		Point{X: 120, Y: 120},
	)
	apple := newTestApple(Point{X: 300, Y: 300})

	res := s.Tick(apple)
	require.True(t, res.Reset, spew.Sdump(res))
	require.Equal(t, ResetCauseSelfCollision, res.Cause)
	require.Equal(t, 1, s.Length)
	require.Equal(t, []Point{classicBoard.Start()}, s.Body)
	require.True(t, s.Direction.Valid())
}

func TestSnake_TickIntoVacatedTail(t *testing.T) {
	// a closed loop of four: the head moves into the cell the tail leaves
	s := newTestSnake(t, Down,
		Point{X: 100, Y: 100},
		Point{X: 120, Y: 100},
		Point{X: 120, Y: 120},
		Point{X: 100, Y: 120},
	)
	res := s.Tick(newTestApple(Point{X: 300, Y: 300}))
	require.False(t, res.Reset)
	require.Equal(t, Point{X: 100, Y: 120}, s.Head())
	require.Len(t, s.Body, 4)
}

func TestSnake_TickResetRelocatesAppleOnStart(t *testing.T) {
	s := newTestSnake(t, Right,
		Point{X: 100, Y: 100},
		Point{X: 100, Y: 80},
		Point{X: 120, Y: 80},
		Point{X: 120, Y: 100},
		Point{X: 120, Y: 120},
	)
	apple := newTestApple(classicBoard.Start())

	res := s.Tick(apple)
	require.True(t, res.Reset)
	require.NotEqual(t, classicBoard.Start(), apple.Position)
}

func TestSnake_TickBoardFull(t *testing.T) {
	b := Board{Width: 60, Height: 20, Unit: 20}
	s := NewSnake(b, newRand())
	s.Body = []Point{{X: 20, Y: 0}, {X: 40, Y: 0}}
	s.Length = 2
	s.Direction = Left
	apple := &Apple{Position: Point{X: 0, Y: 0}, board: b, rng: newRand()}

	res := s.Tick(apple)
	require.True(t, res.Ate)
	require.True(t, res.Reset)
	require.Equal(t, ResetCauseBoardFull, res.Cause)
	require.Equal(t, []Point{b.Start()}, s.Body)
	require.False(t, s.Occupies(apple.Position))
}

func TestSnake_Reset(t *testing.T) {
	s := newTestSnake(t, Up, Point{X: 100, Y: 100}, Point{X: 100, Y: 120})
	s.QueueDirection(Left)
	s.Reset()
	require.Equal(t, []Point{classicBoard.Start()}, s.Body)
	require.Equal(t, 1, s.Length)
	_, ok := s.Pending()
	require.False(t, ok)
}

func TestSnake_Cells(t *testing.T) {
	s := newTestSnake(t, Up, Point{X: 100, Y: 100})
	cells := s.Cells()
	cells[0] = Point{}
	require.Equal(t, Point{X: 100, Y: 100}, s.Head())
}
