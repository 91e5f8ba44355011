package rules

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// classicBoard is the 640x480 board with 20 pixel cells the game ships with.
var classicBoard = Board{Width: 640, Height: 480, Unit: 20}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func newTestSnake(t *testing.T, d Direction, body ...Point) *Snake {
	t.Helper()
	require.NotEmpty(t, body)
	s := NewSnake(classicBoard, newRand())
	s.Body = body
	s.Length = len(body)
	s.Direction = d
	return s
}

func newTestApple(p Point) *Apple {
	return &Apple{Position: p, board: classicBoard, rng: newRand()}
}
