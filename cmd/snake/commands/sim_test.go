package commands

import (
	"math/rand"
	"testing"

	"github.com/battlesnakeio/snake/game"
	"github.com/stretchr/testify/require"
)

func TestSimulate(t *testing.T) {
	saved := cfg
	defer func() { cfg = saved }()
	cfg.Seed = 11

	snap, err := simulate(250)
	require.NoError(t, err)
	require.Equal(t, "stopped", snap.State)
	require.Equal(t, int64(250), snap.Turn)
	require.Len(t, snap.Body, snap.Length)
	require.True(t, snap.Best >= snap.Length)
	for _, p := range snap.Body {
		require.NotEqual(t, snap.Apple, p)
	}
}

func TestAutopilotQuits(t *testing.T) {
	a := &autopilot{rng: rand.New(rand.NewSource(1)), remaining: 3}
	for i := 0; i < 3; i++ {
		for _, ev := range a.Poll() {
			require.Equal(t, game.EventDirection, ev.Type)
		}
	}
	require.Equal(t, []game.Event{{Type: game.EventQuit}}, a.Poll())
}
