package commands

import (
	"math/rand"
	"os"
	"time"

	"github.com/battlesnakeio/snake/game"
	"github.com/battlesnakeio/snake/rules"
	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	simTicks = 1000
)

func init() {
	simCmd.Flags().IntVarP(&simTicks, "ticks", "n", simTicks, "number of ticks to simulate")
}

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "runs a headless game with a random autopilot and dumps the final state",
	Run: func(*cobra.Command, []string) {
		closeLog, err := setupLogging(os.Stderr)
		if err != nil {
			log.WithError(err).Error("unable to set up logging")
			os.Exit(1)
		}
		defer closeLog()

		snap, err := simulate(simTicks)
		if err != nil {
			log.WithError(err).Error("simulation failed")
			closeLog()
			os.Exit(1)
		}
		spew.Dump(snap)
	},
}

// simulate steps a session as fast as possible, then quits.
func simulate(ticks int) (game.Snapshot, error) {
	seed := cfg.RandomSeed()
	pilot := &autopilot{
		rng:       rand.New(rand.NewSource(seed)),
		remaining: ticks,
	}
	s, err := game.NewSession(cfg, pilot, game.InstrumentRenderer(game.Discard))
	if err != nil {
		return game.Snapshot{}, err
	}

	start := time.Now()
	for s.State == game.StateRunning {
		if err := s.Step(); err != nil {
			return game.Snapshot{}, err
		}
	}
	log.WithFields(log.Fields{
		"session": s.ID,
		"ticks":   s.Turn,
		"best":    s.Best,
		"elapsed": time.Since(start),
	}).Info("simulation complete")
	return s.Snapshot(), nil
}

// autopilot turns at random roughly one tick in four and quits after a
// fixed number of ticks.
type autopilot struct {
	rng       *rand.Rand
	remaining int
}

func (a *autopilot) Poll() []game.Event {
	if a.remaining <= 0 {
		return []game.Event{{Type: game.EventQuit}}
	}
	a.remaining--
	if a.rng.Intn(4) != 0 {
		return nil
	}
	d := rules.Directions[a.rng.Intn(len(rules.Directions))]
	return []game.Event{{Type: game.EventDirection, Direction: d}}
}
