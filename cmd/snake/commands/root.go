package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/game"
	"github.com/battlesnakeio/snake/version"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "snake",
	Short:   "snake plays the classic snake game in the terminal",
	Version: version.Version,
	PreRun:  func(c *cobra.Command, args []string) { prometheus() },
	Run: func(c *cobra.Command, args []string) {
		closeLog, err := setupLogging(nil)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		err = play()
		if err != nil {
			log.WithError(err).Error("game failed")
		}
		closeLog()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

var cfg = config.Default()

// Execute runs the root command
func Execute() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&cfg.Width, "width", cfg.Width, "board width, a multiple of the grid size")
	flags.IntVar(&cfg.Height, "height", cfg.Height, "board height, a multiple of the grid size")
	flags.IntVar(&cfg.GridSize, "grid", cfg.GridSize, "size of a single board cell")
	flags.IntVar(&cfg.Speed, "speed", cfg.Speed, "starting speed in ticks per second")
	flags.IntVar(&cfg.MinSpeed, "min-speed", cfg.MinSpeed, "slowest speed the game can be turned down to")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 picks one from the clock")
	flags.StringVar(&logFile, "log-file", logFile, "write logs to this file")
	flags.StringVar(&logLevel, "log-level", logLevel, "log level, as one of: [debug, info, warn, error]")

	rootCmd.Flags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	rootCmd.Flags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")

	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// play owns the terminal for the length of a session.
func play() error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "unable to initialise terminal")
	}
	defer termbox.Close()

	in := newTermInput()
	s, err := game.NewSession(cfg, in, game.InstrumentRenderer(&termRenderer{}))
	if err != nil {
		return err
	}
	return s.Run(context.Background())
}
