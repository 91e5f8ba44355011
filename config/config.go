package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/battlesnakeio/snake/rules"
	"golang.org/x/time/rate"
)

// Defaults, overridable through the environment. They match the classic
// 640x480 board with 20 pixel cells running at 5 ticks per second.
var (
	Width    = getEnvInt("SNAKE_WIDTH", 640)
	Height   = getEnvInt("SNAKE_HEIGHT", 480)
	GridSize = getEnvInt("SNAKE_GRID", 20)
	Speed    = getEnvInt("SNAKE_SPEED", 5)
	MinSpeed = getEnvInt("SNAKE_MIN_SPEED", 2)
)

// Title is shown above the board.
const Title = "Snake - arrows/wasd: move, +/-: speed, space: pause, esc/q: quit"

// ErrInvalidSpeed is returned when the speed settings are out of range.
var ErrInvalidSpeed = errors.New("config: speed must be at least the minimum speed, which must be positive")

// Config is everything a game session needs to know up front.
type Config struct {
	Width    int
	Height   int
	GridSize int
	Speed    int
	MinSpeed int
	// Seed drives all randomness. Zero picks a seed from the clock.
	Seed  int64
	Title string
}

// Default returns the configuration built from the package defaults.
func Default() Config {
	return Config{
		Width:    Width,
		Height:   Height,
		GridSize: GridSize,
		Speed:    Speed,
		MinSpeed: MinSpeed,
		Title:    Title,
	}
}

// Validate checks the board and speed settings.
func (c Config) Validate() error {
	if err := c.Board().Validate(); err != nil {
		return err
	}
	if c.MinSpeed <= 0 || c.Speed < c.MinSpeed {
		return ErrInvalidSpeed
	}
	return nil
}

// Board returns the board described by the configuration.
func (c Config) Board() rules.Board {
	return rules.Board{Width: c.Width, Height: c.Height, Unit: c.GridSize}
}

// RandomSeed returns Seed, or a clock based seed when Seed is zero.
func (c Config) RandomSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// TickRate converts a speed in ticks per second into a limiter rate.
func TickRate(speed int) rate.Limit {
	return rate.Limit(speed)
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}
