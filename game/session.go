// Package game runs a snake session: it gates ticks at the current speed,
// folds input into direction and speed changes, advances the snake and hands
// a frame to the renderer after every step. All session state is owned by the
// goroutine calling Run.
package game

import (
	"context"
	"errors"
	"math/rand"

	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/rules"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// State is the lifecycle state of a session.
type State int

const (
	// StateRunning is the state of a session that still accepts ticks.
	StateRunning State = iota
	// StateStopped is terminal, entered on quit or escape.
	StateStopped
)

func (s State) String() string {
	if s == StateStopped {
		return "stopped"
	}
	return "running"
}

// ErrStopped is returned when stepping a session that has already stopped.
var ErrStopped = errors.New("game: session stopped")

// Session is a single game of snake.
type Session struct {
	ID     string
	Config config.Config
	Board  rules.Board
	Snake  *rules.Snake
	Apple  *rules.Apple
	Speed  *Speed
	State  State
	Paused bool
	Turn   int64
	// Best is the longest the snake has been during this session.
	Best int

	input    Input
	renderer Renderer
	limiter  *rate.Limiter
	log      *log.Entry
}

// NewSession validates cfg and sets up a fresh snake and apple.
func NewSession(cfg config.Config, in Input, out Renderer) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.RandomSeed()))
	board := cfg.Board()
	snake := rules.NewSnake(board, rng)
	apple, err := rules.NewApple(board, rng, snake.Cells())
	if err != nil {
		return nil, err
	}

	id := uuid.NewV4().String()
	speed := NewSpeed(cfg.Speed, cfg.MinSpeed)
	tickRate.Set(float64(speed.Value()))
	snakeLength.Set(float64(snake.Length))

	return &Session{
		ID:       id,
		Config:   cfg,
		Board:    board,
		Snake:    snake,
		Apple:    apple,
		Speed:    speed,
		State:    StateRunning,
		Best:     snake.Length,
		input:    in,
		renderer: out,
		limiter:  rate.NewLimiter(config.TickRate(speed.Value()), 1),
		log:      log.WithField("session", id),
	}, nil
}

// Run steps the session once per tick until it stops or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	s.log.WithFields(log.Fields{
		"width":  s.Board.Width,
		"height": s.Board.Height,
		"grid":   s.Board.Unit,
		"speed":  s.Speed.Value(),
	}).Info("session started")

	for s.State == StateRunning {
		if err := s.limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		if err := s.Step(); err != nil {
			return err
		}
	}

	s.log.WithFields(log.Fields{
		"turn": s.Turn,
		"best": s.Best,
	}).Info("session stopped")
	return nil
}

// Step runs one iteration of the loop without waiting: it drains input,
// ticks the snake unless paused, and renders. A quit or escape stops the
// session before the tick.
func (s *Session) Step() error {
	if s.State == StateStopped {
		return ErrStopped
	}

	for _, ev := range s.input.Poll() {
		s.HandleEvent(ev)
		if s.State == StateStopped {
			return nil
		}
	}

	var res rules.TickResult
	if !s.Paused {
		res = s.tick()
	}
	return s.renderer.Render(s.frame(res))
}

// HandleEvent applies a single input event to the session.
func (s *Session) HandleEvent(ev Event) {
	switch ev.Type {
	case EventQuit, EventEscape:
		s.log.WithField("event", ev.Type.String()).Info("stopping session")
		s.State = StateStopped
	case EventSpeedUp:
		s.setSpeed(s.Speed.Faster())
	case EventSpeedDown:
		s.setSpeed(s.Speed.Slower())
	case EventPause:
		s.Paused = !s.Paused
	case EventDirection:
		if s.Paused {
			return
		}
		if !s.Snake.QueueDirection(ev.Direction) {
			s.log.WithFields(log.Fields{
				"current":   s.Snake.Direction.String(),
				"requested": ev.Direction.String(),
			}).Debug("direction ignored")
		}
	}
}

func (s *Session) setSpeed(v int) {
	s.limiter.SetLimit(config.TickRate(v))
	tickRate.Set(float64(v))
	s.log.WithField("speed", v).Info("speed changed")
}

func (s *Session) tick() rules.TickResult {
	s.Turn++
	res := s.Snake.Tick(s.Apple)
	ticks.Inc()

	if res.Ate {
		applesEaten.Inc()
		s.log.WithFields(log.Fields{
			"turn":   s.Turn,
			"length": s.Snake.Length,
			"apple":  s.Apple.Position.String(),
		}).Info("snake ate")
	}
	if res.Reset {
		resets.WithLabelValues(res.Cause).Inc()
		s.log.WithFields(log.Fields{
			"turn":  s.Turn,
			"cause": res.Cause,
		}).Info("snake reset")
	}
	if s.Snake.Length > s.Best {
		s.Best = s.Snake.Length
	}
	snakeLength.Set(float64(s.Snake.Length))
	return res
}

func (s *Session) frame(res rules.TickResult) *Frame {
	f := &Frame{
		Title:  s.Config.Title,
		Board:  s.Board,
		Clear:  true,
		Turn:   s.Turn,
		Length: s.Snake.Length,
		Best:   s.Best,
		Speed:  s.Speed.Value(),
		Paused: s.Paused,
	}
	if res.HasVacated {
		f.erase(res.Vacated)
	}
	f.draw(s.Apple)
	f.draw(s.Snake)
	return f
}

// Snapshot is a point in time copy of the session for reporting.
type Snapshot struct {
	ID        string
	State     string
	Turn      int64
	Speed     int
	Length    int
	Best      int
	Direction string
	Body      []rules.Point
	Apple     rules.Point
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:        s.ID,
		State:     s.State.String(),
		Turn:      s.Turn,
		Speed:     s.Speed.Value(),
		Length:    s.Snake.Length,
		Best:      s.Best,
		Direction: s.Snake.Direction.String(),
		Body:      s.Snake.Cells(),
		Apple:     s.Apple.Position,
	}
}
