package commands

import (
	"github.com/battlesnakeio/snake/game"
	"github.com/battlesnakeio/snake/rules"
	termbox "github.com/nsf/termbox-go"
	log "github.com/sirupsen/logrus"
)

// termInput forwards terminal events from a polling goroutine. The session
// drains them without blocking once per tick.
type termInput struct {
	events chan termbox.Event
}

func newTermInput() *termInput {
	in := &termInput{events: make(chan termbox.Event, 64)}
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(in.events)
	return in
}

func (in *termInput) Poll() []game.Event {
	var events []game.Event
	for {
		select {
		case ev := <-in.events:
			if ev.Type == termbox.EventError {
				log.WithError(ev.Err).Warn("terminal input error")
				continue
			}
			if e, ok := translate(ev); ok {
				events = append(events, e)
			}
		default:
			return events
		}
	}
}

var keyEvents = map[termbox.Key]game.Event{
	termbox.KeyArrowUp:    {Type: game.EventDirection, Direction: rules.Up},
	termbox.KeyArrowDown:  {Type: game.EventDirection, Direction: rules.Down},
	termbox.KeyArrowLeft:  {Type: game.EventDirection, Direction: rules.Left},
	termbox.KeyArrowRight: {Type: game.EventDirection, Direction: rules.Right},
	termbox.KeyEsc:        {Type: game.EventEscape},
	termbox.KeyCtrlC:      {Type: game.EventQuit},
	termbox.KeySpace:      {Type: game.EventPause},
}

var charEvents = map[rune]game.Event{
	'w': {Type: game.EventDirection, Direction: rules.Up},
	's': {Type: game.EventDirection, Direction: rules.Down},
	'a': {Type: game.EventDirection, Direction: rules.Left},
	'd': {Type: game.EventDirection, Direction: rules.Right},
	'q': {Type: game.EventQuit},
	'+': {Type: game.EventSpeedUp},
	'=': {Type: game.EventSpeedUp},
	'-': {Type: game.EventSpeedDown},
	'_': {Type: game.EventSpeedDown},
}

// translate maps a terminal event onto a game event. Anything unrecognised
// is dropped.
func translate(ev termbox.Event) (game.Event, bool) {
	if ev.Type != termbox.EventKey {
		return game.Event{}, false
	}
	if ev.Ch != 0 {
		e, ok := charEvents[ev.Ch]
		return e, ok
	}
	e, ok := keyEvents[ev.Key]
	return e, ok
}
