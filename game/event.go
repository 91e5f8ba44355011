package game

import "github.com/battlesnakeio/snake/rules"

// EventType identifies the kind of input event.
type EventType int

// Input events understood by a session.
const (
	EventQuit EventType = iota + 1
	EventEscape
	EventDirection
	EventSpeedUp
	EventSpeedDown
	EventPause
)

func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "quit"
	case EventEscape:
		return "escape"
	case EventDirection:
		return "direction"
	case EventSpeedUp:
		return "speed-up"
	case EventSpeedDown:
		return "speed-down"
	case EventPause:
		return "pause"
	}
	return "unknown"
}

// Event is a single input event. Direction is only set for EventDirection.
type Event struct {
	Type      EventType
	Direction rules.Direction
}

// Input produces the events that arrived since the previous call. Poll must
// not block.
type Input interface {
	Poll() []Event
}
