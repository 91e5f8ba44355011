package game

import "time"

// Speed is the tick rate of a session in ticks per second. It never drops
// below its minimum.
type Speed struct {
	value int
	min   int
}

// NewSpeed returns a speed starting at value, floored at min.
func NewSpeed(value, min int) *Speed {
	if min < 1 {
		min = 1
	}
	if value < min {
		value = min
	}
	return &Speed{value: value, min: min}
}

// Value returns the current ticks per second.
func (s *Speed) Value() int { return s.value }

// Min returns the floor.
func (s *Speed) Min() int { return s.min }

// Faster increments the speed and returns the new value.
func (s *Speed) Faster() int {
	s.value++
	return s.value
}

// Slower decrements the speed, stopping at the floor, and returns the new value.
func (s *Speed) Slower() int {
	if s.value > s.min {
		s.value--
	}
	return s.value
}

// Interval is the time between two ticks.
func (s *Speed) Interval() time.Duration {
	return time.Second / time.Duration(s.value)
}
