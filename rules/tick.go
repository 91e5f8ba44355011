package rules

// TickResult describes what happened during a single tick.
type TickResult struct {
	// Head is the head after the tick.
	Head Point
	// Ate is set when the head landed on the apple.
	Ate bool
	// Reset is set when the snake was put back to its initial state. Cause
	// holds one of the ResetCause values.
	Reset bool
	Cause string
	// Vacated is the tail cell given up by the move, valid when HasVacated is
	// set. Renderers erase it.
	Vacated    Point
	HasVacated bool
}

// Tick runs the snake one step:
//  1. the queued direction, if any, is applied
//  2. the head moves one cell, wrapping around the board edges
//  3. running into the body resets the snake and ends the tick
//  4. landing on the apple grows the snake and relocates the apple
//  5. the tail is trimmed back to the target length
func (s *Snake) Tick(apple *Apple) TickResult {
	s.UpdateDirection()
	next := s.Advance()

	if s.collides(next) {
		return s.reset(apple, ResetCauseSelfCollision)
	}

	s.Body = append([]Point{next}, s.Body...)
	res := TickResult{Head: next}

	if apple != nil && next.Equals(apple.Position) {
		s.Length++
		res.Ate = true
		if err := apple.Relocate(s.Body); err == ErrBoardFull {
			res = s.reset(apple, ResetCauseBoardFull)
			res.Ate = true
			return res
		}
	}

	if len(s.Body) > s.Length {
		res.Vacated = s.Tail()
		res.HasVacated = true
		s.Body = s.Body[:len(s.Body)-1]
	}
	return res
}

// reset restarts the snake and moves the apple off the start cell if the
// restart landed on it.
func (s *Snake) reset(apple *Apple, cause string) TickResult {
	s.Reset()
	if apple != nil && s.Occupies(apple.Position) {
		// a board with a single cell has nowhere else to put the apple
		_ = apple.Relocate(s.Body)
	}
	return TickResult{
		Head:  s.Head(),
		Reset: true,
		Cause: cause,
	}
}
