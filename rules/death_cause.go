package rules

const (
	// ResetCauseSelfCollision is the reset reason when the head runs into the body
	ResetCauseSelfCollision = "self-collision"
	// ResetCauseBoardFull is the reset reason when the snake covers every cell
	// and no apple can be placed
	ResetCauseBoardFull = "board-full"
)
