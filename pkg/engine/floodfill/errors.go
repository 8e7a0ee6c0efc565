package floodfill

import "errors"

var (
	// ErrGoalOutOfBounds indicates the goal lies outside the grid.
	ErrGoalOutOfBounds = errors.New("floodfill: goal is out of bounds")
	// ErrGoalIsWall indicates the goal cell is itself a wall.
	ErrGoalIsWall = errors.New("floodfill: goal is a wall cell")
)
