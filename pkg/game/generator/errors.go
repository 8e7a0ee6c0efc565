package generator

import "errors"

var (
	// ErrGridTooSmall indicates the requested grid cannot hold a maze.
	ErrGridTooSmall = errors.New("generator: grid must be at least 5x5")
	// ErrRoomSize indicates invalid room size bounds.
	ErrRoomSize = errors.New("generator: room sizes must be odd, at least 3, and min <= max")
	// ErrProbability indicates a probability or density outside [0,1].
	ErrProbability = errors.New("generator: probability must be within [0,1]")
	// ErrNegativeCount indicates a negative room, retry or entity count.
	ErrNegativeCount = errors.New("generator: counts must not be negative")
	// ErrInvalidLevel indicates a generated level failed validation.
	ErrInvalidLevel = errors.New("generator: invalid level")
	// ErrUnknownGenerator indicates no generator is registered under a name.
	ErrUnknownGenerator = errors.New("generator: unknown generator")
)
