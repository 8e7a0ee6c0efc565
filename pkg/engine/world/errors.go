package world

import "errors"

var (
	// ErrEmptyText indicates the entity text has no rows or only empty rows.
	ErrEmptyText = errors.New("world: entity text must contain at least one character")
	// ErrRaggedLayers indicates the variations text does not fit the entity bounds.
	ErrRaggedLayers = errors.New("world: variations text exceeds entity bounds")
)
