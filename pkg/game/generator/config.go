package generator

import "fmt"

// Config holds the parameters of a generated level
type Config struct {
	Height int
	Width  int

	// Room placement
	MaxRooms    int
	RoomMinSize int // Odd, at least 3
	RoomMaxSize int // Odd, at least RoomMinSize
	RetryCount  int
	Density     float64 // Fraction of the grid covered by rooms; 0 disables the limit

	// Region merging
	ExtraConnectionProbability float64
	HasDoors                   bool

	// Remove dead ends and horseshoe bends after carving
	Simplify bool

	// Entities stamped into every detected room
	SpawnCount  int
	ObjectCount int
}

// DefaultConfig returns the configuration used when no level is given
func DefaultConfig() Config {
	return Config{
		Height:                     15,
		Width:                      25,
		MaxRooms:                   4,
		RoomMinSize:                3,
		RoomMaxSize:                7,
		RetryCount:                 1000,
		Density:                    0.5,
		ExtraConnectionProbability: 0.05,
		HasDoors:                   true,
		Simplify:                   true,
		SpawnCount:                 1,
		ObjectCount:                1,
	}
}

// ConfigForLevel scales the default configuration with the level number.
// Level 1: 19x31, Level 5: 35x55, Level 10: 55x85.
func ConfigForLevel(level int) Config {
	cfg := DefaultConfig()
	if level < 1 {
		return cfg
	}

	// Start small and scale grid size with level, keeping odd dimensions
	rows := 15 + level*4
	cols := 25 + level*6
	if rows > 59 {
		rows = 59
	}
	if cols > 99 {
		cols = 99
	}
	cfg.Height = rows | 1
	cfg.Width = cols | 1

	// More and larger rooms at higher levels
	cfg.MaxRooms = 3 + level
	if cfg.MaxRooms > 16 {
		cfg.MaxRooms = 16
	}
	if level >= 4 {
		cfg.RoomMaxSize = 9
	}
	return cfg
}

// Validate checks the configuration before generation
func (c Config) Validate() error {
	if c.Height < 5 || c.Width < 5 {
		return fmt.Errorf("size %dx%d: %w", c.Height, c.Width, ErrGridTooSmall)
	}
	if c.RoomMinSize < 3 || c.RoomMinSize%2 == 0 || c.RoomMaxSize%2 == 0 || c.RoomMaxSize < c.RoomMinSize {
		return fmt.Errorf("room size %d..%d: %w", c.RoomMinSize, c.RoomMaxSize, ErrRoomSize)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density %v: %w", c.Density, ErrProbability)
	}
	if c.ExtraConnectionProbability < 0 || c.ExtraConnectionProbability > 1 {
		return fmt.Errorf("extra connection probability %v: %w", c.ExtraConnectionProbability, ErrProbability)
	}
	if c.MaxRooms < 0 || c.RetryCount < 0 || c.SpawnCount < 0 || c.ObjectCount < 0 {
		return ErrNegativeCount
	}
	return nil
}

func (c Config) placement() PlacementOptions {
	return PlacementOptions{
		MinSize:    c.RoomMinSize,
		MaxSize:    c.RoomMaxSize,
		Density:    c.Density,
		MaxRects:   c.MaxRooms,
		RetryCount: c.RetryCount,
	}
}
