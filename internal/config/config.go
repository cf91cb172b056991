// Package config provides YAML-based configuration loading and difficulty
// presets for the snake game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) by Validate for unusable values.
var ErrInvalidConfig = errors.New("invalid config")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid  GridConfig  `yaml:"grid"`
	Spawn SpawnConfig `yaml:"spawn"`
	Speed SpeedConfig `yaml:"speed"`
}

// GridConfig defines the playfield size.
type GridConfig struct {
	Width    int `yaml:"width"`     // Columns
	Height   int `yaml:"height"`    // Rows
	TileSize int `yaml:"tile_size"` // Pixels per tile for pixel renderers
}

// SpawnConfig defines where the snake and the first food appear.
type SpawnConfig struct {
	SnakeX int `yaml:"snake_x"`
	SnakeY int `yaml:"snake_y"`
	FoodX  int `yaml:"food_x"`
	FoodY  int `yaml:"food_y"`
}

// SpeedConfig defines the move interval and its ramp.
// Intervals are in milliseconds; lower is faster.
type SpeedConfig struct {
	Initial int `yaml:"initial"` // Interval at spawn
	Floor   int `yaml:"floor"`   // Ramp only applies while the interval is above this
	Step    int `yaml:"step"`    // Amount subtracted per ramp
	Every   int `yaml:"every"`   // Ramp on every Nth food eaten
}

// Validate checks that the config describes a playable game.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Grid.Width <= 0 || c.Grid.Height <= 0:
		return fmt.Errorf("%w: grid must be positive, got %dx%d", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	case c.Grid.TileSize <= 0:
		return fmt.Errorf("%w: tile_size must be positive, got %d", ErrInvalidConfig, c.Grid.TileSize)
	case !inGrid(c.Grid, c.Spawn.SnakeX, c.Spawn.SnakeY):
		return fmt.Errorf("%w: snake spawn (%d,%d) outside grid", ErrInvalidConfig, c.Spawn.SnakeX, c.Spawn.SnakeY)
	case !inGrid(c.Grid, c.Spawn.FoodX, c.Spawn.FoodY):
		return fmt.Errorf("%w: food spawn (%d,%d) outside grid", ErrInvalidConfig, c.Spawn.FoodX, c.Spawn.FoodY)
	case c.Speed.Initial <= 0:
		return fmt.Errorf("%w: initial speed must be positive, got %d", ErrInvalidConfig, c.Speed.Initial)
	case c.Speed.Floor < 0 || c.Speed.Step < 0:
		return fmt.Errorf("%w: speed floor and step must not be negative", ErrInvalidConfig)
	case c.Speed.Every <= 0:
		return fmt.Errorf("%w: speed every must be positive, got %d", ErrInvalidConfig, c.Speed.Every)
	case c.Speed.Step > c.Speed.Floor:
		// The ramp stops once the interval is at or below Floor, so the
		// smallest reachable interval is Floor+1-Step.
		return fmt.Errorf("%w: speed step %d exceeds floor %d, interval could reach zero", ErrInvalidConfig, c.Speed.Step, c.Speed.Floor)
	}
	return nil
}

func inGrid(g GridConfig, x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}
