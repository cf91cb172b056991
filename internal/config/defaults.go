package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:    50,
			Height:   40,
			TileSize: 16,
		},
		Spawn: SpawnConfig{
			SnakeX: 8,
			SnakeY: 8,
			FoodX:  3,
			FoodY:  4,
		},
		Speed: SpeedConfig{
			Initial: 100,
			Floor:   20,
			Step:    5,
			Every:   5,
		},
	}
}
