package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Presets only pick the starting move interval; the speed ramp is the same for all.
type DifficultyPreset string

const (
	DifficultyNone   DifficultyPreset = ""
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string means "keep the config as is".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case DifficultyNone, DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return DifficultyNone, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// InitialSpeedForPreset returns the starting move interval in ms for a preset.
func InitialSpeedForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 150
	case DifficultyHard:
		return 60
	default:
		return 100
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if preset == DifficultyNone {
		return
	}
	cfg.Speed.Initial = InitialSpeedForPreset(preset)
}
