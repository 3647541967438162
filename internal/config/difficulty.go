package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyCubeSnakePreset modifies the config based on a difficulty preset.
// Normal and empty presets leave the config untouched.
func ApplyCubeSnakePreset(cfg *CubeSnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Grid.Width = max(cfg.Grid.Width, 8) // More room to manoeuvre
		cfg.Speed.TilesPerSecond = 2.0
		cfg.Speed.IncreasePerObject = 0.05
	case DifficultyHard:
		cfg.Grid.Width = min(cfg.Grid.Width, 5)
		cfg.Speed.TilesPerSecond = 4.0
		cfg.Speed.IncreasePerObject = 0.2
		cfg.Bonus.DurationSeconds = cfg.Bonus.DurationSeconds / 2
	}
}
