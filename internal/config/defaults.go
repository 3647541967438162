package config

import (
	_ "embed"
)

//go:embed defaults/cubesnake.yaml
var defaultCubeSnakeYAML []byte

// DefaultCubeSnakeConfig returns the default Cube Snake configuration.
func DefaultCubeSnakeConfig() CubeSnakeConfig {
	return CubeSnakeConfig{
		Grid: CubeSnakeGrid{
			Width: 6,
		},
		Speed: CubeSnakeSpeed{
			TilesPerSecond:    2.5,
			IncreasePerObject: 0.1,
		},
		Scoring: CubeSnakeScoring{
			PointsPerObject: 10,
			PointsPerBonus:  50,
		},
		Bonus: CubeSnakeBonus{
			Enabled:         true,
			Frequency:       5,
			DurationSeconds: 8,
		},
		Controls: ControlsScreen,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCubeSnakeYAML
}
