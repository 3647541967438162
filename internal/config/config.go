// Package config provides YAML-based game configuration loading and
// difficulty presets for Cube Snake.
package config

import "fmt"

// MaxGridWidth is the widest cube edge the game accepts.
const MaxGridWidth = 64

// CubeSnakeConfig contains all configuration for the Cube Snake game.
type CubeSnakeConfig struct {
	Grid     CubeSnakeGrid    `yaml:"grid"`
	Speed    CubeSnakeSpeed   `yaml:"speed"`
	Scoring  CubeSnakeScoring `yaml:"scoring"`
	Bonus    CubeSnakeBonus   `yaml:"bonus"`
	Controls ControlScheme    `yaml:"controls"`
}

// CubeSnakeGrid defines the size of the cube.
type CubeSnakeGrid struct {
	Width int `yaml:"width"` // Tiles along one cube edge
}

// CubeSnakeSpeed defines how fast the snake crawls.
type CubeSnakeSpeed struct {
	TilesPerSecond    float64 `yaml:"tiles_per_second"`
	IncreasePerObject float64 `yaml:"increase_per_object"` // Added to speed per object eaten
}

// CubeSnakeScoring defines points awarded for eating.
type CubeSnakeScoring struct {
	PointsPerObject int `yaml:"points_per_object"`
	PointsPerBonus  int `yaml:"points_per_bonus"`
}

// CubeSnakeBonus defines the short-lived bonus object.
type CubeSnakeBonus struct {
	Enabled         bool    `yaml:"enabled"`
	Frequency       int     `yaml:"frequency"` // Objects eaten between bonus spawns
	DurationSeconds float64 `yaml:"duration_seconds"`
}

// ControlScheme selects how arrow keys are interpreted.
type ControlScheme string

const (
	// ControlsScreen maps arrow keys to directions on the unfolded net.
	ControlsScreen ControlScheme = "screen"
	// ControlsRelative treats left/right as turns relative to the snake's heading.
	ControlsRelative ControlScheme = "relative"
)

// ParseControlScheme validates a control scheme name. Empty selects ControlsScreen.
func ParseControlScheme(s string) (ControlScheme, error) {
	switch ControlScheme(s) {
	case "", ControlsScreen:
		return ControlsScreen, nil
	case ControlsRelative:
		return ControlsRelative, nil
	default:
		return "", fmt.Errorf("unknown control scheme %q (want screen or relative)", s)
	}
}

// Validate checks that the configuration describes a playable game.
func (c CubeSnakeConfig) Validate() error {
	if c.Grid.Width < 3 || c.Grid.Width > MaxGridWidth {
		return fmt.Errorf("grid.width must be between 3 and %d, got %d", MaxGridWidth, c.Grid.Width)
	}
	if c.Speed.TilesPerSecond <= 0 {
		return fmt.Errorf("speed.tiles_per_second must be positive, got %v", c.Speed.TilesPerSecond)
	}
	if c.Speed.IncreasePerObject < 0 {
		return fmt.Errorf("speed.increase_per_object must not be negative, got %v", c.Speed.IncreasePerObject)
	}
	if c.Bonus.Enabled && (c.Bonus.Frequency < 1 || c.Bonus.DurationSeconds <= 0) {
		return fmt.Errorf("bonus needs frequency >= 1 and positive duration_seconds")
	}
	if _, err := ParseControlScheme(string(c.Controls)); err != nil {
		return err
	}
	return nil
}
