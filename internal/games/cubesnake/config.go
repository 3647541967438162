package cubesnake

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/cubesnake/internal/config"
)

// ErrInvalidConfig is returned by New for a Config that cannot be simulated.
var ErrInvalidConfig = errors.New("cubesnake: invalid config")

// Config holds the gameplay parameters of a Model.
type Config struct {
	GridWidth              int     // Tiles along one cube edge
	TilesPerSecond         float64 // Base speed
	SpeedIncreasePerObject float64 // Added to speed per object eaten
	PointsPerObject        int

	HasBonus             bool
	BonusFrequency       int     // Objects eaten between bonus spawns
	BonusDuration        float64 // Seconds a bonus stays on the board
	PointsPerBonusObject int
}

// DefaultConfig returns the stock game parameters.
func DefaultConfig() Config {
	return Config{
		GridWidth:              6,
		TilesPerSecond:         2.5,
		SpeedIncreasePerObject: 0.1,
		PointsPerObject:        10,
		HasBonus:               false,
		BonusFrequency:         5,
		BonusDuration:          8,
		PointsPerBonusObject:   50,
	}
}

// FromSettings converts the YAML configuration into model parameters.
func FromSettings(s config.CubeSnakeConfig) Config {
	return Config{
		GridWidth:              s.Grid.Width,
		TilesPerSecond:         s.Speed.TilesPerSecond,
		SpeedIncreasePerObject: s.Speed.IncreasePerObject,
		PointsPerObject:        s.Scoring.PointsPerObject,
		HasBonus:               s.Bonus.Enabled,
		BonusFrequency:         s.Bonus.Frequency,
		BonusDuration:          s.Bonus.DurationSeconds,
		PointsPerBonusObject:   s.Scoring.PointsPerBonus,
	}
}

// Validate reports why c cannot be simulated, wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	var problem string
	switch {
	case c.GridWidth < 3 || c.GridWidth > config.MaxGridWidth:
		problem = fmt.Sprintf("grid width %d outside [3, %d]", c.GridWidth, config.MaxGridWidth)
	case !(c.TilesPerSecond > 0) || math.IsInf(c.TilesPerSecond, 0):
		problem = fmt.Sprintf("tiles per second %v must be positive and finite", c.TilesPerSecond)
	case !(c.SpeedIncreasePerObject >= 0) || math.IsInf(c.SpeedIncreasePerObject, 0):
		problem = fmt.Sprintf("speed increase %v must be non-negative and finite", c.SpeedIncreasePerObject)
	case c.HasBonus && c.BonusFrequency < 1:
		problem = fmt.Sprintf("bonus frequency %d must be at least 1", c.BonusFrequency)
	case c.HasBonus && !(c.BonusDuration > 0):
		problem = fmt.Sprintf("bonus duration %v must be positive", c.BonusDuration)
	default:
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, problem)
}
