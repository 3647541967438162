package cubesnake

import "github.com/vovakirdan/cubesnake/internal/cube"

// Snapshot captures the observable model state for determinism testing and replay.
type Snapshot struct {
	Steps        uint64
	Score        int
	ObjectsEaten int
	Length       int
	Head         cube.Position
	HeadTo       cube.Direction2D
	Tail         cube.Position
	Progress     float64
	GameOver     bool
	HasFood      bool
	Food         cube.Position
	HasBonus     bool
	Bonus        cube.Position
}

// Snapshot returns the current model snapshot.
func (m *Model) Snapshot() Snapshot {
	food, hasFood := m.Food()
	bonus, hasBonus := m.Bonus()
	return Snapshot{
		Steps:        m.steps,
		Score:        m.score,
		ObjectsEaten: m.objectsEaten,
		Length:       m.Length(),
		Head:         m.HeadPosition(),
		HeadTo:       m.tiles[m.head].To,
		Tail:         m.grid.Position(m.tail),
		Progress:     m.progress,
		GameOver:     m.gameOver,
		HasFood:      hasFood,
		Food:         food,
		HasBonus:     hasBonus,
		Bonus:        bonus,
	}
}
