package cubesnake

import (
	"fmt"
	"iter"
	"math"
	"math/rand"

	"github.com/vovakirdan/cubesnake/internal/cube"
)

// noTile marks an absent object.
const noTile = -1

// Model is the cube snake simulation. It owns the tile grid and is driven by
// ChangeDirection and Update from a single control loop; it is not safe for
// concurrent use.
type Model struct {
	cfg   Config
	grid  cube.Grid
	tiles []SnakeTile
	rng   *rand.Rand

	// Indices into tiles. The slice is never reallocated after New.
	head    int
	preHead int
	tail    int

	progress     float64 // Fraction of the way to the next tile, [0, 1]
	score        int
	objectsEaten int
	steps        uint64
	gameOver     bool

	food          int
	bonus         int
	bonusTimeLeft float64

	free []int // Scratch buffer for spawning
}

// New creates a model with the initial three-tile snake on the south face and
// one object placed using rng.
func New(cfg Config, rng *rand.Rand) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}

	grid := cube.NewGrid(cfg.GridWidth)
	m := &Model{
		cfg:   cfg,
		grid:  grid,
		tiles: make([]SnakeTile, grid.Len()),
		rng:   rng,
		food:  noTile,
		bonus: noTile,
	}
	m.placeInitialSnake()
	m.food = m.spawn(Object)
	return m, nil
}

// NewWithSeed is New with a fresh random source seeded by seed.
func NewWithSeed(cfg Config, seed int64) (*Model, error) {
	return New(cfg, rand.New(rand.NewSource(seed)))
}

// placeInitialSnake lays tail, pre-head and head upward along the middle
// column of the south face.
func (m *Model) placeInitialSnake() {
	mid := int16(m.grid.Size() / 2)
	types := [3]TileType{Tail, PreHead, Head}
	idx := [3]int{}
	for i, t := range types {
		p := cube.Position{Side: cube.South, E1: mid, E2: int16(i)}
		idx[i] = m.grid.Index(p)
		m.tiles[idx[i]] = SnakeTile{Type: t, From: cube.DirDown, To: cube.DirUp}
	}
	m.tail, m.preHead, m.head = idx[0], idx[1], idx[2]
}

// ChangeDirection steers the head. dir is relative to up, the camera's current
// up on the head's face. Reversals into the pre-head and an up that does not
// lie in the head's face are ignored. Movement happens on the next step.
func (m *Model) ChangeDirection(up cube.Direction3D, dir cube.Direction2D) {
	if m.gameOver || !up.Valid() || !dir.Valid() {
		return
	}
	side := m.grid.Position(m.head).Side
	if !cube.Tangent(side, up) {
		return
	}
	local := cube.UnMapDefaultUp(side, cube.Map(side, up, dir))
	head := &m.tiles[m.head]
	if local == head.From {
		return
	}
	head.To = local
}

// Update advances the simulation clock by delta seconds and performs at most
// one tile step. Non-positive and NaN deltas are ignored.
func (m *Model) Update(delta float64) {
	if m.gameOver || !(delta > 0) {
		return
	}

	m.expireBonus(delta)

	m.progress += delta * m.Speed()
	if m.progress < 1 {
		return
	}
	m.progress--
	if m.progress >= 1 {
		// Only one step per call; keep the backlog just short of the next.
		m.progress = math.Nextafter(1, 0)
	}
	m.step()
}

// step moves the head one tile, eating or colliding, then retracts the tail.
func (m *Model) step() {
	headPos := m.grid.Position(m.head)
	nextPos, travel := m.grid.Step(headPos, m.tiles[m.head].To)
	next := m.grid.Index(nextPos)

	eaten := m.tiles[next].Type
	switch eaten {
	case Object:
		m.score += m.cfg.PointsPerObject
		m.objectsEaten++
		m.tiles[next] = SnakeTile{}
		m.food = noTile
	case BonusObject:
		m.score += m.cfg.PointsPerBonusObject
		m.tiles[next] = SnakeTile{}
		m.bonus = noTile
		m.bonusTimeLeft = 0
	}

	if m.tiles[next].Type != Empty {
		m.gameOver = true
		m.progress = 1
		return
	}

	pre := &m.tiles[m.preHead]
	pre.Type = Body.WithDigesting(pre.Type.IsDigesting())
	old := &m.tiles[m.head]
	old.Type = PreHead.WithDigesting(old.Type.IsDigesting())
	m.tiles[next] = SnakeTile{
		Type: Head.WithDigesting(eaten.IsFood()),
		From: travel.Opposite(),
		To:   travel,
	}
	m.preHead, m.head = m.head, next

	// Spawn before the tail retracts so only tiles that were already empty
	// are candidates.
	if eaten == Object {
		m.food = m.spawn(Object)
		m.maybeSpawnBonus()
	}

	m.retractTail()
	if m.food == noTile {
		// The board was full; the retracted tail may have freed a tile.
		m.food = m.spawn(Object)
	}
	m.steps++
}

// retractTail moves the tail forward one tile unless it is digesting, in
// which case it stays put and the snake grows by one.
func (m *Model) retractTail() {
	tail := &m.tiles[m.tail]
	if tail.Type == TailDigesting {
		tail.Type = Tail
		return
	}

	nextPos := m.grid.Adjacent(m.grid.Position(m.tail), tail.To)
	next := m.grid.Index(nextPos)
	*tail = SnakeTile{}

	nt := &m.tiles[next]
	nt.Type = Tail.WithDigesting(nt.Type.IsDigesting())
	m.tail = next
}

// spawn places t on a uniformly chosen empty tile and returns its index, or
// noTile when the board is full.
func (m *Model) spawn(t TileType) int {
	m.free = m.free[:0]
	for i, tile := range m.tiles {
		if tile.Type == Empty {
			m.free = append(m.free, i)
		}
	}
	if len(m.free) == 0 {
		return noTile
	}
	i := m.free[m.rng.Intn(len(m.free))]
	m.tiles[i] = SnakeTile{Type: t}
	return i
}

func (m *Model) maybeSpawnBonus() {
	if !m.cfg.HasBonus || m.bonus != noTile || m.objectsEaten%m.cfg.BonusFrequency != 0 {
		return
	}
	m.bonus = m.spawn(BonusObject)
	if m.bonus != noTile {
		m.bonusTimeLeft = m.cfg.BonusDuration
	}
}

func (m *Model) expireBonus(delta float64) {
	if m.bonus == noTile {
		return
	}
	m.bonusTimeLeft -= delta
	if m.bonusTimeLeft > 0 {
		return
	}
	if m.tiles[m.bonus].Type == BonusObject {
		m.tiles[m.bonus] = SnakeTile{}
	}
	m.bonus = noTile
	m.bonusTimeLeft = 0
}

// Speed returns the current speed in tiles per second.
func (m *Model) Speed() float64 {
	return m.cfg.TilesPerSecond + float64(m.objectsEaten)*m.cfg.SpeedIncreasePerObject
}

// Config returns the parameters the model was created with.
func (m *Model) Config() Config { return m.cfg }

// Grid returns the cube topology.
func (m *Model) Grid() cube.Grid { return m.grid }

// Tile returns the tile at p.
func (m *Model) Tile(p cube.Position) SnakeTile { return m.tiles[m.grid.Index(p)] }

// TileAt returns the tile at dense index i.
func (m *Model) TileAt(i int) SnakeTile { return m.tiles[i] }

// PositionOf returns the position of the tile at dense index i.
func (m *Model) PositionOf(i int) cube.Position { return m.grid.Position(i) }

// Head returns the index of the head tile.
func (m *Model) Head() int { return m.head }

// PreHead returns the index of the segment behind the head.
func (m *Model) PreHead() int { return m.preHead }

// Tail returns the index of the tail tile.
func (m *Model) Tail() int { return m.tail }

// HeadPosition returns where the head is.
func (m *Model) HeadPosition() cube.Position { return m.grid.Position(m.head) }

// Heading returns the cube direction the head will move toward on the next step.
func (m *Model) Heading() cube.Direction3D {
	return cube.MapDefaultUp(m.HeadPosition().Side, m.tiles[m.head].To)
}

// Travel returns the cube direction the head was moving when it entered its
// tile. Unlike Heading it ignores a turn queued for the next step.
func (m *Model) Travel() cube.Direction3D {
	return cube.MapDefaultUp(m.HeadPosition().Side, m.tiles[m.head].From.Opposite())
}

// Progress returns how far the snake is toward the next tile, in [0, 1].
func (m *Model) Progress() float64 { return m.progress }

// Score returns the points collected so far.
func (m *Model) Score() int { return m.score }

// GameOver reports whether the snake has collided. It never resets.
func (m *Model) GameOver() bool { return m.gameOver }

// ObjectsEaten returns how many regular objects have been eaten.
func (m *Model) ObjectsEaten() int { return m.objectsEaten }

// Steps returns the number of tile steps taken.
func (m *Model) Steps() uint64 { return m.steps }

// Food returns the position of the regular object, if one is on the board.
func (m *Model) Food() (cube.Position, bool) {
	if m.food == noTile {
		return cube.Position{}, false
	}
	return m.grid.Position(m.food), true
}

// Bonus returns the position of the bonus object, if one is on the board.
func (m *Model) Bonus() (cube.Position, bool) {
	if m.bonus == noTile {
		return cube.Position{}, false
	}
	return m.grid.Position(m.bonus), true
}

// BonusTimeLeft returns the seconds until the bonus object disappears.
func (m *Model) BonusTimeLeft() float64 { return m.bonusTimeLeft }

// Segments yields the snake's tile indices from tail to head.
func (m *Model) Segments() iter.Seq2[int, SnakeTile] {
	return func(yield func(int, SnakeTile) bool) {
		i := m.tail
		for range len(m.tiles) {
			if !yield(i, m.tiles[i]) || i == m.head {
				return
			}
			i = m.grid.Index(m.grid.Adjacent(m.grid.Position(i), m.tiles[i].To))
		}
	}
}

// Length returns the number of snake segments.
func (m *Model) Length() int {
	n := 0
	for range m.Segments() {
		n++
	}
	return n
}
