package cubesnake

import (
	"fmt"

	"github.com/vovakirdan/cubesnake/internal/cube"
)

// TileType is the state of one grid cell.
type TileType uint8

// Each snake segment type is directly followed by its digesting variant.
const (
	Empty TileType = iota
	Head
	HeadDigesting
	PreHead
	PreHeadDigesting
	Body
	BodyDigesting
	Tail
	TailDigesting
	Object
	BonusObject
)

var tileTypeNames = [...]string{
	Empty:            "empty",
	Head:             "head",
	HeadDigesting:    "head_digesting",
	PreHead:          "pre_head",
	PreHeadDigesting: "pre_head_digesting",
	Body:             "body",
	BodyDigesting:    "body_digesting",
	Tail:             "tail",
	TailDigesting:    "tail_digesting",
	Object:           "object",
	BonusObject:      "bonus_object",
}

func (t TileType) String() string {
	if int(t) < len(tileTypeNames) {
		return tileTypeNames[t]
	}
	return fmt.Sprintf("TileType(%d)", uint8(t))
}

// IsSnake reports whether t is any snake segment.
func (t TileType) IsSnake() bool {
	return t >= Head && t <= TailDigesting
}

// IsFood reports whether t can be eaten.
func (t TileType) IsFood() bool {
	return t == Object || t == BonusObject
}

// IsDigesting reports whether t is the digesting variant of a segment.
func (t TileType) IsDigesting() bool {
	return t.IsSnake() && (t-Head)%2 == 1
}

// Settled returns the non-digesting variant of a segment type.
func (t TileType) Settled() TileType {
	if t.IsDigesting() {
		return t - 1
	}
	return t
}

// WithDigesting returns the segment type t with its digesting flag set to d.
func (t TileType) WithDigesting(d bool) TileType {
	base := t.Settled()
	if d && base.IsSnake() {
		return base + 1
	}
	return base
}

// SnakeTile is the per-cell state. From and To are the local directions the
// snake enters and leaves the cell through; From points back toward the tail.
type SnakeTile struct {
	Type TileType
	From cube.Direction2D
	To   cube.Direction2D
}
