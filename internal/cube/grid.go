package cube

import (
	"fmt"
	"iter"
)

// Position addresses one tile: the face it lies on and its local coordinates.
// Each physical tile has exactly one Position; two Positions name the same
// tile iff they are equal.
type Position struct {
	Side Direction3D
	E1   int16
	E2   int16
}

// Coord returns the value of the given local coordinate.
func (p Position) Coord(c Coordinate) int {
	if c == E1 {
		return int(p.E1)
	}
	return int(p.E2)
}

// with returns p with coordinate c replaced by v.
func (p Position) with(c Coordinate, v int) Position {
	if c == E1 {
		p.E1 = int16(v)
	} else {
		p.E2 = int16(v)
	}
	return p
}

func (p Position) String() string {
	return fmt.Sprintf("%v(%d,%d)", p.Side, p.E1, p.E2)
}

// Grid is the set of tiles on a cube whose faces are size×size tiles.
type Grid struct {
	size int
}

// MaxSize bounds the face width so coordinates fit in int16.
const MaxSize = 1 << 14

// NewGrid returns a grid with size×size tiles per face.
func NewGrid(size int) Grid {
	if size < 1 || size > MaxSize {
		panic(fmt.Sprintf("cube: grid size %d out of range", size))
	}
	return Grid{size: size}
}

// Size returns the number of tiles along one face edge.
func (g Grid) Size() int {
	return g.size
}

// Len returns the total number of tiles on all six faces.
func (g Grid) Len() int {
	return 6 * g.size * g.size
}

// Contains reports whether p is a valid tile of g.
func (g Grid) Contains(p Position) bool {
	return p.Side.Valid() &&
		p.E1 >= 0 && int(p.E1) < g.size &&
		p.E2 >= 0 && int(p.E2) < g.size
}

// Index returns the dense index of p in [0, Len()).
func (g Grid) Index(p Position) int {
	g.mustContain(p)
	return (int(p.Side)*g.size+int(p.E2))*g.size + int(p.E1)
}

// Position returns the tile at dense index i.
func (g Grid) Position(i int) Position {
	if i < 0 || i >= g.Len() {
		panic(fmt.Sprintf("cube: tile index %d out of range", i))
	}
	perFace := g.size * g.size
	rem := i % perFace
	return Position{
		Side: Direction3D(i / perFace),
		E1:   int16(rem % g.size),
		E2:   int16(rem / g.size),
	}
}

// All yields every tile in index order.
func (g Grid) All() iter.Seq2[int, Position] {
	return func(yield func(int, Position) bool) {
		for i := range g.Len() {
			if !yield(i, g.Position(i)) {
				return
			}
		}
	}
}

func (g Grid) mustContain(p Position) {
	if !g.Contains(p) {
		panic(fmt.Sprintf("cube: position %v outside %d×%d grid", p, g.size, g.size))
	}
}

// Adjacent returns the tile one step from p in local direction d, crossing
// onto the neighbouring face when the step leaves p's face.
func (g Grid) Adjacent(p Position, d Direction2D) Position {
	next, _ := g.Step(p, d)
	return next
}

// Step is Adjacent that also returns the direction of travel expressed in the
// destination tile's frame. Inside a face that is d itself; across a seam it
// is the direction leading away from the face just left.
func (g Grid) Step(p Position, d Direction2D) (Position, Direction2D) {
	g.mustContain(p)

	coord := CoordinateOf(d)
	v := p.Coord(coord) + d.step()
	if v >= 0 && v < g.size {
		return p.with(coord, v), d
	}

	toSide := MapDefaultUp(p.Side, d)
	newDir := p.Side.Opposite()

	// Entry axis runs perpendicular to the shared edge. Its value is the edge
	// that touches the face we came from.
	toDirCoord, sign := AxisToward(toSide, newDir)
	entry := g.size - 1
	if sign > 0 {
		entry = 0
	}

	// The remaining axes of both faces run parallel to the shared edge. They
	// agree on orientation iff they increase along the same global direction.
	fromOther := coord.Other()
	toOther := toDirCoord.Other()
	along := p.Coord(fromOther)
	if CoordinateSign(p.Side, fromOther) != CoordinateSign(toSide, toOther) {
		along = g.size - 1 - along
	}

	next := Position{Side: toSide}.with(toDirCoord, entry).with(toOther, along)
	return next, UnMapDefaultUp(toSide, newDir)
}

// DirectionTo returns the local direction on p's face that leads to the
// neighbouring tile q. ok is false when q is not adjacent to p.
func (g Grid) DirectionTo(p, q Position) (d Direction2D, ok bool) {
	for _, d := range Directions2D {
		if g.Adjacent(p, d) == q {
			return d, true
		}
	}
	return 0, false
}
