// Package cube models an N×N tile grid wrapped around the six faces of a cube.
// It provides the direction algebra that binds each face's local (e1, e2) frame
// to real cube directions, and the topology that walks tiles across face seams.
//
// Everything here is pure: no state, no allocation on the hot path, no errors.
// Inputs outside the closed enumerations are programming defects and panic.
package cube

import "fmt"

// Direction3D identifies one of the six cube faces, or equivalently one of the
// six signed global axes. East=+X, West=-X, Up=+Y, Down=-Y, South=+Z, North=-Z.
type Direction3D uint8

// Opposite pairs are adjacent in the ordering so that d^1 flips a direction.
const (
	North Direction3D = iota
	South
	East
	West
	Up
	Down
)

// Faces lists every Direction3D in declaration order.
var Faces = [6]Direction3D{North, South, East, West, Up, Down}

var direction3DNames = [6]string{"north", "south", "east", "west", "up", "down"}

// vectors holds the unit vector of each Direction3D.
var vectors = [6][3]int{
	North: {0, 0, -1},
	South: {0, 0, 1},
	East:  {1, 0, 0},
	West:  {-1, 0, 0},
	Up:    {0, 1, 0},
	Down:  {0, -1, 0},
}

// String returns the lowercase name of the direction.
func (d Direction3D) String() string {
	if int(d) < len(direction3DNames) {
		return direction3DNames[d]
	}
	return fmt.Sprintf("Direction3D(%d)", uint8(d))
}

// Valid reports whether d is one of the six faces.
func (d Direction3D) Valid() bool {
	return d <= Down
}

// Opposite returns the direction pointing the other way along the same axis.
func (d Direction3D) Opposite() Direction3D {
	mustFace(d)
	return d ^ 1
}

// Vector returns the unit integer vector of d.
func (d Direction3D) Vector() [3]int {
	mustFace(d)
	return vectors[d]
}

// Sign returns +1 for East, Up and South, and -1 for their opposites.
func (d Direction3D) Sign() int {
	v := d.Vector()
	return v[0] + v[1] + v[2]
}

// Direction2D is a direction inside a single face, relative to that face's
// local frame. The values are ordered clockwise as seen from outside the cube.
type Direction2D uint8

const (
	DirUp Direction2D = iota
	DirRight
	DirDown
	DirLeft
)

// Directions2D lists every Direction2D in clockwise order starting at DirUp.
var Directions2D = [4]Direction2D{DirUp, DirRight, DirDown, DirLeft}

var direction2DNames = [4]string{"up", "right", "down", "left"}

func (d Direction2D) String() string {
	if int(d) < len(direction2DNames) {
		return direction2DNames[d]
	}
	return fmt.Sprintf("Direction2D(%d)", uint8(d))
}

// Valid reports whether d is one of the four in-face directions.
func (d Direction2D) Valid() bool {
	return d <= DirLeft
}

// Opposite returns the direction rotated by half a turn.
func (d Direction2D) Opposite() Direction2D {
	return d.Rotate(2)
}

// Rotate turns d clockwise by the given number of quarter turns. Negative
// values turn counter-clockwise.
func (d Direction2D) Rotate(quarterTurns int) Direction2D {
	if !d.Valid() {
		panic(fmt.Sprintf("cube: invalid %v", d))
	}
	return Direction2D(((int(d)+quarterTurns)%4 + 4) % 4)
}

// step returns the signed unit change a move in d applies to its coordinate.
func (d Direction2D) step() int {
	if d == DirDown || d == DirLeft {
		return -1
	}
	return 1
}

// Coordinate names one of the two in-face axes.
type Coordinate uint8

const (
	E1 Coordinate = iota
	E2
)

func (c Coordinate) String() string {
	switch c {
	case E1:
		return "e1"
	case E2:
		return "e2"
	default:
		return fmt.Sprintf("Coordinate(%d)", uint8(c))
	}
}

// Other returns the remaining axis of the face.
func (c Coordinate) Other() Coordinate {
	return c ^ 1
}

// axisTable binds each face's local axes to the cube direction that an
// increasing coordinate moves toward. Every frame is right-handed
// (e1 × e2 = outward normal), matching the cross-shaped net:
//
//	        [up]
//	[west][south][east][north]
//	        [down]
//
// where every face is drawn with e1 to the right and e2 upward.
var axisTable = [6][2]Direction3D{
	South: {East, Up},
	East:  {North, Up},
	North: {West, Up},
	West:  {South, Up},
	Up:    {East, North},
	Down:  {East, South},
}

type axisRef struct {
	coord Coordinate
	sign  int
	ok    bool
}

// inverseAxis[face][dir] answers which local axis runs along dir on face and
// whether increasing it moves toward (+1) or away from (-1) dir.
var inverseAxis [6][6]axisRef

func init() {
	if err := validateAxisTable(); err != nil {
		panic(err)
	}
	for _, face := range Faces {
		for _, c := range []Coordinate{E1, E2} {
			d := axisTable[face][c]
			inverseAxis[face][d] = axisRef{coord: c, sign: 1, ok: true}
			inverseAxis[face][d.Opposite()] = axisRef{coord: c, sign: -1, ok: true}
		}
	}
}

// validateAxisTable checks that every face frame is orthonormal and shares
// the same handedness.
func validateAxisTable() error {
	for _, face := range Faces {
		n := vectors[face]
		a1 := vectors[axisTable[face][E1]]
		a2 := vectors[axisTable[face][E2]]
		if dot(a1, a2) != 0 || dot(a1, n) != 0 || dot(a2, n) != 0 {
			return fmt.Errorf("cube: axes of face %v are not orthogonal", face)
		}
		if cross(a1, a2) != n {
			return fmt.Errorf("cube: frame of face %v is not right-handed", face)
		}
	}
	return nil
}

func dot(a, b [3]int) int {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross(a, b [3]int) [3]int {
	return [3]int{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func mustFace(face Direction3D) {
	if !face.Valid() {
		panic(fmt.Sprintf("cube: invalid face %v", face))
	}
}

// Direction returns the cube direction toward which increasing axis points on face.
func Direction(face Direction3D, axis Coordinate) Direction3D {
	mustFace(face)
	return axisTable[face][axis&1]
}

// CoordinateSign returns +1 when increasing axis on face moves toward the
// positive end of its global axis, -1 otherwise.
func CoordinateSign(face Direction3D, axis Coordinate) int {
	return Direction(face, axis).Sign()
}

// CoordinateOf returns the local axis a move in d travels along. Left and
// right move along e1, up and down along e2, on every face.
func CoordinateOf(d Direction2D) Coordinate {
	switch d {
	case DirLeft, DirRight:
		return E1
	case DirUp, DirDown:
		return E2
	}
	panic(fmt.Sprintf("cube: invalid %v", d))
}

// AxisToward returns the local axis of face that runs along dir, and +1 if
// increasing it moves toward dir or -1 if it moves away. dir must be
// perpendicular to the face normal.
func AxisToward(face Direction3D, dir Direction3D) (Coordinate, int) {
	mustFace(face)
	mustFace(dir)
	ref := inverseAxis[face][dir]
	if !ref.ok {
		panic(fmt.Sprintf("cube: direction %v is not tangent to face %v", dir, face))
	}
	return ref.coord, ref.sign
}

// MapDefaultUp converts a local direction on face into the cube direction it
// points toward, using the face's default up (increasing e2).
func MapDefaultUp(face Direction3D, d Direction2D) Direction3D {
	var out Direction3D
	switch d {
	case DirUp:
		out = Direction(face, E2)
	case DirDown:
		out = Direction(face, E2).Opposite()
	case DirRight:
		out = Direction(face, E1)
	case DirLeft:
		out = Direction(face, E1).Opposite()
	default:
		panic(fmt.Sprintf("cube: invalid %v", d))
	}
	return out
}

// UnMapDefaultUp is the inverse of MapDefaultUp.
func UnMapDefaultUp(face Direction3D, dir Direction3D) Direction2D {
	coord, sign := AxisToward(face, dir)
	switch {
	case coord == E1 && sign > 0:
		return DirRight
	case coord == E1:
		return DirLeft
	case sign > 0:
		return DirUp
	default:
		return DirDown
	}
}

// upTurns returns how many clockwise quarter turns separate the face's default
// up from the given camera up.
func upTurns(face Direction3D, up Direction3D) int {
	return int(UnMapDefaultUp(face, up))
}

// Map converts a direction given relative to the camera's current up on face
// into an absolute cube direction.
func Map(face, up Direction3D, d Direction2D) Direction3D {
	return MapDefaultUp(face, d.Rotate(upTurns(face, up)))
}

// UnMap converts a cube direction tangent to face into a direction relative
// to the camera's current up.
func UnMap(face, up Direction3D, dir Direction3D) Direction2D {
	return UnMapDefaultUp(face, dir).Rotate(-upTurns(face, up))
}

// Tangent reports whether dir lies in the plane of face.
func Tangent(face, dir Direction3D) bool {
	mustFace(face)
	mustFace(dir)
	return inverseAxis[face][dir].ok
}
