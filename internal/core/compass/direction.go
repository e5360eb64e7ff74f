// Package compass implements the eight-point compass used to orient bots.
//
// Directions form the cyclic group Z/8: each code step is a 45 degree turn
// counter-clockwise on screen (N, NW, W, SW, S, SE, E, NE), and adding two
// directions adds their codes modulo 8 with N as the identity.
package compass

import (
	"errors"
	"fmt"
	"strings"

	"chosenoffset.com/biobots/internal/core/geom"
)

// Direction is one of the eight compass points, stored as its 3-bit code.
type Direction uint8

const (
	N  Direction = 0b000
	NW Direction = 0b001
	W  Direction = 0b010
	SW Direction = 0b011
	S  Direction = 0b100
	SE Direction = 0b101
	E  Direction = 0b110
	NE Direction = 0b111
)

// Count is the number of compass directions.
const Count = 8

var (
	// ErrUnclassifiable is returned for displacements that are not aligned
	// to one of the eight compass sectors, including the zero vector.
	ErrUnclassifiable = errors.New("compass: displacement is not a compass direction")
	// ErrInvalidCode is returned for codes outside 0..7.
	ErrInvalidCode = errors.New("compass: direction code out of range")
)

var vectors = [Count]geom.Point[int]{
	N:  {X: 0, Y: -1},
	NW: {X: -1, Y: -1},
	W:  {X: -1, Y: 0},
	SW: {X: -1, Y: 1},
	S:  {X: 0, Y: 1},
	SE: {X: 1, Y: 1},
	E:  {X: 1, Y: 0},
	NE: {X: 1, Y: -1},
}

var names = [Count]struct{ short, long string }{
	N:  {"n", "North"},
	NW: {"nw", "North-West"},
	W:  {"w", "West"},
	SW: {"sw", "South-West"},
	S:  {"s", "South"},
	SE: {"se", "South-East"},
	E:  {"e", "East"},
	NE: {"ne", "North-East"},
}

// All returns the directions in code order.
func All() [Count]Direction {
	return [Count]Direction{N, NW, W, SW, S, SE, E, NE}
}

// FromCode converts a 3-bit code to a Direction.
func FromCode(code uint32) (Direction, error) {
	if code >= Count {
		return N, fmt.Errorf("%w: %d", ErrInvalidCode, code)
	}
	return Direction(code), nil
}

// FromVector classifies a displacement into one of the eight sectors.
//
// Only 45 degree aligned displacements classify: one component zero, or both
// components of equal magnitude. The sector is then picked by sign, so (0,-5)
// is N and (3,3) is SE, while (2,1) and (0,0) fail with ErrUnclassifiable.
func FromVector(p geom.Point[int]) (Direction, error) {
	x, y := sign(p.X), sign(p.Y)
	if x == 0 && y == 0 {
		return N, fmt.Errorf("%w: %v", ErrUnclassifiable, p)
	}
	if x != 0 && y != 0 && abs(p.X) != abs(p.Y) {
		return N, fmt.Errorf("%w: %v", ErrUnclassifiable, p)
	}
	switch {
	case x == 0 && y < 0:
		return N, nil
	case x == 0 && y > 0:
		return S, nil
	case y == 0 && x > 0:
		return E, nil
	case y == 0 && x < 0:
		return W, nil
	case x > 0 && y < 0:
		return NE, nil
	case x > 0 && y > 0:
		return SE, nil
	case x < 0 && y > 0:
		return SW, nil
	default:
		return NW, nil
	}
}

// ChangeRotation turns current by the number of 45 degree steps that delta
// represents. A delta that FromVector rejects leaves current unchanged; use
// FromVector directly to detect that case.
func ChangeRotation(current Direction, delta geom.Point[int]) Direction {
	shift, err := FromVector(delta)
	if err != nil {
		return current
	}
	return current.Add(shift)
}

// Code returns the 3-bit code.
func (d Direction) Code() uint32 {
	return uint32(d & 0b111)
}

// Add rotates d by o, adding codes modulo 8.
func (d Direction) Add(o Direction) Direction {
	return (d + o) & 0b111
}

// Opposite returns the direction rotated by 180 degrees.
func (d Direction) Opposite() Direction {
	return d.Add(S)
}

// Vector returns the unit displacement in image coordinates (+y is down).
func (d Direction) Vector() geom.Point[int] {
	return vectors[d&0b111]
}

// Valid reports whether d is one of the eight defined codes.
func (d Direction) Valid() bool {
	return d < Count
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return names[d].long
}

// Short returns the lowercase abbreviation, e.g. "nw".
func (d Direction) Short() string {
	if !d.Valid() {
		return ""
	}
	return names[d].short
}

// Parse accepts an abbreviation ("ne") or long name ("North-East"),
// case-insensitively.
func Parse(s string) (Direction, error) {
	s = strings.TrimSpace(s)
	for _, d := range All() {
		if strings.EqualFold(s, names[d].short) || strings.EqualFold(s, names[d].long) {
			return d, nil
		}
	}
	return N, fmt.Errorf("compass: unknown direction %q", s)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
