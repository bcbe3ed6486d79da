package geometry

import (
	"fmt"

	"github.com/san-kum/magsim/internal/magmath"
)

// InOut tells a kernel whether observers need a per-instance
// inside-outside test, or whether the caller already knows the answer
// for the whole batch.
type InOut int

const (
	InOutAuto InOut = iota
	InOutInside
	InOutOutside
)

func (io InOut) String() string {
	switch io {
	case InOutAuto:
		return "auto"
	case InOutInside:
		return "inside"
	case InOutOutside:
		return "outside"
	}
	return fmt.Sprintf("InOut(%d)", int(io))
}

// ParseInOut maps the scenario-facing policy strings onto the enum.
// Unrecognized values are rejected rather than silently treated as auto.
func ParseInOut(s string) (InOut, error) {
	switch s {
	case "", "auto":
		return InOutAuto, nil
	case "inside":
		return InOutInside, nil
	case "outside":
		return InOutOutside, nil
	}
	return 0, fmt.Errorf("invalid inside/outside policy %q, must be one of ('auto', 'inside', 'outside')", s)
}

func constMask(n int, v bool) []bool {
	mask := make([]bool, n)
	if v {
		for i := range mask {
			mask[i] = true
		}
	}
	return mask
}

// InsideTetrahedra reports for every co-indexed point/tetrahedron pair
// whether the point lies in the closed tetrahedron. Under the Inside and
// Outside policies the constant mask is returned without solving
// anything.
//
// The test solves the barycentric system: invert the 3x3 edge matrix and
// require all coordinates in [0,1] with sum at most 1. Degenerate
// (zero-volume) tetrahedra contain nothing.
func InsideTetrahedra(points []magmath.Vec3, tets []Tetrahedron, policy InOut) []bool {
	if policy != InOutAuto {
		return constMask(len(points), policy == InOutInside)
	}

	mask := make([]bool, len(points))
	for i, p := range points {
		t := tets[i]
		m := magmath.Mat3FromCols(t[1].Sub(t[0]), t[2].Sub(t[0]), t[3].Sub(t[0]))
		inv, ok := m.Inverse()
		if !ok {
			continue
		}
		b := inv.MulVec(p.Sub(t[0]))
		mask[i] = b.X >= 0 && b.Y >= 0 && b.Z >= 0 &&
			b.X <= 1 && b.Y <= 1 && b.Z <= 1 &&
			b.X+b.Y+b.Z <= 1
	}
	return mask
}

// InsideCuboid reports whether p lies in the closed axis-aligned cuboid
// with side lengths a,b,c centered at the origin.
func InsideCuboid(p magmath.Vec3, a, b, c float64) bool {
	return abs(p.X) <= a/2 && abs(p.Y) <= b/2 && abs(p.Z) <= c/2
}

// InsideCylinder reports whether p lies in the closed cylinder with
// diameter d and height h centered at the origin, axis along z.
func InsideCylinder(p magmath.Vec3, d, h float64) bool {
	r := magmath.CartToCyl(p).R
	return r <= d/2 && abs(p.Z) <= h/2
}

// InsideSphere reports whether p lies in the closed sphere with
// diameter d centered at the origin.
func InsideSphere(p magmath.Vec3, d float64) bool {
	return p.Norm() <= d/2
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
