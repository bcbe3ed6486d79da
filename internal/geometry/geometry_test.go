package geometry

import (
	"testing"

	"github.com/san-kum/magsim/internal/magmath"
)

var unitTet = Tetrahedron{
	{X: 0, Y: 0, Z: 0},
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: 0, Z: 1},
}

func TestNormalizeChirality(t *testing.T) {
	if unitTet.SignedVolume() <= 0 {
		t.Fatal("reference tetrahedron must be right-handed")
	}

	left := unitTet
	left[2], left[3] = left[3], left[2]
	if left.SignedVolume() >= 0 {
		t.Fatal("swapped tetrahedron must be left-handed")
	}

	tets := []Tetrahedron{unitTet, left}
	NormalizeChirality(tets)
	for i, tet := range tets {
		if tet.SignedVolume() <= 0 {
			t.Errorf("tetrahedron %d still left-handed after normalization", i)
		}
	}
	if tets[1] != unitTet {
		t.Error("normalization should restore the right-handed ordering")
	}
}

func TestInsideTetrahedra(t *testing.T) {
	points := []magmath.Vec3{
		{X: 0.1, Y: 0.1, Z: 0.1}, // inside
		{X: 1, Y: 1, Z: 1},       // outside
		{X: 0, Y: 0, Z: 0},       // vertex, closed-body convention
		{X: 0.5, Y: 0.5, Z: 0},   // face point
	}
	tets := []Tetrahedron{unitTet, unitTet, unitTet, unitTet}

	want := []bool{true, false, true, true}
	got := InsideTetrahedra(points, tets, InOutAuto)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: inside=%v, want %v", i, got[i], want[i])
		}
	}
}

func TestInsideTetrahedraForcedPolicies(t *testing.T) {
	points := []magmath.Vec3{{X: 5, Y: 5, Z: 5}, {X: 0.1, Y: 0.1, Z: 0.1}}
	tets := []Tetrahedron{unitTet, unitTet}

	for _, in := range InsideTetrahedra(points, tets, InOutInside) {
		if !in {
			t.Error("Inside policy must mark every observer interior")
		}
	}
	for _, in := range InsideTetrahedra(points, tets, InOutOutside) {
		if in {
			t.Error("Outside policy must mark every observer exterior")
		}
	}
}

func TestInsideDegenerateTetrahedron(t *testing.T) {
	flat := Tetrahedron{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 1, Y: 1, Z: 0}, // coplanar
	}
	got := InsideTetrahedra([]magmath.Vec3{{X: 0.2, Y: 0.2, Z: 0}}, []Tetrahedron{flat}, InOutAuto)
	if got[0] {
		t.Error("zero-volume tetrahedron must contain nothing")
	}
}

func TestParseInOut(t *testing.T) {
	for s, want := range map[string]InOut{"": InOutAuto, "auto": InOutAuto, "inside": InOutInside, "outside": InOutOutside} {
		got, err := ParseInOut(s)
		if err != nil || got != want {
			t.Errorf("ParseInOut(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := ParseInOut("maybe"); err == nil {
		t.Error("unrecognized policy must be rejected")
	}
}

func TestInsideBodies(t *testing.T) {
	if !InsideCuboid(magmath.Vec3{X: 0.5, Y: 0, Z: 0}, 1, 1, 1) {
		t.Error("face point should count as inside the closed cuboid")
	}
	if InsideCuboid(magmath.Vec3{X: 0.51, Y: 0, Z: 0}, 1, 1, 1) {
		t.Error("point beyond the face is outside")
	}
	if !InsideCylinder(magmath.Vec3{X: 0.4, Y: 0, Z: 0.4}, 1, 1) {
		t.Error("interior cylinder point misclassified")
	}
	if InsideCylinder(magmath.Vec3{X: 0, Y: 0, Z: 0.6}, 1, 1) {
		t.Error("point above the cylinder is outside")
	}
	if !InsideSphere(magmath.Vec3{X: 0, Y: 0.5, Z: 0}, 1) {
		t.Error("surface point should count as inside the closed sphere")
	}
}
