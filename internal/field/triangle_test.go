package field

import (
	"math"
	"testing"

	"github.com/san-kum/magsim/internal/geometry"
	"github.com/san-kum/magsim/internal/magmath"
)

func TestTriangleNearPlaneLimit(t *testing.T) {
	// close above a large charged facet the normal field approaches
	// sigma/2 on the normal side, -sigma/2 below
	big := geometry.Triangle{
		{X: -50, Y: -50, Z: 0},
		{X: 50, Y: -50, Z: 0},
		{X: 0, Y: 80, Z: 0},
	}
	pol := magmath.Vec3{Z: 1} // sigma = J·n = 1

	b, err := MagnetTriangleField(FieldB,
		[]magmath.Vec3{{X: 0, Y: 0, Z: 1e-4}, {X: 0, Y: 0, Z: -1e-4}},
		[]geometry.Triangle{big, big},
		[]magmath.Vec3{pol, pol})
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(b[0].Z-0.5) > 1e-3 {
		t.Errorf("Bz above sheet = %g, want ~0.5", b[0].Z)
	}
	if math.Abs(b[1].Z+0.5) > 1e-3 {
		t.Errorf("Bz below sheet = %g, want ~-0.5", b[1].Z)
	}
}

func TestTriangleDegenerateFacet(t *testing.T) {
	flat := geometry.Triangle{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 1},
		{X: 2, Y: 2, Z: 2}, // collinear
	}
	b, err := MagnetTriangleField(FieldB,
		[]magmath.Vec3{{X: 0.3, Y: 0.1, Z: 4}},
		[]geometry.Triangle{flat},
		[]magmath.Vec3{{Z: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if !b[0].IsZero() {
		t.Errorf("degenerate facet field = %+v, want zero", b[0])
	}
}

func TestTriangleObserverOnEdge(t *testing.T) {
	tri := geometry.Triangle{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	// midpoint of the first edge and a vertex: zero by policy
	for _, obs := range []magmath.Vec3{{X: 0.5, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 0}} {
		b, err := MagnetTriangleField(FieldB,
			[]magmath.Vec3{obs}, []geometry.Triangle{tri}, []magmath.Vec3{{Z: 1}})
		if err != nil {
			t.Fatal(err)
		}
		if !b[0].IsValid() || !b[0].IsZero() {
			t.Errorf("field at %+v = %+v, want zero", obs, b[0])
		}
	}
}

func TestTriangleNormalOnlyCharge(t *testing.T) {
	// polarization tangential to the facet carries no surface charge
	tri := geometry.Triangle{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	b, err := MagnetTriangleField(FieldB,
		[]magmath.Vec3{{X: 0.2, Y: 0.2, Z: 0.7}},
		[]geometry.Triangle{tri},
		[]magmath.Vec3{{X: 1, Y: -2, Z: 0}})
	if err != nil {
		t.Fatal(err)
	}
	if !b[0].IsZero() {
		t.Errorf("tangentially polarized facet field = %+v, want zero", b[0])
	}
}

func TestTriangleWindingFlipsSign(t *testing.T) {
	tri := geometry.Triangle{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	flipped := geometry.Triangle{tri[0], tri[2], tri[1]}
	obs := []magmath.Vec3{{X: 0.1, Y: 0.3, Z: 0.5}}
	pol := []magmath.Vec3{{Z: 0.8}}

	a, err := MagnetTriangleField(FieldB, obs, []geometry.Triangle{tri}, pol)
	if err != nil {
		t.Fatal(err)
	}
	b, err := MagnetTriangleField(FieldB, obs, []geometry.Triangle{flipped}, pol)
	if err != nil {
		t.Fatal(err)
	}
	if a[0].Add(b[0]).Norm() > 1e-12 {
		t.Errorf("winding flip should negate the field: %+v vs %+v", a[0], b[0])
	}
}
