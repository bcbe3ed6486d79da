package magmath

import (
	"math"
	"testing"
)

func TestCartToCylRoundTrip(t *testing.T) {
	points := []Vec3{
		{1, 0, 0},
		{0, 1, 2},
		{-1, -1, 0.5},
		{3e-7, -2e5, 9},
	}

	for _, p := range points {
		c := CartToCyl(p)
		back := CylToCart(c)
		if back.Sub(p).Norm() > 1e-12*math.Max(1, p.Norm()) {
			t.Errorf("round trip %v -> %v", p, back)
		}
		if c.R < 0 {
			t.Errorf("negative radius for %v", p)
		}
	}
}

func TestCartToCylOrigin(t *testing.T) {
	c := CartToCyl(Vec3{0, 0, 3})
	if c.R != 0 || c.Phi != 0 || c.Z != 3 {
		t.Errorf("origin convention violated: %+v", c)
	}
}

func TestCylFieldToCart(t *testing.T) {
	bx, by := CylFieldToCart(math.Pi/2, 2.0)
	if math.Abs(bx) > 1e-15 || math.Abs(by-2.0) > 1e-15 {
		t.Errorf("got (%g, %g), want (0, 2)", bx, by)
	}
}

func TestMat3Inverse(t *testing.T) {
	m := Mat3{
		{2, 0, 1},
		{1, 1, 0},
		{0, 3, 1},
	}
	inv, ok := m.Inverse()
	if !ok {
		t.Fatal("matrix reported singular")
	}

	// m * inv applied to basis vectors must give back the basis
	for _, e := range []Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} {
		got := m.MulVec(inv.MulVec(e))
		if got.Sub(e).Norm() > 1e-12 {
			t.Errorf("m*inv*%v = %v", e, got)
		}
	}
}

func TestMat3SingularInverse(t *testing.T) {
	m := Mat3FromCols(Vec3{1, 2, 3}, Vec3{2, 4, 6}, Vec3{0, 1, 0})
	if _, ok := m.Inverse(); ok {
		t.Error("expected singular matrix to report !ok")
	}
}

func TestVec3Cross(t *testing.T) {
	got := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	if got != (Vec3{0, 0, 1}) {
		t.Errorf("x cross y = %v", got)
	}
}
