package field

import (
	"math"
	"testing"

	"github.com/san-kum/magsim/internal/magmath"
)

// on-axis closed form for an axially polarized cylinder
func cylinderAxisBz(jz, r0, h2, z float64) float64 {
	zp, zm := z+h2, z-h2
	return jz / 2 * (zp/math.Sqrt(zp*zp+r0*r0) - zm/math.Sqrt(zm*zm+r0*r0))
}

func TestCylinderOnAxisClosedForm(t *testing.T) {
	d, h, jz := 2.0, 2.0, 1.0
	for _, z := range []float64{0, 0.5, 2, -3.5} {
		b, err := MagnetCylinderField(FieldB,
			[]magmath.Vec3{{Z: z}}, []float64{d}, []float64{h},
			[]magmath.Vec3{{Z: jz}})
		if err != nil {
			t.Fatal(err)
		}
		want := cylinderAxisBz(jz, d/2, h/2, z)
		if math.Abs(b[0].Z-want) > 1e-12 {
			t.Errorf("Bz(0,0,%g) = %.15g, want %.15g", z, b[0].Z, want)
		}
		if b[0].X != 0 || b[0].Y != 0 {
			t.Errorf("transverse field on axis at z=%g: %+v", z, b[0])
		}
	}
}

func TestCylinderCenterValue(t *testing.T) {
	// d=h=2, J=1: Bz(center) = 1/sqrt(2)
	b, err := MagnetCylinderField(FieldB,
		[]magmath.Vec3{{}}, []float64{2}, []float64{2},
		[]magmath.Vec3{{Z: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(b[0].Z-1/math.Sqrt2) > 1e-12 {
		t.Errorf("Bz(center) = %.15g, want %.15g", b[0].Z, 1/math.Sqrt2)
	}
}

func TestCylinderHInsideRelation(t *testing.T) {
	obs := []magmath.Vec3{{X: 0.3, Y: 0.2, Z: -0.1}}
	d := []float64{1.5}
	h := []float64{0.8}
	pol := []magmath.Vec3{{Z: 0.7}}

	b, err := MagnetCylinderField(FieldB, obs, d, h, pol)
	if err != nil {
		t.Fatal(err)
	}
	hf, err := MagnetCylinderField(FieldH, obs, d, h, pol)
	if err != nil {
		t.Fatal(err)
	}
	diff := b[0].Sub(hf[0].Scale(magmath.Mu0)).Sub(pol[0]).Norm()
	if diff > 1e-12 {
		t.Errorf("B - mu0*H - J = %g inside, want 0", diff)
	}
}

func TestCylinderTransversePolarizationRejected(t *testing.T) {
	_, err := MagnetCylinderField(FieldB,
		[]magmath.Vec3{{}}, []float64{1}, []float64{1},
		[]magmath.Vec3{{X: 0.1, Z: 1}})
	if err == nil {
		t.Fatal("expected transverse polarization rejection")
	}
}

func TestCylinderEdgeRingSingular(t *testing.T) {
	// observer exactly on the top edge ring: zero by policy
	b, err := MagnetCylinderField(FieldB,
		[]magmath.Vec3{{X: 0.5, Y: 0, Z: 0.5}}, []float64{1}, []float64{1},
		[]magmath.Vec3{{Z: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if !b[0].IsValid() || !b[0].IsZero() {
		t.Errorf("field on edge ring = %+v, want zero", b[0])
	}
}

func TestCylinderDegenerate(t *testing.T) {
	for _, dh := range [][2]float64{{0, 1}, {1, 0}} {
		out, err := MagnetCylinderField(FieldB,
			[]magmath.Vec3{{X: 2, Y: 0, Z: 1}},
			[]float64{dh[0]}, []float64{dh[1]},
			[]magmath.Vec3{{Z: 1}})
		if err != nil {
			t.Fatal(err)
		}
		if !out[0].IsZero() {
			t.Errorf("degenerate cylinder d=%g h=%g: %+v, want zero", dh[0], dh[1], out[0])
		}
	}
}

func TestCylinderFarFieldDipole(t *testing.T) {
	d, h, jz := 0.3, 0.2, 0.8
	obs := magmath.Vec3{X: 3, Y: 2, Z: -4}

	b, err := MagnetCylinderField(FieldB,
		[]magmath.Vec3{obs}, []float64{d}, []float64{h},
		[]magmath.Vec3{{Z: jz}})
	if err != nil {
		t.Fatal(err)
	}
	volume := math.Pi * d * d / 4 * h
	moment := magmath.Vec3{Z: jz * volume / magmath.Mu0}
	bd, err := DipoleField(FieldB, []magmath.Vec3{obs}, []magmath.Vec3{moment})
	if err != nil {
		t.Fatal(err)
	}
	if b[0].Sub(bd[0]).Norm() > 0.01*bd[0].Norm() {
		t.Errorf("far field %+v deviates from dipole %+v", b[0], bd[0])
	}
}
