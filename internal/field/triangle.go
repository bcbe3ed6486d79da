package field

import (
	"math"

	"github.com/san-kum/magsim/internal/geometry"
	"github.com/san-kum/magsim/internal/magmath"
)

// MagnetTriangleField computes the field of uniformly magnetized
// triangular facets. A facet with polarization J acts as a magnetic
// surface charge sigma = J·n̂, with n̂ fixed by the vertex winding order.
//
// The field is assembled from the signed solid angle of the facet
// (Van Oosterom & Strackee form) and one logarithmic term per edge.
// Degenerate facets and observers on an edge or vertex contribute zero.
//
// A facet has no volume, so M and J are zero everywhere.
func MagnetTriangleField(ft FieldType, observers []magmath.Vec3, facets []geometry.Triangle, polarizations []magmath.Vec3) ([]magmath.Vec3, error) {
	if err := checkFieldType(ft); err != nil {
		return nil, err
	}
	n := len(observers)
	if err := checkLengths(n,
		batchParam{"vertices", len(facets)},
		batchParam{"polarization", len(polarizations)},
	); err != nil {
		return nil, err
	}

	out := make([]magmath.Vec3, n)
	if ft == FieldM || ft == FieldJ {
		return out, nil
	}

	for i, obs := range observers {
		b, ok := triangleB(obs, facets[i], polarizations[i])
		if !ok {
			continue
		}
		if ft == FieldH {
			b = b.Scale(1 / magmath.Mu0)
		}
		out[i] = b
	}
	return out, nil
}

// triangleB returns the B-field of one charged facet, or ok=false for a
// singular placement (zero-area facet, observer on an edge or vertex).
func triangleB(obs magmath.Vec3, tri geometry.Triangle, pol magmath.Vec3) (magmath.Vec3, bool) {
	normal := tri.Normal()
	area2 := normal.Norm()
	if area2 == 0 {
		return magmath.Vec3{}, false
	}
	nHat := normal.Scale(1 / area2)
	sigma := pol.Dot(nHat)

	// vertex-relative positions
	r0 := tri[0].Sub(obs)
	r1 := tri[1].Sub(obs)
	r2 := tri[2].Sub(obs)

	b := nHat.Scale(solidAngle(r0, r1, r2))

	edges := [3][2]magmath.Vec3{{r0, r1}, {r1, r2}, {r2, r0}}
	for _, e := range edges {
		ra := e[0].Norm()
		rb := e[1].Norm()
		edge := e[1].Sub(e[0])
		l := edge.Norm()
		if ra == 0 || rb == 0 || ra+rb-l <= 0 {
			// observer on a vertex or on the edge segment
			return magmath.Vec3{}, false
		}
		if l == 0 {
			continue
		}
		ln := math.Log((ra + rb + l) / (ra + rb - l))
		b = b.Add(edge.Scale(1 / l).Cross(nHat).Scale(ln))
	}

	return b.Scale(sigma / (4 * math.Pi)), true
}

// solidAngle returns the solid angle subtended by the triangle with
// vertex-relative positions r0,r1,r2, signed positive on the side its
// winding normal points toward.
func solidAngle(r0, r1, r2 magmath.Vec3) float64 {
	l0 := r0.Norm()
	l1 := r1.Norm()
	l2 := r2.Norm()

	num := r0.Dot(r1.Cross(r2))
	den := l0*l1*l2 + r0.Dot(r1)*l2 + r0.Dot(r2)*l1 + r1.Dot(r2)*l0

	return 2 * math.Atan2(-num, den)
}
