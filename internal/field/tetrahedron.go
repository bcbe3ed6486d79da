package field

import (
	"fmt"

	"github.com/san-kum/magsim/internal/geometry"
	"github.com/san-kum/magsim/internal/magmath"
)

// MagnetTetrahedronField computes the field of homogeneously polarized
// tetrahedra by decomposing each body into its four face facets and
// summing the facet fields (surface-charge superposition).
//
// Vertex chirality is normalized in place: left-handed vertex orderings
// are silently reordered so that all face normals point outward; either
// input convention yields identical fields.
//
// The policy parameter controls the inside-outside test used by the M/J
// short path and the interior B jump: Auto runs the barycentric test per
// instance, Inside and Outside skip it when the caller already knows the
// answer for the whole batch.
func MagnetTetrahedronField(ft FieldType, observers []magmath.Vec3, tets []geometry.Tetrahedron, polarizations []magmath.Vec3, policy geometry.InOut) ([]magmath.Vec3, error) {
	if err := checkFieldType(ft); err != nil {
		return nil, err
	}
	if policy < geometry.InOutAuto || policy > geometry.InOutOutside {
		return nil, fmt.Errorf("invalid inside/outside policy %s, must be one of ('auto', 'inside', 'outside')", policy)
	}
	n := len(observers)
	if err := checkLengths(n,
		batchParam{"vertices", len(tets)},
		batchParam{"polarization", len(polarizations)},
	); err != nil {
		return nil, err
	}

	if ft == FieldM || ft == FieldJ {
		out := make([]magmath.Vec3, n)
		inside := geometry.InsideTetrahedra(observers, tets, policy)
		for i := range out {
			if !inside[i] {
				continue
			}
			out[i] = polarizations[i]
			if ft == FieldM {
				out[i] = out[i].Scale(1 / magmath.Mu0)
			}
		}
		return out, nil
	}

	geometry.NormalizeChirality(tets)

	// four face facets per tetrahedron, wound for outward normals
	windings := [4][3]int{{0, 2, 1}, {0, 1, 3}, {1, 2, 3}, {0, 3, 2}}

	facets := make([]geometry.Triangle, 0, 4*n)
	obs4 := make([]magmath.Vec3, 0, 4*n)
	pol4 := make([]magmath.Vec3, 0, 4*n)
	for _, w := range windings {
		for i, tet := range tets {
			facets = append(facets, geometry.Triangle{tet[w[0]], tet[w[1]], tet[w[2]]})
			obs4 = append(obs4, observers[i])
			pol4 = append(pol4, polarizations[i])
		}
	}

	triField, err := MagnetTriangleField(ft, obs4, facets, pol4)
	if err != nil {
		return nil, err
	}

	// surface-sheet superposition is linear: sum the four contributions
	out := make([]magmath.Vec3, n)
	for i := range out {
		out[i] = triField[i].
			Add(triField[n+i]).
			Add(triField[2*n+i]).
			Add(triField[3*n+i])
	}

	if ft == FieldH {
		return out, nil
	}

	// B = mu0*H + J inside a uniformly polarized body
	inside := geometry.InsideTetrahedra(observers, tets, policy)
	for i := range out {
		if inside[i] {
			out[i] = out[i].Add(polarizations[i])
		}
	}
	return out, nil
}
