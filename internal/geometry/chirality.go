package geometry

import "github.com/san-kum/magsim/internal/magmath"

// Triangle is a facet given by three vertices; the winding order defines
// the normal via the right-hand rule.
type Triangle [3]magmath.Vec3

// Normal returns the (unnormalized) facet normal (v1-v0)×(v2-v0). Its
// length is twice the facet area, zero for degenerate facets.
func (t Triangle) Normal() magmath.Vec3 {
	return t[1].Sub(t[0]).Cross(t[2].Sub(t[0]))
}

// Tetrahedron is a quadruple of vertices in source-local coordinates.
type Tetrahedron [4]magmath.Vec3

// SignedVolume returns det(p1-p0, p2-p0, p3-p0), six times the signed
// tetrahedron volume. Positive for right-handed vertex order.
func (t Tetrahedron) SignedVolume() float64 {
	e1 := t[1].Sub(t[0])
	e2 := t[2].Sub(t[0])
	e3 := t[3].Sub(t[0])
	return magmath.Mat3FromCols(e1, e2, e3).Det()
}

// NormalizeChirality swaps vertices 2 and 3 of every left-handed
// tetrahedron in place, so that the edge vectors from vertex 0 form a
// right-handed system. Face decomposition relies on this to obtain
// outward normals; either input ordering is accepted.
func NormalizeChirality(tets []Tetrahedron) {
	for i := range tets {
		if tets[i].SignedVolume() < 0 {
			tets[i][2], tets[i][3] = tets[i][3], tets[i][2]
		}
	}
}
