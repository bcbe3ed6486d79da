// Package source binds scenario objects to the analytical field kernels.
//
// A Source owns its geometry and excitation and evaluates any of the
// B/H/M/J fields over an observer batch. Kernels work in the
// source-local frame; each source carries a position offset and
// translates observers before dispatching.
package source

import (
	"fmt"

	"github.com/san-kum/magsim/internal/field"
	"github.com/san-kum/magsim/internal/geometry"
	"github.com/san-kum/magsim/internal/magmath"
)

type Source interface {
	// Field returns one field vector per observer, in SI units.
	Field(ft field.FieldType, observers []magmath.Vec3) ([]magmath.Vec3, error)
	// Describe returns a short human-readable summary for tables and logs.
	Describe() string
}

func localize(observers []magmath.Vec3, position magmath.Vec3) []magmath.Vec3 {
	if position.IsZero() {
		return observers
	}
	local := make([]magmath.Vec3, len(observers))
	for i, obs := range observers {
		local[i] = obs.Sub(position)
	}
	return local
}

func repeatF(v float64, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func repeatV(v magmath.Vec3, n int) []magmath.Vec3 {
	s := make([]magmath.Vec3, n)
	for i := range s {
		s[i] = v
	}
	return s
}

// CircleLoop is a circular line-current loop in the z=0 plane of its
// local frame, centered at Position.
type CircleLoop struct {
	Position magmath.Vec3
	Diameter float64
	Current  float64
}

func (c *CircleLoop) Field(ft field.FieldType, observers []magmath.Vec3) ([]magmath.Vec3, error) {
	n := len(observers)
	return field.CurrentCircleField(ft, localize(observers, c.Position),
		repeatF(c.Diameter, n), repeatF(c.Current, n))
}

func (c *CircleLoop) Describe() string {
	return fmt.Sprintf("circle loop d=%g m, I=%g A at %s", c.Diameter, c.Current, fmtPos(c.Position))
}

// Polyline is a chain of straight current segments through Vertices.
type Polyline struct {
	Position magmath.Vec3
	Vertices []magmath.Vec3
	Current  float64
}

func (p *Polyline) Field(ft field.FieldType, observers []magmath.Vec3) ([]magmath.Vec3, error) {
	if len(p.Vertices) < 2 {
		return nil, fmt.Errorf("polyline needs at least 2 vertices, got %d", len(p.Vertices))
	}
	local := localize(observers, p.Position)
	n := len(observers)

	total := make([]magmath.Vec3, n)
	for s := 0; s < len(p.Vertices)-1; s++ {
		seg, err := field.CurrentPolylineField(ft, local,
			repeatV(p.Vertices[s], n), repeatV(p.Vertices[s+1], n),
			repeatF(p.Current, n))
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", s, err)
		}
		for i := range total {
			total[i] = total[i].Add(seg[i])
		}
	}
	return total, nil
}

func (p *Polyline) Describe() string {
	return fmt.Sprintf("polyline %d segments, I=%g A at %s", len(p.Vertices)-1, p.Current, fmtPos(p.Position))
}

// Dipole is a point dipole with moment in A·m².
type Dipole struct {
	Position magmath.Vec3
	Moment   magmath.Vec3
}

func (d *Dipole) Field(ft field.FieldType, observers []magmath.Vec3) ([]magmath.Vec3, error) {
	return field.DipoleField(ft, localize(observers, d.Position),
		repeatV(d.Moment, len(observers)))
}

func (d *Dipole) Describe() string {
	return fmt.Sprintf("dipole m=(%g, %g, %g) A·m² at %s",
		d.Moment.X, d.Moment.Y, d.Moment.Z, fmtPos(d.Position))
}

// SphereMagnet is a homogeneously polarized sphere.
type SphereMagnet struct {
	Position     magmath.Vec3
	Diameter     float64
	Polarization magmath.Vec3
}

func (s *SphereMagnet) Field(ft field.FieldType, observers []magmath.Vec3) ([]magmath.Vec3, error) {
	n := len(observers)
	return field.MagnetSphereField(ft, localize(observers, s.Position),
		repeatF(s.Diameter, n), repeatV(s.Polarization, n))
}

func (s *SphereMagnet) Describe() string {
	return fmt.Sprintf("sphere magnet d=%g m, J=%g T at %s",
		s.Diameter, s.Polarization.Norm(), fmtPos(s.Position))
}

// CuboidMagnet is a homogeneously polarized cuboid with axis-aligned
// edges in the local frame.
type CuboidMagnet struct {
	Position     magmath.Vec3
	Dimensions   magmath.Vec3
	Polarization magmath.Vec3
}

func (c *CuboidMagnet) Field(ft field.FieldType, observers []magmath.Vec3) ([]magmath.Vec3, error) {
	n := len(observers)
	return field.MagnetCuboidField(ft, localize(observers, c.Position),
		repeatV(c.Dimensions, n), repeatV(c.Polarization, n))
}

func (c *CuboidMagnet) Describe() string {
	return fmt.Sprintf("cuboid magnet %gx%gx%g m, J=%g T at %s",
		c.Dimensions.X, c.Dimensions.Y, c.Dimensions.Z,
		c.Polarization.Norm(), fmtPos(c.Position))
}

// CylinderMagnet is an axially polarized cylinder, axis along local z.
type CylinderMagnet struct {
	Position     magmath.Vec3
	Diameter     float64
	Height       float64
	Polarization float64 // J_z in tesla
}

func (c *CylinderMagnet) Field(ft field.FieldType, observers []magmath.Vec3) ([]magmath.Vec3, error) {
	n := len(observers)
	return field.MagnetCylinderField(ft, localize(observers, c.Position),
		repeatF(c.Diameter, n), repeatF(c.Height, n),
		repeatV(magmath.Vec3{Z: c.Polarization}, n))
}

func (c *CylinderMagnet) Describe() string {
	return fmt.Sprintf("cylinder magnet d=%g m, h=%g m, Jz=%g T at %s",
		c.Diameter, c.Height, c.Polarization, fmtPos(c.Position))
}

// TetrahedronMagnet is a homogeneously polarized tetrahedron given by
// its four local-frame vertices.
type TetrahedronMagnet struct {
	Position     magmath.Vec3
	Vertices     geometry.Tetrahedron
	Polarization magmath.Vec3
}

func (t *TetrahedronMagnet) Field(ft field.FieldType, observers []magmath.Vec3) ([]magmath.Vec3, error) {
	n := len(observers)
	tets := make([]geometry.Tetrahedron, n)
	for i := range tets {
		tets[i] = t.Vertices
	}
	return field.MagnetTetrahedronField(ft, localize(observers, t.Position),
		tets, repeatV(t.Polarization, n), geometry.InOutAuto)
}

func (t *TetrahedronMagnet) Describe() string {
	return fmt.Sprintf("tetrahedron magnet J=%g T at %s",
		t.Polarization.Norm(), fmtPos(t.Position))
}

// TriangleFacet is a single uniformly magnetized facet (an open
// surface; useful as a building block and for mesh experiments).
type TriangleFacet struct {
	Position     magmath.Vec3
	Vertices     geometry.Triangle
	Polarization magmath.Vec3
}

func (t *TriangleFacet) Field(ft field.FieldType, observers []magmath.Vec3) ([]magmath.Vec3, error) {
	n := len(observers)
	tris := make([]geometry.Triangle, n)
	for i := range tris {
		tris[i] = t.Vertices
	}
	return field.MagnetTriangleField(ft, localize(observers, t.Position),
		tris, repeatV(t.Polarization, n))
}

func (t *TriangleFacet) Describe() string {
	return fmt.Sprintf("triangle facet J=%g T at %s", t.Polarization.Norm(), fmtPos(t.Position))
}

func fmtPos(p magmath.Vec3) string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// Superpose sums the field of every source at every observer. The
// linearity of magnetostatics makes per-source evaluation exact.
func Superpose(ft field.FieldType, sources []Source, observers []magmath.Vec3) ([]magmath.Vec3, error) {
	total := make([]magmath.Vec3, len(observers))
	for si, src := range sources {
		f, err := src.Field(ft, observers)
		if err != nil {
			return nil, fmt.Errorf("source %d (%s): %w", si, src.Describe(), err)
		}
		for i := range total {
			total[i] = total[i].Add(f[i])
		}
	}
	return total, nil
}
