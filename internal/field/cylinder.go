package field

import (
	"fmt"
	"math"

	"github.com/san-kum/magsim/internal/geometry"
	"github.com/san-kum/magsim/internal/magmath"
	"github.com/san-kum/magsim/internal/special"
)

// MagnetCylinderField computes the field of axially polarized cylinders
// with the given diameters and heights, centered at the origin, axis
// along z.
//
// The solution is the exact Derby/Olbert formulation via the Bulirsch
// cel algorithm, evaluated in loop-radius units. Only the axial
// polarization component is supported; a transverse component is an
// input-contract error (the Caciagli diametral solution is outside this
// revision, see DESIGN.md).
//
// Observers exactly on a top or bottom edge ring are singular and
// resolve to a zero vector; zero-size cylinders contribute nothing.
func MagnetCylinderField(ft FieldType, observers []magmath.Vec3, diameters, heights []float64, polarizations []magmath.Vec3) ([]magmath.Vec3, error) {
	if err := checkFieldType(ft); err != nil {
		return nil, err
	}
	n := len(observers)
	if err := checkLengths(n,
		batchParam{"diameter", len(diameters)},
		batchParam{"height", len(heights)},
		batchParam{"polarization", len(polarizations)},
	); err != nil {
		return nil, err
	}
	for i, pol := range polarizations {
		if pol.X != 0 || pol.Y != 0 {
			return nil, fmt.Errorf("cylinder polarization must be axial, instance %d has transverse components (%g, %g)", i, pol.X, pol.Y)
		}
	}

	out := make([]magmath.Vec3, n)
	for i, obs := range observers {
		r0 := math.Abs(diameters[i] / 2)
		h2 := math.Abs(heights[i] / 2)
		jz := polarizations[i].Z

		if r0 == 0 || h2 == 0 {
			continue
		}
		inside := geometry.InsideCylinder(obs, 2*r0, 2*h2)

		if ft == FieldM || ft == FieldJ {
			if inside {
				out[i] = magmath.Vec3{Z: jz}
				if ft == FieldM {
					out[i] = out[i].Scale(1 / magmath.Mu0)
				}
			}
			continue
		}

		cyl := magmath.CartToCyl(obs)
		br, bz, ok := cylinderAxialB(cyl.R/r0, cyl.Z/r0, h2/r0)
		if !ok {
			// on a top/bottom edge ring
			continue
		}

		bx, by := magmath.CylFieldToCart(cyl.Phi, br*jz)
		b := magmath.Vec3{X: bx, Y: by, Z: bz * jz}
		if ft == FieldH {
			b = b.Scale(1 / magmath.Mu0)
			if inside {
				b = b.Sub(magmath.Vec3{Z: jz / magmath.Mu0})
			}
		}
		out[i] = b
	}
	return out, nil
}

// cylinderAxialB returns the (Br, Bz) field of a unit-radius,
// unit-polarization cylinder with half-height z0, per Derby & Olbert
// (2010). Inputs are already normalized by the cylinder radius.
func cylinderAxialB(r, z, z0 float64) (br, bz float64, ok bool) {
	zp := z + z0
	zm := z - z0

	sp := math.Sqrt(zp*zp + (r+1)*(r+1))
	sm := math.Sqrt(zm*zm + (r+1)*(r+1))

	kp2 := (zp*zp + (r-1)*(r-1)) / (zp*zp + (r+1)*(r+1))
	km2 := (zm*zm + (r-1)*(r-1)) / (zm*zm + (r+1)*(r+1))
	if kp2 == 0 || km2 == 0 {
		// observer on an edge ring, field diverges
		return 0, 0, false
	}
	kp := math.Sqrt(kp2)
	km := math.Sqrt(km2)

	gamma := (1 - r) / (1 + r)

	br = (special.Cel(kp, 1, 1, -1)/sp - special.Cel(km, 1, 1, -1)/sm) / math.Pi
	bz = (special.Cel(kp, gamma*gamma, 1, gamma)*zp/sp -
		special.Cel(km, gamma*gamma, 1, gamma)*zm/sm) / (math.Pi * (1 + r))
	return br, bz, true
}
