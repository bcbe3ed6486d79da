package field

import (
	"math"

	"github.com/san-kum/magsim/internal/geometry"
	"github.com/san-kum/magsim/internal/magmath"
)

// MagnetSphereField computes the field of homogeneously polarized
// spheres centered at the origin. The interior field is uniform,
// B = (2/3)·J; the exterior field is that of the equivalent point
// dipole. Zero-diameter spheres contribute nothing.
func MagnetSphereField(ft FieldType, observers []magmath.Vec3, diameters []float64, polarizations []magmath.Vec3) ([]magmath.Vec3, error) {
	if err := checkFieldType(ft); err != nil {
		return nil, err
	}
	n := len(observers)
	if err := checkLengths(n,
		batchParam{"diameter", len(diameters)},
		batchParam{"polarization", len(polarizations)},
	); err != nil {
		return nil, err
	}

	out := make([]magmath.Vec3, n)
	for i, obs := range observers {
		radius := math.Abs(diameters[i] / 2)
		pol := polarizations[i]
		if radius == 0 {
			continue
		}
		inside := geometry.InsideSphere(obs, 2*radius)

		switch ft {
		case FieldM, FieldJ:
			if inside {
				out[i] = pol
				if ft == FieldM {
					out[i] = out[i].Scale(1 / magmath.Mu0)
				}
			}
		default:
			var b magmath.Vec3
			if inside {
				b = pol.Scale(2.0 / 3.0)
			} else {
				r := obs.Norm()
				rHat := obs.Scale(1 / r)
				// equivalent dipole: mu0*m/(4pi) = J*R^3/3
				b = rHat.Scale(3 * pol.Dot(rHat)).Sub(pol).
					Scale(radius * radius * radius / (3 * r * r * r))
			}
			if ft == FieldH {
				b = b.Scale(1 / magmath.Mu0)
				if inside {
					b = b.Sub(pol.Scale(1 / magmath.Mu0))
				}
			}
			out[i] = b
		}
	}
	return out, nil
}
