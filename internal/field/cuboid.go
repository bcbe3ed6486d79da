package field

import (
	"math"

	"github.com/san-kum/magsim/internal/geometry"
	"github.com/san-kum/magsim/internal/magmath"
)

// MagnetCuboidField computes the field of homogeneously polarized
// cuboids with side lengths (a,b,c), centered at the origin, edges along
// the coordinate axes.
//
// The closed form is the classic eight-corner sum: one arctangent term
// per corner for the polarization-parallel component and one logarithmic
// term per corner for the transverse components. The atan2 branch makes
// the sum produce B directly, interior jump included.
//
// Observers exactly on an edge or corner line are singular and resolve
// to a zero vector; zero-volume cuboids contribute nothing.
func MagnetCuboidField(ft FieldType, observers []magmath.Vec3, dimensions, polarizations []magmath.Vec3) ([]magmath.Vec3, error) {
	if err := checkFieldType(ft); err != nil {
		return nil, err
	}
	n := len(observers)
	if err := checkLengths(n,
		batchParam{"dimension", len(dimensions)},
		batchParam{"polarization", len(polarizations)},
	); err != nil {
		return nil, err
	}

	out := make([]magmath.Vec3, n)
	for i, obs := range observers {
		a := math.Abs(dimensions[i].X)
		b := math.Abs(dimensions[i].Y)
		c := math.Abs(dimensions[i].Z)
		pol := polarizations[i]

		if a == 0 || b == 0 || c == 0 {
			continue
		}
		inside := geometry.InsideCuboid(obs, a, b, c)

		switch ft {
		case FieldM, FieldJ:
			if inside {
				out[i] = pol
				if ft == FieldM {
					out[i] = out[i].Scale(1 / magmath.Mu0)
				}
			}
		default:
			bf := cuboidB(obs, a/2, b/2, c/2, pol)
			if !bf.IsValid() {
				// on an edge or corner line
				continue
			}
			if ft == FieldH {
				bf = bf.Scale(1 / magmath.Mu0)
				if inside {
					bf = bf.Sub(pol.Scale(1 / magmath.Mu0))
				}
			}
			out[i] = bf
		}
	}
	return out, nil
}

func cuboidB(obs magmath.Vec3, a, b, c float64, pol magmath.Vec3) magmath.Vec3 {
	// corner-relative coordinates; index 0 is the negative corner
	xs := [2]float64{obs.X + a, obs.X - a}
	ys := [2]float64{obs.Y + b, obs.Y - b}
	zs := [2]float64{obs.Z + c, obs.Z - c}

	var bx, by, bz float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x, y, z := xs[i], ys[j], zs[k]
				r := math.Sqrt(x*x + y*y + z*z)

				s := 1.0
				if (i+j+k)%2 == 1 {
					s = -1
				}

				lnX := lnCorner(x, r, y*y+z*z)
				lnY := lnCorner(y, r, z*z+x*x)
				lnZ := lnCorner(z, r, x*x+y*y)

				bx += s * (pol.X*-math.Atan2(y*z, x*r) + pol.Y*lnZ + pol.Z*lnY)
				by += s * (pol.X*lnZ + pol.Y*-math.Atan2(z*x, y*r) + pol.Z*lnX)
				bz += s * (pol.X*lnY + pol.Y*lnX + pol.Z*-math.Atan2(x*y, z*r))
			}
		}
	}

	return magmath.Vec3{X: bx, Y: by, Z: bz}.Scale(1 / (4 * math.Pi))
}

// lnCorner evaluates log(t+r) with the cancellation-free identity
// t+r = w2/(r-t) for t<0, where w2 is the squared distance in the plane
// perpendicular to t. Exactly on an edge line (w2=0, t<0) the log
// diverges; the resulting non-finite field is masked by the caller.
func lnCorner(t, r, w2 float64) float64 {
	if t >= 0 {
		return math.Log(t + r)
	}
	if w2 == 0 {
		return math.Inf(-1)
	}
	return math.Log(w2/(r-t)) // == log(t+r)
}
