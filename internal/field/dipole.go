package field

import (
	"math"

	"github.com/san-kum/magsim/internal/magmath"
)

// DipoleField computes the field of point dipoles at the origin with
// the given magnetic moments (A·m²).
//
// An observer exactly at the dipole position is a singular point and
// resolves to a zero vector by policy; a point has no volume, so M and
// J are zero everywhere.
func DipoleField(ft FieldType, observers []magmath.Vec3, moments []magmath.Vec3) ([]magmath.Vec3, error) {
	if err := checkFieldType(ft); err != nil {
		return nil, err
	}
	n := len(observers)
	if err := checkLengths(n, batchParam{"moment", len(moments)}); err != nil {
		return nil, err
	}

	out := make([]magmath.Vec3, n)
	if ft == FieldM || ft == FieldJ {
		return out, nil
	}

	for i, obs := range observers {
		r := obs.Norm()
		if r == 0 {
			continue
		}
		rHat := obs.Scale(1 / r)
		m := moments[i]

		b := rHat.Scale(3 * m.Dot(rHat)).Sub(m).
			Scale(magmath.Mu0 / (4 * math.Pi * r * r * r))
		if ft == FieldH {
			b = b.Scale(1 / magmath.Mu0)
		}
		out[i] = b
	}
	return out, nil
}
