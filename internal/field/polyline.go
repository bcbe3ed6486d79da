package field

import (
	"math"

	"github.com/san-kum/magsim/internal/magmath"
)

// CurrentPolylineField computes the field of straight finite current
// segments running from starts[i] to ends[i], carrying currents[i]
// amperes.
//
// Zero-length segments and observers exactly on the carrying line
// (including the segment's extension) contribute zero; a line current
// carries no magnetization.
func CurrentPolylineField(ft FieldType, observers, starts, ends []magmath.Vec3, currents []float64) ([]magmath.Vec3, error) {
	if err := checkFieldType(ft); err != nil {
		return nil, err
	}
	n := len(observers)
	if err := checkLengths(n,
		batchParam{"segment_start", len(starts)},
		batchParam{"segment_end", len(ends)},
		batchParam{"current", len(currents)},
	); err != nil {
		return nil, err
	}

	out := make([]magmath.Vec3, n)
	if ft == FieldM || ft == FieldJ {
		return out, nil
	}

	for i, obs := range observers {
		a := ends[i].Sub(starts[i])
		b := obs.Sub(starts[i])
		c := obs.Sub(ends[i])

		cr := a.Cross(b)
		cr2 := cr.Dot(cr)
		na := a.Norm()
		nb := b.Norm()
		nc := c.Norm()
		if cr2 == 0 || na == 0 || nb == 0 || nc == 0 {
			// degenerate segment or observer on the carrying line
			continue
		}

		// Biot-Savart for a finite segment: B = mu0*I/(4*pi*d) *
		// (cos(theta1)-cos(theta2)) along the circulating direction,
		// with d = |a x b|/|a| the distance to the line.
		scale := magmath.Mu0 * currents[i] / (4 * math.Pi) *
			na * (a.Dot(b)/(na*nb) - a.Dot(c)/(na*nc)) / cr2
		bf := cr.Scale(scale)
		if ft == FieldH {
			bf = bf.Scale(1 / magmath.Mu0)
		}
		out[i] = bf
	}
	return out, nil
}
