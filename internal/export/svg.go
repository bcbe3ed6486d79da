package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/magsim/internal/magmath"
)

// FieldMapSVG renders a planar grid of field samples as an SVG heat
// map with in-plane direction ticks. values is row-major in v with nu
// columns; u and v are the (not necessarily unit) plane axes used to
// project the field onto the slice.
func FieldMapSVG(values []magmath.Vec3, u, v magmath.Vec3, nu, nv, cellPx int) (string, error) {
	if nu < 2 || nv < 2 {
		return "", fmt.Errorf("field map needs at least a 2x2 grid, got %dx%d", nu, nv)
	}
	if len(values) != nu*nv {
		return "", fmt.Errorf("grid size %dx%d needs %d values, got %d", nu, nv, nu*nv, len(values))
	}
	if cellPx <= 0 {
		cellPx = 14
	}

	// log-magnitude shading bounds over the nonzero samples
	minLog, maxLog := math.Inf(1), math.Inf(-1)
	for _, val := range values {
		m := val.Norm()
		if m == 0 {
			continue
		}
		l := math.Log10(m)
		if l < minLog {
			minLog = l
		}
		if l > maxLog {
			maxLog = l
		}
	}
	if minLog > maxLog {
		return "", fmt.Errorf("field map is identically zero")
	}
	logRange := maxLog - minLog
	if logRange == 0 {
		logRange = 1
	}

	uHat := u.Normalized()
	vHat := v.Normalized()

	width := nu * cellPx
	height := nv * cellPx

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for j := 0; j < nv; j++ {
		for i := 0; i < nu; i++ {
			val := values[j*nu+i]
			m := val.Norm()

			// SVG y grows downward; put v=0 at the bottom
			x0 := i * cellPx
			y0 := (nv - 1 - j) * cellPx

			t := 0.0
			if m > 0 {
				t = (math.Log10(m) - minLog) / logRange
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>
`, x0, y0, cellPx, cellPx, heatColor(t)))

			if m == 0 {
				continue
			}
			// in-plane direction tick
			fu := val.Dot(uHat)
			fv := val.Dot(vHat)
			ip := math.Hypot(fu, fv)
			if ip < 1e-3*m {
				continue
			}
			half := float64(cellPx) * 0.38
			cx := float64(x0) + float64(cellPx)/2
			cy := float64(y0) + float64(cellPx)/2
			dx := fu / ip * half
			dy := -fv / ip * half
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#e0e0e0" stroke-width="1"/>
`, cx-dx, cy-dy, cx+dx, cy+dy))
		}
	}

	sb.WriteString("</svg>")
	return sb.String(), nil
}

// heatColor maps t in [0,1] to a dark-blue -> cyan -> yellow ramp.
func heatColor(t float64) string {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	var r, g, b int
	if t < 0.5 {
		f := t * 2
		r = 0
		g = int(40 + 180*f)
		b = int(90 + 140*f)
	} else {
		f := (t - 0.5) * 2
		r = int(255 * f)
		g = int(220 + 35*f)
		b = int(230 * (1 - f))
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
