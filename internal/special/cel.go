package special

import "math"

const (
	piHalf = 1.5707963267948966

	// Relative tolerance of the Bulirsch iteration. Convergence is
	// quadratic, so the final error lands near machine precision.
	celTol = 1e-8

	// Hard cap keeping every evaluation bounded; the iteration
	// converges in well under 10 doublings for any sane modulus.
	celMaxIter = 64
)

// Cel evaluates the generalized complete elliptic integral
//
//	cel(kc, p, c, s) = ∫₀^{π/2} (c·cos²φ + s·sin²φ) /
//	                   ((cos²φ + p·sin²φ)·sqrt(cos²φ + kc²·sin²φ)) dφ
//
// using the Bulirsch algorithm. kc is the complementary modulus and must
// be nonzero; callers mask degenerate parameters beforehand.
func Cel(kc, p, c, s float64) float64 {
	if kc == 0 {
		return math.NaN()
	}

	k := math.Abs(kc)
	e := k
	em := 1.0
	cc := c
	ss := s
	pp := p

	if pp > 0 {
		pp = math.Sqrt(pp)
		ss = ss / pp
	} else {
		// negative characteristic: Cauchy principal value
		f := kc * kc
		q := 1 - f
		g := 1 - pp
		f = f - pp
		q = q * (ss - cc*pp)
		pp = math.Sqrt(f / g)
		cc = (cc - ss) / g
		ss = -q/(g*g*pp) + cc*pp
	}

	for i := 0; i < celMaxIter; i++ {
		f := cc
		cc = cc + ss/pp
		g := e / pp
		ss = 2 * (ss + f*g)
		pp = g + pp
		g = em
		em = k + em
		if math.Abs(g-k) <= g*celTol {
			break
		}
		k = 2 * math.Sqrt(e)
		e = k * em
	}

	return piHalf * (ss + cc*em) / (em * (em + pp))
}

// CelIter is the bare iterative part of the Bulirsch algorithm with the
// caller providing the full start state. The current-loop kernel enters
// the iteration with premixed coefficient sets instead of the canonical
// cel(kc,p,c,s) setup.
//
// Deterministic: identical inputs take identical iteration paths, and
// the hard cap bounds every call.
func CelIter(qc, p, g, cc, ss, em, kk float64) float64 {
	for i := 0; i < celMaxIter && math.Abs(g-qc) > g*celTol; i++ {
		qc = 2 * math.Sqrt(kk)
		kk = qc * em
		f := cc
		cc = cc + ss/p
		g = kk / p
		ss = 2 * (ss + f*g)
		p = g + p
		g = em
		em = qc + em
	}
	return piHalf * (ss + cc*em) / (em * (em + p))
}

// EllipticK returns the complete elliptic integral of the first kind
// K(m) with parameter m = k².
func EllipticK(m float64) float64 {
	kc := math.Sqrt(1 - m)
	return Cel(kc, 1, 1, 1)
}

// EllipticE returns the complete elliptic integral of the second kind
// E(m) with parameter m = k².
func EllipticE(m float64) float64 {
	kc := math.Sqrt(1 - m)
	return Cel(kc, 1, 1, kc*kc)
}
