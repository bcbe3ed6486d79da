package magmath

import "math"

// CylCoord is a point in cylindrical coordinates (radius, azimuth, height).
type CylCoord struct {
	R, Phi, Z float64
}

// CartToCyl converts a Cartesian position to cylindrical coordinates.
// At r=0 the azimuth is conventionally 0 (atan2(0,0)=0).
func CartToCyl(p Vec3) CylCoord {
	return CylCoord{
		R:   math.Hypot(p.X, p.Y),
		Phi: math.Atan2(p.Y, p.X),
		Z:   p.Z,
	}
}

// CylToCart converts a cylindrical position back to Cartesian coordinates.
func CylToCart(c CylCoord) Vec3 {
	sin, cos := math.Sincos(c.Phi)
	return Vec3{c.R * cos, c.R * sin, c.Z}
}

// CylFieldToCart rotates a purely radial field component at azimuth phi
// into Cartesian (x,y) components.
func CylFieldToCart(phi, br float64) (bx, by float64) {
	sin, cos := math.Sincos(phi)
	return br * cos, br * sin
}
