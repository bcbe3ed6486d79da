// Package magmath provides the small vector and coordinate toolkit shared
// by the field kernels: [Vec3] and [Mat3] value types, Cartesian and
// cylindrical coordinate transforms, and the vacuum permeability [Mu0].
//
// Everything here is a pure value computation; batches are plain slices
// of these types, co-indexed by position.
package magmath
