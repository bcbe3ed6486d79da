// Package field implements the analytical magnetostatic field kernels.
//
// Every kernel follows the same contract: given a [FieldType] selector,
// a batch of observer positions and co-indexed geometry/excitation
// batches, it returns one field vector per instance:
//
//   - [CurrentCircleField]: circular line-current loop (elliptic
//     integrals, Ortner et al. 2022)
//   - [CurrentPolylineField]: straight finite current segment
//   - [DipoleField]: point dipole
//   - [MagnetSphereField]: homogeneously polarized sphere
//   - [MagnetCuboidField]: polarized cuboid (corner sums)
//   - [MagnetCylinderField]: axially polarized cylinder (Derby/Olbert)
//   - [MagnetTriangleField]: charged facet (solid angle + edge terms)
//   - [MagnetTetrahedronField]: polarized tetrahedron via four facets
//
// Units are SI throughout: meters, amperes, tesla for B/J, A/m for H/M.
// All kernels are pure: no shared state, deterministic output, and the
// batch may be evaluated in any order.
//
// # Error handling
//
// Contract violations (bad field type, bad policy, batch length
// mismatch) return errors before any numeric work. Geometric
// degeneracies and singular observer placements never error: they
// resolve to a zero vector for the affected instance, keeping NaN/Inf
// out of downstream consumers.
package field
