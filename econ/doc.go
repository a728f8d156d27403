// Package econ implements Hoppe's (1979) effective-coordination-number
// bond weighting.
//
// What:
//
//   - BondWeight scores a single bond against the full set of bond
//     distances at the same central site; scores decay steeply past the
//     weighted mean bond length.
//   - EffectiveCoordination sums those weights into an ECoN, a smooth
//     replacement for the integer coordination number.
//
// Why:
//
//   - Deciding which nearby anions truly belong to a coordination
//     polyhedron: a contact whose weight falls below a small epsilon
//     contributes nothing and is treated as non-bonding.
//   - Reporting per-species average coordination numbers.
//
// Complexity:
//
//   - BondWeight:            O(n) per call.
//   - EffectiveCoordination: O(n²) over n distances.
//
// Errors:
//
//   - ErrNoDistances: the distance set is empty.
//   - ErrNonPositiveDistance: a distance is zero or negative.
//
// Reference: R. Hoppe, "Effective coordination numbers (ECoN) and mean
// fictive ionic radii (MEFIR)", Z. Kristallogr. 150 (1979) 23–52.
package econ
