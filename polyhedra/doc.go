// Package polyhedra builds cation-centered coordination polyhedra from a
// periodic crystal structure and classifies the connectivity between them.
//
// What:
//
//   - Reflections mirrors near-boundary cations across the unit cell so
//     that connectivity through a cell face, edge or corner is not missed.
//   - Build assembles one Polyhedron per cation (original and reflected):
//     anion neighbors within a radius, filtered by Hoppe bond weight.
//   - Polyhedron.SharedWith counts peripheral ions two polyhedra share,
//     by site identity.
//   - Classify produces per-species histograms of isolated / point / edge /
//     face connection instances over the full directed pairwise scan.
//
// Why:
//
//   - Structure analysis: corner- vs edge- vs face-sharing octahedra and
//     tetrahedra drive ionic conductivity, stability and phase behavior.
//   - Coordination probing: AverageCoordination reports per-species mean
//     effective coordination numbers.
//
// Connectivity classes (shared peripheral ions):
//
//	0 → isolated, 1 → point, 2 → edge, ≥3 → face
//
// Complexity:
//
//   - Reflections: O(1) per site (0–7 copies).
//   - Build:       O(c×(n×m + k²)) — c cations, n sites, m periodic
//     images, k neighbors per cation.
//   - Classify:    O(n²×k) over the (possibly reflection-inflated) list.
//
// Options:
//
//   - Options.Margin: fractional boundary margin for reflections (default 0.05).
//   - Options.Radius: neighbor-search radius in Å (default 3.0).
//   - Options.AnionSpecies: species treated as anions; everything else is
//     a cation (default: O, F, Cl, Br, I, S in bare and charged spellings).
//   - Options.DisableWeightFiltering: accept all distance-qualified anions
//     with weight 1.0 (coordination probing).
//
// Errors:
//
//   - ErrInvalidMargin: margin outside [0, 0.5).
//   - ErrInvalidRadius: negative radius.
//   - ErrNilStructure: nil structure passed to Build.
//
// The classifier itself never fails: a structure without cations yields an
// empty histogram.
package polyhedra
