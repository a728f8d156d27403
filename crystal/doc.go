// Package crystal models periodic crystal structures: a Lattice of three
// Cartesian row vectors, Sites addressed by fractional coordinates, and a
// Structure that ties them together with an image-aware neighbor search.
//
// What:
//
//   - Lattice converts fractional coordinates to Cartesian and exposes the
//     cell volume and per-axis perpendicular widths.
//   - Site carries a species string, fractional coordinates, and a stable
//     arena ID unique within its Structure.
//   - Structure enumerates sites, measures minimum-image distances, finds
//     all neighbors within a radius under periodic boundary conditions, and
//     can be extended with synthetic sites (boundary reflections) without
//     disturbing existing IDs.
//
// Why:
//
//   - Coordination analysis: which anions surround a cation, and how far.
//   - Connectivity analysis: shared-ion detection needs stable site
//     identities, not floating-point coordinate comparisons.
//
// Complexity:
//
//   - Cartesian, Distance:  O(1) (fixed 3×3 work, bounded image scan).
//   - Neighbors:            O(n×m) for n sites and m candidate images,
//     where m grows with radius / cell width.
//   - Extend:               O(n+k) for k added sites.
//
// Errors:
//
//   - ErrDegenerateLattice: lattice vectors do not span a positive volume.
//   - ErrNoSites: structure constructed with an empty site list.
//   - ErrInvalidRadius: negative neighbor-search radius.
//
// Structures are immutable once built; Extend returns a new Structure that
// shares the original Site values. All methods are safe for concurrent use.
package crystal
