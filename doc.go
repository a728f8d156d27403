// Package polyconn classifies the geometric connectivity between
// coordination polyhedra in periodic crystal structures — point-,
// edge- and face-sharing, with periodic-boundary reflections handled
// explicitly.
//
// 🚀 What is polyconn?
//
//	A small, pure-Go library that brings together:
//		• Periodic structures: lattice math, fractional sites, image-aware
//		  neighbor search
//		• Bond weights: Hoppe (1979) effective-coordination weighting
//		• Polyhedra: cation-centered coordination polyhedra built from
//		  weight-filtered anion neighbors
//		• Connectivity: per-species histograms of isolated / point /
//		  edge / face contacts between polyhedra
//
// ✨ Why choose polyconn?
//
//   - Boundary-correct – near-boundary cations are mirrored across the
//     cell so no shared ion is missed
//   - Deterministic – stable site identities (arena IDs), no
//     floating-point coordinate comparisons in the hot path
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under three subpackages:
//
//	crystal/   — Lattice, Site and Structure types with periodic neighbor search
//	econ/      — Hoppe effective-coordination bond-weight formula
//	polyhedra/ — reflection generator, polyhedron builder and connectivity classifier
//
// Quick ASCII example:
//
//	    [MO6]───[MO6]
//	      shared edge (2 ions)
//
//	two octahedra sharing two oxygen sites are edge-connected.
//
// The cmd/polyconn driver loads a YAML structure description and prints
// the per-species connectivity histogram or effective coordination
// numbers.
//
//	go get polyconn
package polyconn
