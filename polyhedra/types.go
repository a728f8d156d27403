// This file declares Options, the connectivity Class enum, histogram
// types, and the sentinel errors for the polyhedra package.

package polyhedra

import (
	"errors"

	"polyconn/crystal"
)

// Sentinel errors for polyhedra operations.
var (
	// ErrInvalidMargin indicates a boundary margin outside [0, 0.5);
	// at 0.5 and above a site could reflect both ways on one axis.
	ErrInvalidMargin = errors.New("polyhedra: boundary margin must be in [0, 0.5)")

	// ErrInvalidRadius indicates a negative neighbor-search radius.
	ErrInvalidRadius = errors.New("polyhedra: neighbor-search radius must be non-negative")

	// ErrNilStructure indicates a nil structure was passed to Build.
	ErrNilStructure = errors.New("polyhedra: structure must not be nil")
)

// Deterministic defaults (named, no magic numbers).
const (
	// DefaultMargin is the fractional distance from a cell boundary within
	// which a cation is mirrored across that boundary.
	DefaultMargin = 0.05

	// DefaultRadius is the neighbor-search radius (Å) within which anions
	// are considered candidate peripheral ions.
	DefaultRadius = 3.0

	// WeightEpsilon is the bond-weight threshold below which a nearby anion
	// is treated as non-bonding and excluded from the polyhedron.
	WeightEpsilon = 1e-5

	// maxMargin bounds the margin so single-axis reflection stays unambiguous.
	maxMargin = 0.5
)

// SelfComparison is returned by Polyhedron.SharedWith when a polyhedron is
// compared against one with the identical center site.
const SelfComparison = -1

// Options contains tunable parameters for building coordination polyhedra.
type Options struct {
	// Margin is the fractional boundary margin for reflection generation.
	// Must lie in [0, 0.5).
	Margin float64

	// Radius is the neighbor-search radius (Å). Must be non-negative;
	// zero is legal and yields empty peripheral sets.
	Radius float64

	// AnionSpecies is the set of species strings treated as anions.
	// Every other species is treated as a cation, including species that
	// are not obviously cations; there is no third category.
	// Nil selects DefaultAnionSpecies().
	AnionSpecies map[string]struct{}

	// DisableWeightFiltering accepts every distance-qualified anion with a
	// fixed bond weight of 1.0, bypassing the Hoppe filter. Intended for
	// coordination-number probing with placeholder species.
	DisableWeightFiltering bool
}

// DefaultOptions returns Options with the standard margin (0.05), radius
// (3.0 Å), the default anion set, and weight filtering enabled.
func DefaultOptions() Options {
	return Options{
		Margin:       DefaultMargin,
		Radius:       DefaultRadius,
		AnionSpecies: DefaultAnionSpecies(),
	}
}

// DefaultAnionSpecies returns the standard set of species strings treated
// as anions, in both bare and charge-decorated spellings.
func DefaultAnionSpecies() map[string]struct{} {
	return map[string]struct{}{
		"O": {}, "O2-": {},
		"F": {}, "F-": {},
		"Cl": {}, "Cl-": {},
		"I": {}, "I-": {},
		"Br": {}, "Br-": {},
		"S": {}, "S2-": {},
	}
}

// Class labels the connectivity between two polyhedra by their shared
// peripheral-ion count: 0 → Isolated, 1 → Point, 2 → Edge, ≥3 → Face.
type Class int

const (
	// Isolated means no shared peripheral ions.
	Isolated Class = iota
	// Point means exactly one shared peripheral ion (corner-sharing).
	Point
	// Edge means exactly two shared peripheral ions.
	Edge
	// Face means three or more shared peripheral ions.
	Face
)

// String returns the lowercase class label.
func (c Class) String() string {
	switch c {
	case Isolated:
		return "isolated"
	case Point:
		return "point"
	case Edge:
		return "edge"
	case Face:
		return "face"
	default:
		return "unknown"
	}
}

// ClassOf maps a shared-ion count to its connectivity Class. Counts at or
// below zero (including SelfComparison) map to Isolated.
func ClassOf(shared int) Class {
	switch {
	case shared >= 3:
		return Face
	case shared == 2:
		return Edge
	case shared == 1:
		return Point
	default:
		return Isolated
	}
}

// Counts is one histogram row: connection-instance tallies indexed by
// Class (Isolated, Point, Edge, Face).
type Counts [4]int

// Histogram maps cation species strings to their connectivity counts.
// Reflected copies of a cation merge into the same species bucket.
type Histogram map[string]Counts

// PeripheralIon is one bonded anion of a polyhedron: the site, its
// distance (Å) from the center, and its Hoppe bond weight (fixed at 1.0
// when weight filtering is disabled).
type PeripheralIon struct {
	Site     *crystal.Site
	Distance float64
	Weight   float64
}

// Connection pairs a polyhedron with the number of peripheral ions it
// shares with some reference polyhedron, as returned by ConnectedTo.
type Connection struct {
	Polyhedron *Polyhedron
	Shared     int
}
