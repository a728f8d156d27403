package polyhedra

import (
	"math"

	"polyconn/crystal"
)

// Polyhedron is a coordination polyhedron: one central cation site plus
// the anion sites bonded to it. It is immutable once built; connectivity
// comparisons never mutate it. The center never appears among the
// peripheral ions, and an empty peripheral set is valid (isolated).
type Polyhedron struct {
	center         *crystal.Site
	peripheralIons []PeripheralIon
}

// NewPolyhedron assembles a polyhedron from a center site and its bonded
// anions. The ion slice is copied; insertion order (neighbor discovery
// order) is preserved for reproducible iteration.
// Complexity: O(k) over k ions.
func NewPolyhedron(center *crystal.Site, ions []PeripheralIon) *Polyhedron {
	copied := make([]PeripheralIon, len(ions))
	copy(copied, ions)

	return &Polyhedron{center: center, peripheralIons: copied}
}

// Center returns the central cation site.
func (p *Polyhedron) Center() *crystal.Site { return p.center }

// Species returns the central cation's species string.
func (p *Polyhedron) Species() string { return p.center.Species }

// PeripheralIons returns a copy of the bonded anion list in discovery order.
// Complexity: O(k).
func (p *Polyhedron) PeripheralIons() []PeripheralIon {
	ions := make([]PeripheralIon, len(p.peripheralIons))
	copy(ions, p.peripheralIons)

	return ions
}

// Size returns the number of peripheral ions.
func (p *Polyhedron) Size() int { return len(p.peripheralIons) }

// PeripheralDistances returns the center-to-ion distances (Å) in
// discovery order, the input expected by the econ bond-weight formula.
// Complexity: O(k).
func (p *Polyhedron) PeripheralDistances() []float64 {
	distances := make([]float64, len(p.peripheralIons))
	for i, ion := range p.peripheralIons {
		distances[i] = ion.Distance
	}

	return distances
}

// BondWeightSum returns the sum of peripheral bond weights: the site's
// effective coordination number before rounding.
// Complexity: O(k).
func (p *Polyhedron) BondWeightSum() float64 {
	var sum float64
	for _, ion := range p.peripheralIons {
		sum += ion.Weight
	}

	return sum
}

// CoordinationNumber returns the effective coordination number rounded to
// the nearest integer.
func (p *Polyhedron) CoordinationNumber() int {
	return int(math.Round(p.BondWeightSum()))
}

// SharedWith counts the peripheral ions this polyhedron shares with other.
// Sharing is decided by site identity (arena ID), never by coordinate
// comparison. Each of p's ions is counted at most once. Returns
// SelfComparison (-1) when both polyhedra have the identical center site.
// Symmetric: p.SharedWith(q) == q.SharedWith(p) for distinct centers.
// Complexity: O(k_p + k_q) time, O(k_q) memory.
func (p *Polyhedron) SharedWith(other *Polyhedron) int {
	if p.center.ID == other.center.ID {
		return SelfComparison
	}
	otherIDs := make(map[int]struct{}, len(other.peripheralIons))
	for _, ion := range other.peripheralIons {
		otherIDs[ion.Site.ID] = struct{}{}
	}
	shared := 0
	for _, ion := range p.peripheralIons {
		if _, ok := otherIDs[ion.Site.ID]; ok {
			shared++
		}
	}

	return shared
}
