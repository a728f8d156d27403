package polyhedra

import (
	"fmt"

	"polyconn/crystal"
	"polyconn/econ"
)

// Build constructs one coordination polyhedron per cation site in the
// structure, including boundary-reflected cation copies.
//
// Steps:
//  1. Partition sites into cations and anions by species-string membership
//     in opts.AnionSpecies (everything not listed is a cation).
//  2. Generate boundary reflections for every cation within opts.Margin of
//     a cell boundary.
//  3. If any reflections exist, materialize an extended structure snapshot
//     so neighbor search sees the mirrored atoms as real sites; original
//     site IDs are preserved, keeping ion identity consistent across
//     original and reflected polyhedra.
//  4. For each cation (original and reflected), collect anion neighbors
//     strictly closer than opts.Radius and drop those whose Hoppe bond
//     weight is at or below WeightEpsilon. With DisableWeightFiltering set,
//     every distance-qualified anion is kept with weight 1.0.
//
// A structure without cations yields an empty slice and no error.
// Duplicate coincident sites are not defended against.
// Complexity: O(c×(n×m + k²)) for c cations, n sites, m images, k
// neighbors per cation.
func Build(s *crystal.Structure, opts Options) ([]*Polyhedron, error) {
	if s == nil {
		return nil, ErrNilStructure
	}
	if opts.Margin < 0 || opts.Margin >= maxMargin {
		return nil, ErrInvalidMargin
	}
	if opts.Radius < 0 {
		return nil, ErrInvalidRadius
	}
	anions := opts.AnionSpecies
	if anions == nil {
		anions = DefaultAnionSpecies()
	}

	var cations []*crystal.Site
	for _, site := range s.Sites() {
		if _, isAnion := anions[site.Species]; !isAnion {
			cations = append(cations, site)
		}
	}

	var reflections []crystal.SiteSpec
	for _, site := range cations {
		specs, err := Reflections(site, opts.Margin)
		if err != nil {
			return nil, err
		}
		reflections = append(reflections, specs...)
	}

	working := s
	centers := cations
	if len(reflections) > 0 {
		working = s.Extend(reflections)
		reflected := working.Sites()[s.Len():]
		centers = make([]*crystal.Site, 0, len(cations)+len(reflected))
		centers = append(centers, cations...)
		centers = append(centers, reflected...)
	}

	polyhedra := make([]*Polyhedron, 0, len(centers))
	for _, center := range centers {
		ions, err := peripheralIons(working, center, anions, opts)
		if err != nil {
			return nil, fmt.Errorf("polyhedra: building polyhedron for %s: %w", center.Species, err)
		}
		polyhedra = append(polyhedra, NewPolyhedron(center, ions))
	}

	return polyhedra, nil
}

// peripheralIons finds the bonded anions of one cation: neighbors within
// the radius, anion species only, strictly closer than the radius, and
// (unless filtering is disabled) carrying a bond weight above WeightEpsilon.
func peripheralIons(s *crystal.Structure, center *crystal.Site, anions map[string]struct{}, opts Options) ([]PeripheralIon, error) {
	neighbors, err := s.Neighbors(center, opts.Radius)
	if err != nil {
		return nil, err
	}

	var candidates []crystal.Neighbor
	var bondLengths []float64
	for _, nb := range neighbors {
		if _, isAnion := anions[nb.Site.Species]; isAnion && nb.Distance < opts.Radius {
			candidates = append(candidates, nb)
			bondLengths = append(bondLengths, nb.Distance)
		}
	}

	var ions []PeripheralIon
	for _, nb := range candidates {
		if opts.DisableWeightFiltering {
			ions = append(ions, PeripheralIon{Site: nb.Site, Distance: nb.Distance, Weight: 1.0})
			continue
		}
		weight, err := econ.BondWeight(nb.Distance, bondLengths)
		if err != nil {
			return nil, err
		}
		if weight > WeightEpsilon {
			ions = append(ions, PeripheralIon{Site: nb.Site, Distance: nb.Distance, Weight: weight})
		}
	}

	return ions, nil
}

// AverageCoordination returns the mean effective coordination number per
// cation species over the original (non-reflected) cation sites. Cations
// with no bonded anions contribute an ECoN of 0.
// Complexity: O(c×(n×m + k²)).
func AverageCoordination(s *crystal.Structure, opts Options) (map[string]float64, error) {
	if s == nil {
		return nil, ErrNilStructure
	}
	if opts.Radius < 0 {
		return nil, ErrInvalidRadius
	}
	anions := opts.AnionSpecies
	if anions == nil {
		anions = DefaultAnionSpecies()
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, site := range s.Sites() {
		if _, isAnion := anions[site.Species]; isAnion {
			continue
		}
		ions, err := peripheralIons(s, site, anions, opts)
		if err != nil {
			return nil, fmt.Errorf("polyhedra: coordination for %s: %w", site.Species, err)
		}
		var econSum float64
		for _, ion := range ions {
			econSum += ion.Weight
		}
		sums[site.Species] += econSum
		counts[site.Species]++
	}

	averages := make(map[string]float64, len(sums))
	for species, sum := range sums {
		averages[species] = sum / float64(counts[species])
	}

	return averages, nil
}
