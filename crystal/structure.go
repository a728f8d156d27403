package crystal

import "math"

// Structure is an immutable snapshot of a periodic crystal: one Lattice
// plus an ordered arena of sites. Site IDs are arena indices assigned at
// construction and preserved by Extend.
type Structure struct {
	lattice Lattice
	sites   []*Site
}

// NewStructure builds a Structure from a lattice and a list of site specs.
// Site IDs are assigned in spec order, starting at 0.
// Returns ErrDegenerateLattice for a degenerate cell and ErrNoSites for an
// empty spec list.
// Complexity: O(n) time and memory.
func NewStructure(lat Lattice, specs []SiteSpec) (*Structure, error) {
	if lat.Volume() < minVolume {
		return nil, ErrDegenerateLattice
	}
	if len(specs) == 0 {
		return nil, ErrNoSites
	}
	sites := make([]*Site, len(specs))
	for i, spec := range specs {
		sites[i] = &Site{ID: i, Species: spec.Species, Frac: spec.Frac}
	}

	return &Structure{lattice: lat, sites: sites}, nil
}

// Lattice returns the structure's lattice.
func (s *Structure) Lattice() Lattice { return s.lattice }

// Sites returns the site arena in ID order. The returned slice is shared;
// callers must not modify it.
// Complexity: O(1).
func (s *Structure) Sites() []*Site { return s.sites }

// Len returns the number of sites.
func (s *Structure) Len() int { return len(s.sites) }

// Extend returns a new Structure containing all existing sites plus the
// given extras. Existing *Site values are shared (IDs unchanged); extras
// receive the next consecutive IDs. Used to materialize boundary-reflection
// snapshots so that neighbor search sees mirrored atoms as real sites.
// Complexity: O(n+k).
func (s *Structure) Extend(extra []SiteSpec) *Structure {
	sites := make([]*Site, len(s.sites), len(s.sites)+len(extra))
	copy(sites, s.sites)
	for i, spec := range extra {
		sites = append(sites, &Site{ID: len(s.sites) + i, Species: spec.Species, Frac: spec.Frac})
	}

	return &Structure{lattice: s.lattice, sites: sites}
}

// Distance returns the minimum-image Cartesian distance (Å) between two
// sites: the shortest distance over all periodic images within one cell
// translation along each axis.
// Complexity: O(1) (27 images).
func (s *Structure) Distance(a, b *Site) float64 {
	delta := [3]float64{
		b.Frac[0] - a.Frac[0],
		b.Frac[1] - a.Frac[1],
		b.Frac[2] - a.Frac[2],
	}

	return s.minImageDistance(delta, [3]int{1, 1, 1})
}

// Neighbors returns every other site within radius (Å) of center under
// periodic boundary conditions. Each site appears at most once, at its
// minimum periodic-image distance; the center site itself (including its
// own periodic images) is never reported. The returned slice is ordered by
// arena ID, matching site discovery order.
// Returns ErrInvalidRadius if radius < 0. A radius of zero is legal and
// yields no neighbors.
// Complexity: O(n×m) for n sites and m images within the scan bounds.
func (s *Structure) Neighbors(center *Site, radius float64) ([]Neighbor, error) {
	if radius < 0 {
		return nil, ErrInvalidRadius
	}
	bounds := s.imageBounds(radius)
	var neighbors []Neighbor
	for _, site := range s.sites {
		if site.ID == center.ID {
			continue
		}
		delta := [3]float64{
			site.Frac[0] - center.Frac[0],
			site.Frac[1] - center.Frac[1],
			site.Frac[2] - center.Frac[2],
		}
		if d := s.minImageDistance(delta, bounds); d <= radius {
			neighbors = append(neighbors, Neighbor{Site: site, Distance: d})
		}
	}

	return neighbors, nil
}

// imageBounds returns, per axis, the number of cell translations that must
// be scanned so that no point within radius is missed: ceil(radius / w_i)
// with w_i the perpendicular width along axis i, and never less than 1 so
// that Distance-style minimum imaging still applies for small radii.
func (s *Structure) imageBounds(radius float64) [3]int {
	var bounds [3]int
	for axis := 0; axis < 3; axis++ {
		n := int(math.Ceil(radius / s.lattice.PerpendicularWidth(axis)))
		if n < 1 {
			n = 1
		}
		bounds[axis] = n
	}

	return bounds
}

// minImageDistance returns the shortest Cartesian length of delta over all
// integer lattice translations within the given per-axis bounds.
func (s *Structure) minImageDistance(delta [3]float64, bounds [3]int) float64 {
	best := math.Inf(1)
	for nx := -bounds[0]; nx <= bounds[0]; nx++ {
		for ny := -bounds[1]; ny <= bounds[1]; ny++ {
			for nz := -bounds[2]; nz <= bounds[2]; nz++ {
				shifted := [3]float64{
					delta[0] + float64(nx),
					delta[1] + float64(ny),
					delta[2] + float64(nz),
				}
				if d := norm(s.lattice.Cartesian(shifted)); d < best {
					best = d
				}
			}
		}
	}

	return best
}
