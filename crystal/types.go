// This file declares Lattice, Site, SiteSpec, Neighbor, the sentinel
// errors shared by all structure operations, and the small fixed-size
// vector helpers.

package crystal

import (
	"errors"
	"math"
)

// Sentinel errors for crystal operations.
var (
	// ErrDegenerateLattice indicates the lattice vectors span no volume.
	ErrDegenerateLattice = errors.New("crystal: lattice vectors must span a positive volume")

	// ErrNoSites indicates a structure was constructed with no sites.
	ErrNoSites = errors.New("crystal: structure must contain at least one site")

	// ErrInvalidRadius indicates a negative neighbor-search radius.
	ErrInvalidRadius = errors.New("crystal: neighbor-search radius must be non-negative")
)

// minVolume is the smallest cell volume (Å³) accepted as non-degenerate.
const minVolume = 1e-10

// Lattice is a periodic unit cell described by three Cartesian row
// vectors (Å). It is a value type; copying is cheap and safe.
type Lattice struct {
	vecs [3][3]float64
}

// NewLattice constructs a Lattice from three row vectors a, b, c.
// Returns ErrDegenerateLattice if the vectors span no volume.
func NewLattice(vecs [3][3]float64) (Lattice, error) {
	l := Lattice{vecs: vecs}
	if l.Volume() < minVolume {
		return Lattice{}, ErrDegenerateLattice
	}

	return l, nil
}

// Cubic returns a cubic lattice with edge length a (Å).
// Degenerate edge lengths are caught by NewLattice at Structure
// construction; Cubic itself never fails for a > 0.
func Cubic(a float64) Lattice {
	return Lattice{vecs: [3][3]float64{
		{a, 0, 0},
		{0, a, 0},
		{0, 0, a},
	}}
}

// Vectors returns the three lattice row vectors.
func (l Lattice) Vectors() [3][3]float64 { return l.vecs }

// Cartesian converts fractional coordinates to Cartesian (Å):
// cart = frac[0]·a + frac[1]·b + frac[2]·c.
// Complexity: O(1).
func (l Lattice) Cartesian(frac [3]float64) [3]float64 {
	var cart [3]float64
	for i := 0; i < 3; i++ {
		cart[i] = frac[0]*l.vecs[0][i] + frac[1]*l.vecs[1][i] + frac[2]*l.vecs[2][i]
	}

	return cart
}

// Volume returns the unit-cell volume |a·(b×c)| (Å³).
// Complexity: O(1).
func (l Lattice) Volume() float64 {
	bc := cross(l.vecs[1], l.vecs[2])

	return math.Abs(dot(l.vecs[0], bc))
}

// PerpendicularWidth returns the distance between the two cell faces
// spanned by the other two axes: V / |a_j × a_k|. It bounds how many
// periodic images along axis must be scanned to cover a given radius.
// Complexity: O(1).
func (l Lattice) PerpendicularWidth(axis int) float64 {
	j, k := (axis+1)%3, (axis+2)%3
	area := norm(cross(l.vecs[j], l.vecs[k]))

	return l.Volume() / area
}

// Site is one atom position within a Structure. ID is the site's index in
// its Structure's arena: stable, unique, and the sole basis for identity
// comparisons (never compare fractional coordinates for equality).
type Site struct {
	// ID is the arena index of this site within its Structure.
	ID int

	// Species is the chemical species string, e.g. "Li" or "O2-".
	Species string

	// Frac holds the fractional coordinates within the lattice.
	// Values outside [0,1) are legal and denote positions in neighboring
	// cells (used for boundary reflections).
	Frac [3]float64
}

// SiteSpec describes a site to be placed in a Structure: species string
// plus fractional coordinates. IDs are assigned by the Structure.
type SiteSpec struct {
	Species string
	Frac    [3]float64
}

// Neighbor pairs a site with its distance (Å) from a query site, as
// returned by Structure.Neighbors.
type Neighbor struct {
	Site     *Site
	Distance float64
}

// cross returns the cross product a × b.
func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// dot returns the dot product a · b.
func dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// norm returns the Euclidean length of v.
func norm(v [3]float64) float64 {
	return math.Sqrt(dot(v, v))
}
