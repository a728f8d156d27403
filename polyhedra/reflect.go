package polyhedra

import "polyconn/crystal"

// Reflections returns the boundary-mirrored copies of site needed so that
// polyhedra near a cell boundary are compared against their periodic
// counterparts. For each fractional axis the site is classified as near the
// low boundary (coordinate in [0, margin], reflected by +1), near the high
// boundary (coordinate in [1−margin, 1], reflected by −1), or interior.
// One copy is emitted for every non-empty combination of near-boundary
// axes: 0 copies for an interior site, up to 7 for a corner site. Species
// and lattice are unchanged; only fractional coordinates shift by whole
// lattice vectors.
// Returns ErrInvalidMargin unless 0 ≤ margin < 0.5.
// Complexity: O(1).
func Reflections(site *crystal.Site, margin float64) ([]crystal.SiteSpec, error) {
	if margin < 0 || margin >= maxMargin {
		return nil, ErrInvalidMargin
	}

	x := reflectionSign(site.Frac[0], margin)
	y := reflectionSign(site.Frac[1], margin)
	z := reflectionSign(site.Frac[2], margin)

	var reflections []crystal.SiteSpec
	add := func(dx, dy, dz int) {
		reflections = append(reflections, crystal.SiteSpec{
			Species: site.Species,
			Frac: [3]float64{
				site.Frac[0] + float64(dx),
				site.Frac[1] + float64(dy),
				site.Frac[2] + float64(dz),
			},
		})
	}

	if x != 0 {
		add(x, 0, 0)
		if y != 0 {
			add(x, y, 0)
			if z != 0 {
				add(x, y, z)
			}
		}
		if z != 0 {
			add(x, 0, z)
		}
	}
	if y != 0 {
		add(0, y, 0)
		if z != 0 {
			add(0, y, z)
		}
	}
	if z != 0 {
		add(0, 0, z)
	}

	return reflections, nil
}

// reflectionSign classifies one fractional coordinate: +1 near the low
// boundary, −1 near the high boundary, 0 in the interior. The reflected
// copy is pushed one whole lattice vector to the opposite side of the cell.
// With margin < 0.5 at most one condition can hold.
func reflectionSign(coord, margin float64) int {
	switch {
	case coord >= 0 && coord <= margin:
		return 1
	case coord <= 1 && coord >= 1-margin:
		return -1
	default:
		return 0
	}
}
