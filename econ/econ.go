package econ

import (
	"errors"
	"math"
)

// BondWeight — Hoppe (1979) effective-coordination bond weighting
//
// Description:
//
//	The effective coordination number (ECoN) replaces the integer
//	coordination count with a sum of smooth per-neighbor weights, so that
//	slightly longer bonds contribute slightly less and clearly non-bonding
//	contacts contribute essentially nothing.
//
// Algorithm Outline:
//  1. Let d_min = min(all).
//  2. Weighted mean bond length:
//     l_av = Σ dᵢ·exp(1−(dᵢ/d_min)⁶) / Σ exp(1−(dᵢ/d_min)⁶)
//  3. Per-neighbor weight:
//     w(d)  = exp(1−(d/l_av)⁶)
//  4. ECoN  = Σ w(dᵢ).
//
// Properties:
//
//   - w is non-increasing in d relative to the shortest bond in the set.
//   - w(d_min, all) is maximal; a set of equal distances yields w = 1 for
//     every neighbor, so ECoN equals the plain neighbor count.
//
// Complexity:
//
//	Time = O(n) per call, Memory = O(1)
//
// Errors:
//   - ErrNoDistances          — the distance set is empty.
//   - ErrNonPositiveDistance  — a distance is zero or negative.
var (
	// ErrNoDistances indicates an empty bond-distance set.
	ErrNoDistances = errors.New("econ: bond-distance set must be non-empty")

	// ErrNonPositiveDistance indicates a zero or negative bond distance.
	ErrNonPositiveDistance = errors.New("econ: bond distances must be positive")
)

// bondExponent is Hoppe's empirical exponent; fixed by the published formula.
const bondExponent = 6

// BondWeight returns the Hoppe weight of one bond of length distance (Å)
// within the full set of bond distances at the same central site.
// Complexity: O(len(all)).
func BondWeight(distance float64, all []float64) (float64, error) {
	if distance <= 0 {
		return 0, ErrNonPositiveDistance
	}
	lav, err := weightedAvgBondLength(all)
	if err != nil {
		return 0, err
	}

	return math.Exp(1 - math.Pow(distance/lav, bondExponent)), nil
}

// EffectiveCoordination returns the ECoN of a site: the sum of Hoppe
// weights over all bond distances at that site.
// Complexity: O(n²) over n distances (one O(n) weight per distance).
func EffectiveCoordination(all []float64) (float64, error) {
	if len(all) == 0 {
		return 0, ErrNoDistances
	}
	var econ float64
	for _, d := range all {
		w, err := BondWeight(d, all)
		if err != nil {
			return 0, err
		}
		econ += w
	}

	return econ, nil
}

// weightedAvgBondLength computes l_av, the mean bond length with each bond
// weighted by its closeness to the shortest bond in the set.
func weightedAvgBondLength(all []float64) (float64, error) {
	if len(all) == 0 {
		return 0, ErrNoDistances
	}
	dMin := all[0]
	for _, d := range all {
		if d <= 0 {
			return 0, ErrNonPositiveDistance
		}
		if d < dMin {
			dMin = d
		}
	}
	var weightedSum, totalWeight float64
	for _, d := range all {
		w := math.Exp(1 - math.Pow(d/dMin, bondExponent))
		weightedSum += d * w
		totalWeight += w
	}

	return weightedSum / totalWeight, nil
}
