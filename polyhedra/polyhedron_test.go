package polyhedra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polyconn/crystal"
	"polyconn/polyhedra"
)

// ion wraps a site into a PeripheralIon with unit weight for test brevity.
func ion(site *crystal.Site, distance float64) polyhedra.PeripheralIon {
	return polyhedra.PeripheralIon{Site: site, Distance: distance, Weight: 1.0}
}

// testSites returns two cation sites and four anion sites with distinct arena IDs.
func testSites() (c1, c2 *crystal.Site, anions []*crystal.Site) {
	c1 = &crystal.Site{ID: 0, Species: "Ti", Frac: [3]float64{0.3, 0.3, 0.3}}
	c2 = &crystal.Site{ID: 1, Species: "Ti", Frac: [3]float64{0.5, 0.3, 0.3}}
	for i := 0; i < 4; i++ {
		anions = append(anions, &crystal.Site{ID: 2 + i, Species: "O"})
	}

	return c1, c2, anions
}

// TestPolyhedron_SharedWith_Self verifies the self-comparison guard.
func TestPolyhedron_SharedWith_Self(t *testing.T) {
	c1, _, anions := testSites()
	p := polyhedra.NewPolyhedron(c1, []polyhedra.PeripheralIon{ion(anions[0], 2)})

	assert.Equal(t, polyhedra.SelfComparison, p.SharedWith(p))

	// A distinct Polyhedron over the identical center site is still "self".
	q := polyhedra.NewPolyhedron(c1, nil)
	assert.Equal(t, polyhedra.SelfComparison, p.SharedWith(q))
}

// TestPolyhedron_SharedWith_SymmetricCounts checks counting and symmetry
// over a partially overlapping pair.
func TestPolyhedron_SharedWith_SymmetricCounts(t *testing.T) {
	c1, c2, anions := testSites()
	p := polyhedra.NewPolyhedron(c1, []polyhedra.PeripheralIon{
		ion(anions[0], 2), ion(anions[1], 2), ion(anions[2], 2),
	})
	q := polyhedra.NewPolyhedron(c2, []polyhedra.PeripheralIon{
		ion(anions[1], 2), ion(anions[2], 2), ion(anions[3], 2),
	})

	assert.Equal(t, 2, p.SharedWith(q))
	assert.Equal(t, 2, q.SharedWith(p), "shared counts are symmetric")
}

// TestPolyhedron_SharedWith_IdentityNotCoordinates verifies that sharing is
// decided by arena ID: two anions at identical coordinates but different IDs
// do not match.
func TestPolyhedron_SharedWith_IdentityNotCoordinates(t *testing.T) {
	c1, c2, _ := testSites()
	a := &crystal.Site{ID: 10, Species: "O", Frac: [3]float64{0.4, 0.4, 0.4}}
	b := &crystal.Site{ID: 11, Species: "O", Frac: [3]float64{0.4, 0.4, 0.4}}

	p := polyhedra.NewPolyhedron(c1, []polyhedra.PeripheralIon{ion(a, 2)})
	q := polyhedra.NewPolyhedron(c2, []polyhedra.PeripheralIon{ion(b, 2)})

	assert.Equal(t, 0, p.SharedWith(q), "coincident coordinates never match by value")
}

// TestPolyhedron_SharedWith_DuplicateTargetEntries verifies an a-side ion is
// counted once even when it appears twice on the b side.
func TestPolyhedron_SharedWith_DuplicateTargetEntries(t *testing.T) {
	c1, c2, anions := testSites()
	p := polyhedra.NewPolyhedron(c1, []polyhedra.PeripheralIon{ion(anions[0], 2)})
	q := polyhedra.NewPolyhedron(c2, []polyhedra.PeripheralIon{
		ion(anions[0], 2), ion(anions[0], 2.1),
	})

	assert.Equal(t, 1, p.SharedWith(q))
}

// TestPolyhedron_Immutable verifies that neither the input slice nor the
// accessor result can mutate the polyhedron.
func TestPolyhedron_Immutable(t *testing.T) {
	c1, _, anions := testSites()
	input := []polyhedra.PeripheralIon{ion(anions[0], 2), ion(anions[1], 2.2)}
	p := polyhedra.NewPolyhedron(c1, input)

	input[0] = ion(anions[3], 9)
	got := p.PeripheralIons()
	require.Len(t, got, 2)
	assert.Equal(t, anions[0].ID, got[0].Site.ID, "input mutation must not leak in")

	got[1] = ion(anions[3], 9)
	assert.Equal(t, anions[1].ID, p.PeripheralIons()[1].Site.ID, "accessor returns a copy")
}

// TestPolyhedron_Distances verifies discovery-order distance extraction.
func TestPolyhedron_Distances(t *testing.T) {
	c1, _, anions := testSites()
	p := polyhedra.NewPolyhedron(c1, []polyhedra.PeripheralIon{
		ion(anions[0], 2.0), ion(anions[1], 2.5),
	})

	assert.Equal(t, []float64{2.0, 2.5}, p.PeripheralDistances())
	assert.Equal(t, 2, p.Size())
}

// TestPolyhedron_CoordinationNumber verifies weight summing and rounding.
func TestPolyhedron_CoordinationNumber(t *testing.T) {
	c1, _, anions := testSites()
	p := polyhedra.NewPolyhedron(c1, []polyhedra.PeripheralIon{
		{Site: anions[0], Distance: 2, Weight: 1.0},
		{Site: anions[1], Distance: 2, Weight: 1.0},
		{Site: anions[2], Distance: 2.4, Weight: 0.6},
	})

	assert.InDelta(t, 2.6, p.BondWeightSum(), 1e-12)
	assert.Equal(t, 3, p.CoordinationNumber())
}

// TestPolyhedron_EmptyPeripheralSet verifies an isolated polyhedron is valid.
func TestPolyhedron_EmptyPeripheralSet(t *testing.T) {
	c1, c2, _ := testSites()
	p := polyhedra.NewPolyhedron(c1, nil)
	q := polyhedra.NewPolyhedron(c2, nil)

	assert.Equal(t, 0, p.Size())
	assert.Equal(t, 0, p.SharedWith(q))
	assert.Zero(t, p.BondWeightSum())
}
