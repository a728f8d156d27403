package polyhedra_test

import (
	"math/rand"
	"testing"

	"polyconn/crystal"
	"polyconn/polyhedra"
)

// BenchmarkClassify measures the O(n²) directed pairwise scan over 200
// octahedron-sized polyhedra drawing ions from a shared pool of 400 sites.
func BenchmarkClassify(b *testing.B) {
	const (
		nPolyhedra = 200
		nAnions    = 400
		ionsPer    = 6
	)
	// Setup: deterministic random ion assignment
	rng := rand.New(rand.NewSource(42))
	anions := make([]*crystal.Site, nAnions)
	for i := range anions {
		anions[i] = &crystal.Site{ID: i, Species: "O"}
	}
	polys := make([]*polyhedra.Polyhedron, nPolyhedra)
	for i := range polys {
		center := &crystal.Site{ID: nAnions + i, Species: "Ti"}
		ions := make([]polyhedra.PeripheralIon, ionsPer)
		for j := range ions {
			ions[j] = polyhedra.PeripheralIon{
				Site:     anions[rng.Intn(nAnions)],
				Distance: 2.0,
				Weight:   1.0,
			}
		}
		polys[i] = polyhedra.NewPolyhedron(center, ions)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = polyhedra.Classify(polys)
	}
}

// BenchmarkBuild measures polyhedron construction on a 4×4×4 rock-salt-like
// arrangement (128 sites) with the default margin and radius.
func BenchmarkBuild(b *testing.B) {
	const n = 4
	var specs []crystal.SiteSpec
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				base := [3]float64{float64(i) / n, float64(j) / n, float64(k) / n}
				specs = append(specs, crystal.SiteSpec{Species: "Li", Frac: base})
				specs = append(specs, crystal.SiteSpec{
					Species: "O",
					Frac:    [3]float64{base[0] + 0.5/n, base[1] + 0.5/n, base[2] + 0.5/n},
				})
			}
		}
	}
	s, err := crystal.NewStructure(crystal.Cubic(16), specs)
	if err != nil {
		b.Fatalf("setup NewStructure failed: %v", err)
	}
	opts := polyhedra.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := polyhedra.Build(s, opts); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}
