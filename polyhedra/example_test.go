package polyhedra_test

import (
	"fmt"

	"polyconn/crystal"
	"polyconn/polyhedra"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Reflections
////////////////////////////////////////////////////////////////////////////////

// ExampleReflections demonstrates mirroring a near-boundary cation across
// the cell: the copy lands one whole lattice vector past the opposite face.
func ExampleReflections() {
	site := &crystal.Site{ID: 0, Species: "Li", Frac: [3]float64{0.25, 0.5, 0.5}}

	specs, _ := polyhedra.Reflections(site, 0.3)
	fmt.Println("copies:", len(specs))
	fmt.Println(specs[0].Species, specs[0].Frac)

	// Output:
	// copies: 1
	// Li [1.25 0.5 0.5]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Classify
////////////////////////////////////////////////////////////////////////////////

// ExampleClassify demonstrates the edge-sharing case: two cation polyhedra
// sharing exactly two anion sites. Directed counting tallies the contact
// once from each side.
//
//	Ti───O───Ti
//	 \   │   /
//	  `──O──´
func ExampleClassify() {
	lat := crystal.Cubic(4)
	s, _ := crystal.NewStructure(lat, []crystal.SiteSpec{
		{Species: "Ti", Frac: [3]float64{0.25, 0.25, 0.25}},
		{Species: "Ti", Frac: [3]float64{0.75, 0.25, 0.25}},
		{Species: "O", Frac: [3]float64{0.5, 0.4, 0.25}},
		{Species: "O", Frac: [3]float64{0.5, 0.1, 0.25}},
	})
	sites := s.Sites()

	a := polyhedra.NewPolyhedron(sites[0], []polyhedra.PeripheralIon{
		{Site: sites[2], Distance: 2, Weight: 1},
		{Site: sites[3], Distance: 2, Weight: 1},
	})
	b := polyhedra.NewPolyhedron(sites[1], []polyhedra.PeripheralIon{
		{Site: sites[2], Distance: 2, Weight: 1},
		{Site: sites[3], Distance: 2, Weight: 1},
	})

	hist := polyhedra.Classify([]*polyhedra.Polyhedron{a, b})
	fmt.Println("shared:", a.SharedWith(b), "class:", polyhedra.ClassOf(a.SharedWith(b)))
	fmt.Println("Ti:", hist["Ti"])

	// Output:
	// shared: 2 class: edge
	// Ti: [0 0 2 0]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Build
////////////////////////////////////////////////////////////////////////////////

// ExampleBuild demonstrates the full pipeline on a minimal structure: one
// interior cation bonded to two oxygens.
func ExampleBuild() {
	s, _ := crystal.NewStructure(crystal.Cubic(10), []crystal.SiteSpec{
		{Species: "Ti", Frac: [3]float64{0.5, 0.5, 0.5}},
		{Species: "O", Frac: [3]float64{0.6, 0.5, 0.5}},
		{Species: "O", Frac: [3]float64{0.4, 0.5, 0.5}},
	})

	polys, _ := polyhedra.Build(s, polyhedra.DefaultOptions())
	fmt.Println("polyhedra:", len(polys))
	fmt.Println("species:", polys[0].Species(), "ions:", polys[0].Size(), "CN:", polys[0].CoordinationNumber())

	// Output:
	// polyhedra: 1
	// species: Ti ions: 2 CN: 2
}
