package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"polyconn/crystal"
)

// structureDoc is the on-disk YAML shape of a structure description.
type structureDoc struct {
	Lattice struct {
		A []float64 `yaml:"a"`
		B []float64 `yaml:"b"`
		C []float64 `yaml:"c"`
	} `yaml:"lattice"`
	Sites []struct {
		Species string    `yaml:"species"`
		Coords  []float64 `yaml:"coords"`
	} `yaml:"sites"`
}

// loadStructure reads a YAML structure document into a crystal.Structure.
func loadStructure(path string) (*crystal.Structure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc structureDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	vecs, err := latticeVectors(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	lat, err := crystal.NewLattice(vecs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	specs := make([]crystal.SiteSpec, 0, len(doc.Sites))
	for i, site := range doc.Sites {
		if site.Species == "" {
			return nil, fmt.Errorf("%s: site %d: species must not be empty", path, i)
		}
		if len(site.Coords) != 3 {
			return nil, fmt.Errorf("%s: site %d: coords must have exactly 3 components", path, i)
		}
		specs = append(specs, crystal.SiteSpec{
			Species: site.Species,
			Frac:    [3]float64{site.Coords[0], site.Coords[1], site.Coords[2]},
		})
	}

	s, err := crystal.NewStructure(lat, specs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// latticeVectors validates and assembles the three lattice rows.
func latticeVectors(doc structureDoc) ([3][3]float64, error) {
	rows := [][]float64{doc.Lattice.A, doc.Lattice.B, doc.Lattice.C}
	var vecs [3][3]float64
	for i, row := range rows {
		if len(row) != 3 {
			return vecs, fmt.Errorf("lattice row %q must have exactly 3 components", string(rune('a'+i)))
		}
		copy(vecs[i][:], row)
	}

	return vecs, nil
}
