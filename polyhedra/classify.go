package polyhedra

// Classify tallies connectivity classes per cation species over a full
// directed pairwise scan of the polyhedron list (reflected copies
// included, no deduplication).
//
// For each polyhedron p, every other polyhedron q sharing ions with p
// increments p's species bucket for that pair's class; if no q shares any
// ions, p increments its species' isolated bucket instead. Each directed
// pair therefore lands in exactly one bucket or none, and one undirected
// contact is counted once from each side: the histogram holds connection
// instances per cation species, not unique connected pairs.
//
// Never fails on well-formed input; an empty list yields an empty map.
// Idempotent over an immutable polyhedron list.
// Complexity: O(n²×k) time for n polyhedra with k peripheral ions each.
func Classify(polyhedra []*Polyhedron) Histogram {
	hist := make(Histogram)
	for _, p := range polyhedra {
		counts := hist[p.Species()]
		connected := false
		for _, q := range polyhedra {
			shared := p.SharedWith(q)
			if shared <= 0 {
				continue
			}
			counts[ClassOf(shared)]++
			connected = true
		}
		if !connected {
			counts[Isolated]++
		}
		hist[p.Species()] = counts
	}

	return hist
}

// ConnectedTo returns every polyhedron in all that shares at least one
// peripheral ion with target, paired with the shared-ion count. The target
// itself (same center site) is skipped.
// Complexity: O(n×k).
func ConnectedTo(target *Polyhedron, all []*Polyhedron) []Connection {
	var connected []Connection
	for _, q := range all {
		if shared := target.SharedWith(q); shared > 0 {
			connected = append(connected, Connection{Polyhedron: q, Shared: shared})
		}
	}

	return connected
}
