// File: toposort.go
// Role: Topological ordering of equipment, used by the solver's opt-in
// ordered processing mode.
//
// Mineral circuits legitimately recirculate (cleaner tailings return to the
// rougher feed), so a back-edge is not an error here: the edge closing a
// cycle is skipped and the resulting order is topological for the acyclic
// remainder, with ties broken by equipment list position.
//
// Complexity:
//   - Time:   O(V + E) (each equipment and stream visited once)
//   - Memory: O(V)     (recursion stack and state map)

package core

// Visitation states for the three-color DFS.
const (
	white = iota // undiscovered
	gray         // on the current DFS path
	black        // fully explored
)

// topoSorter encapsulates state for one ordering traversal.
type topoSorter struct {
	fs    *Flowsheet
	next  map[string][]string // equipment ID → downstream equipment IDs
	state map[string]int
	order []string // post-order sequence, reversed on return
}

// TopologicalOrder returns equipment IDs so that, wherever the circuit is
// acyclic, upstream equipment precedes downstream equipment. Recirculating
// edges are tolerated (see file header). A nil flowsheet returns
// ErrNilFlowsheet.
func (fs *Flowsheet) TopologicalOrder() ([]string, error) {
	if fs == nil {
		return nil, ErrNilFlowsheet
	}

	// Build downstream adjacency from stream connectivity, preserving
	// stream list order for deterministic neighbor visits.
	next := make(map[string][]string, len(fs.Equipment))
	for _, s := range fs.Streams {
		if s.From == "" || s.To == "" {
			continue
		}
		next[s.From] = append(next[s.From], s.To)
	}

	sorter := &topoSorter{
		fs:    fs,
		next:  next,
		state: make(map[string]int, len(fs.Equipment)),
		order: make([]string, 0, len(fs.Equipment)),
	}

	// Drive DFS from every unvisited equipment, in list order.
	for _, e := range fs.Equipment {
		if sorter.state[e.ID] == white {
			sorter.visit(e.ID)
		}
	}

	// Reverse post-order to produce the topological order.
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, skipping back-edges (recirculation).
func (t *topoSorter) visit(id string) {
	if t.state[id] != white {
		// Gray means a recirculating edge closed a cycle: skip it.
		// Black means already fully explored.
		return
	}
	t.state[id] = gray

	for _, down := range t.next[id] {
		t.visit(down)
	}

	t.state[id] = black
	t.order = append(t.order, id)
}
