// Package dfs implements cycle detection over the typed edges of a core.Graph.
// DetectCycles runs depth-first search with three-color marking and reports
// every cycle closed by a back edge. Self-loops count as cycles of length
// one. An edge never closes a cycle with its own reverse pair, so the
// companion edges created by CreateDirectedEdge(..., true) and
// CreateBidirectedEdge do not turn every link into a 2-cycle.
// Cycles are reported as their lexicographically minimal rotation via
// Booth's algorithm in O(L) time, and the final list is sorted.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (V=#nodes, E=#edges, C=#cycles, L=avg cycle length)
//   - Memory: O(V + L_max)     (recursion stack + state + cycle storage)
package dfs

import (
	"sort"

	"github.com/katalvlaran/graphlib/core"
)

// cycleFinder carries the DFS state shared by every recursive call.
type cycleFinder struct {
	set    *core.EdgeTypeSet   // edges that may form cycles
	state  []int8              // by node index: White, Gray, Black
	path   []string            // current DFS path (UIDs) for reconstruction
	seen   map[string]struct{} // deduplication set for cycle signatures
	cycles [][]string          // collected distinct cycles
}

// DetectCycles inspects the edges of g whose type is in set.
// Returns (true, cycles, nil) if any cycles are found, each closed
// ([v0, ..., v0]) and rotated to start at its smallest UID;
// if no cycles, returns (false, nil, nil). A nil graph is cycle-free.
func DetectCycles(g *core.Graph, set *core.EdgeTypeSet) (bool, [][]string, error) {
	// 1) Nil graph is treated as cycle-free
	if g == nil {
		return false, nil, nil
	}

	// 2) Prepare visitation state
	nodes := g.Nodes()
	f := &cycleFinder{
		set:   set,
		state: make([]int8, g.NodeSlots()),
		path:  make([]string, 0, len(nodes)),
		seen:  make(map[string]struct{}),
	}

	// 3) Launch DFS from each unvisited node in creation order
	for _, n := range nodes {
		if f.state[n.Index()] == White {
			f.visit(n, core.Edge{})
		}
	}

	// 4) Sort cycles lexicographically for a deterministic output order
	sort.Slice(f.cycles, func(i, j int) bool {
		return Compare(f.cycles[i], f.cycles[j]) < 0
	})

	// 5) Return whether any cycles were found
	if len(f.cycles) == 0 {
		return false, nil, nil
	}

	return true, f.cycles, nil
}

// visit performs recursive DFS from n. via is the edge used to reach n
// (zero for roots); its reverse pair is skipped.
func (f *cycleFinder) visit(n core.Node, via core.Edge) {
	// 1) Mark current node as Gray and push it onto the path
	f.state[n.Index()] = Gray
	f.path = append(f.path, n.UID())

	// 2) Explore each matching edge from n
	for _, e := range n.FindOutEdges(f.set) {
		if via.Valid() {
			if rev, ok := via.ReversePair(); ok && rev == e {
				continue
			}
		}
		to := e.To()
		switch f.state[to.Index()] {
		case White:
			f.visit(to, e)
		case Gray:
			// back edge: the path from 'to' to n plus e is a cycle
			f.record(to.UID())
		}
	}

	// 3) Backtrack: pop n from path stack and mark it Black
	f.path = f.path[:len(f.path)-1]
	f.state[n.Index()] = Black
}

// record extracts and deduplicates the cycle that ends at start.
//  1. Find index of start in path.
//  2. Extract the sub-slice path[idx:] and canonicalize it.
//  3. If the canonical signature has not been seen before, keep it.
func (f *cycleFinder) record(start string) {
	idx := IndexOf(f.path, start)
	sig, canon := canonical(f.path[idx:])
	if _, exists := f.seen[sig]; !exists {
		f.seen[sig] = struct{}{}
		f.cycles = append(f.cycles, canon)
	}
}

// canonical rotates the open cycle base to its minimal rotation and closes
// it by appending the first element. Direction is preserved: A→B→C→A and
// A→C→B→A are different cycles in a directed graph.
func canonical(base []string) (string, []string) {
	rot := MinimalRotation(base)
	closed := append(rot, rot[0])

	return JoinSig(closed), closed
}
