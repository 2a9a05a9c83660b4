// Package builder provides internal helper functions used by Constructor
// implementations to create nodes and edges through the core API.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: every error is prefixed with the constructor name.
package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/graphlib/core"
)

// addNodes creates nodes cfg.idFn(0..n-1) of cfg.nodeType in index order,
// attaching cfg.attrFn(i) when set, and returns their handles.
//
// Complexity: O(n) time and space.
func addNodes(g *core.Graph, n int, cfg builderConfig, method string) ([]core.Node, error) {
	nodes := make([]core.Node, n)
	for i := 0; i < n; i++ {
		node, err := addNode(g, cfg.idFn(i), i, cfg, method)
		if err != nil {
			return nil, err
		}
		nodes[i] = node
	}

	return nodes, nil
}

// addNode creates a single node uid with the attributes for index idx.
func addNode(g *core.Graph, uid string, idx int, cfg builderConfig, method string) (core.Node, error) {
	n, err := g.CreateNode(uid, cfg.nodeType)
	if err != nil {
		return core.Node{}, fmt.Errorf("%s: CreateNode(%s): %w", method, uid, err)
	}
	if cfg.attrFn != nil {
		for _, a := range cfg.attrFn(idx) {
			if err = n.AddAttribute(a); err != nil {
				return core.Node{}, fmt.Errorf("%s: AddAttribute(%s): %w", method, uid, err)
			}
		}
	}

	return n, nil
}

// link creates one edge u→v according to the configured edge kind:
// a Bidirectional pair, a Directional edge with its Reverse companion, or a
// lone Directional edge.
func link(g *core.Graph, u, v core.Node, cfg builderConfig, method string) error {
	var err error
	if cfg.bidirected {
		_, err = g.CreateBidirectedEdge(u, v, cfg.edgeType)
	} else {
		_, err = g.CreateDirectedEdge(u, v, cfg.edgeType, cfg.reverse)
	}
	if err != nil {
		return fmt.Errorf("%s: edge %s→%s: %w", method, u.UID(), v.UID(), err)
	}

	return nil
}

// gridNodeID formats a 2D grid coordinate as "r,c".
// Example: gridNodeID(0,1) → "0,1".
func gridNodeID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
