// Package dfs implements depth-first search (single-source and forest) on
// core.Graph in three event modes: combined, preorder and postorder.
//
// Key features:
//   - Traverse(g, start, set, v, opts...): OnNodePre, OnEdge, OnNodePost
//   - Preorder: same walk, OnNodePost never fires
//   - Postorder: same walk, OnNodePre never fires
//   - Only outgoing edges whose type is in set are followed, in creation order
//   - Cancellation via context.Context, depth limit, forest traversal
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus the cost of visitor callbacks.
//   - Memory: O(V) for recursion stack and metadata.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrInvalidStart           if start is not a live node of g.
//   - core.ErrNilVisitor        if v is nil.
//   - ErrOptionViolation        if an option is invalid.
//   - context.Canceled          if ctx is done.
//   - any error returned by the visitor, wrapped.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphlib/core"
)

// mode selects which node events a walk emits.
type mode struct {
	pre, post bool
}

var (
	combined  = mode{pre: true, post: true}
	preorder  = mode{pre: true}
	postorder = mode{post: true}
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph       // underlying graph
	set     *core.EdgeTypeSet // edge filter
	visitor core.Visitor      // event sink
	mode    mode              // which node events fire
	opts    DFSOptions        // traversal options
	visited []bool            // indexed by core.Node.Index
	res     *DFSResult        // result collector
}

// Traverse performs a combined depth-first walk: OnNodePre when a node is
// first reached, OnEdge for every matching outgoing edge (recursing into
// unvisited targets immediately), then OnNodePost.
func Traverse(g *core.Graph, start core.Node, set *core.EdgeTypeSet, v core.Visitor, opts ...Option) (*DFSResult, error) {
	return run(g, start, set, v, combined, opts)
}

// Preorder walks like Traverse but never calls OnNodePost.
func Preorder(g *core.Graph, start core.Node, set *core.EdgeTypeSet, v core.Visitor, opts ...Option) (*DFSResult, error) {
	return run(g, start, set, v, preorder, opts)
}

// Postorder walks like Traverse but never calls OnNodePre. OnNodePost
// events come out in strict completion order.
func Postorder(g *core.Graph, start core.Node, set *core.EdgeTypeSet, v core.Visitor, opts ...Option) (*DFSResult, error) {
	return run(g, start, set, v, postorder, opts)
}

func run(g *core.Graph, start core.Node, set *core.EdgeTypeSet, v core.Visitor, m mode, opts []Option) (*DFSResult, error) {
	// 1. Validate inputs
	if g == nil {
		return nil, ErrGraphNil
	}
	if v == nil {
		return nil, core.ErrNilVisitor
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}
	if !start.Valid() || start.Graph() != g {
		return nil, ErrInvalidStart
	}

	// 3. Initialize result with capacity hint
	n := g.NodeCount()
	res := &DFSResult{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}
	w := &dfsWalker{
		graph:   g,
		set:     set,
		visitor: v,
		mode:    m,
		opts:    dopts,
		visited: make([]bool, g.NodeSlots()),
		res:     res,
	}

	// 4. Traverse: start tree, then the rest of the forest if requested
	if err := w.traverse(start, 0); err != nil {
		return res, err
	}
	if dopts.FullTraversal {
		for _, node := range g.Nodes() {
			if w.visited[node.Index()] {
				continue
			}
			if err := w.traverse(node, 0); err != nil {
				return res, err
			}
		}
	}

	return res, nil
}

// traverse visits n at the given depth, recursing into unvisited targets of
// matching outgoing edges.
func (w *dfsWalker) traverse(n core.Node, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited before any callback so cycles terminate
	uid := n.UID()
	w.visited[n.Index()] = true
	w.res.Depth[uid] = depth

	// 3. Pre-order event
	if w.mode.pre {
		if err := w.visitor.OnNodePre(n); err != nil {
			return fmt.Errorf("dfs: OnNodePre %q: %w", uid, err)
		}
	}

	// 4. Explore each matching edge in creation order
	for _, e := range n.FindOutEdges(w.set) {
		if err := w.visitor.OnEdge(e); err != nil {
			return fmt.Errorf("dfs: OnEdge %s: %w", e, err)
		}
		to := e.To()
		if w.visited[to.Index()] {
			continue
		}
		// Depth limit: report the edge, do not descend
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[to.UID()] = uid
		if err := w.traverse(to, depth+1); err != nil {
			return err
		}
	}

	// 5. Post-order event
	if w.mode.post {
		if err := w.visitor.OnNodePost(n); err != nil {
			return fmt.Errorf("dfs: OnNodePost %q: %w", uid, err)
		}
	}

	// 6. Record finish order
	w.res.Order = append(w.res.Order, uid)

	return nil
}
