// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

import "github.com/katalvlaran/graphlib/core"

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodComplete     = "Complete"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"
)

//-----------------------------------------------------------------------------
// Labels
//-----------------------------------------------------------------------------

// DefaultNodeType labels nodes when WithNodeType is not given.
const DefaultNodeType core.NodeType = "Node"

// DefaultEdgeType labels edges when WithEdgeType is not given.
const DefaultEdgeType = "E"

// CenterNodeID is the UID of the hub node in Star.
const CenterNodeID = "Center"

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinPathNodes is the smallest meaningful size for a simple path.
// A path of fewer than 2 nodes has no edges.
const MinPathNodes = 2

// MinCycleNodes is the smallest size for a cycle. A 1-cycle is a self-loop
// and a 2-cycle is a pair of opposite edges; both are allowed in a
// multigraph, so only n ≥ 1 is required.
const MinCycleNodes = 1

// MinStarNodes is the smallest meaningful size for a star topology.
// A star requires one center plus at least one leaf (2 nodes total).
const MinStarNodes = 2

// MinCompleteNodes is the smallest size for Complete (K_1 has no edges).
const MinCompleteNodes = 1

// MinGridDim is the smallest allowed dimension (rows or cols) for a 2D Grid.
// A grid of size 1×1 has no edges, but is considered valid.
const MinGridDim = 1

// MinRandomNodes is the smallest node count for RandomSparse.
const MinRandomNodes = 1
