package converters

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/katalvlaran/graphlib/core"
)

// GraphMLNamespace is the xmlns of documents written by WriteGraphML.
const GraphMLNamespace = "http://graphml.graphdrawing.org/xmlns"

// GraphML data keys.
const (
	gmlNodeType = "d0"
	gmlEdgeType = "d1"
	gmlEdgeDir  = "d2"
)

type gmlDoc struct {
	XMLName xml.Name `xml:"graphml"`
	XMLNS   string   `xml:"xmlns,attr"`
	Keys    []gmlKey `xml:"key"`
	Graph   gmlGraph `xml:"graph"`
}

type gmlKey struct {
	ID   string `xml:"id,attr"`
	For  string `xml:"for,attr"`
	Name string `xml:"attr.name,attr"`
	Type string `xml:"attr.type,attr"`
}

type gmlGraph struct {
	ID          string    `xml:"id,attr"`
	EdgeDefault string    `xml:"edgedefault,attr"`
	Nodes       []gmlNode `xml:"node"`
	Edges       []gmlEdge `xml:"edge"`
}

type gmlNode struct {
	ID   string    `xml:"id,attr"`
	Data []gmlData `xml:"data"`
}

type gmlEdge struct {
	ID       string    `xml:"id,attr"`
	Source   string    `xml:"source,attr"`
	Target   string    `xml:"target,attr"`
	Directed string    `xml:"directed,attr,omitempty"`
	Data     []gmlData `xml:"data"`
}

type gmlData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// WriteGraphML writes g as a GraphML document. Nodes are keyed by UID and
// carry their type; edges carry type and direction. Only edges whose type is
// in set are written, or all edges when set is nil. A Bidirectional pair is
// written once, as an undirected edge.
//
// Complexity: O(V + E).
func WriteGraphML(w io.Writer, g *core.Graph, set *core.EdgeTypeSet) error {
	if g == nil {
		return ErrGraphNil
	}
	doc := gmlDoc{
		XMLNS: GraphMLNamespace,
		Keys: []gmlKey{
			{ID: gmlNodeType, For: "node", Name: "type", Type: "string"},
			{ID: gmlEdgeType, For: "edge", Name: "type", Type: "string"},
			{ID: gmlEdgeDir, For: "edge", Name: "direction", Type: "string"},
		},
		Graph: gmlGraph{ID: "G", EdgeDefault: "directed"},
	}
	for _, n := range g.Nodes() {
		doc.Graph.Nodes = append(doc.Graph.Nodes, gmlNode{
			ID:   n.UID(),
			Data: []gmlData{{Key: gmlNodeType, Value: string(n.Type())}},
		})
	}
	for _, e := range g.Edges() {
		t := e.Type()
		if set != nil && !set.Contains(t) {
			continue
		}
		ge := gmlEdge{
			ID:     fmt.Sprintf("e%d", len(doc.Graph.Edges)),
			Source: e.From().UID(),
			Target: e.To().UID(),
			Data: []gmlData{
				{Key: gmlEdgeType, Value: t.Name},
				{Key: gmlEdgeDir, Value: t.Dir.String()},
			},
		}
		if t.Dir == core.Bidirectional {
			if _, paired := e.ReversePair(); paired && !e.Primary() {
				continue
			}
			ge.Directed = "false"
		}
		doc.Graph.Edges = append(doc.Graph.Edges, ge)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("converters: write GraphML: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("converters: encode GraphML: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("converters: write GraphML: %w", err)
	}

	return nil
}
