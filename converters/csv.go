package converters

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphlib/core"
)

// ErrCSVFormat is returned by ReadCSV for input it cannot turn into a graph.
var ErrCSVFormat = errors.New("converters: malformed CSV")

// CSV section markers and fixed columns.
const (
	csvHeader     = "@header"
	csvNodes      = "@node"
	csvEdges      = "@edge"
	csvUniqueName = "UniqueName"
	csvFrom       = "From"
	csvTo         = "To"
	csvDirection  = "Direction"
	csvPaired     = "Paired"
	// csvNA marks a column the row has no attribute for.
	csvNA = "N/A"
	// csvCompanion prefixes columns holding the companion's attributes.
	csvCompanion = "~"
)

var (
	csvEdgeColumns = []string{csvFrom, csvTo, csvDirection, csvPaired}
	segEscaper     = strings.NewReplacer("%", "%25", "/", "%2F", "|", "%7C", ":", "%3A", "~", "%7E")
	csvKinds       = map[string]core.Kind{
		"int": core.KindInt, "float": core.KindFloat, "string": core.KindString,
		"bool": core.KindBool, "composite": core.KindComposite,
	}
)

// escapeCell protects cells that would read back as a marker or as N/A.
func escapeCell(s string) string {
	if s == csvNA || strings.HasPrefix(s, "\\") || strings.HasPrefix(s, "@") {
		return "\\" + s
	}

	return s
}

func unescapeCell(s string) string { return strings.TrimPrefix(s, "\\") }

// segment renders one attribute level as name or name|context.
func segment(name, ctx string) string {
	if ctx == "" {
		return segEscaper.Replace(name)
	}

	return segEscaper.Replace(name) + "|" + segEscaper.Replace(ctx)
}

type csvCell struct{ key, value string }

// flattenAttrs lists l depth-first as (column key, cell) pairs. A composite
// yields a ":composite" cell ahead of its children.
func flattenAttrs(prefix string, l *core.Attributes, out []csvCell) []csvCell {
	for _, a := range l.All() {
		key := prefix + segment(a.Name, a.Context)
		switch a.Kind() {
		case core.KindComposite:
			out = append(out, csvCell{key + ":composite", ""})
			out = flattenAttrs(key+"/", a.Children(), out)
		case core.KindInt:
			v, _ := a.Int()
			out = append(out, csvCell{key + ":int", strconv.FormatInt(int64(v), 10)})
		case core.KindFloat:
			v, _ := a.Float()
			out = append(out, csvCell{key + ":float", strconv.FormatFloat(v, 'g', -1, 64)})
		case core.KindBool:
			v, _ := a.Bool()
			out = append(out, csvCell{key + ":bool", strconv.FormatBool(v)})
		default:
			v, _ := a.Str()
			out = append(out, csvCell{key + ":string", escapeCell(v)})
		}
	}

	return out
}

// csvLayout assigns attribute columns in order of first appearance. The n-th
// occurrence of a key within a row gets its own column.
type csvLayout struct {
	cols  []string
	index map[string]int
}

func (l *csvLayout) place(cells []csvCell) map[int]string {
	if l.index == nil {
		l.index = make(map[string]int)
	}
	seen := make(map[string]int, len(cells))
	row := make(map[int]string, len(cells))
	for _, c := range cells {
		id := c.key + "#" + strconv.Itoa(seen[c.key])
		seen[c.key]++
		i, ok := l.index[id]
		if !ok {
			i = len(l.cols)
			l.cols = append(l.cols, c.key)
			l.index[id] = i
		}
		row[i] = c.value
	}

	return row
}

func (l *csvLayout) fill(fixed []string, row map[int]string) []string {
	out := append([]string(nil), fixed...)
	for i := range l.cols {
		v, ok := row[i]
		if !ok {
			v = csvNA
		}
		out = append(out, v)
	}

	return out
}

// WriteCSV writes g as sectioned CSV: header entries, one @node section per
// node type, then one @edge section per edge type. Sections and rows follow
// creation order. Edge rows describe primaries; a paired companion lives in
// the same row under "~"-prefixed columns. Attribute columns are named
// path:kind, where path joins name|context levels with "/".
//
// Complexity: O(V + E) plus the attribute count.
func WriteCSV(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	cw := csv.NewWriter(w)
	for _, k := range g.HeaderKeys() {
		v, _ := g.HeaderInfo(k)
		if err := cw.Write([]string{csvHeader, escapeCell(k), escapeCell(v)}); err != nil {
			return fmt.Errorf("converters: write CSV: %w", err)
		}
	}

	var nodeTypes []core.NodeType
	nodesByType := make(map[core.NodeType][]core.Node)
	for _, n := range g.Nodes() {
		t := n.Type()
		if _, ok := nodesByType[t]; !ok {
			nodeTypes = append(nodeTypes, t)
		}
		nodesByType[t] = append(nodesByType[t], n)
	}
	for _, t := range nodeTypes {
		var lay csvLayout
		rows := make([]map[int]string, len(nodesByType[t]))
		for i, n := range nodesByType[t] {
			rows[i] = lay.place(flattenAttrs("", n.Attributes(), nil))
		}
		recs := [][]string{{csvNodes, escapeCell(string(t))}, append([]string{csvUniqueName}, lay.cols...)}
		for i, n := range nodesByType[t] {
			recs = append(recs, lay.fill([]string{escapeCell(n.UID())}, rows[i]))
		}
		if err := cw.WriteAll(recs); err != nil {
			return fmt.Errorf("converters: write CSV nodes %q: %w", t, err)
		}
	}

	var edgeTypes []string
	edgesByType := make(map[string][]core.Edge)
	for _, e := range g.Edges() {
		if !e.Primary() {
			continue
		}
		name := e.Type().Name
		if _, ok := edgesByType[name]; !ok {
			edgeTypes = append(edgeTypes, name)
		}
		edgesByType[name] = append(edgesByType[name], e)
	}
	for _, name := range edgeTypes {
		var lay csvLayout
		edges := edgesByType[name]
		rows := make([]map[int]string, len(edges))
		for i, e := range edges {
			cells := flattenAttrs("", e.Attributes(), nil)
			if pair, ok := e.ReversePair(); ok {
				cells = flattenAttrs(csvCompanion, pair.Attributes(), cells)
			}
			rows[i] = lay.place(cells)
		}
		recs := [][]string{{csvEdges, escapeCell(name)}, append(append([]string(nil), csvEdgeColumns...), lay.cols...)}
		for i, e := range edges {
			_, paired := e.ReversePair()
			fixed := []string{
				escapeCell(e.From().UID()), escapeCell(e.To().UID()),
				e.Type().Dir.String(), strconv.FormatBool(paired),
			}
			recs = append(recs, lay.fill(fixed, rows[i]))
		}
		if err := cw.WriteAll(recs); err != nil {
			return fmt.Errorf("converters: write CSV edges %q: %w", name, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("converters: write CSV: %w", err)
	}

	return nil
}

// csvColumn is a parsed attribute column header.
type csvColumn struct {
	raw       string
	companion bool
	name, ctx string
	kind      core.Kind
	key       string // path without kind
	parent    string // key of the enclosing composite, "" at top level
}

func parseColumn(raw string) (csvColumn, error) {
	c := csvColumn{raw: raw}
	s := raw
	if strings.HasPrefix(s, csvCompanion) {
		c.companion = true
		s = s[len(csvCompanion):]
	}
	i := strings.LastIndexByte(s, ':')
	if i < 0 {
		return c, fmt.Errorf("%w: column %q has no kind", ErrCSVFormat, raw)
	}
	kind, ok := csvKinds[s[i+1:]]
	if !ok {
		return c, fmt.Errorf("%w: column %q has unknown kind", ErrCSVFormat, raw)
	}
	c.kind = kind
	c.key = s[:i]
	last := c.key
	if j := strings.LastIndexByte(c.key, '/'); j >= 0 {
		c.parent, last = c.key[:j], c.key[j+1:]
	}
	name, ctx, _ := strings.Cut(last, "|")
	var err error
	if c.name, err = url.PathUnescape(name); err != nil {
		return c, fmt.Errorf("%w: column %q: %w", ErrCSVFormat, raw, err)
	}
	if c.ctx, err = url.PathUnescape(ctx); err != nil {
		return c, fmt.Errorf("%w: column %q: %w", ErrCSVFormat, raw, err)
	}
	if c.name == "" {
		return c, fmt.Errorf("%w: column %q has no name", ErrCSVFormat, raw)
	}

	return c, nil
}

func (c csvColumn) attr(cell string) (*core.Attribute, error) {
	switch c.kind {
	case core.KindInt:
		v, err := strconv.ParseInt(cell, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrCSVFormat, c.raw, err)
		}
		return core.NewInt(c.name, c.ctx, int32(v)), nil
	case core.KindFloat:
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrCSVFormat, c.raw, err)
		}
		return core.NewFloat(c.name, c.ctx, v), nil
	case core.KindBool:
		v, err := strconv.ParseBool(cell)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrCSVFormat, c.raw, err)
		}
		return core.NewBool(c.name, c.ctx, v), nil
	case core.KindComposite:
		return core.NewComposite(c.name, c.ctx), nil
	default:
		return core.NewString(c.name, c.ctx, unescapeCell(cell)), nil
	}
}

// rowAttrs rebuilds the top-level attributes of one side of a row. Children
// attach to the latest composite created for their parent path.
func rowAttrs(cols []csvColumn, cells []string, companion bool) ([]*core.Attribute, error) {
	var top []*core.Attribute
	last := make(map[string]*core.Attribute)
	for i, c := range cols {
		if c.companion != companion || cells[i] == csvNA {
			continue
		}
		a, err := c.attr(cells[i])
		if err != nil {
			return nil, err
		}
		if c.kind == core.KindComposite {
			last[c.key] = a
		}
		if c.parent == "" {
			top = append(top, a)
			continue
		}
		p, ok := last[c.parent]
		if !ok {
			return nil, fmt.Errorf("%w: %s has no enclosing composite", ErrCSVFormat, c.raw)
		}
		p.Children().Add(a)
	}

	return top, nil
}

type csvSection struct {
	edges bool
	typ   string
	ready bool
	width int
	cols  []csvColumn
}

func (s *csvSection) header(rec []string) error {
	fixed := []string{csvUniqueName}
	if s.edges {
		fixed = csvEdgeColumns
	}
	if len(rec) < len(fixed) {
		return fmt.Errorf("%w: short section header", ErrCSVFormat)
	}
	for i, f := range fixed {
		if rec[i] != f {
			return fmt.Errorf("%w: header column %d is %q, want %q", ErrCSVFormat, i, rec[i], f)
		}
	}
	s.cols = s.cols[:0]
	for _, raw := range rec[len(fixed):] {
		c, err := parseColumn(raw)
		if err != nil {
			return err
		}
		s.cols = append(s.cols, c)
	}
	s.width = len(rec)
	s.ready = true

	return nil
}

// ReadCSV builds a graph from the format written by WriteCSV. Edge rows may
// only name nodes declared in an earlier @node section.
func ReadCSV(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	g := core.NewGraph(opts...)
	var sec *csvSection
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return g, nil
		}
		if err != nil {
			return nil, fmt.Errorf("converters: read CSV: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if err = readCSVRecord(g, &sec, rec); err != nil {
			return nil, fmt.Errorf("converters: CSV line %d: %w", line, err)
		}
	}
}

func readCSVRecord(g *core.Graph, sec **csvSection, rec []string) error {
	switch rec[0] {
	case csvHeader:
		if len(rec) != 3 {
			return fmt.Errorf("%w: header entry needs key and value", ErrCSVFormat)
		}
		g.SetHeaderInfo(unescapeCell(rec[1]), unescapeCell(rec[2]))
		return nil
	case csvNodes, csvEdges:
		if len(rec) != 2 || rec[1] == "" {
			return fmt.Errorf("%w: section marker needs a type", ErrCSVFormat)
		}
		*sec = &csvSection{edges: rec[0] == csvEdges, typ: unescapeCell(rec[1])}
		return nil
	}
	s := *sec
	if s == nil {
		return fmt.Errorf("%w: row outside a section", ErrCSVFormat)
	}
	if !s.ready {
		return s.header(rec)
	}
	if len(rec) != s.width {
		return fmt.Errorf("%w: %d fields, header has %d", ErrCSVFormat, len(rec), s.width)
	}
	if s.edges {
		return readCSVEdge(g, s, rec)
	}

	n, err := g.CreateNode(unescapeCell(rec[0]), core.NodeType(s.typ))
	if err != nil {
		return err
	}
	attrs, err := rowAttrs(s.cols, rec[1:], false)
	if err != nil {
		return err
	}
	for _, a := range attrs {
		if err = n.AddAttribute(a); err != nil {
			return err
		}
	}

	return nil
}

func readCSVEdge(g *core.Graph, s *csvSection, rec []string) error {
	var ends [2]core.Node
	for i := range ends {
		uid := unescapeCell(rec[i])
		n, ok := g.FindNode(uid)
		if !ok {
			return fmt.Errorf("%w: %q", ErrNodeNotFound, uid)
		}
		ends[i] = n
	}
	dir, err := core.ParseDirection(rec[2])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCSVFormat, err)
	}
	paired, err := strconv.ParseBool(rec[3])
	if err != nil {
		return fmt.Errorf("%w: paired: %w", ErrCSVFormat, err)
	}

	var e core.Edge
	switch {
	case dir == core.Directional:
		e, err = g.CreateDirectedEdge(ends[0], ends[1], s.typ, paired)
	case dir == core.Bidirectional && paired:
		e, err = g.CreateBidirectedEdge(ends[0], ends[1], s.typ)
	default:
		return fmt.Errorf("%w: cannot build a %s edge with paired=%t", ErrCSVFormat, dir, paired)
	}
	if err != nil {
		return err
	}

	cells := rec[len(csvEdgeColumns):]
	attrs, err := rowAttrs(s.cols, cells, false)
	if err != nil {
		return err
	}
	for _, a := range attrs {
		if err = e.AddAttribute(a); err != nil {
			return err
		}
	}
	pattrs, err := rowAttrs(s.cols, cells, true)
	if err != nil {
		return err
	}
	if len(pattrs) == 0 {
		return nil
	}
	pair, ok := e.ReversePair()
	if !ok {
		return fmt.Errorf("%w: companion attributes on an unpaired edge", ErrCSVFormat)
	}
	for _, a := range pattrs {
		if err = pair.AddAttribute(a); err != nil {
			return err
		}
	}

	return nil
}
