// SPDX-License-Identifier: MIT
//
// File: persist.go
// Role: binary save/load of a whole Graph.
// Layout (little-endian):
//   header   int32 n, n × (short-string key, short-string value), keys sorted
//   strings  STRTBL block, only entries tagged StrToSave
//   nodes    (int32 uid, int32 type, attrs)* terminated by int32 0, int32 0
//   edges    (int32 type, uint8 dir, int32 from, int32 to, bool paired,
//             attrs, [pair attrs])* terminated by int32 0
//   attrs    int32 n, n × (uint8 kind, int32 name, int32 context, payload)
// Policy:
//   - Edges are written in global creation order and only as primaries, so
//     replaying them restores every incidence list in its original order.
//   - Load builds a fresh graph and swaps it in; a failed load leaves the
//     receiver untouched.

package core

import (
	"fmt"
	"io"

	"github.com/katalvlaran/graphlib/binio"
	"github.com/katalvlaran/graphlib/strtable"
)

// Save writes g to w.
func (g *Graph) Save(w io.Writer) error {
	bw := binio.NewWriter(w)
	if err := g.save(bw); err != nil {
		return err
	}

	return bw.Flush()
}

// SaveBinary writes g to the file at path.
func (g *Graph) SaveBinary(path string) error {
	return g.saveFile(path, false)
}

// SaveBinaryZipped writes g to the file at path as a single zlib stream.
func (g *Graph) SaveBinaryZipped(path string) error {
	return g.saveFile(path, true)
}

func (g *Graph) saveFile(path string, zipped bool) error {
	w, err := binio.Create(path)
	if err != nil {
		return err
	}
	if zipped {
		if err = w.SetZippedWriteMode(); err != nil {
			_ = w.Close()
			return err
		}
	}
	if err = g.save(w); err != nil {
		_ = w.Close()
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}
	g.log.Debug("graph saved", "path", path, "zipped", zipped,
		"nodes", g.liveNodes, "edges", g.liveEdges, "strings", g.strs.Len())

	return nil
}

// Load replaces the content of g with the graph read from r. The receiver's
// options (logger, bucket count default) are kept.
func (g *Graph) Load(r io.Reader) error {
	return g.load(binio.NewReader(r))
}

// LoadBinary replaces the content of g with the graph stored at path.
func (g *Graph) LoadBinary(path string) error {
	return g.loadFile(path, false)
}

// LoadBinaryZipped is LoadBinary for files written by SaveBinaryZipped.
func (g *Graph) LoadBinaryZipped(path string) error {
	return g.loadFile(path, true)
}

func (g *Graph) loadFile(path string, zipped bool) (err error) {
	r, err := binio.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := r.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if zipped {
		if err = r.SetZippedReadMode(); err != nil {
			return err
		}
	}
	if err = g.load(r); err != nil {
		return fmt.Errorf("core: load %q: %w", path, err)
	}
	g.log.Debug("graph loaded", "path", path, "zipped", zipped,
		"nodes", g.liveNodes, "edges", g.liveEdges, "strings", g.strs.Len())

	return nil
}

// ReadGraph builds a new graph from r.
func ReadGraph(r io.Reader, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	if err := g.Load(r); err != nil {
		return nil, err
	}

	return g, nil
}

// tagAttrs interns every string an attribute tree carries.
func (g *Graph) tagAttrs(l *Attributes) error {
	for _, a := range l.All() {
		for _, s := range []string{a.Name, a.Context} {
			if _, err := g.intern(s); err != nil {
				return err
			}
		}
		switch a.kind {
		case KindString:
			if _, err := g.intern(a.s); err != nil {
				return err
			}
		case KindComposite:
			if err := g.tagAttrs(a.children); err != nil {
				return err
			}
		}
	}

	return nil
}

// tagAll makes sure every string the records refer to is in the table and
// tagged StrToSave, so the filtered table block resolves all of them.
func (g *Graph) tagAll() error {
	for id := range g.nodes {
		rec := &g.nodes[id]
		if !rec.alive {
			continue
		}
		g.strs.SetKeyType(rec.uid, strtable.StrToSave)
		g.strs.SetKeyType(rec.typ, strtable.StrToSave)
		if err := g.tagAttrs(rec.attrs); err != nil {
			return err
		}
	}
	for id := range g.edges {
		rec := &g.edges[id]
		if !rec.alive {
			continue
		}
		g.strs.SetKeyType(rec.typ, strtable.StrToSave)
		if err := g.tagAttrs(rec.attrs); err != nil {
			return err
		}
	}

	return nil
}

func (g *Graph) save(w *binio.Writer) error {
	if err := g.tagAll(); err != nil {
		return fmt.Errorf("core: save: %w", err)
	}

	keys := g.HeaderKeys()
	if err := w.WriteInt32(int32(len(keys))); err != nil {
		return fmt.Errorf("core: save header: %w", err)
	}
	for _, k := range keys {
		if err := w.WriteShortString(k); err != nil {
			return fmt.Errorf("core: save header key %q: %w", k, err)
		}
		if err := w.WriteShortString(g.header[k]); err != nil {
			return fmt.Errorf("core: save header value of %q: %w", k, err)
		}
	}

	if err := g.strs.Save(w, strtable.StrToSave); err != nil {
		return fmt.Errorf("core: save: %w", err)
	}

	for id := range g.nodes {
		rec := &g.nodes[id]
		if !rec.alive {
			continue
		}
		if err := g.saveNode(w, rec); err != nil {
			return fmt.Errorf("core: save node %q: %w", g.strs.Get(rec.uid), err)
		}
	}
	if err := writeInt32s(w, 0, 0); err != nil {
		return fmt.Errorf("core: save node terminator: %w", err)
	}

	for id := range g.edges {
		rec := &g.edges[id]
		if !rec.alive || !rec.primary {
			continue
		}
		if err := g.saveEdge(w, rec); err != nil {
			return fmt.Errorf("core: save edge %d: %w", id, err)
		}
	}
	if err := w.WriteInt32(0); err != nil {
		return fmt.Errorf("core: save edge terminator: %w", err)
	}

	return nil
}

func writeInt32s(w *binio.Writer, vs ...int32) error {
	for _, v := range vs {
		if err := w.WriteInt32(v); err != nil {
			return err
		}
	}

	return nil
}

func (g *Graph) saveNode(w *binio.Writer, rec *nodeRec) error {
	if err := writeInt32s(w, int32(rec.uid), int32(rec.typ)); err != nil {
		return err
	}

	return g.saveAttrs(w, rec.attrs)
}

func (g *Graph) saveEdge(w *binio.Writer, rec *edgeRec) error {
	if err := w.WriteInt32(int32(rec.typ)); err != nil {
		return err
	}
	if err := w.WriteUint8(uint8(rec.dir)); err != nil {
		return err
	}
	if err := writeInt32s(w, int32(g.nodes[rec.from].uid), int32(g.nodes[rec.to].uid)); err != nil {
		return err
	}
	paired := rec.pair != noPair && g.edges[rec.pair].alive
	if err := w.WriteBool(paired); err != nil {
		return err
	}
	if err := g.saveAttrs(w, rec.attrs); err != nil {
		return err
	}
	if paired {
		return g.saveAttrs(w, g.edges[rec.pair].attrs)
	}

	return nil
}

func (g *Graph) saveAttrs(w *binio.Writer, l *Attributes) error {
	if err := w.WriteInt32(int32(l.Len())); err != nil {
		return err
	}
	for _, a := range l.All() {
		if err := g.saveAttr(w, a); err != nil {
			return fmt.Errorf("attribute %q: %w", a.Name, err)
		}
	}

	return nil
}

func (g *Graph) saveAttr(w *binio.Writer, a *Attribute) error {
	if err := w.WriteUint8(uint8(a.kind)); err != nil {
		return err
	}
	if err := writeInt32s(w, int32(g.strs.Lookup(a.Name)), int32(g.strs.Lookup(a.Context))); err != nil {
		return err
	}
	switch a.kind {
	case KindInt:
		return w.WriteInt32(a.i)
	case KindFloat:
		return w.WriteFloat64(a.f)
	case KindString:
		return w.WriteInt32(int32(g.strs.Lookup(a.s)))
	case KindBool:
		return w.WriteBool(a.b)
	case KindComposite:
		return g.saveAttrs(w, a.children)
	default:
		return fmt.Errorf("%w: attribute kind %d", ErrBadRecord, a.kind)
	}
}

// loader carries the graph under construction.
type loader struct {
	g *Graph
	r *binio.Reader
}

func (g *Graph) load(r *binio.Reader) error {
	fresh := NewGraph(WithBuckets(g.buckets), WithLogger(g.log))
	ld := &loader{g: fresh, r: r}

	if err := ld.header(); err != nil {
		return err
	}
	if err := fresh.strs.Load(r); err != nil {
		return fmt.Errorf("core: load: %w", err)
	}
	fresh.buckets = fresh.strs.Buckets()
	retag(fresh.strs)
	if err := ld.nodes(); err != nil {
		return err
	}
	if err := ld.edges(); err != nil {
		return err
	}

	*g = *fresh

	return nil
}

// retag marks every loaded entry StrToSave again: the block only held such
// entries, and a later save must write the same set.
func retag(t *strtable.Table) {
	var keys []strtable.Key
	t.Range(func(k strtable.Key, _ string, _ strtable.StrType) bool {
		keys = append(keys, k)
		return true
	})
	for _, k := range keys {
		t.SetKeyType(k, strtable.StrToSave)
	}
}

func (ld *loader) header() error {
	n, err := ld.r.ReadInt32()
	if err != nil {
		return fmt.Errorf("core: load header: %w", err)
	}
	if n < 0 {
		return fmt.Errorf("%w: header count %d", ErrBadRecord, n)
	}
	for i := int32(0); i < n; i++ {
		k, err := ld.r.ReadShortString()
		if err != nil {
			return fmt.Errorf("core: load header key: %w", err)
		}
		v, err := ld.r.ReadShortString()
		if err != nil {
			return fmt.Errorf("core: load header value of %q: %w", k, err)
		}
		ld.g.header[k] = v
	}

	return nil
}

// key reads a string-table key and checks that it resolves.
func (ld *loader) key(what string) (strtable.Key, error) {
	v, err := ld.r.ReadInt32()
	if err != nil {
		return 0, fmt.Errorf("core: load %s: %w", what, err)
	}
	k := strtable.Key(v)
	if k != 0 && !ld.g.strs.Has(k) {
		return 0, fmt.Errorf("%w: %s refers to unknown string %#08x", ErrBadRecord, what, uint32(v))
	}

	return k, nil
}

func (ld *loader) nodes() error {
	g := ld.g
	for {
		uid, err := ld.key("node uid")
		if err != nil {
			return err
		}
		typ, err := ld.key("node type")
		if err != nil {
			return err
		}
		if uid == 0 && typ == 0 {
			return nil
		}
		if uid == 0 {
			return fmt.Errorf("%w: node without uid", ErrBadRecord)
		}
		if _, dup := g.byUID[uid]; dup {
			return fmt.Errorf("%w: %w: %q", ErrBadRecord, ErrNodeExists, g.strs.Get(uid))
		}
		id := g.addNode(uid, typ)
		if err := ld.attrs(g.nodes[id].attrs); err != nil {
			return fmt.Errorf("core: load node %q: %w", g.strs.Get(uid), err)
		}
	}
}

// endpoint resolves a UID key, creating an __INVALID__ node for UIDs that no
// node record declared.
func (ld *loader) endpoint(uid strtable.Key) (int32, error) {
	g := ld.g
	if uid == 0 {
		return 0, fmt.Errorf("%w: edge endpoint without uid", ErrBadRecord)
	}
	if id, ok := g.byUID[uid]; ok {
		return id, nil
	}
	tk, err := g.intern(string(InvalidNodeType))
	if err != nil {
		return 0, err
	}
	g.log.Warn("edge refers to undeclared node", "uid", g.strs.Get(uid), "type", InvalidNodeType)

	return g.addNode(uid, tk), nil
}

func (ld *loader) edges() error {
	g := ld.g
	for {
		typ, err := ld.key("edge type")
		if err != nil {
			return err
		}
		if typ == 0 {
			return nil
		}
		d, err := ld.r.ReadUint8()
		if err != nil {
			return fmt.Errorf("core: load edge direction: %w", err)
		}
		dir := Direction(d)
		if !dir.Valid() {
			return fmt.Errorf("%w: edge direction %d", ErrBadRecord, d)
		}
		fromKey, err := ld.key("edge source")
		if err != nil {
			return err
		}
		toKey, err := ld.key("edge target")
		if err != nil {
			return err
		}
		paired, err := ld.r.ReadBool()
		if err != nil {
			return fmt.Errorf("core: load edge pair flag: %w", err)
		}
		from, err := ld.endpoint(fromKey)
		if err != nil {
			return err
		}
		to, err := ld.endpoint(toKey)
		if err != nil {
			return err
		}

		id := g.link(from, to, typ, dir, paired)
		if err := ld.attrs(g.edges[id].attrs); err != nil {
			return fmt.Errorf("core: load edge %d: %w", id, err)
		}
		if paired {
			if err := ld.attrs(g.edges[g.edges[id].pair].attrs); err != nil {
				return fmt.Errorf("core: load edge %d pair: %w", id, err)
			}
		}
	}
}

func (ld *loader) attrs(l *Attributes) error {
	n, err := ld.r.ReadInt32()
	if err != nil {
		return fmt.Errorf("attribute count: %w", err)
	}
	if n < 0 {
		return fmt.Errorf("%w: attribute count %d", ErrBadRecord, n)
	}
	for i := int32(0); i < n; i++ {
		a, err := ld.attr()
		if err != nil {
			return err
		}
		l.Add(a)
	}

	return nil
}

func (ld *loader) attr() (*Attribute, error) {
	k, err := ld.r.ReadUint8()
	if err != nil {
		return nil, fmt.Errorf("attribute kind: %w", err)
	}
	kind := Kind(k)
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: attribute kind %d", ErrBadRecord, k)
	}
	nameKey, err := ld.key("attribute name")
	if err != nil {
		return nil, err
	}
	ctxKey, err := ld.key("attribute context")
	if err != nil {
		return nil, err
	}
	a := &Attribute{Name: ld.g.strs.Get(nameKey), Context: ld.g.strs.Get(ctxKey), kind: kind}

	switch kind {
	case KindInt:
		a.i, err = ld.r.ReadInt32()
	case KindFloat:
		a.f, err = ld.r.ReadFloat64()
	case KindString:
		var sk strtable.Key
		sk, err = ld.key("attribute value")
		a.s = ld.g.strs.Get(sk)
	case KindBool:
		a.b, err = ld.r.ReadBool()
	case KindComposite:
		a.children = &Attributes{}
		err = ld.attrs(a.children)
	}
	if err != nil {
		return nil, fmt.Errorf("attribute %q: %w", a.Name, err)
	}

	return a, nil
}
