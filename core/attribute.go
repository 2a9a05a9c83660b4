// SPDX-License-Identifier: MIT
//
// File: attribute.go
// Role: tagged attribute variant and ordered attribute lists.
// Policy:
//   - The kind set is closed; persistence switches over it exhaustively.
//   - Composite attributes own their children.

package core

import "fmt"

// Kind selects the payload of an Attribute. The ordinals are stored in files.
type Kind uint8

const (
	KindInt Kind = iota
	KindFloat
	KindString
	KindComposite
	KindBool
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindComposite:
		return "composite"
	case KindBool:
		return "bool"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Valid reports whether k is a declared kind.
func (k Kind) Valid() bool { return k <= KindBool }

// Attribute is a named value scoped by an optional context string such as
// "metric" or "warning". Exactly one payload is meaningful, chosen by Kind.
type Attribute struct {
	Name    string
	Context string

	kind     Kind
	i        int32
	f        float64
	s        string
	b        bool
	children *Attributes
}

// NewInt returns an int attribute.
func NewInt(name, ctx string, v int32) *Attribute {
	return &Attribute{Name: name, Context: ctx, kind: KindInt, i: v}
}

// NewFloat returns a float attribute.
func NewFloat(name, ctx string, v float64) *Attribute {
	return &Attribute{Name: name, Context: ctx, kind: KindFloat, f: v}
}

// NewString returns a string attribute.
func NewString(name, ctx, v string) *Attribute {
	return &Attribute{Name: name, Context: ctx, kind: KindString, s: v}
}

// NewBool returns a bool attribute.
func NewBool(name, ctx string, v bool) *Attribute {
	return &Attribute{Name: name, Context: ctx, kind: KindBool, b: v}
}

// NewComposite returns a composite attribute owning children.
func NewComposite(name, ctx string, children ...*Attribute) *Attribute {
	a := &Attribute{Name: name, Context: ctx, kind: KindComposite, children: &Attributes{}}
	for _, c := range children {
		a.children.Add(c)
	}

	return a
}

// Kind returns the payload kind.
func (a *Attribute) Kind() Kind { return a.kind }

// Int returns the int payload; ok is false for other kinds.
func (a *Attribute) Int() (v int32, ok bool) { return a.i, a.kind == KindInt }

// Float returns the float payload; ok is false for other kinds.
func (a *Attribute) Float() (v float64, ok bool) { return a.f, a.kind == KindFloat }

// Str returns the string payload; ok is false for other kinds.
func (a *Attribute) Str() (v string, ok bool) { return a.s, a.kind == KindString }

// Bool returns the bool payload; ok is false for other kinds.
func (a *Attribute) Bool() (v, ok bool) { return a.b, a.kind == KindBool }

func (a *Attribute) want(k Kind) error {
	if a.kind != k {
		return fmt.Errorf("%w: %q is %s, not %s", ErrAttributeKind, a.Name, a.kind, k)
	}

	return nil
}

// SetInt replaces the int payload.
func (a *Attribute) SetInt(v int32) error {
	if err := a.want(KindInt); err != nil {
		return err
	}
	a.i = v

	return nil
}

// IncInt adds d to the int payload, wrapping on overflow like int32 arithmetic.
func (a *Attribute) IncInt(d int32) error {
	if err := a.want(KindInt); err != nil {
		return err
	}
	a.i += d

	return nil
}

// SetFloat replaces the float payload.
func (a *Attribute) SetFloat(v float64) error {
	if err := a.want(KindFloat); err != nil {
		return err
	}
	a.f = v

	return nil
}

// IncFloat adds d to the float payload.
func (a *Attribute) IncFloat(d float64) error {
	if err := a.want(KindFloat); err != nil {
		return err
	}
	a.f += d

	return nil
}

// SetString replaces the string payload.
func (a *Attribute) SetString(v string) error {
	if err := a.want(KindString); err != nil {
		return err
	}
	a.s = v

	return nil
}

// SetBool replaces the bool payload.
func (a *Attribute) SetBool(v bool) error {
	if err := a.want(KindBool); err != nil {
		return err
	}
	a.b = v

	return nil
}

// Children returns the owned list of a composite, or nil for other kinds.
func (a *Attribute) Children() *Attributes {
	if a.kind != KindComposite {
		return nil
	}

	return a.children
}

// Child returns the first direct child named name.
func (a *Attribute) Child(name string) (*Attribute, bool) {
	if a.kind != KindComposite {
		return nil, false
	}

	return a.children.First(name)
}

// Value returns the payload as a plain Go value; composites yield a
// name → value map of their children (first child wins on duplicate names).
func (a *Attribute) Value() any {
	switch a.kind {
	case KindInt:
		return a.i
	case KindFloat:
		return a.f
	case KindString:
		return a.s
	case KindBool:
		return a.b
	default:
		m := make(map[string]any, a.children.Len())
		for _, c := range a.children.All() {
			if _, dup := m[c.Name]; !dup {
				m[c.Name] = c.Value()
			}
		}
		return m
	}
}

// Equal reports deep equality of name, context, kind and payload.
func (a *Attribute) Equal(b *Attribute) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Name != b.Name || a.Context != b.Context || a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindInt:
		return a.i == b.i
	case KindFloat:
		return a.f == b.f
	case KindString:
		return a.s == b.s
	case KindBool:
		return a.b == b.b
	default:
		return a.children.Equal(b.children)
	}
}

// clone deep-copies a.
func (a *Attribute) clone() *Attribute {
	cp := *a
	if a.kind == KindComposite {
		cp.children = a.children.clone()
	}

	return &cp
}

// Attributes is an ordered attribute list. The zero value is empty and ready
// to use.
type Attributes struct {
	list []*Attribute
}

// Add appends a; nil is ignored.
func (l *Attributes) Add(a *Attribute) {
	if a != nil {
		l.list = append(l.list, a)
	}
}

// Delete removes a (by identity) and reports whether it was present.
func (l *Attributes) Delete(a *Attribute) bool {
	for i, x := range l.list {
		if x == a {
			l.list = append(l.list[:i], l.list[i+1:]...)
			return true
		}
	}

	return false
}

// Len returns the number of attributes.
func (l *Attributes) Len() int {
	if l == nil {
		return 0
	}

	return len(l.list)
}

// All returns the attributes in insertion order.
func (l *Attributes) All() []*Attribute {
	if l == nil {
		return nil
	}
	out := make([]*Attribute, len(l.list))
	copy(out, l.list)

	return out
}

func (l *Attributes) filter(keep func(*Attribute) bool) []*Attribute {
	var out []*Attribute
	if l == nil {
		return out
	}
	for _, a := range l.list {
		if keep(a) {
			out = append(out, a)
		}
	}

	return out
}

// Find returns the attributes matching kind, name and context exactly.
func (l *Attributes) Find(kind Kind, name, ctx string) []*Attribute {
	return l.filter(func(a *Attribute) bool {
		return a.kind == kind && a.Name == name && a.Context == ctx
	})
}

// FindByName returns the attributes named name.
func (l *Attributes) FindByName(name string) []*Attribute {
	return l.filter(func(a *Attribute) bool { return a.Name == name })
}

// FindByContext returns the attributes whose context is ctx.
func (l *Attributes) FindByContext(ctx string) []*Attribute {
	return l.filter(func(a *Attribute) bool { return a.Context == ctx })
}

// FindByKind returns the attributes of kind k.
func (l *Attributes) FindByKind(k Kind) []*Attribute {
	return l.filter(func(a *Attribute) bool { return a.kind == k })
}

// First returns the first attribute named name.
func (l *Attributes) First(name string) (*Attribute, bool) {
	if l == nil {
		return nil, false
	}
	for _, a := range l.list {
		if a.Name == name {
			return a, true
		}
	}

	return nil, false
}

// Path descends through composites by name: Path("a", "b") is the first
// child "b" of the first attribute "a".
func (l *Attributes) Path(names ...string) (*Attribute, bool) {
	if len(names) == 0 {
		return nil, false
	}
	cur, ok := l.First(names[0])
	for _, n := range names[1:] {
		if !ok {
			return nil, false
		}
		cur, ok = cur.Child(n)
	}

	return cur, ok
}

// Equal reports element-wise deep equality.
func (l *Attributes) Equal(o *Attributes) bool {
	if l.Len() != o.Len() {
		return false
	}
	for i := 0; i < l.Len(); i++ {
		if !l.list[i].Equal(o.list[i]) {
			return false
		}
	}

	return true
}

func (l *Attributes) clone() *Attributes {
	out := &Attributes{}
	if l == nil {
		return out
	}
	out.list = make([]*Attribute, len(l.list))
	for i, a := range l.list {
		out.list[i] = a.clone()
	}

	return out
}
