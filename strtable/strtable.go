package strtable

import (
	"fmt"

	"github.com/google/btree"
)

// MaxBuckets caps the bucket count; the hash is 16 bits wide, so more buckets
// than hash values would never be used.
const MaxBuckets uint32 = 1 << 16

// btreeDegree is the B-tree fan-out used inside every bucket.
const btreeDegree = 16

// entry is one interned string.
type entry struct {
	key   Key
	value string
	typ   StrType
}

func lessEntry(a, b *entry) bool { return a.key < b.key }

// bucket holds the entries whose hash maps to it, ordered by key.
type bucket struct {
	tree *btree.BTreeG[*entry]
	next uint16 // sequence number handed out by the next insertion
}

func newBucket(next uint16) bucket {
	return bucket{tree: btree.NewG[*entry](btreeDegree, lessEntry), next: next}
}

// Table is a bucketed string interning table.
type Table struct {
	buckets []bucket
}

// New returns an empty Table with n buckets. n == 0 selects DefaultBuckets;
// values above MaxBuckets are clamped.
func New(n uint32) *Table {
	switch {
	case n == 0:
		n = DefaultBuckets
	case n > MaxBuckets:
		n = MaxBuckets
	}
	t := &Table{buckets: make([]bucket, n)}
	for i := range t.buckets {
		t.buckets[i] = newBucket(1)
	}

	return t
}

// Buckets reports the number of buckets.
func (t *Table) Buckets() uint32 { return uint32(len(t.buckets)) }

// Len reports how many strings are interned.
func (t *Table) Len() int {
	n := 0
	for i := range t.buckets {
		n += t.buckets[i].tree.Len()
	}

	return n
}

func (t *Table) bucketForHash(h uint16) *bucket {
	return &t.buckets[uint32(h)%uint32(len(t.buckets))]
}

func (t *Table) bucketForKey(k Key) *bucket {
	return &t.buckets[(uint32(k)>>16)%uint32(len(t.buckets))]
}

// find scans the key range owned by hash h for an exact match of s.
func (b *bucket) find(h uint16, s string) *entry {
	var found *entry
	pivot := &entry{key: Key(int32(uint32(h) << 16))}
	b.tree.AscendGreaterOrEqual(pivot, func(e *entry) bool {
		if uint16(uint32(e.key)>>16) != h {
			return false
		}
		if e.value == s {
			found = e
			return false
		}

		return true
	})

	return found
}

// insert allocates the next key in b for s.
func (b *bucket) insert(h uint16, s string, typ StrType) (*entry, error) {
	if b.next >= maxSeq {
		return nil, fmt.Errorf("%w: hash %#04x", ErrBucketFull, h)
	}
	e := &entry{key: Key(int32(uint32(h)<<16 | uint32(b.next))), value: s, typ: typ}
	b.next++
	b.tree.ReplaceOrInsert(e)

	return e, nil
}

// Set interns s with StrDefault and returns its key. Repeated calls with the
// same string return the same key and leave the existing tag untouched.
func (t *Table) Set(s string) (Key, error) {
	return t.SetWithType(s, StrDefault)
}

// SetWithType interns s with tag typ when s is new. Existing entries keep
// their tag; use SetType to change it.
func (t *Table) SetWithType(s string, typ StrType) (Key, error) {
	if s == "" {
		return 0, nil
	}
	h := Hash(s)
	b := t.bucketForHash(h)
	if e := b.find(h, s); e != nil {
		return e.key, nil
	}
	e, err := b.insert(h, s, typ)
	if err != nil {
		return 0, err
	}

	return e.key, nil
}

// Fits reports whether every string in ss is interned already or would still
// get a key, counting new strings that land in the same bucket. It does not
// change the table.
func (t *Table) Fits(ss ...string) bool {
	pending := make(map[*bucket]int, len(ss))
	seen := make(map[string]bool, len(ss))
	for _, s := range ss {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		h := Hash(s)
		b := t.bucketForHash(h)
		if b.find(h, s) != nil {
			continue
		}
		pending[b]++
		if int(b.next)+pending[b] > maxSeq {
			return false
		}
	}

	return true
}

// Get returns the string for k, or "" when k is 0 or unknown.
func (t *Table) Get(k Key) string {
	if e := t.lookupKey(k); e != nil {
		return e.value
	}

	return ""
}

// Has reports whether k is a live key.
func (t *Table) Has(k Key) bool { return t.lookupKey(k) != nil }

func (t *Table) lookupKey(k Key) *entry {
	if k == 0 {
		return nil
	}
	e, ok := t.bucketForKey(k).tree.Get(&entry{key: k})
	if !ok {
		return nil
	}

	return e
}

// Lookup returns the key of s without interning it; 0 means absent.
func (t *Table) Lookup(s string) Key {
	if s == "" {
		return 0
	}
	h := Hash(s)
	if e := t.bucketForHash(h).find(h, s); e != nil {
		return e.key
	}

	return 0
}

// SetType tags s with typ, interning s first when it is missing.
func (t *Table) SetType(s string, typ StrType) error {
	if s == "" {
		return nil
	}
	h := Hash(s)
	b := t.bucketForHash(h)
	if e := b.find(h, s); e != nil {
		e.typ = typ
		return nil
	}
	_, err := b.insert(h, s, typ)

	return err
}

// SetKeyType tags the entry for k; it reports false when k is unknown.
func (t *Table) SetKeyType(k Key, typ StrType) bool {
	e := t.lookupKey(k)
	if e == nil {
		return false
	}
	e.typ = typ

	return true
}

// Type returns the tag of k.
func (t *Table) Type(k Key) (StrType, bool) {
	e := t.lookupKey(k)
	if e == nil {
		return StrDefault, false
	}

	return e.typ, true
}

// Range calls fn for every entry in bucket order, then key order, until fn
// returns false.
func (t *Table) Range(fn func(k Key, s string, typ StrType) bool) {
	for i := range t.buckets {
		cont := true
		t.buckets[i].tree.Ascend(func(e *entry) bool {
			cont = fn(e.key, e.value, e.typ)
			return cont
		})
		if !cont {
			return
		}
	}
}

// Clone returns an independent copy of t. Entry tags are copied too.
func (t *Table) Clone() *Table {
	out := &Table{buckets: make([]bucket, len(t.buckets))}
	for i := range t.buckets {
		nb := newBucket(t.buckets[i].next)
		t.buckets[i].tree.Ascend(func(e *entry) bool {
			cp := *e
			nb.tree.ReplaceOrInsert(&cp)
			return true
		})
		out.buckets[i] = nb
	}

	return out
}
