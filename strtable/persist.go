package strtable

import (
	"fmt"

	"github.com/katalvlaran/graphlib/binio"
)

// keep reports whether an entry tagged typ is written under filter.
func keep(filter, typ StrType) bool {
	switch filter {
	case StrTmp:
		return typ != StrTmp
	case StrToSave:
		return typ == StrToSave
	default:
		return true
	}
}

// Save writes the table as a STRTBL block. filter selects entries:
// StrTmp skips tmp-tagged entries, StrToSave keeps only to-save entries,
// StrDefault writes everything. Bucket counters are always written in full.
func (t *Table) Save(w *binio.Writer, filter StrType) error {
	if err := w.WriteString(fileTag); err != nil {
		return fmt.Errorf("strtable: save tag: %w", err)
	}
	if err := w.WriteInt32(int32(len(t.buckets))); err != nil {
		return fmt.Errorf("strtable: save bucket count: %w", err)
	}
	for i := range t.buckets {
		if err := w.WriteUint16(t.buckets[i].next); err != nil {
			return fmt.Errorf("strtable: save counter %d: %w", i, err)
		}
	}

	var werr error
	for i := range t.buckets {
		t.buckets[i].tree.Ascend(func(e *entry) bool {
			if !keep(filter, e.typ) {
				return true
			}
			if werr = w.WriteInt32(int32(e.key)); werr != nil {
				return false
			}
			werr = w.WriteLongString(e.value)

			return werr == nil
		})
		if werr != nil {
			return fmt.Errorf("strtable: save bucket %d: %w", i, werr)
		}
	}

	if err := w.WriteInt32(0); err != nil {
		return fmt.Errorf("strtable: save terminator: %w", err)
	}

	return nil
}

// Load replaces the table content with a STRTBL block read from r. Every
// loaded entry is tagged StrDefault. On error the table is left unchanged.
func (t *Table) Load(r *binio.Reader) error {
	tag, err := r.ReadString(len(fileTag))
	if err != nil {
		return fmt.Errorf("strtable: load tag: %w", err)
	}
	if tag != fileTag {
		return fmt.Errorf("%w: tag %q", ErrWrongFormat, tag)
	}

	n, err := r.ReadInt32()
	if err != nil {
		return fmt.Errorf("strtable: load bucket count: %w", err)
	}
	if n <= 0 || uint32(n) > MaxBuckets {
		return fmt.Errorf("%w: bucket count %d", ErrWrongFormat, n)
	}

	buckets := make([]bucket, n)
	for i := range buckets {
		next, err := r.ReadUint16()
		if err != nil {
			return fmt.Errorf("strtable: load counter %d: %w", i, err)
		}
		buckets[i] = newBucket(next)
	}

	for {
		k, err := r.ReadInt32()
		if err != nil {
			return fmt.Errorf("strtable: load key: %w", err)
		}
		if k == 0 {
			break
		}
		s, err := r.ReadLongString()
		if err != nil {
			return fmt.Errorf("strtable: load value of key %#08x: %w", uint32(k), err)
		}
		b := &buckets[(uint32(k)>>16)%uint32(n)]
		b.tree.ReplaceOrInsert(&entry{key: Key(k), value: s, typ: StrDefault})
	}

	t.buckets = buckets

	return nil
}
