package strtable

import "errors"

// Key identifies an interned string; 0 means "no string".
type Key int32

// StrType tags an entry for selective persistence.
type StrType uint8

const (
	// StrDefault entries are always persisted.
	StrDefault StrType = iota
	// StrTmp entries are skipped by a StrTmp-filtered save.
	StrTmp
	// StrToSave entries are the only ones kept by a StrToSave-filtered save.
	StrToSave
)

// String returns the tag name.
func (t StrType) String() string {
	switch t {
	case StrDefault:
		return "default"
	case StrTmp:
		return "tmp"
	case StrToSave:
		return "toSave"
	default:
		return "unknown"
	}
}

// DefaultBuckets is the bucket count used when none is given.
const DefaultBuckets uint32 = 511

// maxSeq is the counter value at which a bucket is considered full.
const maxSeq = 0xFFFF

// fileTag starts every serialized table.
const fileTag = "STRTBL"

// Sentinel errors for string table operations.
var (
	// ErrBucketFull indicates a bucket ran out of sequence numbers.
	ErrBucketFull = errors.New("strtable: bucket is full")

	// ErrWrongFormat indicates the input is not a string table block.
	ErrWrongFormat = errors.New("strtable: wrong file format")
)
