// Package strtable interns strings into stable 32-bit keys.
//
// A Table is a fixed set of buckets. Each string is hashed with a two-pass
// Pearson hash (Peter K. Pearson, "Fast Hashing of Variable-Length Text
// Strings", CACM 1990) into 16 bits; the bucket is hash % buckets and the key
// is
//
//	key = hash<<16 | seq
//
// where seq is the bucket's running counter starting at 1. Inside a bucket the
// entries live in a B-tree ordered by key, so all candidates sharing a hash are
// one contiguous range [hash<<16, hash<<16|0xFFFF] compared by exact string.
//
// Key 0 is reserved: the empty string always maps to 0 and Get(0) is "".
//
// Every entry carries a StrType tag that only matters when saving:
//
//	StrDefault – written in every mode
//	StrTmp     – skipped when saving with filter StrTmp
//	StrToSave  – the only entries written when saving with filter StrToSave
//
// Load resets every tag to StrDefault; tags are not persisted.
//
// The on-disk STRTBL block layout:
//
//	"STRTBL" | int32 buckets | buckets × uint16 counter | (int32 key, int32 len, bytes)* | int32 0
//
// A Table is not safe for concurrent mutation.
package strtable
