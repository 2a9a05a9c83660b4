// Package binio provides little-endian binary primitives over buffered
// byte streams, the transport used by strtable and core persistence.
//
// A Writer emits fixed-width values (uint8 … int64, float32, float64, bool)
// and two length-prefixed string forms:
//
//	short string: uint16 length + UTF-8 bytes
//	long string:  int32  length + UTF-8 bytes
//
// A Reader mirrors every Write* method. Fixed-size reads loop until the exact
// number of bytes arrived; a stream that ends early yields ErrShortRead.
// It also matches io.EOF when a primitive found no bytes at all, and
// io.ErrUnexpectedEOF when a value was cut, including a length prefix whose
// payload is missing.
//
// Zipped mode:
//
//	w.SetZippedWriteMode() // everything written afterwards is zlib-deflated
//	r.SetZippedReadMode()  // must be called before the first structured read
//
// Neither type is safe for concurrent use.
package binio
