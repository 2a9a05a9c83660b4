// SPDX-License-Identifier: MIT
//
// File: writer.go
// Role: little-endian primitive writer over a buffered stream.
// Policy:
//   - Every method reports the first underlying failure; nothing is retried.
//   - Zipped mode may be enabled once; bytes written before it stay plain.

package binio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/klauspost/compress/zlib"
)

// MaxShortString is the longest payload a short string can carry.
const MaxShortString = math.MaxUint16

// Writer writes fixed-width and length-prefixed values in little-endian order.
type Writer struct {
	buf     *bufio.Writer // plain buffered sink
	zw      *zlib.Writer  // non-nil once zipped mode is on
	out     io.Writer     // current destination: buf or zw
	closer  io.Closer     // owned file, if any
	scratch [8]byte
	closed  bool
}

// NewWriter wraps w in a buffered Writer. The caller keeps ownership of w.
func NewWriter(w io.Writer) *Writer {
	b := bufio.NewWriter(w)
	return &Writer{buf: b, out: b}
}

// Create truncates or creates the file at path and returns a Writer that
// owns it; Close flushes and closes the file.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("binio: create %q: %w", path, err)
	}
	w := NewWriter(f)
	w.closer = f

	return w, nil
}

// SetZippedWriteMode routes every following write through a zlib deflater.
// It fails with ErrInvalidMode when zipped mode is already on.
func (w *Writer) SetZippedWriteMode() error {
	if w.closed {
		return ErrClosed
	}
	if w.zw != nil {
		return fmt.Errorf("%w: zipped write mode already enabled", ErrInvalidMode)
	}
	w.zw = zlib.NewWriter(w.buf)
	w.out = w.zw

	return nil
}

func (w *Writer) write(p []byte, what string) error {
	if w.closed {
		return ErrClosed
	}
	if _, err := w.out.Write(p); err != nil {
		return fmt.Errorf("binio: write %s: %w", what, err)
	}

	return nil
}

// WriteUint8 writes one unsigned byte.
func (w *Writer) WriteUint8(v uint8) error {
	w.scratch[0] = v
	return w.write(w.scratch[:1], "uint8")
}

// WriteInt8 writes one signed byte.
func (w *Writer) WriteInt8(v int8) error { return w.WriteUint8(uint8(v)) }

// WriteBool writes b as a single 0/1 byte.
func (w *Writer) WriteBool(b bool) error {
	var v uint8
	if b {
		v = 1
	}

	return w.WriteUint8(v)
}

// WriteUint16 writes a 2-byte unsigned value.
func (w *Writer) WriteUint16(v uint16) error {
	binary.LittleEndian.PutUint16(w.scratch[:2], v)
	return w.write(w.scratch[:2], "uint16")
}

// WriteInt16 writes a 2-byte signed value.
func (w *Writer) WriteInt16(v int16) error { return w.WriteUint16(uint16(v)) }

// WriteChar16 writes a UTF-16 code unit.
func (w *Writer) WriteChar16(c uint16) error { return w.WriteUint16(c) }

// WriteUint32 writes a 4-byte unsigned value.
func (w *Writer) WriteUint32(v uint32) error {
	binary.LittleEndian.PutUint32(w.scratch[:4], v)
	return w.write(w.scratch[:4], "uint32")
}

// WriteInt32 writes a 4-byte signed value.
func (w *Writer) WriteInt32(v int32) error { return w.WriteUint32(uint32(v)) }

// WriteInt64 writes an 8-byte signed value.
func (w *Writer) WriteInt64(v int64) error {
	binary.LittleEndian.PutUint64(w.scratch[:8], uint64(v))
	return w.write(w.scratch[:8], "int64")
}

// WriteFloat32 writes the IEEE-754 bits of f.
func (w *Writer) WriteFloat32(f float32) error { return w.WriteUint32(math.Float32bits(f)) }

// WriteFloat64 writes the IEEE-754 bits of f.
func (w *Writer) WriteFloat64(f float64) error { return w.WriteInt64(int64(math.Float64bits(f))) }

// WriteShortString writes s with a uint16 length prefix.
func (w *Writer) WriteShortString(s string) error {
	if len(s) > MaxShortString {
		return fmt.Errorf("%w: %d bytes", ErrStringTooLong, len(s))
	}
	if err := w.WriteUint16(uint16(len(s))); err != nil {
		return err
	}

	return w.WriteString(s)
}

// WriteLongString writes s with an int32 length prefix.
func (w *Writer) WriteLongString(s string) error {
	if len(s) > math.MaxInt32 {
		return fmt.Errorf("%w: %d bytes", ErrStringTooLong, len(s))
	}
	if err := w.WriteInt32(int32(len(s))); err != nil {
		return err
	}

	return w.WriteString(s)
}

// WriteString writes the raw bytes of s without any prefix.
func (w *Writer) WriteString(s string) error {
	if w.closed {
		return ErrClosed
	}
	if _, err := io.WriteString(w.out, s); err != nil {
		return fmt.Errorf("binio: write string: %w", err)
	}

	return nil
}

// WriteData writes p verbatim.
func (w *Writer) WriteData(p []byte) error { return w.write(p, "data") }

// Flush pushes buffered bytes to the underlying writer. In zipped mode the
// deflater is flushed too, so a reader can decode everything written so far.
func (w *Writer) Flush() error {
	if w.closed {
		return ErrClosed
	}
	if w.zw != nil {
		if err := w.zw.Flush(); err != nil {
			return fmt.Errorf("binio: flush deflater: %w", err)
		}
	}
	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("binio: flush: %w", err)
	}

	return nil
}

// Close finishes the zlib stream (if any), flushes, and closes an owned file.
// Closing twice returns ErrClosed.
func (w *Writer) Close() error {
	if w.closed {
		return ErrClosed
	}
	var firstErr error
	if w.zw != nil {
		if err := w.zw.Close(); err != nil {
			firstErr = fmt.Errorf("binio: close deflater: %w", err)
		}
	}
	if err := w.buf.Flush(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("binio: flush: %w", err)
	}
	if w.closer != nil {
		if err := w.closer.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("binio: close: %w", err)
		}
	}
	w.closed = true

	return firstErr
}
