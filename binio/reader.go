// SPDX-License-Identifier: MIT
//
// File: reader.go
// Role: little-endian primitive reader, the inverse of Writer.
// Policy:
//   - Fixed-size reads loop until complete (io.ReadFull); early end → ErrShortRead.
//   - SetZippedReadMode is accepted only before the first structured read.

package binio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/klauspost/compress/zlib"
)

// Reader reads values written by Writer.
type Reader struct {
	in      *bufio.Reader // current source (plain or inflated)
	zr      io.ReadCloser // non-nil once zipped mode is on
	closer  io.Closer     // owned file, if any
	started bool          // a structured read happened
	scratch [8]byte
	closed  bool
}

// NewReader wraps r in a buffered Reader. The caller keeps ownership of r.
func NewReader(r io.Reader) *Reader {
	return &Reader{in: bufio.NewReader(r)}
}

// Open opens the file at path for reading; Close releases it.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("binio: open %q: %w", path, err)
	}
	r := NewReader(f)
	r.closer = f

	return r, nil
}

// SetZippedReadMode makes every following read inflate a zlib stream.
// It must be called before any structured read; afterwards, or when zipped
// mode is already active, it returns ErrInvalidMode.
func (r *Reader) SetZippedReadMode() error {
	if r.closed {
		return ErrClosed
	}
	if r.zr != nil {
		return fmt.Errorf("%w: zipped read mode already enabled", ErrInvalidMode)
	}
	if r.started {
		return fmt.Errorf("%w: zipped read mode requested after reading began", ErrInvalidMode)
	}
	zr, err := zlib.NewReader(r.in)
	if err != nil {
		return fmt.Errorf("binio: zipped read mode: %w", err)
	}
	r.zr = zr
	r.in = bufio.NewReader(zr)

	return nil
}

// fill reads exactly len(p) bytes. With mid set the read continues a value
// whose length prefix was already consumed, so a clean end of stream is
// reported as io.ErrUnexpectedEOF as well.
func (r *Reader) fill(p []byte, what string, mid bool) error {
	if r.closed {
		return ErrClosed
	}
	r.started = true
	if _, err := io.ReadFull(r.in, p); err != nil {
		if mid && errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: reading %s: %w", ErrShortRead, what, err)
		}

		return fmt.Errorf("binio: read %s: %w", what, err)
	}

	return nil
}

// ReadUint8 reads one unsigned byte.
func (r *Reader) ReadUint8() (uint8, error) {
	if err := r.fill(r.scratch[:1], "uint8", false); err != nil {
		return 0, err
	}

	return r.scratch[0], nil
}

// ReadInt8 reads one signed byte.
func (r *Reader) ReadInt8() (int8, error) {
	v, err := r.ReadUint8()
	return int8(v), err
}

// ReadBool reads a single byte; any non-zero value is true.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadUint8()
	return v != 0, err
}

// ReadUint16 reads a 2-byte unsigned value.
func (r *Reader) ReadUint16() (uint16, error) {
	if err := r.fill(r.scratch[:2], "uint16", false); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(r.scratch[:2]), nil
}

// ReadInt16 reads a 2-byte signed value.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

// ReadChar16 reads a UTF-16 code unit.
func (r *Reader) ReadChar16() (uint16, error) { return r.ReadUint16() }

// ReadUint32 reads a 4-byte unsigned value.
func (r *Reader) ReadUint32() (uint32, error) {
	if err := r.fill(r.scratch[:4], "uint32", false); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(r.scratch[:4]), nil
}

// ReadInt32 reads a 4-byte signed value.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadInt64 reads an 8-byte signed value.
func (r *Reader) ReadInt64() (int64, error) {
	if err := r.fill(r.scratch[:8], "int64", false); err != nil {
		return 0, err
	}

	return int64(binary.LittleEndian.Uint64(r.scratch[:8])), nil
}

// ReadFloat32 reads IEEE-754 single precision bits.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadFloat64 reads IEEE-754 double precision bits.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadInt64()
	return math.Float64frombits(uint64(v)), err
}

// ReadShortString reads a uint16 length prefix followed by that many bytes.
func (r *Reader) ReadShortString() (string, error) {
	n, err := r.ReadUint16()
	if err != nil {
		return "", err
	}

	return r.ReadString(int(n))
}

// ReadLongString reads an int32 length prefix followed by that many bytes.
func (r *Reader) ReadLongString() (string, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}

	return r.ReadString(int(n))
}

// ReadString reads exactly size bytes, retrying partial reads.
func (r *Reader) ReadString(size int) (string, error) {
	p, err := r.ReadData(size)
	if err != nil {
		return "", err
	}

	return string(p), nil
}

// ReadData reads exactly size bytes into a fresh slice.
func (r *Reader) ReadData(size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, size)
	}
	p := make([]byte, size)
	if size == 0 {
		r.started = true
		return p, nil
	}
	if err := r.fill(p, "data", true); err != nil {
		return nil, err
	}

	return p, nil
}

// Skip discards exactly n bytes.
func (r *Reader) Skip(n int64) error {
	if r.closed {
		return ErrClosed
	}
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}
	r.started = true
	got, err := io.CopyN(io.Discard, r.in, n)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: skipped %d of %d bytes: %w", ErrShortRead, got, n, io.ErrUnexpectedEOF)
		}

		return fmt.Errorf("binio: skip: %w", err)
	}

	return nil
}

// Close releases the inflater and an owned file. Closing twice returns ErrClosed.
func (r *Reader) Close() error {
	if r.closed {
		return ErrClosed
	}
	var firstErr error
	if r.zr != nil {
		if err := r.zr.Close(); err != nil {
			firstErr = fmt.Errorf("binio: close inflater: %w", err)
		}
	}
	if r.closer != nil {
		if err := r.closer.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("binio: close: %w", err)
		}
	}
	r.closed = true

	return firstErr
}
