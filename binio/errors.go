package binio

import "errors"

// Sentinel errors for binary I/O.
var (
	// ErrShortRead indicates the stream ended before a value was complete.
	ErrShortRead = errors.New("binio: unexpected end of stream")

	// ErrInvalidMode indicates a mode switch requested at the wrong time.
	ErrInvalidMode = errors.New("binio: invalid I/O mode")

	// ErrStringTooLong indicates a string does not fit its length prefix.
	ErrStringTooLong = errors.New("binio: string too long for length prefix")

	// ErrNegativeLength indicates a corrupt (negative) length prefix.
	ErrNegativeLength = errors.New("binio: negative length prefix")

	// ErrClosed indicates use of a closed Reader or Writer.
	ErrClosed = errors.New("binio: stream closed")
)
