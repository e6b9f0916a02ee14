package bytebuf

import (
	"fmt"

	"github.com/pkg/errors"
)

// error categories, matchable with errors.Is
var (
	// ErrOutOfRange is returned when a read, skip or cursor set would break
	// the cursor ordering 0 <= readerIndex <= writerIndex
	ErrOutOfRange = errors.New("out of range")

	// ErrReadOnly is returned when a write or a write cursor mutation is
	// attempted on a read-only buffer
	ErrReadOnly = errors.New("read-only buffer")

	// ErrCapacity is returned when a cursor target exceeds the current
	// capacity
	ErrCapacity = errors.New("capacity exceeded")
)

// RangeError is the error type for all bounds violations. It carries the
// operation name, the requested size or index and the bound that constrained
// it, so a caller can decide between waiting for more data and treating the
// failure as a protocol violation.
type RangeError struct {
	Op        string
	Requested int
	Limit     int

	kind error
	msg  string
}

func (e *RangeError) Error() string { return e.msg }

// Unwrap returns the error category, ErrOutOfRange or ErrCapacity
func (e *RangeError) Unwrap() error { return e.kind }

// ReadOnlyError is the error type for writes rejected by a read-only buffer
type ReadOnlyError struct {
	Op string
}

func (e *ReadOnlyError) Error() string {
	return fmt.Sprintf("cannot %s, buffer is read-only", e.Op)
}

// Unwrap returns ErrReadOnly
func (e *ReadOnlyError) Unwrap() error { return ErrReadOnly }

// errReadable reports a read needing more readable bytes than exist
func errReadable(op string, want, readable int) error {
	return &RangeError{
		Op: op, Requested: want, Limit: readable, kind: ErrOutOfRange,
		msg: fmt.Sprintf("cannot %s, readableBytes %d is less than %d", op, readable, want),
	}
}

// errSkip reports a skip exceeding the readable window
func errSkip(length, readable int) error {
	return &RangeError{
		Op: "skipBytes", Requested: length, Limit: readable, kind: ErrOutOfRange,
		msg: fmt.Sprintf("cannot skipBytes, given length %d is greater than readableBytes %d", length, readable),
	}
}

// errIndex reports a cursor set that violates cursor ordering
func errIndex(op, given string, index int, bound string, limit int) error {
	rel := "greater"
	if index < limit {
		rel = "less"
	}
	return &RangeError{
		Op: op, Requested: index, Limit: limit, kind: ErrOutOfRange,
		msg: fmt.Sprintf("cannot %s, given %s %d is %s than %s %d", op, given, index, rel, bound, limit),
	}
}

// errNegative reports a negative size or index
func errNegative(op, given string, index int) error {
	return &RangeError{
		Op: op, Requested: index, Limit: 0, kind: ErrOutOfRange,
		msg: fmt.Sprintf("cannot %s, given %s %d is less than 0", op, given, index),
	}
}

// errCapacity reports a cursor target past the allocated storage
func errCapacity(op, given string, index, capacity int) error {
	return &RangeError{
		Op: op, Requested: index, Limit: capacity, kind: ErrCapacity,
		msg: fmt.Sprintf("cannot %s, given %s %d is greater than capacity %d", op, given, index, capacity),
	}
}
