package space

import (
	"errors"
	"fmt"
)

var (
	// ErrStateMismatch indicates a read or write state was passed to a space
	// that did not create it. It is a caller bug, not a data problem.
	ErrStateMismatch = errors.New("space: state does not belong to this space")

	// ErrTerminalState indicates a state was used after it failed or hit the
	// end of its stream.
	ErrTerminalState = errors.New("space: state is in a terminal phase")
)

// StateMismatchError details an ErrStateMismatch.
type StateMismatchError struct {
	Space string // space that received the state
	State string // dynamic type of the state
}

func (e *StateMismatchError) Error() string {
	return fmt.Sprintf("space: %s received foreign state %s", e.Space, e.State)
}

// Is reports ErrStateMismatch.
func (e *StateMismatchError) Is(target error) bool { return target == ErrStateMismatch }

// DimensionMismatchError reports a record whose element count differs from
// the one established earlier in the same stream.
type DimensionMismatchError struct {
	Expected int
	Actual   int
	Line     int
	Path     string
}

func (e *DimensionMismatchError) Error() string {
	loc := fmt.Sprintf("line %d", e.Line)
	if e.Path != "" {
		loc = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	return fmt.Sprintf("space: dimension mismatch at %s: expected %d elements as in previous lines, got %d", loc, e.Expected, e.Actual)
}

// ParseError reports a record that could not be tokenized into numbers.
type ParseError struct {
	Line int // 0 when parsed without a stream
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	text := e.Text
	if runes := []rune(text); len(runes) > 80 {
		text = string(runes[:77]) + "..."
	}
	if e.Line > 0 {
		return fmt.Sprintf("space: failed to parse line %d %q: %v", e.Line, text, e.Err)
	}
	return fmt.Sprintf("space: failed to parse %q: %v", text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LengthMismatchError reports a comparison between objects of different
// element counts. Such objects should never have been compared.
type LengthMismatchError struct {
	Left  int
	Right int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("space: comparing vectors of different lengths: %d and %d", e.Left, e.Right)
}

// UnknownSpaceError reports an unsupported space name.
type UnknownSpaceError struct {
	Name string
}

func (e *UnknownSpaceError) Error() string {
	return fmt.Sprintf("space: unknown space %q", e.Name)
}

var (
	errEmptyRecord = errors.New("no numeric tokens")
	errBadLabel    = errors.New("invalid label")
)
