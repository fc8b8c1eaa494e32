// Package errors provides sentinel errors and error types for the puzzle trainer.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfRange indicates a square coordinate outside the 8x8 board.
	ErrOutOfRange = errors.New("coordinate out of range")

	// ErrMalformedNotation indicates unparsable position or move text.
	ErrMalformedNotation = errors.New("malformed notation")

	// ErrUnknownModule indicates a puzzle module that has no rule strategy.
	ErrUnknownModule = errors.New("unknown module")

	// ErrInvalidPuzzle indicates a puzzle record that fails validation.
	ErrInvalidPuzzle = errors.New("invalid puzzle")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDuplicatePuzzle indicates a puzzle whose start position was already seen.
	ErrDuplicatePuzzle = errors.New("duplicate puzzle")
)

// NotationError reports where decoding of position or move text failed.
type NotationError struct {
	Err      error  // The underlying error
	Input    string // The full text being decoded
	Offset   int    // 0-based byte offset of the problem (-1 if not applicable)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *NotationError) Error() string {
	var parts []string

	if e.Input != "" {
		if e.Offset >= 0 {
			parts = append(parts, fmt.Sprintf("%q at offset %d", e.Input, e.Offset))
		} else {
			parts = append(parts, fmt.Sprintf("%q", e.Input))
		}
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "notation error"
}

// Unwrap returns the underlying error.
func (e *NotationError) Unwrap() error {
	return e.Err
}

// PuzzleError wraps errors with puzzle context: the puzzle id and, when
// the puzzle came from a file, its location.
type PuzzleError struct {
	Err  error  // The underlying error
	ID   string // Puzzle identifier (if known)
	File string // Source file name (if known)
	Line int    // 1-based line number in source file (if known)
}

// Error returns a formatted error message including all available context.
func (e *PuzzleError) Error() string {
	var parts []string

	if e.File != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
		} else {
			parts = append(parts, e.File)
		}
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.ID != "" {
		parts = append(parts, fmt.Sprintf("puzzle %q", e.ID))
	}

	context := strings.Join(parts, ", ")
	if context == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "puzzle error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PuzzleError wrapper.
func (e *PuzzleError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
