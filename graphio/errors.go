package graphio

import (
	"errors"
	"fmt"
)

// Sentinel causes carried by *LoadError.
var (
	// ErrMalformed indicates a token that is not a valid integer, or a
	// negative vertex/edge count.
	ErrMalformed = errors.New("graphio: malformed input")

	// ErrCountMismatch indicates fewer edge triples than announced by E, or
	// trailing tokens after the last announced triple.
	ErrCountMismatch = errors.New("graphio: edge count mismatch")
)

// LoadError reports why a graph source could not be loaded. The graph is not
// constructed when a LoadError is returned.
type LoadError struct {
	Path  string // file path, empty for readers
	Token int    // 1-based index of the offending token, 0 if not token related
	Err   error  // underlying cause; ErrMalformed, ErrCountMismatch or an I/O error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	src := e.Path
	if src == "" {
		src = "<reader>"
	}
	if e.Token > 0 {
		return fmt.Sprintf("graphio: load %s: token %d: %v", src, e.Token, e.Err)
	}

	return fmt.Sprintf("graphio: load %s: %v", src, e.Err)
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *LoadError) Unwrap() error { return e.Err }
