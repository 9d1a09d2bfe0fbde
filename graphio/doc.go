// Package graphio reads and writes graphs in the plain edge-list text format:
//
//	V E
//	u v w   (E lines)
//
// All values are base-10 integers separated by any whitespace; line breaks
// carry no meaning. Load validates eagerly: syntax and count problems are
// *LoadError values, while out-of-range vertex ids and negative weights are
// reported as core.ErrPreconditionViolation wrapped with the edge index.
// The graph returned by Load is frozen.
package graphio
