package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/sssp/core"
)

// maxEdgeCapacityHint bounds the pre-allocation driven by the announced E, so
// a bogus header cannot reserve memory the body never fills.
const maxEdgeCapacityHint = 1 << 20

// maxVertices caps the announced V; the solvers allocate O(V) per run.
const maxVertices = 1 << 26

// LoadFile opens path and loads it with Load. Errors carry the path.
func LoadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	g, err := Load(f)
	if err == nil {
		return g, nil
	}
	var le *LoadError
	if errors.As(err, &le) {
		le.Path = path
		return nil, err
	}

	return nil, fmt.Errorf("%s: %w", path, err)
}

// Load parses "V E" followed by E triples "u v w" from r.
//
// Steps:
//  1. Read V and E; both must be non-negative integers (ErrMalformed).
//  2. Read E triples; a short read is ErrCountMismatch.
//  3. Each triple goes through core.Graph.AddEdge, which rejects out-of-range
//     ids and negative weights (core.ErrPreconditionViolation).
//  4. Any token after the last triple is ErrCountMismatch.
//  5. Freeze and return.
//
// Complexity: O(V + E) time and space.
func Load(r io.Reader) (*core.Graph, error) {
	tr := newTokenReader(r)

	v, err := tr.nextInt("vertex count")
	if err != nil {
		return nil, err
	}
	e, err := tr.nextInt("edge count")
	if err != nil {
		return nil, err
	}
	if v < 0 || e < 0 {
		return nil, &LoadError{Token: tr.count, Err: fmt.Errorf("%w: negative count V=%d E=%d", ErrMalformed, v, e)}
	}

	if v > maxVertices {
		return nil, &LoadError{Token: 1, Err: fmt.Errorf("%w: vertex count %d too large (max %d)", ErrMalformed, v, maxVertices)}
	}

	g := core.NewGraph(int(v), core.WithEdgeCapacity(int(min(e, maxEdgeCapacityHint))))
	for i := int64(0); i < e; i++ {
		var triple [3]int64
		for k, what := range [3]string{"from", "to", "weight"} {
			if triple[k], err = tr.nextInt(what); err != nil {
				return nil, err
			}
		}
		if err = g.AddEdge(int(triple[0]), int(triple[1]), triple[2]); err != nil {
			return nil, fmt.Errorf("graphio: edge %d: %w", i, err)
		}
	}

	if tr.scan() {
		return nil, &LoadError{Token: tr.count, Err: fmt.Errorf("%w: unexpected token %q after %d edges", ErrCountMismatch, tr.text(), e)}
	}
	if err = tr.err(); err != nil {
		return nil, &LoadError{Err: err}
	}
	g.Freeze()

	return g, nil
}

// tokenReader yields whitespace-separated tokens and counts them.
type tokenReader struct {
	sc    *bufio.Scanner
	count int
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	return &tokenReader{sc: sc}
}

func (t *tokenReader) scan() bool {
	if !t.sc.Scan() {
		return false
	}
	t.count++

	return true
}

func (t *tokenReader) text() string { return t.sc.Text() }

func (t *tokenReader) err() error { return t.sc.Err() }

// nextInt reads the next token as an int64. End of input is
// ErrCountMismatch; a non-integer token is ErrMalformed.
func (t *tokenReader) nextInt(what string) (int64, error) {
	if !t.scan() {
		if err := t.err(); err != nil {
			return 0, &LoadError{Err: err}
		}
		return 0, &LoadError{Token: t.count + 1, Err: fmt.Errorf("%w: missing %s", ErrCountMismatch, what)}
	}
	n, err := strconv.ParseInt(t.text(), 10, 64)
	if err != nil {
		return 0, &LoadError{Token: t.count, Err: fmt.Errorf("%w: %s %q is not an integer", ErrMalformed, what, t.text())}
	}

	return n, nil
}
