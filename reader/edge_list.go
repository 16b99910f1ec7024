package reader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuebo100/pycnp/core"
)

// ReadEdgeList parses the DIMACS-like edge-list text format (spec §6):
// a "p ... n m" line declares node/edge counts, "e u v" lines declare
// undirected edges, and any other leading token is ignored. Duplicate
// edges are idempotent.
func ReadEdgeList(r io.Reader) (core.AdjList, int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1<<20), 1<<20)

	n := -1
	var adj core.AdjList

	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "p":
			if len(fields) < 4 {
				return nil, 0, fmt.Errorf("%w: malformed 'p' line", ErrMalformedInput)
			}
			parsedN, err := strconv.Atoi(fields[2])
			if err != nil || parsedN < 0 {
				return nil, 0, fmt.Errorf("%w: invalid node count %q", ErrMalformedInput, fields[2])
			}
			n = parsedN
			adj = core.NewAdjList(n)
		case "e":
			if len(fields) < 3 {
				return nil, 0, fmt.Errorf("%w: malformed 'e' line", ErrMalformedInput)
			}
			if adj == nil {
				return nil, 0, fmt.Errorf("%w: 'e' line before 'p' line", ErrMalformedInput)
			}
			u, err1 := strconv.Atoi(fields[1])
			v, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil {
				return nil, 0, fmt.Errorf("%w: invalid edge endpoints %q %q", ErrMalformedInput, fields[1], fields[2])
			}
			if u < 0 || u >= n || v < 0 || v >= n {
				return nil, 0, fmt.Errorf("%w: edge endpoint out of [0,%d)", ErrMalformedInput, n)
			}
			adj.AddEdge(u, v)
		default:
			// non-"p"/"e" tokens are ignored, per spec §6.
		}
	}
	if adj == nil {
		return nil, 0, fmt.Errorf("%w: no 'p' line found", ErrMalformedInput)
	}
	return adj, n, nil
}
