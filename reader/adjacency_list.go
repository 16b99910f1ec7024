package reader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuebo100/pycnp/core"
)

// ReadAdjacencyList parses the adjacency-list text format (spec §6):
// a first token giving n, then for each of n nodes a line "id: n1 n2
// ...". It returns the resulting AdjList and n.
func ReadAdjacencyList(r io.Reader) (core.AdjList, int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1<<20), 1<<20)

	tok := newTokenizer(sc)

	nTok, ok := tok.next()
	if !ok {
		return nil, 0, fmt.Errorf("%w: missing node count", ErrMalformedInput)
	}
	n, err := strconv.Atoi(nTok)
	if err != nil || n < 0 {
		return nil, 0, fmt.Errorf("%w: invalid node count %q", ErrMalformedInput, nTok)
	}

	adj := core.NewAdjList(n)
	seen := make([]bool, n)

	for i := 0; i < n; i++ {
		idTok, ok := tok.next()
		if !ok {
			return nil, 0, fmt.Errorf("%w: truncated node list at entry %d", ErrMalformedInput, i)
		}
		glued := strings.HasSuffix(idTok, ":")
		idTok = strings.TrimSuffix(idTok, ":")
		id, err := strconv.Atoi(idTok)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: invalid node id %q", ErrMalformedInput, idTok)
		}
		if id < 0 || id >= n {
			return nil, 0, fmt.Errorf("%w: node id %d out of [0,%d)", ErrMalformedInput, id, n)
		}
		seen[id] = true

		if !glued {
			sep, ok := tok.next()
			if !ok || sep != ":" {
				return nil, 0, fmt.Errorf("%w: missing ':' after node %d", ErrMalformedInput, id)
			}
		}

		for {
			nb, ok := tok.peekSameLine()
			if !ok {
				break
			}
			tok.next()
			u, err := strconv.Atoi(nb)
			if err != nil {
				return nil, 0, fmt.Errorf("%w: invalid neighbor %q", ErrMalformedInput, nb)
			}
			if u < 0 || u >= n {
				return nil, 0, fmt.Errorf("%w: neighbor %d out of [0,%d)", ErrMalformedInput, u, n)
			}
			adj.AddEdge(id, u)
		}
	}
	return adj, n, nil
}

// tokenizer splits a scanner's lines into whitespace-delimited tokens
// while tracking line boundaries, since the adjacency-list format's
// neighbor lists are newline-terminated rather than count-prefixed.
type tokenizer struct {
	sc      *bufio.Scanner
	fields  []string
	lineIdx int
}

func newTokenizer(sc *bufio.Scanner) *tokenizer {
	return &tokenizer{sc: sc}
}

func (t *tokenizer) fill() bool {
	for t.lineIdx >= len(t.fields) {
		if !t.sc.Scan() {
			return false
		}
		t.fields = strings.Fields(t.sc.Text())
		t.lineIdx = 0
	}
	return true
}

func (t *tokenizer) next() (string, bool) {
	if !t.fill() {
		return "", false
	}
	f := t.fields[t.lineIdx]
	t.lineIdx++
	return f, true
}

// peekSameLine returns the next token only if it still belongs to the
// current line (i.e. without advancing to a new Scan()); it reports
// false once the current line is exhausted, which is how the
// adjacency-list parser knows a node's neighbor list has ended.
func (t *tokenizer) peekSameLine() (string, bool) {
	if t.lineIdx >= len(t.fields) {
		return "", false
	}
	return t.fields[t.lineIdx], true
}
