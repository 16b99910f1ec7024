package reader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAdjacencyList(t *testing.T) {
	input := "4\n0: 1 2\n1: 0\n2: 0 3\n3: 2\n"
	adj, n, err := ReadAdjacencyList(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Contains(t, adj[0], 1)
	assert.Contains(t, adj[0], 2)
	assert.Contains(t, adj[1], 0)
	assert.Contains(t, adj[2], 3)
	assert.NotContains(t, adj[1], 2)
}

func TestReadAdjacencyListEmptyNeighbors(t *testing.T) {
	input := "2\n0:\n1:\n"
	adj, n, err := ReadAdjacencyList(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Empty(t, adj[0])
	assert.Empty(t, adj[1])
}

func TestReadAdjacencyListOutOfBounds(t *testing.T) {
	input := "2\n0: 5\n1:\n"
	_, _, err := ReadAdjacencyList(strings.NewReader(input))
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestReadEdgeList(t *testing.T) {
	input := "c comment\np edge 4 3\ne 0 1\ne 1 2\ne 2 3\n"
	adj, n, err := ReadEdgeList(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Contains(t, adj[0], 1)
	assert.Contains(t, adj[1], 2)
	assert.Contains(t, adj[2], 3)
}

func TestReadEdgeListDuplicateIdempotent(t *testing.T) {
	input := "p edge 2 2\ne 0 1\ne 0 1\n"
	adj, _, err := ReadEdgeList(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, adj[0], 1)
}

func TestReadEdgeListMissingPLine(t *testing.T) {
	input := "e 0 1\n"
	_, _, err := ReadEdgeList(strings.NewReader(input))
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestReadEdgeListOutOfBounds(t *testing.T) {
	input := "p edge 2 1\ne 0 5\n"
	_, _, err := ReadEdgeList(strings.NewReader(input))
	require.ErrorIs(t, err, ErrMalformedInput)
}
