package lindecomp

import (
	"testing"

	"github.com/mfansler/cnavg-go/edgeflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildHexagon returns a 6-edge closed cycle over the given node sequence,
// closing the last node back to the first.
func buildHexagon(t *testing.T, nodes []string) edgeflow.Cycle {
	t.Helper()
	edges := make([]edgeflow.Edge, len(nodes))
	for i, n := range nodes {
		next := nodes[(i+1)%len(nodes)]
		e, err := edgeflow.NewEdge(n, next, 1, edgeflow.Index(i))
		require.NoError(t, err)
		edges[i] = e
	}
	c, err := edgeflow.NewCycle(edges)
	require.NoError(t, err)
	return c
}

func TestCanExplain_MatchesLinearDecompositionScenario(t *testing.T) {
	// A and B are two 6-element cycles sharing node "c0", as two chains
	// threaded through the same junction in a cactus graph would be.
	a := buildHexagon(t, []string{"c0", "c1", "c2", "c3", "c4", "c5"})
	b := buildHexagon(t, []string{"c0", "f1", "f2", "f3", "f4", "f5"})

	basis, err := NewReferenceBasis([]edgeflow.Cycle{a, b})
	require.NoError(t, err)

	ok, err := basis.CanExplain(a)
	require.NoError(t, err)
	assert.True(t, ok, "A alone must be explained by the basis containing A")

	ok, err = basis.CanExplain(b)
	require.NoError(t, err)
	assert.True(t, ok, "B alone must be explained by the basis containing B")

	combined, err := edgeflow.NewCycle(append(a.Edges(), b.Edges()...))
	require.NoError(t, err)
	ok, err = basis.CanExplain(combined)
	require.NoError(t, err)
	assert.True(t, ok, "A+B must be explainable as 1*A + 1*B")

	rotated := a.StartAt(1)
	ok, err = basis.CanExplain(rotated)
	require.NoError(t, err)
	assert.False(t, ok, "a shifted traversal of A changes the sign pattern and should not decompose cleanly")
}

func TestCanExplain_UnknownElementRejected(t *testing.T) {
	a := buildHexagon(t, []string{"c0", "c1", "c2", "c3", "c4", "c5"})
	basis, err := NewReferenceBasis([]edgeflow.Cycle{a})
	require.NoError(t, err)

	other := buildHexagon(t, []string{"x0", "x1", "x2", "x3", "x4", "x5"})
	ok, err := basis.CanExplain(other)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewReferenceBasis_RejectsEmpty(t *testing.T) {
	_, err := NewReferenceBasis(nil)
	assert.ErrorIs(t, err, ErrEmptyBasis)
}
