package edgeflow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEdge(t *testing.T, s, f string, v float64, idx Index) Edge {
	t.Helper()
	e, err := NewEdge(s, f, v, idx)
	require.NoError(t, err)
	return e
}

func TestNewCycle_RequiresClosedWalk(t *testing.T) {
	e1 := mustEdge(t, "a", "b", 1, 0)
	e2 := mustEdge(t, "c", "d", 1, 1)

	_, err := NewCycle([]Edge{e1, e2})
	assert.ErrorIs(t, err, ErrNotClosed)

	_, err = NewCycle(nil)
	assert.ErrorIs(t, err, ErrEmptyCycle)
}

func TestCycle_Value_IsMinEdge(t *testing.T) {
	edges := []Edge{
		mustEdge(t, "a", "b", 3, 0),
		mustEdge(t, "b", "c", 1, 1),
		mustEdge(t, "c", "a", 5, 2),
	}
	c, err := NewCycle(edges)
	require.NoError(t, err)
	assert.Equal(t, 1.0, c.Value())
}

func TestCycle_StartAt_Rotates(t *testing.T) {
	edges := []Edge{
		mustEdge(t, "a", "b", 1, 0),
		mustEdge(t, "b", "c", 1, 1),
		mustEdge(t, "c", "a", 1, 2),
	}
	c, err := NewCycle(edges)
	require.NoError(t, err)

	rotated := c.StartAt(1)
	require.Equal(t, 3, rotated.Len())
	assert.Equal(t, "b", rotated.At(0).Start)
	assert.Equal(t, "c", rotated.At(1).Start)
	assert.Equal(t, "a", rotated.At(2).Start)
}

func TestCycle_Reverse_KeepsClosure(t *testing.T) {
	edges := []Edge{
		mustEdge(t, "a", "b", 1, 0),
		mustEdge(t, "b", "c", 1, 1),
		mustEdge(t, "c", "a", 1, 2),
	}
	c, err := NewCycle(edges)
	require.NoError(t, err)

	rev := c.Reverse()
	// reversed walk must still close.
	for i := 0; i < rev.Len(); i++ {
		next := rev.At((i + 1) % rev.Len())
		assert.Equal(t, rev.At(i).Finish, next.Start)
		assert.Equal(t, -1.0, rev.At(i).Value, "reversing flips every edge's orientation")
	}
	assert.Equal(t, "a", rev.At(0).Start)
}

func TestCycle_WithFlow_SubtractsFromEveryEdge(t *testing.T) {
	edges := []Edge{
		mustEdge(t, "a", "b", 3, 0),
		mustEdge(t, "b", "a", 2, 1),
	}
	c, err := NewCycle(edges)
	require.NoError(t, err)

	reduced := c.WithFlow(c.Value())
	assert.Equal(t, 1.0, reduced.At(0).Value)
	assert.Equal(t, 0.0, reduced.At(1).Value)
}

func TestNewEdge_Validation(t *testing.T) {
	_, err := NewEdge("", "b", 1, 0)
	assert.True(t, errors.Is(err, ErrEmptyEndpoint))

	_, err = NewEdge("a", "b", 0, 0)
	assert.True(t, errors.Is(err, ErrZeroValue))

	e, err := NewEdge("a", "b", -1, 0)
	require.NoError(t, err, "a negative value is a valid, signed flow, not an error")
	assert.Equal(t, -1.0, e.Value)
}

func TestEdge_Reversed_NegatesValue(t *testing.T) {
	e := mustEdge(t, "a", "b", 2, 0)
	rev := e.Reversed()
	assert.Equal(t, "b", rev.Start)
	assert.Equal(t, "a", rev.Finish)
	assert.Equal(t, -2.0, rev.Value)
}

func TestCycle_WithFlow_IsSignAware(t *testing.T) {
	edges := []Edge{
		mustEdge(t, "a", "b", 3, 0),
		mustEdge(t, "b", "a", -2, 1),
	}
	c, err := NewCycle(edges)
	require.NoError(t, err)

	reduced := c.WithFlow(2)
	assert.Equal(t, 1.0, reduced.At(0).Value, "positive edge moves toward zero")
	assert.Equal(t, 0.0, reduced.At(1).Value, "negative edge also moves toward zero, from below")
}
