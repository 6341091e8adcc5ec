package emit

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bufSink is a minimal io.Writer-backed implementation exercising all four
// interfaces, standing in for an external formatter in tests.
type bufSink struct {
	buf bytes.Buffer
}

func (b *bufSink) WriteStats(line string) error {
	_, err := fmt.Fprintln(&b.buf, line)
	return err
}

func (b *bufSink) WriteBraney(index int, cost []float64) error {
	_, err := fmt.Fprintf(&b.buf, "%d:%v\n", index, cost)
	return err
}

func (b *bufSink) WriteNewick(s string) error {
	_, err := fmt.Fprintln(&b.buf, s)
	return err
}

func (b *bufSink) WriteDot(s string) error {
	_, err := fmt.Fprintln(&b.buf, s)
	return err
}

func TestBufSink_SatisfiesAllInterfaces(t *testing.T) {
	var (
		_ StatsSink    = (*bufSink)(nil)
		_ BraneyLogger = (*bufSink)(nil)
		_ TreeWriter   = (*bufSink)(nil)
		_ DotWriter    = (*bufSink)(nil)
	)

	s := &bufSink{}
	require.NoError(t, s.WriteStats("accepted cost=3"))
	require.NoError(t, s.WriteBraney(0, []float64{1, 2, 3}))
	require.NoError(t, s.WriteNewick("(a,b);"))
	require.NoError(t, s.WriteDot("digraph{}"))

	assert.Contains(t, s.buf.String(), "accepted cost=3")
	assert.Contains(t, s.buf.String(), "(a,b);")
	assert.Contains(t, s.buf.String(), "digraph{}")
}
