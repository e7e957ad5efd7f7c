package ordset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDotGraph(t *testing.T) {
	tree := buildAVL(1, 2, 3)
	out := tree.DotGraph().String()
	require.Contains(t, out, "digraph")
	for _, label := range []string{"2 - 2", "1 - 1", "3 - 1"} {
		require.Contains(t, out, label)
	}
	require.NotContains(t, out, "point")

	// a missing child is drawn as a point
	plain := buildPlain(1, 2)
	require.Contains(t, plain.DotGraph().String(), "point")

	empty := NewAVLTree[int]().DotGraph().String()
	require.NotContains(t, empty, "label")
}

func TestPrintTree(t *testing.T) {
	var buf bytes.Buffer
	buildAVL(1, 2, 3, 4).PrintTree(&buf)

	expect := strings.Join([]string{
		"        4 (1)",
		"    key:3 height:2 balance:-1",
		"        <nil>",
		"key:2 height:3 balance:-1",
		"    1 (1)",
		"",
	}, "\n")
	require.Equal(t, expect, buf.String())
}

func TestDepthReport(t *testing.T) {
	var buf bytes.Buffer
	tree := buildAVL(1, 2, 3, 4, 5, 6, 7)
	require.NoError(t, tree.DepthReport(&buf, 3))
	require.Contains(t, buf.String(), "nodes=7 max_depth=2")

	buf.Reset()
	require.NoError(t, NewPlainTree[int]().DepthReport(&buf, 3))
	require.Empty(t, buf.String())
}
