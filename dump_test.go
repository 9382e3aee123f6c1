package logfacade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dumpNode struct {
	Name     string
	Children []*dumpNode
	Tags     map[string]int
	Parent   *dumpNode
	secret   string
}

func TestDump_Struct(t *testing.T) {
	ctx, _ := newTestContext(t)
	lg, out := newCaptureLogger(t, ctx, "dump")

	root := &dumpNode{Name: "root", Tags: map[string]int{"k": 1}, secret: "hidden"}
	child := &dumpNode{Name: "child", Parent: root}
	root.Children = []*dumpNode{child}

	require.True(t, ctx.Dump(lg, root))
	lines := out.Lines()

	assert.Equal(t, "Struct: dumpNode", lines[0])
	assert.Contains(t, lines, "Name: root")
	assert.Contains(t, lines, "Tags[k]: 1")
	assert.Contains(t, lines, "Children[0].Name: child")
	assert.Contains(t, lines, "Children[0].Parent: <circular reference>")
	for _, l := range lines {
		assert.NotContains(t, l, "hidden")
	}
}

func TestDump_Filtered(t *testing.T) {
	ctx, _ := newTestContext(t)
	lg, out := newCaptureLogger(t, ctx, "quiet")
	require.True(t, ctx.SetLoggerLevel(lg, LevelInfo))

	assert.False(t, ctx.Dump(lg, 42))
	assert.False(t, ctx.Dump(0, 42))
	assert.Empty(t, out.Lines())
}

func TestDump_ScalarsAndNil(t *testing.T) {
	ctx, _ := newTestContext(t)
	lg, out := newCaptureLogger(t, ctx, "scalars")

	require.True(t, ctx.Dump(lg, nil))
	require.True(t, ctx.Dump(lg, 7))
	var p *dumpNode
	require.True(t, ctx.Dump(lg, p))

	assert.Equal(t, []string{"Dump: <nil>", ": 7", ": <nil>"}, out.Lines())
}

func TestDump_LongSlice(t *testing.T) {
	ctx, _ := newTestContext(t)
	lg, out := newCaptureLogger(t, ctx, "slice")

	require.True(t, ctx.Dump(lg, make([]int, 15)))
	lines := out.Lines()
	assert.Equal(t, ": []int (len: 15, cap: 15) {", lines[0])
	assert.Contains(t, lines, ": ... (5 more elements)")
	assert.Equal(t, ": }", lines[len(lines)-1])
}
