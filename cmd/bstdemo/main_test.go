package main

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := newApp(&out, &errOut).Run(append([]string{"bstdemo"}, args...))
	require.NoError(t, err)
	return out.String(), errOut.String()
}

func TestDemoDefaults(t *testing.T) {
	assert := assert.New(t)
	out, _ := runApp(t)

	assert.Contains(out, "size: 9\n")
	assert.Contains(out, "root: 3\n")
	assert.Contains(out, "height: 4\n")
	assert.Contains(out, "balanced: false\n")
	assert.Contains(out, "valid: true\n")
	assert.Contains(out, "third largest: 7\n")
}

func TestDemoRemoveRootOfTwo(t *testing.T) {
	assert := assert.New(t)
	out, _ := runApp(t, "--keys", "5", "--keys", "8", "--remove", "5")

	assert.Contains(out, "size: 1\n")
	assert.Contains(out, "root: 8\n")
	assert.Contains(out, "height: 0\n")
	assert.Contains(out, "third largest: none\n")
}

func TestDemoRemoveMissing(t *testing.T) {
	out, logs := runApp(t, "--keys", "1", "--remove", "2", "--log-level", "warn")

	assert.Contains(t, out, "size: 1\n")
	assert.Contains(t, logs, "failed to remove key")
	assert.NotContains(t, logs, "building tree")
}

func TestDemoRender(t *testing.T) {
	out, _ := runApp(t, "--render")
	for _, s := range []string{"3: 3", "9: 9", "7: 7"} {
		assert.Contains(t, out, s)
	}
}

func TestDemoEmpty(t *testing.T) {
	out, _ := runApp(t, "--keys", "1", "--remove", "1")
	assert.Contains(t, out, "size: 0\n")
	assert.NotContains(t, out, "root:")
	assert.Contains(t, out, "valid: true\n")
}

func TestBuildTreeLogsAtDebug(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tree := buildTree(logger, []int{2, 1, 3}, []int{2})

	r := summarize(tree)
	assert.Equal(t, uint(2), r.size)
	assert.Equal(t, 3, r.root)
	assert.True(t, r.valid)
	assert.Contains(t, logs.String(), `"msg":"inserted key"`)
	assert.Contains(t, logs.String(), `"msg":"removed key"`)

	summarize(buildTree(slog.New(slog.NewTextHandler(io.Discard, nil)), nil, nil)).print(&logs)
	assert.Contains(t, logs.String(), "size: 0\n")
}
