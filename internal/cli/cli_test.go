package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/graphfile"
)

// run executes the CLI with args and returns stdout and logs.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	root := NewRootCommand(&logs)
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(args)
	err := root.ExecuteContext(t.Context())

	return out.String(), logs.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// farmFile writes the demo graph as a TOML file.
func farmFile(t *testing.T) string {
	t.Helper()
	net, err := farmNetwork()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, graphfile.Encode(&buf, net.Graph()))
	return writeFile(t, "farm.toml", buf.String())
}

func TestDemo(t *testing.T) {
	out, _, err := run(t, "demo")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Breadth First Search:", lines[0])
	assert.Contains(t, lines[1], "donkey → horse")
	assert.Contains(t, lines[1], "(1 hops, weight 8)")
	assert.Equal(t, "Dijkstra's:", lines[2])
	assert.Contains(t, lines[3], "donkey → horse")
}

func TestDemo_Diverge(t *testing.T) {
	out, _, err := run(t, "demo", "--from", "sheep", "--to", "horse")
	require.NoError(t, err)
	assert.Contains(t, out, "sheep → donkey → horse (2 hops, weight 17)")
	assert.Contains(t, out, "sheep → cow → horse (2 hops, weight 8)")
}

func TestDemo_UnknownVertex(t *testing.T) {
	_, _, err := run(t, "demo", "--to", "goat")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, _, err = run(t, "demo", "--algo", "astar")
	assert.Error(t, err)
}

func TestFind(t *testing.T) {
	path := farmFile(t)

	out, _, err := run(t, "find", "-g", path, "--from", "donkey", "--to", "cow", "--algo", "dijkstra")
	require.NoError(t, err)
	assert.NotContains(t, out, "Breadth First Search:")
	assert.Contains(t, out, "donkey → sheep → cow (2 hops, weight 12)")

	out, _, err = run(t, "find", "-g", path, "--from", "donkey", "--to", "cow", "--max-cost", "11")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, noPathMessage), "bfs fits within 11 hops, dijkstra does not fit within weight 11")

	_, _, err = run(t, "find", "-g", path, "--from", "donkey")
	assert.Error(t, err, "--to is required")
}

func TestFind_NoPath(t *testing.T) {
	path := writeFile(t, "split.toml", `
[[vertex]]
name = "a"
[[vertex]]
name = "b"
`)
	out, _, err := run(t, "find", "-g", path, "--from", "a", "--to", "b")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, noPathMessage))
}

func TestFind_VerboseLogsRunID(t *testing.T) {
	_, logs, err := run(t, "-v", "find", "-g", farmFile(t), "--from", "donkey", "--to", "cow", "--algo", "bfs")
	require.NoError(t, err)
	assert.Contains(t, logs, "run=")
	assert.Contains(t, logs, "bfs: destination reached")
}

func TestConfig_Applied(t *testing.T) {
	cfg := writeFile(t, "lvlpath.toml", "algorithm = \"bfs\"\nmax_cost = 1.0\n")
	out, _, err := run(t, "--config", cfg, "find", "-g", farmFile(t), "--from", "donkey", "--to", "cow")
	require.NoError(t, err)
	assert.Contains(t, out, "Breadth First Search:")
	assert.NotContains(t, out, "Dijkstra's:")
	assert.Contains(t, out, noPathMessage)

	// Flags win over the file.
	out, _, err = run(t, "--config", cfg, "find", "-g", farmFile(t), "--from", "donkey", "--to", "cow", "--max-cost", "5")
	require.NoError(t, err)
	assert.NotContains(t, out, noPathMessage)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeFile(t, "ok.toml", "format = \"svg\"\n"))
	require.NoError(t, err)
	assert.Equal(t, formatSVG, cfg.Format)
	assert.Equal(t, algoBoth, cfg.Algorithm)
	assert.Nil(t, cfg.MaxCost)

	_, err = LoadConfig(writeFile(t, "bad.toml", "algorithm = \"astar\"\nformat = \"png\"\nmax_cost = -1.0\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "algorithm must be one of")
	assert.Contains(t, err.Error(), "format must be one of")
	assert.Contains(t, err.Error(), "maxcost must be ≥ 0")

	_, err = LoadConfig(writeFile(t, "typo.toml", "algorithim = \"bfs\"\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, _, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "demo")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRender_DOT(t *testing.T) {
	out, _, err := run(t, "render", "-g", farmFile(t), "--from", "sheep", "--to", "horse")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `graph "G" {`))
	assert.Contains(t, out, `n1 -- n2 [label="3", penwidth=3`)

	_, _, err = run(t, "render", "-g", farmFile(t), "--from", "sheep")
	assert.Error(t, err)
	_, _, err = run(t, "render", "-g", farmFile(t), "--format", "png")
	assert.Error(t, err)
}

func TestGen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.toml")
	_, _, err := run(t, "gen", "--shape", "grid", "--rows", "2", "--cols", "3",
		"--min-weight", "1", "--max-weight", "9", "--integer", "-o", path)
	require.NoError(t, err)

	net, err := graphfile.LoadNetwork(path)
	require.NoError(t, err)
	assert.Equal(t, 6, net.Graph().VertexCount())
	assert.Equal(t, 7, net.Graph().EdgeCount())

	out, _, err := run(t, "gen", "--shape", "cycle", "-n", "3")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "[[edge]]"))

	_, _, err = run(t, "gen", "--shape", "hexagon")
	assert.Error(t, err)
	_, _, err = run(t, "gen", "--min-weight", "5", "--max-weight", "1")
	assert.Error(t, err)
}
