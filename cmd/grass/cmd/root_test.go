package cmd

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "grass.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[output]\ncolor = false\n"), 0o644))

	var stdout, stderr strings.Builder
	root := NewRootCommand(strings.NewReader(stdin), &stdout, &stderr)
	root.SetArgs(append([]string{"--config", cfg}, args...))
	code := run(root, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeSource(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestParseCommand(t *testing.T) {
	assert := assert.New(t)

	res := execute(t, "", "parse", "-e", "1 + 2 * 3")
	assert.Equal(ExitOK, res.code)
	assert.Equal("(+ 1 (* 2 3))\n", res.stdout)
	assert.Empty(res.stderr)

	res = execute(t, "a.b.c; x = 1", "parse")
	assert.Equal(ExitOK, res.code)
	assert.Equal("(path a b c)\n(= x 1)\n", res.stdout)
}

func TestParseCommandFiles(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	good := writeSource(t, dir, "good.grass", "let x: Int = 1")
	bad := writeSource(t, dir, "bad.grass", "new 5")

	res := execute(t, "", "parse", good, bad)
	assert.Equal(ExitDataErr, res.code)
	assert.Equal("(let (def x Int 1))\n", res.stdout)
	assert.Equal("["+bad+" line 1:5] Error at '5': 'new' must be followed by a constructor call.\n", res.stderr)

	res = execute(t, "", "parse", filepath.Join(dir, "missing.grass"))
	assert.Equal(ExitNoInput, res.code)
}

func TestParseCommandFormats(t *testing.T) {
	assert := assert.New(t)

	res := execute(t, "", "parse", "--format", "json", "-e", "f(1)")
	require.Equal(t, ExitOK, res.code, res.stderr)
	var trees []map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &trees))
	require.Len(t, trees, 1)
	assert.Equal("ExpressionStatement", trees[0]["kind"])

	res = execute(t, "", "parse", "-f", "yaml", "-e", "f(1)")
	assert.Equal(ExitOK, res.code)
	assert.True(strings.HasPrefix(res.stdout, "- kind: ExpressionStatement\n"))

	res = execute(t, "", "parse", "-f", "xml", "-e", "f(1)")
	assert.Equal(ExitUsage, res.code)
	assert.Contains(res.stderr, "unknown format \"xml\"")
}

func TestParseCommandGolden(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	src := writeSource(t, dir, "main.grass", "x = 1")

	res := execute(t, "", "parse", "-f", "yaml", src)
	require.Equal(t, ExitOK, res.code, res.stderr)
	golden := writeSource(t, dir, "main.yaml", res.stdout)

	res = execute(t, "", "parse", "--golden", golden, src)
	assert.Equal(ExitOK, res.code)
	assert.Empty(res.stdout)
	assert.Empty(res.stderr)

	writeSource(t, dir, "main.grass", "x = 2")
	res = execute(t, "", "parse", "--golden", golden, src)
	assert.Equal(ExitDataErr, res.code)
	assert.Contains(res.stderr, "tree differs from "+golden)
	assert.Contains(res.stderr, `NumberLiteral: value "1", got "2"`)

	res = execute(t, "", "parse", "--golden", filepath.Join(dir, "missing.yaml"), src)
	assert.Equal(ExitNoInput, res.code)

	notYAML := writeSource(t, dir, "bad.yaml", "kind: [")
	res = execute(t, "", "parse", "--golden", notYAML, src)
	assert.Equal(ExitDataErr, res.code)

	res = execute(t, "", "parse", "--golden", golden, src, src)
	assert.Equal(ExitUsage, res.code)
}

func TestTokensCommand(t *testing.T) {
	assert := assert.New(t)

	res := execute(t, "", "tokens", "-e", "let x")
	assert.Equal(ExitOK, res.code)
	assert.Equal(
		"1:1      let            \"let\"\n"+
			"1:5      IDENTIFIER     \"x\"\n"+
			"1:6      EOF            \n",
		res.stdout,
	)

	file := writeSource(t, t.TempDir(), "s.grass", "x = 'open")
	res = execute(t, "", "tokens", file)
	assert.Equal(ExitDataErr, res.code)
	assert.Equal("["+file+" line 1:5] Error: Unterminated string.\n", res.stderr)
}

func TestCheckCommand(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	good := writeSource(t, dir, "good.grass", "fn main() {\n  io.print('hi')\n}\n")
	bad := writeSource(t, dir, "bad.grass", "fn main() {\n  io.print('hi')\n")

	res := execute(t, "", "check", good)
	assert.Equal(ExitOK, res.code)
	assert.Equal("1 checked, 0 failed\n", res.stdout)

	res = execute(t, "", "check", good, bad, filepath.Join(dir, "missing.grass"))
	assert.Equal(ExitDataErr, res.code)
	assert.Equal("3 checked, 2 failed\n", res.stdout)
	assert.Contains(res.stderr, "["+bad+" line 3:1] Error at end: Expect '}' after block.")

	res = execute(t, "", "check", "-q", bad)
	assert.Equal(ExitDataErr, res.code)
	assert.Empty(res.stdout)

	res = execute(t, "", "check")
	assert.Equal(ExitFailure, res.code)
}

func TestVersionCommand(t *testing.T) {
	res := execute(t, "", "version")
	assert.Equal(t, ExitOK, res.code)
	assert.True(t, strings.HasPrefix(res.stdout, "grass dev ("))
}

func TestBadConfig(t *testing.T) {
	var stdout, stderr strings.Builder
	root := NewRootCommand(strings.NewReader(""), &stdout, &stderr)
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "nope.toml"), "version"})

	assert.Equal(t, ExitUsage, run(root, &stderr))
	assert.Contains(t, stderr.String(), "config file not found")
}

func TestVerboseLogging(t *testing.T) {
	res := execute(t, "", "--verbose", "parse", "-e", "x")
	assert.Equal(t, ExitOK, res.code)
	assert.Contains(t, res.stderr, "level=DEBUG")
	assert.Contains(t, res.stderr, "statements=1")
}

func TestWatchChecksExistingFiles(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	writeSource(t, dir, "a.grass", "x")
	writeSource(t, dir, "b.grass", "x y")
	writeSource(t, dir, "notes.txt", "not grass")

	cfg := filepath.Join(t.TempDir(), "grass.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[watch]\ndebounce = \"10ms\"\n"), 0o644))

	var stdout, stderr strings.Builder
	a := &app{stdout: &stdout, stderr: &stderr, configFile: cfg, noColor: true}
	require.NoError(t, a.setup(nil, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	require.NoError(t, a.watch(ctx, dir))

	assert.Contains(stdout.String(), "ok   "+filepath.Join(dir, "a.grass"))
	assert.Contains(stdout.String(), "FAIL "+filepath.Join(dir, "b.grass"))
	assert.NotContains(stdout.String(), "notes.txt")
	assert.Contains(stderr.String(), "Expect ';' after statement.")
}
