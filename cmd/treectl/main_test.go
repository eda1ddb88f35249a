package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-m-twostay/go-trees/Trees"
	"github.com/g-m-twostay/go-trees/internal/config"
	"github.com/g-m-twostay/go-trees/internal/input"
)

// run executes treectl with args in the default table style and returns what
// it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	rootCmd := newRootCmd(&app{})
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"--style", "default"}, args...))

	err := rootCmd.Execute()

	return buf.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func row(t *testing.T, out, name, value string) {
	t.Helper()

	re := regexp.MustCompile(`\|\s*` + regexp.QuoteMeta(name) + `\s*\|\s*` + regexp.QuoteMeta(value) + `\s*\|`)
	assert.Regexp(t, re, out)
}

func TestHelp(t *testing.T) {
	out, err := run(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "treectl builds the trees")

	_, err = run(t, "unknown")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "treectl dev\n", out)
}

func TestAVL_Range(t *testing.T) {
	out, err := run(t, "avl", "--range", "0:15")
	require.NoError(t, err)
	row(t, out, "count", "15")
	row(t, out, "depth", "3")
	row(t, out, "minimum", "0")
	row(t, out, "maximum", "14")
	row(t, out, "in-order", "0 1 2 3 4 5 6 7 8 9 10 11 12 13 14")
	assert.Contains(t, out, "\n      7\n")
}

func TestAVL_KeysDelete(t *testing.T) {
	out, err := run(t, "avl", "--keys", "1,2,3", "--delete", "2", "--delete", "9")
	require.NoError(t, err)
	row(t, out, "count", "2")
	row(t, out, "in-order", "1 3")
	row(t, out, "rebalances", "1")
}

func TestAVL_File(t *testing.T) {
	path := writeFile(t, "keys.yaml", "keys: [8, 3, 5, 1]\n")
	out, err := run(t, "avl", "--file", path, "--shuffle", "--seed", "3")
	require.NoError(t, err)
	row(t, out, "in-order", "1 3 5 8")
}

func TestAVL_Unbalanced(t *testing.T) {
	out, err := run(t, "avl", "--range", "0:10", "--unbalanced")
	require.NoError(t, err)
	row(t, out, "depth", "9")
	row(t, out, "rebalances", "0")
	row(t, out, "pre-order", "0 1 2 3 4 5 6 7 8 9")
}

func TestAVL_Large(t *testing.T) {
	out, err := run(t, "avl", "--range", "0:200")
	require.NoError(t, err)
	row(t, out, "count", "200")
	assert.Regexp(t, `depth \d+: too deep to draw`, out)
	assert.NotContains(t, out, "·")
}

func TestAVL_UnbalancedDeep(t *testing.T) {
	out, err := run(t, "avl", "--range", "0:40", "--unbalanced")
	require.NoError(t, err)
	row(t, out, "depth", "39")
	assert.Contains(t, out, "depth 39: too deep to draw")
	assert.NotContains(t, out, "·")
	assert.Less(t, len(out), 4096)
}

func TestAVL_Errors(t *testing.T) {
	_, err := run(t, "avl")
	require.Error(t, err)

	_, err = run(t, "avl", "--range", "0:3", "--keys", "1")
	require.Error(t, err)

	_, err = run(t, "avl", "--range", "7:3")
	require.ErrorIs(t, err, input.ErrSyntax)

	_, err = run(t, "avl", "--file", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestInterval_File(t *testing.T) {
	path := writeFile(t, "intervals.yaml", `
intervals:
  - [0, 6]
  - [5, 9]
  - [7, 8]
  - [9, 12]
  - {low: 11, high: 13}
  - [6, 20]
  - [18, 22]
`)
	out, err := run(t, "interval", "--file", path, "--query", "10,20", "--all")
	require.NoError(t, err)
	row(t, out, "count", "7")
	row(t, out, "max high", "22")

	row(t, out, "query", "[10, 20]")
	_, found, ok := strings.Cut(out, "query")
	require.True(t, ok)
	for _, want := range []string{"[6, 20]", "[9, 12]", "[11, 13]", "[18, 22]"} {
		assert.Contains(t, found, want)
	}
	assert.NotContains(t, found, "[0, 6]")
	assert.NotContains(t, found, "[5, 9]")
}

func TestInterval_AddDelete(t *testing.T) {
	out, err := run(t, "interval", "--add", "0,6", "--add", "5,9", "--delete", "0,6", "--query", "6,6")
	require.NoError(t, err)
	row(t, out, "count", "1")
	row(t, out, "1", "[5, 9]")

	out, err = run(t, "interval", "--add", "0,6", "--query", "7,8")
	require.NoError(t, err)
	row(t, out, "1", "none")
}

func TestInterval_Errors(t *testing.T) {
	_, err := run(t, "interval", "--add", "5,1")
	require.ErrorIs(t, err, Trees.ErrInvalidArgument)

	_, err = run(t, "interval", "--add", "0,1", "--query", "3,2")
	require.ErrorIs(t, err, Trees.ErrInvalidArgument)

	_, err = run(t, "interval", "--add", "0")
	require.ErrorIs(t, err, input.ErrSyntax)

	_, err = run(t, "interval")
	require.Error(t, err)
}

func TestTrie(t *testing.T) {
	out, err := run(t, "trie", "--words", "car,cart,care,cat,dog", "--prefix", "car")
	require.NoError(t, err)
	row(t, out, "words", "5")
	row(t, out, "is a word", "true")
	row(t, out, "matches", "car care cart")

	out, err = run(t, "trie", "--words", "car", "--prefix", "ca")
	require.NoError(t, err)
	row(t, out, "is a word", "false")
	row(t, out, "is a prefix", "true")
}

func TestFenwick(t *testing.T) {
	out, err := run(t, "fenwick", "--values", "3,2,-1,6", "--set", "1=10", "--prefix", "2")
	require.NoError(t, err)
	assert.Regexp(t, `\|\s*3\s*\|\s*6\s*\|\s*18\s*\|`, out)
	assert.Regexp(t, `\|\s*PREFIX\s*\|\s*2\s*\|\s*12\s*\|`, out)

	_, err = run(t, "fenwick", "--values", "1,2", "--prefix", "2")
	require.ErrorIs(t, err, Trees.ErrInvalidArgument)

	_, err = run(t, "fenwick", "--values", "1,2", "--set", "5=1")
	require.ErrorIs(t, err, Trees.ErrInvalidArgument)
}

func TestConfig(t *testing.T) {
	path := writeFile(t, "treectl.yaml", "build:\n  shuffle: true\n  seed: 11\n")
	out, err := run(t, "--config", path, "avl", "--range", "0:20")
	require.NoError(t, err)
	row(t, out, "count", "20")

	_, err = run(t, "--log-level", "loud", "version")
	require.ErrorIs(t, err, config.ErrInvalidLogLevel)

	_, err = run(t, "--style", "fancy", "version")
	require.ErrorIs(t, err, config.ErrInvalidOutputStyle)
}
