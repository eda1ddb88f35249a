package Tries

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrie_Basic(t *testing.T) {
	tr := Build([]string{"hel", "hell", "hello", "wor", "worl", "world", "word"})
	assert.Equal(t, 7, tr.Len())
	assert.False(t, tr.Search("wo"))
	assert.True(t, tr.Search("wor"))
	assert.True(t, tr.StartsWith("h"))
	assert.True(t, tr.StartsWith("wo"))
	assert.False(t, tr.StartsWith("x"))
	assert.Equal(t, []string{"wor", "word", "worl", "world"}, tr.WordsWithPrefix("w"))
	assert.Equal(t, []string{"worl", "world"}, tr.WordsWithPrefix("worl"))
	assert.Nil(t, tr.WordsWithPrefix("x"))
}

func TestTrie_Duplicates(t *testing.T) {
	var tr Trie
	require.True(t, tr.Insert("abc"))
	require.False(t, tr.Insert("abc"))
	assert.Equal(t, 1, tr.Len())
	assert.False(t, tr.Search(""))
	require.True(t, tr.Insert(""))
	assert.True(t, tr.Search(""))
	assert.Equal(t, []string{"", "abc"}, tr.WordsWithPrefix(""))
}

func TestTrie_Unicode(t *testing.T) {
	tr := Build([]string{"日本", "日本語", "日曜"})
	// 曜 (U+66DC) sorts before 本 (U+672C).
	assert.Equal(t, []string{"日曜", "日本", "日本語"}, tr.WordsWithPrefix("日"))
	assert.True(t, tr.StartsWith("日本"))
	assert.False(t, tr.Search("日"))
}

func TestTrie_InvalidUTF8(t *testing.T) {
	tr := Build([]string{"\xff", "a\xfe"})
	assert.Equal(t, 2, tr.Len())
	assert.True(t, tr.Search("\xff"))
	assert.False(t, tr.Search("\xfe"))
	assert.False(t, tr.Search("\ufffd"))
	assert.False(t, tr.StartsWith("\xfe"))
	assert.False(t, tr.Search("a\xff"))
	require.True(t, tr.Insert("\xfe"))
	assert.Equal(t, []string{"\xfe", "\xff", "a\xfe"}, tr.WordsWithPrefix(""))
	assert.Equal(t, []string{"a\xfe"}, tr.WordsWithPrefix("a"))
}

func TestTrie_AgainstFilter(t *testing.T) {
	rg := rand.New(rand.NewSource(0))
	const alphabet = "abc"
	words := make([]string, 500)
	for i := range words {
		b := make([]byte, 1+rg.Intn(6))
		for j := range b {
			b[j] = alphabet[rg.Intn(len(alphabet))]
		}
		words[i] = string(b)
	}
	tr := Build(words)
	unique := slices.Compact(slices.Sorted(slices.Values(words)))
	assert.Equal(t, len(unique), tr.Len())
	for _, p := range []string{"", "a", "ab", "cab", "bbbb", "abcabc"} {
		var want []string
		for _, w := range unique {
			if strings.HasPrefix(w, p) {
				want = append(want, w)
			}
		}
		got := tr.WordsWithPrefix(p)
		slices.Sort(got)
		assert.Equal(t, want, got, "prefix %q", p)
		assert.Equal(t, len(want) > 0, tr.StartsWith(p), "prefix %q", p)
	}
}
