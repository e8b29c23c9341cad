package idgen

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rpupo63/playground-backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy unavailable") }

func genderOf(t *testing.T, word string) gender {
	t.Helper()
	for _, n := range nouns {
		if n.word == word {
			return n.gender
		}
	}
	t.Fatalf("unknown noun %q", word)
	return masculine
}

func TestGenerateMatchesPattern(t *testing.T) {
	g := New()
	for i := 0; i < 500; i++ {
		id, err := g.Generate()
		require.NoError(t, err)
		assert.Regexp(t, Pattern, id)
	}
}

func TestGenerateAgreement(t *testing.T) {
	g := New()
	for i := 0; i < 500; i++ {
		id, err := g.Generate()
		require.NoError(t, err)

		parts := strings.Split(id, Separator)
		require.Len(t, parts, 4)

		suffix := genderOf(t, parts[3]).suffix()
		for _, token := range parts[:3] {
			assert.True(t, strings.HasSuffix(token, suffix), "%s should end in %q (id %s)", token, suffix, id)
		}
		assert.NotEqual(t, parts[0], parts[1], "adjectives must differ in %s", id)
	}
}

func TestGenerateDeterministicForSameEntropy(t *testing.T) {
	seed := bytes.Repeat([]byte{0x13, 0x37, 0xc0, 0xde}, 64)

	a, err := NewWithReader(bytes.NewReader(seed)).Generate()
	require.NoError(t, err)
	b, err := NewWithReader(bytes.NewReader(seed)).Generate()
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerateEntropyFailure(t *testing.T) {
	_, err := NewWithReader(failingReader{}).Generate()

	require.Error(t, err)
	assert.True(t, errs.IsGeneration(err))
}

func TestGenerateUnique(t *testing.T) {
	g := New()
	calls := 0
	id, err := g.GenerateUnique(func(string) (bool, error) {
		calls++
		return calls < 3, nil
	}, 5)

	require.NoError(t, err)
	assert.Regexp(t, Pattern, id)
	assert.Equal(t, 3, calls)
}

func TestGenerateUniqueGivesUp(t *testing.T) {
	_, err := New().GenerateUnique(func(string) (bool, error) { return true, nil }, 2)

	require.Error(t, err)
	assert.True(t, errs.IsGeneration(err))
}

func TestGenerateUniquePropagatesLookupError(t *testing.T) {
	lookupErr := errors.New("disk on fire")
	_, err := New().GenerateUnique(func(string) (bool, error) { return false, lookupErr }, 2)

	assert.ErrorIs(t, err, lookupErr)
}

func TestVocabularyIsPathSafe(t *testing.T) {
	all := append(append([]string{}, adjectives...), colors...)
	for _, n := range nouns {
		all = append(all, n.word)
	}
	for _, w := range all {
		for _, r := range w {
			assert.True(t, r >= 'a' && r <= 'z', "%q contains %q", w, r)
		}
	}

	words := map[string]bool{}
	for _, n := range nouns {
		assert.False(t, words[n.word], "noun %q listed twice", n.word)
		words[n.word] = true
	}
	assert.Greater(t, Combinations(), int64(1_000_000))
}
