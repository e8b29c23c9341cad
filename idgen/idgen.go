// Package idgen allocates human-readable project ids of the form
// adjective-adjective-color-noun, e.g. "kleiner-mutiger-roter-fuchs".
package idgen

import (
	"crypto/rand"
	"io"
	"math/big"
	"regexp"
	"strings"

	"github.com/rpupo63/playground-backend/errs"
)

// Separator joins the id tokens.
const Separator = "-"

// DefaultAttempts bounds GenerateUnique retries.
const DefaultAttempts = 8

// Pattern matches every id Generate can produce.
var Pattern = regexp.MustCompile(`^[a-z]+-[a-z]+-[a-z]+-[a-z]+$`)

type Generator struct {
	random io.Reader
}

// New returns a Generator backed by crypto/rand.
func New() *Generator {
	return &Generator{random: rand.Reader}
}

// NewWithReader returns a Generator drawing randomness from r.
func NewWithReader(r io.Reader) *Generator {
	return &Generator{random: r}
}

// Generate returns a fresh id. The two adjectives are always distinct.
func (g *Generator) Generate() (string, error) {
	n, err := g.pick(len(nouns))
	if err != nil {
		return "", errs.NewGenerationError(err)
	}
	first, err := g.pick(len(adjectives))
	if err != nil {
		return "", errs.NewGenerationError(err)
	}
	second, err := g.pick(len(adjectives) - 1)
	if err != nil {
		return "", errs.NewGenerationError(err)
	}
	if second >= first {
		second++
	}
	c, err := g.pick(len(colors))
	if err != nil {
		return "", errs.NewGenerationError(err)
	}

	target := nouns[n]
	suffix := target.gender.suffix()
	return strings.Join([]string{
		adjectives[first] + suffix,
		adjectives[second] + suffix,
		colors[c] + suffix,
		target.word,
	}, Separator), nil
}

// GenerateUnique calls Generate until exists reports the id as free. It
// gives up after attempts tries.
func (g *Generator) GenerateUnique(exists func(id string) (bool, error), attempts int) (string, error) {
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	for i := 0; i < attempts; i++ {
		id, err := g.Generate()
		if err != nil {
			return "", err
		}
		taken, err := exists(id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
	}
	return "", errs.NewGenerationError(errCollisions)
}

// Combinations is the number of distinct ids the vocabulary can produce.
func Combinations() int64 {
	a := int64(len(adjectives))
	return a * (a - 1) * int64(len(colors)) * int64(len(nouns))
}

func (g *Generator) pick(n int) (int, error) {
	v, err := rand.Int(g.random, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
