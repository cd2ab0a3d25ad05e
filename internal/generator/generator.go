// Package generator creates random passwords that contain every character
// class the strength package recognises.
package generator

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/dmitrijs2005/passcheck/internal/strength"
)

const (
	// DefaultLength is the length of generated passwords unless configured otherwise.
	DefaultLength = 12

	// minLength leaves room for one character of each class.
	minLength = 4
)

// alphabet is the union of all four classes.
const alphabet = strength.Uppercase + strength.Lowercase + strength.Digits + strength.Symbols

// Generator produces passwords of at least Length characters.
type Generator struct {
	length int
	rand   io.Reader
}

// New returns a Generator for passwords of the given length. Lengths below
// four are raised to four.
func New(length int) *Generator {
	if length < minLength {
		length = minLength
	}
	return &Generator{length: length, rand: rand.Reader}
}

// Length returns the length of generated passwords.
func (g *Generator) Length() int {
	return g.length
}

// Generate returns one uppercase letter, one lowercase letter, one digit and
// one symbol, in that order, followed by uniformly random characters from
// all classes up to the configured length.
func (g *Generator) Generate() (string, error) {
	var sb strings.Builder
	sb.Grow(g.length)

	for _, set := range []string{strength.Uppercase, strength.Lowercase, strength.Digits, strength.Symbols} {
		c, err := g.pick(set)
		if err != nil {
			return "", err
		}
		sb.WriteByte(c)
	}
	for sb.Len() < g.length {
		c, err := g.pick(alphabet)
		if err != nil {
			return "", err
		}
		sb.WriteByte(c)
	}
	return sb.String(), nil
}

// pick returns a uniformly chosen byte of set. All alphabets are ASCII.
func (g *Generator) pick(set string) (byte, error) {
	n, err := rand.Int(g.rand, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, fmt.Errorf("generate password: %w", err)
	}
	return set[n.Int64()], nil
}
