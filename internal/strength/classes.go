// Package strength classifies the characters of a password and turns the
// result into a score, a category and a display colour.
//
// The symbol alphabet is defined once (Symbols) and shared with the crack-time
// estimator pool table and the password generator, so a character counted as
// a symbol here is also counted as one everywhere else.
package strength

import "strings"

// Character alphabets recognised by the classifier.
const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*()_+-=[]{}|;':\",.<>?"
)

// Classes reports which character classes occur in a password.
type Classes struct {
	Lowercase bool `json:"lowercase"`
	Uppercase bool `json:"uppercase"`
	Digit     bool `json:"digit"`
	Symbol    bool `json:"symbol"`
}

// Classify inspects every rune of password once. Runes outside the four
// alphabets (spaces, non-ASCII letters, etc.) do not count towards any class.
func Classify(password string) Classes {
	var c Classes
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			c.Lowercase = true
		case r >= 'A' && r <= 'Z':
			c.Uppercase = true
		case r >= '0' && r <= '9':
			c.Digit = true
		case strings.ContainsRune(Symbols, r):
			c.Symbol = true
		}
	}
	return c
}

// Count returns the number of classes present (0..4).
func (c Classes) Count() int {
	n := 0
	for _, ok := range []bool{c.Lowercase, c.Uppercase, c.Digit, c.Symbol} {
		if ok {
			n++
		}
	}
	return n
}

// Empty reports whether no class is present.
func (c Classes) Empty() bool {
	return c == Classes{}
}

// PoolSize is the number of distinct characters an attacker has to try per
// position when only the present classes are used.
func PoolSize(c Classes) int {
	size := 0
	if c.Lowercase {
		size += len(Lowercase)
	}
	if c.Uppercase {
		size += len(Uppercase)
	}
	if c.Digit {
		size += len(Digits)
	}
	if c.Symbol {
		size += len(Symbols)
	}
	return size
}
