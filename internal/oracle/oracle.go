// Package oracle decides whether a password is known to be compromised or
// trivially common.
//
// Two strategies satisfy Oracle: Wordlist, an offline case-insensitive
// membership test against a bundled list, and Breach, a k-anonymity lookup
// against a Pwned Passwords compatible range API. Any combines several.
package oracle

import "context"

// Oracle reports whether a password is known to be compromised.
//
// Implementations never return an error to the caller: a lookup that cannot
// be completed answers false.
type Oracle interface {
	IsCompromised(ctx context.Context, password string) bool
}

// Func adapts an ordinary function to Oracle.
type Func func(ctx context.Context, password string) bool

func (f Func) IsCompromised(ctx context.Context, password string) bool {
	return f(ctx, password)
}

// Any is compromised when at least one member oracle says so. Members are
// consulted in order and the first positive answer stops the scan.
type Any []Oracle

func (a Any) IsCompromised(ctx context.Context, password string) bool {
	for _, o := range a {
		if o != nil && o.IsCompromised(ctx, password) {
			return true
		}
	}
	return false
}
