// Package estimator turns a password and its character classes into an
// approximate time-to-crack.
//
// Three strategies implement Estimator: Analytic (pool size ^ length / guess
// rate), Table (precomputed times by pool bucket and length) and Pattern
// (zxcvbn's pattern-aware entropy). All of them cap passwords that contain a
// run of three or more identical characters at PenaltyCap seconds.
package estimator

import "github.com/dmitrijs2005/passcheck/internal/strength"

// Estimator produces a crack-time estimate for password, whose classes have
// already been computed by strength.Classify.
type Estimator interface {
	Estimate(password string, c strength.Classes) Estimate
}

// Estimate is a crack time in seconds plus its rendering.
type Estimate struct {
	Seconds float64 `json:"seconds"`
	Display string  `json:"display"`

	// Penalized is set when the repeated-character cap applied.
	Penalized bool `json:"penalized,omitempty"`

	// Saturated is set when the true value is beyond what is tracked and
	// Seconds holds the saturation ceiling instead.
	Saturated bool `json:"saturated,omitempty"`
}

const (
	// Zero is shown for an empty password.
	Zero = "0 seconds"

	// Instant is shown when no time unit threshold is reached, and for
	// compromised passwords.
	Instant = "Instantly"

	// PenaltyCap is the ceiling, in seconds, for passwords with a repeated run.
	PenaltyCap = 10

	// RepeatRun is the run length that triggers the penalty.
	RepeatRun = 3
)

// Empty is the baseline estimate of an empty password.
func Empty() Estimate {
	return Estimate{Display: Zero}
}

// Compromised is the estimate of a password an oracle has flagged.
func Compromised() Estimate {
	return Estimate{Display: Instant}
}

// HasRepeatedRun reports whether password contains n or more identical
// consecutive runes.
func HasRepeatedRun(password string, n int) bool {
	if n <= 1 {
		return password != ""
	}
	var prev rune
	run := 0
	for i, r := range password {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run >= n {
			return true
		}
		prev = r
	}
	return false
}

// penalize caps e at PenaltyCap seconds if password has a repeated run.
// format renders the capped value.
func penalize(password string, e Estimate, format func(float64) string) Estimate {
	if !HasRepeatedRun(password, RepeatRun) {
		return e
	}
	e.Penalized = true
	if e.Seconds > PenaltyCap {
		e.Seconds = PenaltyCap
		e.Saturated = false
		e.Display = format(PenaltyCap)
	}
	return e
}
