package estimator

import (
	"math"
	"unicode/utf8"

	"github.com/dmitrijs2005/passcheck/internal/strength"
)

// DefaultGuessesPerSecond is the assumed offline attacker rate.
const DefaultGuessesPerSecond = 1e9

// Analytic models a brute-force attacker who knows which character classes
// are used: seconds = PoolSize^length / GuessesPerSecond.
type Analytic struct {
	GuessesPerSecond float64
}

// NewAnalytic returns an Analytic estimator; a non-positive rate means
// DefaultGuessesPerSecond.
func NewAnalytic(guessesPerSecond float64) *Analytic {
	if guessesPerSecond <= 0 || math.IsNaN(guessesPerSecond) || math.IsInf(guessesPerSecond, 0) {
		guessesPerSecond = DefaultGuessesPerSecond
	}
	return &Analytic{GuessesPerSecond: guessesPerSecond}
}

func (a *Analytic) Estimate(password string, c strength.Classes) Estimate {
	seconds, saturated := a.seconds(strength.PoolSize(c), utf8.RuneCountInString(password))
	e := Estimate{Seconds: seconds, Saturated: saturated, Display: Format(seconds)}
	return penalize(password, e, Format)
}

// seconds computes pool^length / rate. The magnitude is checked in log space
// first so the power is only evaluated when it fits in a float64.
func (a *Analytic) seconds(pool, length int) (float64, bool) {
	rate := a.GuessesPerSecond
	if rate <= 0 {
		rate = DefaultGuessesPerSecond
	}
	if pool == 0 || length == 0 {
		return 0, false
	}

	logSeconds := float64(length)*math.Log10(float64(pool)) - math.Log10(rate)
	if logSeconds >= math.Log10(saturationSeconds) {
		return saturationSeconds, true
	}

	combinations := math.Pow(float64(pool), float64(length))
	if math.IsInf(combinations, 0) {
		// huge rate: the quotient is fine, only the power overflows
		return math.Pow(10, logSeconds), false
	}
	return combinations / rate, false
}
