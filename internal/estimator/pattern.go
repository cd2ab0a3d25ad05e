package estimator

import (
	"github.com/dmitrijs2005/passcheck/internal/strength"
	"github.com/nbutton23/zxcvbn-go"
)

// maxPatternLen bounds the input handed to zxcvbn, whose matching slows
// down sharply on long inputs.
const maxPatternLen = 50

// Pattern uses zxcvbn's dictionary, keyboard, sequence and date matching.
// UserInputs are extra words (user name, e-mail) zxcvbn treats as guessable.
type Pattern struct {
	UserInputs []string
}

// NewPattern returns a Pattern estimator.
func NewPattern(userInputs ...string) *Pattern {
	return &Pattern{UserInputs: userInputs}
}

func (p *Pattern) Estimate(password string, _ strength.Classes) Estimate {
	checked := password
	if r := []rune(password); len(r) > maxPatternLen {
		checked = string(r[:maxPatternLen])
	}

	seconds := zxcvbn.PasswordStrength(checked, p.UserInputs).CrackTime
	e := Estimate{Seconds: seconds, Display: Format(seconds)}
	if seconds >= saturationSeconds {
		e.Seconds, e.Saturated = saturationSeconds, true
	}
	return penalize(password, e, Format)
}
