package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/passcheck/internal/evaluator"
	"github.com/dmitrijs2005/passcheck/internal/strength"
	"github.com/mgutz/ansi"
)

// ansiStyles maps display colours to terminal styles; the terminal has no orange.
var ansiStyles = map[strength.Color]string{
	strength.ColorRed:    "red+b",
	strength.ColorOrange: "yellow+b",
	strength.ColorGreen:  "green+b",
}

// Render writes r in the layout of the checker panel.
func Render(w io.Writer, r evaluator.Result, colorize bool) error {
	category := r.Category.String()
	if colorize && category != "" {
		category = ansi.Color(category, ansiStyles[r.Color])
	}
	if r.Pending {
		category += " (checking...)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Password Strength: %s\n", category)
	b.WriteString("Criteria:\n")
	criteria := []struct {
		met   bool
		label string
	}{
		{r.Classes.Lowercase, "Lowercase Letter"},
		{r.Classes.Uppercase, "Uppercase Letter"},
		{r.Classes.Digit, "Digit"},
		{r.Classes.Symbol, "Symbol"},
	}
	for _, c := range criteria {
		fmt.Fprintf(&b, "  %s %s\n", checkbox(c.met, colorize), c.label)
	}
	fmt.Fprintf(&b, "Password Length: %d\n", r.Length)
	fmt.Fprintf(&b, "Estimated Time to Crack: %s\n", r.CrackTime)

	_, err := io.WriteString(w, b.String())
	return err
}

func checkbox(met, colorize bool) string {
	if !met {
		return "[ ]"
	}
	if colorize {
		return ansi.Color("[x]", "green")
	}
	return "[x]"
}

// mask hides a password for display, one asterisk per rune.
func mask(password string) string {
	return strings.Repeat("*", len([]rune(password)))
}
