package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dmitrijs2005/passcheck/internal/estimator"
	"github.com/dmitrijs2005/passcheck/internal/evaluator"
	"github.com/dmitrijs2005/passcheck/internal/strength"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Plain(t *testing.T) {
	r := evaluator.Result{
		Category:  strength.Medium,
		Color:     strength.ColorOrange,
		CrackTime: "3.00 hours",
		Classes:   strength.Classes{Lowercase: true, Digit: true},
		Length:    9,
	}

	var out bytes.Buffer
	require.NoError(t, Render(&out, r, false))

	want := strings.Join([]string{
		"Password Strength: Medium",
		"Criteria:",
		"  [x] Lowercase Letter",
		"  [ ] Uppercase Letter",
		"  [x] Digit",
		"  [ ] Symbol",
		"Password Length: 9",
		"Estimated Time to Crack: 3.00 hours",
		"",
	}, "\n")
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_Empty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Render(&out, evaluator.Empty(), true))

	assert.Contains(t, out.String(), "Password Strength: \n")
	assert.Contains(t, out.String(), "Estimated Time to Crack: "+estimator.Zero)
	assert.NotContains(t, out.String(), "\x1b[", "nothing to colour")
}

func TestRender_Colored(t *testing.T) {
	r := evaluator.Result{
		Category:  strength.WeakCompromised,
		Color:     strength.ColorRed,
		CrackTime: estimator.Instant,
		Classes:   strength.Classes{Lowercase: true},
		Length:    8,
	}

	var out bytes.Buffer
	require.NoError(t, Render(&out, r, true))
	assert.Contains(t, out.String(), "\x1b[")
	assert.Contains(t, out.String(), "Weak (Common Password)")
}

func TestRender_Pending(t *testing.T) {
	r := evaluator.Result{Category: strength.Strong, Length: 12, Pending: true}

	var out bytes.Buffer
	require.NoError(t, Render(&out, r, false))
	assert.Contains(t, out.String(), "Password Strength: Strong (checking...)")
}

func TestMask(t *testing.T) {
	assert.Equal(t, "", mask(""))
	assert.Equal(t, "****", mask("äb1!"))
	assert.Equal(t, "************", mask("Aa1!xxxxxxxx"))
}
