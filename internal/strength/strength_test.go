package strength

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Classes
	}{
		{name: "empty", in: "", want: Classes{}},
		{name: "lowercase only", in: "password", want: Classes{Lowercase: true}},
		{name: "uppercase only", in: "PASSWORD", want: Classes{Uppercase: true}},
		{name: "digits only", in: "1234", want: Classes{Digit: true}},
		{name: "symbols only", in: "!?<>", want: Classes{Symbol: true}},
		{name: "all four", in: "Tr0ub4dor&3", want: Classes{Lowercase: true, Uppercase: true, Digit: true, Symbol: true}},
		{name: "underscore is a symbol", in: "a_b", want: Classes{Lowercase: true, Symbol: true}},
		{name: "space and tilde are not symbols", in: "a b~", want: Classes{Lowercase: true}},
		{name: "non-ascii letters ignored", in: "äöüß", want: Classes{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.in))
		})
	}
}

func TestClassify_OrderIndependent(t *testing.T) {
	a := Classify("aB3!")
	b := Classify("!3Ba")
	assert.Equal(t, a, b)
	assert.Equal(t, 4, a.Count())
}

func TestClassify_EverySymbolDetected(t *testing.T) {
	for _, r := range Symbols {
		require.True(t, Classify(string(r)).Symbol, "symbol %q not detected", r)
	}
}

func TestPoolSize(t *testing.T) {
	assert.Equal(t, 0, PoolSize(Classes{}))
	assert.Equal(t, 10, PoolSize(Classes{Digit: true}))
	assert.Equal(t, 52, PoolSize(Classes{Lowercase: true, Uppercase: true}))
	assert.Equal(t, 26+26+10+len(Symbols), PoolSize(Classes{Lowercase: true, Uppercase: true, Digit: true, Symbol: true}))
}

func TestScoreOf(t *testing.T) {
	all := Classes{Lowercase: true, Uppercase: true, Digit: true, Symbol: true}

	assert.Equal(t, Score(0), ScoreOf(Classes{}, 0))
	assert.Equal(t, Score(2), ScoreOf(Classify("password"), 8))
	assert.Equal(t, Score(5), ScoreOf(Classify("Tr0ub4dor&3"), 11))
	assert.Equal(t, MaxScore, ScoreOf(all, 16))
	assert.Equal(t, MaxScore, ScoreOf(all, 100))
}

func TestScoreOf_Monotonic(t *testing.T) {
	c := Classes{Lowercase: true}
	prev := ScoreOf(c, 0)
	for n := 1; n <= 20; n++ {
		s := ScoreOf(c, n)
		require.GreaterOrEqual(t, s, prev, "length %d", n)
		prev = s
	}

	steps := []Classes{
		{},
		{Lowercase: true},
		{Lowercase: true, Uppercase: true},
		{Lowercase: true, Uppercase: true, Digit: true},
		{Lowercase: true, Uppercase: true, Digit: true, Symbol: true},
	}
	prev = -1
	for _, c := range steps {
		s := ScoreOf(c, 10)
		require.Greater(t, s, prev)
		prev = s
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		score       Score
		compromised bool
		want        Category
	}{
		{0, false, Weak},
		{2, false, Weak},
		{3, false, Medium},
		{4, false, Medium},
		{5, false, Strong},
		{7, false, Strong},
		{7, true, WeakCompromised},
		{0, true, WeakCompromised},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Categorize(tt.score, tt.compromised), "score=%d compromised=%v", tt.score, tt.compromised)
	}
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, ColorNone, ColorFor(None))
	assert.Equal(t, ColorRed, ColorFor(Weak))
	assert.Equal(t, ColorRed, ColorFor(WeakCompromised))
	assert.Equal(t, ColorOrange, ColorFor(Medium))
	assert.Equal(t, ColorGreen, ColorFor(Strong))
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "", None.String())
	assert.Equal(t, "Weak (Common Password)", WeakCompromised.String())

	b, err := Strong.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Strong", string(b))
}
