package estimator

import (
	"unicode/utf8"

	"github.com/dmitrijs2005/passcheck/internal/strength"
)

// Bucket is the character pool a password is drawn from, as seen by Table.
type Bucket int

const (
	// DigitsOnly also covers digits mixed with symbols but no letters.
	DigitsOnly Bucket = iota
	SingleCaseLetters
	MixedCaseLetters
	// FullMix is letters, digits and symbols together.
	FullMix
	// SymbolsOnly also covers passwords with no recognised class at all.
	SymbolsOnly
)

func (b Bucket) String() string {
	switch b {
	case DigitsOnly:
		return "digits-only"
	case SingleCaseLetters:
		return "single-case-letters"
	case MixedCaseLetters:
		return "mixed-case-letters"
	case FullMix:
		return "letters-digits-symbols"
	default:
		return "symbols-only"
	}
}

// BucketOf picks a bucket with precedence
// full mix > mixed case > any letters > digits > symbols.
func BucketOf(c strength.Classes) Bucket {
	letters := c.Lowercase || c.Uppercase
	switch {
	case letters && c.Digit && c.Symbol:
		return FullMix
	case c.Lowercase && c.Uppercase:
		return MixedCaseLetters
	case letters:
		return SingleCaseLetters
	case c.Digit:
		return DigitsOnly
	default:
		return SymbolsOnly
	}
}

// MaxTableLength is the largest length with its own row; longer passwords use it.
const MaxTableLength = 18

// minTableLength is the first row; anything shorter cracks instantly.
const minTableLength = 4

type cell struct {
	label   string
	seconds float64
}

const (
	month = 30 * day
	kYear = 1e3 * year
	mYear = 1e6 * year
	bYear = 1e9 * year
	tYear = 1e12 * year
)

var (
	instant    = cell{Instant, 0}
	penaltyCap = cell{"10 seconds", PenaltyCap}
)

// crackTable holds offline cracking times per length (row, starting at
// minTableLength) and Bucket (column).
var crackTable = [MaxTableLength - minTableLength + 1][5]cell{
	// digits, single case, mixed case, full mix, symbols
	/* 4 */ {instant, instant, instant, instant, instant},
	/* 5 */ {instant, instant, instant, instant, instant},
	/* 6 */ {instant, instant, instant, {"1 second", 1}, instant},
	/* 7 */ {instant, instant, {"2 seconds", 2}, {"31 seconds", 31}, instant},
	/* 8 */ {instant, instant, {"2 minutes", 2 * minute}, {"39 minutes", 39 * minute}, {"1 second", 1}},
	/* 9 */ {instant, {"10 seconds", 10}, {"1 hour", hour}, {"2 days", 2 * day}, {"19 seconds", 19}},
	/* 10 */ {instant, {"4 minutes", 4 * minute}, {"3 days", 3 * day}, {"5 months", 5 * month}, {"9 minutes", 9 * minute}},
	/* 11 */ {instant, {"2 hours", 2 * hour}, {"5 months", 5 * month}, {"34 years", 34 * year}, {"4 hours", 4 * hour}},
	/* 12 */ {{"1 second", 1}, {"2 days", 2 * day}, {"24 years", 24 * year}, {"3 thousand years", 3 * kYear}, {"5 days", 5 * day}},
	/* 13 */ {{"5 seconds", 5}, {"2 months", 2 * month}, {"1 thousand years", kYear}, {"202 thousand years", 202 * kYear}, {"5 months", 5 * month}},
	/* 14 */ {{"52 seconds", 52}, {"4 years", 4 * year}, {"64 thousand years", 64 * kYear}, {"16 million years", 16 * mYear}, {"12 years", 12 * year}},
	/* 15 */ {{"9 minutes", 9 * minute}, {"100 years", 100 * year}, {"3 million years", 3 * mYear}, {"1 billion years", bYear}, {"350 years", 350 * year}},
	/* 16 */ {{"1 hour", hour}, {"3 thousand years", 3 * kYear}, {"173 million years", 173 * mYear}, {"92 billion years", 92 * bYear}, {"10 thousand years", 10 * kYear}},
	/* 17 */ {{"14 hours", 14 * hour}, {"69 thousand years", 69 * kYear}, {"9 billion years", 9 * bYear}, {"7 trillion years", 7 * tYear}, {"276 thousand years", 276 * kYear}},
	/* 18 */ {{"6 days", 6 * day}, {"2 million years", 2 * mYear}, {"467 billion years", 467 * bYear}, {"438 trillion years", 438 * tYear}, {"8 million years", 8 * mYear}},
}

// Table looks the estimate up in crackTable instead of computing it.
type Table struct{}

// NewTable returns a Table estimator.
func NewTable() Table {
	return Table{}
}

func (Table) Estimate(password string, c strength.Classes) Estimate {
	cl := lookup(BucketOf(c), utf8.RuneCountInString(password))
	if HasRepeatedRun(password, RepeatRun) {
		e := Estimate{Seconds: cl.seconds, Display: cl.label, Penalized: true}
		if cl.seconds > PenaltyCap {
			e.Seconds, e.Display = penaltyCap.seconds, penaltyCap.label
		}
		return e
	}
	return Estimate{Seconds: cl.seconds, Display: cl.label}
}

func lookup(b Bucket, length int) cell {
	if length < minTableLength {
		return instant
	}
	if length > MaxTableLength {
		length = MaxTableLength
	}
	return crackTable[length-minTableLength][b]
}
