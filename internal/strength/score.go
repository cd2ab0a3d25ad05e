package strength

// Score is the composite strength score in [0, MaxScore].
type Score int

// MaxScore is four classes plus three length thresholds.
const MaxScore Score = 7

// Length thresholds, each worth one point.
var lengthThresholds = [...]int{8, 12, 16}

// ScoreOf adds one point per present class and one point per length
// threshold reached. length is counted in runes.
func ScoreOf(c Classes, length int) Score {
	s := Score(c.Count())
	for _, t := range lengthThresholds {
		if length >= t {
			s++
		}
	}
	return s
}

// Category is the strength bucket shown to the user.
type Category int

const (
	// None is the category of an empty password.
	None Category = iota
	Weak
	Medium
	Strong
	// WeakCompromised marks a password found by an oracle. It overrides the score.
	WeakCompromised
)

// String returns the label rendered by the shell.
func (c Category) String() string {
	switch c {
	case Weak:
		return "Weak"
	case Medium:
		return "Medium"
	case Strong:
		return "Strong"
	case WeakCompromised:
		return "Weak (Common Password)"
	default:
		return ""
	}
}

// MarshalText lets results be encoded with the human label.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Categorize maps a score and the oracle verdict to a category.
func Categorize(s Score, compromised bool) Category {
	switch {
	case compromised:
		return WeakCompromised
	case s <= 2:
		return Weak
	case s <= 4:
		return Medium
	default:
		return Strong
	}
}

// Color is a display hint for a category.
type Color string

const (
	ColorNone   Color = ""
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorGreen  Color = "green"
)

// ColorFor returns the display colour of c.
func ColorFor(c Category) Color {
	switch c {
	case Weak, WeakCompromised:
		return ColorRed
	case Medium:
		return ColorOrange
	case Strong:
		return ColorGreen
	default:
		return ColorNone
	}
}
