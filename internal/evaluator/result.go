package evaluator

import (
	"github.com/dmitrijs2005/passcheck/internal/estimator"
	"github.com/dmitrijs2005/passcheck/internal/strength"
)

// Result is everything a presentation shell needs to render one password.
// All fields derive from the same strength.Classes snapshot.
type Result struct {
	// Seq is the Session sequence number the result belongs to; 0 outside a Session.
	Seq uint64 `json:"seq,omitempty"`

	Category    strength.Category  `json:"category"`
	Color       strength.Color     `json:"color"`
	CrackTime   string             `json:"crack_time"`
	Estimate    estimator.Estimate `json:"estimate"`
	Classes     strength.Classes   `json:"classes"`
	Length      int                `json:"length"`
	Score       strength.Score     `json:"score"`
	Compromised bool               `json:"compromised"`

	// Pending is set on a provisional Session result whose oracle lookup has
	// not finished yet.
	Pending bool `json:"pending,omitempty"`
}

// Empty is the reset baseline for an empty password.
func Empty() Result {
	e := estimator.Empty()
	return Result{
		Category:  strength.None,
		Color:     strength.ColorNone,
		CrackTime: e.Display,
		Estimate:  e,
	}
}

// IsEmpty reports whether r is the baseline of an empty password.
func (r Result) IsEmpty() bool {
	return r.Length == 0
}
