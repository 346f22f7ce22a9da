package wordcheck

import "strings"

// Reason identifies why a word was rejected.
type Reason string

const (
	ReasonNone       Reason = ""
	ReasonHyphen     Reason = "hyphen"
	ReasonCharset    Reason = "charset"
	ReasonTileBudget Reason = "tile_budget"
	ReasonCategory   Reason = "category"
)

// Reasons lists every rejection reason in evaluation order.
func Reasons() []Reason {
	return []Reason{ReasonHyphen, ReasonCharset, ReasonTileBudget, ReasonCategory}
}

// Verdict is the explained outcome of Check.
type Verdict struct {
	Accepted bool
	Reason   Reason
	// Rule is set once the category table was consulted.
	Rule Rule
}

// Check evaluates a word the same way IsWordValid does and reports the first
// failing check.
func Check(word, category, inflection string, policy Policy) Verdict {
	switch {
	case strings.Contains(word, "-"):
		return Verdict{Reason: ReasonHyphen}
	case !CharsAllowed(word):
		return Verdict{Reason: ReasonCharset}
	case !FitsTileBudget(word):
		return Verdict{Reason: ReasonTileBudget}
	}
	accepted, rule := EvaluateCategory(category, inflection, policy)
	if !accepted {
		return Verdict{Reason: ReasonCategory, Rule: rule}
	}
	return Verdict{Accepted: true, Rule: rule}
}

// IsWordValid reports whether word has no hyphen, uses only tile letters,
// fits the tile budget and has an accepted category.
func IsWordValid(word, category, inflection string, policy Policy) bool {
	return Check(word, category, inflection, policy).Accepted
}
