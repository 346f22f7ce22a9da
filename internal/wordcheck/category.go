package wordcheck

import "strings"

// Policy selects which word classes are accepted. It is fixed for a run.
type Policy struct {
	AcceptPronouns      bool
	AcceptInterjections bool
	AcceptNumerals      bool
	AcceptSubstantives  bool
	AcceptAdjectives    bool
	AcceptVerbs         bool
	AcceptCompoundWords bool
}

// Category and inflection markers used by the Kotus word list.
const (
	MarkerInterjection = "interjektio"
	MarkerNegationVerb = "kieltoverbi"
	MarkerPronoun      = "pronomini"
	MarkerNumeral      = "numeraali"
	MarkerSubstantive  = "substantiivi"
	MarkerAdjective    = "adjektiivi"
	MarkerVerb         = "verbi"
	MarkerCombinator   = "+"

	InflectionMisspelling      = "100"
	InflectionIrregularPronoun = "101"
)

var particleMarkers = []string{
	"adverbi",
	"prepositio",
	"postpositio",
	"konjunktio",
	MarkerInterjection,
}

// Rule names the row of the category decision table that settled a verdict.
type Rule string

const (
	RuleParticle     Rule = "particle"
	RuleInterjection Rule = "interjection"
	RulePronoun      Rule = "pronoun"
	RuleNumeral      Rule = "numeral"
	RuleInflection   Rule = "inflection_code"
	RuleWordClass    Rule = "word_class"
	RuleCompound     Rule = "compound_word"
	RuleNoMatch      Rule = "no_match"
)

// EvaluateCategory runs the decision table and returns the verdict together
// with the rule that produced it. Rules are evaluated strictly in order.
func EvaluateCategory(category, inflection string, policy Policy) (bool, Rule) {
	if isParticle(category) {
		if category == MarkerInterjection {
			return policy.AcceptInterjections, RuleInterjection
		}
		return false, RuleParticle
	}
	if strings.Contains(category, MarkerPronoun) {
		return policy.AcceptPronouns, RulePronoun
	}
	if category == MarkerNumeral {
		return policy.AcceptNumerals, RuleNumeral
	}
	if inflection == InflectionMisspelling || inflection == InflectionIrregularPronoun {
		return false, RuleInflection
	}
	if policy.acceptsWordClass(category) {
		return true, RuleWordClass
	}
	// Compound words carry no inflection data; they are judged by the class of
	// their base word, which is the same test as above.
	if inflection == "" && policy.AcceptCompoundWords && policy.acceptsWordClass(category) {
		return true, RuleCompound
	}
	return false, RuleNoMatch
}

// CategoryAccepted reports whether a row with the given category and
// inflection code is accepted under policy.
func CategoryAccepted(category, inflection string, policy Policy) bool {
	accepted, _ := EvaluateCategory(category, inflection, policy)
	return accepted
}

func isParticle(category string) bool {
	for _, marker := range particleMarkers {
		if strings.Contains(category, marker) {
			return true
		}
	}
	return strings.Contains(category, MarkerCombinator) || strings.Contains(category, MarkerNegationVerb)
}

func (p Policy) acceptsWordClass(category string) bool {
	return (p.AcceptSubstantives && strings.Contains(category, MarkerSubstantive)) ||
		(p.AcceptAdjectives && strings.Contains(category, MarkerAdjective)) ||
		(p.AcceptVerbs && strings.Contains(category, MarkerVerb))
}
