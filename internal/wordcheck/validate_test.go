package wordcheck

import (
	"strings"
	"testing"
)

func TestCheck(t *testing.T) {
	nouns := Policy{AcceptSubstantives: true}
	tests := []struct {
		name     string
		word     string
		category string
		policy   Policy
		accepted bool
		reason   Reason
	}{
		{"plain noun", "kala", "substantiivi", nouns, true, ReasonNone},
		{"interjection disabled", "auts", "interjektio", nouns, false, ReasonCategory},
		{"hyphenated", "rekka-auto", "substantiivi", fullPolicy(), false, ReasonHyphen},
		{"foreign letter", "cat", "substantiivi", nouns, false, ReasonCharset},
		{"uppercase", "Kala", "substantiivi", nouns, false, ReasonCharset},
		{"tile budget", strings.Repeat("a", 17), "substantiivi", nouns, false, ReasonTileBudget},
		{"hyphen wins over charset", "c-c", "substantiivi", nouns, false, ReasonHyphen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Check(tt.word, tt.category, "", tt.policy)
			if got.Accepted != tt.accepted || got.Reason != tt.reason {
				t.Fatalf("Check(%q) = %+v, want accepted=%v reason=%q", tt.word, got, tt.accepted, tt.reason)
			}
			if IsWordValid(tt.word, tt.category, "", tt.policy) != tt.accepted {
				t.Fatalf("IsWordValid(%q) disagrees with Check", tt.word)
			}
		})
	}
}

func TestCheckReportsRule(t *testing.T) {
	got := Check("auts", "interjektio", "", Policy{})
	if got.Rule != RuleInterjection {
		t.Fatalf("expected interjection rule, got %q", got.Rule)
	}
	if got := Check("cat", "substantiivi", "", Policy{}); got.Rule != "" {
		t.Fatalf("expected no rule before category evaluation, got %q", got.Rule)
	}
}
