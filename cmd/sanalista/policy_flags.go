package main

import (
	"github.com/spf13/cobra"

	"sanalista/internal/config"
)

// policyFlags mirrors the [filter] section. Only flags set on the command
// line override the loaded configuration.
type policyFlags struct {
	pronouns      bool
	interjections bool
	numerals      bool
	substantives  bool
	adjectives    bool
	verbs         bool
	compounds     bool
	strict        bool
}

func (p *policyFlags) bind(cmd *cobra.Command, withGroups bool) {
	flags := cmd.Flags()
	flags.BoolVar(&p.pronouns, "accept-pronouns", false, "Accept pronouns (pronomini)")
	flags.BoolVar(&p.interjections, "accept-interjections", false, "Accept interjections (interjektio)")
	flags.BoolVar(&p.numerals, "accept-numerals", false, "Accept numerals (numeraali)")
	flags.BoolVar(&p.substantives, "accept-substantives", false, "Accept substantives (substantiivi)")
	flags.BoolVar(&p.adjectives, "accept-adjectives", false, "Accept adjectives (adjektiivi)")
	flags.BoolVar(&p.verbs, "accept-verbs", false, "Accept verbs (verbi)")
	flags.BoolVar(&p.compounds, "accept-compound-words", false, "Accept compound words without inflection data")
	if withGroups {
		flags.BoolVar(&p.strict, "strict-homonyms", false, "Apply spelling and tile checks to homonym groups")
	}
}

func (p *policyFlags) apply(cmd *cobra.Command, filter *config.Filter) {
	flags := cmd.Flags()
	overrides := []struct {
		name   string
		value  bool
		target *bool
	}{
		{"accept-pronouns", p.pronouns, &filter.AcceptPronouns},
		{"accept-interjections", p.interjections, &filter.AcceptInterjections},
		{"accept-numerals", p.numerals, &filter.AcceptNumerals},
		{"accept-substantives", p.substantives, &filter.AcceptSubstantives},
		{"accept-adjectives", p.adjectives, &filter.AcceptAdjectives},
		{"accept-verbs", p.verbs, &filter.AcceptVerbs},
		{"accept-compound-words", p.compounds, &filter.AcceptCompoundWords},
		{"strict-homonyms", p.strict, &filter.StrictHomonymGroups},
	}
	for _, o := range overrides {
		if flags.Changed(o.name) {
			*o.target = o.value
		}
	}
}
