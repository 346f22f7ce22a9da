package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"sanalista/internal/wordcheck"
)

type checkResult struct {
	Word       string         `json:"word"`
	Category   string         `json:"category"`
	Inflection string         `json:"inflection"`
	Accepted   bool           `json:"accepted"`
	Reason     string         `json:"reason,omitempty"`
	Rule       string         `json:"rule,omitempty"`
	Tiles      map[string]int `json:"tiles,omitempty"`
}

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var policy policyFlags
	var category string
	var inflection string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check WORD",
		Short: "Explain whether a single word would be accepted",
		Long: "Run the word validator on WORD as it appears in the lexicon. The word is\n" +
			"checked as typed, so capitalised proper nouns fail the letter check.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			local := *cfg
			policy.apply(cmd, &local.Filter)

			word := args[0]
			verdict := wordcheck.Check(word, category, inflection, local.Policy())
			result := checkResult{
				Word:       word,
				Category:   category,
				Inflection: inflection,
				Accepted:   verdict.Accepted,
				Reason:     string(verdict.Reason),
				Rule:       string(verdict.Rule),
				Tiles:      tileUsage(word),
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), result)
			}
			printCheck(cmd, result)
			return nil
		},
	}

	policy.bind(cmd, false)
	cmd.Flags().StringVar(&category, "category", wordcheck.MarkerSubstantive, "Sanaluokka column value")
	cmd.Flags().StringVar(&inflection, "inflection", "", "Taivutustiedot column value")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func printCheck(cmd *cobra.Command, result checkResult) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	verdict, detail := outcomeAccepted, ""
	if !result.Accepted {
		verdict, detail = outcomeRejected, "reason "+result.Reason
	}
	if result.Rule != "" {
		detail = strings.TrimSpace(detail + " rule " + result.Rule)
	}
	fmt.Fprintln(out, renderOutcome(result.Word, verdict, detail, colorize))

	rows := make([][]string, 0, len(result.Tiles))
	used := 0
	for _, r := range wordcheck.Alphabet() {
		n, ok := result.Tiles[string(r)]
		if !ok {
			continue
		}
		used += n
		rows = append(rows, []string{string(r), strconv.Itoa(n), strconv.Itoa(wordcheck.TileCount(r))})
	}
	if len(rows) > 0 {
		columns := []column{leftColumn("Letter"), countColumn("Used"), countColumn("Tiles")}
		total := []string{"", strconv.Itoa(used), strconv.Itoa(wordcheck.TotalTiles())}
		fmt.Fprintln(out, renderTable(columns, rows, total))
	}
}

// tileUsage counts the tile letters in word. Runes outside the tile set are
// left out.
func tileUsage(word string) map[string]int {
	usage := make(map[string]int)
	for _, r := range word {
		if wordcheck.TileCount(r) == 0 {
			continue
		}
		usage[string(r)]++
	}
	return usage
}
