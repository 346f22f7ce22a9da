package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"sanalista/internal/logging"
)

// outcome classifies a line of command output.
type outcome int

const (
	outcomeNote outcome = iota
	outcomeWritten
	outcomeAccepted
	outcomeRejected
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiCyan  = "\x1b[36m"
)

const outcomeLabelWidth = 12

func (o outcome) String() string {
	switch o {
	case outcomeWritten:
		return "written"
	case outcomeAccepted:
		return "accepted"
	case outcomeRejected:
		return "rejected"
	default:
		return "-"
	}
}

func (o outcome) color() string {
	switch o {
	case outcomeWritten, outcomeAccepted:
		return ansiGreen
	case outcomeRejected:
		return ansiRed
	default:
		return ansiCyan
	}
}

// renderOutcome formats "  <label> <outcome> <detail>". Only the outcome word
// is colored.
func renderOutcome(label string, o outcome, detail string, colorize bool) string {
	word := o.String()
	if colorize {
		word = o.color() + word + ansiReset
	}
	pad := outcomeLabelWidth - utf8.RuneCountInString(label)
	if pad < 1 {
		pad = 1
	}
	line := "  " + label + strings.Repeat(" ", pad) + word
	if detail != "" {
		line += "  " + detail
	}
	return line
}

// renderHeading underlines title to its width in runes.
func renderHeading(title string, colorize bool) string {
	title = strings.TrimSpace(title)
	rule := strings.Repeat("─", utf8.RuneCountInString(title))
	if colorize {
		return fmt.Sprintf("%s%s\n%s%s", ansiCyan, title, rule, ansiReset)
	}
	return title + "\n" + rule
}

func shouldColorize(w io.Writer) bool {
	return logging.IsTerminal(w)
}
