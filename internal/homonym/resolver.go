package homonym

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"sanalista/internal/lexicon"
	"sanalista/internal/wordcheck"
)

// Origin tells where an emitted word came from.
type Origin string

const (
	OriginStandalone Origin = "standalone"
	OriginGroup      Origin = "homonym_group"
)

// Emission is a word accepted for the output list.
type Emission struct {
	Word   string
	Origin Origin
	// Line is the source line of the row that supplied the word.
	Line int
	// GroupSize is the number of senses in the originating group, 1 for
	// standalone rows.
	GroupSize int
}

// Stats counts resolver decisions.
type Stats struct {
	Rows              int
	StandaloneAccepts int
	Rejections        map[wordcheck.Reason]int
	GroupsResolved    int
	GroupsDropped     int
	LargestGroup      int
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithStrictGroups resolves groups with the full word check instead of the
// category table alone.
func WithStrictGroups(strict bool) Option {
	return func(r *Resolver) {
		r.strict = strict
	}
}

// Resolver is the stateful accumulator between the reader and the writer.
// It is not safe for concurrent use.
type Resolver struct {
	policy   wordcheck.Policy
	strict   bool
	lower    cases.Caser
	buffer   []lexicon.Row
	lastWord string
	stats    Stats
}

// New returns a Resolver applying policy.
func New(policy wordcheck.Policy, opts ...Option) *Resolver {
	r := &Resolver{
		policy: policy,
		lower:  cases.Lower(language.Finnish),
		stats:  Stats{Rejections: make(map[wordcheck.Reason]int)},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Push consumes one row and returns the words it completes, in output order.
// At most two words are returned: the group closed by this row and the row
// itself.
func (r *Resolver) Push(row lexicon.Row) []Emission {
	r.stats.Rows++
	var out []Emission

	if row.HasHomonym() {
		if len(r.buffer) > 0 && row.Word != r.lastWord {
			out = r.appendFlush(out)
		}
		r.buffer = append(r.buffer, row)
		r.lastWord = row.Word
		return out
	}

	if len(r.buffer) > 0 {
		out = r.appendFlush(out)
	}

	verdict := wordcheck.Check(row.Word, row.Category, row.Inflection, r.policy)
	if !verdict.Accepted {
		r.stats.Rejections[verdict.Reason]++
		return out
	}
	r.stats.StandaloneAccepts++
	return append(out, Emission{
		Word:      r.lower.String(row.Word),
		Origin:    OriginStandalone,
		Line:      row.Line,
		GroupSize: 1,
	})
}

// Finish flushes the group left open at the end of the input.
func (r *Resolver) Finish() []Emission {
	if len(r.buffer) == 0 {
		return nil
	}
	return r.appendFlush(nil)
}

// Pending returns the number of rows buffered in the open group.
func (r *Resolver) Pending() int {
	return len(r.buffer)
}

// Stats returns a snapshot of the decision counters.
func (r *Resolver) Stats() Stats {
	snapshot := r.stats
	snapshot.Rejections = make(map[wordcheck.Reason]int, len(r.stats.Rejections))
	for reason, count := range r.stats.Rejections {
		snapshot.Rejections[reason] = count
	}
	return snapshot
}

func (r *Resolver) appendFlush(out []Emission) []Emission {
	size := len(r.buffer)
	if size > r.stats.LargestGroup {
		r.stats.LargestGroup = size
	}
	row, ok := r.resolve()
	r.buffer = r.buffer[:0]
	if !ok {
		r.stats.GroupsDropped++
		return out
	}
	r.stats.GroupsResolved++
	return append(out, Emission{
		Word:      r.lower.String(row.Word),
		Origin:    OriginGroup,
		Line:      row.Line,
		GroupSize: size,
	})
}

// resolve picks the first sense whose category is accepted. Unless strict
// mode is on, spelling and tile checks are not applied to groups.
func (r *Resolver) resolve() (lexicon.Row, bool) {
	for _, row := range r.buffer {
		if r.strict {
			if wordcheck.IsWordValid(row.Word, row.Category, row.Inflection, r.policy) {
				return row, true
			}
			continue
		}
		if wordcheck.CategoryAccepted(row.Category, row.Inflection, r.policy) {
			return row, true
		}
	}
	return lexicon.Row{}, false
}
