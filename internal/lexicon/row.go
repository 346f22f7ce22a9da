package lexicon

// Column positions in the source file.
const (
	ColumnWord = iota
	ColumnHomonym
	ColumnCategory
	ColumnInflection

	columnCount
)

// Row is one normalized lexicon entry.
type Row struct {
	Word string
	// Homonym is the homonym column as written. Any non-empty value marks
	// the row as a member of a homonym group; the value itself is not read.
	Homonym    string
	Category   string
	Inflection string
	// Line is the 1-based line number in the source, header included.
	Line int
}

// HasHomonym reports whether the row belongs to a homonym group.
func (r Row) HasHomonym() bool {
	return r.Homonym != ""
}
