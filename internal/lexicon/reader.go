package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ErrInvalidUTF8 marks source content that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid utf-8")

// Option customizes a Reader.
type Option func(*Reader)

// WithUnicodeNormalization toggles NFC normalization of every field.
func WithUnicodeNormalization(enabled bool) Option {
	return func(r *Reader) {
		r.normalize = enabled
	}
}

// Reader produces rows from a tab-delimited stream.
type Reader struct {
	src       *bufio.Reader
	normalize bool
	line      int
	started   bool
	done      bool
	err       error
}

// NewReader wraps src. Normalization is enabled by default.
func NewReader(src io.Reader, opts ...Option) *Reader {
	r := &Reader{src: bufio.NewReader(src), normalize: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Next returns the next non-empty row. It returns io.EOF once the input is
// exhausted; any other error is sticky.
func (r *Reader) Next() (Row, error) {
	if r.err != nil {
		return Row{}, r.err
	}
	if r.done {
		return Row{}, io.EOF
	}
	for {
		raw, err := r.src.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return Row{}, r.fail(fmt.Errorf("read line %d: %w", r.line+1, err))
		}
		if raw == "" && err != nil {
			r.done = true
			return Row{}, io.EOF
		}
		r.line++
		raw = strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
		if !utf8.ValidString(raw) {
			return Row{}, r.fail(fmt.Errorf("line %d: %w", r.line, ErrInvalidUTF8))
		}
		if !r.started {
			r.started = true
			continue
		}
		if row, ok := r.parse(raw); ok {
			return row, nil
		}
	}
}

// Rows exposes the remaining rows as a single-use sequence. Iteration stops
// after the first error, which is yielded with a zero Row.
func (r *Reader) Rows() iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		for {
			row, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(row, err) || err != nil {
				return
			}
		}
	}
}

// Line returns the number of source lines consumed so far.
func (r *Reader) Line() int {
	return r.line
}

func (r *Reader) fail(err error) error {
	r.err = err
	return err
}

func (r *Reader) parse(line string) (Row, bool) {
	fields := strings.Split(line, "\t")
	for len(fields) < columnCount {
		fields = append(fields, "")
	}
	for i := range fields[:columnCount] {
		fields[i] = strings.TrimSpace(fields[i])
		if r.normalize {
			fields[i] = norm.NFC.String(fields[i])
		}
	}

	word := fields[ColumnWord]
	if word == "" {
		return Row{}, false
	}

	return Row{
		Word:       word,
		Homonym:    fields[ColumnHomonym],
		Category:   fields[ColumnCategory],
		Inflection: fields[ColumnInflection],
		Line:       r.line,
	}, true
}

// File is a Reader bound to an opened file.
type File struct {
	*Reader
	file *os.File
	path string
}

// Open opens path for streaming.
func Open(path string, opts ...Option) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	return &File{Reader: NewReader(f, opts...), file: f, path: path}, nil
}

// Path returns the source path.
func (f *File) Path() string {
	return f.path
}

// Close releases the underlying file.
func (f *File) Close() error {
	if f == nil || f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}
