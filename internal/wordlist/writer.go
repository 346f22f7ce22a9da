package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another run holds the output lock.
var ErrLocked = errors.New("output is locked by another run")

// Writer appends newline-terminated words to an io.Writer.
type Writer struct {
	buf   *bufio.Writer
	count int
}

// NewWriter returns a buffered Writer over w. Call Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{buf: bufio.NewWriter(w)}
}

// Write appends word followed by a newline.
func (w *Writer) Write(word string) error {
	if strings.ContainsAny(word, "\r\n") {
		return fmt.Errorf("word %q contains a line break", word)
	}
	if _, err := w.buf.WriteString(word); err != nil {
		return err
	}
	if err := w.buf.WriteByte('\n'); err != nil {
		return err
	}
	w.count++
	return nil
}

// Count returns the number of words written.
func (w *Writer) Count() int {
	return w.count
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}

// Option customizes Create.
type Option func(*createOptions)

type createOptions struct {
	lock bool
}

// WithLock toggles the advisory lock on "<path>.lock".
func WithLock(enabled bool) Option {
	return func(o *createOptions) {
		o.lock = enabled
	}
}

// File is a Writer bound to a created output file.
type File struct {
	*Writer
	file *os.File
	lock *flock.Flock
	path string
}

// Create truncates or creates path for writing. Locking is enabled by default.
func Create(path string, opts ...Option) (*File, error) {
	options := createOptions{lock: true}
	for _, opt := range opts {
		opt(&options)
	}

	var lock *flock.Flock
	if options.lock {
		lock = flock.New(path + ".lock")
		ok, err := lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("acquire output lock: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("%s: %w", path, ErrLocked)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		if lock != nil {
			_ = lock.Unlock()
		}
		return nil, fmt.Errorf("create word list: %w", err)
	}
	return &File{Writer: NewWriter(f), file: f, lock: lock, path: path}, nil
}

// Path returns the output path.
func (f *File) Path() string {
	return f.path
}

// LockPath returns the lock file path, or "" when locking is disabled.
func (f *File) LockPath() string {
	if f.lock == nil {
		return ""
	}
	return f.lock.Path()
}

// Close flushes buffered words, closes the file and releases the lock. It is
// safe to call more than once.
func (f *File) Close() error {
	if f == nil || f.file == nil {
		return nil
	}
	var errs []error
	if err := f.Flush(); err != nil {
		errs = append(errs, fmt.Errorf("flush word list: %w", err))
	}
	if err := f.file.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close word list: %w", err))
	}
	f.file = nil
	if f.lock != nil {
		if err := f.lock.Unlock(); err != nil {
			errs = append(errs, fmt.Errorf("release output lock: %w", err))
		}
		_ = os.Remove(f.lock.Path())
		f.lock = nil
	}
	return errors.Join(errs...)
}
