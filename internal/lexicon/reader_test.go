package lexicon_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sanalista/internal/lexicon"
)

const header = "Hakusana\tHomonymia\tSanaluokka\tTaivutustiedot\n"

func collect(t *testing.T, r *lexicon.Reader) []lexicon.Row {
	t.Helper()
	var rows []lexicon.Row
	for row, err := range r.Rows() {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		rows = append(rows, row)
	}
	return rows
}

func TestReaderSkipsHeaderPadsAndTrims(t *testing.T) {
	input := header +
		"kala\t\tsubstantiivi\t9\n" +
		"  kuusi \t1\t numeraali\t\n" +
		"kuusi\t2\tsubstantiivi\n" +
		"auts\n" +
		"\n" +
		"\t\tsubstantiivi\t9\n" +
		"päivä\t\tsubstantiivi\t10\r\n"

	rows := collect(t, lexicon.NewReader(strings.NewReader(input)))
	want := []lexicon.Row{
		{Word: "kala", Category: "substantiivi", Inflection: "9", Line: 2},
		{Word: "kuusi", Homonym: "1", Category: "numeraali", Line: 3},
		{Word: "kuusi", Homonym: "2", Category: "substantiivi", Line: 4},
		{Word: "auts", Line: 5},
		{Word: "päivä", Category: "substantiivi", Inflection: "10", Line: 8},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d: %#v", len(rows), len(want), rows)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %#v, want %#v", i, rows[i], want[i])
		}
	}
	if !rows[1].HasHomonym() || rows[0].HasHomonym() {
		t.Fatal("unexpected HasHomonym results")
	}
}

func TestReaderHeaderOnly(t *testing.T) {
	r := lexicon.NewReader(strings.NewReader(header))
	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF to repeat, got %v", err)
	}
}

func TestReaderRejectsInvalidUTF8(t *testing.T) {
	input := header + "kala\t\tsubstantiivi\t9\n" + "p\xe4iv\xe4\t\tsubstantiivi\t10\n"
	r := lexicon.NewReader(strings.NewReader(input))

	if _, err := r.Next(); err != nil {
		t.Fatalf("first row: %v", err)
	}
	_, err := r.Next()
	if !errors.Is(err, lexicon.ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("expected line number in error, got %q", err)
	}
	if _, again := r.Next(); !errors.Is(again, lexicon.ErrInvalidUTF8) {
		t.Fatalf("expected sticky error, got %v", again)
	}
}

func TestReaderRejectsInvalidUTF8InHeader(t *testing.T) {
	r := lexicon.NewReader(strings.NewReader("Hakusana\xff\n" + "kala\t\tsubstantiivi\t9\n"))
	if _, err := r.Next(); !errors.Is(err, lexicon.ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestReaderTreatsAnyHomonymValueAsMarker(t *testing.T) {
	for _, value := range []string{"1", "0", "1a", "x"} {
		input := header + "kuusi\t" + value + "\tsubstantiivi\t27\n"
		row, err := lexicon.NewReader(strings.NewReader(input)).Next()
		if err != nil {
			t.Fatalf("homonym %q: unexpected error %v", value, err)
		}
		if !row.HasHomonym() || row.Homonym != value {
			t.Fatalf("homonym %q: expected group marker, got %#v", value, row)
		}
	}
}

func TestReaderAcceptsVeryLongLines(t *testing.T) {
	long := strings.Repeat("a", 2<<20)
	input := header + long + "\t\tsubstantiivi\t9\n" + "kala\t\tsubstantiivi\t9"
	rows := collect(t, lexicon.NewReader(strings.NewReader(input)))
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if len(rows[0].Word) != len(long) || rows[1].Word != "kala" || rows[1].Line != 3 {
		t.Fatalf("unexpected rows: word length %d, second %#v", len(rows[0].Word), rows[1])
	}
}

type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestReaderSurfacesSourceErrors(t *testing.T) {
	boom := errors.New("disk gone")
	r := lexicon.NewReader(io.MultiReader(strings.NewReader(header+"kala\t\t\t\n"), failingReader{boom}))
	if _, err := r.Next(); err != nil {
		t.Fatalf("first row: %v", err)
	}
	if _, err := r.Next(); !errors.Is(err, boom) {
		t.Fatalf("expected source error, got %v", err)
	}
}

func TestReaderNormalizesDecomposedLetters(t *testing.T) {
	decomposed := "pa\u0308iva\u0308"
	input := header + decomposed + "\t\tsubstantiivi\t10\n"

	rows := collect(t, lexicon.NewReader(strings.NewReader(input)))
	if len(rows) != 1 || rows[0].Word != "päivä" {
		t.Fatalf("expected NFC word, got %#v", rows)
	}

	raw := collect(t, lexicon.NewReader(strings.NewReader(input), lexicon.WithUnicodeNormalization(false)))
	if len(raw) != 1 || raw[0].Word != decomposed {
		t.Fatalf("expected untouched word, got %#v", raw)
	}
}

func TestRowsStopsOnBreak(t *testing.T) {
	input := header + "a\t\t\t\nb\t\t\t\nc\t\t\t\n"
	r := lexicon.NewReader(strings.NewReader(input))
	for row, err := range r.Rows() {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if row.Word == "a" {
			break
		}
	}
	rest := collect(t, r)
	if len(rest) != 2 || rest[0].Word != "b" {
		t.Fatalf("expected remaining rows b and c, got %#v", rest)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := lexicon.Open(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestOpenReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sanalista.txt")
	if err := os.WriteFile(path, []byte(header+"kala\t\tsubstantiivi\t9\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	f, err := lexicon.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	rows := collect(t, f.Reader)
	if len(rows) != 1 || rows[0].Word != "kala" {
		t.Fatalf("unexpected rows %#v", rows)
	}
	if f.Path() != path {
		t.Fatalf("Path() = %q", f.Path())
	}
}
