package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// LexiconHeader is the header line of the Kotus word list.
const LexiconHeader = "Hakusana\tHomonymia\tSanaluokka\tTaivutustiedot"

// Row formats one tab-separated lexicon line.
func Row(word, homonym, category, inflection string) string {
	return strings.Join([]string{word, homonym, category, inflection}, "\t")
}

// WriteLexicon writes a lexicon file with the standard header followed by rows.
func WriteLexicon(t testing.TB, path string, rows ...string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	var b strings.Builder
	b.WriteString(LexiconHeader)
	b.WriteByte('\n')
	for _, row := range rows {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// ReadLines returns the newline-separated lines of path without the final
// empty element.
func ReadLines(t testing.TB, path string) []string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
