package pipeline_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sanalista/internal/pipeline"
	"sanalista/internal/testsupport"
	"sanalista/internal/wordcheck"
	"sanalista/internal/wordlist"
)

var row = testsupport.Row

func defaultOptions(in, out string) pipeline.Options {
	return pipeline.Options{
		Input:  in,
		Output: out,
		Policy: wordcheck.Policy{
			AcceptSubstantives:  true,
			AcceptAdjectives:    true,
			AcceptVerbs:         true,
			AcceptCompoundWords: true,
		},
		NormalizeUnicode: true,
		LockOutput:       true,
	}
}

func runFile(t *testing.T, opts pipeline.Options, rows ...string) ([]string, pipeline.Summary) {
	t.Helper()
	testsupport.WriteLexicon(t, opts.Input, rows...)
	summary, err := pipeline.Run(context.Background(), opts, nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	return testsupport.ReadLines(t, opts.Output), summary
}

func paths(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	return filepath.Join(dir, "sanalista.txt"), filepath.Join(dir, "wordlist.txt")
}

func TestRunExampleScenarios(t *testing.T) {
	in, out := paths(t)
	opts := defaultOptions(in, out)

	lines, summary := runFile(t, opts,
		row("kala", "", "substantiivi", ""),
		row("kuusi", "1", "numeraali", ""),
		row("kuusi", "2", "substantiivi", ""),
		row("auts", "", "interjektio", ""),
		row("rekka-auto", "", "substantiivi", ""),
		row("cat", "", "substantiivi", ""),
		row(strings.Repeat("a", 17), "", "substantiivi", ""),
	)

	if strings.Join(lines, ",") != "kala,kuusi" {
		t.Fatalf("unexpected word list %v", lines)
	}
	if summary.RowsRead != 7 || summary.WordsWritten != 2 {
		t.Fatalf("unexpected counts %+v", summary)
	}
	if summary.GroupsResolved != 1 || summary.StandaloneAccepted != 1 {
		t.Fatalf("unexpected decisions %+v", summary)
	}
	want := map[wordcheck.Reason]int{
		wordcheck.ReasonCategory:   1,
		wordcheck.ReasonHyphen:     1,
		wordcheck.ReasonCharset:    1,
		wordcheck.ReasonTileBudget: 1,
	}
	for reason, count := range want {
		if summary.Rejections[reason] != count {
			t.Errorf("rejections[%s] = %d, want %d", reason, summary.Rejections[reason], count)
		}
	}
	if summary.RunID == "" || summary.StartedAt.IsZero() {
		t.Fatalf("expected run id and start time, got %+v", summary)
	}
	if _, err := os.Stat(out + ".lock"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected output lock released, stat err = %v", err)
	}
}

func TestRunAcceptedWordsSatisfyTileInvariants(t *testing.T) {
	in, out := paths(t)
	opts := defaultOptions(in, out)
	opts.StrictHomonymGroups = true

	lines, _ := runFile(t, opts,
		row("päivä", "", "substantiivi", "10"),
		row("öljy", "", "substantiivi", "1"),
		row("ööli", "", "substantiivi", "5"),
		row("bébé", "", "substantiivi", "5"),
		row("Aalto", "1", "substantiivi", "1"),
		row("Aalto", "2", "substantiivi", "1"),
		row("juosta", "", "verbi", "70"),
	)

	for _, word := range lines {
		if strings.Contains(word, "-") || !wordcheck.CharsAllowed(word) || !wordcheck.FitsTileBudget(word) {
			t.Fatalf("word %q violates the tile invariants", word)
		}
	}
	if strings.Join(lines, ",") != "päivä,öljy,juosta" {
		t.Fatalf("unexpected word list %v", lines)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	in, out := paths(t)
	opts := defaultOptions(in, out)
	rows := []string{
		row("talo", "", "substantiivi", "1"),
		row("kuusi", "1", "substantiivi", ""),
		row("kuusi", "2", "numeraali", ""),
		row("punainen", "", "adjektiivi", "38"),
	}

	testsupport.WriteLexicon(t, in, rows...)
	if _, err := pipeline.Run(context.Background(), opts, nil); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read first output: %v", err)
	}
	if _, err := pipeline.Run(context.Background(), opts, nil); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read second output: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("outputs differ:\n%q\n%q", first, second)
	}
	if string(first) != "talo\nkuusi\npunainen\n" {
		t.Fatalf("unexpected output %q", first)
	}
}

func TestRunMissingInput(t *testing.T) {
	in, out := paths(t)
	_, err := pipeline.Run(context.Background(), defaultOptions(in, out), nil)
	if !errors.Is(err, pipeline.ErrSource) || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected source not-exist error, got %v", err)
	}
	if _, statErr := os.Stat(out); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatal("output must not be created when the input cannot be opened")
	}
}

func TestRunInvalidUTF8(t *testing.T) {
	in, out := paths(t)
	opts := defaultOptions(in, out)
	testsupport.WriteLexicon(t, in, row("kala", "", "substantiivi", ""), "p\xe4iv\xe4\t\tsubstantiivi\t10")

	summary, err := pipeline.Run(context.Background(), opts, nil)
	if !errors.Is(err, pipeline.ErrDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}
	if summary.RowsRead != 1 {
		t.Fatalf("expected one row read before the failure, got %d", summary.RowsRead)
	}
	if _, statErr := os.Stat(out + ".lock"); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatal("lock must be released on failure")
	}
}

func TestRunRejectsLockedOutput(t *testing.T) {
	in, out := paths(t)
	testsupport.WriteLexicon(t, in, row("kala", "", "substantiivi", ""))

	held, err := wordlist.Create(out)
	if err != nil {
		t.Fatalf("hold lock: %v", err)
	}
	defer held.Close()

	_, err = pipeline.Run(context.Background(), defaultOptions(in, out), nil)
	if !errors.Is(err, pipeline.ErrSink) || !errors.Is(err, wordlist.ErrLocked) {
		t.Fatalf("expected locked sink error, got %v", err)
	}
}

func TestRunValidatesOptions(t *testing.T) {
	in, _ := paths(t)
	cases := map[string]pipeline.Options{
		"missing input":  {Output: "out.txt"},
		"missing output": {Input: in},
		"same file":      {Input: in, Output: in},
	}
	for name, opts := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := pipeline.Run(context.Background(), opts, nil); !errors.Is(err, pipeline.ErrConfiguration) {
				t.Fatalf("expected configuration error, got %v", err)
			}
		})
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	in, out := paths(t)
	rows := make([]string, 0, 5000)
	for range 5000 {
		rows = append(rows, row("kala", "", "substantiivi", ""))
	}
	testsupport.WriteLexicon(t, in, rows...)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := pipeline.Run(ctx, defaultOptions(in, out), nil)
	if !errors.Is(err, pipeline.ErrAborted) || !errors.Is(err, context.Canceled) {
		t.Fatalf("expected aborted run, got %v", err)
	}
}

func TestFilterStreams(t *testing.T) {
	input := testsupport.LexiconHeader + "\n" +
		row("sinä", "", "pronomini", "") + "\n" +
		row("kolme", "", "numeraali", "8") + "\n" +
		row("auts", "", "interjektio", "") + "\n"

	opts := pipeline.Options{Policy: wordcheck.Policy{AcceptPronouns: true, AcceptInterjections: true}}
	var out bytes.Buffer
	summary, err := pipeline.Filter(context.Background(), strings.NewReader(input), &out, opts, nil)
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if out.String() != "sinä\nauts\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
	if summary.WordsWritten != 2 || summary.Rejections[wordcheck.ReasonCategory] != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestRunNormalizationToggle(t *testing.T) {
	input := testsupport.LexiconHeader + "\n" + row("ka\u0308la", "", "substantiivi", "10") + "\n"
	policy := wordcheck.Policy{AcceptSubstantives: true}

	for _, tc := range []struct {
		normalize bool
		want      string
	}{
		{normalize: true, want: "käla\n"},
		{normalize: false, want: ""},
	} {
		var out bytes.Buffer
		opts := pipeline.Options{Policy: policy, NormalizeUnicode: tc.normalize}
		summary, err := pipeline.Filter(context.Background(), strings.NewReader(input), &out, opts, nil)
		if err != nil {
			t.Fatalf("normalize=%v: %v", tc.normalize, err)
		}
		if out.String() != tc.want {
			t.Fatalf("normalize=%v: output %q, want %q", tc.normalize, out.String(), tc.want)
		}
		if !tc.normalize && summary.Rejections[wordcheck.ReasonCharset] != 1 {
			t.Fatalf("expected charset rejection without normalization, got %+v", summary.Rejections)
		}
	}
}

func TestFilterTreatsAnyHomonymValueAsGroup(t *testing.T) {
	input := testsupport.LexiconHeader + "\n" +
		row("kala", "0", "substantiivi", "10") + "\n" +
		row("kala", "1a", "verbi", "") + "\n" +
		row("talo", "", "substantiivi", "1") + "\n"

	opts := pipeline.Options{Policy: wordcheck.Policy{AcceptSubstantives: true}}
	var out bytes.Buffer
	summary, err := pipeline.Filter(context.Background(), strings.NewReader(input), &out, opts, nil)
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if out.String() != "kala\ntalo\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
	if summary.GroupsResolved != 1 || summary.LargestGroup != 2 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestWrapKeepsMarkerAndCause(t *testing.T) {
	cause := errors.New("disk full")
	err := pipeline.Wrap(pipeline.ErrSink, "write", "flush word list", "", cause)
	if !errors.Is(err, pipeline.ErrSink) || !errors.Is(err, cause) {
		t.Fatalf("expected marker and cause in chain: %v", err)
	}
	if err.Error() != "sink error: write: flush word list: disk full" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if got := pipeline.Wrap(nil, "", "", "", nil).Error(); got != "run aborted: pipeline failure" {
		t.Fatalf("unexpected default message %q", got)
	}
}
