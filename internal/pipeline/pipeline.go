package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"sanalista/internal/homonym"
	"sanalista/internal/lexicon"
	"sanalista/internal/logging"
	"sanalista/internal/wordcheck"
	"sanalista/internal/wordlist"
)

const (
	stageRead  = "read"
	stageWrite = "write"

	// ctxCheckInterval is how many rows are processed between context checks.
	ctxCheckInterval = 4096
)

// Options configures one run.
type Options struct {
	// RunID identifies the run in logs and history. Generated when empty.
	RunID               string
	Input               string
	Output              string
	Policy              wordcheck.Policy
	StrictHomonymGroups bool
	NormalizeUnicode    bool
	LockOutput          bool
}

// Summary describes a finished run.
type Summary struct {
	RunID               string
	Input               string
	Output              string
	StartedAt           time.Time
	Duration            time.Duration
	RowsRead            int
	StandaloneAccepted  int
	Rejections          map[wordcheck.Reason]int
	GroupsResolved      int
	GroupsDropped       int
	LargestGroup        int
	WordsWritten        int
	Policy              wordcheck.Policy
	StrictHomonymGroups bool
}

// Run filters opts.Input into opts.Output.
func Run(ctx context.Context, opts Options, logger *slog.Logger) (summary Summary, err error) {
	if opts.Input == "" {
		return Summary{}, Wrap(ErrConfiguration, "", "", "input path is required", nil)
	}
	if opts.Output == "" {
		return Summary{}, Wrap(ErrConfiguration, "", "", "output path is required", nil)
	}
	if sameFile(opts.Input, opts.Output) {
		return Summary{}, Wrap(ErrConfiguration, "", "", "output must differ from input", nil)
	}

	opts.RunID = ensureRunID(opts.RunID)
	logger = logging.WithRunID(logging.NewComponentLogger(logger, "pipeline"), opts.RunID)

	src, err := lexicon.Open(opts.Input, lexicon.WithUnicodeNormalization(opts.NormalizeUnicode))
	if err != nil {
		return Summary{}, Wrap(ErrSource, stageRead, "open lexicon", opts.Input, err)
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			err = errors.Join(err, Wrap(ErrSource, stageRead, "close lexicon", opts.Input, closeErr))
		}
	}()

	dst, err := wordlist.Create(opts.Output, wordlist.WithLock(opts.LockOutput))
	if err != nil {
		return Summary{}, Wrap(ErrSink, stageWrite, "create word list", opts.Output, err)
	}
	defer func() {
		if closeErr := dst.Close(); closeErr != nil {
			err = errors.Join(err, Wrap(ErrSink, stageWrite, "close word list", opts.Output, closeErr))
		}
	}()

	logger.Info("starting to parse lexicon",
		logging.String("input", opts.Input),
		logging.String("output", opts.Output),
		logging.Bool("strict_homonym_groups", opts.StrictHomonymGroups))

	summary, err = process(ctx, src.Reader, dst.Writer, opts, logger)
	if err != nil {
		logging.ErrorWithContext(logger, "parsing aborted", "pipeline_aborted",
			logging.Error(err),
			logging.Int("rows", summary.RowsRead),
			logging.Int("words", summary.WordsWritten),
			logging.String(logging.FieldErrorHint, "the word list may be truncated; rerun after fixing the cause"))
		return summary, err
	}

	logger.Info("parsing complete",
		logging.Int("rows", summary.RowsRead),
		logging.Int("words", summary.WordsWritten),
		logging.Int("groups_resolved", summary.GroupsResolved),
		rejectionAttrs(summary.Rejections),
		logging.Duration("duration", summary.Duration))
	return summary, nil
}

// rejectionAttrs groups the rejection counters in check order.
func rejectionAttrs(rejections map[wordcheck.Reason]int) logging.Attr {
	reasons := wordcheck.Reasons()
	attrs := make([]logging.Attr, 0, len(reasons))
	for _, reason := range reasons {
		attrs = append(attrs, logging.Int(string(reason), rejections[reason]))
	}
	return logging.Group("rejected", attrs...)
}

// Filter runs the pipeline over in-memory streams. The writer is flushed
// before Filter returns; closing src and dst stays with the caller.
func Filter(ctx context.Context, src io.Reader, dst io.Writer, opts Options, logger *slog.Logger) (Summary, error) {
	opts.RunID = ensureRunID(opts.RunID)
	logger = logging.WithRunID(logging.NewComponentLogger(logger, "pipeline"), opts.RunID)
	reader := lexicon.NewReader(src, lexicon.WithUnicodeNormalization(opts.NormalizeUnicode))
	return process(ctx, reader, wordlist.NewWriter(dst), opts, logger)
}

func process(ctx context.Context, reader *lexicon.Reader, writer *wordlist.Writer, opts Options, logger *slog.Logger) (Summary, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	summary := Summary{
		RunID:               opts.RunID,
		Input:               opts.Input,
		Output:              opts.Output,
		StartedAt:           time.Now().UTC(),
		Policy:              opts.Policy,
		StrictHomonymGroups: opts.StrictHomonymGroups,
	}
	resolver := homonym.New(opts.Policy, homonym.WithStrictGroups(opts.StrictHomonymGroups))

	finish := func(err error) (Summary, error) {
		stats := resolver.Stats()
		summary.RowsRead = stats.Rows
		summary.StandaloneAccepted = stats.StandaloneAccepts
		summary.Rejections = stats.Rejections
		summary.GroupsResolved = stats.GroupsResolved
		summary.GroupsDropped = stats.GroupsDropped
		summary.LargestGroup = stats.LargestGroup
		summary.WordsWritten = writer.Count()
		summary.Duration = time.Since(summary.StartedAt)
		return summary, err
	}

	emit := func(emissions []homonym.Emission) error {
		for _, e := range emissions {
			if err := writer.Write(e.Word); err != nil {
				return Wrap(ErrSink, stageWrite, "write word", e.Word, err)
			}
			if e.Origin == homonym.OriginGroup {
				logger.Debug("homonym group resolved",
					logging.String(logging.FieldWord, e.Word),
					logging.Int(logging.FieldLine, e.Line),
					logging.Int("group_size", e.GroupSize))
			}
		}
		return nil
	}

	rows := 0
	for row, err := range reader.Rows() {
		if err != nil {
			return finish(classifyReadError(err))
		}
		if err := emit(resolver.Push(row)); err != nil {
			return finish(err)
		}
		rows++
		if rows%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return finish(Wrap(ErrAborted, stageRead, "", "", err))
			}
		}
	}
	if err := emit(resolver.Finish()); err != nil {
		return finish(err)
	}
	if err := writer.Flush(); err != nil {
		return finish(Wrap(ErrSink, stageWrite, "flush word list", "", err))
	}
	return finish(nil)
}

func classifyReadError(err error) error {
	if errors.Is(err, lexicon.ErrInvalidUTF8) {
		return Wrap(ErrDecode, stageRead, "decode lexicon", "", err)
	}
	return Wrap(ErrSource, stageRead, "read lexicon", "", err)
}

func ensureRunID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}
