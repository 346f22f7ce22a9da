package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"sanalista/internal/config"
	"sanalista/internal/fileutil"
	"sanalista/internal/history"
	"sanalista/internal/logging"
	"sanalista/internal/pipeline"
	"sanalista/internal/wordcheck"
)

const logFileName = "sanalista.log"

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var policy policyFlags
	var noHistory bool
	var noLock bool

	cmd := &cobra.Command{
		Use:   "build [input] [output]",
		Short: "Filter the lexicon into a Bananagrams word list",
		Long: "Read the tab separated Kotus lexicon, keep the words that can be laid\n" +
			"with the Finnish Bananagrams tile set, and write them one per line.",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			cfg := *base
			if err := applyPathArgs(&cfg, args); err != nil {
				return err
			}
			policy.apply(cmd, &cfg.Filter)
			if noLock {
				cfg.Output.Lock = false
			}
			if noHistory {
				cfg.History.Enabled = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.Paths.Input == "" {
				return errors.New("input lexicon path is required (pass it as the first argument or set paths.input)")
			}
			if cfg.Paths.Output == "" {
				return errors.New("output path is required (pass it as the second argument or set paths.output)")
			}
			return runBuild(cmd, &cfg)
		},
	}

	policy.bind(cmd, true)
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record this run in the history database")
	cmd.Flags().BoolVar(&noLock, "no-lock", false, "Do not hold <output>.lock while writing")
	return cmd
}

func applyPathArgs(cfg *config.Config, args []string) error {
	targets := []*string{&cfg.Paths.Input, &cfg.Paths.Output}
	for i, arg := range args {
		expanded, err := config.ExpandPath(strings.TrimSpace(arg))
		if err != nil {
			return fmt.Errorf("resolve path %q: %w", arg, err)
		}
		*targets[i] = expanded
	}
	return nil
}

func runBuild(cmd *cobra.Command, cfg *config.Config) error {
	logger, closeLog, err := logging.New(logging.Options{
		Level:    cfg.Logging.Level,
		Format:   cfg.Logging.Format,
		Writer:   cmd.ErrOrStderr(),
		FilePath: filepath.Join(cfg.Paths.LogDir, logFileName),
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = closeLog() }()

	for _, warning := range cfg.Warnings() {
		logging.WarnWithContext(logger, warning, "config_warning",
			logging.String(logging.FieldErrorHint, "enable a word class with --accept-* or in [filter]"))
	}

	runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := pipeline.Options{
		RunID:               uuid.NewString(),
		Input:               cfg.Paths.Input,
		Output:              cfg.Paths.Output,
		Policy:              cfg.Policy(),
		StrictHomonymGroups: cfg.Filter.StrictHomonymGroups,
		NormalizeUnicode:    cfg.Reader.NormalizeUnicode,
		LockOutput:          cfg.Output.Lock,
	}
	summary, runErr := pipeline.Run(runCtx, opts, logger)

	run := history.FromSummary(summary, runErr)
	if runErr == nil {
		digest, size, err := fileutil.Digest(summary.Output)
		if err != nil {
			logging.WarnWithContext(logger, "word list digest failed", "output_digest_failed",
				logging.Error(err),
				logging.String(logging.FieldImpact, "the run is recorded without a checksum"))
		}
		run.OutputSHA256, run.OutputBytes = digest, size
	}

	if cfg.History.Enabled && !summary.StartedAt.IsZero() {
		if err := recordRun(context.WithoutCancel(runCtx), cfg.Paths.HistoryDB, run); err != nil {
			logging.WarnWithContext(logger, "run history not recorded", "history_record_failed",
				logging.Error(err),
				logging.String(logging.FieldImpact, "the history command will not list this run"),
				logging.String(logging.FieldErrorHint, "check paths.history_db or pass --no-history"))
		}
	}

	if runErr != nil {
		return runErr
	}
	printSummary(cmd.OutOrStdout(), summary, run)
	return nil
}

func recordRun(ctx context.Context, path string, run history.Run) error {
	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Record(ctx, run)
}

func printSummary(out io.Writer, summary pipeline.Summary, run history.Run) {
	colorize := shouldColorize(out)
	fmt.Fprintln(out, renderHeading("Word list", colorize))
	fmt.Fprintln(out, renderOutcome("Output", outcomeWritten, summary.Output, colorize))
	fmt.Fprintln(out, renderOutcome("Run", outcomeNote, summary.RunID, colorize))

	pairs := [][2]string{
		{"Rows read", humanize.Comma(int64(summary.RowsRead))},
		{"Words written", humanize.Comma(int64(summary.WordsWritten))},
		{"Standalone accepted", humanize.Comma(int64(summary.StandaloneAccepted))},
		{"Homonym groups resolved", humanize.Comma(int64(summary.GroupsResolved))},
		{"Homonym groups dropped", humanize.Comma(int64(summary.GroupsDropped))},
		{"Largest homonym group", humanize.Comma(int64(summary.LargestGroup))},
	}
	for _, reason := range wordcheck.Reasons() {
		count, ok := summary.Rejections[reason]
		if !ok {
			continue
		}
		pairs = append(pairs, [2]string{"Rejected (" + string(reason) + ")", humanize.Comma(int64(count))})
	}
	if run.OutputSHA256 != "" {
		pairs = append(pairs,
			[2]string{"Output size", humanize.Bytes(uint64(run.OutputBytes))},
			[2]string{"Output SHA-256", run.OutputSHA256[:12]})
	}
	pairs = append(pairs, [2]string{"Duration", summary.Duration.Round(time.Millisecond).String()})
	fmt.Fprintln(out, renderCounters(pairs))
}
