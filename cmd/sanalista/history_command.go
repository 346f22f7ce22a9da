package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"sanalista/internal/history"
)

type historyEntry struct {
	RunID        string         `json:"run_id"`
	StartedAt    time.Time      `json:"started_at"`
	DurationMS   int64          `json:"duration_ms"`
	Status       string         `json:"status"`
	Input        string         `json:"input"`
	Output       string         `json:"output"`
	OutputSHA256 string         `json:"output_sha256,omitempty"`
	OutputBytes  int64          `json:"output_bytes"`
	RowsRead     int            `json:"rows_read"`
	WordsWritten int            `json:"words_written"`
	Rejections   map[string]int `json:"rejections"`
	Error        string         `json:"error,omitempty"`
}

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded word list builds",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				return errors.New("run history is disabled (set history.enabled = true)")
			}

			store, err := history.Open(cfg.Paths.HistoryDB)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			runs, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if asJSON {
				entries := make([]historyEntry, 0, len(runs))
				for _, run := range runs {
					entries = append(entries, toHistoryEntry(run))
				}
				return printJSON(cmd.OutOrStdout(), entries)
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					humanize.Time(run.StartedAt),
					shortRunID(run.RunID),
					string(run.Status),
					humanize.Comma(int64(run.RowsRead)),
					humanize.Comma(int64(run.WordsWritten)),
					humanize.Comma(int64(run.TotalRejected())),
					run.Output,
				})
			}
			columns := []column{
				leftColumn("Started"), leftColumn("Run"), leftColumn("Status"),
				countColumn("Rows"), countColumn("Words"), countColumn("Rejected"),
				leftColumn("Output"),
			}
			fmt.Fprintln(out, renderTable(columns, rows, nil))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", history.DefaultListLimit, "Maximum number of runs to show")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func toHistoryEntry(run history.Run) historyEntry {
	rejections := make(map[string]int, len(run.Rejections))
	for reason, count := range run.Rejections {
		rejections[string(reason)] = count
	}
	return historyEntry{
		RunID:        run.RunID,
		StartedAt:    run.StartedAt,
		DurationMS:   run.Duration.Milliseconds(),
		Status:       string(run.Status),
		Input:        run.Input,
		Output:       run.Output,
		OutputSHA256: run.OutputSHA256,
		OutputBytes:  run.OutputBytes,
		RowsRead:     run.RowsRead,
		WordsWritten: run.WordsWritten,
		Rejections:   rejections,
		Error:        run.ErrorMessage,
	}
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
