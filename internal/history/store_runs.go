package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"sanalista/internal/wordcheck"
)

const runColumns = "run_id, started_at, duration_ms, input_path, output_path, output_sha256, output_bytes, rows_read, words_written, standalone_accepted, groups_resolved, groups_dropped, largest_group, rejections_json, policy_json, strict_homonym_groups, status, error_message"

// DefaultListLimit caps List when the caller passes a non-positive limit.
const DefaultListLimit = 20

// Record inserts run. Recording the same run ID twice replaces the earlier row.
func (s *Store) Record(ctx context.Context, run Run) error {
	if strings.TrimSpace(run.RunID) == "" {
		return errors.New("run id is required")
	}
	if run.Status == "" {
		run.Status = StatusCompleted
	}
	rejections, err := json.Marshal(rejectionsOrEmpty(run.Rejections))
	if err != nil {
		return fmt.Errorf("encode rejections: %w", err)
	}
	policy, err := json.Marshal(run.Policy)
	if err != nil {
		return fmt.Errorf("encode policy: %w", err)
	}

	err = s.execWithRetry(ctx,
		`INSERT OR REPLACE INTO runs (`+runColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.Duration.Milliseconds(),
		run.Input,
		run.Output,
		nullableString(run.OutputSHA256),
		run.OutputBytes,
		run.RowsRead,
		run.WordsWritten,
		run.StandaloneAccepted,
		run.GroupsResolved,
		run.GroupsDropped,
		run.LargestGroup,
		string(rejections),
		string(policy),
		boolToInt(run.StrictHomonymGroups),
		string(run.Status),
		nullableString(run.ErrorMessage),
	)
	if err != nil {
		return fmt.Errorf("record run %s: %w", run.RunID, err)
	}
	return nil
}

// List returns up to limit runs, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	ctx = ensureContext(ctx)
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs ORDER BY started_at DESC, run_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Get returns the run with the given identifier, or nil when none exists.
func (s *Store) Get(ctx context.Context, runID string) (*Run, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func scanRun(scanner interface{ Scan(dest ...any) error }) (Run, error) {
	var (
		run          Run
		startedRaw   string
		outputSHA    sql.NullString
		durationMS   int64
		rejections   sql.NullString
		policy       sql.NullString
		strict       int64
		status       string
		errorMessage sql.NullString
	)
	if err := scanner.Scan(
		&run.RunID,
		&startedRaw,
		&durationMS,
		&run.Input,
		&run.Output,
		&outputSHA,
		&run.OutputBytes,
		&run.RowsRead,
		&run.WordsWritten,
		&run.StandaloneAccepted,
		&run.GroupsResolved,
		&run.GroupsDropped,
		&run.LargestGroup,
		&rejections,
		&policy,
		&strict,
		&status,
		&errorMessage,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("scan run: %w", err)
	}

	started, err := time.Parse(time.RFC3339Nano, startedRaw)
	if err != nil {
		return Run{}, fmt.Errorf("parse started_at for %s: %w", run.RunID, err)
	}
	run.StartedAt = started
	run.OutputSHA256 = outputSHA.String
	run.Duration = time.Duration(durationMS) * time.Millisecond
	run.StrictHomonymGroups = strict != 0
	run.Status = Status(status)
	run.ErrorMessage = errorMessage.String

	run.Rejections = make(map[wordcheck.Reason]int)
	if rejections.Valid && rejections.String != "" {
		if err := json.Unmarshal([]byte(rejections.String), &run.Rejections); err != nil {
			return Run{}, fmt.Errorf("decode rejections for %s: %w", run.RunID, err)
		}
	}
	if policy.Valid && policy.String != "" {
		if err := json.Unmarshal([]byte(policy.String), &run.Policy); err != nil {
			return Run{}, fmt.Errorf("decode policy for %s: %w", run.RunID, err)
		}
	}
	return run, nil
}

func rejectionsOrEmpty(m map[wordcheck.Reason]int) map[wordcheck.Reason]int {
	if m == nil {
		return map[wordcheck.Reason]int{}
	}
	return m
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
