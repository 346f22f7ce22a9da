package history

import (
	"time"

	"sanalista/internal/pipeline"
	"sanalista/internal/wordcheck"
)

// Status records how a run ended.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Run is one recorded build.
type Run struct {
	RunID               string
	StartedAt           time.Time
	Duration            time.Duration
	Input               string
	Output              string
	// OutputSHA256 and OutputBytes describe the written word list. Empty for
	// failed runs.
	OutputSHA256        string
	OutputBytes         int64
	RowsRead            int
	WordsWritten        int
	StandaloneAccepted  int
	GroupsResolved      int
	GroupsDropped       int
	LargestGroup        int
	Rejections          map[wordcheck.Reason]int
	Policy              wordcheck.Policy
	StrictHomonymGroups bool
	Status              Status
	ErrorMessage        string
}

// FromSummary converts a pipeline summary into a history record. A non-nil
// runErr marks the run as failed.
func FromSummary(summary pipeline.Summary, runErr error) Run {
	run := Run{
		RunID:               summary.RunID,
		StartedAt:           summary.StartedAt,
		Duration:            summary.Duration,
		Input:               summary.Input,
		Output:              summary.Output,
		RowsRead:            summary.RowsRead,
		WordsWritten:        summary.WordsWritten,
		StandaloneAccepted:  summary.StandaloneAccepted,
		GroupsResolved:      summary.GroupsResolved,
		GroupsDropped:       summary.GroupsDropped,
		LargestGroup:        summary.LargestGroup,
		Rejections:          summary.Rejections,
		Policy:              summary.Policy,
		StrictHomonymGroups: summary.StrictHomonymGroups,
		Status:              StatusCompleted,
	}
	if runErr != nil {
		run.Status = StatusFailed
		run.ErrorMessage = runErr.Error()
	}
	return run
}

// TotalRejected sums the rejection counters.
func (r Run) TotalRejected() int {
	total := 0
	for _, count := range r.Rejections {
		total += count
	}
	return total
}
