package harness

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/BVE-Reborn/bve-reborn-sub001/kvp"
)

// Status classifies the outcome of one file.
type Status string

const (
	Success Status = "success"
	Errors  Status = "errors"
	Panic   Status = "panic"

	// Cancelled marks a file interrupted by the scan being stopped. It is
	// not reported.
	Cancelled Status = "cancelled"
)

// TimeoutCause is the panic cause recorded when a file exceeds its budget.
const TimeoutCause = "timeout"

// Outcome is the result of scanning one file.
type Outcome struct {
	Path    string
	Format  string
	Status  Status
	Count   int    // diagnostics, for Errors
	Summary string // per-category counts, for Errors
	Cause   string // for Panic
	Elapsed time.Duration
}

func outcomeOf(diags kvp.Diagnostics) Outcome {
	if len(diags) == 0 {
		return Outcome{Status: Success}
	}
	return Outcome{Status: Errors, Count: len(diags), Summary: diags.Summary()}
}

type Failure struct {
	Path    string `json:"path"`
	Format  string `json:"format"`
	Count   int    `json:"count"`
	Summary string `json:"summary"`
}

type PanicRecord struct {
	Path   string `json:"path"`
	Format string `json:"format"`
	Cause  string `json:"cause"`
}

// Report buckets outcomes in arrival order.
type Report struct {
	ID        string        `json:"id,omitempty"`
	Successes []string      `json:"successes"`
	Failures  []Failure     `json:"failures"`
	Panics    []PanicRecord `json:"panics"`
}

func newReport() *Report {
	return &Report{Successes: []string{}, Failures: []Failure{}, Panics: []PanicRecord{}}
}

// Add files o under its bucket.
func (r *Report) Add(o Outcome) {
	switch o.Status {
	case Success:
		r.Successes = append(r.Successes, o.Path)
	case Errors:
		r.Failures = append(r.Failures, Failure{Path: o.Path, Format: o.Format, Count: o.Count, Summary: o.Summary})
	case Cancelled:
	default:
		r.Panics = append(r.Panics, PanicRecord{Path: o.Path, Format: o.Format, Cause: o.Cause})
	}
}

// Total returns the number of files recorded.
func (r *Report) Total() int {
	return len(r.Successes) + len(r.Failures) + len(r.Panics)
}

// String returns a one-line tally.
func (r *Report) String() string {
	return fmt.Sprintf("%d files: %d clean, %d with diagnostics, %d panics",
		r.Total(), len(r.Successes), len(r.Failures), len(r.Panics))
}

// WriteJSON writes the report to path, indented.
func (r *Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
