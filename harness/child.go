package harness

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/BVE-Reborn/bve-reborn-sub001/formats"
)

// childResult is what "parse --report-json" prints for the parent.
type childResult struct {
	Count   int    `json:"count"`
	Summary string `json:"summary"`
}

// RunChild parses path as f and writes the diagnostic tally as one JSON
// object to w. It is the child side of isolate mode.
func RunChild(w io.Writer, f formats.Format, path string) error {
	text, err := formats.ReadFile(path)
	if err != nil {
		return err
	}
	diags := parseText(f, text)
	return json.NewEncoder(w).Encode(childResult{Count: len(diags), Summary: diags.Summary()})
}

// runIsolated parses j in a child process that is killed when timeout
// expires.
func runIsolated(ctx context.Context, command []string, j job, timeout time.Duration) Outcome {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := append(append([]string(nil), command[1:]...), "parse", "--format", j.format.Name, "--report-json", j.path)
	cmd := exec.CommandContext(ctx, command[0], args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if errors.Is(ctx.Err(), context.Canceled) {
		return Outcome{Status: Cancelled}
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return Outcome{Status: Panic, Cause: TimeoutCause}
	}
	if err != nil {
		return Outcome{Status: Panic, Cause: childCause(err, stderr.String())}
	}
	var res childResult
	if err := json.Unmarshal(stdout.Bytes(), &res); err != nil {
		return Outcome{Status: Panic, Cause: fmt.Sprintf("unreadable child output: %v", err)}
	}
	if res.Count == 0 {
		return Outcome{Status: Success}
	}
	return Outcome{Status: Errors, Count: res.Count, Summary: res.Summary}
}

// childCause prefers the runtime's "panic: ..." line over the exit status.
func childCause(err error, stderr string) string {
	for _, line := range strings.Split(stderr, "\n") {
		if msg, ok := strings.CutPrefix(strings.TrimSpace(line), "panic: "); ok {
			return msg
		}
	}
	if s := strings.TrimSpace(stderr); s != "" {
		lines := strings.Split(s, "\n")
		return lines[len(lines)-1]
	}
	return err.Error()
}
