package harness

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/BVE-Reborn/bve-reborn-sub001/formats"
	"github.com/BVE-Reborn/bve-reborn-sub001/kvp"
)

type job struct {
	path   string
	format formats.Format
}

// parseText is the in-process parse step; tests replace it to inject hangs
// and panics.
var parseText = func(f formats.Format, text string) kvp.Diagnostics {
	_, diags := f.Parse(text)
	return diags
}

// collect walks root and returns the files a registered format (or an
// override) claims, in lexical order.
func collect(root string, cfg Config) ([]job, error) {
	var jobs []job
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		if d.IsDir() {
			if rel != "." && cfg.excluded(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || cfg.excluded(rel) {
			return nil
		}
		if f, ok := cfg.formatFor(d.Name()); ok {
			jobs = append(jobs, job{path: path, format: f})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return jobs, nil
}

// Scan parses every recognized file under root with cfg.Workers workers.
// Outcomes are collected by a single consumer in arrival order. A cancelled
// ctx stops feeding new files; the partial report is returned with ctx.Err().
func Scan(ctx context.Context, cfg Config, root string) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	jobs, err := collect(root, cfg)
	if err != nil {
		return nil, err
	}
	parse := parseText
	run := func(ctx context.Context, j job) Outcome { return runInProcess(ctx, parse, j, cfg.Timeout) }
	if cfg.Isolate {
		command := cfg.Command
		if len(command) == 0 {
			exe, err := os.Executable()
			if err != nil {
				return nil, fmt.Errorf("locating executable for isolate mode: %w", err)
			}
			command = []string{exe}
		}
		run = func(ctx context.Context, j job) Outcome { return runIsolated(ctx, command, j, cfg.Timeout) }
	}

	report := newReport()
	report.ID = uuid.NewString()
	log := logrus.WithField("scan", report.ID)
	log.Infof("Scanning %d files under %s with %d workers (isolate=%v, timeout=%s)",
		len(jobs), root, cfg.Workers, cfg.Isolate, cfg.Timeout)

	inCh := make(chan job, cfg.Workers*2)
	outCh := make(chan Outcome, cfg.Workers*2)

	go func() {
		defer close(inCh)
		for _, j := range jobs {
			select {
			case <-ctx.Done():
				return
			case inCh <- j:
			}
		}
	}()

	var g errgroup.Group
	for i := 0; i < cfg.Workers; i++ {
		g.Go(func() error {
			for j := range inCh {
				start := time.Now()
				o := run(ctx, j)
				o.Path, o.Format, o.Elapsed = j.path, j.format.Name, time.Since(start)
				outCh <- o
			}
			return nil
		})
	}
	go func() {
		_ = g.Wait()
		close(outCh)
	}()

	for o := range outCh {
		if o.Status == Cancelled {
			log.WithField("file", o.Path).Debug("cancelled")
			continue
		}
		entry := log.WithFields(logrus.Fields{
			"file":    o.Path,
			"format":  o.Format,
			"status":  o.Status,
			"elapsed": o.Elapsed,
		})
		switch o.Status {
		case Success:
			entry.Debug("parsed")
		case Errors:
			entry.WithField("summary", o.Summary).Infof("%d diagnostics", o.Count)
		default:
			entry.WithField("cause", o.Cause).Warn("parser panicked")
		}
		report.Add(o)
	}
	log.Info(report.String())
	return report, ctx.Err()
}

// runInProcess parses on a separate goroutine so a panic is recovered and a
// hang is cut off at timeout. A timed-out goroutine cannot be killed; it is
// abandoned and its result discarded.
func runInProcess(ctx context.Context, parse func(formats.Format, string) kvp.Diagnostics, j job, timeout time.Duration) Outcome {
	text, err := formats.ReadFile(j.path)
	if err != nil {
		return Outcome{Status: Errors, Count: 1, Summary: fmt.Sprintf("read-error=1 (%v)", err)}
	}

	done := make(chan Outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- Outcome{Status: Panic, Cause: fmt.Sprint(r)}
			}
		}()
		done <- outcomeOf(parse(j.format, text))
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case o := <-done:
		return o
	case <-timer.C:
		return Outcome{Status: Panic, Cause: TimeoutCause}
	case <-ctx.Done():
		return Outcome{Status: Cancelled}
	}
}
