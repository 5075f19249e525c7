package harness

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BVE-Reborn/bve-reborn-sub001/formats"
	"github.com/BVE-Reborn/bve-reborn-sub001/kvp"
)

func init() {
	logrus.SetLevel(logrus.WarnLevel)
}

// corpus lays out a small train folder: two clean files, one with
// diagnostics, one ignored file and one excluded directory.
func corpus(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "EMU", "train.dat"), "BVE2000000\n#HANDLE\n0\n4\n6\n")
	writeFile(t, filepath.Join(root, "EMU", "ats.cfg"), "ats.dll\n")
	writeFile(t, filepath.Join(root, "EMU", "extensions.cfg"), "[Car0]\nLength=20\n[Roof]\nx=1\n")
	writeFile(t, filepath.Join(root, "EMU", "readme.txt"), "not a config\n")
	writeFile(t, filepath.Join(root, "old", "sound.cfg"), "[Run]\n0=a.wav\n")
	return root
}

func withParser(t *testing.T, fn func(formats.Format, string) kvp.Diagnostics) {
	t.Helper()
	old := parseText
	parseText = fn
	t.Cleanup(func() { parseText = old })
}

func TestScan_BucketsOutcomes(t *testing.T) {
	// GIVEN a corpus with one excluded directory
	root := corpus(t)
	cfg := DefaultConfig()
	cfg.Workers = 2
	cfg.Exclude = []string{"old"}

	// WHEN it is scanned in-process
	report, err := Scan(context.Background(), cfg, root)

	// THEN clean files succeed and the unknown section is a failure
	require.NoError(t, err)
	sort.Strings(report.Successes)
	assert.Equal(t, []string{
		filepath.Join(root, "EMU", "ats.cfg"),
		filepath.Join(root, "EMU", "train.dat"),
	}, report.Successes)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, Failure{
		Path:    filepath.Join(root, "EMU", "extensions.cfg"),
		Format:  "extensions",
		Count:   1,
		Summary: "unknown-section=1",
	}, report.Failures[0])
	assert.Empty(t, report.Panics)
	assert.Equal(t, 3, report.Total())
	_, perr := uuid.Parse(report.ID)
	assert.NoError(t, perr, "report carries a run ID")
}

func TestScan_RecoversPanics(t *testing.T) {
	root := corpus(t)
	withParser(t, func(f formats.Format, text string) kvp.Diagnostics {
		if f.Name == "ats" {
			panic("index out of range")
		}
		_, d := f.Parse(text)
		return d
	})
	cfg := DefaultConfig()
	cfg.Workers = 1

	report, err := Scan(context.Background(), cfg, root)

	// THEN the panic is recorded and the rest of the corpus still runs
	require.NoError(t, err)
	require.Len(t, report.Panics, 1)
	assert.Equal(t, "index out of range", report.Panics[0].Cause)
	assert.Equal(t, "ats", report.Panics[0].Format)
	assert.Equal(t, 4, report.Total())
}

func TestScan_InProcessTimeout(t *testing.T) {
	root := corpus(t)
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	withParser(t, func(f formats.Format, text string) kvp.Diagnostics {
		if f.Name == "traindat" {
			<-release
		}
		_, d := f.Parse(text)
		return d
	})
	cfg := DefaultConfig()
	cfg.Workers = 2
	cfg.Timeout = 50 * time.Millisecond

	report, err := Scan(context.Background(), cfg, root)

	// THEN the hung file is abandoned with a timeout cause
	require.NoError(t, err)
	require.Len(t, report.Panics, 1)
	assert.Equal(t, TimeoutCause, report.Panics[0].Cause)
	assert.Equal(t, filepath.Join(root, "EMU", "train.dat"), report.Panics[0].Path)
}

func TestScan_CancelledContext(t *testing.T) {
	root := corpus(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := Scan(ctx, DefaultConfig(), root)

	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	assert.LessOrEqual(t, report.Total(), 4)
}

func TestScan_CancelledMidParseIsNotAPanic(t *testing.T) {
	// GIVEN a scan stuck on a hung parse
	root := corpus(t)
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	started := make(chan struct{}, 16)
	withParser(t, func(f formats.Format, text string) kvp.Diagnostics {
		started <- struct{}{}
		<-release
		return nil
	})
	cfg := DefaultConfig()
	cfg.Workers = 1
	cfg.Timeout = time.Minute
	ctx, cancel := context.WithCancel(context.Background())

	// WHEN the scan is cancelled while the parse is running
	go func() {
		<-started
		cancel()
	}()
	report, err := Scan(ctx, cfg, root)

	// THEN the interrupted file is dropped rather than counted as a panic
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	assert.Empty(t, report.Panics)
	assert.Zero(t, report.Total())
}

func TestReport_IgnoresCancelled(t *testing.T) {
	r := newReport()

	r.Add(Outcome{Path: "a/train.dat", Status: Cancelled})

	assert.Zero(t, r.Total())
}

func TestScan_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = 0

	_, err := Scan(context.Background(), cfg, t.TempDir())

	assert.ErrorContains(t, err, "workers")
}

func TestReport_WriteJSON(t *testing.T) {
	// GIVEN a report with one outcome per bucket
	r := newReport()
	r.Add(Outcome{Path: "a/train.dat", Format: "traindat", Status: Success})
	r.Add(Outcome{Path: "a/sound.cfg", Format: "sound", Status: Errors, Count: 2, Summary: "unknown-key=2"})
	r.Add(Outcome{Path: "a/x.animated", Format: "animated", Status: Panic, Cause: TimeoutCause})
	path := filepath.Join(t.TempDir(), "report.json")

	// WHEN it is written and read back
	require.NoError(t, r.WriteJSON(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &got))

	// THEN the three buckets are present
	assert.JSONEq(t, `["a/train.dat"]`, string(got["successes"]))
	assert.JSONEq(t, `[{"path":"a/sound.cfg","format":"sound","count":2,"summary":"unknown-key=2"}]`, string(got["failures"]))
	assert.JSONEq(t, `[{"path":"a/x.animated","format":"animated","cause":"timeout"}]`, string(got["panics"]))
	assert.Equal(t, "3 files: 1 clean, 1 with diagnostics, 1 panics", r.String())
}

func TestReport_EmptyBucketsAreArrays(t *testing.T) {
	data, err := json.Marshal(newReport())

	require.NoError(t, err)
	assert.JSONEq(t, `{"successes":[],"failures":[],"panics":[]}`, string(data))
}

func TestChildCause(t *testing.T) {
	stderr := strings.Join([]string{"goroutine 1 [running]:", "panic: boom", "main.main()"}, "\n")
	assert.Equal(t, "boom", childCause(os.ErrClosed, stderr))
	assert.Equal(t, "exit status 3", childCause(os.ErrClosed, "\nexit status 3\n"))
	assert.Equal(t, os.ErrClosed.Error(), childCause(os.ErrClosed, ""))
}
