package kvp

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Category classifies a recoverable parse/bind anomaly.
type Category string

const (
	UnknownSection  Category = "unknown-section"
	UnknownKey      Category = "unknown-key"
	DuplicateIndex  Category = "duplicate-index"
	DecodeFailure   Category = "decode-failure"
	MissingRequired Category = "missing-required"
)

// ErrDiagnostics is wrapped by Diagnostics.Err for callers that treat any
// degradation as failure.
var ErrDiagnostics = errors.New("configuration has diagnostics")

// Diagnostic records where a degraded or defaulted decision was made.
// Line is 1-based; 0 means no reasonable source mapping exists.
type Diagnostic struct {
	Category Category   `json:"category" yaml:"category"`
	Kind     DecodeKind `json:"kind,omitempty" yaml:"kind,omitempty"`
	Line     int        `json:"line,omitempty" yaml:"line,omitempty"`
	Section  string     `json:"section,omitempty" yaml:"section,omitempty"`
	Key      string     `json:"key,omitempty" yaml:"key,omitempty"`
	Message  string     `json:"message" yaml:"message"`
}

// String renders the diagnostic as one human-readable report line.
func (d Diagnostic) String() string {
	var b strings.Builder
	if d.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", d.Line)
	}
	b.WriteString(string(d.Category))
	if d.Kind != "" {
		fmt.Fprintf(&b, " (%s)", d.Kind)
	}
	if d.Section != "" || d.Key != "" {
		b.WriteString(" [")
		b.WriteString(d.Section)
		if d.Key != "" {
			b.WriteString(".")
			b.WriteString(d.Key)
		}
		b.WriteString("]")
	}
	if d.Message != "" {
		b.WriteString(": ")
		b.WriteString(d.Message)
	}
	return b.String()
}

// Diagnostics accumulates in the order anomalies are found.
type Diagnostics []Diagnostic

func (ds *Diagnostics) add(d Diagnostic) {
	*ds = append(*ds, d)
}

func (ds *Diagnostics) addf(cat Category, line int, section, key, format string, args ...any) {
	ds.add(Diagnostic{Category: cat, Line: line, Section: section, Key: key, Message: fmt.Sprintf(format, args...)})
}

// Count returns how many diagnostics have the given category.
func (ds Diagnostics) Count(cat Category) int {
	n := 0
	for _, d := range ds {
		if d.Category == cat {
			n++
		}
	}
	return n
}

// Summary returns per-category counts, e.g. "decode-failure=2 unknown-key=1".
// Empty when there are no diagnostics.
func (ds Diagnostics) Summary() string {
	counts := make(map[Category]int)
	for _, d := range ds {
		counts[d.Category]++
	}
	cats := make([]string, 0, len(counts))
	for c := range counts {
		cats = append(cats, string(c))
	}
	sort.Strings(cats)
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = fmt.Sprintf("%s=%d", c, counts[Category(c)])
	}
	return strings.Join(parts, " ")
}

// Report renders every diagnostic on its own line.
func (ds Diagnostics) Report() string {
	var b strings.Builder
	for _, d := range ds {
		b.WriteString(d.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Err returns nil for an empty list and an error wrapping ErrDiagnostics
// otherwise.
func (ds Diagnostics) Err() error {
	if len(ds) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d (%s)", ErrDiagnostics, len(ds), ds.Summary())
}
