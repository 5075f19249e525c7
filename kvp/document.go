package kvp

import (
	"strconv"
	"strings"
)

// EntryKind tags a GenericEntry.
type EntryKind int

const (
	// BareEntry is a positional line without a key.
	BareEntry EntryKind = iota
	// KeyValue is a "key = value" line.
	KeyValue
)

// Entry is one non-header line of a section. Value is never decoded here.
type Entry struct {
	Kind  EntryKind
	Key   string // folded; empty for BareEntry
	Value string // original case, trimmed
	Line  int
}

// Section is a header plus the entries that follow it. The root section
// (Name "") holds entries that appear before the first header.
type Section struct {
	Name     string
	Index    uint64
	HasIndex bool
	BadIndex bool // an index was written but could not be decoded
	Line     int
	Entries  []Entry
}

// Label renders the section the way diagnostics refer to it.
func (s *Section) Label() string {
	if s.HasIndex {
		return s.Name + strconv.FormatUint(s.Index, 10)
	}
	return s.Name
}

// Document is the intermediate form between text and typed records. It keeps
// source order and does not merge duplicate sections.
type Document struct {
	Version     *Entry
	Sections    []Section
	Diagnostics Diagnostics
}

// HeaderSet holds the folded section names (aliases included) a format knows.
// The ordered dialect needs it to find block boundaries; the indexed dialect
// uses it to keep names such as "pilot lamp" from being split into an index.
type HeaderSet map[string]bool

// Build groups normalized lines into a Document.
func Build(lines []Line, d Dialect, known HeaderSet) *Document {
	doc := &Document{}
	var cur *Section
	seenContent := false
	for _, l := range lines {
		if l.Empty() {
			continue
		}
		if sec, ok := parseHeader(l, d, known, &doc.Diagnostics); ok {
			doc.Sections = append(doc.Sections, sec)
			cur = &doc.Sections[len(doc.Sections)-1]
			seenContent = true
			continue
		}
		if !d.Indexed && !seenContent {
			seenContent = true
			doc.Version = &Entry{Kind: BareEntry, Value: l.Text, Line: l.Number}
			continue
		}
		seenContent = true
		if cur == nil {
			doc.Sections = append(doc.Sections, Section{Line: l.Number})
			cur = &doc.Sections[len(doc.Sections)-1]
		}
		cur.Entries = append(cur.Entries, splitEntry(l, d))
	}
	return doc
}

func splitEntry(l Line, d Dialect) Entry {
	i := strings.IndexByte(l.Text, d.KeySeparator)
	if i < 0 {
		return Entry{Kind: BareEntry, Value: l.Text, Line: l.Number}
	}
	return Entry{
		Kind:  KeyValue,
		Key:   strings.ToLower(strings.TrimSpace(l.Text[:i])),
		Value: strings.TrimSpace(l.Text[i+1:]),
		Line:  l.Number,
	}
}

func parseHeader(l Line, d Dialect, known HeaderSet, diags *Diagnostics) (Section, bool) {
	s := l.Folded
	if !d.Indexed {
		if d.HeaderMarker != 0 {
			s = strings.TrimSpace(strings.TrimPrefix(s, string(d.HeaderMarker)))
		}
		if known[s] {
			return Section{Name: s, Line: l.Number}, true
		}
		return Section{}, false
	}

	if len(s) < 2 || s[0] != d.HeaderOpen || s[len(s)-1] != d.HeaderClose {
		return Section{}, false
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return Section{}, false
	}
	sec := Section{Name: inner, Line: l.Number}
	if known[inner] {
		return sec, true
	}

	if i := strings.LastIndexAny(inner, " \t"); i >= 0 {
		name := strings.TrimSpace(inner[:i])
		idx := inner[i+1:]
		if n, err := strconv.ParseUint(idx, 10, 64); err == nil {
			sec.Name, sec.Index, sec.HasIndex = name, n, true
			return sec, true
		}
		if known[name] {
			sec.Name, sec.BadIndex = name, true
			diags.add(Diagnostic{
				Category: DecodeFailure,
				Kind:     KindNumeric,
				Line:     l.Number,
				Section:  name,
				Message:  "section index " + strconv.Quote(idx) + " is not an unsigned integer; section treated as unindexed",
			})
		}
		return sec, true
	}

	j := len(inner)
	for j > 0 && inner[j-1] >= '0' && inner[j-1] <= '9' {
		j--
	}
	if j == 0 || j == len(inner) {
		return sec, true
	}
	name := strings.TrimSpace(inner[:j])
	sec.Name = name
	n, err := strconv.ParseUint(inner[j:], 10, 64)
	if err != nil {
		sec.BadIndex = true
		diags.add(Diagnostic{
			Category: DecodeFailure,
			Kind:     KindNumeric,
			Line:     l.Number,
			Section:  name,
			Message:  "section index " + strconv.Quote(inner[j:]) + " out of range; section treated as unindexed",
		})
		return sec, true
	}
	sec.Index, sec.HasIndex = n, true
	return sec, true
}
