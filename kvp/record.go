package kvp

import (
	"fmt"
	"strings"
)

// RecordSchema describes how one section binds onto R. It is immutable after
// NewRecord returns and safe to share between concurrent parses.
type RecordSchema[R any] struct {
	name    string
	aliases []string
	fields  []Field[R]
}

// NewRecord builds a section schema. name "" denotes the root section, i.e.
// entries before the first header. It panics when two fields share a key or
// a bare variadic field is followed by another bare field.
func NewRecord[R any](name string, fields ...Field[R]) *RecordSchema[R] {
	rs := &RecordSchema[R]{name: strings.ToLower(name), fields: fields}
	keys := make(map[string]string)
	sawRest := ""
	for _, f := range fields {
		s := f.info()
		if s.bare {
			if sawRest != "" {
				panic(fmt.Sprintf("kvp: section %q: bare field %q follows variadic %q", name, s.key, sawRest))
			}
			if s.variadic {
				sawRest = s.key
			}
			continue
		}
		for n := range s.names {
			if prev, ok := keys[n]; ok {
				panic(fmt.Sprintf("kvp: section %q: key %q used by %q and %q", name, n, prev, s.key))
			}
			keys[n] = s.key
		}
	}
	return rs
}

// Alias returns rs with additional accepted section names. Use it only while
// building the schema.
func (rs *RecordSchema[R]) Alias(names ...string) *RecordSchema[R] {
	for _, n := range names {
		rs.aliases = append(rs.aliases, strings.ToLower(strings.TrimSpace(n)))
	}
	return rs
}

// Name returns the canonical section name.
func (rs *RecordSchema[R]) Name() string {
	return rs.name
}

// Names returns the canonical name followed by the aliases.
func (rs *RecordSchema[R]) Names() []string {
	return append([]string{rs.name}, rs.aliases...)
}

// Defaults returns R with every field at its default.
func (rs *RecordSchema[R]) Defaults() R {
	var rec R
	for _, f := range rs.fields {
		f.setDefault(&rec)
	}
	return rec
}

// bind resolves every field against sec, in declaration order.
func (rs *RecordSchema[R]) bind(sec *Section, diags *Diagnostics) R {
	var rec R
	label := sec.Label()

	var bares []Entry
	for _, e := range sec.Entries {
		if e.Kind == BareEntry {
			bares = append(bares, e)
		}
	}
	used := make([]bool, len(sec.Entries))
	next := 0

	for _, f := range rs.fields {
		s := f.info()
		var matches []Entry
		switch {
		case s.bare && s.variadic:
			matches = bares[next:]
			next = len(bares)
		case s.bare:
			if next < len(bares) {
				matches = bares[next : next+1]
				next++
			}
		default:
			for i, e := range sec.Entries {
				if e.Kind == KeyValue && f.matchKey(e.Key) {
					used[i] = true
					matches = append(matches, e)
				}
			}
		}
		if len(matches) == 0 {
			f.setDefault(&rec)
			if s.required {
				diags.addf(MissingRequired, sec.Line, label, s.key, "no value for required field %q", s.key)
			}
			continue
		}
		f.assign(&rec, matches, label, diags)
	}

	for i, e := range sec.Entries {
		if e.Kind == KeyValue && !used[i] {
			diags.addf(UnknownKey, e.Line, label, e.Key, "unknown key %q", e.Key)
		}
	}
	for _, e := range bares[next:] {
		diags.addf(UnknownKey, e.Line, label, "", "unexpected positional value %q", e.Value)
	}
	return rec
}

func (rs *RecordSchema[R]) marshal(rec *R, b *strings.Builder) {
	for _, f := range rs.fields {
		for _, e := range f.encode(rec) {
			if e.bare {
				b.WriteString(e.value)
			} else {
				b.WriteString(e.key)
				b.WriteString(" = ")
				b.WriteString(e.value)
			}
			b.WriteByte('\n')
		}
	}
}
