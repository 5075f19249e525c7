package kvp

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// SectionBinding places bound sections into the file record F. Build them
// with Single, Indexed and Repeated.
type SectionBinding[F any] interface {
	names() []string
	canonical() string
	bind(file *F, sec *Section, repeat bool, diags *Diagnostics) bool
	absent(file *F, diags *Diagnostics)
	marshal(file *F, d Dialect, b *strings.Builder)
}

// Single binds a section that appears at most once. A repeated occurrence is
// reported as DuplicateIndex and replaces the earlier one.
func Single[F, S any](rs *RecordSchema[S], ptr func(*F) *S) SectionBinding[F] {
	return &singleSection[F, S]{rs: rs, ptr: ptr}
}

// Indexed binds numbered instances ("[car0]", "[car1]") into a map. A
// repeated index is reported as DuplicateIndex; the later section wins.
func Indexed[F, S any](rs *RecordSchema[S], ptr func(*F) *map[uint64]S) SectionBinding[F] {
	return &indexedSection[F, S]{rs: rs, ptr: ptr}
}

// Repeated binds every occurrence of an unindexed section into a slice, in
// source order.
func Repeated[F, S any](rs *RecordSchema[S], ptr func(*F) *[]S) SectionBinding[F] {
	return &repeatedSection[F, S]{rs: rs, ptr: ptr}
}

var versionText = CodecFunc(String.Decode, func(v string) (string, bool) { return v, v != "" })

// VersionLine binds the bare line some indexed-dialect files carry before
// their first header ("Version 1.0") to a string of F.
func VersionLine[F any](ptr func(*F) *string) SectionBinding[F] {
	return Single(NewRecord("",
		Scalar("version", versionText, func(v *string) *string { return v }, Bare(), Default("")),
	), ptr)
}

type singleSection[F, S any] struct {
	rs  *RecordSchema[S]
	ptr func(*F) *S
}

func (s *singleSection[F, S]) names() []string   { return s.rs.Names() }
func (s *singleSection[F, S]) canonical() string { return s.rs.name }

func (s *singleSection[F, S]) bind(file *F, sec *Section, repeat bool, diags *Diagnostics) bool {
	if sec.HasIndex {
		diags.addf(UnknownSection, sec.Line, sec.Label(), "", "section [%s] does not take an index", s.rs.name)
		return false
	}
	if repeat {
		diags.addf(DuplicateIndex, sec.Line, sec.Label(), "", "section [%s] repeated; later occurrence wins", sec.Name)
	}
	*s.ptr(file) = s.rs.bind(sec, diags)
	return true
}

func (s *singleSection[F, S]) absent(file *F, diags *Diagnostics) {
	*s.ptr(file) = s.rs.bind(&Section{Name: s.rs.name}, diags)
}

func (s *singleSection[F, S]) marshal(file *F, d Dialect, b *strings.Builder) {
	writeHeader(b, d, s.rs.name, 0, false)
	s.rs.marshal(s.ptr(file), b)
}

type indexedSection[F, S any] struct {
	rs  *RecordSchema[S]
	ptr func(*F) *map[uint64]S
}

func (s *indexedSection[F, S]) names() []string         { return s.rs.Names() }
func (s *indexedSection[F, S]) canonical() string       { return s.rs.name }
func (s *indexedSection[F, S]) absent(*F, *Diagnostics) {}

func (s *indexedSection[F, S]) bind(file *F, sec *Section, _ bool, diags *Diagnostics) bool {
	if !sec.HasIndex {
		if !sec.BadIndex {
			diags.addf(MissingRequired, sec.Line, sec.Label(), "", "section [%s] needs an index", sec.Name)
		}
		return false
	}
	m := s.ptr(file)
	if *m == nil {
		*m = make(map[uint64]S)
	}
	if _, dup := (*m)[sec.Index]; dup {
		diags.addf(DuplicateIndex, sec.Line, sec.Label(), "", "index %d of [%s] repeated; later occurrence wins", sec.Index, sec.Name)
	}
	(*m)[sec.Index] = s.rs.bind(sec, diags)
	return true
}

func (s *indexedSection[F, S]) marshal(file *F, d Dialect, b *strings.Builder) {
	m := *s.ptr(file)
	keys := make([]uint64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		rec := m[k]
		writeHeader(b, d, s.rs.name, k, true)
		s.rs.marshal(&rec, b)
	}
}

type repeatedSection[F, S any] struct {
	rs  *RecordSchema[S]
	ptr func(*F) *[]S
}

func (s *repeatedSection[F, S]) names() []string         { return s.rs.Names() }
func (s *repeatedSection[F, S]) canonical() string       { return s.rs.name }
func (s *repeatedSection[F, S]) absent(*F, *Diagnostics) {}

func (s *repeatedSection[F, S]) bind(file *F, sec *Section, _ bool, diags *Diagnostics) bool {
	p := s.ptr(file)
	*p = append(*p, s.rs.bind(sec, diags))
	return true
}

func (s *repeatedSection[F, S]) marshal(file *F, d Dialect, b *strings.Builder) {
	for i := range *s.ptr(file) {
		writeHeader(b, d, s.rs.name, 0, false)
		s.rs.marshal(&(*s.ptr(file))[i], b)
	}
}

func writeHeader(b *strings.Builder, d Dialect, name string, index uint64, indexed bool) {
	if name == "" {
		return
	}
	if b.Len() > 0 {
		b.WriteByte('\n')
	}
	if !d.Indexed {
		if d.HeaderMarker != 0 {
			b.WriteByte(d.HeaderMarker)
		}
		b.WriteString(strings.ToUpper(name))
		b.WriteByte('\n')
		return
	}
	b.WriteByte(d.HeaderOpen)
	b.WriteString(name)
	if indexed {
		if strings.ContainsAny(name, " \t") {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatUint(index, 10))
	}
	b.WriteByte(d.HeaderClose)
	b.WriteByte('\n')
}

// FileSchema binds a whole configuration file onto F.
type FileSchema[F any] struct {
	dialect  Dialect
	sections []SectionBinding[F]
	byName   map[string]int
	headers  HeaderSet
	version  func(*F) *string
}

// NewFile builds the schema of a format. It panics when two bindings claim
// the same section name.
func NewFile[F any](d Dialect, sections ...SectionBinding[F]) *FileSchema[F] {
	fs := &FileSchema[F]{
		dialect:  d,
		sections: sections,
		byName:   make(map[string]int),
		headers:  make(HeaderSet),
	}
	for i, s := range sections {
		for _, n := range s.names() {
			if _, dup := fs.byName[n]; dup {
				panic(fmt.Sprintf("kvp: section name %q bound twice", n))
			}
			fs.byName[n] = i
			if n != "" {
				fs.headers[n] = true
			}
		}
	}
	// the root section has no header, so it is written first
	sort.SliceStable(fs.sections, func(i, j int) bool {
		return fs.sections[i].canonical() == "" && fs.sections[j].canonical() != ""
	})
	for i, s := range fs.sections {
		for _, n := range s.names() {
			fs.byName[n] = i
		}
	}
	return fs
}

// WithVersion binds the ordered dialect's version marker line. Use it only
// while building the schema.
func (fs *FileSchema[F]) WithVersion(ptr func(*F) *string) *FileSchema[F] {
	fs.version = ptr
	return fs
}

// Dialect returns the dialect the format was defined with.
func (fs *FileSchema[F]) Dialect() Dialect {
	return fs.dialect
}

// SectionNames returns the canonical section names in declaration order.
func (fs *FileSchema[F]) SectionNames() []string {
	out := make([]string, 0, len(fs.sections))
	for _, s := range fs.sections {
		out = append(out, s.canonical())
	}
	return out
}

// Parse runs normalization, document building and binding on text.
// It never fails: content problems are returned as diagnostics.
func (fs *FileSchema[F]) Parse(text string) (F, Diagnostics) {
	lines := Normalize(text, fs.dialect)
	return fs.Bind(Build(lines, fs.dialect, fs.headers))
}

// Bind maps doc onto F. Sections missing from doc are bound as if empty so
// every field carries its default.
func (fs *FileSchema[F]) Bind(doc *Document) (F, Diagnostics) {
	var file F
	diags := append(Diagnostics(nil), doc.Diagnostics...)
	if fs.version != nil && doc.Version != nil {
		*fs.version(&file) = doc.Version.Value
	}
	seen := make([]bool, len(fs.sections))
	for i := range doc.Sections {
		sec := &doc.Sections[i]
		idx, ok := fs.byName[sec.Name]
		if !ok {
			if sec.Name == "" {
				diags.addf(UnknownSection, sec.Line, "", "", "%d entries before the first section header", len(sec.Entries))
			} else {
				diags.addf(UnknownSection, sec.Line, sec.Label(), "", "unknown section [%s]", sec.Label())
			}
			continue
		}
		if fs.sections[idx].bind(&file, sec, seen[idx], &diags) {
			seen[idx] = true
		}
	}
	for i, s := range fs.sections {
		if !seen[i] {
			s.absent(&file, &diags)
		}
	}
	return file, diags
}

// Marshal writes f in the format's grammar. Parsing the output yields f
// again for any record whose values the codecs can represent.
func (fs *FileSchema[F]) Marshal(f *F) string {
	var b strings.Builder
	if fs.version != nil {
		if v := *fs.version(f); v != "" {
			b.WriteString(v)
			b.WriteByte('\n')
		}
	}
	for _, s := range fs.sections {
		s.marshal(f, fs.dialect, &b)
	}
	return b.String()
}
