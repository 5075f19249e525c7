package kvp

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// FieldOption adjusts a field at schema construction.
type FieldOption func(*fieldInfo)

// Alias adds accepted keys besides the canonical one, e.g. localized names.
func Alias(names ...string) FieldOption {
	return func(s *fieldInfo) {
		s.aliases = append(s.aliases, names...)
	}
}

// Bare makes the field consume the next positional entry of its section
// instead of a keyed one.
func Bare() FieldOption {
	return func(s *fieldInfo) { s.bare = true }
}

// Required removes the default: a missing value is reported as
// MissingRequired and the field keeps its zero value.
func Required() FieldOption {
	return func(s *fieldInfo) { s.required = true }
}

// Default sets the value used when the field is missing or fails to decode.
// Its dynamic type must be the field's type exactly; a mismatch panics when
// the schema is built.
func Default(v any) FieldOption {
	return func(s *fieldInfo) { s.def = v }
}

type fieldInfo struct {
	key      string
	aliases  []string
	names    map[string]bool
	bare     bool
	variadic bool
	required bool
	def      any
}

func newFieldInfo(key string, variadic bool, opts []FieldOption) *fieldInfo {
	s := &fieldInfo{key: strings.ToLower(key), variadic: variadic}
	for _, o := range opts {
		o(s)
	}
	s.names = map[string]bool{s.key: true}
	for i, a := range s.aliases {
		s.aliases[i] = strings.ToLower(strings.TrimSpace(a))
		s.names[s.aliases[i]] = true
	}
	if s.required && s.def != nil {
		panic(fmt.Sprintf("kvp: field %q is both required and defaulted", key))
	}
	return s
}

// defaultAs resolves the declared default for a field of type T.
func defaultAs[T any](s *fieldInfo) T {
	var zero T
	if s.def == nil {
		return zero
	}
	v, ok := s.def.(T)
	if !ok {
		panic(fmt.Sprintf("kvp: field %q default has type %T, want %v", s.key, s.def, reflect.TypeOf((*T)(nil)).Elem()))
	}
	return v
}

type encoded struct {
	key   string
	value string
	bare  bool
}

// Field is one entry of a RecordSchema. Build fields with Scalar, Variadic
// and Numbered.
type Field[R any] interface {
	info() *fieldInfo
	matchKey(key string) bool
	assign(rec *R, matches []Entry, section string, diags *Diagnostics)
	setDefault(rec *R)
	encode(rec *R) []encoded
}

// Scalar binds one value decoded by c to the member ptr selects.
func Scalar[R, T any](key string, c Codec[T], ptr func(*R) *T, opts ...FieldOption) Field[R] {
	s := newFieldInfo(key, false, opts)
	return &scalarField[R, T]{fieldInfo: s, codec: c, ptr: ptr, def: defaultAs[T](s)}
}

// Variadic collects every matching entry, in source order. With Bare it
// takes all remaining positional entries, so it must be the last bare field.
func Variadic[R, T any](key string, c Codec[T], ptr func(*R) *[]T, opts ...FieldOption) Field[R] {
	s := newFieldInfo(key, true, opts)
	return &variadicField[R, T]{fieldInfo: s, codec: c, ptr: ptr, def: defaultAs[[]T](s)}
}

// Numbered collects entries whose key is an unsigned integer ("0 = a.wav")
// into a map keyed by that integer. key only names the field in reports.
func Numbered[R, T any](key string, c Codec[T], ptr func(*R) *map[int]T, opts ...FieldOption) Field[R] {
	s := newFieldInfo(key, true, opts)
	if s.bare {
		panic(fmt.Sprintf("kvp: numbered field %q cannot be bare", key))
	}
	return &numberedField[R, T]{fieldInfo: s, codec: c, ptr: ptr}
}

type scalarField[R, T any] struct {
	*fieldInfo
	codec Codec[T]
	ptr   func(*R) *T
	def   T
}

func (f *scalarField[R, T]) info() *fieldInfo         { return f.fieldInfo }
func (f *scalarField[R, T]) matchKey(key string) bool { return f.names[key] }
func (f *scalarField[R, T]) setDefault(rec *R)        { *f.ptr(rec) = f.def }

func (f *scalarField[R, T]) assign(rec *R, matches []Entry, section string, diags *Diagnostics) {
	e := matches[0]
	v, ok := decodeEntry(f.codec, e, f.key, section, diags)
	if !ok {
		v = f.def
	}
	*f.ptr(rec) = v
}

func (f *scalarField[R, T]) encode(rec *R) []encoded {
	s, ok := f.codec.Encode(*f.ptr(rec))
	if !ok {
		return nil
	}
	return []encoded{{key: f.key, value: s, bare: f.bare}}
}

type variadicField[R, T any] struct {
	*fieldInfo
	codec Codec[T]
	ptr   func(*R) *[]T
	def   []T
}

func (f *variadicField[R, T]) info() *fieldInfo         { return f.fieldInfo }
func (f *variadicField[R, T]) matchKey(key string) bool { return f.names[key] }

func (f *variadicField[R, T]) setDefault(rec *R) {
	if f.def == nil {
		*f.ptr(rec) = nil
		return
	}
	*f.ptr(rec) = append([]T(nil), f.def...)
}

func (f *variadicField[R, T]) assign(rec *R, matches []Entry, section string, diags *Diagnostics) {
	out := make([]T, 0, len(matches))
	for _, e := range matches {
		v, ok := decodeEntry(f.codec, e, f.key, section, diags)
		if !ok {
			v = elementDefault(f.codec)
		}
		out = append(out, v)
	}
	*f.ptr(rec) = out
}

// elementDefault is what a failing element of a variadic field becomes, so
// later elements keep their positions.
func elementDefault[T any](c Codec[T]) T {
	switch d := c.(type) {
	case interface{ Zero() T }:
		return d.Zero()
	case interface{ Default() T }:
		return d.Default()
	}
	var zero T
	return zero
}

func (f *variadicField[R, T]) encode(rec *R) []encoded {
	var out []encoded
	for _, v := range *f.ptr(rec) {
		if s, ok := f.codec.Encode(v); ok {
			out = append(out, encoded{key: f.key, value: s, bare: f.bare})
		}
	}
	return out
}

type numberedField[R, T any] struct {
	*fieldInfo
	codec Codec[T]
	ptr   func(*R) *map[int]T
}

func (f *numberedField[R, T]) info() *fieldInfo  { return f.fieldInfo }
func (f *numberedField[R, T]) setDefault(rec *R) { *f.ptr(rec) = nil }

func (f *numberedField[R, T]) matchKey(key string) bool {
	_, err := strconv.ParseUint(key, 10, 31)
	return err == nil
}

func (f *numberedField[R, T]) assign(rec *R, matches []Entry, section string, diags *Diagnostics) {
	out := make(map[int]T, len(matches))
	for _, e := range matches {
		n, _ := strconv.Atoi(e.Key)
		if v, ok := decodeEntry(f.codec, e, e.Key, section, diags); ok {
			out[n] = v
		}
	}
	*f.ptr(rec) = out
}

func (f *numberedField[R, T]) encode(rec *R) []encoded {
	m := *f.ptr(rec)
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	var out []encoded
	for _, k := range keys {
		if s, ok := f.codec.Encode(m[k]); ok {
			out = append(out, encoded{key: strconv.Itoa(k), value: s})
		}
	}
	return out
}

// decodeEntry decodes e.Value and records a DecodeFailure when it does not
// decode cleanly. ok is false when the caller should fall back to a default;
// a composite that degraded part-way is kept.
func decodeEntry[T any](c Codec[T], e Entry, key, section string, diags *Diagnostics) (T, bool) {
	v, err := c.Decode(e.Value)
	if err == nil {
		return v, true
	}
	d := Diagnostic{
		Category: DecodeFailure,
		Line:     e.Line,
		Section:  section,
		Key:      key,
		Message:  err.Error(),
	}
	var partial *PartialError
	if errors.As(err, &partial) {
		d.Kind = KindComposite
		diags.add(d)
		return v, true
	}
	var de *DecodeError
	if errors.As(err, &de) {
		d.Kind = de.Kind
	}
	diags.add(d)
	var zero T
	return zero, false
}
