package kvp

import (
	"fmt"
	"strconv"
	"strings"
)

// Variant is one row of an enumeration table. Value must equal the row's
// declaration-order ordinal; Aliases is a semicolon-separated synonym list
// matched case-insensitively.
type Variant[T ~int] struct {
	Value   T
	Name    string
	Aliases string
	Default bool
}

// Enum decodes a numeric-ordinal enumeration from either its ordinal or one
// of its names.
type Enum[T ~int] struct {
	name     string
	variants []Variant[T]
	lookup   map[string]T
	def      T
}

// NewEnum validates the table and panics on a malformed one: ordinals out of
// declaration order, more than one default, or a name shared by two variants.
func NewEnum[T ~int](name string, variants ...Variant[T]) *Enum[T] {
	if len(variants) == 0 {
		panic(fmt.Sprintf("kvp: enum %s has no variants", name))
	}
	e := &Enum[T]{
		name:     name,
		variants: variants,
		lookup:   make(map[string]T),
	}
	defaults := 0
	for i, v := range variants {
		if int(v.Value) != i {
			panic(fmt.Sprintf("kvp: enum %s variant %q has ordinal %d, want %d", name, v.Name, v.Value, i))
		}
		if v.Default {
			defaults++
			e.def = v.Value
		}
		names := append([]string{v.Name}, strings.Split(v.Aliases, ";")...)
		for _, n := range names {
			n = strings.ToLower(strings.TrimSpace(n))
			if n == "" {
				continue
			}
			if prev, ok := e.lookup[n]; ok && prev != v.Value {
				panic(fmt.Sprintf("kvp: enum %s name %q used by two variants", name, n))
			}
			e.lookup[n] = v.Value
		}
	}
	if defaults > 1 {
		panic(fmt.Sprintf("kvp: enum %s has %d default variants", name, defaults))
	}
	return e
}

// Default returns the variant marked default, or ordinal 0.
func (e *Enum[T]) Default() T {
	return e.def
}

// Name returns the canonical name of v.
func (e *Enum[T]) Name(v T) string {
	if int(v) < 0 || int(v) >= len(e.variants) {
		return strconv.Itoa(int(v))
	}
	return e.variants[v].Name
}

// Len returns the number of variants.
func (e *Enum[T]) Len() int {
	return len(e.variants)
}

func (e *Enum[T]) Decode(raw string) (T, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return e.def, &DecodeError{Kind: KindEnum, Raw: raw, Err: errEmpty}
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n >= len(e.variants) {
			return e.def, &DecodeError{Kind: KindEnum, Raw: raw,
				Err: fmt.Errorf("%s ordinal %d out of range [0, %d)", e.name, n, len(e.variants))}
		}
		return T(n), nil
	}
	if v, ok := e.lookup[strings.ToLower(s)]; ok {
		return v, nil
	}
	return e.def, &DecodeError{Kind: KindEnum, Raw: raw, Err: fmt.Errorf("unknown %s", e.name)}
}

func (e *Enum[T]) Encode(v T) (string, bool) {
	return strconv.Itoa(int(v)), true
}
