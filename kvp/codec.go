package kvp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DecodeKind distinguishes the sub-cases of a decode failure.
type DecodeKind string

const (
	KindNumeric   DecodeKind = "numeric"
	KindBoolean   DecodeKind = "boolean"
	KindEnum      DecodeKind = "enum"
	KindComposite DecodeKind = "composite"
)

var errEmpty = errors.New("empty value")

// DecodeError reports a raw value a codec could not convert.
type DecodeError struct {
	Kind DecodeKind
	Raw  string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %q as %s: %v", e.Raw, e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// PartialError is returned together with a usable value when some parts of a
// composite failed and were replaced by their defaults.
type PartialError struct {
	Raw      string
	Failures []error
}

func (e *PartialError) Error() string {
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = f.Error()
	}
	return fmt.Sprintf("partially decoded %q: %s", e.Raw, strings.Join(msgs, "; "))
}

// Codec converts between a raw configuration string and T. Encode returns
// false when the value should be omitted from serialized output.
type Codec[T any] interface {
	Decode(raw string) (T, error)
	Encode(v T) (string, bool)
}

type funcCodec[T any] struct {
	dec func(string) (T, error)
	enc func(T) (string, bool)
}

func (c funcCodec[T]) Decode(raw string) (T, error) { return c.dec(raw) }
func (c funcCodec[T]) Encode(v T) (string, bool)    { return c.enc(v) }

// CodecFunc builds a Codec from a decode and an encode function.
func CodecFunc[T any](dec func(string) (T, error), enc func(T) (string, bool)) Codec[T] {
	return funcCodec[T]{dec: dec, enc: enc}
}

func formatFloat(v float64) (string, bool) {
	return strconv.FormatFloat(v, 'g', -1, 64), true
}

func formatInt(v int) (string, bool) {
	return strconv.Itoa(v), true
}

var (
	// String keeps the raw value verbatim (original case).
	String = CodecFunc(
		func(raw string) (string, error) { return strings.TrimSpace(raw), nil },
		func(v string) (string, bool) { return v, true },
	)

	// Float64 accepts [sign]digits[.digits][e[sign]digits].
	Float64 = CodecFunc(parseFloat, formatFloat)

	// LooseFloat64 strips trailing characters until a prefix parses.
	LooseFloat64 = CodecFunc(func(raw string) (float64, error) { return loose(raw, parseFloat) }, formatFloat)

	// Int accepts an optionally signed decimal integer.
	Int = CodecFunc(parseInt, formatInt)

	// LooseInt strips trailing characters until a prefix parses.
	LooseInt = CodecFunc(func(raw string) (int, error) { return loose(raw, parseInt) }, formatInt)

	// Uint accepts an unsigned decimal integer.
	Uint = CodecFunc(parseUint, func(v uint64) (string, bool) { return strconv.FormatUint(v, 10), true })

	// Bool decodes any non-zero integer as true and zero as false.
	Bool = CodecFunc(parseBool, func(v bool) (string, bool) {
		if v {
			return "1", true
		}
		return "0", true
	})
)

func parseFloat(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &DecodeError{Kind: KindNumeric, Raw: raw, Err: errEmpty}
	}
	if !isDecimalFloat(s) {
		return 0, &DecodeError{Kind: KindNumeric, Raw: raw, Err: errors.New("not a decimal number")}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &DecodeError{Kind: KindNumeric, Raw: raw, Err: err}
	}
	return v, nil
}

func parseInt(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &DecodeError{Kind: KindNumeric, Raw: raw, Err: errEmpty}
	}
	v, err := strconv.ParseInt(s, 10, 0)
	if err != nil {
		return 0, &DecodeError{Kind: KindNumeric, Raw: raw, Err: err}
	}
	return int(v), nil
}

func parseUint(raw string) (uint64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &DecodeError{Kind: KindNumeric, Raw: raw, Err: errEmpty}
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &DecodeError{Kind: KindNumeric, Raw: raw, Err: err}
	}
	return v, nil
}

func parseBool(raw string) (bool, error) {
	v, err := parseInt(raw)
	if err != nil {
		return false, &DecodeError{Kind: KindBoolean, Raw: raw, Err: errors.Unwrap(err)}
	}
	return v != 0, nil
}

// loose retries parse on ever shorter prefixes of the trimmed input.
// Files in the wild carry unit suffixes and stray characters after numbers.
func loose[T any](raw string, parse func(string) (T, error)) (T, error) {
	s := strings.TrimSpace(raw)
	for n := len(s); n > 0; n-- {
		if v, err := parse(s[:n]); err == nil {
			return v, nil
		}
	}
	var zero T
	if s == "" {
		return zero, &DecodeError{Kind: KindNumeric, Raw: raw, Err: errEmpty}
	}
	return zero, &DecodeError{Kind: KindNumeric, Raw: raw, Err: errors.New("no numeric prefix")}
}

// isDecimalFloat rejects the forms strconv accepts but configuration files
// never mean: inf, nan, hex floats and digit separators.
func isDecimalFloat(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for i < len(s) && isDigit(s[i]) {
			i++
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Optional wraps c so that absent values stay nil.
func Optional[T any](c Codec[T]) Codec[*T] {
	return CodecFunc(
		func(raw string) (*T, error) {
			v, err := c.Decode(raw)
			if err != nil {
				var partial *PartialError
				if errors.As(err, &partial) {
					return &v, err
				}
				return nil, err
			}
			return &v, nil
		},
		func(v *T) (string, bool) {
			if v == nil {
				return "", false
			}
			return c.Encode(*v)
		},
	)
}
