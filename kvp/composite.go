package kvp

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Part is one sub-field of a composite value.
type Part[T any] struct {
	decode func(dst *T, raw string) error
	encode func(src *T) (string, bool)
	reset  func(dst *T)
}

// Component binds a sub-field codec to a member of T. Missing sub-fields
// take def.
func Component[T, S any](c Codec[S], ptr func(*T) *S, def S) Part[T] {
	return Part[T]{
		decode: func(dst *T, raw string) error {
			v, err := c.Decode(raw)
			if err != nil {
				return err
			}
			*ptr(dst) = v
			return nil
		},
		encode: func(src *T) (string, bool) { return c.Encode(*ptr(src)) },
		reset:  func(dst *T) { *ptr(dst) = def },
	}
}

// Composite decodes a delimiter-separated record. It degrades instead of
// failing: missing or empty sub-fields keep their defaults, extra ones are
// ignored, and failing ones are defaulted and reported through PartialError.
type Composite[T any] struct {
	sep   byte
	parts []Part[T]
}

// NewComposite builds a composite codec splitting on sep.
func NewComposite[T any](sep byte, parts ...Part[T]) *Composite[T] {
	if len(parts) == 0 {
		panic("kvp: composite without parts")
	}
	return &Composite[T]{sep: sep, parts: parts}
}

// Zero returns T with every part at its default.
func (c *Composite[T]) Zero() T {
	var v T
	for _, p := range c.parts {
		p.reset(&v)
	}
	return v
}

func (c *Composite[T]) Decode(raw string) (T, error) {
	v := c.Zero()
	s := strings.TrimSpace(raw)
	if s == "" {
		return v, &DecodeError{Kind: KindComposite, Raw: raw, Err: errEmpty}
	}
	fields := strings.Split(s, string(c.sep))
	var failures []error
	for i, p := range c.parts {
		if i >= len(fields) {
			break
		}
		f := strings.TrimSpace(fields[i])
		if f == "" {
			continue
		}
		if err := p.decode(&v, f); err != nil {
			p.reset(&v)
			failures = append(failures, fmt.Errorf("part %d: %w", i+1, err))
		}
	}
	if len(failures) > 0 {
		return v, &PartialError{Raw: raw, Failures: failures}
	}
	return v, nil
}

func (c *Composite[T]) Encode(v T) (string, bool) {
	out := make([]string, 0, len(c.parts))
	for _, p := range c.parts {
		s, ok := p.encode(&v)
		if !ok {
			s = ""
		}
		out = append(out, s)
	}
	return strings.Join(out, string(c.sep)+" "), true
}

// List decodes a comma-separated sequence of c. Failing elements keep the
// zero value in place and are reported through PartialError.
func List[T any](c Codec[T]) Codec[[]T] {
	return CodecFunc(
		func(raw string) ([]T, error) {
			s := strings.TrimSpace(raw)
			if s == "" {
				return nil, nil
			}
			fields := strings.Split(s, ",")
			out := make([]T, len(fields))
			var failures []error
			for i, f := range fields {
				v, err := c.Decode(strings.TrimSpace(f))
				if err != nil {
					var zero T
					v = zero
					failures = append(failures, fmt.Errorf("element %d: %w", i+1, err))
				}
				out[i] = v
			}
			if len(failures) > 0 {
				return out, &PartialError{Raw: raw, Failures: failures}
			}
			return out, nil
		},
		func(v []T) (string, bool) {
			if len(v) == 0 {
				return "", false
			}
			out := make([]string, len(v))
			for i, e := range v {
				out[i], _ = c.Encode(e)
			}
			return strings.Join(out, ", "), true
		},
	)
}

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Vector2 is a 2D coordinate pair.
type Vector2 struct {
	X, Y float64
}

// Vector3 is a 3D coordinate triple.
type Vector3 struct {
	X, Y, Z float64
}

// Uint8 decodes an integer in [0, 255].
var Uint8 = CodecFunc(
	func(raw string) (uint8, error) {
		v, err := loose(raw, parseInt)
		if err != nil {
			return 0, err
		}
		if v < 0 || v > 255 {
			return 0, &DecodeError{Kind: KindNumeric, Raw: raw, Err: errors.New("out of range [0, 255]")}
		}
		return uint8(v), nil
	},
	func(v uint8) (string, bool) { return formatInt(int(v)) },
)

var rgba = NewComposite(',',
	Component(Uint8, func(c *Color) *uint8 { return &c.R }, 0),
	Component(Uint8, func(c *Color) *uint8 { return &c.G }, 0),
	Component(Uint8, func(c *Color) *uint8 { return &c.B }, 0),
	Component(Uint8, func(c *Color) *uint8 { return &c.A }, 255),
)

var (
	// ColorCodec accepts "r, g, b[, a]" and "#RRGGBB[AA]". Alpha defaults to 255.
	ColorCodec = CodecFunc(decodeColor, encodeColor)

	// Vector2Codec decodes "x, y".
	Vector2Codec Codec[Vector2] = NewComposite(',',
		Component(LooseFloat64, func(v *Vector2) *float64 { return &v.X }, 0),
		Component(LooseFloat64, func(v *Vector2) *float64 { return &v.Y }, 0),
	)

	// Vector3Codec decodes "x, y, z".
	Vector3Codec Codec[Vector3] = NewComposite(',',
		Component(LooseFloat64, func(v *Vector3) *float64 { return &v.X }, 0),
		Component(LooseFloat64, func(v *Vector3) *float64 { return &v.Y }, 0),
		Component(LooseFloat64, func(v *Vector3) *float64 { return &v.Z }, 0),
	)
)

func decodeColor(raw string) (Color, error) {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "#") {
		return rgba.Decode(raw)
	}
	b, err := hex.DecodeString(s[1:])
	if err != nil || (len(b) != 3 && len(b) != 4) {
		if err == nil {
			err = fmt.Errorf("want 6 or 8 hex digits, got %d", len(s)-1)
		}
		return rgba.Zero(), &DecodeError{Kind: KindComposite, Raw: raw, Err: err}
	}
	c := Color{R: b[0], G: b[1], B: b[2], A: 255}
	if len(b) == 4 {
		c.A = b[3]
	}
	return c, nil
}

func encodeColor(c Color) (string, bool) {
	if c.A == 255 {
		return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B), true
	}
	return fmt.Sprintf("%d, %d, %d, %d", c.R, c.G, c.B, c.A), true
}
