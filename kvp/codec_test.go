package kvp

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat64_StrictForms(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"1.5", 1.5, true},
		{"-2", -2, true},
		{" 3.25e-2 ", 0.0325, true},
		{".5", 0.5, true},
		{"1e", 0, false},
		{"inf", 0, false},
		{"NaN", 0, false},
		{"0x10", 0, false},
		{"1_000", 0, false},
		{"12km", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		got, err := Float64.Decode(tc.raw)
		if !tc.ok {
			var de *DecodeError
			require.ErrorAs(t, err, &de, "raw %q", tc.raw)
			assert.Equal(t, KindNumeric, de.Kind)
			continue
		}
		require.NoError(t, err, "raw %q", tc.raw)
		assert.InDelta(t, tc.want, got, 1e-12, "raw %q", tc.raw)
	}
}

func TestLooseFloat64_StripsTrailingGarbage(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"80km/h", 80},
		{"1.5e", 1.5},
		{" 12.5 kPa ", 12.5},
		{"3,5", 3},
		{"-0.25x", -0.25},
	}
	for _, tc := range tests {
		got, err := LooseFloat64.Decode(tc.raw)
		require.NoError(t, err, "raw %q", tc.raw)
		assert.Equal(t, tc.want, got, "raw %q", tc.raw)
	}
}

func TestLooseFloat64_FailsWithoutNumericPrefix(t *testing.T) {
	for _, raw := range []string{"", "   ", "abc", "-", "e5"} {
		_, err := LooseFloat64.Decode(raw)
		assert.Error(t, err, "raw %q", raw)
	}
}

// Appending garbage never turns a successful loose parse into a failure, and
// the decoded value is the one of the longest parseable prefix.
func TestLooseNumeric_Monotonic(t *testing.T) {
	bases := []string{"1", "42", "-7.5", "3.0e2", "0.001"}
	suffixes := []string{"a", "x9", " km/h", "..", "e", "-", "%%%"}
	for _, base := range bases {
		want, err := LooseFloat64.Decode(base)
		require.NoError(t, err)
		raw := base
		for _, suffix := range suffixes {
			raw += suffix
			got, err := LooseFloat64.Decode(raw)
			require.NoError(t, err, "raw %q", raw)
			// a suffix may extend the numeric prefix ("1" + "e" + "5"), never shrink it
			if !strings.ContainsAny(suffix, "0123456789") {
				assert.Equal(t, want, got, "raw %q", raw)
			}
		}
	}
}

func TestLooseInt(t *testing.T) {
	v, err := LooseInt.Decode("8notches")
	require.NoError(t, err)
	assert.Equal(t, 8, v)

	v, err = LooseInt.Decode("2.7")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestInt_RejectsNonDigits(t *testing.T) {
	for _, raw := range []string{"1.0", "1a", "", " ", "one"} {
		_, err := Int.Decode(raw)
		assert.Error(t, err, "raw %q", raw)
	}
	v, err := Int.Decode(" -12 ")
	require.NoError(t, err)
	assert.Equal(t, -12, v)
}

func TestBool_Numeric(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"0", false},
		{"1", true},
		{"-3", true},
		{"27", true},
	}
	for _, tc := range tests {
		got, err := Bool.Decode(tc.raw)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "raw %q", tc.raw)
	}

	_, err := Bool.Decode("true")
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindBoolean, de.Kind)
}

func TestOptional_AbsentStaysNil(t *testing.T) {
	c := Optional(String)
	s, ok := c.Encode(nil)
	assert.False(t, ok)
	assert.Empty(t, s)

	v, err := c.Decode("Body.csv")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "Body.csv", *v)

	f, err := Optional(Float64).Decode("x")
	assert.Error(t, err)
	assert.Nil(t, f)
}

type testBrake int

const (
	testBrakeStraight testBrake = iota
	testBrakeECB
	testBrakeAutomatic
)

var testBrakeEnum = NewEnum("brake type",
	Variant[testBrake]{Value: testBrakeStraight, Name: "straight", Aliases: "ElectromagneticStraightAirBrake;電磁直通", Default: true},
	Variant[testBrake]{Value: testBrakeECB, Name: "ecb", Aliases: "ElectricCommandBrake"},
	Variant[testBrake]{Value: testBrakeAutomatic, Name: "automatic", Aliases: "AutomaticAirBrake;自動空気"},
)

func TestEnum_DecodesOrdinalAndAliases(t *testing.T) {
	tests := []struct {
		raw  string
		want testBrake
	}{
		{"0", testBrakeStraight},
		{"2", testBrakeAutomatic},
		{"ECB", testBrakeECB},
		{"automaticairbrake", testBrakeAutomatic},
		{"自動空気", testBrakeAutomatic},
		{" Straight ", testBrakeStraight},
	}
	for _, tc := range tests {
		got, err := testBrakeEnum.Decode(tc.raw)
		require.NoError(t, err, "raw %q", tc.raw)
		assert.Equal(t, tc.want, got, "raw %q", tc.raw)
	}
}

func TestEnum_OutOfRangeOrdinalFails(t *testing.T) {
	for _, raw := range []string{"7", "-1", "3", "vacuum"} {
		got, err := testBrakeEnum.Decode(raw)
		var de *DecodeError
		require.ErrorAs(t, err, &de, "raw %q", raw)
		assert.Equal(t, KindEnum, de.Kind)
		assert.Equal(t, testBrakeEnum.Default(), got)
	}
}

func TestNewEnum_PanicsOnMalformedTable(t *testing.T) {
	assert.Panics(t, func() {
		NewEnum("bad order", Variant[testBrake]{Value: 1, Name: "one"})
	})
	assert.Panics(t, func() {
		NewEnum("two defaults",
			Variant[testBrake]{Value: 0, Name: "a", Default: true},
			Variant[testBrake]{Value: 1, Name: "b", Default: true})
	})
	assert.Panics(t, func() {
		NewEnum("shared alias",
			Variant[testBrake]{Value: 0, Name: "a", Aliases: "x"},
			Variant[testBrake]{Value: 1, Name: "b", Aliases: "X"})
	})
}

func TestComposite_DegradesGracefully(t *testing.T) {
	tests := []struct {
		raw     string
		want    Vector3
		partial bool
	}{
		{"1, 2, 3", Vector3{1, 2, 3}, false},
		{"1, 2", Vector3{1, 2, 0}, false},
		{"1,,3", Vector3{1, 0, 3}, false},
		{"1, 2, 3, 4, 5", Vector3{1, 2, 3}, false},
		{"1, y, 3", Vector3{1, 0, 3}, true},
	}
	for _, tc := range tests {
		got, err := Vector3Codec.Decode(tc.raw)
		if tc.partial {
			var pe *PartialError
			require.ErrorAs(t, err, &pe, "raw %q", tc.raw)
			assert.Len(t, pe.Failures, 1)
		} else {
			require.NoError(t, err, "raw %q", tc.raw)
		}
		assert.Equal(t, tc.want, got, "raw %q", tc.raw)
	}
}

func TestColor_DecimalAndHex(t *testing.T) {
	c, err := ColorCodec.Decode("255, 0, 128")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 255, G: 0, B: 128, A: 255}, c)

	c, err = ColorCodec.Decode("#0000FF")
	require.NoError(t, err)
	assert.Equal(t, Color{B: 255, A: 255}, c)

	c, err = ColorCodec.Decode("#10203040")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, c)

	_, err = ColorCodec.Decode("#12")
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindComposite, de.Kind)

	c, err = ColorCodec.Decode("300, 1, 2")
	var pe *PartialError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, Color{R: 0, G: 1, B: 2, A: 255}, c)
}

func TestColor_EncodeRoundTrip(t *testing.T) {
	for _, c := range []Color{{A: 255}, {R: 1, G: 2, B: 3, A: 4}, {R: 255, G: 255, B: 255, A: 255}} {
		s, ok := ColorCodec.Encode(c)
		require.True(t, ok)
		got, err := ColorCodec.Decode(s)
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestList_KeepsPositionsOnFailure(t *testing.T) {
	c := List(Int)
	got, err := c.Decode("1, x, 3")
	var pe *PartialError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, []int{1, 0, 3}, got)

	got, err = c.Decode("")
	require.NoError(t, err)
	assert.Nil(t, got)

	s, ok := List(String).Encode([]string{"a.csv", "b.csv"})
	require.True(t, ok)
	assert.Equal(t, "a.csv, b.csv", s)
}

func TestDecodeError_Unwraps(t *testing.T) {
	_, err := Int.Decode("")
	assert.True(t, errors.Is(err, errEmpty))
}
