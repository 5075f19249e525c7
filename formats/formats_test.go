package formats

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"trains/EMU/train.dat", "traindat", true},
		{"trains/EMU/Train.DAT", "traindat", true},
		{"trains/EMU/extensions.cfg", "extensions", true},
		{"trains/EMU/panel.cfg", "panel1", true},
		{"trains/EMU/panel2.cfg", "panel2", true},
		{"trains/EMU/sound.cfg", "sound", true},
		{"trains/EMU/ats.cfg", "ats", true},
		{"objects/door.animated", "animated", true},
		{"objects/door.ANIMATED", "animated", true},
		{"objects/door.b3d", "", false},
		{"route.csv", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			f, ok := Detect(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, f.Name)
		})
	}
}

func TestLookup(t *testing.T) {
	f, ok := Lookup("PANEL2")
	require.True(t, ok)
	assert.Equal(t, "panel2.cfg", f.File)

	_, ok = Lookup("route")
	assert.False(t, ok)
	assert.False(t, IsValidFormat("route"))
}

func TestValidFormatNames_Sorted(t *testing.T) {
	assert.Equal(t, []string{"animated", "ats", "extensions", "panel1", "panel2", "sound", "traindat"}, ValidFormatNames())
}

// Every format must read back its own serialized defaults unchanged.
func TestAll_DefaultsRoundTrip(t *testing.T) {
	for _, f := range All() {
		t.Run(f.Name, func(t *testing.T) {
			want := f.Defaults()

			got, diags := f.Parse(f.Marshal(want))

			require.Empty(t, diags, diags.Report())
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("defaults round trip (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAll_SectionsAndDialect(t *testing.T) {
	for _, f := range All() {
		assert.NotEmpty(t, f.Sections, f.Name)
	}
	td, _ := Lookup("traindat")
	assert.Equal(t, "ordered", td.Dialect.Name)
	assert.Contains(t, td.Sections, "acceleration")
	a, _ := Lookup("ats")
	assert.Equal(t, []string{""}, a.Sections)
}

func TestParse_GarbageNeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"\x00\x01\x02",
		"[",
		"]",
		"[]",
		"[car 99999999999999999999999]",
		"=",
		"==",
		"#",
		"; only a comment",
		"[needle]\nsubject\n=\n[this]\n[this 1]",
		"#ACCELERATION\n,,,,,,,,,\n#HANDLE\n-\n+\n.\n",
	}
	for _, f := range All() {
		for _, in := range inputs {
			assert.NotPanics(t, func() { f.Parse(in) }, "%s: %q", f.Name, in)
		}
	}
}
